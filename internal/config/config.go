package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all process configuration, read once at startup.
type Config struct {
	Port      string
	RateLimit int // requests per minute per IP

	// Optional S3-compatible imagery archive. The availability check stays
	// disabled while ArchiveEndpoint is empty.
	ArchiveEndpoint  string
	ArchiveAccessKey string
	ArchiveSecretKey string
	ArchiveBucket    string
	ArchiveUseSSL    bool
}

// Load reads configuration from the environment, after loading a local .env
// file when one exists.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:             getenv("PORT", ":8080"),
		RateLimit:        getenvInt("RATE_LIMIT_PER_MINUTE", 120),
		ArchiveEndpoint:  os.Getenv("ARCHIVE_ENDPOINT"),
		ArchiveAccessKey: os.Getenv("ARCHIVE_ACCESS_KEY"),
		ArchiveSecretKey: os.Getenv("ARCHIVE_SECRET_KEY"),
		ArchiveBucket:    getenv("ARCHIVE_BUCKET", "sentinel-archive"),
		ArchiveUseSSL:    getenv("ARCHIVE_USE_SSL", "true") == "true",
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return def
	}
	return v
}
