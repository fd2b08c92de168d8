package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/PhantomInTheWire/bwconvert/pkg/codec"
	"github.com/PhantomInTheWire/bwconvert/pkg/storage"
)

type Config struct {
	LogLevel    string
	JPEGQuality int

	// Publishing is off unless both endpoint and bucket are set.
	PublishEndpoint  string
	PublishRegion    string
	PublishAccessKey string
	PublishSecretKey string
	PublishBucket    string
	PublishPrefix    string
}

func Load() *Config {
	return &Config{
		LogLevel:         envOr("BW_LOG_LEVEL", "warn"),
		JPEGQuality:      clampQuality(envIntOr("BW_JPEG_QUALITY", codec.DefaultJPEGQuality)),
		PublishEndpoint:  strings.TrimSpace(os.Getenv("BW_PUBLISH_ENDPOINT")),
		PublishRegion:    envOr("BW_PUBLISH_REGION", "us-east-1"),
		PublishAccessKey: os.Getenv("BW_PUBLISH_ACCESS_KEY"),
		PublishSecretKey: os.Getenv("BW_PUBLISH_SECRET_KEY"),
		PublishBucket:    strings.TrimSpace(os.Getenv("BW_PUBLISH_BUCKET")),
		PublishPrefix:    strings.Trim(os.Getenv("BW_PUBLISH_PREFIX"), "/"),
	}
}

func (c *Config) PublishEnabled() bool {
	return c.PublishEndpoint != "" && c.PublishBucket != ""
}

func (c *Config) Minio() storage.MinioConfig {
	return storage.MinioConfig{
		Endpoint:  c.PublishEndpoint,
		Region:    c.PublishRegion,
		AccessKey: c.PublishAccessKey,
		SecretKey: c.PublishSecretKey,
		Bucket:    c.PublishBucket,
		Prefix:    c.PublishPrefix,
	}
}

// Level maps LogLevel onto slog; unknown values fall back to warn.
func (c *Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func clampQuality(q int) int {
	if q < 1 {
		return 1
	}
	if q > 100 {
		return 100
	}
	return q
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
