package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds environment-driven configuration.
type Config struct {
	Addr             string
	DatabaseURL      string
	StaticDir        string
	LogLevel         slog.Level
	CORSAllowOrigins string
	ShutdownTimeout  time.Duration
}

// Load reads configuration from environment variables, after loading an
// optional .env file from the working directory.
func Load() Config {
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	origins := os.Getenv("CORS_ALLOW_ORIGINS")
	if origins == "" {
		origins = "*"
	}

	shutdown := 10 * time.Second
	if v := os.Getenv("SHUTDOWN_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			shutdown = d
		}
	}

	return Config{
		Addr:             ":" + strings.TrimPrefix(port, ":"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		StaticDir:        os.Getenv("STATIC_DIR"),
		LogLevel:         parseLevel(os.Getenv("LOG_LEVEL")),
		CORSAllowOrigins: origins,
		ShutdownTimeout:  shutdown,
	}
}

func parseLevel(s string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
