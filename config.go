package main

import (
	"log/slog"
	"os"
)

type Config struct {
	Port          string
	CORSOrigin    string
	KafkaEndpoint string
	LogLevel      string
	LogJSON       bool
}

func loadConfig() Config {
	return Config{
		Port:          envOr("PORT", "3000"),
		CORSOrigin:    envOr("CORS_ORIGIN", "*"),
		KafkaEndpoint: os.Getenv("KAFKA_ENDPOINT"),
		LogLevel:      envOr("LOG_LEVEL", "info"),
		LogJSON:       os.Getenv("LOG_JSON") == "true",
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func newLogger(cfg Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.LogJSON {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.New(handler)
}
