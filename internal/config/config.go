package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Config struct {
	BackendURL     string
	SessionFile    string
	RequestTimeout time.Duration

	TraceEndpoint string
	TraceInsecure bool
}

func Load() Config {
	backend := os.Getenv("JOBLENS_BACKEND_URL")
	if backend == "" {
		backend = "http://localhost:8000"
	}

	sessionFile := os.Getenv("JOBLENS_SESSION_FILE")
	if sessionFile == "" {
		sessionFile = defaultSessionFile()
	}

	return Config{
		BackendURL:     backend,
		SessionFile:    sessionFile,
		RequestTimeout: time.Duration(readInt("JOBLENS_HTTP_TIMEOUT_SECONDS", 15)) * time.Second,
		TraceEndpoint:  os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		TraceInsecure:  os.Getenv("OTEL_EXPORTER_OTLP_INSECURE") == "true",
	}
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".joblens-session.json"
	}
	return filepath.Join(home, ".joblens", "session.json")
}

func readInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
