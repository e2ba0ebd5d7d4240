package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	BaseURL     string        // target for network mode, e.g. "http://localhost:8000"
	LogDir      string        // logs directory
	HTTPTimeout time.Duration // 0 means no client timeout
	ChecksFile  string        // optional YAML check list; empty uses the built-in checks
	Strict      bool          // exit non-zero when any check fails
	FixtureAddr string        // bind address for cmd/fixtureapi
}

func FromEnv() Config {
	baseURL := os.Getenv("PROBE_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8000"
	}

	// Logs
	logDir := os.Getenv("LOG_DIR")
	if logDir == "" {
		logDir = "logs"
	}

	var timeout time.Duration
	if v := os.Getenv("PROBE_HTTP_TIMEOUT_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms >= 0 {
			timeout = time.Duration(ms) * time.Millisecond
		}
	}

	strict := false
	if v := strings.TrimSpace(os.Getenv("PROBE_STRICT")); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			strict = b
		}
	}

	addr := os.Getenv("FIXTURE_ADDR")
	if addr == "" {
		addr = "127.0.0.1:8000"
	}

	return Config{
		BaseURL:     baseURL,
		LogDir:      logDir,
		HTTPTimeout: timeout,
		ChecksFile:  strings.TrimSpace(os.Getenv("PROBE_CHECKS_FILE")),
		Strict:      strict,
		FixtureAddr: addr,
	}
}
