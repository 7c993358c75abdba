// Package config loads the stylus configuration file and environment
// overrides. The crate server address resolves in order of precedence:
// explicit flag (handled by the caller), CRATE_SERVER_URL, config file,
// CRATE_PORT against localhost, then the default port 3001.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures everything stylus needs to talk to the crate server and
// shape its UI timing.
type Config struct {
	ServerURL    string
	PollInterval time.Duration
	Debounce     time.Duration
	PerPage      int
	CacheDir     string
}

const (
	defaultConfigPath = "~/.config/stylus/config.toml"
	defaultCacheDir   = "~/.cache/stylus"
	defaultPort       = 3001

	defaultPollSeconds = 2
	defaultDebounceMS  = 400
	defaultPerPage     = 50

	envServerURL = "CRATE_SERVER_URL"
	envPort      = "CRATE_PORT"
)

// Load locates and parses the stylus config, falling back to defaults when
// the file is missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	var raw struct {
		ServerURL   string `toml:"server_url"`
		Port        int    `toml:"port"`
		PollSeconds int    `toml:"poll_seconds"`
		DebounceMS  int    `toml:"debounce_ms"`
		PerPage     int    `toml:"per_page"`
		CacheDir    string `toml:"cache_dir"`
	}

	file, err := os.Open(resolved)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("open config: %w", err)
		}
	} else {
		defer file.Close()
		bytes, err := io.ReadAll(file)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := toml.Unmarshal(bytes, &raw); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg := Config{
		ServerURL:    strings.TrimSpace(raw.ServerURL),
		PollInterval: secondsOr(raw.PollSeconds, defaultPollSeconds),
		Debounce:     millisOr(raw.DebounceMS, defaultDebounceMS),
		PerPage:      raw.PerPage,
		CacheDir:     strings.TrimSpace(raw.CacheDir),
	}
	if cfg.PerPage <= 0 {
		cfg.PerPage = defaultPerPage
	}

	port := raw.Port
	if env := strings.TrimSpace(os.Getenv(envPort)); env != "" {
		if parsed, err := strconv.Atoi(env); err == nil && parsed > 0 {
			port = parsed
		}
	}
	if cfg.ServerURL == "" {
		if port <= 0 {
			port = defaultPort
		}
		cfg.ServerURL = fmt.Sprintf("http://localhost:%d", port)
	}
	if env := strings.TrimSpace(os.Getenv(envServerURL)); env != "" {
		cfg.ServerURL = env
	}

	if cfg.CacheDir == "" {
		cfg.CacheDir = defaultCacheDir
	}
	cfg.CacheDir = mustExpand(cfg.CacheDir)

	return cfg, nil
}

func secondsOr(value, fallback int) time.Duration {
	if value <= 0 {
		value = fallback
	}
	return time.Duration(value) * time.Second
}

func millisOr(value, fallback int) time.Duration {
	if value <= 0 {
		value = fallback
	}
	return time.Duration(value) * time.Millisecond
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
