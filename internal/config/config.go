package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the settings tutordesk reads from config.toml.
type Config struct {
	APIURL          string
	RequestTimeout  time.Duration
	SearchDebounce  time.Duration
	ToastDuration   time.Duration
	RefreshInterval time.Duration
	LogFile         string
}

const (
	defaultConfigPath      = "~/.config/tutordesk/config.toml"
	defaultAPIURL          = "http://127.0.0.1:8080"
	defaultRequestTimeout  = 5 * time.Second
	defaultSearchDebounce  = 300 * time.Millisecond
	defaultToastDuration   = 3500 * time.Millisecond
	defaultRefreshInterval = 0
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		APIURL:          defaultAPIURL,
		RequestTimeout:  defaultRequestTimeout,
		SearchDebounce:  defaultSearchDebounce,
		ToastDuration:   defaultToastDuration,
		RefreshInterval: defaultRefreshInterval,
	}
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIURL          string `toml:"api_url"`
		RequestTimeout  string `toml:"request_timeout"`
		SearchDebounce  string `toml:"search_debounce"`
		ToastDuration   string `toml:"toast_duration"`
		RefreshInterval string `toml:"refresh_interval"`
		LogFile         string `toml:"log_file"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.APIURL = strings.TrimSpace(raw.APIURL)
	if cfg.APIURL == "" {
		cfg.APIURL = defaultAPIURL
	}

	durations := []struct {
		key  string
		raw  string
		dest *time.Duration
	}{
		{"request_timeout", raw.RequestTimeout, &cfg.RequestTimeout},
		{"search_debounce", raw.SearchDebounce, &cfg.SearchDebounce},
		{"toast_duration", raw.ToastDuration, &cfg.ToastDuration},
		{"refresh_interval", raw.RefreshInterval, &cfg.RefreshInterval},
	}
	for _, d := range durations {
		value := strings.TrimSpace(d.raw)
		if value == "" {
			continue
		}
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", d.key, err)
		}
		if parsed < 0 {
			return Config{}, fmt.Errorf("parse %s: must not be negative", d.key)
		}
		*d.dest = parsed
	}

	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}

	return cfg, nil
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
