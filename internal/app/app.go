package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/tutordesk/internal/config"
	"github.com/five82/tutordesk/internal/prefs"
	"github.com/five82/tutordesk/internal/state"
	"github.com/five82/tutordesk/internal/tutorials"
	"github.com/five82/tutordesk/internal/ui"
)

// Options configure the tutordesk application.
type Options struct {
	ConfigPath     string
	PrefsPath      string // empty uses default ~/.config/tutordesk/prefs.toml
	APIURL         string // overrides api_url from the config file
	RefreshSeconds int    // overrides refresh_interval; zero keeps the config value
}

// Run boots the tutordesk TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := loadConfig(opts.ConfigPath, opts.APIURL)
	if err != nil {
		return err
	}
	if opts.RefreshSeconds > 0 {
		cfg.RefreshInterval = time.Duration(opts.RefreshSeconds) * time.Second
	}

	closeLog, err := setupLogging(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	userPrefs := prefs.Load(opts.PrefsPath)

	client, err := tutorials.NewClient(cfg.APIURL, cfg.RequestTimeout)
	if err != nil {
		return fmt.Errorf("init tutorials client: %w", err)
	}

	store := &state.Store{}

	if cfg.RefreshInterval > 0 {
		StartPoller(ctx, store, client, cfg.RefreshInterval)
	}

	log.Printf("tutordesk starting against %s", client.BaseURL())

	err = ui.Run(ui.Options{
		Context:         ctx,
		Service:         client,
		Store:           store,
		APIURL:          client.BaseURL(),
		SearchDebounce:  cfg.SearchDebounce,
		ToastDuration:   cfg.ToastDuration,
		RefreshInterval: cfg.RefreshInterval,
		ThemeName:       userPrefs.Theme,
		ShowDetail:      userPrefs.ShowDetail,
		PrefsPath:       opts.PrefsPath,
		LogFile:         cfg.LogFile,
	})
	if err == nil || errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func loadConfig(path, apiOverride string) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("load tutordesk config: %w", err)
	}
	if apiOverride != "" {
		cfg.APIURL = apiOverride
	}
	return cfg, nil
}

// setupLogging sends the standard logger to path, or discards it when path
// is empty so log output never draws over the TUI.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := tea.LogToFile(path, "tutordesk")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return func() { _ = f.Close() }, nil
}
