// Package app is the composition root for the stylus TUI. It loads
// configuration, opens the local cache, starts the background poller, and
// hands everything to the UI.
package app

import (
	"context"
	"fmt"
	"time"

	"stylus/internal/cache"
	"stylus/internal/config"
	"stylus/internal/crate"
	"stylus/internal/prefs"
	"stylus/internal/state"
	"stylus/internal/ui"
)

// Options configure the stylus application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/stylus/prefs.toml
	ServerURL  string // overrides config and environment when set
	PollEvery  time.Duration
}

// Run boots the stylus TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.ServerURL != "" {
		cfg.ServerURL = opts.ServerURL
	}
	if opts.PollEvery > 0 {
		cfg.PollInterval = opts.PollEvery
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	client, err := crate.NewClient(cfg.ServerURL)
	if err != nil {
		return fmt.Errorf("init crate client: %w", err)
	}

	store := &state.Store{}

	// The cache is optional: a second running instance or an unwritable
	// directory degrades to fetching everything fresh.
	pageCache, err := cache.Open(cfg.CacheDir)
	if err != nil {
		pageCache = nil
	}
	if pageCache != nil {
		defer pageCache.Close()
	}

	StartPoller(ctx, store, client, pageCache, cfg.PollInterval)

	uiOpts := ui.Options{
		Context:   ctx,
		Client:    client,
		Store:     store,
		Cache:     pageCache,
		Config:    cfg,
		ThemeName: userPrefs.Theme,
		StartView: userPrefs.DefaultView,
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}
