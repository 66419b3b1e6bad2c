package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gx1727/mi7site/internal/config"
	"github.com/gx1727/mi7site/internal/contact"
	"github.com/gx1727/mi7site/internal/i18n"
	"github.com/gx1727/mi7site/internal/logger"
	"github.com/gx1727/mi7site/internal/route"
	"github.com/gx1727/mi7site/internal/tui/pages"
	"github.com/gx1727/mi7site/internal/tui/site"
)

// AppContext bundles what every command resolves at startup.
type AppContext struct {
	Config  config.Config
	Catalog *i18n.Catalog
	Locale  i18n.Locale
	Logger  *logger.Logger

	flags  *rootFlags
	closer io.Closer
}

// Close releases the log file, if one was opened.
func (a *AppContext) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}

func loadConfig(flags *rootFlags) (config.Config, error) {
	path := flags.configPath
	explicit := path != ""
	if !explicit {
		p, err := config.DefaultPath()
		if err != nil {
			// no config directory: run on defaults
			return config.Default(), nil
		}
		path = p
	}

	cfg, err := config.Load(path, explicit)
	if err != nil {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// resolveLocale applies flag, then config, then the environment.
func resolveLocale(flagValue, configValue string, getenv func(string) string) (i18n.Locale, error) {
	if flagValue != "" {
		loc, ok := i18n.ParseLocale(flagValue)
		if !ok {
			return "", fmt.Errorf("invalid --lang %q (supported: %s)", flagValue, supportedLocales())
		}
		return loc, nil
	}
	if configValue != "" {
		if loc, ok := i18n.ParseLocale(configValue); ok {
			return loc, nil
		}
	}
	return i18n.Detect(getenv), nil
}

func supportedLocales() string {
	names := make([]string, 0, len(i18n.Supported()))
	for _, loc := range i18n.Supported() {
		names = append(names, loc.String())
	}
	return strings.Join(names, ", ")
}

// newAppContext loads config, catalog and locale. log builds the logger once
// the config is known.
func newAppContext(flags *rootFlags, log func(config.Config) (*logger.Logger, io.Closer, error)) (*AppContext, error) {
	cfg, err := loadConfig(flags)
	if err != nil {
		return nil, err
	}

	catalog, err := i18n.Default()
	if err != nil {
		return nil, fmt.Errorf("failed to load messages: %w", err)
	}

	loc, err := resolveLocale(flags.lang, cfg.Language, os.Getenv)
	if err != nil {
		return nil, err
	}

	l, closer, err := log(cfg)
	if err != nil {
		return nil, err
	}

	l.WithFields(map[string]any{"locale": loc.String(), "config": flags.configPath}).Debug("configuration loaded")

	return &AppContext{
		Config:  cfg,
		Catalog: catalog,
		Locale:  loc,
		Logger:  l,
		flags:   flags,
		closer:  closer,
	}, nil
}

// SiteOptions maps the resolved settings onto the site shell.
func (a *AppContext) SiteOptions(ctx context.Context, cancel context.CancelFunc, start route.Route) site.Options {
	return site.Options{
		Catalog: a.Catalog,
		Locale:  a.Locale,
		Start:   start,
		Pages: pages.Options{
			TypingInterval: a.Config.TypingInterval,
			CursorBlink:    a.Config.CursorBlink,
			BannerTimeout:  a.Config.BannerTimeout,
			Submitter: &contact.SimulatedSubmitter{
				Delay:        a.Config.SubmitDelay,
				FailureRate:  a.Config.FailureRate,
				ForceFailure: a.flags.simulateFailure,
			},
			Logger:  a.Logger,
			Context: ctx,
		},
		ScrollThreshold: a.Config.ScrollThreshold,
		MenuBreakpoint:  a.Config.MenuBreakpoint,
		Logger:          a.Logger,
		Cancel:          cancel,
	}
}

func logLevel(flags *rootFlags, cfg config.Config) string {
	if flags.verbose {
		return "debug"
	}
	if cfg.LogLevel != "" {
		return cfg.LogLevel
	}
	return "info"
}
