package main

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/gx1727/mi7site/internal/config"
	"github.com/gx1727/mi7site/internal/logger"
	"github.com/gx1727/mi7site/internal/route"
	"github.com/gx1727/mi7site/internal/tui/site"
)

func newBrowseCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse [route]",
		Short: "Open the interactive site",
		Long: `Open the interactive site at the given route (/, /features, /about or
/contact). Logs go to a file because the site owns the terminal.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start := route.Home
			if len(args) == 1 {
				r, err := route.Parse(args[0])
				if err != nil {
					return err
				}
				start = r
			}
			return runBrowse(cmd, flags, start)
		},
	}

	return cmd
}

func runBrowse(cmd *cobra.Command, flags *rootFlags, start route.Route) error {
	app, err := newAppContext(flags, func(cfg config.Config) (*logger.Logger, io.Closer, error) {
		return fileLogger(cmd, flags, cfg)
	})
	if err != nil {
		return err
	}
	defer app.Close()

	ctx := cmd.Context()
	opts, cancel := siteSession(ctx, app, start)
	defer cancel()

	model := site.New(opts)

	app.Logger.With("route", string(start)).Info("launching site")
	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		app.Logger.Error(err, "site execution failed")
		return fmt.Errorf("failed to run site: %w", err)
	}

	app.Logger.Info("site closed")
	return nil
}

// siteSession derives the context submissions run under. Quitting the site
// cancels only this child; the program context ends on its parent alone.
func siteSession(parent context.Context, app *AppContext, start route.Route) (site.Options, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	return app.SiteOptions(ctx, cancel, start), cancel
}

// fileLogger opens the log file from --log-file, the config, or the default
// cache location. A log file that cannot be opened only costs the logs.
func fileLogger(cmd *cobra.Command, flags *rootFlags, cfg config.Config) (*logger.Logger, io.Closer, error) {
	path := flags.logFile
	if path == "" {
		path = cfg.LogFile
	}
	if path == "" {
		p, err := config.DefaultLogPath()
		if err != nil {
			return logger.Nop(), nil, nil
		}
		path = p
	}

	l, closer, err := logger.OpenFile(path, logLevel(flags, cfg))
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: logging disabled: %v\n", err)
		return logger.Nop(), nil, nil
	}
	return l, closer, nil
}
