package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/gx1727/mi7site/internal/config"
	"github.com/gx1727/mi7site/internal/logger"
	"github.com/gx1727/mi7site/internal/route"
	"github.com/gx1727/mi7site/internal/tui/site"
)

const defaultRenderWidth = 100

type renderOptions struct {
	width int
	color string
}

func newRenderCmd(flags *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <route>",
		Short: "Print a page without starting the interactive site",
		Long: `Print a page of the site to standard output with every code block fully
typed out. Useful for piping, screenshots and checking translations.`,
		Example: `  mi7site render /features
  mi7site render about --lang zh --width 80 --color never`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := route.Parse(args[0])
			if err != nil {
				return err
			}
			return runRender(cmd, flags, opts, r)
		},
	}

	cmd.Flags().IntVarP(&opts.width, "width", "w", 0, "Output width in columns (default: terminal width or 100)")
	cmd.Flags().StringVar(&opts.color, "color", "auto", "Color output: auto, always or never")

	return cmd
}

func runRender(cmd *cobra.Command, flags *rootFlags, opts *renderOptions, r route.Route) error {
	profile, err := colorProfile(opts.color)
	if err != nil {
		return err
	}

	app, err := newAppContext(flags, func(cfg config.Config) (*logger.Logger, io.Closer, error) {
		if !flags.verbose {
			return logger.Nop(), nil, nil
		}
		l, err := logger.New(logger.Options{Level: "debug", HumanReadable: true, Writer: cmd.ErrOrStderr()})
		return l, nil, err
	})
	if err != nil {
		return err
	}
	defer app.Close()

	if profile != nil {
		previous := lipgloss.ColorProfile()
		lipgloss.SetColorProfile(*profile)
		defer lipgloss.SetColorProfile(previous)
	}

	width := resolveWidth(opts.width, cmd.OutOrStdout())
	app.Logger.WithFields(map[string]any{"route": string(r), "width": width}).Debug("rendering page")

	_, err = fmt.Fprint(cmd.OutOrStdout(), site.Render(app.SiteOptions(cmd.Context(), nil, r), width))
	return err
}

func colorProfile(mode string) (*termenv.Profile, error) {
	var p termenv.Profile
	switch mode {
	case "", "auto":
		return nil, nil
	case "always":
		p = termenv.ANSI256
	case "never":
		p = termenv.Ascii
	default:
		return nil, fmt.Errorf("invalid --color %q (valid: auto, always, never)", mode)
	}
	return &p, nil
}

// resolveWidth prefers the flag, then the size of the terminal behind out.
func resolveWidth(flagWidth int, out io.Writer) int {
	if flagWidth > 0 {
		return flagWidth
	}
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}
	return defaultRenderWidth
}
