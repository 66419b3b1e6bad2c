// Package pages holds the four pages of the site. Each page is a Bubble Tea
// style value model that the site shell mounts when its route becomes active
// and unmounts when the visitor navigates away.
package pages

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gx1727/mi7site/internal/contact"
	"github.com/gx1727/mi7site/internal/i18n"
	"github.com/gx1727/mi7site/internal/logger"
	"github.com/gx1727/mi7site/internal/route"
	"github.com/gx1727/mi7site/internal/typewriter"
)

// Context carries what a page needs to render.
type Context struct {
	Messages i18n.Messages
	Width    int
}

// Page is one route of the site.
type Page interface {
	Route() route.Route
	// TitleKey is the catalog key of the page's main heading.
	TitleKey() string
	// Mount starts the page's timers; a revisit restarts them.
	Mount() (Page, tea.Cmd)
	// Unmount invalidates every timer the page scheduled.
	Unmount() Page
	// Reveal skips animations, used for static rendering.
	Reveal() Page
	Update(msg tea.Msg) (Page, tea.Cmd)
	View(ctx Context) string
}

// InputCapturer is implemented by pages that sometimes need every key, such
// as the contact page while a field has focus.
type InputCapturer interface {
	Capturing() bool
}

// Options configures page construction.
type Options struct {
	TypingInterval time.Duration
	CursorBlink    time.Duration
	BannerTimeout  time.Duration
	Submitter      contact.Submitter
	Logger         *logger.Logger
	// Context bounds in-flight submissions. Cancelling it aborts them.
	Context context.Context
}

// DefaultBannerTimeout is how long a submission banner stays up.
const DefaultBannerTimeout = 5 * time.Second

func (o Options) typing() []typewriter.Option {
	return []typewriter.Option{
		typewriter.WithInterval(o.TypingInterval),
		typewriter.WithBlink(o.CursorBlink),
	}
}

func (o Options) withDefaults() Options {
	if o.BannerTimeout <= 0 {
		o.BannerTimeout = DefaultBannerTimeout
	}
	if o.Submitter == nil {
		o.Submitter = &contact.SimulatedSubmitter{Delay: 1500 * time.Millisecond}
	}
	if o.Logger == nil {
		o.Logger = logger.Nop()
	}
	if o.Context == nil {
		o.Context = context.Background()
	}
	return o
}

// All builds every page in navigation order.
func All(opts Options) []Page {
	return []Page{
		NewHome(opts),
		NewFeatures(opts),
		NewAbout(opts),
		NewContact(opts),
	}
}
