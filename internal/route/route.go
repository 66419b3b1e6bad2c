// Package route names the pages of the site.
package route

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gx1727/mi7site/pkg/errors"
)

// Route is a site path.
type Route string

const (
	Home     Route = "/"
	Features Route = "/features"
	About    Route = "/about"
	Contact  Route = "/contact"
)

var all = []Route{Home, Features, About, Contact}

// All returns the routes in navigation order.
func All() []Route {
	return slices.Clone(all)
}

// Strings returns the routes as plain paths.
func Strings() []string {
	out := make([]string, len(all))
	for i, r := range all {
		out[i] = string(r)
	}
	return out
}

// Parse accepts a path with or without the leading slash ("about", "/about/").
// An empty string is the home page.
func Parse(s string) (Route, error) {
	p := strings.TrimSpace(s)
	p = "/" + strings.Trim(p, "/")
	r := Route(p)
	if !slices.Contains(all, r) {
		return "", errors.NewRouteError(s, Strings())
	}
	return r, nil
}

// NavigateMsg asks the site to switch to Route.
type NavigateMsg struct {
	Route Route
}

// Navigate returns a command that emits NavigateMsg for r.
func Navigate(r Route) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Route: r} }
}

// Index is the position of r in navigation order, or -1.
func (r Route) Index() int {
	return slices.Index(all, r)
}

// Next returns the route after r, wrapping around.
func (r Route) Next() Route {
	return all[(r.Index()+1)%len(all)]
}

// Prev returns the route before r, wrapping around.
func (r Route) Prev() Route {
	i := r.Index() - 1
	if i < 0 {
		i = len(all) - 1
	}
	return all[i]
}

// LabelKey is the catalog key of the route's link text.
func (r Route) LabelKey() string {
	switch r {
	case Features:
		return "nav.features"
	case About:
		return "nav.about"
	case Contact:
		return "nav.contact"
	default:
		return "nav.home"
	}
}

// Outbound links. The site never fetches them; they are only printed.
const (
	RepoURL        = "https://github.com/gx1727/mi7soft-daemon"
	IssuesURL      = RepoURL + "/issues"
	DiscussionsURL = RepoURL + "/discussions"
	PullsURL       = RepoURL + "/pulls"
	LicenseURL     = RepoURL + "/blob/main/LICENSE"
)
