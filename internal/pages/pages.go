// Package pages holds the dashboard route table: which page renders for a
// browser path, which parameters the path carries, and whether the page sits
// inside the shared dashboard layout.
//
// Paths are declared in the router notation of the frontend (":id" segments,
// a trailing "?" for an optional segment, "*" for the catch-all) and compiled
// into a chi tree for matching.
package pages

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Page identifies a dashboard page component.
type Page string

const (
	Dashboard          Page = "Dashboard"
	SyncTableView      Page = "SyncTableView"
	SyncCreate         Page = "SyncCreate"
	ViewEditSync       Page = "ViewEditSync"
	Sources            Page = "Sources"
	Destinations       Page = "Destinations"
	WhiteLabel         Page = "WhiteLabel"
	CreateWhiteLabel   Page = "CreateWhiteLabel"
	ViewEditWhiteLabel Page = "ViewEditWhiteLabel"
	Settings           Page = "Settings"
	Profile            Page = "Profile"
	Chat               Page = "Chat"
	NotFound           Page = "NotFound"
	AuthCallback       Page = "AuthCallback"
)

// Route maps a declared path to a page.
type Route struct {
	// Path is the declared path, e.g. "/sync/:id/job/:jobId".
	Path string `json:"path"`
	// Page is the page rendered for the path.
	Page Page `json:"page"`
	// InLayout reports whether the page renders inside the dashboard layout.
	InLayout bool `json:"in_layout"`
}

// Match is the result of resolving a browser path.
type Match struct {
	Route
	// Params holds the path parameters by name. It is never nil.
	Params map[string]string `json:"params"`
}

// NotFound reports whether the path fell through to the catch-all route.
func (m Match) NotFound() bool {
	return m.Page == NotFound
}

// DefaultRoutes is the dashboard route table, in declaration order.
var DefaultRoutes = []Route{
	{Path: "/", Page: Dashboard, InLayout: true},
	{Path: "/dashboard", Page: Dashboard, InLayout: true},

	{Path: "/sync", Page: SyncTableView, InLayout: true},
	{Path: "/sync/create", Page: SyncCreate, InLayout: true},
	{Path: "/sync/:id", Page: ViewEditSync, InLayout: true},
	{Path: "/sync/:id/job/:jobId", Page: ViewEditSync, InLayout: true},

	{Path: "/sources", Page: Sources, InLayout: true},
	{Path: "/destinations", Page: Destinations, InLayout: true},

	{Path: "/white-label", Page: WhiteLabel, InLayout: true},
	{Path: "/white-label/create", Page: CreateWhiteLabel, InLayout: true},
	{Path: "/white-label/:id", Page: ViewEditWhiteLabel, InLayout: true},

	{Path: "/settings", Page: Settings, InLayout: true},
	{Path: "/profile", Page: Profile, InLayout: true},
	{Path: "/chat/:chatId?", Page: Chat, InLayout: true},

	{Path: "*", Page: NotFound, InLayout: true},

	{Path: "/auth/callback/:short_name", Page: AuthCallback, InLayout: false},
}

// Table resolves browser paths against a route table.
type Table struct {
	routes   []Route
	mux      *chi.Mux
	patterns map[string]Route
	notFound Route
}

// NewTable compiles routes. The route whose path is "*" becomes the fallback;
// without one, unmatched paths resolve to a [NotFound] page inside the layout.
func NewTable(routes []Route) *Table {
	t := &Table{
		routes:   routes,
		mux:      chi.NewRouter(),
		patterns: make(map[string]Route, len(routes)+1),
		notFound: Route{Path: "*", Page: NotFound, InLayout: true},
	}

	noop := func(http.ResponseWriter, *http.Request) {}
	for _, route := range routes {
		if route.Path == "*" {
			t.notFound = route
			continue
		}
		for _, pattern := range chiPatterns(route.Path) {
			t.patterns[pattern] = route
			t.mux.Get(pattern, noop)
		}
	}

	return t
}

// Routes returns the declared routes in declaration order.
func (t *Table) Routes() []Route {
	out := make([]Route, len(t.routes))
	copy(out, t.routes)
	return out
}

// Match resolves path. A trailing slash is ignored. Unknown paths resolve to
// the fallback route with no parameters.
func (t *Table) Match(path string) Match {
	if path == "" {
		path = "/"
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			path = "/"
		}
	}

	rctx := chi.NewRouteContext()
	if !t.mux.Match(rctx, http.MethodGet, path) || len(rctx.RoutePatterns) == 0 {
		return Match{Route: t.notFound, Params: map[string]string{}}
	}

	route, ok := t.patterns[rctx.RoutePatterns[len(rctx.RoutePatterns)-1]]
	if !ok {
		return Match{Route: t.notFound, Params: map[string]string{}}
	}

	params := make(map[string]string, len(rctx.URLParams.Keys))
	for i, key := range rctx.URLParams.Keys {
		params[key] = rctx.URLParams.Values[i]
	}

	return Match{Route: route, Params: params}
}

// chiPatterns converts a declared path into chi patterns. An optional last
// segment ("/chat/:chatId?") yields one pattern without and one with it.
func chiPatterns(path string) []string {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	if len(segments) == 1 && segments[0] == "" {
		return []string{"/"}
	}

	var (
		converted = make([]string, 0, len(segments))
		optional  bool
	)
	for i, segment := range segments {
		if strings.HasPrefix(segment, ":") {
			name := strings.TrimPrefix(segment, ":")
			if strings.HasSuffix(name, "?") && i == len(segments)-1 {
				name = strings.TrimSuffix(name, "?")
				optional = true
			}
			segment = "{" + name + "}"
		}
		converted = append(converted, segment)
	}

	full := "/" + strings.Join(converted, "/")
	if !optional {
		return []string{full}
	}

	without := "/" + strings.Join(converted[:len(converted)-1], "/")
	return []string{without, full}
}
