package http

import (
	"net/http"
	"testing"
	"testing/fstest"

	"github.com/MKhiriev/dashboard-server/internal/pages"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestGetRoutes(t *testing.T) {
	h, m := newMockedHandler(t, nil)
	m.pages.EXPECT().Routes(gomock.Any()).Return([]pages.Route{{Path: "/", Page: pages.Dashboard, InLayout: true}})

	rr := serve(h, http.MethodGet, "/api/routes")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[{"path":"/","page":"Dashboard","in_layout":true}]`, rr.Body.String())
}

func TestServeApp_BuiltInShell(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		match      pages.Match
		wantStatus int
	}{
		{
			name:       "known page",
			path:       "/sync/42",
			match:      pages.Match{Route: pages.Route{Path: "/sync/:id", Page: pages.ViewEditSync, InLayout: true}, Params: map[string]string{"id": "42"}},
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown page",
			path:       "/nope",
			match:      pages.Match{Route: pages.Route{Path: "*", Page: pages.NotFound, InLayout: true}, Params: map[string]string{}},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newMockedHandler(t, nil)
			m.pages.EXPECT().Match(gomock.Any(), tt.path).Return(tt.match)

			rr := serve(h, http.MethodGet, tt.path)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
			assert.Equal(t, string(tt.match.Page), rr.Header().Get(pageHeader))
			assert.Contains(t, rr.Body.String(), `<script src="/env-config.js"></script>`)
			assert.Contains(t, rr.Body.String(), `data-page="`+string(tt.match.Page)+`"`)
		})
	}
}

func TestServeApp_StaticIndexIsShell(t *testing.T) {
	static := fstest.MapFS{
		"index.html":    {Data: []byte("<html>built</html>")},
		"assets/app.js": {Data: []byte("console.log(1)")},
	}
	h, m := newMockedHandler(t, static)
	m.pages.EXPECT().Match(gomock.Any(), "/chat/abc").Return(pages.Match{
		Route:  pages.Route{Path: "/chat/:chatId?", Page: pages.Chat, InLayout: true},
		Params: map[string]string{"chatId": "abc"},
	})

	rr := serve(h, http.MethodGet, "/chat/abc")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "<html>built</html>", rr.Body.String())
}

func TestServeApp_StaticAsset(t *testing.T) {
	static := fstest.MapFS{
		"index.html":    {Data: []byte("<html>built</html>")},
		"assets/app.js": {Data: []byte("console.log(1)")},
	}
	h, m := newMockedHandler(t, static)
	m.pages.EXPECT().Match(gomock.Any(), gomock.Any()).Times(0)

	rr := serve(h, http.MethodGet, "/assets/app.js")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "console.log(1)", rr.Body.String())
	assert.Contains(t, rr.Header().Get("Content-Type"), "javascript")
}

func TestServeApp_DirectoryFallsBackToShell(t *testing.T) {
	static := fstest.MapFS{
		"assets/app.js": {Data: []byte("console.log(1)")},
	}
	h, m := newMockedHandler(t, static)
	m.pages.EXPECT().Match(gomock.Any(), "/assets").Return(pages.Match{
		Route:  pages.Route{Path: "*", Page: pages.NotFound, InLayout: true},
		Params: map[string]string{},
	})

	rr := serve(h, http.MethodGet, "/assets")

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), `data-page="NotFound"`, "no index.html means the built-in shell")
}

func TestStaticFile(t *testing.T) {
	h := newTestHandler()
	h.static = fstest.MapFS{
		"index.html":  {Data: []byte("x")},
		"favicon.ico": {Data: []byte("x")},
		"assets/a.js": {Data: []byte("x")},
	}

	tests := []struct {
		path   string
		want   string
		wantOK bool
	}{
		{"/favicon.ico", "favicon.ico", true},
		{"/assets/a.js", "assets/a.js", true},
		{"/assets/../favicon.ico", "favicon.ico", true},
		{"/", "", false},
		{"/index.html", "", false},
		{"/assets", "", false},
		{"/missing.js", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := h.staticFile(tt.path)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
