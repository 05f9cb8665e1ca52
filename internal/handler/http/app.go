package http

import (
	"bytes"
	_ "embed"
	"errors"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/MKhiriev/dashboard-server/internal/logger"
	"github.com/MKhiriev/dashboard-server/internal/pages"
	"github.com/MKhiriev/dashboard-server/internal/utils"
)

const indexFile = "index.html"

// pageHeader names the page the shell was served for.
const pageHeader = "X-Dashboard-Page"

//go:embed shell.html.tmpl
var shellSource string

var shellTemplate = template.Must(template.New("shell").Parse(shellSource))

func (h *Handler) getRoutes(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.PageService.Routes(r.Context()), http.StatusOK)
}

// serveApp serves a file of the built frontend when the path names one, and
// the application shell otherwise. The shell answers 404 for paths outside
// the route table so that crawlers and probes see the miss, while the browser
// still renders the not-found page.
func (h *Handler) serveApp(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if name, ok := h.staticFile(r.URL.Path); ok {
		http.ServeFileFS(w, r, h.static, name)
		return
	}

	match := h.services.PageService.Match(r.Context(), r.URL.Path)

	shell, err := h.renderShell(match)
	if err != nil {
		log.Err(err).Str("func", "*Handler.serveApp").Msg("error rendering application shell")
		http.Error(w, "error rendering application shell", http.StatusInternalServerError)
		return
	}

	status := http.StatusOK
	if match.NotFound() {
		status = http.StatusNotFound
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set(pageHeader, string(match.Page))
	w.WriteHeader(status)
	w.Write(shell)
}

// staticFile maps a request path onto a regular file of the built frontend.
// The index file is never served directly; it is the shell.
func (h *Handler) staticFile(urlPath string) (string, bool) {
	if h.static == nil {
		return "", false
	}

	name := strings.TrimPrefix(path.Clean("/"+urlPath), "/")
	if name == "" || name == indexFile || !fs.ValidPath(name) {
		return "", false
	}

	info, err := fs.Stat(h.static, name)
	if err != nil || info.IsDir() {
		return "", false
	}

	return name, true
}

type shellData struct {
	Page     pages.Page
	Path     string
	InLayout bool
}

func (h *Handler) renderShell(match pages.Match) ([]byte, error) {
	if h.static != nil {
		index, err := fs.ReadFile(h.static, indexFile)
		if err == nil {
			return index, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	var buf bytes.Buffer
	err := shellTemplate.Execute(&buf, shellData{
		Page:     match.Page,
		Path:     match.Path,
		InLayout: match.InLayout,
	})
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
