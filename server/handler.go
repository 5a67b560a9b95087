// Package server exposes the release catalog over HTTP: the JSON API under
// /api, redirects to release files, and the release tree itself.
package server

import (
	"encoding/json"
	"io/fs"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/relcat/relcat/catalog"
	"github.com/relcat/relcat/fsdir"
	"github.com/relcat/relcat/log"
	"github.com/relcat/relcat/models"
	"github.com/relcat/relcat/naming"
	"github.com/relcat/relcat/render"
	"github.com/relcat/relcat/resolver"
	"github.com/relcat/relcat/revision"
)

// Handler serves the catalog of one release tree.
type Handler struct {
	resolver *resolver.Resolver
	files    fs.FS
	title    string
	revision func() string
	now      func() time.Time
}

// HandlerConfig configures the handler.
type HandlerConfig struct {
	// Files is the release tree (required).
	Files fs.FS
	// Title prefixes detail page titles.
	Title string
	// LatestByVersion picks the highest version as latest.
	LatestByVersion bool
	// Revision reports the server revision. Defaults to revision.Short.
	Revision func() string
}

func NewHandler(cfg HandlerConfig) *Handler {
	b := catalog.NewBuilder(fsdir.NewDirLister(cfg.Files))
	b.URLPrefix = "/"
	b.LatestByVersion = cfg.LatestByVersion

	rev := cfg.Revision
	if rev == nil {
		rev = revision.Short
	}
	return &Handler{
		resolver: resolver.New(b),
		files:    cfg.Files,
		title:    cfg.Title,
		revision: rev,
		now:      time.Now,
	}
}

// Routes returns an http.Handler with all routes registered.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api", h.ListApps)
	mux.HandleFunc("GET /api/{app}", h.Versions)
	mux.HandleFunc("GET /api/{app}/{platform}", h.Versions)

	for _, kind := range []naming.Kind{naming.Binary, naming.Notes, naming.Page} {
		mux.HandleFunc("GET /api/"+string(kind)+"/{app}/{version}", h.Artifact(kind))
		mux.HandleFunc("GET /api/"+string(kind)+"/{app}/{platform}/{version}", h.Artifact(kind))
	}

	mux.HandleFunc("GET /", h.Static)

	return withLogging(mux)
}

// === Response Types ===

type appResponse struct {
	Name     string `json:"name"`
	Platform string `json:"platform,omitempty"`
	URL      string `json:"url"`
}

// ListAppsResponse is the body of GET /api.
type ListAppsResponse struct {
	Status  string        `json:"status"`
	Version string        `json:"version"`
	Apps    []appResponse `json:"apps"`
}

// VersionsResponse is the body of GET /api/{app}[/{platform}].
type VersionsResponse struct {
	Status string          `json:"status"`
	Data   *models.Catalog `json:"data"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

// === Handlers ===

// ListApps handles GET /api.
func (h *Handler) ListApps(w http.ResponseWriter, r *http.Request) {
	refs, err := h.resolver.ListApps()
	if err != nil {
		h.fail(w, r, err)
		return
	}

	apps := make([]appResponse, 0, len(refs))
	for _, ref := range refs {
		apps = append(apps, appResponse{
			Name:     ref.Name,
			Platform: ref.Platform,
			URL:      "/api/" + ref.Path(),
		})
	}
	writeJSON(w, http.StatusOK, ListAppsResponse{
		Status:  "ok",
		Version: h.revision(),
		Apps:    apps,
	})
}

// Versions handles GET /api/{app}[/{platform}]?after=<version>&latest.
func (h *Handler) Versions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	c, err := h.resolver.QueryVersions(r.PathValue("app"), r.PathValue("platform"), q.Get("after"), q.Has("latest"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, VersionsResponse{Status: "ok", Data: c})
}

// Artifact handles GET /api/<kind>/{app}[/{platform}]/{version}.
func (h *Handler) Artifact(kind naming.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ref, err := h.resolver.ResolveArtifact(r.PathValue("app"), r.PathValue("platform"), r.PathValue("version"), kind)
		if err != nil {
			h.fail(w, r, err)
			return
		}

		if ref.Render {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			if err := render.Detail(w, h.title, ref.App, ref.Version, ref.Entry); err != nil {
				log.G(r.Context()).WithError(err).Error("render detail page")
			}
			return
		}

		target := (&url.URL{Path: "/" + ref.Location}).String()
		http.Redirect(w, r, target, http.StatusTemporaryRedirect)
	}
}

// Static serves files of the release tree and lists its directories.
func (h *Handler) Static(w http.ResponseWriter, r *http.Request) {
	name := strings.Trim(path.Clean(r.URL.Path), "/")
	if name == "" {
		name = "."
	}
	if !fs.ValidPath(name) {
		http.NotFound(w, r)
		return
	}

	info, err := fs.Stat(h.files, name)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if !info.IsDir() {
		http.ServeFileFS(w, r, h.files, name)
		return
	}

	dirEntries, err := fs.ReadDir(h.files, name)
	if err != nil {
		log.G(r.Context()).WithError(err).Warn("list directory")
		http.Error(w, "cannot list directory", http.StatusInternalServerError)
		return
	}
	entries := make([]render.ListingEntry, 0, len(dirEntries))
	for _, d := range dirEntries {
		e := render.ListingEntry{Name: d.Name(), IsDir: d.IsDir()}
		if fi, err := d.Info(); err == nil {
			e.Size = fi.Size()
			e.ModTime = fi.ModTime()
		}
		entries = append(entries, e)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := render.Listing(w, name, entries, h.now()); err != nil {
		log.G(r.Context()).WithError(err).Error("render listing")
	}
}

// === Helpers ===

// fail answers every error with 400, as clients of this API expect.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	entry := log.G(r.Context()).WithError(err)
	if catalog.IsNotFound(err) {
		entry.Info("not found")
	} else {
		entry.Warn("request failed")
	}
	writeJSON(w, http.StatusBadRequest, ErrorResponse{Status: "err", Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.L.WithError(err).Warn("encode response")
	}
}
