// Package edge serves the static front-end and forwards identifier-shaped
// paths to the shortener service. It never looks at the mapping itself.
package edge

import (
	"errors"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/serroba/shortlink/internal/shortener"
	"go.uber.org/zap"
)

// IndexFile is the entry page served for the root and for unknown paths.
const IndexFile = "index.html"

// Handler routes edge requests.
type Handler struct {
	assets       fs.FS
	files        http.Handler
	shortenerURL string
	codeLength   int
	logger       *zap.Logger
}

// NewHandler serves assets from the root of assets and redirects short
// identifiers of codeLength characters to shortenerURL + "/" + id.
func NewHandler(assets fs.FS, shortenerURL string, codeLength int, logger *zap.Logger) *Handler {
	return &Handler{
		assets:       assets,
		files:        http.FileServerFS(assets),
		shortenerURL: strings.TrimSuffix(shortenerURL, "/"),
		codeLength:   codeLength,
		logger:       logger,
	}
}

// RegisterRoutes mounts the edge routes on r, which must not have routes yet.
// HEAD requests are answered by the GET handlers.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Use(chimw.GetHead)

	r.Get("/", h.Index)
	r.Get("/{segment}", h.Segment)
	r.Get("/*", h.Asset)
}

// Index serves the entry page.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	h.serveIndex(w, r)
}

// Segment handles single-segment paths. Existing assets win; identifier-shaped
// segments are redirected to the shortener; everything else gets the entry page.
func (h *Handler) Segment(w http.ResponseWriter, r *http.Request) {
	segment := chi.URLParam(r, "segment")

	if h.isFile(segment) {
		h.files.ServeHTTP(w, r)

		return
	}

	if shortener.IsCode(segment, h.codeLength) {
		target := h.shortenerURL + "/" + segment

		h.logger.Debug("forwarding short id", zap.String("shortId", segment), zap.String("target", target))
		http.Redirect(w, r, target, http.StatusFound)

		return
	}

	h.serveIndex(w, r)
}

// Asset serves nested static files, falling back to the entry page.
func (h *Handler) Asset(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(path.Clean(r.URL.Path), "/")

	if h.isFile(name) {
		h.files.ServeHTTP(w, r)

		return
	}

	h.serveIndex(w, r)
}

func (h *Handler) isFile(name string) bool {
	if name == "" || !fs.ValidPath(name) {
		return false
	}

	info, err := fs.Stat(h.assets, name)

	return err == nil && !info.IsDir()
}

func (h *Handler) serveIndex(w http.ResponseWriter, r *http.Request) {
	data, err := fs.ReadFile(h.assets, IndexFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			h.logger.Error("entry page missing", zap.String("file", IndexFile))
		} else {
			h.logger.Error("failed to read entry page", zap.Error(err))
		}

		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)

	if r.Method != http.MethodHead {
		_, _ = w.Write(data)
	}
}
