// Package api exposes the REST surface over the comment log, the user
// file, and the GeoJSON catalog.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/sells-group/projectmap/internal/config"
	"github.com/sells-group/projectmap/internal/store"
)

// Server bundles the stores behind the HTTP handlers. It holds no
// request state; every handler reads the backing files fresh.
type Server struct {
	comments store.CommentStore
	users    *store.UserStore
	catalog  *store.Catalog
}

// New creates an API server over the given stores.
func New(comments store.CommentStore, users *store.UserStore, catalog *store.Catalog) *Server {
	return &Server{
		comments: comments,
		users:    users,
		catalog:  catalog,
	}
}

// Router builds the full route tree. ui, when non-nil, serves every
// path the API does not claim (the embedded viewer and admin pages).
func (s *Server) Router(corsCfg config.CORSConfig, ui http.Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(requestLogger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsCfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Post("/login", s.handleLogin)

		r.Get("/comments", s.handleListComments)
		r.Post("/comments", s.handleCreateComment)
		r.Delete("/comments", s.handleDeleteComments)

		r.Route("/geojson", func(r chi.Router) {
			r.Get("/list", s.handleListDatasets)
			r.Get("/active", s.handleActiveDataset)
			r.Post("/set-active", s.handleSetActive)
			r.Post("/upload", s.handleUpload)
			r.Delete("/delete-all", s.handleDeleteDatasets)
		})

		r.Get("/projects/{projectID}/export", s.handleExport)

		// Unmatched API routes answer 404 JSON, never the UI fallback.
		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			respondError(w, http.StatusNotFound, "Not Found")
		})
	})

	// The viewer's static-bundle variant fetches the dataset directly.
	r.Get("/projects.geojson", s.handleRawActive)

	if ui != nil {
		r.Handle("/*", ui)
	}

	return r
}
