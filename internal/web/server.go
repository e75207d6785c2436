// Package web serves the embedded browser UI: the public map viewer
// and the admin catalog manager. All data access happens through the
// REST API from client-side scripts.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

// Server is the embedded UI handler.
type Server struct {
	templates *template.Template
	mux       *http.ServeMux
}

// NewServer parses the embedded templates and wires the UI routes.
func NewServer() (*Server, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, eris.Wrap(err, "web: parse templates")
	}

	s := &Server{templates: tmpl, mux: http.NewServeMux()}

	staticContent, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, eris.Wrap(err, "web: static sub-fs")
	}

	s.mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticContent))))
	s.mux.HandleFunc("/admin", s.handleAdmin)
	s.mux.HandleFunc("/", s.handleIndex)

	return s, nil
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	s.render(w, "index.html", map[string]string{"Title": "Project Map"})
}

func (s *Server) handleAdmin(w http.ResponseWriter, r *http.Request) {
	s.render(w, "admin.html", map[string]string{"Title": "Manage GeoJSON Projects"})
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		zap.L().Error("web: render template", zap.String("template", name), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
