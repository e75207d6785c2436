package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/projectmap/internal/auth"
	"github.com/sells-group/projectmap/internal/export"
	"github.com/sells-group/projectmap/internal/geodata"
	"github.com/sells-group/projectmap/internal/model"
	"github.com/sells-group/projectmap/internal/store"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleLogin is a one-shot credential check. No session or token is
// issued; admin routes remain open regardless of the outcome.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := auth.Authenticate(r.Context(), s.users, req.Email, req.Password)
	switch {
	case err == nil:
		respondMessage(w, "Login successful!")
	case eris.Is(err, auth.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, "Invalid credentials")
	default:
		zap.L().Error("api: login failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to process login")
	}
}

func (s *Server) handleListComments(w http.ResponseWriter, r *http.Request) {
	comments, err := s.comments.List(r.Context())
	if err != nil {
		zap.L().Error("api: list comments", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to read comments")
		return
	}
	respondJSON(w, http.StatusOK, comments)
}

// handleCreateComment stores the body as-is. There is deliberately no
// required-field check; any subset of the comment fields is accepted.
func (s *Server) handleCreateComment(w http.ResponseWriter, r *http.Request) {
	var c model.Comment
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	stored, err := s.comments.Append(r.Context(), c)
	if err != nil {
		zap.L().Error("api: save comment", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to save comment")
		return
	}
	respondJSON(w, http.StatusCreated, stored)
}

func (s *Server) handleDeleteComments(w http.ResponseWriter, r *http.Request) {
	if err := s.comments.DeleteAll(r.Context()); err != nil {
		zap.L().Error("api: delete comments", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to delete comments")
		return
	}
	respondMessage(w, "All comments deleted")
}

func (s *Server) handleListDatasets(w http.ResponseWriter, r *http.Request) {
	names, err := s.catalog.List(r.Context())
	if err != nil {
		zap.L().Error("api: list datasets", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to list GeoJSON files")
		return
	}
	respondJSON(w, http.StatusOK, names)
}

// activeResponse carries null filename and data when no dataset is
// active, which the frontend treats as "nothing to render yet".
type activeResponse struct {
	Filename    *string         `json:"filename"`
	GeoJSONData json.RawMessage `json:"geojsonData"`
}

func (s *Server) handleActiveDataset(w http.ResponseWriter, r *http.Request) {
	name, data, err := s.catalog.Active(r.Context())
	if err != nil {
		zap.L().Error("api: read active dataset", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to read active GeoJSON")
		return
	}

	if name == "" {
		respondJSON(w, http.StatusOK, activeResponse{})
		return
	}

	if !json.Valid(data) {
		zap.L().Error("api: active dataset is not valid JSON", zap.String("filename", name))
		respondError(w, http.StatusInternalServerError, "Failed to read active GeoJSON")
		return
	}

	respondJSON(w, http.StatusOK, activeResponse{
		Filename:    &name,
		GeoJSONData: json.RawMessage(data),
	})
}

func (s *Server) handleSetActive(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Filename string `json:"filename"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Filename == "" {
		respondError(w, http.StatusBadRequest, "Filename is required")
		return
	}

	err := s.catalog.SetActive(r.Context(), req.Filename)
	switch {
	case err == nil:
		respondMessage(w, req.Filename+" is now the active GeoJSON file")
	case eris.Is(err, store.ErrDatasetNotFound):
		respondError(w, http.StatusNotFound, "File not found")
	default:
		zap.L().Error("api: set active dataset", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to set active GeoJSON")
	}
}

// handleUpload stores the multipart file under its original filename,
// replacing any same-named dataset. The name is trusted verbatim.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("geojson")
	if err != nil {
		respondError(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	if err := s.catalog.Save(r.Context(), header.Filename, file); err != nil {
		zap.L().Error("api: save uploaded dataset", zap.String("filename", header.Filename), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to save uploaded file")
		return
	}
	respondMessage(w, header.Filename+" uploaded successfully")
}

func (s *Server) handleDeleteDatasets(w http.ResponseWriter, r *http.Request) {
	if err := s.catalog.DeleteAll(r.Context()); err != nil {
		zap.L().Error("api: delete datasets", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to delete GeoJSON files")
		return
	}
	respondMessage(w, "All GeoJSON files deleted")
}

// handleExport streams a spreadsheet of one project's comments joined
// with its metadata from the active dataset.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectID")

	name, data, err := s.catalog.Active(r.Context())
	if err != nil {
		zap.L().Error("api: read active dataset for export", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to read active GeoJSON")
		return
	}
	if name == "" {
		respondError(w, http.StatusNotFound, "No active dataset")
		return
	}

	fc, err := geodata.Parse(data)
	if err != nil {
		zap.L().Error("api: parse active dataset", zap.String("filename", name), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to read active GeoJSON")
		return
	}

	project, ok := geodata.ProjectByID(fc, projectID)
	if !ok {
		respondError(w, http.StatusNotFound, "Project not found")
		return
	}

	comments, err := s.comments.List(r.Context())
	if err != nil {
		zap.L().Error("api: list comments for export", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to read comments")
		return
	}

	wb, err := export.Workbook(*project, export.FilterByProject(comments, projectID))
	if eris.Is(err, export.ErrNoComments) {
		respondError(w, http.StatusNotFound, "No comments for this project")
		return
	}
	if err != nil {
		zap.L().Error("api: build export workbook", zap.String("project_id", projectID), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to build export")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.Filename(projectID)+`"`)
	if err := wb.Write(w); err != nil {
		zap.L().Error("api: write export workbook", zap.Error(err))
	}
}

// handleRawActive serves the active dataset body directly, standing in
// for the statically bundled projects.geojson of the viewer-only build.
func (s *Server) handleRawActive(w http.ResponseWriter, r *http.Request) {
	name, data, err := s.catalog.Active(r.Context())
	if err != nil {
		zap.L().Error("api: read active dataset", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to read active GeoJSON")
		return
	}
	if name == "" {
		respondError(w, http.StatusNotFound, "Not Found")
		return
	}

	w.Header().Set("Content-Type", "application/geo+json")
	if _, err := w.Write(data); err != nil {
		zap.L().Error("api: write dataset response", zap.Error(err))
	}
}
