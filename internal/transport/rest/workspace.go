package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ranklens/ranklens-backend/internal/domain"
	"github.com/ranklens/ranklens-backend/internal/service/workspace"
)

type workspaceService interface {
	SaveKeyword(ctx context.Context, userID uuid.UUID, result domain.KeywordResult) (*domain.SavedKeyword, error)
	RemoveKeyword(ctx context.Context, userID uuid.UUID, keyword string) error
	FetchKeywords(ctx context.Context, userID uuid.UUID) ([]domain.SavedKeyword, error)
	CreateProject(ctx context.Context, userID uuid.UUID, input workspace.CreateProjectInput) (*domain.ContentProject, error)
	ListProjects(ctx context.Context, userID uuid.UUID) ([]domain.ContentProject, error)
	GetProject(ctx context.Context, userID, projectID uuid.UUID) (*domain.ContentProject, error)
	UpdateProjectStatus(ctx context.Context, userID, projectID uuid.UUID, status domain.ProjectStatus) (*domain.ContentProject, error)
	DeleteProject(ctx context.Context, userID, projectID uuid.UUID) error
	CaptureLead(ctx context.Context, input workspace.CaptureLeadInput) error
}

// WorkspaceHandler serves saved keywords, content projects and lead capture.
type WorkspaceHandler struct {
	svc workspaceService
	log *slog.Logger
}

// NewWorkspaceHandler creates a WorkspaceHandler.
func NewWorkspaceHandler(svc workspaceService, logger *slog.Logger) *WorkspaceHandler {
	return &WorkspaceHandler{svc: svc, log: logger.With("handler", "workspace")}
}

type savedKeywordResponse struct {
	ID        uuid.UUID            `json:"id"`
	Result    domain.KeywordResult `json:"result"`
	CreatedAt time.Time            `json:"createdAt"`
}

func toSavedKeywordResponse(sk domain.SavedKeyword) savedKeywordResponse {
	return savedKeywordResponse{ID: sk.ID, Result: sk.Result, CreatedAt: sk.CreatedAt}
}

// ListKeywords handles GET /api/keywords.
func (h *WorkspaceHandler) ListKeywords(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	rows, err := h.svc.FetchKeywords(r.Context(), userID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]savedKeywordResponse, 0, len(rows))
	for _, sk := range rows {
		out = append(out, toSavedKeywordResponse(sk))
	}
	writeJSON(w, http.StatusOK, map[string]any{"keywords": out})
}

// SaveKeyword handles POST /api/keywords.
func (h *WorkspaceHandler) SaveKeyword(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req domain.KeywordResult
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sk, err := h.svc.SaveKeyword(r.Context(), userID, req)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toSavedKeywordResponse(*sk))
}

// RemoveKeyword handles DELETE /api/keywords/{keyword}.
func (h *WorkspaceHandler) RemoveKeyword(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	keyword := r.PathValue("keyword")
	if keyword == "" {
		writeError(w, http.StatusBadRequest, "keyword is required")
		return
	}

	if err := h.svc.RemoveKeyword(r.Context(), userID, keyword); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type createProjectRequest struct {
	Title    string `json:"title"`
	Keyword  string `json:"keyword"`
	Strategy string `json:"strategy"`
}

type updateProjectRequest struct {
	Status string `json:"status"`
}

type projectResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Keyword   string    `json:"keyword"`
	Body      string    `json:"body"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toProjectResponse(p domain.ContentProject) projectResponse {
	return projectResponse{
		ID:        p.ID,
		Title:     p.Title,
		Keyword:   p.Keyword,
		Body:      p.Body,
		Status:    p.Status.String(),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// ListProjects handles GET /api/projects.
func (h *WorkspaceHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	rows, err := h.svc.ListProjects(r.Context(), userID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]projectResponse, 0, len(rows))
	for _, p := range rows {
		out = append(out, toProjectResponse(p))
	}
	writeJSON(w, http.StatusOK, map[string]any{"projects": out})
}

// CreateProject handles POST /api/projects.
func (h *WorkspaceHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req createProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.svc.CreateProject(r.Context(), userID, workspace.CreateProjectInput{
		Title:    req.Title,
		Keyword:  req.Keyword,
		Strategy: req.Strategy,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toProjectResponse(*p))
}

// GetProject handles GET /api/projects/{id}.
func (h *WorkspaceHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	projectID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid project id")
		return
	}

	p, err := h.svc.GetProject(r.Context(), userID, projectID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProjectResponse(*p))
}

// UpdateProject handles PATCH /api/projects/{id}.
func (h *WorkspaceHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	projectID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid project id")
		return
	}

	var req updateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.svc.UpdateProjectStatus(r.Context(), userID, projectID, domain.ProjectStatus(req.Status))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProjectResponse(*p))
}

// DeleteProject handles DELETE /api/projects/{id}.
func (h *WorkspaceHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	projectID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid project id")
		return
	}

	if err := h.svc.DeleteProject(r.Context(), userID, projectID); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type captureLeadRequest struct {
	Email  string `json:"email"`
	Source string `json:"source"`
}

// CaptureLead handles POST /api/leads. No authentication required.
func (h *WorkspaceHandler) CaptureLead(w http.ResponseWriter, r *http.Request) {
	var req captureLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.svc.CaptureLead(r.Context(), workspace.CaptureLeadInput{
		Email:  req.Email,
		Source: req.Source,
	}); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "ok"})
}
