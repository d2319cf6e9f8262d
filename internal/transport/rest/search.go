package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ranklens/ranklens-backend/internal/cluster"
	"github.com/ranklens/ranklens-backend/internal/domain"
	"github.com/ranklens/ranklens-backend/internal/history"
	"github.com/ranklens/ranklens-backend/internal/service/search"
)

// searchService defines the minimal interface needed by SearchHandler.
type searchService interface {
	Search(ctx context.Context, userID uuid.UUID, input search.SearchInput) (*search.SearchResult, error)
	BulkSearch(ctx context.Context, userID uuid.UUID, input search.BulkInput) (*search.BulkResult, error)
	History(ctx context.Context, userID uuid.UUID) []domain.SearchHistoryEntry
	GroupedHistory(ctx context.Context, userID uuid.UUID, now time.Time) []history.GroupedHistory
	ClearHistory(ctx context.Context, userID uuid.UUID)
	Current(ctx context.Context, userID uuid.UUID) *domain.ResultSet
	ClusteredResults(ctx context.Context, userID uuid.UUID, byIntent bool) []cluster.Group
	Credits(ctx context.Context, userID uuid.UUID) int
	ReconcileCredits(ctx context.Context, userID uuid.UUID) (int, error)
}

// SearchHandler serves search, history, results and credits endpoints.
type SearchHandler struct {
	svc searchService
	log *slog.Logger
}

// NewSearchHandler creates a SearchHandler.
func NewSearchHandler(svc searchService, logger *slog.Logger) *SearchHandler {
	return &SearchHandler{svc: svc, log: logger.With("handler", "search")}
}

type searchRequest struct {
	Query string `json:"query"`
	Mode  string `json:"mode"`
}

type bulkSearchRequest struct {
	Queries string `json:"queries"` // one query per line
	Mode    string `json:"mode"`
}

type searchResponse struct {
	Results    []domain.KeywordResult `json:"results"`
	Fallback   bool                   `json:"fallback"`
	Generation uint64                 `json:"generation"`
	Credits    int                    `json:"credits"`
}

type bulkSearchResponse struct {
	Results   []domain.KeywordResult `json:"results"`
	Requested int                    `json:"requested"`
	Succeeded int                    `json:"succeeded"`
	Credits   int                    `json:"credits"`
}

// Search handles POST /api/search.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.Search(r.Context(), userID, search.SearchInput{
		Query: req.Query,
		Mode:  domain.SearchMode(req.Mode),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, searchResponse{
		Results:    result.Results,
		Fallback:   result.Fallback,
		Generation: result.Generation,
		Credits:    result.Balance,
	})
}

// Bulk handles POST /api/search/bulk.
func (h *SearchHandler) Bulk(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req bulkSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.BulkSearch(r.Context(), userID, search.BulkInput{
		Raw:  req.Queries,
		Mode: domain.SearchMode(req.Mode),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, bulkSearchResponse{
		Results:   result.Results,
		Requested: result.Requested,
		Succeeded: result.Succeeded,
		Credits:   result.Balance,
	})
}

// History handles GET /api/history.
func (h *SearchHandler) History(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	entries := h.svc.History(r.Context(), userID)
	writeJSON(w, http.StatusOK, map[string]any{"entries": entries})
}

// HistoryGrouped handles GET /api/history/grouped.
func (h *SearchHandler) HistoryGrouped(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	groups := h.svc.GroupedHistory(r.Context(), userID, time.Now())
	writeJSON(w, http.StatusOK, map[string]any{"groups": groups})
}

// HistoryClear handles DELETE /api/history.
func (h *SearchHandler) HistoryClear(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	h.svc.ClearHistory(r.Context(), userID)
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Results handles GET /api/results.
func (h *SearchHandler) Results(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	rs := h.svc.Current(r.Context(), userID)
	if rs == nil {
		writeJSON(w, http.StatusOK, map[string]any{"results": []domain.KeywordResult{}})
		return
	}
	writeJSON(w, http.StatusOK, rs)
}

type clusterResponse struct {
	Label   string                 `json:"label"`
	Summary cluster.Summary        `json:"summary"`
	Results []domain.KeywordResult `json:"results"`
}

// Clusters handles GET /api/results/clusters?by=cluster|intent.
func (h *SearchHandler) Clusters(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	by := r.URL.Query().Get("by")
	if by != "" && by != "cluster" && by != "intent" {
		writeError(w, http.StatusBadRequest, "by must be cluster or intent")
		return
	}

	groups := h.svc.ClusteredResults(r.Context(), userID, by == "intent")
	out := make([]clusterResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, clusterResponse{
			Label:   g.Label,
			Summary: cluster.Summarize(g),
			Results: g.Results,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"clusters": out})
}

// Credits handles GET /api/credits.
func (h *SearchHandler) Credits(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"credits": h.svc.Credits(r.Context(), userID)})
}

// CreditsReconcile handles POST /api/credits/reconcile.
func (h *SearchHandler) CreditsReconcile(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	balance, err := h.svc.ReconcileCredits(r.Context(), userID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"credits": balance})
}
