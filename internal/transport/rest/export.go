package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ranklens/ranklens-backend/internal/domain"
	"github.com/ranklens/ranklens-backend/internal/export"
)

type resultProvider interface {
	Current(ctx context.Context, userID uuid.UUID) *domain.ResultSet
}

// ExportHandler serves the current result set as a downloadable file.
type ExportHandler struct {
	results resultProvider
	log     *slog.Logger
}

// NewExportHandler creates an ExportHandler.
func NewExportHandler(results resultProvider, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{results: results, log: logger.With("handler", "export")}
}

// CSV handles GET /api/export/csv.
func (h *ExportHandler) CSV(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "csv", "text/csv; charset=utf-8", export.CSV)
}

// JSON handles GET /api/export/json.
func (h *ExportHandler) JSON(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "json", "application/json; charset=utf-8", export.JSON)
}

func (h *ExportHandler) serve(w http.ResponseWriter, r *http.Request, ext, contentType string, render func([]domain.KeywordResult) ([]byte, error)) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	rs := h.results.Current(r.Context(), userID)
	if rs == nil || len(rs.Results) == 0 {
		writeError(w, http.StatusNotFound, "no results to export")
		return
	}

	blob, err := render(rs.Results)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	filename := fmt.Sprintf("keywords-%s.%s", time.Now().Format("2006-01-02"), ext)
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(blob)
}
