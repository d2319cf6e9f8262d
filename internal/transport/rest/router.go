package rest

import (
	"net/http"

	"github.com/ranklens/ranklens-backend/internal/transport/middleware"
)

// RouterDeps bundles everything the HTTP router needs.
type RouterDeps struct {
	Auth      *AuthHandler
	Profile   *ProfileHandler
	Search    *SearchHandler
	Workspace *WorkspaceHandler
	Export    *ExportHandler
	Health    *HealthHandler
	Metrics   http.Handler

	TokenValidator func(http.Handler) http.Handler
	Logger         middleware.Middleware
	Recovery       middleware.Middleware
	CORS           middleware.Middleware
	RateLimit      middleware.Middleware
}

// NewRouter builds the full route table and wraps it with the middleware
// chain. Requests without a bearer token still pass the auth middleware;
// handlers that need a user reject them with 401.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", deps.Health.Health)
	mux.HandleFunc("GET /ready", deps.Health.Ready)
	mux.HandleFunc("GET /live", deps.Health.Live)
	if deps.Metrics != nil {
		mux.Handle("GET /metrics", deps.Metrics)
	}

	mux.HandleFunc("POST /auth/register", deps.Auth.Register)
	mux.HandleFunc("POST /auth/login", deps.Auth.Login)

	mux.HandleFunc("GET /api/profile", deps.Profile.Get)
	mux.HandleFunc("PATCH /api/profile/settings", deps.Profile.UpdateSettings)

	mux.HandleFunc("POST /api/search", deps.Search.Search)
	mux.HandleFunc("POST /api/search/bulk", deps.Search.Bulk)
	mux.HandleFunc("GET /api/history", deps.Search.History)
	mux.HandleFunc("DELETE /api/history", deps.Search.HistoryClear)
	mux.HandleFunc("GET /api/history/grouped", deps.Search.HistoryGrouped)
	mux.HandleFunc("GET /api/results", deps.Search.Results)
	mux.HandleFunc("GET /api/results/clusters", deps.Search.Clusters)
	mux.HandleFunc("GET /api/credits", deps.Search.Credits)
	mux.HandleFunc("POST /api/credits/reconcile", deps.Search.CreditsReconcile)

	mux.HandleFunc("GET /api/keywords", deps.Workspace.ListKeywords)
	mux.HandleFunc("POST /api/keywords", deps.Workspace.SaveKeyword)
	mux.HandleFunc("DELETE /api/keywords/{keyword}", deps.Workspace.RemoveKeyword)

	mux.HandleFunc("GET /api/projects", deps.Workspace.ListProjects)
	mux.HandleFunc("POST /api/projects", deps.Workspace.CreateProject)
	mux.HandleFunc("GET /api/projects/{id}", deps.Workspace.GetProject)
	mux.HandleFunc("PATCH /api/projects/{id}", deps.Workspace.UpdateProject)
	mux.HandleFunc("DELETE /api/projects/{id}", deps.Workspace.DeleteProject)

	mux.HandleFunc("POST /api/leads", deps.Workspace.CaptureLead)

	mux.HandleFunc("GET /api/export/csv", deps.Export.CSV)
	mux.HandleFunc("GET /api/export/json", deps.Export.JSON)

	// Nil members are skipped by Chain.
	return middleware.Chain(
		middleware.RequestID,
		deps.Logger,
		deps.Recovery,
		deps.CORS,
		deps.RateLimit,
		middleware.Middleware(deps.TokenValidator),
	)(mux)
}
