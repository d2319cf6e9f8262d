package rest

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/ranklens/ranklens-backend/internal/domain"
	"github.com/ranklens/ranklens-backend/internal/service/search"
	"github.com/ranklens/ranklens-backend/internal/service/workspace"
	"github.com/ranklens/ranklens-backend/internal/transport/middleware"
)

type tokenValidatorStub struct {
	userID uuid.UUID
	token  string
}

func (v *tokenValidatorStub) ValidateToken(_ context.Context, token string) (uuid.UUID, error) {
	if token != v.token {
		return uuid.Nil, errors.New("invalid token")
	}
	return v.userID, nil
}

func newTestRouter(t *testing.T, userID uuid.UUID) http.Handler {
	t.Helper()

	searchSvc := &searchServiceMock{
		SearchFunc: func(context.Context, uuid.UUID, search.SearchInput) (*search.SearchResult, error) {
			return &search.SearchResult{Results: []domain.KeywordResult{{Keyword: "k"}}, Generation: 1, Balance: 9}, nil
		},
		CreditsFunc: func(context.Context, uuid.UUID) int { return 9 },
		CurrentFunc: func(context.Context, uuid.UUID) *domain.ResultSet { return nil },
	}
	workspaceSvc := &workspaceServiceMock{
		CaptureLeadFunc: func(context.Context, workspace.CaptureLeadInput) error { return nil },
	}
	authSvc := &authServiceMock{}

	return NewRouter(RouterDeps{
		Auth:      NewAuthHandler(authSvc, testLogger()),
		Profile:   NewProfileHandler(&profileServiceMock{}, testLogger()),
		Search:    NewSearchHandler(searchSvc, testLogger()),
		Workspace: NewWorkspaceHandler(workspaceSvc, testLogger()),
		Export:    NewExportHandler(searchSvc, testLogger()),
		Health:    NewHealthHandler(&pingerMock{}, &pingerMock{}, "test"),

		TokenValidator: middleware.Auth(&tokenValidatorStub{userID: userID, token: "good-token"}),
		Recovery:       middleware.Recovery(testLogger()),
	})
}

func TestRouter_HealthIsPublic(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, uuid.New())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

func TestRouter_SearchRequiresAuth(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, uuid.New())

	req := httptest.NewRequest(http.MethodPost, "/api/search", strings.NewReader(`{"query":"q"}`))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestRouter_SearchWithBearerToken(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, uuid.New())

	req := httptest.NewRequest(http.MethodPost, "/api/search", strings.NewReader(`{"query":"q"}`))
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRouter_BadTokenRejected(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, uuid.New())

	req := httptest.NewRequest(http.MethodGet, "/api/credits", nil)
	req.Header.Set("Authorization", "Bearer forged")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestRouter_LeadCaptureIsPublic(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, uuid.New())

	req := httptest.NewRequest(http.MethodPost, "/api/leads", strings.NewReader(`{"email":"a@b.com","source":"landing"}`))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", rec.Code)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, uuid.New())

	req := httptest.NewRequest(http.MethodGet, "/api/search", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405, got %d", rec.Code)
	}
}
