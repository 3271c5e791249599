package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"portfolio-backend/internal/config"
	"portfolio-backend/internal/domain"
	"portfolio-backend/internal/services"
)

// ---------------------------------------------------------------------------
// Mock services
// ---------------------------------------------------------------------------

type mockContactService struct {
	submitFunc func(ctx context.Context, name, email, message string) (*domain.ContactMessage, error)
	listFunc   func(ctx context.Context) ([]domain.ContactMessage, error)
}

func (m *mockContactService) Submit(ctx context.Context, name, email, message string) (*domain.ContactMessage, error) {
	if m.submitFunc != nil {
		return m.submitFunc(ctx, name, email, message)
	}
	return &domain.ContactMessage{ID: 1, Name: name, Email: email, Message: message}, nil
}

func (m *mockContactService) List(ctx context.Context) ([]domain.ContactMessage, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

type mockSkillService struct {
	listFunc   func(ctx context.Context) ([]domain.Skill, error)
	createFunc func(ctx context.Context, input services.SkillInput) (*domain.Skill, error)
}

func (m *mockSkillService) List(ctx context.Context) ([]domain.Skill, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockSkillService) Create(ctx context.Context, input services.SkillInput) (*domain.Skill, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, input)
	}
	return &domain.Skill{ID: 1, Name: input.Name, Category: input.Category}, nil
}

type mockProjectService struct {
	listFunc func(ctx context.Context) ([]domain.Project, error)
}

func (m *mockProjectService) List(ctx context.Context) ([]domain.Project, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

type mockStatsFetcher struct {
	fetchFunc func(ctx context.Context, username string) ([]byte, error)
}

func (m *mockStatsFetcher) Fetch(ctx context.Context, username string) ([]byte, error) {
	if m.fetchFunc != nil {
		return m.fetchFunc(ctx, username)
	}
	return []byte(`{}`), nil
}

type mockAuthService struct {
	enabled    bool
	loginFunc  func(ctx context.Context, username, password string) (string, error)
	verifyFunc func(token string) (string, error)
}

func (m *mockAuthService) Enabled() bool { return m.enabled }

func (m *mockAuthService) Login(ctx context.Context, username, password string) (string, error) {
	if m.loginFunc != nil {
		return m.loginFunc(ctx, username, password)
	}
	return "token", nil
}

func (m *mockAuthService) Verify(token string) (string, error) {
	if m.verifyFunc != nil {
		return m.verifyFunc(token)
	}
	return "admin", nil
}

type mockHealthService struct{}

func (m *mockHealthService) Check(ctx context.Context) (string, string) {
	return "healthy", "Portfolio API"
}

// ---------------------------------------------------------------------------
// Test server wiring
// ---------------------------------------------------------------------------

type testMocks struct {
	contacts *mockContactService
	skills   *mockSkillService
	projects *mockProjectService
	stats    *mockStatsFetcher
	auth     *mockAuthService
}

func newTestConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "Portfolio API", Port: "5000"},
		CORS: config.CORSConfig{
			AllowedOrigins: []string{"http://localhost:5173", "http://localhost:3000"},
			AllowedSuffix:  ".vercel.app",
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type", "Authorization"},
			MaxAge:         86400,
		},
	}
}

func newTestServer(t *testing.T, mocks *testMocks) http.Handler {
	t.Helper()
	if mocks.contacts == nil {
		mocks.contacts = &mockContactService{}
	}
	if mocks.skills == nil {
		mocks.skills = &mockSkillService{}
	}
	if mocks.projects == nil {
		mocks.projects = &mockProjectService{}
	}
	if mocks.stats == nil {
		mocks.stats = &mockStatsFetcher{}
	}
	if mocks.auth == nil {
		mocks.auth = &mockAuthService{}
	}

	srv := New(newTestConfig(), mocks.contacts, mocks.skills, mocks.projects, mocks.stats, mocks.auth, &mockHealthService{})
	return srv.Handler()
}

func doRequest(handler http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

// jsonRequest builds a JSON request without an Origin header.
func jsonRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	req.Header.Set("Content-Type", "application/json")
	return req
}
