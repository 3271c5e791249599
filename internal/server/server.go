package server

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"portfolio-backend/internal/config"
	"portfolio-backend/internal/domain"
	"portfolio-backend/internal/metrics"
	"portfolio-backend/internal/services"
)

// ContactService is the submission-service surface the handlers depend on.
type ContactService interface {
	Submit(ctx context.Context, name, email, message string) (*domain.ContactMessage, error)
	List(ctx context.Context) ([]domain.ContactMessage, error)
}

// SkillService is the skill listing/creation surface.
type SkillService interface {
	List(ctx context.Context) ([]domain.Skill, error)
	Create(ctx context.Context, input services.SkillInput) (*domain.Skill, error)
}

// ProjectService is the project listing surface.
type ProjectService interface {
	List(ctx context.Context) ([]domain.Project, error)
}

// AuthService is the optional admin-auth surface.
type AuthService interface {
	Enabled() bool
	Login(ctx context.Context, username, password string) (string, error)
	Verify(token string) (string, error)
}

// HealthService reports liveness.
type HealthService interface {
	Check(ctx context.Context) (status, service string)
}

// Server wires the services into an HTTP handler.
type Server struct {
	cfg      *config.Config
	contacts ContactService
	skills   SkillService
	projects ProjectService
	stats    services.StatsFetcher
	auth     AuthService
	health   HealthService
}

// New creates a Server over the given services.
func New(cfg *config.Config, contacts ContactService, skills SkillService, projects ProjectService, stats services.StatsFetcher, auth AuthService, health HealthService) *Server {
	return &Server{
		cfg:      cfg,
		contacts: contacts,
		skills:   skills,
		projects: projects,
		stats:    stats,
		auth:     auth,
		health:   health,
	}
}

// Handler builds the router with the full middleware chain:
// security headers -> CORS -> request logging -> metrics -> routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(securityHeaders(s.cfg))
	r.Use(corsMiddleware(&s.cfg.CORS))
	r.Use(requestLogging)
	r.Use(metrics.Middleware)

	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/", s.handleRoot)

		r.Post("/contact", s.handleContactSubmit)
		if s.auth.Enabled() {
			r.With(s.requireAdmin).Get("/contact", s.handleContactList)
			r.Post("/auth/login", s.handleLogin)
		} else {
			r.Get("/contact", s.handleContactList)
		}

		r.Get("/skills", s.handleSkillList)
		r.Post("/skills", s.handleSkillCreate)

		r.Get("/projects", s.handleProjectList)

		r.Get("/leetcode/{username}", s.handleLeetCodeStats)
	})

	return r
}
