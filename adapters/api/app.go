// Package api exposes seed generation, sampling and experiment
// tracking over a JSON HTTP surface.
package api

import (
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"seedhash/adapters/postgres"
	"seedhash/domain/experiment"
)

// App represents the HTTP application
type App struct {
	router *chi.Mux
	repo   *postgres.ResultRepository // nil when persistence is disabled

	mu          sync.RWMutex
	experiments map[string]*experiment.Manager
}

// Config holds HTTP application configuration
type Config struct {
	Repository *postgres.ResultRepository
}

// NewApp creates a new HTTP application
func NewApp(config Config) *App {
	app := &App{
		router:      chi.NewRouter(),
		repo:        config.Repository,
		experiments: make(map[string]*experiment.Manager),
	}

	app.setupMiddleware()
	app.setupRoutes()

	return app
}

// Router returns the configured HTTP handler.
func (a *App) Router() http.Handler {
	return a.router
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	a.router.Post("/api/generate", a.handleGenerate)
	a.router.Post("/api/sample", a.handleSample)
	a.router.Get("/api/methods", a.handleMethods)

	a.router.Post("/api/experiments", a.handleCreateExperiment)
	a.router.Post("/api/experiments/{name}/results", a.handleAddResult)
	a.router.Get("/api/experiments/{name}/summary", a.handleSummary)
	a.router.Get("/api/experiments/{name}/report", a.handleReport)
	a.router.Get("/api/experiments/{name}/export", a.handleExport)
}

func (a *App) manager(name string) (*experiment.Manager, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	m, ok := a.experiments[name]
	return m, ok
}

func (a *App) registerManager(name string, m *experiment.Manager) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.experiments[name] = m
}
