// Package pageforge is a schema-driven landing-page builder built with Go,
// Echo and templ. Operators assemble pages from a fixed catalog of typed
// components in an admin builder; published pages are served on a public
// path that shares the exact same renderer and additionally collects visitor
// form submissions into SQLite.
package pageforge

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
)

// App is the central pageforge application. It wires together the store,
// cache, handlers, middleware and routes.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Store  *Store
	Cache  *PageCache

	loginLimiter  *RateLimiter
	submitLimiter *RateLimiter
	customRoutes  []func(*App)
	staticDir     string
	seedFile      string
}

// New creates a pageforge App with the given configuration.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		staticDir: "public",
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Start initializes the database, cache, middleware and routes, then starts
// the server. It blocks until the server stops.
func (a *App) Start() error {
	if a.Config.AdminPassword == "" {
		return fmt.Errorf("pageforge: AdminPassword is required")
	}
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("pageforge: SessionSecret is required")
	}

	store, err := NewStore(a.Config.DatabasePath)
	if err != nil {
		return fmt.Errorf("pageforge: init store: %w", err)
	}
	a.Store = store

	if a.seedFile != "" {
		if err := a.seedIfEmpty(a.seedFile); err != nil {
			return fmt.Errorf("pageforge: seed: %w", err)
		}
	}

	a.Cache = NewPageCache(a.Store, a.Config.PageCacheTTL)
	a.loginLimiter = NewRateLimiter(5, time.Minute)
	a.submitLimiter = NewRateLimiter(10, time.Minute)

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}

	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.Static("/public", a.staticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)

	// Public pages
	e.GET("/", a.handleHome)
	e.GET("/p/:slug/", a.handlePage)
	e.POST("/p/:slug/submit/:component/", a.handleFormSubmit)

	// Builder
	e.GET("/admin/", a.handleAdmin)
	e.POST("/admin/login/", a.handleAdminLogin)
	e.POST("/admin/logout/", handleAdminLogout)
	e.POST("/admin/pages/create/", a.handlePageCreate)
	e.GET("/admin/pages/:slug/", a.handleBuilder)
	e.GET("/admin/pages/:slug/preview/", a.handlePreview)
	e.GET("/admin/pages/:slug/submissions/", a.handleSubmissions)
	e.POST("/admin/pages/:slug/settings/", a.handlePageSettings)
	e.POST("/admin/pages/:slug/delete/", a.handlePageDelete)
	e.POST("/admin/pages/:slug/components/add/", a.handleComponentAdd)
	e.POST("/admin/pages/:slug/components/:id/config/", a.handleComponentConfig)
	e.POST("/admin/pages/:slug/components/:id/visible/", a.handleComponentVisible)
	e.POST("/admin/pages/:slug/components/:id/move/", a.handleComponentMove)
	e.POST("/admin/pages/:slug/components/:id/delete/", a.handleComponentDelete)
	e.POST("/admin/pages/:slug/components/:id/list/:key/:op/", a.handleComponentList)
	e.POST("/admin/pages/:slug/components/:id/image/", a.handleComponentImage)
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}

// EnvOr returns the value of the environment variable key, or fallback if
// empty. Convenience for scaffolded main.go files.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// MustEnv returns the value of the environment variable key, or fatally
// exits if empty.
func MustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("pageforge: required environment variable %s is not set", key)
	}
	return v
}
