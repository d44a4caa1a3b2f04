package pageforge

import "time"

// SiteConfig holds all configuration for a pageforge site.
type SiteConfig struct {
	Name        string // Site name (default "Pageforge")
	URL         string // Canonical URL (default "http://localhost:3000")
	Description string // Site description for meta tags and JSON-LD

	Addr         string // Listen address (default ":3000")
	DatabasePath string // SQLite path (default "data/pages.db")

	AdminPassword string // Required: builder login password
	SessionSecret string // Required: session encryption secret
	CookieSecure  bool   // Set true for HTTPS

	PageCacheTTL time.Duration // Published-page cache TTL (default 5min)
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Pageforge"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/pages.db"
	}
	if c.PageCacheTTL == 0 {
		c.PageCacheTTL = 5 * time.Minute
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for static assets and image uploads
// (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithSeedFile imports pages from a YAML seed file at startup when the
// database contains no pages yet. Scaffolded projects use this to boot with
// a demo landing page.
func WithSeedFile(path string) Option {
	return func(a *App) {
		a.seedFile = path
	}
}
