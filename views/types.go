package views

// Site holds the site-wide values templates need. The root package maps its
// SiteConfig into this, which keeps views free of import cycles.
type Site struct {
	Name        string
	URL         string
	Description string
}
