package pageforge

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eringen/pageforge/document"
	"github.com/eringen/pageforge/render"
	"github.com/eringen/pageforge/views"
)

// handleHome lists published pages as a plain index.
func (a *App) handleHome(c echo.Context) error {
	pages, err := a.Cache.ListPages()
	if err != nil {
		return err
	}
	return Render(c, views.Home(a.site(), pages))
}

// handlePage serves a published page. Drafts and unknown slugs are the same
// 404: publication status is resolved here, never inside the renderer.
func (a *App) handlePage(c echo.Context) error {
	slug := c.Param("slug")
	doc, err := a.Cache.GetDocument(slug)
	if err != nil {
		if err == ErrNotFound {
			return RenderStatus(c, http.StatusNotFound, views.NotFound(a.site()))
		}
		return err
	}

	// A successful form submit redirects back with ?submitted=<component id>
	// so the success message survives the redirect.
	states := map[string]render.FormState{}
	if id := c.QueryParam("submitted"); id != "" {
		states[id] = render.FormState{Submitted: true}
	}
	return a.renderPublicPage(c, http.StatusOK, doc, states)
}

func (a *App) renderPublicPage(c echo.Context, code int, doc document.Document, states map[string]render.FormState) error {
	body := render.Page(doc.Components, render.ModePublic, render.Options{
		Slug:       doc.Page.Slug,
		CSRFToken:  CsrfToken(c),
		FormStates: states,
	})
	meta := doc.Page.Metadata(BuildURL(a.Config.URL, "p", doc.Page.Slug))
	return RenderStatus(c, code, views.PublicPage(a.site(), meta, body))
}

// handleFormSubmit accepts a visitor form submission on a published page.
// Failures of any kind re-render the page with a retryable inline error and
// the visitor's values preserved; nothing here ever surfaces as a 5xx to the
// visitor beyond the generic error page.
func (a *App) handleFormSubmit(c echo.Context) error {
	if !a.submitLimiter.Allow(c.RealIP()) {
		return c.String(http.StatusTooManyRequests, "Too many submissions. Try again later.")
	}

	slug := c.Param("slug")
	componentID := c.Param("component")
	doc, err := a.Cache.GetDocument(slug)
	if err != nil {
		if err == ErrNotFound {
			return RenderStatus(c, http.StatusNotFound, views.NotFound(a.site()))
		}
		return err
	}
	comp, _, ok := doc.Find(componentID)
	if !ok || comp.Type != document.TypeForm || !comp.Visible {
		return RenderStatus(c, http.StatusNotFound, views.NotFound(a.site()))
	}

	if err := c.Request().ParseForm(); err != nil {
		return err
	}
	cfg := document.FormFrom(comp.Config)
	data := make(map[string]string, len(cfg.Fields))
	missing := false
	for _, f := range cfg.Fields {
		v := c.FormValue(f.ID)
		if f.Required && v == "" {
			missing = true
		}
		data[f.ID] = v
	}

	if missing {
		states := map[string]render.FormState{componentID: {Failed: true, Values: data}}
		return a.renderPublicPage(c, http.StatusBadRequest, doc, states)
	}

	if err := a.Store.SaveSubmission(doc.Page.ID, componentID, data); err != nil {
		c.Logger().Errorf("save submission: %v", err)
		states := map[string]render.FormState{componentID: {Failed: true, Values: data}}
		return a.renderPublicPage(c, http.StatusOK, doc, states)
	}

	return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/p/%s/?submitted=%s", slug, componentID))
}

func (a *App) handleSitemap(c echo.Context) error {
	pages, err := a.Cache.ListPages()
	if err != nil {
		return err
	}
	return a.renderSitemap(c, pages)
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(a.staticDir + "/favicon.svg")
}

// handleRobots generates robots.txt dynamically using the site URL.
func (a *App) handleRobots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\nDisallow: /admin/\n\nSitemap: %s/sitemap.xml\n", a.Config.URL)
	return c.String(http.StatusOK, body)
}
