package pageforge

import (
	"crypto/subtle"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/eringen/pageforge/catalog"
	"github.com/eringen/pageforge/document"
	"github.com/eringen/pageforge/editor"
	"github.com/eringen/pageforge/render"
	"github.com/eringen/pageforge/views"
)

func (a *App) handleAdmin(c echo.Context) error {
	if !IsAdmin(c) {
		return Render(c, views.AdminLogin(a.site(), false, CsrfToken(c)))
	}
	pages, err := a.Store.ListPages()
	if err != nil {
		return err
	}
	return Render(c, views.Dashboard(a.site(), pages, c.QueryParam("msg"), CsrfToken(c)))
}

func (a *App) handleAdminLogin(c echo.Context) error {
	if !a.loginLimiter.Allow(c.RealIP()) {
		return c.String(http.StatusTooManyRequests, "Too many login attempts. Try again later.")
	}
	pass := c.FormValue("password")
	if subtle.ConstantTimeCompare([]byte(pass), []byte(a.Config.AdminPassword)) == 1 {
		if err := setAdminSession(c); err != nil {
			return err
		}
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	return Render(c, views.AdminLogin(a.site(), true, CsrfToken(c)))
}

func handleAdminLogout(c echo.Context) error {
	if err := clearAdminSession(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/")
}

func (a *App) handlePageCreate(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	title := c.FormValue("title")
	slug := Slugify(title)
	if slug == "" {
		return c.Redirect(http.StatusSeeOther, "/admin/?msg=Title+is+required.")
	}
	if _, err := a.Store.GetDocumentAny(slug); err == nil {
		return c.Redirect(http.StatusSeeOther, "/admin/?msg=A+page+with+that+slug+already+exists.")
	}
	p := document.Page{
		ID:     uuid.NewString(),
		Slug:   slug,
		Title:  title,
		Status: document.StatusDraft,
	}
	if err := a.Store.CreatePage(p); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/pages/"+slug+"/")
}

// loadDocument fetches the builder's working document or renders a 404.
func (a *App) loadDocument(c echo.Context) (document.Document, bool, error) {
	doc, err := a.Store.GetDocumentAny(c.Param("slug"))
	if err != nil {
		if err == ErrNotFound {
			return document.Document{}, false, c.NoContent(http.StatusNotFound)
		}
		return document.Document{}, false, err
	}
	return doc, true, nil
}

func (a *App) handleBuilder(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	doc, ok, err := a.loadDocument(c)
	if !ok {
		return err
	}
	selected := c.QueryParam("component")
	if c.QueryParam("settings") != "" {
		selected = "" // the panel falls back to page settings
	}
	return Render(c, views.Builder(a.site(), doc, selected, c.QueryParam("msg"), CsrfToken(c)))
}

// handlePreview renders the draft through the public shell in internal mode:
// identical markup, simulated form submits.
func (a *App) handlePreview(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	doc, ok, err := a.loadDocument(c)
	if !ok {
		return err
	}
	body := render.Page(doc.Components, render.ModeInternal, render.Options{Slug: doc.Page.Slug})
	meta := doc.Page.Metadata(BuildURL(a.Config.URL, "p", doc.Page.Slug))
	return Render(c, views.PublicPage(a.site(), meta, body))
}

func (a *App) handleSubmissions(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	doc, ok, err := a.loadDocument(c)
	if !ok {
		return err
	}
	subs, err := a.Store.ListSubmissions(doc.Page.ID)
	if err != nil {
		return err
	}
	viewSubs := make([]views.Submission, len(subs))
	for i, s := range subs {
		viewSubs[i] = views.Submission{ID: s.ID, ComponentID: s.ComponentID, Data: s.Data, CreatedAt: s.CreatedAt}
	}
	return Render(c, views.Submissions(a.site(), doc.Page, viewSubs))
}

func (a *App) handlePageSettings(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	doc, ok, err := a.loadDocument(c)
	if !ok {
		return err
	}
	p := doc.Page
	p.Title = c.FormValue("title")
	p.MetaTitle = c.FormValue("metaTitle")
	p.MetaDescription = c.FormValue("metaDescription")
	p.OGImageURL = c.FormValue("ogImageUrl")

	if slug := Slugify(c.FormValue("slug")); slug != "" {
		p.Slug = slug
	}
	switch document.Status(c.FormValue("status")) {
	case document.StatusPublished:
		p.Status = document.StatusPublished
	case document.StatusDraft:
		p.Status = document.StatusDraft
	}

	if err := a.Store.SavePage(p); err != nil {
		return err
	}
	a.Cache.Invalidate()
	return a.redirectToBuilder(c, p.Slug, "", "Settings saved")
}

func (a *App) handlePageDelete(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	if err := a.Store.DeletePage(c.Param("slug")); err != nil {
		return err
	}
	a.Cache.Invalidate()
	return c.Redirect(http.StatusSeeOther, "/admin/?msg=Page+deleted.")
}

// handleComponentAdd services the palette: append a component of the chosen
// type with the catalog's default config.
func (a *App) handleComponentAdd(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	doc, ok, err := a.loadDocument(c)
	if !ok {
		return err
	}
	comp, known := catalog.NewComponent(document.Type(c.FormValue("type")))
	if !known {
		return a.redirectToBuilder(c, doc.Page.Slug, "", "Unknown component type")
	}
	if err := a.saveComponents(doc.Append(comp)); err != nil {
		return err
	}
	return a.redirectToBuilder(c, doc.Page.Slug, comp.ID, "")
}

// handleComponentConfig applies the property form for one component. The
// posted form carries only that type's schema fields; each becomes one key
// of a shallow patch, so unknown config keys survive untouched.
func (a *App) handleComponentConfig(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	doc, ok, err := a.loadDocument(c)
	if !ok {
		return err
	}
	comp, _, found := doc.Find(c.Param("id"))
	if !found {
		return a.redirectToBuilder(c, doc.Page.Slug, "", "Component not found")
	}
	if err := c.Request().ParseForm(); err != nil {
		return err
	}

	patch := make(map[string]any)
	for _, f := range editor.FieldsFor(comp.Type) {
		switch f.Widget {
		case editor.WidgetList:
			// list fields are edited through their own endpoints
		case editor.WidgetCheckbox:
			patch[f.Key] = c.FormValue(f.Key) != ""
		case editor.WidgetNumber:
			if n, err := strconv.Atoi(c.FormValue(f.Key)); err == nil {
				patch[f.Key] = n
			}
		default:
			patch[f.Key] = c.FormValue(f.Key)
		}
	}
	if err := a.saveComponents(doc.Replace(editor.Patch(comp, patch))); err != nil {
		return err
	}
	return a.redirectToBuilder(c, doc.Page.Slug, comp.ID, "Saved")
}

func (a *App) handleComponentVisible(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	doc, ok, err := a.loadDocument(c)
	if !ok {
		return err
	}
	comp, _, found := doc.Find(c.Param("id"))
	if !found {
		return a.redirectToBuilder(c, doc.Page.Slug, "", "Component not found")
	}
	visible := c.FormValue("visible") == "true"
	if err := a.saveComponents(doc.Replace(editor.SetVisible(comp, visible))); err != nil {
		return err
	}
	return a.redirectToBuilder(c, doc.Page.Slug, comp.ID, "")
}

func (a *App) handleComponentMove(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	doc, ok, err := a.loadDocument(c)
	if !ok {
		return err
	}
	_, idx, found := doc.Find(c.Param("id"))
	if !found {
		return a.redirectToBuilder(c, doc.Page.Slug, "", "Component not found")
	}
	dir, _ := strconv.Atoi(c.FormValue("dir"))
	if err := a.saveComponents(doc.Move(idx, dir)); err != nil {
		return err
	}
	return a.redirectToBuilder(c, doc.Page.Slug, c.Param("id"), "")
}

func (a *App) handleComponentDelete(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	doc, ok, err := a.loadDocument(c)
	if !ok {
		return err
	}
	if err := a.saveComponents(doc.Remove(c.Param("id"))); err != nil {
		return err
	}
	return a.redirectToBuilder(c, doc.Page.Slug, "", "Component removed")
}

// handleComponentList services the repeatable-list sub-editor shared by form
// fields and feature items: add, update, remove and move by index.
func (a *App) handleComponentList(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	doc, ok, err := a.loadDocument(c)
	if !ok {
		return err
	}
	comp, _, found := doc.Find(c.Param("id"))
	if !found {
		return a.redirectToBuilder(c, doc.Page.Slug, "", "Component not found")
	}
	key := c.Param("key")
	listField, found := listFieldFor(comp.Type, key)
	if !found {
		return a.redirectToBuilder(c, doc.Page.Slug, comp.ID, "Not a list field")
	}
	if err := c.Request().ParseForm(); err != nil {
		return err
	}

	list := editor.ConfigList(comp, key)
	index, _ := strconv.Atoi(c.FormValue("index"))
	switch c.Param("op") {
	case "add":
		list = editor.ListAdd(list, defaultListItem(comp.Type, key, list))
	case "update":
		patch := make(map[string]any, len(listField.ItemFields))
		for _, f := range listField.ItemFields {
			if f.Widget == editor.WidgetCheckbox {
				patch[f.Key] = c.FormValue(f.Key) != ""
			} else {
				patch[f.Key] = c.FormValue(f.Key)
			}
		}
		list = editor.ListUpdate(list, index, patch)
	case "remove":
		list = editor.ListRemove(list, index)
	case "move":
		dir, _ := strconv.Atoi(c.FormValue("dir"))
		list = editor.ListMove(list, index, dir)
	default:
		return c.NoContent(http.StatusNotFound)
	}

	if list == nil {
		list = []any{}
	}
	patched := editor.Patch(comp, map[string]any{key: list})
	if err := a.saveComponents(doc.Replace(patched)); err != nil {
		return err
	}
	return a.redirectToBuilder(c, doc.Page.Slug, comp.ID, "")
}

func listFieldFor(t document.Type, key string) (editor.Field, bool) {
	for _, f := range editor.FieldsFor(t) {
		if f.Key == key && f.Widget == editor.WidgetList {
			return f, true
		}
	}
	return editor.Field{}, false
}

// defaultListItem builds the starting item for a list add. Form fields get a
// synthesized id guaranteed not to collide with existing ones.
func defaultListItem(t document.Type, key string, list []any) map[string]any {
	if t == document.TypeForm && key == "fields" {
		return map[string]any{
			"id":          editor.NewFieldID(list),
			"type":        "text",
			"label":       "New field",
			"required":    false,
			"placeholder": "",
		}
	}
	return map[string]any{"title": "New item", "description": ""}
}

func (a *App) saveComponents(doc document.Document) error {
	if err := a.Store.SaveComponents(doc.Page.ID, doc.Components); err != nil {
		return err
	}
	a.Cache.Invalidate()
	return nil
}

func (a *App) redirectToBuilder(c echo.Context, slug, componentID, msg string) error {
	q := url.Values{}
	if componentID != "" {
		q.Set("component", componentID)
	}
	if msg != "" {
		q.Set("msg", msg)
	}
	target := "/admin/pages/" + slug + "/"
	if len(q) > 0 {
		target += "?" + q.Encode()
	}
	return c.Redirect(http.StatusSeeOther, target)
}
