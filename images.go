package pageforge

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"
	"golang.org/x/image/draw"

	"github.com/eringen/pageforge/document"
	"github.com/eringen/pageforge/editor"
)

const (
	maxImageWidth = 1600
	jpegQuality   = 82
	maxUploadSize = 10 << 20 // 10MB
	uploadsSubdir = "uploads"
)

// processImage decodes an image, resizes it down to maxImageWidth if needed,
// and encodes it as JPEG.
func processImage(src io.Reader) ([]byte, error) {
	img, _, err := image.Decode(src)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > maxImageWidth {
		newH := h * maxImageWidth / w
		dst := image.NewRGBA(image.Rect(0, 0, maxImageWidth, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

// slugifyFilename converts an upload filename (without extension) to a
// URL-safe base name.
func slugifyFilename(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	if s := Slugify(base); s != "" {
		return s
	}
	return "image"
}

// uniqueUploadPath appends a counter until the filename is free in the
// uploads directory.
func (a *App) uniqueUploadPath(base string) (string, string) {
	dir := filepath.Join(a.staticDir, uploadsSubdir)
	candidate := base + ".jpg"
	counter := 1
	for {
		if _, err := os.Stat(filepath.Join(dir, candidate)); os.IsNotExist(err) {
			return dir, candidate
		}
		counter++
		candidate = fmt.Sprintf("%s-%d.jpg", base, counter)
	}
}

// handleComponentImage uploads an image for an image component and patches
// the component's src to the stored file, leaving every other config key
// untouched.
func (a *App) handleComponentImage(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	doc, ok, err := a.loadDocument(c)
	if !ok {
		return err
	}
	comp, _, found := doc.Find(c.Param("id"))
	if !found || comp.Type != document.TypeImage {
		return a.redirectToBuilder(c, doc.Page.Slug, "", "Component not found")
	}

	file, err := c.FormFile("image")
	if err != nil {
		return a.redirectToBuilder(c, doc.Page.Slug, comp.ID, "No image file provided")
	}
	if file.Size > maxUploadSize {
		return a.redirectToBuilder(c, doc.Page.Slug, comp.ID, "File too large (max 10MB)")
	}

	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	data, err := processImage(src)
	if err != nil {
		return a.redirectToBuilder(c, doc.Page.Slug, comp.ID, "Invalid image file")
	}

	dir, filename := a.uniqueUploadPath(slugifyFilename(file.Filename))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create uploads dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, filename), data, 0o644); err != nil {
		return fmt.Errorf("write image: %w", err)
	}

	patched := editor.Patch(comp, map[string]any{"src": "/public/" + uploadsSubdir + "/" + filename})
	if err := a.saveComponents(doc.Replace(patched)); err != nil {
		return err
	}
	return a.redirectToBuilder(c, doc.Page.Slug, comp.ID, "Image uploaded")
}
