package pageforge

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/eringen/pageforge/document"
)

// ErrNotFound is returned when a requested page does not exist.
var ErrNotFound = sql.ErrNoRows

// Store wraps a SQLite database and provides persistence for pages,
// components and form submissions.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at path, ensures the data
// directory exists, and runs schema migrations.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// Enable WAL mode for concurrent read/write access, set a busy timeout
	// so writers wait instead of returning SQLITE_BUSY immediately, and tune
	// performance: synchronous=NORMAL is safe with WAL and avoids an fsync
	// per transaction; larger cache and mmap reduce disk I/O.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
		PRAGMA cache_size=-8000;
		PRAGMA mmap_size=268435456;
	`); err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS pages (
    id TEXT PRIMARY KEY,
    slug TEXT NOT NULL UNIQUE,
    title TEXT NOT NULL,
    meta_title TEXT NOT NULL DEFAULT '',
    meta_description TEXT NOT NULL DEFAULT '',
    og_image_url TEXT NOT NULL DEFAULT '',
    status TEXT NOT NULL DEFAULT 'draft'
);
CREATE TABLE IF NOT EXISTS components (
    id TEXT PRIMARY KEY,
    page_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    type TEXT NOT NULL,
    visible INTEGER NOT NULL DEFAULT 1,
    config TEXT NOT NULL DEFAULT '{}'
);
CREATE INDEX IF NOT EXISTS idx_components_page ON components(page_id, position);
CREATE TABLE IF NOT EXISTS submissions (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    page_id TEXT NOT NULL,
    component_id TEXT NOT NULL,
    payload TEXT NOT NULL,
    created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_submissions_page ON submissions(page_id, created_at);
`)
	if err != nil {
		return err
	}
	// Databases created before og_image_url existed get the column added here.
	if _, err := s.db.Exec(`ALTER TABLE pages ADD COLUMN og_image_url TEXT NOT NULL DEFAULT '';`); err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "duplicate column") {
			return nil
		}
		return err
	}
	return nil
}

// CreatePage inserts a new page record.
func (s *Store) CreatePage(p document.Page) error {
	_, err := s.db.Exec(`INSERT INTO pages (id, slug, title, meta_title, meta_description, og_image_url, status) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Slug, p.Title, p.MetaTitle, p.MetaDescription, p.OGImageURL, string(p.Status))
	return err
}

// SavePage updates a page record by id. The slug may change.
func (s *Store) SavePage(p document.Page) error {
	_, err := s.db.Exec(`UPDATE pages SET slug = ?, title = ?, meta_title = ?, meta_description = ?, og_image_url = ?, status = ? WHERE id = ?`,
		p.Slug, p.Title, p.MetaTitle, p.MetaDescription, p.OGImageURL, string(p.Status), p.ID)
	return err
}

// ListPages returns every page (drafts included) ordered by title.
func (s *Store) ListPages() ([]document.Page, error) {
	return s.listPages(`SELECT id, slug, title, meta_title, meta_description, og_image_url, status FROM pages ORDER BY title`)
}

// ListPublishedPages returns all published pages ordered by title.
func (s *Store) ListPublishedPages() ([]document.Page, error) {
	return s.listPages(`SELECT id, slug, title, meta_title, meta_description, og_image_url, status FROM pages WHERE status = 'published' ORDER BY title`)
}

func (s *Store) listPages(query string) ([]document.Page, error) {
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []document.Page
	for rows.Next() {
		p, err := scanPage(rows)
		if err != nil {
			return nil, err
		}
		pages = append(pages, p)
	}
	return pages, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPage(r rowScanner) (document.Page, error) {
	var p document.Page
	var status string
	if err := r.Scan(&p.ID, &p.Slug, &p.Title, &p.MetaTitle, &p.MetaDescription, &p.OGImageURL, &status); err != nil {
		return document.Page{}, err
	}
	p.Status = document.Status(status)
	return p, nil
}

// GetDocumentAny returns a page and its components by slug regardless of
// publication status (for the builder).
func (s *Store) GetDocumentAny(slug string) (document.Document, error) {
	row := s.db.QueryRow(`SELECT id, slug, title, meta_title, meta_description, og_image_url, status FROM pages WHERE slug = ?`, slug)
	p, err := scanPage(row)
	if err != nil {
		return document.Document{}, err
	}
	comps, err := s.listComponents(p.ID)
	if err != nil {
		return document.Document{}, err
	}
	return document.Document{Page: p, Components: comps}, nil
}

// GetPublishedDocument returns a published page and its components by slug.
// Unpublished pages come back as ErrNotFound: the renderer never has to care
// about status.
func (s *Store) GetPublishedDocument(slug string) (document.Document, error) {
	row := s.db.QueryRow(`SELECT id, slug, title, meta_title, meta_description, og_image_url, status FROM pages WHERE slug = ? AND status = 'published'`, slug)
	p, err := scanPage(row)
	if err != nil {
		return document.Document{}, err
	}
	comps, err := s.listComponents(p.ID)
	if err != nil {
		return document.Document{}, err
	}
	return document.Document{Page: p, Components: comps}, nil
}

func (s *Store) listComponents(pageID string) ([]document.Component, error) {
	rows, err := s.db.Query(`SELECT id, position, type, visible, config FROM components WHERE page_id = ? ORDER BY position`, pageID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comps []document.Component
	for rows.Next() {
		var c document.Component
		var typ, config string
		var visible int
		if err := rows.Scan(&c.ID, &c.Position, &typ, &visible, &config); err != nil {
			return nil, err
		}
		c.Type = document.Type(typ)
		c.Visible = visible == 1
		if err := json.Unmarshal([]byte(config), &c.Config); err != nil {
			// A corrupt config row degrades to defaults rather than killing
			// the whole page.
			c.Config = map[string]any{}
		}
		comps = append(comps, c)
	}
	return comps, rows.Err()
}

// SaveComponents replaces the component sequence of a page. Positions are
// rewritten from slice order inside one transaction, keeping the stored
// order column in step with array position.
func (s *Store) SaveComponents(pageID string, comps []document.Component) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM components WHERE page_id = ?`, pageID); err != nil {
		return err
	}
	for i, c := range comps {
		config, err := json.Marshal(c.Config)
		if err != nil {
			return fmt.Errorf("marshal config for %s: %w", c.ID, err)
		}
		visible := 0
		if c.Visible {
			visible = 1
		}
		if _, err := tx.Exec(`INSERT INTO components (id, page_id, position, type, visible, config) VALUES (?, ?, ?, ?, ?, ?)`,
			c.ID, pageID, i, string(c.Type), visible, string(config)); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// DeletePage removes a page, its components and its submissions.
func (s *Store) DeletePage(slug string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var id string
	if err := tx.QueryRow(`SELECT id FROM pages WHERE slug = ?`, slug).Scan(&id); err != nil {
		if err == sql.ErrNoRows {
			return nil
		}
		return err
	}
	if _, err := tx.Exec(`DELETE FROM components WHERE page_id = ?`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM submissions WHERE page_id = ?`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM pages WHERE id = ?`, id); err != nil {
		return err
	}
	return tx.Commit()
}

// Submission is one stored visitor form submission.
type Submission struct {
	ID          int64
	PageID      string
	ComponentID string
	Data        map[string]string
	CreatedAt   time.Time
}

// SaveSubmission persists one visitor form submission.
func (s *Store) SaveSubmission(pageID, componentID string, data map[string]string) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`INSERT INTO submissions (page_id, component_id, payload, created_at) VALUES (?, ?, ?, ?)`,
		pageID, componentID, string(payload), time.Now().UTC().Format(time.RFC3339))
	return err
}

// ListSubmissions returns a page's submissions, newest first.
func (s *Store) ListSubmissions(pageID string) ([]Submission, error) {
	rows, err := s.db.Query(`SELECT id, page_id, component_id, payload, created_at FROM submissions WHERE page_id = ? ORDER BY created_at DESC, id DESC`, pageID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []Submission
	for rows.Next() {
		var sub Submission
		var payload, createdAt string
		if err := rows.Scan(&sub.ID, &sub.PageID, &sub.ComponentID, &payload, &createdAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(payload), &sub.Data); err != nil {
			sub.Data = map[string]string{}
		}
		if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
			sub.CreatedAt = t
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

// CountPages reports how many pages exist, used by the seed import to decide
// whether the database is fresh.
func (s *Store) CountPages() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM pages`).Scan(&n)
	return n, err
}
