package repo

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/halledega/StudWalls/internal/section"
	"github.com/halledega/StudWalls/internal/wood"
	_ "modernc.org/sqlite"
)

// LibraryStore is the persistent, on-disk half of the two-database design:
// it holds the default wood materials and standard sections that every new
// project starts from. Project results live in a separate working store so
// the base library is never touched by a calculation.
type LibraryStore struct {
	db *sql.DB
}

// OpenLibrary opens (creating if needed) the library database at
// dir/library.db and ensures its schema.
func OpenLibrary(dir string) (*LibraryStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create library dir: %w", err)
	}
	dsn := filepath.Join(dir, "library.db") + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open library db: %w", err)
	}
	s := &LibraryStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *LibraryStore) Close() error {
	return s.db.Close()
}

func (s *LibraryStore) migrate() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS wood_materials (
	id INTEGER PRIMARY KEY,
	name TEXT UNIQUE NOT NULL,
	category TEXT,
	species TEXT,
	grade TEXT,
	fb REAL, fv REAL, fc REAL, fcp REAL, ft REAL,
	e REAL, e05 REAL,
	material_type TEXT,
	service_condition TEXT,
	treated INTEGER NOT NULL DEFAULT 0,
	incised INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS sections (
	id INTEGER PRIMARY KEY,
	width REAL NOT NULL,
	depth REAL NOT NULL
);`)
	if err != nil {
		return fmt.Errorf("migrate library db: %w", err)
	}
	return nil
}

// Seed populates an empty library with the given materials and sections.
// An already-seeded library is left unchanged.
func (s *LibraryStore) Seed(materials []wood.Wood, sections []section.Section) error {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM wood_materials").Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, m := range materials {
		_, err := tx.Exec(`INSERT INTO wood_materials
			(name, category, species, grade, fb, fv, fc, fcp, ft, e, e05, material_type, service_condition, treated, incised)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			m.Name, m.Category, m.Species, m.Grade, m.Fb, m.Fv, m.Fc, m.Fcp, m.Ft,
			m.E, m.E05, string(m.Type), string(m.Service), boolToInt(m.Treated), boolToInt(m.Incised))
		if err != nil {
			return fmt.Errorf("seed material %s: %w", m.Name, err)
		}
	}
	for _, sec := range sections {
		if _, err := tx.Exec("INSERT INTO sections (width, depth) VALUES (?, ?)", sec.Width, sec.Depth); err != nil {
			return fmt.Errorf("seed section %s: %w", sec.Name(), err)
		}
	}
	return tx.Commit()
}

// Materials returns every stored material in insertion order.
func (s *LibraryStore) Materials() ([]wood.Wood, error) {
	rows, err := s.db.Query(`SELECT name, category, species, grade, fb, fv, fc, fcp, ft, e, e05,
		material_type, service_condition, treated, incised FROM wood_materials ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []wood.Wood
	for rows.Next() {
		var m wood.Wood
		var mtype, service string
		var treated, incised int
		if err := rows.Scan(&m.Name, &m.Category, &m.Species, &m.Grade, &m.Fb, &m.Fv, &m.Fc, &m.Fcp, &m.Ft,
			&m.E, &m.E05, &mtype, &service, &treated, &incised); err != nil {
			return nil, err
		}
		m.Type = wood.MaterialType(mtype)
		m.Service = wood.ServiceCondition(service)
		m.Treated = treated != 0
		m.Incised = incised != 0
		out = append(out, m)
	}
	return out, rows.Err()
}

// Sections returns every stored section in insertion order.
func (s *LibraryStore) Sections() ([]section.Section, error) {
	rows, err := s.db.Query("SELECT width, depth FROM sections ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []section.Section
	for rows.Next() {
		sec := section.Section{Plys: 1}
		if err := rows.Scan(&sec.Width, &sec.Depth); err != nil {
			return nil, err
		}
		out = append(out, sec)
	}
	return out, rows.Err()
}

// Library loads all materials into an immutable in-memory library for the
// engine. The new-project copy: the engine works from this snapshot, never
// from the database itself.
func (s *LibraryStore) Library() (*wood.MemoryLibrary, error) {
	mats, err := s.Materials()
	if err != nil {
		return nil, err
	}
	return wood.NewMemoryLibrary(mats...), nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
