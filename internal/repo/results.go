package repo

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/halledega/StudWalls/internal/studwall"
	_ "modernc.org/sqlite"
)

// ResultStore is the working half of the two-database design. It keeps
// every evaluated design for the current project and tracks which result
// was committed as final per wall story. Selection-and-commit is layered
// on top of the engine output: the engine itself never writes here.
type ResultStore struct {
	db *sql.DB
}

// OpenWorkingStore opens an in-memory working database for the current
// project session.
func OpenWorkingStore() (*ResultStore, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open working db: %w", err)
	}
	// The in-memory database disappears with its last connection; pin one.
	db.SetMaxOpenConns(1)
	s := &ResultStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *ResultStore) Close() error {
	return s.db.Close()
}

func (s *ResultStore) migrate() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS results (
	id INTEGER PRIMARY KEY,
	wall TEXT NOT NULL,
	level INTEGER NOT NULL,
	stud TEXT NOT NULL,
	material TEXT NOT NULL,
	spacing REAL NOT NULL,
	plys INTEGER NOT NULL,
	dc_ratio REAL NOT NULL,
	governing_combo TEXT,
	pf REAL, pr REAL,
	k_factors TEXT,
	wood_volume REAL,
	pass INTEGER NOT NULL,
	is_final INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_results_wall_level ON results(wall, level);`)
	if err != nil {
		return fmt.Errorf("migrate working db: %w", err)
	}
	return nil
}

// SaveWall replaces any stored results for the named wall with the given
// result set and returns the row ids level by level, in result order.
func (s *ResultStore) SaveWall(res *studwall.Result) (map[int][]int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM results WHERE wall = ?", res.Name); err != nil {
		return nil, err
	}

	ids := make(map[int][]int64, len(res.Stories))
	for _, story := range res.Stories {
		for _, r := range story.Results {
			kf, err := json.Marshal(r.KFactors)
			if err != nil {
				return nil, err
			}
			out, err := tx.Exec(`INSERT INTO results
				(wall, level, stud, material, spacing, plys, dc_ratio, governing_combo, pf, pr, k_factors, wood_volume, pass)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				res.Name, r.Level, r.Label(), r.Material, r.Spacing, r.Plys, r.DCRatio,
				r.GoverningCombo, r.PfKN, r.PrKN, string(kf), r.WoodVolume, boolToInt(r.Pass))
			if err != nil {
				return nil, err
			}
			id, err := out.LastInsertId()
			if err != nil {
				return nil, err
			}
			ids[r.Level] = append(ids[r.Level], id)
		}
	}
	return ids, tx.Commit()
}

// Finalize commits one stored result as the final design for its wall
// story, clearing any previous selection at that level. Only passing
// results may be finalized.
func (s *ResultStore) Finalize(wall string, level int, id int64) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var pass int
	err = tx.QueryRow("SELECT pass FROM results WHERE id = ? AND wall = ? AND level = ?", id, wall, level).Scan(&pass)
	if err == sql.ErrNoRows {
		return fmt.Errorf("result %d not found for wall %q level %d", id, wall, level)
	}
	if err != nil {
		return err
	}
	if pass == 0 {
		return fmt.Errorf("result %d failed its code check and cannot be finalized", id)
	}

	if _, err := tx.Exec("UPDATE results SET is_final = 0 WHERE wall = ? AND level = ?", wall, level); err != nil {
		return err
	}
	if _, err := tx.Exec("UPDATE results SET is_final = 1 WHERE id = ?", id); err != nil {
		return err
	}
	return tx.Commit()
}

// FinalRow is one committed design read back for reporting.
type FinalRow struct {
	ID             int64   `json:"id"`
	Level          int     `json:"level"`
	Stud           string  `json:"stud"`
	Material       string  `json:"material"`
	Spacing        float64 `json:"spacing_mm"`
	Plys           int     `json:"plys"`
	DCRatio        float64 `json:"dc_ratio"`
	GoverningCombo string  `json:"governing_combo"`
	WoodVolume     float64 `json:"wood_volume"`
}

// Finals returns the committed design per level for a wall, top story
// first.
func (s *ResultStore) Finals(wall string) ([]FinalRow, error) {
	rows, err := s.db.Query(`SELECT id, level, stud, material, spacing, plys, dc_ratio, governing_combo, wood_volume
		FROM results WHERE wall = ? AND is_final = 1 ORDER BY level`, wall)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []FinalRow
	for rows.Next() {
		var f FinalRow
		if err := rows.Scan(&f.ID, &f.Level, &f.Stud, &f.Material, &f.Spacing, &f.Plys, &f.DCRatio, &f.GoverningCombo, &f.WoodVolume); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}
