// Package storage persists basins and hydrograph analyses to an embedded
// SQLite database.
package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS basins (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	area_km2    REAL NOT NULL,
	tc_hr       REAL NOT NULL,
	length_km   REAL,
	lc_km       REAL,
	created_at  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS analyses (
	id           TEXT PRIMARY KEY,
	basin_id     TEXT NOT NULL REFERENCES basins(id),
	method       TEXT NOT NULL,
	dt_hr        REAL NOT NULL,
	peak_m3s     REAL NOT NULL,
	tp_hr        REAL NOT NULL,
	volume_m3    REAL NOT NULL,
	series_json  TEXT NOT NULL,
	created_at   TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_analyses_basin ON analyses(basin_id);
`

// Basin is a stored catchment description.
type Basin struct {
	ID        string
	Name      string
	AreaKm2   float64
	TcHr      float64
	LengthKm  float64
	LcKm      float64
	CreatedAt time.Time
}

// Analysis is a stored hydrograph run. Series carries the time and flow
// arrays, JSON-encoded in the database.
type Analysis struct {
	ID        string
	BasinID   string
	Method    string
	DtHr      float64
	PeakM3s   float64
	TpHr      float64
	VolumeM3  float64
	Series    Series
	CreatedAt time.Time
}

// Series is the sampled hydrograph attached to an analysis.
type Series struct {
	TimeHr  []float64 `json:"time_hr"`
	FlowM3s []float64 `json:"flow_m3s"`
}

// Store wraps the SQLite handle.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and ensures the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping SQLite database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveBasin inserts a basin, assigning a fresh id when empty, and returns
// the stored record.
func (s *Store) SaveBasin(b Basin) (Basin, error) {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.Exec(`
		INSERT INTO basins (id, name, area_km2, tc_hr, length_km, lc_km, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		b.ID, b.Name, b.AreaKm2, b.TcHr, b.LengthKm, b.LcKm,
		b.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return Basin{}, fmt.Errorf("failed to insert basin: %w", err)
	}
	return b, nil
}

// SaveAnalysis inserts an analysis for an existing basin and returns the
// stored record.
func (s *Store) SaveAnalysis(a Analysis) (Analysis, error) {
	if a.BasinID == "" {
		return Analysis{}, fmt.Errorf("analysis requires a basin id")
	}
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}

	series, err := json.Marshal(a.Series)
	if err != nil {
		return Analysis{}, fmt.Errorf("failed to encode series: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO analyses (id, basin_id, method, dt_hr, peak_m3s, tp_hr, volume_m3, series_json, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.BasinID, a.Method, a.DtHr, a.PeakM3s, a.TpHr, a.VolumeM3,
		string(series), a.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return Analysis{}, fmt.Errorf("failed to insert analysis: %w", err)
	}
	return a, nil
}

// GetAnalysis loads one analysis by id, series included.
func (s *Store) GetAnalysis(id string) (Analysis, error) {
	row := s.db.QueryRow(`
		SELECT id, basin_id, method, dt_hr, peak_m3s, tp_hr, volume_m3, series_json, created_at
		FROM analyses WHERE id = ?`, id)

	a, err := scanAnalysis(row)
	if err == sql.ErrNoRows {
		return Analysis{}, fmt.Errorf("analysis %s not found", id)
	}
	if err != nil {
		return Analysis{}, fmt.Errorf("failed to load analysis: %w", err)
	}
	return a, nil
}

// ListAnalyses returns all analyses for a basin, newest first. An empty
// basin id lists every analysis.
func (s *Store) ListAnalyses(basinID string) ([]Analysis, error) {
	query := `
		SELECT id, basin_id, method, dt_hr, peak_m3s, tp_hr, volume_m3, series_json, created_at
		FROM analyses`
	args := []any{}
	if basinID != "" {
		query += ` WHERE basin_id = ?`
		args = append(args, basinID)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query analyses: %w", err)
	}
	defer rows.Close()

	var out []Analysis
	for rows.Next() {
		a, err := scanAnalysis(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan analysis row: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// GetBasin loads one basin by id.
func (s *Store) GetBasin(id string) (Basin, error) {
	var b Basin
	var created string
	err := s.db.QueryRow(`
		SELECT id, name, area_km2, tc_hr, length_km, lc_km, created_at
		FROM basins WHERE id = ?`, id).
		Scan(&b.ID, &b.Name, &b.AreaKm2, &b.TcHr, &b.LengthKm, &b.LcKm, &created)
	if err == sql.ErrNoRows {
		return Basin{}, fmt.Errorf("basin %s not found", id)
	}
	if err != nil {
		return Basin{}, fmt.Errorf("failed to load basin: %w", err)
	}
	b.CreatedAt, _ = time.Parse(time.RFC3339, created)
	return b, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(r rowScanner) (Analysis, error) {
	var a Analysis
	var series, created string
	err := r.Scan(&a.ID, &a.BasinID, &a.Method, &a.DtHr, &a.PeakM3s, &a.TpHr,
		&a.VolumeM3, &series, &created)
	if err != nil {
		return Analysis{}, err
	}
	if err := json.Unmarshal([]byte(series), &a.Series); err != nil {
		return Analysis{}, fmt.Errorf("failed to decode series: %w", err)
	}
	a.CreatedAt, _ = time.Parse(time.RFC3339, created)
	return a, nil
}
