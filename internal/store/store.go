// Package store implements the local durable dataset store. It is the sole
// source of truth while the process is offline and survives restarts.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/maxixo/datavista/internal/dataset"
)

const dbFileName = "datasets.db"

const schema = `
CREATE TABLE IF NOT EXISTS datasets (
	id         TEXT PRIMARY KEY,
	owner_id   TEXT NOT NULL,
	name       TEXT NOT NULL,
	rows       TEXT NOT NULL,
	columns    TEXT NOT NULL,
	created_at INTEGER NOT NULL,
	row_count  INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_datasets_owner_id   ON datasets(owner_id);
CREATE INDEX IF NOT EXISTS idx_datasets_created_at ON datasets(created_at);
`

var (
	// ErrNotFound is returned by Get for a missing id.
	ErrNotFound = errors.New("dataset not found")
	// ErrUnavailable marks storage-engine failures (engine unavailable,
	// quota, corruption). Callers surface these instead of dropping the
	// mutation silently.
	ErrUnavailable = errors.New("storage unavailable")
)

// Manager handles persistent dataset storage on disk.
type Manager struct {
	mu   sync.Mutex
	path string
	db   *sql.DB
}

type Config struct {
	// Path is the directory holding the datasets database file.
	Path string
}

func (c *Config) validate() error {
	var errGrp []error
	if c.Path == "" {
		errGrp = append(errGrp, errors.New("data directory is required"))
	}
	return errors.Join(errGrp...)
}

// New creates a new dataset store manager. The database is opened lazily on
// first use, so construction never touches the disk.
func New(cfg *Config) (*Manager, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Manager{path: cfg.Path}, nil
}

// ensureOpen opens the database and applies the schema. It is idempotent and
// safe to call from every operation; overlapping calls resolve to the same
// handle.
func (m *Manager) ensureOpen() (*sql.DB, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.db != nil {
		return m.db, nil
	}

	if err := os.MkdirAll(m.path, 0750); err != nil {
		return nil, fmt.Errorf("%w: create data directory: %v", ErrUnavailable, err)
	}

	db, err := sql.Open("sqlite", filepath.Join(m.path, dbFileName))
	if err != nil {
		return nil, fmt.Errorf("%w: open database: %v", ErrUnavailable, err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: apply schema: %v", ErrUnavailable, err)
	}

	m.db = db
	return db, nil
}

// Start opens the store eagerly so wiring fails fast on an unusable disk.
func (m *Manager) Start() error {
	_, err := m.ensureOpen()
	return err
}

func (m *Manager) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.db == nil {
		return nil
	}
	err := m.db.Close()
	m.db = nil
	return err
}

func (m *Manager) Name() string {
	return "dataset store"
}

// Put inserts or replaces a dataset by id and returns the stored id. A
// missing prior record is not an error.
func (m *Manager) Put(d *dataset.Dataset) (string, error) {
	db, err := m.ensureOpen()
	if err != nil {
		return "", err
	}

	rows, err := json.Marshal(d.Rows)
	if err != nil {
		return "", fmt.Errorf("marshal rows: %w", err)
	}
	cols, err := json.Marshal(d.Columns)
	if err != nil {
		return "", fmt.Errorf("marshal columns: %w", err)
	}

	_, err = db.Exec(`INSERT INTO datasets (id, owner_id, name, rows, columns, created_at, row_count)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			owner_id = excluded.owner_id,
			name = excluded.name,
			rows = excluded.rows,
			columns = excluded.columns,
			created_at = excluded.created_at,
			row_count = excluded.row_count`,
		d.ID, d.OwnerID, d.Name, string(rows), string(cols), d.CreatedAt, d.RowCount)
	if err != nil {
		return "", fmt.Errorf("%w: put dataset %s: %v", ErrUnavailable, d.ID, err)
	}

	return d.ID, nil
}

// Get returns the dataset for the given id, or ErrNotFound.
func (m *Manager) Get(id string) (*dataset.Dataset, error) {
	db, err := m.ensureOpen()
	if err != nil {
		return nil, err
	}

	row := db.QueryRow(`SELECT id, owner_id, name, rows, columns, created_at, row_count
		FROM datasets WHERE id = ?`, id)

	d, err := scanDataset(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: get dataset %s: %v", ErrUnavailable, id, err)
	}
	return d, nil
}

// GetAllByOwner returns every dataset belonging to the owner, newest first.
func (m *Manager) GetAllByOwner(ownerID string) ([]*dataset.Dataset, error) {
	db, err := m.ensureOpen()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`SELECT id, owner_id, name, rows, columns, created_at, row_count
		FROM datasets WHERE owner_id = ? ORDER BY created_at DESC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%w: list datasets for %s: %v", ErrUnavailable, ownerID, err)
	}
	defer rows.Close()

	var out []*dataset.Dataset
	for rows.Next() {
		d, err := scanDataset(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan dataset row: %v", ErrUnavailable, err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list datasets for %s: %v", ErrUnavailable, ownerID, err)
	}
	return out, nil
}

// Delete removes the dataset for the given id. Deleting a missing id is a
// no-op.
func (m *Manager) Delete(id string) error {
	db, err := m.ensureOpen()
	if err != nil {
		return err
	}

	if _, err := db.Exec(`DELETE FROM datasets WHERE id = ?`, id); err != nil {
		return fmt.Errorf("%w: delete dataset %s: %v", ErrUnavailable, id, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDataset(r rowScanner) (*dataset.Dataset, error) {
	var d dataset.Dataset
	var rowsJSON, colsJSON string

	if err := r.Scan(&d.ID, &d.OwnerID, &d.Name, &rowsJSON, &colsJSON, &d.CreatedAt, &d.RowCount); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(rowsJSON), &d.Rows); err != nil {
		return nil, fmt.Errorf("unmarshal rows: %w", err)
	}
	if err := json.Unmarshal([]byte(colsJSON), &d.Columns); err != nil {
		return nil, fmt.Errorf("unmarshal columns: %w", err)
	}
	return &d, nil
}
