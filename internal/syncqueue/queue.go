// Package syncqueue implements the durable log of pending mutations awaiting
// replay against the remote store. Entries survive a full process restart:
// an enqueue is persisted before it returns, so a crash right after a local
// write never loses the operation.
package syncqueue

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"
)

const dbFileName = "syncqueue.db"

const schema = `
CREATE TABLE IF NOT EXISTS sync_queue (
	seq         INTEGER PRIMARY KEY AUTOINCREMENT,
	op_type     TEXT NOT NULL,
	entity      TEXT NOT NULL,
	payload     TEXT NOT NULL,
	enqueued_at INTEGER NOT NULL
);
`

// OpType names the kind of pending mutation.
type OpType string

const (
	OpCreate OpType = "create"
	OpUpdate OpType = "update"
	OpDelete OpType = "delete"
)

// EntityDataset is the only entity kind today. The queue carries the kind on
// every entry so other entities can sync through it without a schema change.
const EntityDataset = "dataset"

// Operation is a pending intent to replay against the remote store. Payload
// holds a full snapshot of the record for create/update, or the id alone for
// delete. EnqueuedAt is diagnostic only; ordering is queue position.
type Operation struct {
	Type       OpType          `json:"type"`
	Entity     string          `json:"entity"`
	Payload    json.RawMessage `json:"data"`
	EnqueuedAt int64           `json:"enqueuedAt"`
}

// ErrEmpty is returned by PeekFront and RemoveFront on an empty queue.
var ErrEmpty = errors.New("sync queue is empty")

// Manager owns the durable queue file. There is one logical writer (the
// mutation path) and one logical drainer (the sync engine) per process.
type Manager struct {
	mu       sync.Mutex
	path     string
	db       *sql.DB
	listener func()
}

type Config struct {
	// Path is the directory holding the queue database file.
	Path string
}

func (c *Config) validate() error {
	var errGrp []error
	if c.Path == "" {
		errGrp = append(errGrp, errors.New("queue directory is required"))
	}
	return errors.Join(errGrp...)
}

// New creates a new queue manager. The file is opened lazily on first use.
func New(cfg *Config) (*Manager, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Manager{path: cfg.Path}, nil
}

// SetListener registers a callback invoked after every successful enqueue.
// The sync engine uses it to attempt a drain without the queue knowing
// anything about connectivity.
func (m *Manager) SetListener(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listener = fn
}

func (m *Manager) ensureOpen() (*sql.DB, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ensureOpenLocked()
}

func (m *Manager) ensureOpenLocked() (*sql.DB, error) {
	if m.db != nil {
		return m.db, nil
	}

	if err := os.MkdirAll(m.path, 0750); err != nil {
		return nil, fmt.Errorf("create queue directory: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(m.path, dbFileName))
	if err != nil {
		return nil, fmt.Errorf("open queue database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply queue schema: %w", err)
	}

	m.db = db
	return db, nil
}

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
	return "sync queue"
}

// Enqueue appends the operation at the tail and persists it before
// returning, then notifies the listener. Entries are never reordered and
// never deduplicated: two rapid updates for the same id become two entries,
// replayed in order.
func (m *Manager) Enqueue(op *Operation) error {
	m.mu.Lock()
	db, err := m.ensureOpenLocked()
	if err != nil {
		m.mu.Unlock()
		return err
	}

	_, err = db.Exec(`INSERT INTO sync_queue (op_type, entity, payload, enqueued_at) VALUES (?, ?, ?, ?)`,
		string(op.Type), op.Entity, string(op.Payload), op.EnqueuedAt)
	listener := m.listener
	m.mu.Unlock()

	if err != nil {
		return fmt.Errorf("enqueue %s %s: %w", op.Type, op.Entity, err)
	}

	if listener != nil {
		listener()
	}
	return nil
}

// PeekFront returns the head entry without removing it.
func (m *Manager) PeekFront() (*Operation, error) {
	db, err := m.ensureOpen()
	if err != nil {
		return nil, err
	}

	row := db.QueryRow(`SELECT op_type, entity, payload, enqueued_at FROM sync_queue ORDER BY seq LIMIT 1`)
	op, err := scanOperation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEmpty
		}
		return nil, fmt.Errorf("peek sync queue: %w", err)
	}
	return op, nil
}

// RemoveFront removes the head entry. It is called only after a confirmed
// successful remote replay of that entry.
func (m *Manager) RemoveFront() error {
	db, err := m.ensureOpen()
	if err != nil {
		return err
	}

	res, err := db.Exec(`DELETE FROM sync_queue WHERE seq = (SELECT MIN(seq) FROM sync_queue)`)
	if err != nil {
		return fmt.Errorf("remove sync queue head: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("remove sync queue head: %w", err)
	}
	if n == 0 {
		return ErrEmpty
	}
	return nil
}

// Size returns the number of pending operations, exposed to the UI as the
// "n pending" indicator.
func (m *Manager) Size() (int, error) {
	db, err := m.ensureOpen()
	if err != nil {
		return 0, err
	}

	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM sync_queue`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count sync queue: %w", err)
	}
	return n, nil
}

// Snapshot returns a copy of the queue in FIFO order. A drain pass iterates
// the snapshot while removals happen on the live queue, so entries enqueued
// mid-drain wait for the next pass.
func (m *Manager) Snapshot() ([]*Operation, error) {
	db, err := m.ensureOpen()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`SELECT op_type, entity, payload, enqueued_at FROM sync_queue ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("snapshot sync queue: %w", err)
	}
	defer rows.Close()

	var ops []*Operation
	for rows.Next() {
		op, err := scanOperation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sync queue entry: %w", err)
		}
		ops = append(ops, op)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("snapshot sync queue: %w", err)
	}
	return ops, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOperation(r rowScanner) (*Operation, error) {
	var op Operation
	var opType, payload string
	if err := r.Scan(&opType, &op.Entity, &payload, &op.EnqueuedAt); err != nil {
		return nil, err
	}
	op.Type = OpType(opType)
	op.Payload = json.RawMessage(payload)
	return &op, nil
}
