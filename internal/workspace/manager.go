// Package workspace is the single mutation path for datasets. Every local
// write lands in the durable store first, then a matching operation is
// appended to the sync queue, so the worst case under failure is deferred
// synchronization, never a lost mutation.
package workspace

import (
	"context"
	"errors"

	"github.com/maxixo/datavista/internal/dataset"
	"github.com/maxixo/datavista/internal/syncqueue"
)

//go:generate mockgen -destination=manager_mock.go -package=workspace -source=manager.go

type datasetStore interface {
	Put(d *dataset.Dataset) (string, error)
	Get(id string) (*dataset.Dataset, error)
	GetAllByOwner(ownerID string) ([]*dataset.Dataset, error)
	Delete(id string) error
}

type operationQueue interface {
	Enqueue(op *syncqueue.Operation) error
	Size() (int, error)
}

type remoteReader interface {
	List(ctx context.Context) ([]*dataset.Dataset, error)
}

// Manager coordinates the local store, the sync queue and direct remote
// reads.
type Manager struct {
	store  datasetStore
	queue  operationQueue
	remote remoteReader
}

type Config struct {
	Store  datasetStore
	Queue  operationQueue
	Remote remoteReader
}

func (c *Config) validate() error {
	var errGrp []error
	if c.Store == nil {
		errGrp = append(errGrp, errors.New("store cannot be nil"))
	}
	if c.Queue == nil {
		errGrp = append(errGrp, errors.New("queue cannot be nil"))
	}
	if c.Remote == nil {
		errGrp = append(errGrp, errors.New("remote cannot be nil"))
	}
	return errors.Join(errGrp...)
}

// New creates a new workspace manager.
func New(cfg *Config) (*Manager, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Manager{
		store:  cfg.Store,
		queue:  cfg.Queue,
		remote: cfg.Remote,
	}, nil
}

// PendingCount reports how many mutations still await remote replay.
func (m *Manager) PendingCount() (int, error) {
	return m.queue.Size()
}

// SyncFromRemote pulls the caller's datasets from the remote store and
// upserts them locally. Used for initial load and cross-device
// reconciliation; conflicts resolve whole-record, last write wins.
func (m *Manager) SyncFromRemote(ctx context.Context) (int, error) {
	remoteSets, err := m.remote.List(ctx)
	if err != nil {
		return 0, err
	}

	for _, d := range remoteSets {
		if _, err := m.store.Put(d); err != nil {
			return 0, err
		}
	}
	return len(remoteSets), nil
}
