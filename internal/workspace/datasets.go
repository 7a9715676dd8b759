package workspace

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/maxixo/datavista/internal/dataset"
	"github.com/maxixo/datavista/internal/syncqueue"
)

// datasetPayload is the record snapshot carried by create and update queue
// entries, shaped the way the remote sync endpoint expects it.
type datasetPayload struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Data      []dataset.Row `json:"data"`
	Timestamp int64         `json:"timestamp"`
}

// deletePayload carries the id alone.
type deletePayload struct {
	ID string `json:"id"`
}

// Create validates the rows, stores a new dataset under a fresh id and
// queues a create operation. The id is generated here and stays stable for
// the life of the record.
func (m *Manager) Create(ownerID, name string, rows []dataset.Row) (*dataset.Dataset, error) {
	if err := dataset.Validate(rows); err != nil {
		return nil, err
	}

	d := &dataset.Dataset{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Name:      name,
		Rows:      rows,
		Columns:   dataset.ColumnsOf(rows),
		CreatedAt: dataset.NowMillis(),
		RowCount:  len(rows),
	}

	if _, err := m.store.Put(d); err != nil {
		return nil, err
	}
	if err := m.enqueue(syncqueue.OpCreate, d); err != nil {
		return nil, err
	}
	return d, nil
}

// Update replaces the record as a whole: a new name and/or a full new row
// set. Columns and RowCount are recomputed so the rowCount invariant holds
// after every successful write.
func (m *Manager) Update(id, name string, rows []dataset.Row) (*dataset.Dataset, error) {
	d, err := m.store.Get(id)
	if err != nil {
		return nil, err
	}

	if name != "" {
		d.Name = name
	}
	if rows != nil {
		if err := dataset.Validate(rows); err != nil {
			return nil, err
		}
		d.Rows = rows
		d.Columns = dataset.ColumnsOf(rows)
	}
	d.RowCount = len(d.Rows)

	if _, err := m.store.Put(d); err != nil {
		return nil, err
	}
	if err := m.enqueue(syncqueue.OpUpdate, d); err != nil {
		return nil, err
	}
	return d, nil
}

// Delete removes the dataset locally and queues the deletion. Removing a
// missing id locally is a no-op, but the delete intent is still queued so
// the remote copy goes away too.
func (m *Manager) Delete(id string) error {
	if err := m.store.Delete(id); err != nil {
		return err
	}

	payload, err := json.Marshal(deletePayload{ID: id})
	if err != nil {
		return fmt.Errorf("marshal delete payload: %w", err)
	}
	return m.queue.Enqueue(&syncqueue.Operation{
		Type:       syncqueue.OpDelete,
		Entity:     syncqueue.EntityDataset,
		Payload:    payload,
		EnqueuedAt: dataset.NowMillis(),
	})
}

// Get returns a dataset by id.
func (m *Manager) Get(id string) (*dataset.Dataset, error) {
	return m.store.Get(id)
}

// ListByOwner returns the owner's datasets, newest first.
func (m *Manager) ListByOwner(ownerID string) ([]*dataset.Dataset, error) {
	return m.store.GetAllByOwner(ownerID)
}

func (m *Manager) enqueue(typ syncqueue.OpType, d *dataset.Dataset) error {
	payload, err := json.Marshal(datasetPayload{
		ID:        d.ID,
		Name:      d.Name,
		Data:      d.Rows,
		Timestamp: d.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", typ, err)
	}
	return m.queue.Enqueue(&syncqueue.Operation{
		Type:       typ,
		Entity:     syncqueue.EntityDataset,
		Payload:    payload,
		EnqueuedAt: dataset.NowMillis(),
	})
}
