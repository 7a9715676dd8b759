package syncqueue

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestQueue(t *testing.T) *Manager {
	t.Helper()
	m, err := New(&Config{Path: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Stop() })
	return m
}

func op(typ OpType, payload string) *Operation {
	return &Operation{
		Type:       typ,
		Entity:     EntityDataset,
		Payload:    json.RawMessage(payload),
		EnqueuedAt: 1234,
	}
}

func TestNew(t *testing.T) {
	t.Parallel()
	t.Run("invalid config", func(t *testing.T) {
		t.Parallel()
		got, err := New(&Config{})
		require.Error(t, err)
		require.Nil(t, got)
	})

	t.Run("valid config", func(t *testing.T) {
		t.Parallel()
		got, err := New(&Config{Path: t.TempDir()})
		require.NoError(t, err)
		require.NotNil(t, got)
	})
}

func TestManager_FIFO(t *testing.T) {
	t.Parallel()
	q := newTestQueue(t)

	require.NoError(t, q.Enqueue(op(OpCreate, `{"id":"d1"}`)))
	require.NoError(t, q.Enqueue(op(OpUpdate, `{"id":"d1","name":"renamed"}`)))
	require.NoError(t, q.Enqueue(op(OpDelete, `{"id":"d1"}`)))

	n, err := q.Size()
	require.NoError(t, err)
	require.Equal(t, 3, n)

	front, err := q.PeekFront()
	require.NoError(t, err)
	require.Equal(t, OpCreate, front.Type)

	// Peek does not consume.
	n, err = q.Size()
	require.NoError(t, err)
	require.Equal(t, 3, n)

	require.NoError(t, q.RemoveFront())
	front, err = q.PeekFront()
	require.NoError(t, err)
	require.Equal(t, OpUpdate, front.Type)

	require.NoError(t, q.RemoveFront())
	front, err = q.PeekFront()
	require.NoError(t, err)
	require.Equal(t, OpDelete, front.Type)
}

func TestManager_EmptyQueue(t *testing.T) {
	t.Parallel()
	q := newTestQueue(t)

	_, err := q.PeekFront()
	require.ErrorIs(t, err, ErrEmpty)

	err = q.RemoveFront()
	require.ErrorIs(t, err, ErrEmpty)

	n, err := q.Size()
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestManager_NoDeduplication(t *testing.T) {
	t.Parallel()
	q := newTestQueue(t)

	// A rapid update-then-update for the same id keeps both entries in order.
	require.NoError(t, q.Enqueue(op(OpUpdate, `{"id":"d1","name":"first"}`)))
	require.NoError(t, q.Enqueue(op(OpUpdate, `{"id":"d1","name":"second"}`)))

	snap, err := q.Snapshot()
	require.NoError(t, err)
	require.Len(t, snap, 2)
	require.JSONEq(t, `{"id":"d1","name":"first"}`, string(snap[0].Payload))
	require.JSONEq(t, `{"id":"d1","name":"second"}`, string(snap[1].Payload))
}

func TestManager_SnapshotIsDetached(t *testing.T) {
	t.Parallel()
	q := newTestQueue(t)

	require.NoError(t, q.Enqueue(op(OpCreate, `{"id":"d1"}`)))
	snap, err := q.Snapshot()
	require.NoError(t, err)
	require.Len(t, snap, 1)

	// An enqueue after the snapshot grows the live queue, not the snapshot.
	require.NoError(t, q.Enqueue(op(OpUpdate, `{"id":"d1"}`)))
	require.Len(t, snap, 1)

	n, err := q.Size()
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func TestManager_ListenerFiresOnEnqueue(t *testing.T) {
	t.Parallel()
	q := newTestQueue(t)

	var fired int
	q.SetListener(func() { fired++ })

	require.NoError(t, q.Enqueue(op(OpCreate, `{"id":"d1"}`)))
	require.NoError(t, q.Enqueue(op(OpUpdate, `{"id":"d1"}`)))
	require.Equal(t, 2, fired)
}

func TestManager_SurvivesReopen(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	q, err := New(&Config{Path: dir})
	require.NoError(t, err)
	require.NoError(t, q.Enqueue(op(OpCreate, `{"id":"d1"}`)))
	require.NoError(t, q.Enqueue(op(OpUpdate, `{"id":"d1"}`)))
	require.NoError(t, q.Stop())

	reopened, err := New(&Config{Path: dir})
	require.NoError(t, err)
	defer reopened.Stop()

	n, err := reopened.Size()
	require.NoError(t, err)
	require.Equal(t, 2, n)

	front, err := reopened.PeekFront()
	require.NoError(t, err)
	require.Equal(t, OpCreate, front.Type)
}
