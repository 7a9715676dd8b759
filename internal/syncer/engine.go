// Package syncer drains the sync queue against the remote store. A drain
// pass replays queued mutations in FIFO order and stops on the first
// failure, leaving the failed entry and everything behind it queued for the
// next trigger. Sync failures never surface as hard errors; a persistently
// nonzero pending count is the only signal.
package syncer

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/maxixo/datavista/internal/syncqueue"
)

//go:generate mockgen -destination=engine_mock.go -package=syncer -source=engine.go

type queue interface {
	Snapshot() ([]*syncqueue.Operation, error)
	RemoveFront() error
}

type remotePusher interface {
	Push(ctx context.Context, op *syncqueue.Operation) error
}

// Engine is the sync state machine. It is either idle or draining; the
// draining flag is the single-flight guard, so concurrent triggers while a
// pass is active are no-ops.
type Engine struct {
	queue  queue
	remote remotePusher

	interval time.Duration
	online   atomic.Bool
	draining atomic.Bool

	procCtx context.Context
	cancel  context.CancelFunc
}

type Config struct {
	Queue  queue
	Remote remotePusher
	// DrainInterval is the periodic retry timer in seconds. The timer is
	// the sole retry mechanism; entries carry no retry count or backoff.
	DrainInterval int
	// StartOnline seeds the connectivity flag before the first signal
	// arrives.
	StartOnline bool
}

func (c *Config) validate() error {
	var errGrp []error
	if c.Queue == nil {
		errGrp = append(errGrp, errors.New("queue cannot be nil"))
	}
	if c.Remote == nil {
		errGrp = append(errGrp, errors.New("remote cannot be nil"))
	}
	if c.DrainInterval <= 0 {
		errGrp = append(errGrp, errors.New("drain interval must be greater than 0"))
	}
	return errors.Join(errGrp...)
}

// New creates a new sync engine.
func New(cfg *Config) (*Engine, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())

	e := &Engine{
		queue:    cfg.Queue,
		remote:   cfg.Remote,
		interval: time.Duration(cfg.DrainInterval) * time.Second,
		procCtx:  ctx,
		cancel:   cancel,
	}
	e.online.Store(cfg.StartOnline)
	return e, nil
}

// Start launches the periodic drain timer.
func (e *Engine) Start() error {
	go func() {
		ticker := time.NewTicker(e.interval)
		defer ticker.Stop()
		for {
			select {
			case <-e.procCtx.Done():
				return
			case <-ticker.C:
				e.OnTimerTick()
			}
		}
	}()
	return nil
}

// Stop cancels the timer. An interrupted pass leaves its unfinished entries
// queued; the draining flag is not persisted and resets to idle on the next
// start.
func (e *Engine) Stop() error {
	if e.cancel != nil {
		e.cancel()
	}
	return nil
}

func (e *Engine) Name() string {
	return "sync engine"
}

// Online reports the last connectivity signal received.
func (e *Engine) Online() bool {
	return e.online.Load()
}

// Draining reports whether a drain pass is currently active.
func (e *Engine) Draining() bool {
	return e.draining.Load()
}

// OnConnectivityChange records the connectivity signal. A flip from offline
// to online triggers an asynchronous drain attempt.
func (e *Engine) OnConnectivityChange(online bool) {
	was := e.online.Swap(online)
	if online && !was {
		go e.attemptDrain()
	}
}

// OnTimerTick attempts a drain pass. The periodic timer calls this while
// running; tests call it directly for a deterministic pass.
func (e *Engine) OnTimerTick() {
	e.attemptDrain()
}

// OnOperationEnqueued triggers an asynchronous drain attempt after a new
// mutation lands in the queue. Wired as the queue's enqueue listener.
func (e *Engine) OnOperationEnqueued() {
	go e.attemptDrain()
}

// attemptDrain is the Idle -> Draining transition. The CompareAndSwap on the
// draining flag guarantees at most one active pass regardless of how many
// triggers fire.
func (e *Engine) attemptDrain() {
	if !e.online.Load() {
		return
	}
	if !e.draining.CompareAndSwap(false, true) {
		return
	}
	defer e.draining.Store(false)

	e.drain()
}

// drain replays a snapshot of the queue in FIFO order. Removals happen on
// the live queue after each confirmed success; entries enqueued during the
// pass are picked up by the next one. Any failure stops the pass
// immediately so per-entity ordering is preserved (an update is never
// replayed before the create that precedes it).
func (e *Engine) drain() {
	snapshot, err := e.queue.Snapshot()
	if err != nil {
		log.Warn().Err(err).Msg("sync: cannot snapshot queue")
		return
	}
	if len(snapshot) == 0 {
		return
	}

	log.Debug().Int("pending", len(snapshot)).Msg("sync: drain pass started")

	for _, op := range snapshot {
		if err := e.remote.Push(e.procCtx, op); err != nil {
			log.Debug().Err(err).
				Str("op", string(op.Type)).
				Str("entity", op.Entity).
				Msg("sync: drain stopped, will retry on next trigger")
			return
		}

		if err := e.queue.RemoveFront(); err != nil {
			log.Warn().Err(err).Msg("sync: cannot remove confirmed entry")
			return
		}
	}

	log.Debug().Int("replayed", len(snapshot)).Msg("sync: drain pass complete")
}
