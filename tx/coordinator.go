package tx

import (
	"context"

	"go.uber.org/zap"

	"github.com/nfisher2/SoloDB/db"
)

// Coordinator serializes transactions on the single database connection.
//
// At most one transaction is ever open at a time: the slot channel is a
// capacity-1 semaphore, and a caller that finds it occupied blocks until
// the current owner commits or rolls back. Goroutines blocked on a
// channel are woken in arrival order by the runtime, which is the
// fairness this package promises; the exact wake order is otherwise an
// implementation detail.
//
// Code that is already inside a transaction joins it instead of
// starting a second one, so transactional functions can call each other
// freely on the same call chain without deadlocking on the slot.
type Coordinator struct {
	store *db.Store
	log   *zap.Logger
	slot  chan struct{}
}

// NewCoordinator creates a coordinator for the given store. Each
// coordinator owns its own slot, so tests can instantiate isolated
// coordinators. A nil logger falls back to a no-op logger.
func NewCoordinator(store *db.Store, log *zap.Logger) *Coordinator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Coordinator{
		store: store,
		log:   log,
		slot:  make(chan struct{}, 1),
	}
}

// Begin issues BEGIN on the connection. It carries no coordination
// logic; most callers want RunInTransaction instead.
func (coordinator *Coordinator) Begin(ctx context.Context) error {
	_, err := coordinator.store.Execute(ctx, "BEGIN")
	return err
}

// Commit issues COMMIT on the connection.
func (coordinator *Coordinator) Commit(ctx context.Context) error {
	_, err := coordinator.store.Execute(ctx, "COMMIT")
	return err
}

// Rollback issues ROLLBACK on the connection.
func (coordinator *Coordinator) Rollback(ctx context.Context) error {
	_, err := coordinator.store.Execute(ctx, "ROLLBACK")
	return err
}

// RunInTransaction runs work inside a transaction.
//
// If the calling context is already inside one, work runs inline and
// its result propagates unchanged; no second BEGIN is issued. Otherwise
// the caller acquires the slot (waiting while another transaction is
// open; ctx cancellation is honored only while waiting), issues BEGIN,
// runs work, and finishes with COMMIT on success or ROLLBACK on
// failure.
//
// A work error is returned unchanged after rollback. A rollback failure
// is logged but never masks the work error. Errors from BEGIN or COMMIT
// are returned as-is. The slot is released on every path, so a failed
// transaction can never wedge future callers.
func (coordinator *Coordinator) RunInTransaction(ctx context.Context, work func(ctx context.Context) error) error {
	if InTransaction(ctx) {
		return work(ctx)
	}

	select {
	case coordinator.slot <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	defer func() { <-coordinator.slot }()

	txCtx := withTransaction(ctx)

	if err := coordinator.Begin(txCtx); err != nil {
		return err
	}

	finished := false
	defer func() {
		if finished {
			return
		}
		// work panicked; leave the session clean before unwinding.
		if err := coordinator.Rollback(txCtx); err != nil {
			coordinator.log.Error("rollback failed after panic", zap.Error(err))
		}
	}()

	if err := work(txCtx); err != nil {
		finished = true
		if rollbackErr := coordinator.Rollback(txCtx); rollbackErr != nil {
			coordinator.log.Error("rollback failed",
				zap.NamedError("cause", err),
				zap.Error(rollbackErr),
			)
		}
		return err
	}

	finished = true
	return coordinator.Commit(txCtx)
}

// Run runs work inside a transaction and returns its value unchanged.
// It is RunInTransaction for work that produces a result.
func Run[T any](ctx context.Context, coordinator *Coordinator, work func(ctx context.Context) (T, error)) (T, error) {
	var value T
	err := coordinator.RunInTransaction(ctx, func(ctx context.Context) error {
		var workErr error
		value, workErr = work(ctx)
		return workErr
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return value, nil
}
