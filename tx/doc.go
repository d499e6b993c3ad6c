// Package tx provides the transaction coordinator for SoloDB.
//
// The underlying connection supports one open transaction at a time, so
// the coordinator owns a single global transaction slot. A caller that
// wants a transaction either joins the one its call chain already
// opened, or acquires the slot, runs BEGIN, does its work, and finishes
// with COMMIT or ROLLBACK before releasing the slot to the next waiter.
//
// # Usage
//
//	coordinator := tx.NewCoordinator(store, logger)
//
//	err := coordinator.RunInTransaction(ctx, func(ctx context.Context) error {
//	    if _, err := store.Insert(ctx, "notes", record); err != nil {
//	        return err
//	    }
//	    // Nested calls join the same transaction; no second BEGIN.
//	    return coordinator.RunInTransaction(ctx, touchSyncRow)
//	})
//
// For work that produces a value:
//
//	id, err := tx.Run(ctx, coordinator, func(ctx context.Context) (int64, error) {
//	    result, err := store.Insert(ctx, "notes", record)
//	    return result.LastInsertID, err
//	})
//
// The inside-a-transaction flag travels on the context, so it follows
// the call chain across function boundaries and goroutines it spawns,
// and can never leak into an unrelated chain.
package tx
