package tx

import "context"

// flagKey is the private context key for the inside-a-transaction flag.
// The flag follows one logical call chain through whatever goroutines
// and callbacks it spawns, and is invisible to unrelated contexts.
type flagKey struct{}

// withTransaction marks the context as inside an open transaction.
// Only the coordinator sets this; callers observe it via InTransaction.
func withTransaction(ctx context.Context) context.Context {
	return context.WithValue(ctx, flagKey{}, true)
}

// InTransaction reports whether the context is inside an open
// transaction started by a coordinator further up the call chain.
func InTransaction(ctx context.Context) bool {
	flag, ok := ctx.Value(flagKey{}).(bool)
	return ok && flag
}
