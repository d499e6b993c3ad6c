package SoloDB

import (
	"database/sql"

	"go.uber.org/zap"

	"github.com/nfisher2/SoloDB/db"
	"github.com/nfisher2/SoloDB/tx"
)

// Instance bundles the store and coordinator for one open database.
type Instance struct {
	Store       *db.Store
	Coordinator *tx.Coordinator

	handle *sql.DB
}

// Open opens the database described by the config and wires a store and
// coordinator on top of its single connection. The logger may be nil.
func Open(config db.Config, log *zap.Logger) (*Instance, error) {
	handle, err := db.Open(config)
	if err != nil {
		return nil, err
	}

	store := db.NewStore(handle, log)

	return &Instance{
		Store:       store,
		Coordinator: tx.NewCoordinator(store, log),
		handle:      handle,
	}, nil
}

// OpenMemory opens a fresh in-memory database instance.
func OpenMemory(log *zap.Logger) (*Instance, error) {
	return Open(db.Config{Path: ":memory:"}, log)
}

// Close releases the underlying connection.
func (instance *Instance) Close() error {
	return instance.handle.Close()
}
