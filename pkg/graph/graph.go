// Package graph defines the store interfaces the mutation core relies on. It
// models the system as a small graph: users, organizations and domains are
// vertices; affiliations, claims and ownerships are edges. The package also
// abstracts staged transactions so every cascade applies all-or-nothing
// against the shared store.
//
//go:generate mockgen -package mockgraph -source=graph.go -destination=mock/mockgraph.go *
package graph

import "context"

// AllStore is a composite interface that includes all graph capabilities
// required by the application. Implementations typically embed the narrower
// vertex and edge store interfaces.
type AllStore interface {
	UserStore
	OrganizationStore
	DomainStore
	AffiliationStore
	ClaimStore
	OwnershipStore
	ArtifactStore
	ScanRequestStore
	JobStore
}

// TxStore describes a store handle that operates within a transaction. Writes
// submitted through it stay invisible to other readers until Commit; any
// failed write leaves the transaction abortable without partial effects.
// Implementations should become unusable after Commit or Rollback is called.
type TxStore interface {
	AllStore

	// Commit finalizes the transaction, persisting all staged writes.
	Commit() error
	// Rollback aborts the transaction, discarding all staged writes.
	Rollback() error
}

// Store describes a non-transactional store handle with the ability to start
// transactions and manage its own lifecycle.
type Store interface {
	AllStore

	// Close releases any resources held by the store implementation (e.g. the
	// underlying connection pool). After Close, the instance should not be used.
	Close() error

	// Begin starts a new transaction and returns a TxStore for performing
	// further operations within it.
	Begin(ctx context.Context) (TxStore, error)
	// WithTx is a helper that begins a transaction, invokes the provided
	// callback with a transactional handle, and then commits on success or
	// rolls back when the callback returns an error.
	WithTx(ctx context.Context, cb func(store AllStore) error) error
}
