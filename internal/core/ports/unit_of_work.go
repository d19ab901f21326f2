package ports

import (
	"context"
)

// UnitOfWorkFactory hands out a fresh UnitOfWork per command so concurrent
// handlers never share transaction state.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction boundary for a single command. Handlers
// drive the lifecycle explicitly: Begin, mutate through the transactional
// repositories, Commit, with Rollback deferred as the safety net.
//
// The lifecycle invariant of the system rides on it: an order mutation, its
// cost-summary update, and the matching ledger append commit together or not
// at all.
type UnitOfWork interface {
	// Begin opens the underlying database transaction.
	Begin(ctx context.Context) error

	// Commit commits the transaction opened by Begin. Fails when no
	// transaction is active.
	Commit(ctx context.Context) error

	// Rollback discards the transaction. Calling it after a successful
	// Commit is a no-op, which lets handlers defer it unconditionally.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current
	// transaction.
	OrderRepository() OrderRepository

	// DocumentFlowRepository returns a DocumentFlowRepository instance bound to
	// the current transaction.
	DocumentFlowRepository() DocumentFlowRepository
}
