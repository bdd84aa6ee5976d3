// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// UnitOfWorkStores bundles the repositories that participate in one atomic
// unit. Both are bound to the same database transaction.
type UnitOfWorkStores struct {
	Expenses ExpenseRepository
	Ledger   LedgerRepository
}

// UnitOfWork executes a function inside a single database transaction.
//
// Every mutating expense operation and every reversal runs through Execute:
// either the expense mutation and its ledger entry both commit, or neither
// does. An error returned by fn rolls back everything and is surfaced to the
// caller unchanged.
type UnitOfWork interface {
	Execute(ctx context.Context, fn func(ctx context.Context, stores UnitOfWorkStores) error) error
}
