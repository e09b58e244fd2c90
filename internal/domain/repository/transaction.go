package repository

import "context"

// RepositoryFactory creates repository instances bound to a single database
// transaction. Use cases receive it inside TransactionManager.Execute so that
// every repository call in the callback shares one transaction.
type RepositoryFactory interface {
	// UserRepo returns a user repository bound to the transaction.
	UserRepo() UserRepository

	// AdminRepo returns an admin repository bound to the transaction.
	AdminRepo() AdminRepository

	// OrderRepo returns an order repository bound to the transaction.
	OrderRepo() OrderRepository
}

// TransactionManager runs a unit of work within a single database transaction.
type TransactionManager interface {
	// Execute begins a transaction, invokes fn with a factory bound to it,
	// and commits on nil error or rolls back otherwise.
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
