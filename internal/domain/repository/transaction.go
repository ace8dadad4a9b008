package repository

import "context"

// TransactionManager runs a unit of work inside one database transaction.
// The function's error rolls the transaction back; a nil return commits it.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the running transaction.
type RepositoryFactory interface {
	UserRepo() UserRepository
}
