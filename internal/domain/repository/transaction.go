package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a
// specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// Otherwise, it's committed. All repository operations within the
	// function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepos RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific
// transaction, so every operation inside an Execute callback shares one
// database connection and one commit point.
type RepositoryFactory interface {
	// AccountRepo returns an AccountRepository bound to the current transaction.
	AccountRepo() AccountRepository

	// CatalogRepo returns a CatalogRepository bound to the current transaction.
	CatalogRepo() CatalogRepository

	// StockRepo returns a StockRepository bound to the current transaction.
	StockRepo() StockRepository

	// OrderRepo returns an OrderRepository bound to the current transaction.
	OrderRepo() OrderRepository

	// SubscriptionRepo returns a SubscriptionRepository bound to the current transaction.
	SubscriptionRepo() SubscriptionRepository

	// ProcurementRepo returns a ProcurementRepository bound to the current transaction.
	ProcurementRepo() ProcurementRepository

	// WriteOffRepo returns a WriteOffRepository bound to the current transaction.
	WriteOffRepo() WriteOffRepository

	// ArchiveLogRepo returns an ArchiveLogRepository bound to the current transaction.
	ArchiveLogRepo() ArchiveLogRepository

	// IdempotencyRepo returns an IdempotencyRepository bound to the current transaction.
	IdempotencyRepo() IdempotencyRepository

	// NotificationRepo returns a NotificationRepository bound to the current transaction.
	NotificationRepo() NotificationRepository
}
