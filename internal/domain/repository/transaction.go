package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific transaction.
type RepositoryFactory interface {
	// WorkLogRepo returns a WorkLogRepository bound to the current transaction.
	WorkLogRepo() WorkLogRepository

	// ClockSessionRepo returns a ClockSessionRepository bound to the current transaction.
	ClockSessionRepo() ClockSessionRepository

	// WageProfileRepo returns a WageProfileRepository bound to the current transaction.
	WageProfileRepo() WageProfileRepository

	// CalendarTokenRepo returns a CalendarTokenRepository bound to the current transaction.
	CalendarTokenRepo() CalendarTokenRepository
}
