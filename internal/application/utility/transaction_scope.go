package utility

import (
	"context"

	"github.com/condo/backend/internal/domain/utility"
)

// TransactionScope provides transactional access to the utility repositories.
// Lifecycle mutations that touch several rows (the calculation-method deletion
// cascade in particular) commit or roll back as a unit.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the utility repositories within
// a transaction.
type TransactionalRepositories interface {
	// Utilities returns the communal utility repository scoped to the current transaction
	Utilities() utility.CommunalUtilityRepository
	// Methods returns the calculation method repository scoped to the current transaction
	Methods() utility.CalculationMethodRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use
// transactions. Useful for testing against mock repositories.
type NoOpTransactionScope struct {
	utilities utility.CommunalUtilityRepository
	methods   utility.CalculationMethodRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(utilities utility.CommunalUtilityRepository, methods utility.CalculationMethodRepository) *NoOpTransactionScope {
	return &NoOpTransactionScope{utilities: utilities, methods: methods}
}

// Execute runs the function without a real transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// Utilities returns the communal utility repository.
func (s *NoOpTransactionScope) Utilities() utility.CommunalUtilityRepository {
	return s.utilities
}

// Methods returns the calculation method repository.
func (s *NoOpTransactionScope) Methods() utility.CalculationMethodRepository {
	return s.methods
}

// Ensure NoOpTransactionScope implements both interfaces
var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
