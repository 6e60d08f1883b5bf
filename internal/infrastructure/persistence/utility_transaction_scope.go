package persistence

import (
	"context"

	apputility "github.com/condo/backend/internal/application/utility"
	"github.com/condo/backend/internal/domain/utility"
	"gorm.io/gorm"
)

// GormUtilityTransactionScope implements the utility TransactionScope using
// GORM transactions. The calculation-method deletion cascade disables every
// referencing utility and removes the method row in one transaction.
type GormUtilityTransactionScope struct {
	db *gorm.DB
}

// NewGormUtilityTransactionScope creates a new GormUtilityTransactionScope.
func NewGormUtilityTransactionScope(db *gorm.DB) *GormUtilityTransactionScope {
	return &GormUtilityTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
func (s *GormUtilityTransactionScope) Execute(ctx context.Context, fn func(repos apputility.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := &gormUtilityRepositories{tx: tx}
		return fn(repos)
	})
}

// gormUtilityRepositories provides access to the utility repositories within a transaction.
type gormUtilityRepositories struct {
	tx *gorm.DB
}

// Utilities returns the communal utility repository scoped to the current transaction.
func (r *gormUtilityRepositories) Utilities() utility.CommunalUtilityRepository {
	return NewGormCommunalUtilityRepository(r.tx)
}

// Methods returns the calculation method repository scoped to the current transaction.
func (r *gormUtilityRepositories) Methods() utility.CalculationMethodRepository {
	return NewGormCalculationMethodRepository(r.tx)
}

// Ensure GormUtilityTransactionScope implements TransactionScope
var _ apputility.TransactionScope = (*GormUtilityTransactionScope)(nil)

// Ensure gormUtilityRepositories implements TransactionalRepositories
var _ apputility.TransactionalRepositories = (*gormUtilityRepositories)(nil)
