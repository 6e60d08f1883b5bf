package persistence

import (
	"context"

	appbilling "github.com/condo/backend/internal/application/billing"
	"github.com/condo/backend/internal/domain/billing"
	"gorm.io/gorm"
)

// GormBillingTransactionScope implements the billing TransactionScope using
// GORM transactions. The two-ledger settlement relies on it: clearing an
// apartment debt and crediting the manager sub-bill commit or roll back as a
// unit.
type GormBillingTransactionScope struct {
	db *gorm.DB
}

// NewGormBillingTransactionScope creates a new GormBillingTransactionScope.
func NewGormBillingTransactionScope(db *gorm.DB) *GormBillingTransactionScope {
	return &GormBillingTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
// If the function succeeds, the transaction is committed.
func (s *GormBillingTransactionScope) Execute(ctx context.Context, fn func(repos appbilling.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := &gormBillingRepositories{tx: tx}
		return fn(repos)
	})
}

// gormBillingRepositories provides access to the billing repositories within a transaction.
type gormBillingRepositories struct {
	tx *gorm.DB
}

// ApartmentSubBills returns the apartment sub-bill repository scoped to the current transaction.
func (r *gormBillingRepositories) ApartmentSubBills() billing.ApartmentSubBillRepository {
	return NewGormApartmentSubBillRepository(r.tx)
}

// ManagerSubBills returns the manager sub-bill repository scoped to the current transaction.
func (r *gormBillingRepositories) ManagerSubBills() billing.ManagerSubBillRepository {
	return NewGormManagerSubBillRepository(r.tx)
}

// ApartmentOperations returns the payment log scoped to the current transaction.
func (r *gormBillingRepositories) ApartmentOperations() billing.ApartmentOperationRepository {
	return NewGormApartmentOperationRepository(r.tx)
}

// SpendingOperations returns the spending log scoped to the current transaction.
func (r *gormBillingRepositories) SpendingOperations() billing.ManagerSpendingOperationRepository {
	return NewGormManagerSpendingOperationRepository(r.tx)
}

// DebtPaymentOperations returns the settlement log scoped to the current transaction.
func (r *gormBillingRepositories) DebtPaymentOperations() billing.DebtPaymentOperationRepository {
	return NewGormDebtPaymentOperationRepository(r.tx)
}

// Ensure GormBillingTransactionScope implements TransactionScope
var _ appbilling.TransactionScope = (*GormBillingTransactionScope)(nil)

// Ensure gormBillingRepositories implements TransactionalRepositories
var _ appbilling.TransactionalRepositories = (*gormBillingRepositories)(nil)
