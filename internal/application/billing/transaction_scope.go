package billing

import (
	"context"

	"github.com/condo/backend/internal/domain/billing"
)

// TransactionScope provides transactional access to the billing repositories.
// Every top-level ledger mutation (apply payment, settle debt, apply spending)
// runs its whole load-mutate-persist sequence inside one scope so concurrent
// operations against the same sub-bill serialize instead of interleaving.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// If the function succeeds, the transaction is committed.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the billing repositories within
// a transaction. All repositories returned share the same underlying database
// transaction; in particular the two-ledger settlement (clear apartment debt,
// credit manager balance) commits or rolls back as a unit.
type TransactionalRepositories interface {
	// ApartmentSubBills returns the apartment sub-bill repository scoped to the current transaction
	ApartmentSubBills() billing.ApartmentSubBillRepository
	// ManagerSubBills returns the manager sub-bill repository scoped to the current transaction
	ManagerSubBills() billing.ManagerSubBillRepository
	// ApartmentOperations returns the payment log scoped to the current transaction
	ApartmentOperations() billing.ApartmentOperationRepository
	// SpendingOperations returns the spending log scoped to the current transaction
	SpendingOperations() billing.ManagerSpendingOperationRepository
	// DebtPaymentOperations returns the settlement log scoped to the current transaction
	DebtPaymentOperations() billing.DebtPaymentOperationRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use
// transactions. Useful for testing against mock repositories.
type NoOpTransactionScope struct {
	apartmentSubBills billing.ApartmentSubBillRepository
	managerSubBills   billing.ManagerSubBillRepository
	apartmentOps      billing.ApartmentOperationRepository
	spendingOps       billing.ManagerSpendingOperationRepository
	debtPaymentOps    billing.DebtPaymentOperationRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	apartmentSubBills billing.ApartmentSubBillRepository,
	managerSubBills billing.ManagerSubBillRepository,
	apartmentOps billing.ApartmentOperationRepository,
	spendingOps billing.ManagerSpendingOperationRepository,
	debtPaymentOps billing.DebtPaymentOperationRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		apartmentSubBills: apartmentSubBills,
		managerSubBills:   managerSubBills,
		apartmentOps:      apartmentOps,
		spendingOps:       spendingOps,
		debtPaymentOps:    debtPaymentOps,
	}
}

// Execute runs the function without a real transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// ApartmentSubBills returns the apartment sub-bill repository.
func (s *NoOpTransactionScope) ApartmentSubBills() billing.ApartmentSubBillRepository {
	return s.apartmentSubBills
}

// ManagerSubBills returns the manager sub-bill repository.
func (s *NoOpTransactionScope) ManagerSubBills() billing.ManagerSubBillRepository {
	return s.managerSubBills
}

// ApartmentOperations returns the payment log repository.
func (s *NoOpTransactionScope) ApartmentOperations() billing.ApartmentOperationRepository {
	return s.apartmentOps
}

// SpendingOperations returns the spending log repository.
func (s *NoOpTransactionScope) SpendingOperations() billing.ManagerSpendingOperationRepository {
	return s.spendingOps
}

// DebtPaymentOperations returns the settlement log repository.
func (s *NoOpTransactionScope) DebtPaymentOperations() billing.DebtPaymentOperationRepository {
	return s.debtPaymentOps
}

// Ensure NoOpTransactionScope implements both interfaces
var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
