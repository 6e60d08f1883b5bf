package billing

import (
	"context"

	"github.com/google/uuid"
)

// ApartmentSubBillRepository defines the interface for apartment sub-bill persistence
type ApartmentSubBillRepository interface {
	// Create persists a new apartment sub-bill
	Create(ctx context.Context, b *ApartmentSubBill) error

	// Update persists changes to an existing apartment sub-bill
	Update(ctx context.Context, b *ApartmentSubBill) error

	// FindByID finds an apartment sub-bill by ID
	FindByID(ctx context.Context, id uuid.UUID) (*ApartmentSubBill, error)

	// FindByApartmentID finds all sub-bills owned by an apartment
	FindByApartmentID(ctx context.Context, apartmentID uuid.UUID) ([]*ApartmentSubBill, error)

	// FindAll lists all apartment sub-bills
	FindAll(ctx context.Context) ([]*ApartmentSubBill, error)
}

// ManagerSubBillRepository defines the interface for manager sub-bill persistence
type ManagerSubBillRepository interface {
	// Create persists a new manager sub-bill
	Create(ctx context.Context, b *ManagerSubBill) error

	// Update persists changes to an existing manager sub-bill
	Update(ctx context.Context, b *ManagerSubBill) error

	// FindByID finds a manager sub-bill by ID
	FindByID(ctx context.Context, id uuid.UUID) (*ManagerSubBill, error)

	// FindByUtilityID finds the manager sub-bill owned by a communal utility
	FindByUtilityID(ctx context.Context, utilityID uuid.UUID) (*ManagerSubBill, error)

	// FindAll lists all manager sub-bills
	FindAll(ctx context.Context) ([]*ManagerSubBill, error)
}

// ApartmentOperationRepository is the append-only payment log.
// FindBySubBillID returns operations in insertion order.
type ApartmentOperationRepository interface {
	Create(ctx context.Context, op *ApartmentOperation) error
	FindBySubBillID(ctx context.Context, subBillID uuid.UUID) ([]*ApartmentOperation, error)
}

// ManagerSpendingOperationRepository is the append-only spending log.
// FindBySubBillID returns operations in insertion order.
type ManagerSpendingOperationRepository interface {
	Create(ctx context.Context, op *ManagerSpendingOperation) error
	FindBySubBillID(ctx context.Context, subBillID uuid.UUID) ([]*ManagerSpendingOperation, error)
}

// DebtPaymentOperationRepository is the append-only settlement log.
// Finders return operations in insertion order.
type DebtPaymentOperationRepository interface {
	Create(ctx context.Context, op *DebtPaymentOperation) error
	FindByApartmentSubBillID(ctx context.Context, subBillID uuid.UUID) ([]*DebtPaymentOperation, error)
	FindByManagerSubBillID(ctx context.Context, subBillID uuid.UUID) ([]*DebtPaymentOperation, error)
}
