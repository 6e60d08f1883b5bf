package persistence

import (
	"context"
	"errors"

	"github.com/condo/backend/internal/domain/billing"
	"github.com/condo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormApartmentSubBillRepository implements ApartmentSubBillRepository using GORM
type GormApartmentSubBillRepository struct {
	db *gorm.DB
}

// NewGormApartmentSubBillRepository creates a new GormApartmentSubBillRepository
func NewGormApartmentSubBillRepository(db *gorm.DB) *GormApartmentSubBillRepository {
	return &GormApartmentSubBillRepository{db: db}
}

// Create persists a new apartment sub-bill
func (r *GormApartmentSubBillRepository) Create(ctx context.Context, b *billing.ApartmentSubBill) error {
	return r.db.WithContext(ctx).Create(b).Error
}

// Update persists changes to an apartment sub-bill with optimistic locking
func (r *GormApartmentSubBillRepository) Update(ctx context.Context, b *billing.ApartmentSubBill) error {
	result := r.db.WithContext(ctx).
		Model(b).
		Where("id = ? AND version = ?", b.ID, b.Version-1).
		Updates(map[string]interface{}{
			"balance":    b.Balance,
			"debt":       b.Debt,
			"version":    b.Version,
			"updated_at": b.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	return nil
}

// FindByID finds an apartment sub-bill by its ID
func (r *GormApartmentSubBillRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.ApartmentSubBill, error) {
	var b billing.ApartmentSubBill
	if err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

// FindByApartmentID finds all sub-bills owned by an apartment
func (r *GormApartmentSubBillRepository) FindByApartmentID(ctx context.Context, apartmentID uuid.UUID) ([]*billing.ApartmentSubBill, error) {
	var subBills []*billing.ApartmentSubBill
	if err := r.db.WithContext(ctx).
		Where("apartment_id = ?", apartmentID).
		Order("created_at").
		Find(&subBills).Error; err != nil {
		return nil, err
	}
	return subBills, nil
}

// FindAll lists all apartment sub-bills
func (r *GormApartmentSubBillRepository) FindAll(ctx context.Context) ([]*billing.ApartmentSubBill, error) {
	var subBills []*billing.ApartmentSubBill
	if err := r.db.WithContext(ctx).Order("created_at").Find(&subBills).Error; err != nil {
		return nil, err
	}
	return subBills, nil
}

// GormManagerSubBillRepository implements ManagerSubBillRepository using GORM
type GormManagerSubBillRepository struct {
	db *gorm.DB
}

// NewGormManagerSubBillRepository creates a new GormManagerSubBillRepository
func NewGormManagerSubBillRepository(db *gorm.DB) *GormManagerSubBillRepository {
	return &GormManagerSubBillRepository{db: db}
}

// Create persists a new manager sub-bill
func (r *GormManagerSubBillRepository) Create(ctx context.Context, b *billing.ManagerSubBill) error {
	return r.db.WithContext(ctx).Create(b).Error
}

// Update persists changes to a manager sub-bill with optimistic locking
func (r *GormManagerSubBillRepository) Update(ctx context.Context, b *billing.ManagerSubBill) error {
	result := r.db.WithContext(ctx).
		Model(b).
		Where("id = ? AND version = ?", b.ID, b.Version-1).
		Updates(map[string]interface{}{
			"balance":    b.Balance,
			"version":    b.Version,
			"updated_at": b.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	return nil
}

// FindByID finds a manager sub-bill by its ID
func (r *GormManagerSubBillRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.ManagerSubBill, error) {
	var b billing.ManagerSubBill
	if err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

// FindByUtilityID finds the manager sub-bill owned by a communal utility
func (r *GormManagerSubBillRepository) FindByUtilityID(ctx context.Context, utilityID uuid.UUID) (*billing.ManagerSubBill, error) {
	var b billing.ManagerSubBill
	if err := r.db.WithContext(ctx).First(&b, "utility_id = ?", utilityID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

// FindAll lists all manager sub-bills
func (r *GormManagerSubBillRepository) FindAll(ctx context.Context) ([]*billing.ManagerSubBill, error) {
	var subBills []*billing.ManagerSubBill
	if err := r.db.WithContext(ctx).Order("created_at").Find(&subBills).Error; err != nil {
		return nil, err
	}
	return subBills, nil
}

// GormApartmentOperationRepository implements the append-only payment log using GORM
type GormApartmentOperationRepository struct {
	db *gorm.DB
}

// NewGormApartmentOperationRepository creates a new GormApartmentOperationRepository
func NewGormApartmentOperationRepository(db *gorm.DB) *GormApartmentOperationRepository {
	return &GormApartmentOperationRepository{db: db}
}

// Create appends a payment record. Records are never updated or deleted.
func (r *GormApartmentOperationRepository) Create(ctx context.Context, op *billing.ApartmentOperation) error {
	return r.db.WithContext(ctx).Create(op).Error
}

// FindBySubBillID returns the payment records of a sub-bill in insertion order
func (r *GormApartmentOperationRepository) FindBySubBillID(ctx context.Context, subBillID uuid.UUID) ([]*billing.ApartmentOperation, error) {
	var ops []*billing.ApartmentOperation
	if err := r.db.WithContext(ctx).
		Where("sub_bill_id = ?", subBillID).
		Order("created_at").
		Find(&ops).Error; err != nil {
		return nil, err
	}
	return ops, nil
}

// GormManagerSpendingOperationRepository implements the append-only spending log using GORM
type GormManagerSpendingOperationRepository struct {
	db *gorm.DB
}

// NewGormManagerSpendingOperationRepository creates a new GormManagerSpendingOperationRepository
func NewGormManagerSpendingOperationRepository(db *gorm.DB) *GormManagerSpendingOperationRepository {
	return &GormManagerSpendingOperationRepository{db: db}
}

// Create appends a spending record. Records are never updated or deleted.
func (r *GormManagerSpendingOperationRepository) Create(ctx context.Context, op *billing.ManagerSpendingOperation) error {
	return r.db.WithContext(ctx).Create(op).Error
}

// FindBySubBillID returns the spending records of a sub-bill in insertion order
func (r *GormManagerSpendingOperationRepository) FindBySubBillID(ctx context.Context, subBillID uuid.UUID) ([]*billing.ManagerSpendingOperation, error) {
	var ops []*billing.ManagerSpendingOperation
	if err := r.db.WithContext(ctx).
		Where("sub_bill_id = ?", subBillID).
		Order("created_at").
		Find(&ops).Error; err != nil {
		return nil, err
	}
	return ops, nil
}

// GormDebtPaymentOperationRepository implements the append-only settlement log using GORM
type GormDebtPaymentOperationRepository struct {
	db *gorm.DB
}

// NewGormDebtPaymentOperationRepository creates a new GormDebtPaymentOperationRepository
func NewGormDebtPaymentOperationRepository(db *gorm.DB) *GormDebtPaymentOperationRepository {
	return &GormDebtPaymentOperationRepository{db: db}
}

// Create appends a settlement record. Records are never updated or deleted.
func (r *GormDebtPaymentOperationRepository) Create(ctx context.Context, op *billing.DebtPaymentOperation) error {
	return r.db.WithContext(ctx).Create(op).Error
}

// FindByApartmentSubBillID returns the settlement records of an apartment sub-bill in insertion order
func (r *GormDebtPaymentOperationRepository) FindByApartmentSubBillID(ctx context.Context, subBillID uuid.UUID) ([]*billing.DebtPaymentOperation, error) {
	var ops []*billing.DebtPaymentOperation
	if err := r.db.WithContext(ctx).
		Where("apartment_sub_bill_id = ?", subBillID).
		Order("created_at").
		Find(&ops).Error; err != nil {
		return nil, err
	}
	return ops, nil
}

// FindByManagerSubBillID returns the settlement records of a manager sub-bill in insertion order
func (r *GormDebtPaymentOperationRepository) FindByManagerSubBillID(ctx context.Context, subBillID uuid.UUID) ([]*billing.DebtPaymentOperation, error) {
	var ops []*billing.DebtPaymentOperation
	if err := r.db.WithContext(ctx).
		Where("manager_sub_bill_id = ?", subBillID).
		Order("created_at").
		Find(&ops).Error; err != nil {
		return nil, err
	}
	return ops, nil
}

// Ensure repositories implement the domain interfaces
var _ billing.ApartmentSubBillRepository = (*GormApartmentSubBillRepository)(nil)
var _ billing.ManagerSubBillRepository = (*GormManagerSubBillRepository)(nil)
var _ billing.ApartmentOperationRepository = (*GormApartmentOperationRepository)(nil)
var _ billing.ManagerSpendingOperationRepository = (*GormManagerSpendingOperationRepository)(nil)
var _ billing.DebtPaymentOperationRepository = (*GormDebtPaymentOperationRepository)(nil)
