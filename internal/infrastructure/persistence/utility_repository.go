package persistence

import (
	"context"
	"errors"

	"github.com/condo/backend/internal/domain/shared"
	"github.com/condo/backend/internal/domain/utility"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCommunalUtilityRepository implements CommunalUtilityRepository using GORM
type GormCommunalUtilityRepository struct {
	db *gorm.DB
}

// NewGormCommunalUtilityRepository creates a new GormCommunalUtilityRepository
func NewGormCommunalUtilityRepository(db *gorm.DB) *GormCommunalUtilityRepository {
	return &GormCommunalUtilityRepository{db: db}
}

// Create persists a new communal utility
func (r *GormCommunalUtilityRepository) Create(ctx context.Context, u *utility.CommunalUtility) error {
	return r.db.WithContext(ctx).Create(u).Error
}

// Update persists changes to a communal utility with optimistic locking
func (r *GormCommunalUtilityRepository) Update(ctx context.Context, u *utility.CommunalUtility) error {
	result := r.db.WithContext(ctx).
		Model(u).
		Where("id = ? AND version = ?", u.ID, u.Version-1).
		Updates(map[string]interface{}{
			"name":                  u.Name,
			"duration":              u.Duration,
			"status":                u.Status,
			"deadline":              u.Deadline,
			"calculation_method_id": u.CalculationMethodID,
			"version":               u.Version,
			"updated_at":            u.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	return nil
}

// FindByID finds a communal utility by its ID
func (r *GormCommunalUtilityRepository) FindByID(ctx context.Context, id uuid.UUID) (*utility.CommunalUtility, error) {
	var u utility.CommunalUtility
	if err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByIDWithMethod finds a communal utility together with its calculation
// method. A utility without a linked method, or with a dangling reference,
// reports not found; callers fall back to FindByID.
func (r *GormCommunalUtilityRepository) FindByIDWithMethod(ctx context.Context, id uuid.UUID) (*utility.CommunalUtility, error) {
	var u utility.CommunalUtility
	if err := r.db.WithContext(ctx).
		First(&u, "id = ? AND calculation_method_id IS NOT NULL", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}

	var method utility.CalculationMethod
	if err := r.db.WithContext(ctx).First(&method, "id = ?", *u.CalculationMethodID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}

	u.CalculationMethod = &method
	return &u, nil
}

// ExistsByName reports whether a utility with the given name exists
func (r *GormCommunalUtilityRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&utility.CommunalUtility{}).
		Where("name = ?", name).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindByCalculationMethodID finds all utilities referencing a calculation method
func (r *GormCommunalUtilityRepository) FindByCalculationMethodID(ctx context.Context, methodID uuid.UUID) ([]*utility.CommunalUtility, error) {
	var utilities []*utility.CommunalUtility
	if err := r.db.WithContext(ctx).
		Where("calculation_method_id = ?", methodID).
		Order("created_at").
		Find(&utilities).Error; err != nil {
		return nil, err
	}
	return utilities, nil
}

// FindAll lists utilities, optionally filtered by status
func (r *GormCommunalUtilityRepository) FindAll(ctx context.Context, status *utility.Status) ([]*utility.CommunalUtility, error) {
	query := r.db.WithContext(ctx).Model(&utility.CommunalUtility{}).Order("created_at")
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	var utilities []*utility.CommunalUtility
	if err := query.Find(&utilities).Error; err != nil {
		return nil, err
	}
	return utilities, nil
}

// GormCalculationMethodRepository implements CalculationMethodRepository using GORM
type GormCalculationMethodRepository struct {
	db *gorm.DB
}

// NewGormCalculationMethodRepository creates a new GormCalculationMethodRepository
func NewGormCalculationMethodRepository(db *gorm.DB) *GormCalculationMethodRepository {
	return &GormCalculationMethodRepository{db: db}
}

// Create persists a new calculation method
func (r *GormCalculationMethodRepository) Create(ctx context.Context, m *utility.CalculationMethod) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// Update persists changes to a calculation method with optimistic locking
func (r *GormCalculationMethodRepository) Update(ctx context.Context, m *utility.CalculationMethod) error {
	result := r.db.WithContext(ctx).
		Model(m).
		Where("id = ? AND version = ?", m.ID, m.Version-1).
		Updates(map[string]interface{}{
			"name":        m.Name,
			"description": m.Description,
			"version":     m.Version,
			"updated_at":  m.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	return nil
}

// FindByID finds a calculation method by its ID
func (r *GormCalculationMethodRepository) FindByID(ctx context.Context, id uuid.UUID) (*utility.CalculationMethod, error) {
	var m utility.CalculationMethod
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

// FindAll lists all calculation methods
func (r *GormCalculationMethodRepository) FindAll(ctx context.Context) ([]*utility.CalculationMethod, error) {
	var methods []*utility.CalculationMethod
	if err := r.db.WithContext(ctx).Order("created_at").Find(&methods).Error; err != nil {
		return nil, err
	}
	return methods, nil
}

// Delete removes a calculation method row
func (r *GormCalculationMethodRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&utility.CalculationMethod{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure repositories implement the domain interfaces
var _ utility.CommunalUtilityRepository = (*GormCommunalUtilityRepository)(nil)
var _ utility.CalculationMethodRepository = (*GormCalculationMethodRepository)(nil)
