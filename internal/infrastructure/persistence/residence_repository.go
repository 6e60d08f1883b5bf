package persistence

import (
	"context"
	"errors"

	"github.com/condo/backend/internal/domain/residence"
	"github.com/condo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormApartmentRepository implements ApartmentRepository using GORM
type GormApartmentRepository struct {
	db *gorm.DB
}

// NewGormApartmentRepository creates a new GormApartmentRepository
func NewGormApartmentRepository(db *gorm.DB) *GormApartmentRepository {
	return &GormApartmentRepository{db: db}
}

// Create persists a new apartment
func (r *GormApartmentRepository) Create(ctx context.Context, a *residence.Apartment) error {
	return r.db.WithContext(ctx).Create(a).Error
}

// FindByID finds an apartment by its ID
func (r *GormApartmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*residence.Apartment, error) {
	var a residence.Apartment
	if err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

// FindAll lists all apartments ordered by apartment number
func (r *GormApartmentRepository) FindAll(ctx context.Context) ([]*residence.Apartment, error) {
	var apartments []*residence.Apartment
	if err := r.db.WithContext(ctx).Order("number").Find(&apartments).Error; err != nil {
		return nil, err
	}
	return apartments, nil
}

// GormManagerRepository implements ManagerRepository using GORM
type GormManagerRepository struct {
	db *gorm.DB
}

// NewGormManagerRepository creates a new GormManagerRepository
func NewGormManagerRepository(db *gorm.DB) *GormManagerRepository {
	return &GormManagerRepository{db: db}
}

// Get returns the managing entity. The manager table holds a single row.
func (r *GormManagerRepository) Get(ctx context.Context) (*residence.Manager, error) {
	var m residence.Manager
	if err := r.db.WithContext(ctx).Order("created_at").First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

// Create persists the managing entity
func (r *GormManagerRepository) Create(ctx context.Context, m *residence.Manager) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// Ensure repositories implement the domain interfaces
var _ residence.ApartmentRepository = (*GormApartmentRepository)(nil)
var _ residence.ManagerRepository = (*GormManagerRepository)(nil)
