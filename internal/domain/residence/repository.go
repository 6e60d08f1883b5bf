package residence

import (
	"context"

	"github.com/google/uuid"
)

// ApartmentRepository defines the interface for apartment persistence
type ApartmentRepository interface {
	// Create persists a new apartment
	Create(ctx context.Context, a *Apartment) error

	// FindByID finds an apartment by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Apartment, error)

	// FindAll lists all apartments
	FindAll(ctx context.Context) ([]*Apartment, error)
}

// ManagerRepository defines the interface for manager persistence.
// The manager is singular; Get returns the one managing entity.
type ManagerRepository interface {
	// Get returns the managing entity
	Get(ctx context.Context) (*Manager, error)

	// Create persists the managing entity
	Create(ctx context.Context, m *Manager) error
}
