package utility

import (
	"context"

	"github.com/google/uuid"
)

// CommunalUtilityRepository defines the interface for communal utility persistence
type CommunalUtilityRepository interface {
	// Create persists a new communal utility
	Create(ctx context.Context, u *CommunalUtility) error

	// Update persists changes to an existing communal utility
	Update(ctx context.Context, u *CommunalUtility) error

	// FindByID finds a utility by ID without enrichment
	FindByID(ctx context.Context, id uuid.UUID) (*CommunalUtility, error)

	// FindByIDWithMethod finds a utility by ID with its calculation method
	// joined in. Returns shared.ErrNotFound when the utility has no linked
	// method; callers fall back to FindByID.
	FindByIDWithMethod(ctx context.Context, id uuid.UUID) (*CommunalUtility, error)

	// ExistsByName reports whether a utility with the given business-key name
	// exists. Existence probes return a boolean instead of a NotFound error.
	ExistsByName(ctx context.Context, name string) (bool, error)

	// FindByCalculationMethodID finds all utilities referencing a calculation method
	FindByCalculationMethodID(ctx context.Context, methodID uuid.UUID) ([]*CommunalUtility, error)

	// FindAll lists utilities, optionally filtered by status
	FindAll(ctx context.Context, status *Status) ([]*CommunalUtility, error)
}

// CalculationMethodRepository defines the interface for calculation method persistence
type CalculationMethodRepository interface {
	// Create persists a new calculation method
	Create(ctx context.Context, m *CalculationMethod) error

	// Update persists changes to an existing calculation method
	Update(ctx context.Context, m *CalculationMethod) error

	// FindByID finds a calculation method by ID
	FindByID(ctx context.Context, id uuid.UUID) (*CalculationMethod, error)

	// FindAll lists all calculation methods
	FindAll(ctx context.Context) ([]*CalculationMethod, error)

	// Delete removes a calculation method row
	Delete(ctx context.Context, id uuid.UUID) error
}

// NotificationService notifies all apartments about a newly created temporary
// utility. Delivery is fire-and-forget from the caller's point of view: a
// delivery error is surfaced but never rolls back the committed utility row.
type NotificationService interface {
	NotifyAllApartments(ctx context.Context, u *CommunalUtility) error
}
