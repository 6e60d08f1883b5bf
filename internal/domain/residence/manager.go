package residence

import (
	"strings"

	"github.com/condo/backend/internal/domain/shared"
)

// Manager is the managing entity of the complex. The domain has exactly one
// manager; all communal spending and debt settlements run through its
// sub-bills.
type Manager struct {
	shared.BaseAggregateRoot
	Name  string `gorm:"type:varchar(200);not null"`
	Email string `gorm:"type:varchar(200)"`
}

// TableName returns the table name for GORM
func (Manager) TableName() string {
	return "managers"
}

// NewManager creates a new manager
func NewManager(name, email string) (*Manager, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Manager name cannot be empty")
	}
	return &Manager{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Email:             email,
	}, nil
}
