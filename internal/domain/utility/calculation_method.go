package utility

import (
	"strings"
	"time"

	"github.com/condo/backend/internal/domain/shared"
)

// CalculationMethod is reference data describing how a communal utility's
// charges are computed. Utilities hold a non-owning reference to it; a utility
// may be Enabled only while such a reference exists.
type CalculationMethod struct {
	shared.BaseAggregateRoot
	Name        string `gorm:"type:varchar(100);not null"`
	Description string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (CalculationMethod) TableName() string {
	return "calculation_methods"
}

// NewCalculationMethod creates a new calculation method
func NewCalculationMethod(name, description string) (*CalculationMethod, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Calculation method name cannot be empty")
	}
	return &CalculationMethod{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Description:       description,
	}, nil
}

// Rename updates the method name
func (m *CalculationMethod) Rename(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Calculation method name cannot be empty")
	}
	m.Name = name
	m.UpdatedAt = time.Now()
	m.IncrementVersion()
	return nil
}
