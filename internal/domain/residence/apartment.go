package residence

import (
	"strings"

	"github.com/condo/backend/internal/domain/shared"
)

// Apartment is a billable unit of the residential complex. Each apartment owns
// one sub-bill per communal utility.
type Apartment struct {
	shared.BaseAggregateRoot
	Number    int    `gorm:"not null;uniqueIndex"`
	OwnerName string `gorm:"type:varchar(200);not null"`
	Email     string `gorm:"type:varchar(200)"`
}

// TableName returns the table name for GORM
func (Apartment) TableName() string {
	return "apartments"
}

// NewApartment creates a new apartment
func NewApartment(number int, ownerName, email string) (*Apartment, error) {
	if number <= 0 {
		return nil, shared.NewDomainError("INVALID_NUMBER", "Apartment number must be positive")
	}
	if strings.TrimSpace(ownerName) == "" {
		return nil, shared.NewDomainError("INVALID_OWNER", "Apartment owner name cannot be empty")
	}
	return &Apartment{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Number:            number,
		OwnerName:         ownerName,
		Email:             email,
	}, nil
}
