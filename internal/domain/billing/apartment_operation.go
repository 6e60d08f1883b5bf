package billing

import (
	"time"

	"github.com/condo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ApartmentOperation is an immutable record of a payment applied to an
// apartment sub-bill. Once created, operations cannot be modified -
// corrections are applied as new operations with a negative sum.
type ApartmentOperation struct {
	shared.BaseEntity
	SubBillID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Sum           decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	OperationDate time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ApartmentOperation) TableName() string {
	return "apartment_operations"
}

// NewApartmentOperation creates a new payment record. The sum may be zero or
// negative: corrections are recorded like any other payment.
func NewApartmentOperation(subBillID uuid.UUID, sum decimal.Decimal) (*ApartmentOperation, error) {
	if subBillID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SUB_BILL", "Sub-bill ID cannot be empty")
	}
	return &ApartmentOperation{
		BaseEntity:    shared.NewBaseEntity(),
		SubBillID:     subBillID,
		Sum:           sum,
		OperationDate: time.Now(),
	}, nil
}
