package billing

import (
	"time"

	"github.com/condo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DebtPaymentOperation is the settlement record produced when an apartment's
// debt clears in full. It is the single artifact linking the apartment and
// manager ledgers: its sum equals the debt outstanding immediately before
// settlement, and the linked manager sub-bill is credited by exactly that sum.
type DebtPaymentOperation struct {
	shared.BaseEntity
	ApartmentSubBillID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ManagerSubBillID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Sum                decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	OperationDate      time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (DebtPaymentOperation) TableName() string {
	return "debt_payment_operations"
}

// NewDebtPaymentOperation creates a new settlement record
func NewDebtPaymentOperation(apartmentSubBillID, managerSubBillID uuid.UUID, sum decimal.Decimal) (*DebtPaymentOperation, error) {
	if apartmentSubBillID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SUB_BILL", "Apartment sub-bill ID cannot be empty")
	}
	if managerSubBillID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SUB_BILL", "Manager sub-bill ID cannot be empty")
	}
	if !sum.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Settlement sum must be positive")
	}
	return &DebtPaymentOperation{
		BaseEntity:         shared.NewBaseEntity(),
		ApartmentSubBillID: apartmentSubBillID,
		ManagerSubBillID:   managerSubBillID,
		Sum:                sum,
		OperationDate:      time.Now(),
	}, nil
}
