package billing

import (
	"time"

	"github.com/condo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ManagerSpendingOperation is an immutable record of communal spending debited
// from a manager sub-bill.
type ManagerSpendingOperation struct {
	shared.BaseEntity
	SubBillID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Sum           decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Purpose       string          `gorm:"type:varchar(300)"`
	OperationDate time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ManagerSpendingOperation) TableName() string {
	return "manager_spending_operations"
}

// NewManagerSpendingOperation creates a new spending record
func NewManagerSpendingOperation(subBillID uuid.UUID, sum decimal.Decimal, purpose string) (*ManagerSpendingOperation, error) {
	if subBillID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SUB_BILL", "Sub-bill ID cannot be empty")
	}
	if !sum.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Spending sum must be positive")
	}
	return &ManagerSpendingOperation{
		BaseEntity:    shared.NewBaseEntity(),
		SubBillID:     subBillID,
		Sum:           sum,
		Purpose:       purpose,
		OperationDate: time.Now(),
	}, nil
}
