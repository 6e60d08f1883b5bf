package billing

import (
	"time"

	"github.com/condo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ManagerSubBill tracks the managing entity's balance for one communal
// utility. It is credited by debt settlements and debited by spending
// operations; the balance never goes negative.
type ManagerSubBill struct {
	shared.BaseAggregateRoot
	ManagerID uuid.UUID       `gorm:"type:uuid;not null;index"`
	UtilityID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	Balance   decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`

	// Histories are populated by enriched read accessors only.
	SpendingOperations    []*ManagerSpendingOperation `gorm:"-"`
	DebtPaymentOperations []*DebtPaymentOperation     `gorm:"-"`
}

// TableName returns the table name for GORM
func (ManagerSubBill) TableName() string {
	return "manager_sub_bills"
}

// NewManagerSubBill creates a zero-balance sub-bill for the manager and utility
func NewManagerSubBill(managerID, utilityID uuid.UUID) (*ManagerSubBill, error) {
	if managerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_MANAGER", "Manager ID cannot be empty")
	}
	if utilityID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_UTILITY", "Utility ID cannot be empty")
	}
	return &ManagerSubBill{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ManagerID:         managerID,
		UtilityID:         utilityID,
		Balance:           decimal.Zero,
	}, nil
}

// Credit raises the balance by a settlement sum
func (b *ManagerSubBill) Credit(sum decimal.Decimal) {
	b.Balance = b.Balance.Add(sum)
	b.UpdatedAt = time.Now()
	b.IncrementVersion()
}

// Spend lowers the balance by the spending sum. Spending that exceeds the
// balance fails hard and mutates nothing.
func (b *ManagerSubBill) Spend(sum decimal.Decimal) error {
	if !sum.IsPositive() {
		return shared.NewDomainError("INVALID_AMOUNT", "Spending sum must be positive")
	}
	if b.Balance.LessThan(sum) {
		return shared.ErrInsufficientBalance
	}
	b.Balance = b.Balance.Sub(sum)
	b.UpdatedAt = time.Now()
	b.IncrementVersion()
	return nil
}
