package billing

import (
	"time"

	"github.com/condo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ApartmentSubBill tracks balance and outstanding debt for one
// (apartment, communal utility) pair.
//
// Debt is settled only in full: a payment either clears the whole current
// debt or leaves it untouched. Partial payments raise the balance without
// reducing debt until a later payment crosses the threshold.
type ApartmentSubBill struct {
	shared.BaseAggregateRoot
	ApartmentID uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:idx_apartment_utility,priority:1"`
	UtilityID   uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:idx_apartment_utility,priority:2"`
	Balance     decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	Debt        decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`

	// Histories are populated by enriched read accessors only.
	PaymentOperations     []*ApartmentOperation   `gorm:"-"`
	DebtPaymentOperations []*DebtPaymentOperation `gorm:"-"`
}

// TableName returns the table name for GORM
func (ApartmentSubBill) TableName() string {
	return "apartment_sub_bills"
}

// NewApartmentSubBill creates a zero-balance, zero-debt sub-bill for the given
// apartment and utility pair
func NewApartmentSubBill(apartmentID, utilityID uuid.UUID) (*ApartmentSubBill, error) {
	if apartmentID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_APARTMENT", "Apartment ID cannot be empty")
	}
	if utilityID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_UTILITY", "Utility ID cannot be empty")
	}
	return &ApartmentSubBill{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ApartmentID:       apartmentID,
		UtilityID:         utilityID,
		Balance:           decimal.Zero,
		Debt:              decimal.Zero,
	}, nil
}

// ApplyPayment raises the balance by the payment sum. Negative sums are
// accepted; the ledger does not veto corrections or payments against a
// disabled utility.
func (b *ApartmentSubBill) ApplyPayment(sum decimal.Decimal) {
	b.Balance = b.Balance.Add(sum)
	b.UpdatedAt = time.Now()
	b.IncrementVersion()
}

// SettleDebt clears the outstanding debt when the balance covers it in full.
// Returns the cleared amount and true when a settlement happened; zero debt
// never produces a settlement.
func (b *ApartmentSubBill) SettleDebt() (decimal.Decimal, bool) {
	if b.Debt.IsZero() || b.Balance.LessThan(b.Debt) {
		return decimal.Zero, false
	}
	cleared := b.Debt
	b.Balance = b.Balance.Sub(cleared)
	b.Debt = decimal.Zero
	b.UpdatedAt = time.Now()
	b.IncrementVersion()
	return cleared, true
}

// AccrueDebt adds a charge to the outstanding debt
func (b *ApartmentSubBill) AccrueDebt(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return shared.NewDomainError("INVALID_AMOUNT", "Charge amount must be positive")
	}
	b.Debt = b.Debt.Add(amount)
	b.UpdatedAt = time.Now()
	b.IncrementVersion()
	return nil
}
