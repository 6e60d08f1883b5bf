package billing

import (
	"context"

	"github.com/condo/backend/internal/domain/billing"
	"github.com/shopspring/decimal"
)

// DebtSettlementCoordinator pairs an apartment debt clearance with a manager
// credit. It runs inside the caller's transaction: if the credit step fails,
// the debt-clearing step is rolled back with it.
type DebtSettlementCoordinator struct {
	managerLedger *ManagerSubBillService
}

// NewDebtSettlementCoordinator creates a new DebtSettlementCoordinator
func NewDebtSettlementCoordinator(managerLedger *ManagerSubBillService) *DebtSettlementCoordinator {
	return &DebtSettlementCoordinator{managerLedger: managerLedger}
}

// Settle records the transfer of a fully cleared debt to the manager sub-bill
// owned by the same utility. It is attempted exactly once per settlement
// event; the recorded sum is the debt outstanding immediately before
// settlement, never a recomputed amount.
func (c *DebtSettlementCoordinator) Settle(
	ctx context.Context,
	repos TransactionalRepositories,
	apartmentSubBill *billing.ApartmentSubBill,
	clearedDebt decimal.Decimal,
) (*billing.DebtPaymentOperation, error) {
	managerSubBill, err := repos.ManagerSubBills().FindByUtilityID(ctx, apartmentSubBill.UtilityID)
	if err != nil {
		return nil, err
	}

	op, err := billing.NewDebtPaymentOperation(apartmentSubBill.ID, managerSubBill.ID, clearedDebt)
	if err != nil {
		return nil, err
	}

	if err := repos.DebtPaymentOperations().Create(ctx, op); err != nil {
		return nil, err
	}

	if err := c.managerLedger.applyDebtSettlement(ctx, repos, op); err != nil {
		return nil, err
	}

	return op, nil
}
