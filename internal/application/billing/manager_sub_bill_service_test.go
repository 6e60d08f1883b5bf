package billing

import (
	"context"
	"testing"

	"github.com/condo/backend/internal/domain/billing"
	"github.com/condo/backend/internal/domain/residence"
	"github.com/condo/backend/internal/domain/shared"
	"github.com/condo/backend/internal/domain/utility"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestManagerSubBill(balance int64) *billing.ManagerSubBill {
	subBill, _ := billing.NewManagerSubBill(uuid.New(), uuid.New())
	subBill.Balance = decimal.NewFromInt(balance)
	return subBill
}

func TestManagerSubBillService_ApplySpending_DebitsBalance(t *testing.T) {
	f := newLedgerFixture()
	ctx := context.Background()

	subBill := newTestManagerSubBill(100)
	f.managerSubBills.On("FindByID", ctx, subBill.ID).Return(subBill, nil)
	f.managerSubBills.On("Update", ctx, subBill).Return(nil)
	f.spendingOps.On("Create", ctx, mock.MatchedBy(func(op *billing.ManagerSpendingOperation) bool {
		return op.Sum.Equal(decimal.NewFromInt(40)) && op.Purpose == "pipe repairs"
	})).Return(nil)

	result, err := f.managerLedger.ApplySpending(ctx, subBill.ID, decimal.NewFromInt(40), "pipe repairs")

	assert.NoError(t, err)
	assert.True(t, result.Balance.Equal(decimal.NewFromInt(60)))
	f.spendingOps.AssertExpectations(t)
}

func TestManagerSubBillService_ApplySpending_InsufficientBalance(t *testing.T) {
	f := newLedgerFixture()
	ctx := context.Background()

	subBill := newTestManagerSubBill(100)
	f.managerSubBills.On("FindByID", ctx, subBill.ID).Return(subBill, nil)

	result, err := f.managerLedger.ApplySpending(ctx, subBill.ID, decimal.NewFromInt(150), "roof works")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, shared.ErrInsufficientBalance)
	assert.True(t, subBill.Balance.Equal(decimal.NewFromInt(100)))
	f.managerSubBills.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	f.spendingOps.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestManagerSubBillService_ApplySpending_RejectsNonPositive(t *testing.T) {
	f := newLedgerFixture()
	ctx := context.Background()

	subBill := newTestManagerSubBill(100)
	f.managerSubBills.On("FindByID", ctx, subBill.ID).Return(subBill, nil)

	result, err := f.managerLedger.ApplySpending(ctx, subBill.ID, decimal.Zero, "")

	assert.Nil(t, result)
	assert.Error(t, err)
	f.spendingOps.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestManagerSubBillService_CreateForUtility_UsesSingularManager(t *testing.T) {
	f := newLedgerFixture()
	ctx := context.Background()

	manager, _ := residence.NewManager("Complex Management LLC", "office@example.com")
	u, _ := utility.NewCommunalUtility("Water", utility.DurationPermanent, utility.StatusDisabled, nil, nil)

	f.managers.On("Get", ctx).Return(manager, nil)
	f.managerSubBills.On("Create", ctx, mock.MatchedBy(func(b *billing.ManagerSubBill) bool {
		return b.ManagerID == manager.ID && b.UtilityID == u.ID && b.Balance.IsZero()
	})).Return(nil)

	err := f.managerLedger.CreateForUtility(ctx, u)

	assert.NoError(t, err)
	f.managerSubBills.AssertExpectations(t)
}

func TestManagerSubBillService_GetByUtilityID_EnrichesHistory(t *testing.T) {
	f := newLedgerFixture()
	ctx := context.Background()

	subBill := newTestManagerSubBill(75)
	spending, _ := billing.NewManagerSpendingOperation(subBill.ID, decimal.NewFromInt(25), "lighting")
	settlement, _ := billing.NewDebtPaymentOperation(uuid.New(), subBill.ID, decimal.NewFromInt(100))

	f.managerSubBills.On("FindByUtilityID", ctx, subBill.UtilityID).Return(subBill, nil)
	f.spendingOps.On("FindBySubBillID", ctx, subBill.ID).Return([]*billing.ManagerSpendingOperation{spending}, nil)
	f.debtOps.On("FindByManagerSubBillID", ctx, subBill.ID).Return([]*billing.DebtPaymentOperation{settlement}, nil)

	result, err := f.managerLedger.GetByUtilityID(ctx, subBill.UtilityID)

	assert.NoError(t, err)
	assert.Len(t, result.Spending, 1)
	assert.Len(t, result.DebtPayments, 1)
	assert.Equal(t, "lighting", result.Spending[0].Purpose)
}

func TestManagerSubBillService_GetByID_NotFound(t *testing.T) {
	f := newLedgerFixture()
	ctx := context.Background()
	id := uuid.New()

	f.managerSubBills.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

	result, err := f.managerLedger.GetByID(ctx, id)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
