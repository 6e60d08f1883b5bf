package billing

import (
	"context"

	"github.com/condo/backend/internal/domain/billing"
	"github.com/condo/backend/internal/domain/residence"
	"github.com/condo/backend/internal/domain/utility"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ManagerSubBillService handles the manager side of the sub-bill ledger:
// communal spending debits and debt-settlement credits.
type ManagerSubBillService struct {
	scope       TransactionScope
	subBillRepo billing.ManagerSubBillRepository
	spendingOps billing.ManagerSpendingOperationRepository
	debtOps     billing.DebtPaymentOperationRepository
	managerRepo residence.ManagerRepository
}

// NewManagerSubBillService creates a new ManagerSubBillService
func NewManagerSubBillService(
	scope TransactionScope,
	subBillRepo billing.ManagerSubBillRepository,
	spendingOps billing.ManagerSpendingOperationRepository,
	debtOps billing.DebtPaymentOperationRepository,
	managerRepo residence.ManagerRepository,
) *ManagerSubBillService {
	return &ManagerSubBillService{
		scope:       scope,
		subBillRepo: subBillRepo,
		spendingOps: spendingOps,
		debtOps:     debtOps,
		managerRepo: managerRepo,
	}
}

// ApplySpending debits a spending sum from a manager sub-bill and records the
// spending operation. Spending that exceeds the balance fails with an
// insufficient-balance error and leaves all state untouched; this is a hard
// guard, not a retryable condition.
func (s *ManagerSubBillService) ApplySpending(ctx context.Context, subBillID uuid.UUID, sum decimal.Decimal, purpose string) (*ManagerSubBillResponse, error) {
	var result *billing.ManagerSubBill

	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		subBill, err := repos.ManagerSubBills().FindByID(ctx, subBillID)
		if err != nil {
			return err
		}

		if err := subBill.Spend(sum); err != nil {
			return err
		}

		if err := repos.ManagerSubBills().Update(ctx, subBill); err != nil {
			return err
		}

		op, err := billing.NewManagerSpendingOperation(subBill.ID, sum, purpose)
		if err != nil {
			return err
		}
		if err := repos.SpendingOperations().Create(ctx, op); err != nil {
			return err
		}

		result = subBill
		return nil
	})
	if err != nil {
		return nil, err
	}

	response := ToManagerSubBillResponse(result)
	return &response, nil
}

// applyDebtSettlement credits a settlement sum onto the manager sub-bill the
// operation references. Only the DebtSettlementCoordinator calls this, inside
// the settlement transaction.
func (s *ManagerSubBillService) applyDebtSettlement(ctx context.Context, repos TransactionalRepositories, op *billing.DebtPaymentOperation) error {
	subBill, err := repos.ManagerSubBills().FindByID(ctx, op.ManagerSubBillID)
	if err != nil {
		return err
	}

	subBill.Credit(op.Sum)
	return repos.ManagerSubBills().Update(ctx, subBill)
}

// CreateForUtility creates exactly one zero-balance manager sub-bill for a
// newly created utility. The manager is singular in this domain.
func (s *ManagerSubBillService) CreateForUtility(ctx context.Context, u *utility.CommunalUtility) error {
	manager, err := s.managerRepo.Get(ctx)
	if err != nil {
		return err
	}

	subBill, err := billing.NewManagerSubBill(manager.ID, u.ID)
	if err != nil {
		return err
	}

	return s.subBillRepo.Create(ctx, subBill)
}

// GetByID retrieves a manager sub-bill enriched with its spending and
// debt-settlement history.
func (s *ManagerSubBillService) GetByID(ctx context.Context, id uuid.UUID) (*ManagerSubBillResponse, error) {
	subBill, err := s.subBillRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.enrich(ctx, subBill); err != nil {
		return nil, err
	}

	response := ToManagerSubBillResponse(subBill)
	return &response, nil
}

// GetByUtilityID retrieves the manager sub-bill owned by a communal utility,
// enriched with its operation history.
func (s *ManagerSubBillService) GetByUtilityID(ctx context.Context, utilityID uuid.UUID) (*ManagerSubBillResponse, error) {
	subBill, err := s.subBillRepo.FindByUtilityID(ctx, utilityID)
	if err != nil {
		return nil, err
	}
	if err := s.enrich(ctx, subBill); err != nil {
		return nil, err
	}

	response := ToManagerSubBillResponse(subBill)
	return &response, nil
}

// ListAll retrieves all manager sub-bills, each enriched with its operation
// history.
func (s *ManagerSubBillService) ListAll(ctx context.Context) ([]ManagerSubBillResponse, error) {
	subBills, err := s.subBillRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]ManagerSubBillResponse, 0, len(subBills))
	for _, subBill := range subBills {
		if err := s.enrich(ctx, subBill); err != nil {
			return nil, err
		}
		responses = append(responses, ToManagerSubBillResponse(subBill))
	}
	return responses, nil
}

func (s *ManagerSubBillService) enrich(ctx context.Context, subBill *billing.ManagerSubBill) error {
	spending, err := s.spendingOps.FindBySubBillID(ctx, subBill.ID)
	if err != nil {
		return err
	}
	settlements, err := s.debtOps.FindByManagerSubBillID(ctx, subBill.ID)
	if err != nil {
		return err
	}
	subBill.SpendingOperations = spending
	subBill.DebtPaymentOperations = settlements
	return nil
}
