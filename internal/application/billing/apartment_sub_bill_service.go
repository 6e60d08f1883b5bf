package billing

import (
	"context"

	"github.com/condo/backend/internal/domain/billing"
	"github.com/condo/backend/internal/domain/residence"
	"github.com/condo/backend/internal/domain/utility"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ApartmentSubBillService handles the apartment side of the sub-bill ledger:
// payment reconciliation and one-shot debt settlement.
type ApartmentSubBillService struct {
	scope         TransactionScope
	subBillRepo   billing.ApartmentSubBillRepository
	paymentOps    billing.ApartmentOperationRepository
	debtOps       billing.DebtPaymentOperationRepository
	apartmentRepo residence.ApartmentRepository
	utilityRepo   utility.CommunalUtilityRepository
	settlement    *DebtSettlementCoordinator
}

// NewApartmentSubBillService creates a new ApartmentSubBillService
func NewApartmentSubBillService(
	scope TransactionScope,
	subBillRepo billing.ApartmentSubBillRepository,
	paymentOps billing.ApartmentOperationRepository,
	debtOps billing.DebtPaymentOperationRepository,
	apartmentRepo residence.ApartmentRepository,
	utilityRepo utility.CommunalUtilityRepository,
	settlement *DebtSettlementCoordinator,
) *ApartmentSubBillService {
	return &ApartmentSubBillService{
		scope:         scope,
		subBillRepo:   subBillRepo,
		paymentOps:    paymentOps,
		debtOps:       debtOps,
		apartmentRepo: apartmentRepo,
		utilityRepo:   utilityRepo,
		settlement:    settlement,
	}
}

// ApplyPayment applies a payment to an apartment sub-bill. The balance is
// raised by the payment sum and the payment recorded; when the raised balance
// covers the whole outstanding debt, the debt is settled in one shot and the
// manager sub-bill of the same utility credited by exactly the cleared amount.
//
// A payment that falls short of the debt raises the balance only: the debt
// stays untouched until a later payment crosses the threshold. Negative sums
// and payments against disabled utilities are accepted; the ledger does not
// veto them.
func (s *ApartmentSubBillService) ApplyPayment(ctx context.Context, subBillID uuid.UUID, sum decimal.Decimal) (*ApartmentSubBillResponse, error) {
	var result *billing.ApartmentSubBill

	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		subBill, err := repos.ApartmentSubBills().FindByID(ctx, subBillID)
		if err != nil {
			return err
		}

		subBill.ApplyPayment(sum)
		if err := repos.ApartmentSubBills().Update(ctx, subBill); err != nil {
			return err
		}

		op, err := billing.NewApartmentOperation(subBill.ID, sum)
		if err != nil {
			return err
		}
		if err := repos.ApartmentOperations().Create(ctx, op); err != nil {
			return err
		}

		if cleared, ok := subBill.SettleDebt(); ok {
			if err := repos.ApartmentSubBills().Update(ctx, subBill); err != nil {
				return err
			}
			if _, err := s.settlement.Settle(ctx, repos, subBill, cleared); err != nil {
				return err
			}
		}

		result = subBill
		return nil
	})
	if err != nil {
		return nil, err
	}

	response := ToApartmentSubBillResponse(result)
	return &response, nil
}

// ChargeDebt accrues a charge onto an apartment sub-bill's outstanding debt
func (s *ApartmentSubBillService) ChargeDebt(ctx context.Context, subBillID uuid.UUID, amount decimal.Decimal) (*ApartmentSubBillResponse, error) {
	var result *billing.ApartmentSubBill

	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		subBill, err := repos.ApartmentSubBills().FindByID(ctx, subBillID)
		if err != nil {
			return err
		}
		if err := subBill.AccrueDebt(amount); err != nil {
			return err
		}
		if err := repos.ApartmentSubBills().Update(ctx, subBill); err != nil {
			return err
		}
		result = subBill
		return nil
	})
	if err != nil {
		return nil, err
	}

	response := ToApartmentSubBillResponse(result)
	return &response, nil
}

// CreateForUtility creates a zero-balance, zero-debt sub-bill scoped to the
// given utility for every existing apartment.
func (s *ApartmentSubBillService) CreateForUtility(ctx context.Context, u *utility.CommunalUtility) error {
	apartments, err := s.apartmentRepo.FindAll(ctx)
	if err != nil {
		return err
	}

	return s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		for _, apartment := range apartments {
			subBill, err := billing.NewApartmentSubBill(apartment.ID, u.ID)
			if err != nil {
				return err
			}
			if err := repos.ApartmentSubBills().Create(ctx, subBill); err != nil {
				return err
			}
		}
		return nil
	})
}

// CreateForApartment creates a zero-balance, zero-debt sub-bill scoped to the
// given apartment for every existing utility.
func (s *ApartmentSubBillService) CreateForApartment(ctx context.Context, apartment *residence.Apartment) error {
	utilities, err := s.utilityRepo.FindAll(ctx, nil)
	if err != nil {
		return err
	}

	return s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		for _, u := range utilities {
			subBill, err := billing.NewApartmentSubBill(apartment.ID, u.ID)
			if err != nil {
				return err
			}
			if err := repos.ApartmentSubBills().Create(ctx, subBill); err != nil {
				return err
			}
		}
		return nil
	})
}

// GetByID retrieves an apartment sub-bill enriched with its payment and
// debt-settlement history.
func (s *ApartmentSubBillService) GetByID(ctx context.Context, id uuid.UUID) (*ApartmentSubBillResponse, error) {
	subBill, err := s.subBillRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.enrich(ctx, subBill); err != nil {
		return nil, err
	}

	response := ToApartmentSubBillResponse(subBill)
	return &response, nil
}

// ListByApartment retrieves all sub-bills owned by an apartment, each
// enriched with its operation history.
func (s *ApartmentSubBillService) ListByApartment(ctx context.Context, apartmentID uuid.UUID) ([]ApartmentSubBillResponse, error) {
	subBills, err := s.subBillRepo.FindByApartmentID(ctx, apartmentID)
	if err != nil {
		return nil, err
	}
	return s.toEnrichedResponses(ctx, subBills)
}

// ListAll retrieves all apartment sub-bills, each enriched with its operation
// history.
func (s *ApartmentSubBillService) ListAll(ctx context.Context) ([]ApartmentSubBillResponse, error) {
	subBills, err := s.subBillRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.toEnrichedResponses(ctx, subBills)
}

func (s *ApartmentSubBillService) toEnrichedResponses(ctx context.Context, subBills []*billing.ApartmentSubBill) ([]ApartmentSubBillResponse, error) {
	responses := make([]ApartmentSubBillResponse, 0, len(subBills))
	for _, subBill := range subBills {
		if err := s.enrich(ctx, subBill); err != nil {
			return nil, err
		}
		responses = append(responses, ToApartmentSubBillResponse(subBill))
	}
	return responses, nil
}

func (s *ApartmentSubBillService) enrich(ctx context.Context, subBill *billing.ApartmentSubBill) error {
	payments, err := s.paymentOps.FindBySubBillID(ctx, subBill.ID)
	if err != nil {
		return err
	}
	settlements, err := s.debtOps.FindByApartmentSubBillID(ctx, subBill.ID)
	if err != nil {
		return err
	}
	subBill.PaymentOperations = payments
	subBill.DebtPaymentOperations = settlements
	return nil
}
