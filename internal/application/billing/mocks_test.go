package billing

import (
	"context"

	"github.com/condo/backend/internal/domain/billing"
	"github.com/condo/backend/internal/domain/residence"
	"github.com/condo/backend/internal/domain/utility"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// Mock repositories shared by the billing application tests.

// MockApartmentSubBillRepository is a mock implementation of ApartmentSubBillRepository
type MockApartmentSubBillRepository struct {
	mock.Mock
}

func (m *MockApartmentSubBillRepository) Create(ctx context.Context, b *billing.ApartmentSubBill) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockApartmentSubBillRepository) Update(ctx context.Context, b *billing.ApartmentSubBill) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockApartmentSubBillRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.ApartmentSubBill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.ApartmentSubBill), args.Error(1)
}

func (m *MockApartmentSubBillRepository) FindByApartmentID(ctx context.Context, apartmentID uuid.UUID) ([]*billing.ApartmentSubBill, error) {
	args := m.Called(ctx, apartmentID)
	return args.Get(0).([]*billing.ApartmentSubBill), args.Error(1)
}

func (m *MockApartmentSubBillRepository) FindAll(ctx context.Context) ([]*billing.ApartmentSubBill, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*billing.ApartmentSubBill), args.Error(1)
}

// MockManagerSubBillRepository is a mock implementation of ManagerSubBillRepository
type MockManagerSubBillRepository struct {
	mock.Mock
}

func (m *MockManagerSubBillRepository) Create(ctx context.Context, b *billing.ManagerSubBill) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockManagerSubBillRepository) Update(ctx context.Context, b *billing.ManagerSubBill) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockManagerSubBillRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.ManagerSubBill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.ManagerSubBill), args.Error(1)
}

func (m *MockManagerSubBillRepository) FindByUtilityID(ctx context.Context, utilityID uuid.UUID) (*billing.ManagerSubBill, error) {
	args := m.Called(ctx, utilityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.ManagerSubBill), args.Error(1)
}

func (m *MockManagerSubBillRepository) FindAll(ctx context.Context) ([]*billing.ManagerSubBill, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*billing.ManagerSubBill), args.Error(1)
}

// MockApartmentOperationRepository is a mock implementation of ApartmentOperationRepository
type MockApartmentOperationRepository struct {
	mock.Mock
}

func (m *MockApartmentOperationRepository) Create(ctx context.Context, op *billing.ApartmentOperation) error {
	args := m.Called(ctx, op)
	return args.Error(0)
}

func (m *MockApartmentOperationRepository) FindBySubBillID(ctx context.Context, subBillID uuid.UUID) ([]*billing.ApartmentOperation, error) {
	args := m.Called(ctx, subBillID)
	return args.Get(0).([]*billing.ApartmentOperation), args.Error(1)
}

// MockManagerSpendingOperationRepository is a mock implementation of ManagerSpendingOperationRepository
type MockManagerSpendingOperationRepository struct {
	mock.Mock
}

func (m *MockManagerSpendingOperationRepository) Create(ctx context.Context, op *billing.ManagerSpendingOperation) error {
	args := m.Called(ctx, op)
	return args.Error(0)
}

func (m *MockManagerSpendingOperationRepository) FindBySubBillID(ctx context.Context, subBillID uuid.UUID) ([]*billing.ManagerSpendingOperation, error) {
	args := m.Called(ctx, subBillID)
	return args.Get(0).([]*billing.ManagerSpendingOperation), args.Error(1)
}

// MockDebtPaymentOperationRepository is a mock implementation of DebtPaymentOperationRepository
type MockDebtPaymentOperationRepository struct {
	mock.Mock
}

func (m *MockDebtPaymentOperationRepository) Create(ctx context.Context, op *billing.DebtPaymentOperation) error {
	args := m.Called(ctx, op)
	return args.Error(0)
}

func (m *MockDebtPaymentOperationRepository) FindByApartmentSubBillID(ctx context.Context, subBillID uuid.UUID) ([]*billing.DebtPaymentOperation, error) {
	args := m.Called(ctx, subBillID)
	return args.Get(0).([]*billing.DebtPaymentOperation), args.Error(1)
}

func (m *MockDebtPaymentOperationRepository) FindByManagerSubBillID(ctx context.Context, subBillID uuid.UUID) ([]*billing.DebtPaymentOperation, error) {
	args := m.Called(ctx, subBillID)
	return args.Get(0).([]*billing.DebtPaymentOperation), args.Error(1)
}

// MockApartmentRepository is a mock implementation of residence.ApartmentRepository
type MockApartmentRepository struct {
	mock.Mock
}

func (m *MockApartmentRepository) Create(ctx context.Context, a *residence.Apartment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockApartmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*residence.Apartment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*residence.Apartment), args.Error(1)
}

func (m *MockApartmentRepository) FindAll(ctx context.Context) ([]*residence.Apartment, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*residence.Apartment), args.Error(1)
}

// MockManagerRepository is a mock implementation of residence.ManagerRepository
type MockManagerRepository struct {
	mock.Mock
}

func (m *MockManagerRepository) Get(ctx context.Context) (*residence.Manager, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*residence.Manager), args.Error(1)
}

func (m *MockManagerRepository) Create(ctx context.Context, mg *residence.Manager) error {
	args := m.Called(ctx, mg)
	return args.Error(0)
}

// MockCommunalUtilityRepository is a mock implementation of utility.CommunalUtilityRepository
type MockCommunalUtilityRepository struct {
	mock.Mock
}

func (m *MockCommunalUtilityRepository) Create(ctx context.Context, u *utility.CommunalUtility) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockCommunalUtilityRepository) Update(ctx context.Context, u *utility.CommunalUtility) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockCommunalUtilityRepository) FindByID(ctx context.Context, id uuid.UUID) (*utility.CommunalUtility, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*utility.CommunalUtility), args.Error(1)
}

func (m *MockCommunalUtilityRepository) FindByIDWithMethod(ctx context.Context, id uuid.UUID) (*utility.CommunalUtility, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*utility.CommunalUtility), args.Error(1)
}

func (m *MockCommunalUtilityRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockCommunalUtilityRepository) FindByCalculationMethodID(ctx context.Context, methodID uuid.UUID) ([]*utility.CommunalUtility, error) {
	args := m.Called(ctx, methodID)
	return args.Get(0).([]*utility.CommunalUtility), args.Error(1)
}

func (m *MockCommunalUtilityRepository) FindAll(ctx context.Context, status *utility.Status) ([]*utility.CommunalUtility, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]*utility.CommunalUtility), args.Error(1)
}

// ledgerFixture wires both ledger services over the mocks with a no-op
// transaction scope.
type ledgerFixture struct {
	apartmentSubBills *MockApartmentSubBillRepository
	managerSubBills   *MockManagerSubBillRepository
	apartmentOps      *MockApartmentOperationRepository
	spendingOps       *MockManagerSpendingOperationRepository
	debtOps           *MockDebtPaymentOperationRepository
	apartments        *MockApartmentRepository
	managers          *MockManagerRepository
	utilities         *MockCommunalUtilityRepository

	apartmentLedger *ApartmentSubBillService
	managerLedger   *ManagerSubBillService
}

func newLedgerFixture() *ledgerFixture {
	f := &ledgerFixture{
		apartmentSubBills: new(MockApartmentSubBillRepository),
		managerSubBills:   new(MockManagerSubBillRepository),
		apartmentOps:      new(MockApartmentOperationRepository),
		spendingOps:       new(MockManagerSpendingOperationRepository),
		debtOps:           new(MockDebtPaymentOperationRepository),
		apartments:        new(MockApartmentRepository),
		managers:          new(MockManagerRepository),
		utilities:         new(MockCommunalUtilityRepository),
	}

	scope := NewNoOpTransactionScope(
		f.apartmentSubBills,
		f.managerSubBills,
		f.apartmentOps,
		f.spendingOps,
		f.debtOps,
	)

	f.managerLedger = NewManagerSubBillService(scope, f.managerSubBills, f.spendingOps, f.debtOps, f.managers)
	f.apartmentLedger = NewApartmentSubBillService(
		scope,
		f.apartmentSubBills,
		f.apartmentOps,
		f.debtOps,
		f.apartments,
		f.utilities,
		NewDebtSettlementCoordinator(f.managerLedger),
	)
	return f
}
