package handler

import (
	"context"

	"github.com/condo/backend/internal/domain/billing"
	"github.com/condo/backend/internal/domain/residence"
	"github.com/condo/backend/internal/domain/utility"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockCommunalUtilityRepository implements utility.CommunalUtilityRepository for testing
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
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*utility.CommunalUtility), args.Error(1)
}

func (m *MockCommunalUtilityRepository) FindAll(ctx context.Context, status *utility.Status) ([]*utility.CommunalUtility, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*utility.CommunalUtility), args.Error(1)
}

// MockCalculationMethodRepository implements utility.CalculationMethodRepository for testing
type MockCalculationMethodRepository struct {
	mock.Mock
}

func (m *MockCalculationMethodRepository) Create(ctx context.Context, method *utility.CalculationMethod) error {
	args := m.Called(ctx, method)
	return args.Error(0)
}

func (m *MockCalculationMethodRepository) Update(ctx context.Context, method *utility.CalculationMethod) error {
	args := m.Called(ctx, method)
	return args.Error(0)
}

func (m *MockCalculationMethodRepository) FindByID(ctx context.Context, id uuid.UUID) (*utility.CalculationMethod, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*utility.CalculationMethod), args.Error(1)
}

func (m *MockCalculationMethodRepository) FindAll(ctx context.Context) ([]*utility.CalculationMethod, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*utility.CalculationMethod), args.Error(1)
}

func (m *MockCalculationMethodRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockNotificationService implements utility.NotificationService for testing
type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) NotifyAllApartments(ctx context.Context, u *utility.CommunalUtility) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

// MockSubBillProvisioner covers both provisioning interfaces for testing
type MockSubBillProvisioner struct {
	mock.Mock
}

func (m *MockSubBillProvisioner) ProvisionForUtility(ctx context.Context, u *utility.CommunalUtility) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockSubBillProvisioner) ProvisionForApartment(ctx context.Context, a *residence.Apartment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

// MockApartmentSubBillRepository implements billing.ApartmentSubBillRepository for testing
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
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*billing.ApartmentSubBill), args.Error(1)
}

func (m *MockApartmentSubBillRepository) FindAll(ctx context.Context) ([]*billing.ApartmentSubBill, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*billing.ApartmentSubBill), args.Error(1)
}

// MockManagerSubBillRepository implements billing.ManagerSubBillRepository for testing
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
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*billing.ManagerSubBill), args.Error(1)
}

// MockApartmentOperationRepository implements billing.ApartmentOperationRepository for testing
type MockApartmentOperationRepository struct {
	mock.Mock
}

func (m *MockApartmentOperationRepository) Create(ctx context.Context, op *billing.ApartmentOperation) error {
	args := m.Called(ctx, op)
	return args.Error(0)
}

func (m *MockApartmentOperationRepository) FindBySubBillID(ctx context.Context, subBillID uuid.UUID) ([]*billing.ApartmentOperation, error) {
	args := m.Called(ctx, subBillID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*billing.ApartmentOperation), args.Error(1)
}

// MockManagerSpendingOperationRepository implements billing.ManagerSpendingOperationRepository for testing
type MockManagerSpendingOperationRepository struct {
	mock.Mock
}

func (m *MockManagerSpendingOperationRepository) Create(ctx context.Context, op *billing.ManagerSpendingOperation) error {
	args := m.Called(ctx, op)
	return args.Error(0)
}

func (m *MockManagerSpendingOperationRepository) FindBySubBillID(ctx context.Context, subBillID uuid.UUID) ([]*billing.ManagerSpendingOperation, error) {
	args := m.Called(ctx, subBillID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*billing.ManagerSpendingOperation), args.Error(1)
}

// MockDebtPaymentOperationRepository implements billing.DebtPaymentOperationRepository for testing
type MockDebtPaymentOperationRepository struct {
	mock.Mock
}

func (m *MockDebtPaymentOperationRepository) Create(ctx context.Context, op *billing.DebtPaymentOperation) error {
	args := m.Called(ctx, op)
	return args.Error(0)
}

func (m *MockDebtPaymentOperationRepository) FindByApartmentSubBillID(ctx context.Context, subBillID uuid.UUID) ([]*billing.DebtPaymentOperation, error) {
	args := m.Called(ctx, subBillID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*billing.DebtPaymentOperation), args.Error(1)
}

func (m *MockDebtPaymentOperationRepository) FindByManagerSubBillID(ctx context.Context, subBillID uuid.UUID) ([]*billing.DebtPaymentOperation, error) {
	args := m.Called(ctx, subBillID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*billing.DebtPaymentOperation), args.Error(1)
}

// MockApartmentRepository implements residence.ApartmentRepository for testing
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
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*residence.Apartment), args.Error(1)
}

// MockManagerRepository implements residence.ManagerRepository for testing
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

func (m *MockManagerRepository) Create(ctx context.Context, mgr *residence.Manager) error {
	args := m.Called(ctx, mgr)
	return args.Error(0)
}
