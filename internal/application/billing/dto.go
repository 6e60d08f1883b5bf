package billing

import (
	"time"

	"github.com/condo/backend/internal/domain/billing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ApartmentSubBillResponse is the read model of an apartment sub-bill,
// including its payment and debt-settlement history.
type ApartmentSubBillResponse struct {
	ID           uuid.UUID                      `json:"id"`
	ApartmentID  uuid.UUID                      `json:"apartment_id"`
	UtilityID    uuid.UUID                      `json:"utility_id"`
	Balance      decimal.Decimal                `json:"balance"`
	Debt         decimal.Decimal                `json:"debt"`
	Payments     []ApartmentOperationResponse   `json:"payments"`
	DebtPayments []DebtPaymentOperationResponse `json:"debt_payments"`
	CreatedAt    time.Time                      `json:"created_at"`
	UpdatedAt    time.Time                      `json:"updated_at"`
}

// ManagerSubBillResponse is the read model of a manager sub-bill, including
// its spending and debt-settlement history.
type ManagerSubBillResponse struct {
	ID           uuid.UUID                          `json:"id"`
	ManagerID    uuid.UUID                          `json:"manager_id"`
	UtilityID    uuid.UUID                          `json:"utility_id"`
	Balance      decimal.Decimal                    `json:"balance"`
	Spending     []ManagerSpendingOperationResponse `json:"spending"`
	DebtPayments []DebtPaymentOperationResponse     `json:"debt_payments"`
	CreatedAt    time.Time                          `json:"created_at"`
	UpdatedAt    time.Time                          `json:"updated_at"`
}

// ApartmentOperationResponse is the read model of a payment record
type ApartmentOperationResponse struct {
	ID            uuid.UUID       `json:"id"`
	SubBillID     uuid.UUID       `json:"sub_bill_id"`
	Sum           decimal.Decimal `json:"sum"`
	OperationDate time.Time       `json:"operation_date"`
}

// ManagerSpendingOperationResponse is the read model of a spending record
type ManagerSpendingOperationResponse struct {
	ID            uuid.UUID       `json:"id"`
	SubBillID     uuid.UUID       `json:"sub_bill_id"`
	Sum           decimal.Decimal `json:"sum"`
	Purpose       string          `json:"purpose,omitempty"`
	OperationDate time.Time       `json:"operation_date"`
}

// DebtPaymentOperationResponse is the read model of a settlement record
type DebtPaymentOperationResponse struct {
	ID                 uuid.UUID       `json:"id"`
	ApartmentSubBillID uuid.UUID       `json:"apartment_sub_bill_id"`
	ManagerSubBillID   uuid.UUID       `json:"manager_sub_bill_id"`
	Sum                decimal.Decimal `json:"sum"`
	OperationDate      time.Time       `json:"operation_date"`
}

// ToApartmentSubBillResponse converts a domain apartment sub-bill to its read model
func ToApartmentSubBillResponse(b *billing.ApartmentSubBill) ApartmentSubBillResponse {
	payments := make([]ApartmentOperationResponse, 0, len(b.PaymentOperations))
	for _, op := range b.PaymentOperations {
		payments = append(payments, ApartmentOperationResponse{
			ID:            op.ID,
			SubBillID:     op.SubBillID,
			Sum:           op.Sum,
			OperationDate: op.OperationDate,
		})
	}
	return ApartmentSubBillResponse{
		ID:           b.ID,
		ApartmentID:  b.ApartmentID,
		UtilityID:    b.UtilityID,
		Balance:      b.Balance,
		Debt:         b.Debt,
		Payments:     payments,
		DebtPayments: toDebtPaymentResponses(b.DebtPaymentOperations),
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

// ToManagerSubBillResponse converts a domain manager sub-bill to its read model
func ToManagerSubBillResponse(b *billing.ManagerSubBill) ManagerSubBillResponse {
	spending := make([]ManagerSpendingOperationResponse, 0, len(b.SpendingOperations))
	for _, op := range b.SpendingOperations {
		spending = append(spending, ManagerSpendingOperationResponse{
			ID:            op.ID,
			SubBillID:     op.SubBillID,
			Sum:           op.Sum,
			Purpose:       op.Purpose,
			OperationDate: op.OperationDate,
		})
	}
	return ManagerSubBillResponse{
		ID:           b.ID,
		ManagerID:    b.ManagerID,
		UtilityID:    b.UtilityID,
		Balance:      b.Balance,
		Spending:     spending,
		DebtPayments: toDebtPaymentResponses(b.DebtPaymentOperations),
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

func toDebtPaymentResponses(ops []*billing.DebtPaymentOperation) []DebtPaymentOperationResponse {
	responses := make([]DebtPaymentOperationResponse, 0, len(ops))
	for _, op := range ops {
		responses = append(responses, DebtPaymentOperationResponse{
			ID:                 op.ID,
			ApartmentSubBillID: op.ApartmentSubBillID,
			ManagerSubBillID:   op.ManagerSubBillID,
			Sum:                op.Sum,
			OperationDate:      op.OperationDate,
		})
	}
	return responses
}
