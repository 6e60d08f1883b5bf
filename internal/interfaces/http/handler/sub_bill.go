package handler

import (
	billingapp "github.com/condo/backend/internal/application/billing"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ApartmentSubBillHandler handles apartment sub-bill API endpoints
type ApartmentSubBillHandler struct {
	BaseHandler
	apartmentLedger *billingapp.ApartmentSubBillService
}

// NewApartmentSubBillHandler creates a new ApartmentSubBillHandler
func NewApartmentSubBillHandler(apartmentLedger *billingapp.ApartmentSubBillService) *ApartmentSubBillHandler {
	return &ApartmentSubBillHandler{
		apartmentLedger: apartmentLedger,
	}
}

// PaymentRequest represents a payment posted against an apartment sub-bill.
// Any sum is accepted, including zero and negative corrections.
type PaymentRequest struct {
	Sum decimal.Decimal `json:"sum" binding:"required"`
}

// ChargeDebtRequest represents a debt accrual against an apartment sub-bill
type ChargeDebtRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// GetByID retrieves an apartment sub-bill with its operation history
func (h *ApartmentSubBillHandler) GetByID(c *gin.Context) {
	subBillID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid sub-bill ID format")
		return
	}

	found, err := h.apartmentLedger.GetByID(c.Request.Context(), subBillID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, found)
}

// List retrieves all apartment sub-bills
func (h *ApartmentSubBillHandler) List(c *gin.Context) {
	subBills, err := h.apartmentLedger.ListAll(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, subBills)
}

// Pay posts a payment to an apartment sub-bill. When the resulting balance
// covers the whole debt, the debt is settled in the same transaction.
func (h *ApartmentSubBillHandler) Pay(c *gin.Context) {
	subBillID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid sub-bill ID format")
		return
	}

	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	updated, err := h.apartmentLedger.ApplyPayment(c.Request.Context(), subBillID, req.Sum)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, updated)
}

// ChargeDebt accrues debt on an apartment sub-bill
func (h *ApartmentSubBillHandler) ChargeDebt(c *gin.Context) {
	subBillID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid sub-bill ID format")
		return
	}

	var req ChargeDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	updated, err := h.apartmentLedger.ChargeDebt(c.Request.Context(), subBillID, req.Amount)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, updated)
}

// ManagerSubBillHandler handles manager sub-bill API endpoints
type ManagerSubBillHandler struct {
	BaseHandler
	managerLedger *billingapp.ManagerSubBillService
}

// NewManagerSubBillHandler creates a new ManagerSubBillHandler
func NewManagerSubBillHandler(managerLedger *billingapp.ManagerSubBillService) *ManagerSubBillHandler {
	return &ManagerSubBillHandler{
		managerLedger: managerLedger,
	}
}

// SpendingRequest represents a spending debit against a manager sub-bill
type SpendingRequest struct {
	Sum     decimal.Decimal `json:"sum" binding:"required"`
	Purpose string          `json:"purpose" binding:"max=500"`
}

// GetByID retrieves a manager sub-bill with its operation history
func (h *ManagerSubBillHandler) GetByID(c *gin.Context) {
	subBillID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid sub-bill ID format")
		return
	}

	found, err := h.managerLedger.GetByID(c.Request.Context(), subBillID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, found)
}

// GetByUtility retrieves the manager sub-bill backing one utility
func (h *ManagerSubBillHandler) GetByUtility(c *gin.Context) {
	utilityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid utility ID format")
		return
	}

	found, err := h.managerLedger.GetByUtilityID(c.Request.Context(), utilityID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, found)
}

// List retrieves all manager sub-bills
func (h *ManagerSubBillHandler) List(c *gin.Context) {
	subBills, err := h.managerLedger.ListAll(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, subBills)
}

// Spend debits a manager sub-bill. The balance must cover the whole sum.
func (h *ManagerSubBillHandler) Spend(c *gin.Context) {
	subBillID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid sub-bill ID format")
		return
	}

	var req SpendingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	updated, err := h.managerLedger.ApplySpending(c.Request.Context(), subBillID, req.Sum, req.Purpose)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, updated)
}
