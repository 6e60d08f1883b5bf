package handler

import (
	billingapp "github.com/condo/backend/internal/application/billing"
	residenceapp "github.com/condo/backend/internal/application/residence"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ApartmentHandler handles apartment and manager API endpoints
type ApartmentHandler struct {
	BaseHandler
	apartmentService *residenceapp.ApartmentService
	apartmentLedger  *billingapp.ApartmentSubBillService
}

// NewApartmentHandler creates a new ApartmentHandler
func NewApartmentHandler(
	apartmentService *residenceapp.ApartmentService,
	apartmentLedger *billingapp.ApartmentSubBillService,
) *ApartmentHandler {
	return &ApartmentHandler{
		apartmentService: apartmentService,
		apartmentLedger:  apartmentLedger,
	}
}

// CreateApartmentRequest represents a request to register an apartment
type CreateApartmentRequest struct {
	Number    int    `json:"number" binding:"required,min=1"`
	OwnerName string `json:"owner_name" binding:"required,min=1,max=200"`
	Email     string `json:"email" binding:"omitempty,email,max=200"`
}

// Create registers a new apartment and provisions its sub-bills
func (h *ApartmentHandler) Create(c *gin.Context) {
	var req CreateApartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	created, err := h.apartmentService.Create(c.Request.Context(), residenceapp.CreateApartmentRequest{
		Number:    req.Number,
		OwnerName: req.OwnerName,
		Email:     req.Email,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, created)
}

// GetByID retrieves an apartment by ID
func (h *ApartmentHandler) GetByID(c *gin.Context) {
	apartmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid apartment ID format")
		return
	}

	found, err := h.apartmentService.GetByID(c.Request.Context(), apartmentID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, found)
}

// List retrieves all apartments ordered by number
func (h *ApartmentHandler) List(c *gin.Context) {
	apartments, err := h.apartmentService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, apartments)
}

// ListSubBills retrieves the sub-bills of one apartment
func (h *ApartmentHandler) ListSubBills(c *gin.Context) {
	apartmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid apartment ID format")
		return
	}

	subBills, err := h.apartmentLedger.ListByApartment(c.Request.Context(), apartmentID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, subBills)
}

// GetManager retrieves the complex manager
func (h *ApartmentHandler) GetManager(c *gin.Context) {
	manager, err := h.apartmentService.GetManager(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, manager)
}
