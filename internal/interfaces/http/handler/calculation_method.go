package handler

import (
	utilityapp "github.com/condo/backend/internal/application/utility"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CalculationMethodHandler handles calculation method API endpoints
type CalculationMethodHandler struct {
	BaseHandler
	utilityService *utilityapp.CommunalUtilityService
}

// NewCalculationMethodHandler creates a new CalculationMethodHandler
func NewCalculationMethodHandler(utilityService *utilityapp.CommunalUtilityService) *CalculationMethodHandler {
	return &CalculationMethodHandler{
		utilityService: utilityService,
	}
}

// CreateCalculationMethodRequest represents a request to create a calculation method
type CreateCalculationMethodRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description" binding:"max=500"`
}

// UpdateCalculationMethodRequest represents a request to update a calculation method
type UpdateCalculationMethodRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description" binding:"max=500"`
}

// Create creates a new calculation method
func (h *CalculationMethodHandler) Create(c *gin.Context) {
	var req CreateCalculationMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	created, err := h.utilityService.CreateCalculationMethod(c.Request.Context(), utilityapp.CreateCalculationMethodRequest{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, created)
}

// GetByID retrieves a calculation method by ID
func (h *CalculationMethodHandler) GetByID(c *gin.Context) {
	methodID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid calculation method ID format")
		return
	}

	found, err := h.utilityService.GetCalculationMethod(c.Request.Context(), methodID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, found)
}

// List retrieves all calculation methods
func (h *CalculationMethodHandler) List(c *gin.Context) {
	methods, err := h.utilityService.ListCalculationMethods(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, methods)
}

// Update replaces the name and description of a calculation method
func (h *CalculationMethodHandler) Update(c *gin.Context) {
	methodID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid calculation method ID format")
		return
	}

	var req UpdateCalculationMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	updated, err := h.utilityService.UpdateCalculationMethod(c.Request.Context(), methodID, utilityapp.UpdateCalculationMethodRequest{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, updated)
}

// Delete removes a calculation method and disables every utility that
// referenced it
func (h *CalculationMethodHandler) Delete(c *gin.Context) {
	methodID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid calculation method ID format")
		return
	}

	if err := h.utilityService.DeleteCalculationMethod(c.Request.Context(), methodID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
