package handler

import (
	"time"

	utilityapp "github.com/condo/backend/internal/application/utility"
	"github.com/condo/backend/internal/domain/utility"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CommunalUtilityHandler handles communal utility API endpoints
type CommunalUtilityHandler struct {
	BaseHandler
	utilityService *utilityapp.CommunalUtilityService
}

// NewCommunalUtilityHandler creates a new CommunalUtilityHandler
func NewCommunalUtilityHandler(utilityService *utilityapp.CommunalUtilityService) *CommunalUtilityHandler {
	return &CommunalUtilityHandler{
		utilityService: utilityService,
	}
}

// CreateCommunalUtilityRequest represents a request to create a communal utility
type CreateCommunalUtilityRequest struct {
	Name                string     `json:"name" binding:"required,min=1,max=100"`
	Duration            string     `json:"duration" binding:"required,oneof=PERMANENT TEMPORARY"`
	Status              string     `json:"status" binding:"required,oneof=ENABLED DISABLED"`
	Deadline            *time.Time `json:"deadline"`
	CalculationMethodID *string    `json:"calculation_method_id" binding:"omitempty,uuid"`
}

// UpdateCommunalUtilityRequest represents a full-state utility update.
// Omitting calculation_method_id keeps the stored reference.
type UpdateCommunalUtilityRequest struct {
	Name                string     `json:"name" binding:"required,min=1,max=100"`
	Duration            string     `json:"duration" binding:"required,oneof=PERMANENT TEMPORARY"`
	Status              string     `json:"status" binding:"required,oneof=ENABLED DISABLED"`
	Deadline            *time.Time `json:"deadline"`
	CalculationMethodID *string    `json:"calculation_method_id" binding:"omitempty,uuid"`
}

func parseOptionalUUID(raw *string) (*uuid.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// Create creates a new communal utility
func (h *CommunalUtilityHandler) Create(c *gin.Context) {
	var req CreateCommunalUtilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	methodID, err := parseOptionalUUID(req.CalculationMethodID)
	if err != nil {
		h.BadRequest(c, "Invalid calculation method ID format")
		return
	}

	appReq := utilityapp.CreateCommunalUtilityRequest{
		Name:                req.Name,
		Duration:            utility.Duration(req.Duration),
		Status:              utility.Status(req.Status),
		Deadline:            req.Deadline,
		CalculationMethodID: methodID,
	}

	created, err := h.utilityService.Create(c.Request.Context(), appReq)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, created)
}

// GetByID retrieves a communal utility with its calculation method
func (h *CommunalUtilityHandler) GetByID(c *gin.Context) {
	utilityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid utility ID format")
		return
	}

	found, err := h.utilityService.GetByID(c.Request.Context(), utilityID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, found)
}

// List retrieves all communal utilities with an optional status filter
func (h *CommunalUtilityHandler) List(c *gin.Context) {
	var status *utility.Status
	if raw := c.Query("status"); raw != "" {
		parsed := utility.Status(raw)
		if !parsed.IsValid() {
			h.BadRequest(c, "Invalid status filter")
			return
		}
		status = &parsed
	}

	utilities, err := h.utilityService.List(c.Request.Context(), status)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, utilities)
}

// Update replaces the state of a communal utility
func (h *CommunalUtilityHandler) Update(c *gin.Context) {
	utilityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid utility ID format")
		return
	}

	var req UpdateCommunalUtilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	methodID, err := parseOptionalUUID(req.CalculationMethodID)
	if err != nil {
		h.BadRequest(c, "Invalid calculation method ID format")
		return
	}

	appReq := utilityapp.UpdateCommunalUtilityRequest{
		Name:                req.Name,
		Duration:            utility.Duration(req.Duration),
		Status:              utility.Status(req.Status),
		Deadline:            req.Deadline,
		CalculationMethodID: methodID,
	}

	updated, err := h.utilityService.Update(c.Request.Context(), utilityID, appReq)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, updated)
}
