package utility

import (
	"time"

	"github.com/condo/backend/internal/domain/utility"
	"github.com/google/uuid"
)

// CreateCommunalUtilityRequest carries the state of a utility to create
type CreateCommunalUtilityRequest struct {
	Name                string
	Duration            utility.Duration
	Status              utility.Status
	Deadline            *time.Time
	CalculationMethodID *uuid.UUID
}

// UpdateCommunalUtilityRequest carries the full replacement state of a
// utility. A nil CalculationMethodID means "keep the stored reference", not
// "clear it".
type UpdateCommunalUtilityRequest struct {
	Name                string
	Duration            utility.Duration
	Status              utility.Status
	Deadline            *time.Time
	CalculationMethodID *uuid.UUID
}

// CreateCalculationMethodRequest carries the state of a method to create
type CreateCalculationMethodRequest struct {
	Name        string
	Description string
}

// UpdateCalculationMethodRequest carries the replacement state of a method
type UpdateCalculationMethodRequest struct {
	Name        string
	Description string
}

// CommunalUtilityResponse is the read model of a communal utility
type CommunalUtilityResponse struct {
	ID                uuid.UUID                  `json:"id"`
	Name              string                     `json:"name"`
	Duration          string                     `json:"duration"`
	Status            string                     `json:"status"`
	Deadline          *time.Time                 `json:"deadline,omitempty"`
	CalculationMethod *CalculationMethodResponse `json:"calculation_method,omitempty"`
	CreatedAt         time.Time                  `json:"created_at"`
	UpdatedAt         time.Time                  `json:"updated_at"`
}

// CalculationMethodResponse is the read model of a calculation method
type CalculationMethodResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToCommunalUtilityResponse converts a domain utility to its read model
func ToCommunalUtilityResponse(u *utility.CommunalUtility) CommunalUtilityResponse {
	response := CommunalUtilityResponse{
		ID:        u.ID,
		Name:      u.Name,
		Duration:  u.Duration.String(),
		Status:    u.Status.String(),
		Deadline:  u.Deadline,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
	if u.CalculationMethod != nil {
		method := ToCalculationMethodResponse(u.CalculationMethod)
		response.CalculationMethod = &method
	}
	return response
}

// ToCalculationMethodResponse converts a domain method to its read model
func ToCalculationMethodResponse(m *utility.CalculationMethod) CalculationMethodResponse {
	return CalculationMethodResponse{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
