package utility

import (
	"strings"
	"time"

	"github.com/condo/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Status represents the lifecycle status of a communal utility
type Status string

const (
	StatusEnabled  Status = "ENABLED"
	StatusDisabled Status = "DISABLED"
)

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// IsValid returns true if the status is valid
func (s Status) IsValid() bool {
	switch s {
	case StatusEnabled, StatusDisabled:
		return true
	}
	return false
}

// Duration represents the duration kind of a communal utility
type Duration string

const (
	DurationPermanent Duration = "PERMANENT"
	DurationTemporary Duration = "TEMPORARY"
)

// String returns the string representation of Duration
func (d Duration) String() string {
	return string(d)
}

// IsValid returns true if the duration kind is valid
func (d Duration) IsValid() bool {
	switch d {
	case DurationPermanent, DurationTemporary:
		return true
	}
	return false
}

// CommunalUtility is a billable communal service (electricity, water, ...)
// provided to the whole residential complex. Each utility owns one manager
// sub-bill and one apartment sub-bill per apartment.
//
// Invariant: Status may be Enabled only while CalculationMethodID is set.
// Utilities are never physically removed; they are Disabled instead.
type CommunalUtility struct {
	shared.BaseAggregateRoot
	Name                string     `gorm:"type:varchar(100);not null;uniqueIndex"`
	Duration            Duration   `gorm:"type:varchar(20);not null"`
	Status              Status     `gorm:"type:varchar(20);not null;default:'DISABLED'"`
	Deadline            *time.Time // meaningful for Temporary utilities
	CalculationMethodID *uuid.UUID `gorm:"type:uuid;index"`

	// CalculationMethod is populated by enriched lookups only; it is not
	// part of the persisted utility row.
	CalculationMethod *CalculationMethod `gorm:"-"`
}

// TableName returns the table name for GORM
func (CommunalUtility) TableName() string {
	return "communal_utilities"
}

// NewCommunalUtility creates a new communal utility.
// A utility without a calculation method cannot be created Enabled.
func NewCommunalUtility(name string, duration Duration, status Status, deadline *time.Time, methodID *uuid.UUID) (*CommunalUtility, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Communal utility name cannot be empty")
	}
	if !duration.IsValid() {
		return nil, shared.NewDomainError("INVALID_DURATION", "Invalid utility duration kind")
	}
	if !status.IsValid() {
		return nil, shared.NewDomainError("INVALID_STATUS", "Invalid utility status")
	}
	if status == StatusEnabled && methodID == nil {
		return nil, shared.NewDomainError("INVALID_STATE", "Communal utility cannot be Enabled without a calculation method")
	}

	return &CommunalUtility{
		BaseAggregateRoot:   shared.NewBaseAggregateRoot(),
		Name:                name,
		Duration:            duration,
		Status:              status,
		Deadline:            deadline,
		CalculationMethodID: methodID,
	}, nil
}

// IsTemporary returns true for utilities with a limited duration
func (u *CommunalUtility) IsTemporary() bool {
	return u.Duration == DurationTemporary
}

// IsEnabled returns true while the utility is billable
func (u *CommunalUtility) IsEnabled() bool {
	return u.Status == StatusEnabled
}

// HasCalculationMethod returns true while a calculation method is linked
func (u *CommunalUtility) HasCalculationMethod() bool {
	return u.CalculationMethodID != nil
}

// ChangeStatus transitions the utility status. Enabling requires a linked
// calculation method.
func (u *CommunalUtility) ChangeStatus(status Status) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Invalid utility status")
	}
	if status == StatusEnabled && u.CalculationMethodID == nil {
		return shared.NewDomainError("INVALID_STATE", "Status cannot be Enabled without a calculation method")
	}
	u.Status = status
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
	return nil
}

// Disable forcibly disables the utility. Used by the calculation method
// deletion cascade; always succeeds.
func (u *CommunalUtility) Disable() {
	u.Status = StatusDisabled
	u.CalculationMethodID = nil
	u.CalculationMethod = nil
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
}

// LinkCalculationMethod attaches a calculation method reference
func (u *CommunalUtility) LinkCalculationMethod(methodID uuid.UUID) {
	u.CalculationMethodID = &methodID
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
}

// StateEquals reports whether the externally mutable state of two utilities is
// identical. A no-op update is rejected as a conflict, not silently ignored.
func (u *CommunalUtility) StateEquals(other *CommunalUtility) bool {
	if other == nil {
		return false
	}
	if u.Name != other.Name || u.Duration != other.Duration || u.Status != other.Status {
		return false
	}
	if (u.Deadline == nil) != (other.Deadline == nil) {
		return false
	}
	if u.Deadline != nil && !u.Deadline.Equal(*other.Deadline) {
		return false
	}
	if (u.CalculationMethodID == nil) != (other.CalculationMethodID == nil) {
		return false
	}
	if u.CalculationMethodID != nil && *u.CalculationMethodID != *other.CalculationMethodID {
		return false
	}
	return true
}

// ApplyUpdate copies the mutable state of the incoming value onto the stored
// aggregate and bumps its version.
func (u *CommunalUtility) ApplyUpdate(incoming *CommunalUtility) {
	u.Name = incoming.Name
	u.Duration = incoming.Duration
	u.Status = incoming.Status
	u.Deadline = incoming.Deadline
	u.CalculationMethodID = incoming.CalculationMethodID
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
}
