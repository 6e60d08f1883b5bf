package residence

import (
	"context"
	"time"

	"github.com/condo/backend/internal/domain/residence"
	"github.com/google/uuid"
)

// SubBillProvisioner fans out sub-bill creation for a newly registered
// apartment: one sub-bill per existing communal utility.
type SubBillProvisioner interface {
	ProvisionForApartment(ctx context.Context, a *residence.Apartment) error
}

// ApartmentService handles apartment registration and lookup
type ApartmentService struct {
	apartmentRepo residence.ApartmentRepository
	managerRepo   residence.ManagerRepository
	provisioner   SubBillProvisioner
}

// NewApartmentService creates a new ApartmentService
func NewApartmentService(
	apartmentRepo residence.ApartmentRepository,
	managerRepo residence.ManagerRepository,
	provisioner SubBillProvisioner,
) *ApartmentService {
	return &ApartmentService{
		apartmentRepo: apartmentRepo,
		managerRepo:   managerRepo,
		provisioner:   provisioner,
	}
}

// CreateApartmentRequest carries the state of an apartment to register
type CreateApartmentRequest struct {
	Number    int
	OwnerName string
	Email     string
}

// ApartmentResponse is the read model of an apartment
type ApartmentResponse struct {
	ID        uuid.UUID `json:"id"`
	Number    int       `json:"number"`
	OwnerName string    `json:"owner_name"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ManagerResponse is the read model of the managing entity
type ManagerResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Create registers an apartment and provisions one sub-bill per existing
// communal utility for it.
func (s *ApartmentService) Create(ctx context.Context, req CreateApartmentRequest) (*ApartmentResponse, error) {
	apartment, err := residence.NewApartment(req.Number, req.OwnerName, req.Email)
	if err != nil {
		return nil, err
	}
	if err := s.apartmentRepo.Create(ctx, apartment); err != nil {
		return nil, err
	}
	if err := s.provisioner.ProvisionForApartment(ctx, apartment); err != nil {
		return nil, err
	}

	response := toApartmentResponse(apartment)
	return &response, nil
}

// GetByID retrieves an apartment by ID
func (s *ApartmentService) GetByID(ctx context.Context, id uuid.UUID) (*ApartmentResponse, error) {
	apartment, err := s.apartmentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := toApartmentResponse(apartment)
	return &response, nil
}

// List retrieves all apartments
func (s *ApartmentService) List(ctx context.Context) ([]ApartmentResponse, error) {
	apartments, err := s.apartmentRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]ApartmentResponse, 0, len(apartments))
	for _, apartment := range apartments {
		responses = append(responses, toApartmentResponse(apartment))
	}
	return responses, nil
}

// GetManager retrieves the managing entity of the complex
func (s *ApartmentService) GetManager(ctx context.Context) (*ManagerResponse, error) {
	manager, err := s.managerRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	return &ManagerResponse{
		ID:        manager.ID,
		Name:      manager.Name,
		Email:     manager.Email,
		CreatedAt: manager.CreatedAt,
		UpdatedAt: manager.UpdatedAt,
	}, nil
}

func toApartmentResponse(a *residence.Apartment) ApartmentResponse {
	return ApartmentResponse{
		ID:        a.ID,
		Number:    a.Number,
		OwnerName: a.OwnerName,
		Email:     a.Email,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
