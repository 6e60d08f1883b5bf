package billing

import (
	"context"

	"github.com/condo/backend/internal/domain/residence"
	"github.com/condo/backend/internal/domain/utility"
)

// SubBillProvisioningService fans out sub-bill creation when a utility or an
// apartment comes into existence: one manager sub-bill per utility, one
// apartment sub-bill per (apartment, utility) pair.
type SubBillProvisioningService struct {
	apartmentLedger *ApartmentSubBillService
	managerLedger   *ManagerSubBillService
}

// NewSubBillProvisioningService creates a new SubBillProvisioningService
func NewSubBillProvisioningService(apartmentLedger *ApartmentSubBillService, managerLedger *ManagerSubBillService) *SubBillProvisioningService {
	return &SubBillProvisioningService{
		apartmentLedger: apartmentLedger,
		managerLedger:   managerLedger,
	}
}

// ProvisionForUtility creates the manager sub-bill and the per-apartment
// sub-bills for a newly created utility.
func (s *SubBillProvisioningService) ProvisionForUtility(ctx context.Context, u *utility.CommunalUtility) error {
	if err := s.managerLedger.CreateForUtility(ctx, u); err != nil {
		return err
	}
	return s.apartmentLedger.CreateForUtility(ctx, u)
}

// ProvisionForApartment creates the per-utility sub-bills for a newly created
// apartment.
func (s *SubBillProvisioningService) ProvisionForApartment(ctx context.Context, a *residence.Apartment) error {
	return s.apartmentLedger.CreateForApartment(ctx, a)
}
