package utility

import (
	"context"
	"errors"

	"github.com/condo/backend/internal/domain/shared"
	"github.com/condo/backend/internal/domain/utility"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SubBillProvisioner fans out sub-bill creation for a newly created utility:
// one manager sub-bill plus one apartment sub-bill per existing apartment.
type SubBillProvisioner interface {
	ProvisionForUtility(ctx context.Context, u *utility.CommunalUtility) error
}

// CommunalUtilityService handles the communal utility lifecycle and the
// calculation method reference data it depends on.
type CommunalUtilityService struct {
	scope       TransactionScope
	utilityRepo utility.CommunalUtilityRepository
	methodRepo  utility.CalculationMethodRepository
	provisioner SubBillProvisioner
	notifier    utility.NotificationService
	logger      *zap.Logger
}

// NewCommunalUtilityService creates a new CommunalUtilityService
func NewCommunalUtilityService(
	scope TransactionScope,
	utilityRepo utility.CommunalUtilityRepository,
	methodRepo utility.CalculationMethodRepository,
	provisioner SubBillProvisioner,
	notifier utility.NotificationService,
	logger *zap.Logger,
) *CommunalUtilityService {
	return &CommunalUtilityService{
		scope:       scope,
		utilityRepo: utilityRepo,
		methodRepo:  methodRepo,
		provisioner: provisioner,
		notifier:    notifier,
		logger:      logger,
	}
}

// Create creates a communal utility. The name is a business key: a duplicate
// is rejected before anything is written. A referenced calculation method must
// exist, and a utility without one cannot be created Enabled.
//
// After the utility row is committed, sub-bills are provisioned for it and,
// for Temporary utilities, all apartments are notified. A notification
// delivery failure is surfaced to the caller but does not roll the utility
// back.
func (s *CommunalUtilityService) Create(ctx context.Context, req CreateCommunalUtilityRequest) (*CommunalUtilityResponse, error) {
	var created *utility.CommunalUtility
	var method *utility.CalculationMethod

	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		exists, err := repos.Utilities().ExistsByName(ctx, req.Name)
		if err != nil {
			return err
		}
		if exists {
			return shared.NewDomainError("ALREADY_EXISTS", "Communal utility with this name already exists")
		}

		if req.CalculationMethodID != nil {
			method, err = repos.Methods().FindByID(ctx, *req.CalculationMethodID)
			if err != nil {
				if errors.Is(err, shared.ErrNotFound) {
					return shared.NewDomainError("REFERENCE_NOT_FOUND", "Referenced calculation method does not exist")
				}
				return err
			}
		}

		u, err := utility.NewCommunalUtility(req.Name, req.Duration, req.Status, req.Deadline, req.CalculationMethodID)
		if err != nil {
			return err
		}
		if err := repos.Utilities().Create(ctx, u); err != nil {
			return err
		}

		created = u
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.provisioner.ProvisionForUtility(ctx, created); err != nil {
		return nil, err
	}

	created.CalculationMethod = method
	response := ToCommunalUtilityResponse(created)

	if created.IsTemporary() {
		if err := s.notifier.NotifyAllApartments(ctx, created); err != nil {
			s.logger.Error("temporary utility notification failed",
				zap.String("utility_id", created.ID.String()),
				zap.Error(err))
			return nil, shared.NewDomainError("DELIVERY_FAILED", "Utility created but apartment notification failed")
		}
	}

	return &response, nil
}

// Update replaces the mutable state of a communal utility. An update whose
// state is identical to the stored one is rejected as a conflict. A nil
// calculation method reference in the request keeps the stored reference;
// enabling still requires that the effective reference exists.
func (s *CommunalUtilityService) Update(ctx context.Context, id uuid.UUID, req UpdateCommunalUtilityRequest) (*CommunalUtilityResponse, error) {
	var updated *utility.CommunalUtility
	var method *utility.CalculationMethod

	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		stored, err := repos.Utilities().FindByID(ctx, id)
		if err != nil {
			return err
		}

		methodID := req.CalculationMethodID
		if methodID == nil {
			methodID = stored.CalculationMethodID
		}
		if methodID != nil {
			method, err = repos.Methods().FindByID(ctx, *methodID)
			if err != nil {
				if errors.Is(err, shared.ErrNotFound) {
					return shared.NewDomainError("REFERENCE_NOT_FOUND", "Referenced calculation method does not exist")
				}
				return err
			}
		}

		incoming, err := utility.NewCommunalUtility(req.Name, req.Duration, req.Status, req.Deadline, methodID)
		if err != nil {
			return err
		}
		if stored.StateEquals(incoming) {
			return shared.NewDomainError("ALREADY_EXISTS", "Update is identical to the stored communal utility")
		}

		stored.ApplyUpdate(incoming)
		if err := repos.Utilities().Update(ctx, stored); err != nil {
			return err
		}

		updated = stored
		return nil
	})
	if err != nil {
		return nil, err
	}

	updated.CalculationMethod = method
	response := ToCommunalUtilityResponse(updated)
	return &response, nil
}

// GetByID retrieves a communal utility with its calculation method joined in.
// A utility without a linked method falls back to the bare row.
func (s *CommunalUtilityService) GetByID(ctx context.Context, id uuid.UUID) (*CommunalUtilityResponse, error) {
	u, err := s.utilityRepo.FindByIDWithMethod(ctx, id)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		u, err = s.utilityRepo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
	}

	response := ToCommunalUtilityResponse(u)
	return &response, nil
}

// List retrieves communal utilities, optionally filtered by status. Each
// utility is enriched with its calculation method on a best-effort basis; a
// dangling reference leaves the entry bare rather than failing the listing.
func (s *CommunalUtilityService) List(ctx context.Context, status *utility.Status) ([]CommunalUtilityResponse, error) {
	utilities, err := s.utilityRepo.FindAll(ctx, status)
	if err != nil {
		return nil, err
	}

	responses := make([]CommunalUtilityResponse, 0, len(utilities))
	for _, u := range utilities {
		if u.CalculationMethodID != nil {
			if method, err := s.methodRepo.FindByID(ctx, *u.CalculationMethodID); err == nil {
				u.CalculationMethod = method
			}
		}
		responses = append(responses, ToCommunalUtilityResponse(u))
	}
	return responses, nil
}

// CreateCalculationMethod creates a calculation method
func (s *CommunalUtilityService) CreateCalculationMethod(ctx context.Context, req CreateCalculationMethodRequest) (*CalculationMethodResponse, error) {
	method, err := utility.NewCalculationMethod(req.Name, req.Description)
	if err != nil {
		return nil, err
	}
	if err := s.methodRepo.Create(ctx, method); err != nil {
		return nil, err
	}

	response := ToCalculationMethodResponse(method)
	return &response, nil
}

// UpdateCalculationMethod replaces the name and description of a calculation method
func (s *CommunalUtilityService) UpdateCalculationMethod(ctx context.Context, id uuid.UUID, req UpdateCalculationMethodRequest) (*CalculationMethodResponse, error) {
	method, err := s.methodRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := method.Rename(req.Name); err != nil {
		return nil, err
	}
	method.Description = req.Description
	if err := s.methodRepo.Update(ctx, method); err != nil {
		return nil, err
	}

	response := ToCalculationMethodResponse(method)
	return &response, nil
}

// GetCalculationMethod retrieves a calculation method by ID
func (s *CommunalUtilityService) GetCalculationMethod(ctx context.Context, id uuid.UUID) (*CalculationMethodResponse, error) {
	method, err := s.methodRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToCalculationMethodResponse(method)
	return &response, nil
}

// ListCalculationMethods retrieves all calculation methods
func (s *CommunalUtilityService) ListCalculationMethods(ctx context.Context) ([]CalculationMethodResponse, error) {
	methods, err := s.methodRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]CalculationMethodResponse, 0, len(methods))
	for _, method := range methods {
		responses = append(responses, ToCalculationMethodResponse(method))
	}
	return responses, nil
}

// DeleteCalculationMethod removes a calculation method. Every utility still
// referencing it is disabled and unlinked in the same transaction; the cascade
// and the deletion commit or roll back together.
func (s *CommunalUtilityService) DeleteCalculationMethod(ctx context.Context, id uuid.UUID) error {
	return s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		if _, err := repos.Methods().FindByID(ctx, id); err != nil {
			return err
		}

		referencing, err := repos.Utilities().FindByCalculationMethodID(ctx, id)
		if err != nil {
			return err
		}
		for _, u := range referencing {
			u.Disable()
			if err := repos.Utilities().Update(ctx, u); err != nil {
				return err
			}
		}

		return repos.Methods().Delete(ctx, id)
	})
}
