package drivers

import (
	"context"
	"fmt"
	"log"
	"time"

	"ecoport-backend/internal/models"

	"github.com/google/uuid"
)

// ServiceInterface defines the driver registry operations.
type ServiceInterface interface {
	Create(ctx context.Context, req models.CreateDriverRequest) (*models.Driver, error)
	Get(ctx context.Context, id string) (*models.Driver, error)
	List(ctx context.Context, status *models.DriverStatus) ([]*models.Driver, error)
	SetStatus(ctx context.Context, id string, status models.DriverStatus, actor string) (*models.Driver, error)
}

// Service implements the driver registry. Status writes here are manual
// operator toggles; the lifecycle engine flips drivers to Busy itself
// during assignment.
type Service struct {
	repo RepositoryInterface
}

// NewService creates the driver registry service.
func NewService(repo RepositoryInterface) *Service {
	return &Service{repo: repo}
}

// Create registers a driver, starting in the Available state.
func (s *Service) Create(ctx context.Context, req models.CreateDriverRequest) (*models.Driver, error) {
	d := &models.Driver{
		ID:            uuid.New().String(),
		Name:          req.Name,
		Phone:         req.Phone,
		VehicleType:   req.VehicleType,
		VehicleNumber: req.VehicleNumber,
		Status:        models.DriverAvailable,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, d); err != nil {
		return nil, fmt.Errorf("service.Create: %w", err)
	}
	return d, nil
}

// Get retrieves one driver.
func (s *Service) Get(ctx context.Context, id string) (*models.Driver, error) {
	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service.Get: %w", err)
	}
	return d, nil
}

// List returns drivers, optionally filtered by availability.
func (s *Service) List(ctx context.Context, status *models.DriverStatus) ([]*models.Driver, error) {
	out, err := s.repo.List(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("service.List: %w", err)
	}
	return out, nil
}

// SetStatus is an unconditional overwrite used for manual online/offline
// toggling outside the assignment flow. It does not check whether the
// driver is still referenced by an active pickup.
func (s *Service) SetStatus(ctx context.Context, id string, status models.DriverStatus, actor string) (*models.Driver, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown driver status %q", models.ErrValidation, status)
	}
	d, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("service.SetStatus: %w", err)
	}
	log.Printf("Driver %s status set to %s by %s", id, status, actor)
	return d, nil
}
