package pickups

import (
	"context"
	"fmt"
	"time"

	"ecoport-backend/internal/models"
	"ecoport-backend/internal/modules/pricing"
	"ecoport-backend/internal/observability"

	"github.com/google/uuid"
)

// ServiceInterface defines the pickup lifecycle operations.
type ServiceInterface interface {
	Create(ctx context.Context, req models.CreatePickupRequest) (*models.PickupRequest, error)
	Get(ctx context.Context, id string) (*models.PickupRequest, error)
	List(ctx context.Context, status *models.PickupStatus, limit, offset int) ([]*models.PickupRequest, error)
	Update(ctx context.Context, id string, req models.UpdatePickupRequest, actor string) (*models.PickupRequest, error)
	AssignDriver(ctx context.Context, pickupID, driverID, actor string) (*models.PickupRequest, error)
	Stats(ctx context.Context) (*models.Stats, error)
}

// Service is the pickup lifecycle engine. It owns the transition rules and
// the append-only audit trail; durability is delegated to the repository.
type Service struct {
	repo          RepositoryInterface
	pricer        *pricing.Engine
	maxImageBytes int
}

// NewService creates the lifecycle service.
func NewService(repo RepositoryInterface, pricer *pricing.Engine, maxImageBytes int) *Service {
	return &Service{repo: repo, pricer: pricer, maxImageBytes: maxImageBytes}
}

// Create prices the location, rejects out-of-area pickups, and persists a
// new Pending request with its status history seeded by the creation event.
func (s *Service) Create(ctx context.Context, req models.CreatePickupRequest) (*models.PickupRequest, error) {
	if len(req.WasteImage) > s.maxImageBytes {
		return nil, fmt.Errorf("%w: image too large, maximum size is 2MB", models.ErrValidation)
	}

	quote := s.pricer.Quote(req.Location.Latitude, req.Location.Longitude, req.Quantity, req.WasteType)
	if !quote.InServiceArea {
		return nil, fmt.Errorf("%w: your location is %.2f km from the hub", models.ErrOutOfServiceArea, quote.DistanceKM)
	}

	now := time.Now().UTC()
	p := &models.PickupRequest{
		ID:            uuid.New().String(),
		Location:      req.Location,
		WasteImage:    req.WasteImage,
		WasteType:     req.WasteType,
		Quantity:      req.Quantity,
		EstimatedCost: quote.EstimatedCost,
		DistanceKM:    quote.DistanceKM,
		Status:        models.StatusPending,
		UserContact:   req.UserContact,
		Notes:         req.Notes,
		PaymentMethod: req.PaymentMethod,
		PaymentStatus: models.PaymentPending,
		StatusHistory: []models.StatusHistoryEntry{
			{Status: models.StatusPending, At: now, By: "user"},
		},
		PriceHistory: []models.PriceHistoryEntry{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Insert(ctx, p); err != nil {
		return nil, fmt.Errorf("service.Create: %w", err)
	}
	observability.PickupsCreated.Inc()
	return p, nil
}

// Get retrieves one pickup request.
func (s *Service) Get(ctx context.Context, id string) (*models.PickupRequest, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service.Get: %w", err)
	}
	return p, nil
}

// List returns pickups newest first, optionally filtered by status.
func (s *Service) List(ctx context.Context, status *models.PickupStatus, limit, offset int) ([]*models.PickupRequest, error) {
	if limit < 1 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	pickups, err := s.repo.List(ctx, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("service.List: %w", err)
	}
	return pickups, nil
}

// Update applies an admin patch: a validated status transition with a
// history append, an actual-cost change with a price-history append, and
// direct notes/payment-status edits. Nothing is written if any part of the
// patch fails validation.
func (s *Service) Update(ctx context.Context, id string, req models.UpdatePickupRequest, actor string) (*models.PickupRequest, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service.Update: %w", err)
	}
	loadedAt := p.UpdatedAt
	now := time.Now().UTC()

	if req.Status != nil {
		if err := CanTransition(p.Status, *req.Status); err != nil {
			return nil, err
		}
		p.Status = *req.Status
		p.StatusHistory = append(p.StatusHistory, models.StatusHistoryEntry{
			Status: *req.Status, At: now, By: actor,
		})
	}

	if req.ActualCost != nil {
		p.ActualCost = req.ActualCost
		p.PriceHistory = append(p.PriceHistory, models.PriceHistoryEntry{
			ActualCost: *req.ActualCost, At: now, By: actor,
		})
	}

	if req.Notes != nil {
		p.Notes = req.Notes
	}
	if req.PaymentStatus != nil {
		p.PaymentStatus = *req.PaymentStatus
	}
	p.UpdatedAt = now

	updated, err := s.repo.Update(ctx, p, loadedAt)
	if err != nil {
		return nil, fmt.Errorf("service.Update: %w", err)
	}
	if req.Status != nil {
		observability.StatusTransitions.WithLabelValues(string(*req.Status)).Inc()
	}
	return updated, nil
}

// AssignDriver dispatches an Available driver to an Approved pickup. The
// repository performs the checks and both writes atomically so concurrent
// assigns cannot double-book a driver.
func (s *Service) AssignDriver(ctx context.Context, pickupID, driverID, actor string) (*models.PickupRequest, error) {
	entry := models.StatusHistoryEntry{
		Status: models.StatusAssigned,
		At:     time.Now().UTC(),
		By:     actor,
	}
	p, err := s.repo.AssignDriver(ctx, pickupID, driverID, entry)
	if err != nil {
		return nil, fmt.Errorf("service.AssignDriver: %w", err)
	}
	observability.DriversAssigned.Inc()
	observability.StatusTransitions.WithLabelValues(string(models.StatusAssigned)).Inc()
	return p, nil
}

// Stats returns pickup counts per lifecycle status plus a total.
func (s *Service) Stats(ctx context.Context) (*models.Stats, error) {
	stats, err := s.repo.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.Stats: %w", err)
	}
	return stats, nil
}
