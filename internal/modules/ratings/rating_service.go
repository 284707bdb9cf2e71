package ratings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ecoport-backend/internal/models"

	"github.com/google/uuid"
)

// PickupReader is the slice of the pickup module the rating subsystem
// needs: just enough to check the referenced pickup's lifecycle state.
type PickupReader interface {
	Get(ctx context.Context, id string) (*models.PickupRequest, error)
}

// ServiceInterface defines the rating operations.
type ServiceInterface interface {
	Create(ctx context.Context, req models.CreateRatingRequest) (*models.Rating, error)
	GetByPickupID(ctx context.Context, pickupID string) (*models.Rating, error)
}

// Service implements one-shot post-completion feedback.
type Service struct {
	repo    RepositoryInterface
	pickups PickupReader
}

// NewService creates the rating service.
func NewService(repo RepositoryInterface, pickups PickupReader) *Service {
	return &Service{repo: repo, pickups: pickups}
}

// Create records a rating for a Completed pickup. A pickup can be rated
// exactly once; a second attempt is a Conflict.
func (s *Service) Create(ctx context.Context, req models.CreateRatingRequest) (*models.Rating, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", models.ErrValidation)
	}

	pickup, err := s.pickups.Get(ctx, req.PickupID)
	if err != nil {
		return nil, fmt.Errorf("service.Create: %w", err)
	}
	if pickup.Status != models.StatusCompleted {
		return nil, fmt.Errorf("%w: can only rate completed pickups (current: %s)",
			models.ErrInvalidState, pickup.Status)
	}

	if _, err := s.repo.FindByPickupID(ctx, req.PickupID); err == nil {
		return nil, fmt.Errorf("%w: this pickup has already been rated", models.ErrConflict)
	} else if !errors.Is(err, models.ErrNotFound) {
		return nil, fmt.Errorf("service.Create: %w", err)
	}

	rating := &models.Rating{
		ID:        uuid.New().String(),
		PickupID:  req.PickupID,
		Rating:    req.Rating,
		Feedback:  req.Feedback,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, rating); err != nil {
		if errors.Is(err, models.ErrConflict) {
			return nil, fmt.Errorf("%w: this pickup has already been rated", models.ErrConflict)
		}
		return nil, fmt.Errorf("service.Create: %w", err)
	}
	return rating, nil
}

// GetByPickupID returns the rating for a pickup.
func (s *Service) GetByPickupID(ctx context.Context, pickupID string) (*models.Rating, error) {
	rating, err := s.repo.FindByPickupID(ctx, pickupID)
	if err != nil {
		return nil, fmt.Errorf("service.GetByPickupID: %w", err)
	}
	return rating, nil
}
