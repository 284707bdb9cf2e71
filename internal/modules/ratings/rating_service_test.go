package ratings

import (
	"context"
	"errors"
	"testing"

	"ecoport-backend/internal/models"
)

type fakeRepo struct {
	byPickup map[string]*models.Rating
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byPickup: make(map[string]*models.Rating)}
}

func (f *fakeRepo) Insert(ctx context.Context, r *models.Rating) error {
	if _, exists := f.byPickup[r.PickupID]; exists {
		return models.ErrConflict
	}
	cp := *r
	f.byPickup[r.PickupID] = &cp
	return nil
}

func (f *fakeRepo) FindByPickupID(ctx context.Context, pickupID string) (*models.Rating, error) {
	r, ok := f.byPickup[pickupID]
	if !ok {
		return nil, models.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

type fakePickups struct {
	byID map[string]*models.PickupRequest
}

func (f *fakePickups) Get(ctx context.Context, id string) (*models.PickupRequest, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return p, nil
}

func newTestService(statuses map[string]models.PickupStatus) (*Service, *fakeRepo) {
	pickups := &fakePickups{byID: make(map[string]*models.PickupRequest)}
	for id, status := range statuses {
		pickups.byID[id] = &models.PickupRequest{ID: id, Status: status}
	}
	repo := newFakeRepo()
	return NewService(repo, pickups), repo
}

func TestCreateRating(t *testing.T) {
	svc, _ := newTestService(map[string]models.PickupStatus{"p1": models.StatusCompleted})

	feedback := "on time, friendly driver"
	r, err := svc.Create(context.Background(), models.CreateRatingRequest{
		PickupID: "p1", Rating: 5, Feedback: &feedback,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if r.Rating != 5 || r.PickupID != "p1" {
		t.Fatalf("bad rating record: %+v", r)
	}
}

func TestCreateRejectsSecondRating(t *testing.T) {
	svc, _ := newTestService(map[string]models.PickupStatus{"p1": models.StatusCompleted})

	if _, err := svc.Create(context.Background(), models.CreateRatingRequest{PickupID: "p1", Rating: 4}); err != nil {
		t.Fatalf("first rating: %v", err)
	}
	_, err := svc.Create(context.Background(), models.CreateRatingRequest{PickupID: "p1", Rating: 2})
	if !errors.Is(err, models.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestCreateRequiresCompletedPickup(t *testing.T) {
	for _, status := range []models.PickupStatus{models.StatusPending, models.StatusApproved, models.StatusAssigned} {
		svc, _ := newTestService(map[string]models.PickupStatus{"p1": status})
		_, err := svc.Create(context.Background(), models.CreateRatingRequest{PickupID: "p1", Rating: 3})
		if !errors.Is(err, models.ErrInvalidState) {
			t.Fatalf("status %s: expected ErrInvalidState, got %v", status, err)
		}
	}
}

func TestCreateUnknownPickup(t *testing.T) {
	svc, _ := newTestService(nil)
	_, err := svc.Create(context.Background(), models.CreateRatingRequest{PickupID: "ghost", Rating: 3})
	if !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateScoreBounds(t *testing.T) {
	svc, _ := newTestService(map[string]models.PickupStatus{"p1": models.StatusCompleted})
	for _, score := range []int{0, 6, -1} {
		_, err := svc.Create(context.Background(), models.CreateRatingRequest{PickupID: "p1", Rating: score})
		if !errors.Is(err, models.ErrValidation) {
			t.Fatalf("score %d: expected ErrValidation, got %v", score, err)
		}
	}
}

func TestGetByPickupID(t *testing.T) {
	svc, repo := newTestService(map[string]models.PickupStatus{"p1": models.StatusCompleted})
	repo.byPickup["p1"] = &models.Rating{ID: "r1", PickupID: "p1", Rating: 4}

	r, err := svc.GetByPickupID(context.Background(), "p1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if r.ID != "r1" {
		t.Fatalf("expected r1, got %s", r.ID)
	}

	if _, err := svc.GetByPickupID(context.Background(), "p2"); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
