package pickups

import (
	"errors"
	"testing"

	"ecoport-backend/internal/models"
)

func TestTransitionTableIsClosed(t *testing.T) {
	statuses := []models.PickupStatus{
		models.StatusPending, models.StatusApproved, models.StatusAssigned, models.StatusCompleted,
	}
	allowed := map[[2]models.PickupStatus]bool{
		{models.StatusPending, models.StatusApproved}:   true,
		{models.StatusApproved, models.StatusAssigned}:  true,
		{models.StatusAssigned, models.StatusCompleted}: true,
	}

	for _, from := range statuses {
		for _, to := range statuses {
			err := CanTransition(from, to)
			if allowed[[2]models.PickupStatus{from, to}] {
				if err != nil {
					t.Errorf("%s -> %s should be allowed, got %v", from, to, err)
				}
				continue
			}
			if err == nil {
				t.Errorf("%s -> %s should be rejected", from, to)
			} else if !errors.Is(err, models.ErrInvalidTransition) {
				t.Errorf("%s -> %s: expected ErrInvalidTransition, got %v", from, to, err)
			}
		}
	}
}

func TestCompletedIsTerminal(t *testing.T) {
	if nexts := NextStatuses(models.StatusCompleted); len(nexts) != 0 {
		t.Fatalf("Completed must have no outgoing transitions, got %v", nexts)
	}
}

func TestUnknownStatusHasNoTransitions(t *testing.T) {
	if err := CanTransition(models.PickupStatus("Archived"), models.StatusApproved); !errors.Is(err, models.ErrInvalidTransition) {
		t.Fatalf("unknown status must reject every transition, got %v", err)
	}
}
