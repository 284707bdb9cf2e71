package pickups

import (
	"fmt"

	"ecoport-backend/internal/models"
)

// validTransitions is the authoritative lifecycle definition. The workflow
// models a physical handoff (intake, pricing approval, dispatch, completion),
// so the chain is strictly linear: no skips, no back-transitions, and
// Completed is terminal.
var validTransitions = map[models.PickupStatus][]models.PickupStatus{
	models.StatusPending:   {models.StatusApproved},
	models.StatusApproved:  {models.StatusAssigned},
	models.StatusAssigned:  {models.StatusCompleted},
	models.StatusCompleted: {},
}

// CanTransition reports whether the edge from -> to is part of the lifecycle.
func CanTransition(from, to models.PickupStatus) error {
	for _, next := range validTransitions[from] {
		if next == to {
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s is not allowed; valid transitions from %s: %s",
		models.ErrInvalidTransition, from, to, from, describeNext(from))
}

// NextStatuses returns the statuses reachable from the given one.
func NextStatuses(from models.PickupStatus) []models.PickupStatus {
	return validTransitions[from]
}

func describeNext(from models.PickupStatus) string {
	nexts := validTransitions[from]
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	out := ""
	for i, s := range nexts {
		if i > 0 {
			out += ", "
		}
		out += string(s)
	}
	return out
}
