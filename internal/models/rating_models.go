package models

import "time"

// Rating is a one-shot customer feedback record for a completed pickup.
// At most one rating exists per pickup; ratings are immutable once created.
type Rating struct {
	ID        string    `json:"id"`
	PickupID  string    `json:"pickup_id"`
	Rating    int       `json:"rating"`
	Feedback  *string   `json:"feedback,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateRatingRequest is the public request body for rating a pickup.
type CreateRatingRequest struct {
	PickupID string  `json:"pickup_id" validate:"required"`
	Rating   int     `json:"rating" validate:"required,min=1,max=5"`
	Feedback *string `json:"feedback,omitempty"`
}
