package models

import "time"

// Location is a geographic point with an optional free-text address.
// The coordinate validators are range checks only; 0 is a legal latitude
// and longitude, so neither field may carry a required tag.
type Location struct {
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
	Address   string  `json:"address"`
}

// StatusHistoryEntry records one lifecycle status the pickup has held.
// Entries are append-only; the last entry always mirrors the current status.
type StatusHistoryEntry struct {
	Status PickupStatus `json:"status"`
	At     time.Time    `json:"at"`
	By     string       `json:"by"`
}

// PriceHistoryEntry records one admin-entered actual cost. Entries accumulate;
// a new price never overwrites an old entry.
type PriceHistoryEntry struct {
	ActualCost float64   `json:"actual_cost"`
	At         time.Time `json:"at"`
	By         string    `json:"by"`
}

// PickupRequest is the central entity: one on-demand waste pickup, from
// creation through completion. Distance and estimated cost are fixed at
// creation and never recomputed.
type PickupRequest struct {
	ID            string               `json:"id"`
	Location      Location             `json:"location"`
	WasteImage    string               `json:"waste_image"` // base64 payload
	WasteType     WasteType            `json:"waste_type"`
	Quantity      Quantity             `json:"quantity"`
	EstimatedCost float64              `json:"estimated_cost"`
	ActualCost    *float64             `json:"actual_cost,omitempty"`
	DistanceKM    float64              `json:"distance_km"`
	Status        PickupStatus         `json:"status"`
	UserContact   *string              `json:"user_contact,omitempty"`
	Notes         *string              `json:"notes,omitempty"`
	DriverID      *string              `json:"driver_id,omitempty"`
	PaymentMethod *PaymentMethod       `json:"payment_method,omitempty"`
	PaymentStatus PaymentStatus        `json:"payment_status"`
	StatusHistory []StatusHistoryEntry `json:"status_history"`
	PriceHistory  []PriceHistoryEntry  `json:"price_history"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

// CreatePickupRequest is the request body for creating a pickup.
type CreatePickupRequest struct {
	Location      Location       `json:"location"`
	WasteImage    string         `json:"waste_image" validate:"required"`
	WasteType     WasteType      `json:"waste_type" validate:"required,oneof=Organic Plastic Metal E-Waste Mixed"`
	Quantity      Quantity       `json:"quantity" validate:"required,oneof=Small Medium Large Bulk"`
	UserContact   *string        `json:"user_contact,omitempty"`
	Notes         *string        `json:"notes,omitempty"`
	PaymentMethod *PaymentMethod `json:"payment_method,omitempty" validate:"omitempty,oneof=COD UPI Invoice"`
}

// UpdatePickupRequest is the admin update body. All fields are optional;
// absent fields are left untouched.
type UpdatePickupRequest struct {
	Status        *PickupStatus  `json:"status,omitempty" validate:"omitempty,oneof=Pending Approved Assigned Completed"`
	ActualCost    *float64       `json:"actual_cost,omitempty" validate:"omitempty,gte=0"`
	Notes         *string        `json:"notes,omitempty"`
	PaymentStatus *PaymentStatus `json:"payment_status,omitempty" validate:"omitempty,oneof=Pending Paid Failed"`
}

// CostPreviewRequest asks for a price quote without persisting anything.
type CostPreviewRequest struct {
	Latitude  float64   `json:"latitude" validate:"latitude"`
	Longitude float64   `json:"longitude" validate:"longitude"`
	Quantity  Quantity  `json:"quantity" validate:"required,oneof=Small Medium Large Bulk"`
	WasteType WasteType `json:"waste_type" validate:"required,oneof=Organic Plastic Metal E-Waste Mixed"`
}

// CostPreviewResponse is the quote returned for a cost preview. DistanceKM
// and EstimatedCost are omitted when the location is out of the service area.
type CostPreviewResponse struct {
	InServiceArea bool     `json:"in_service_area"`
	DistanceKM    *float64 `json:"distance_km,omitempty"`
	EstimatedCost *float64 `json:"estimated_cost,omitempty"`
	Message       string   `json:"message,omitempty"`
}

// Stats is the dashboard count of pickups per lifecycle status.
type Stats struct {
	Pending   int `json:"pending"`
	Approved  int `json:"approved"`
	Assigned  int `json:"assigned"`
	Completed int `json:"completed"`
	Total     int `json:"total"`
}
