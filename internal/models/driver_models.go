package models

import "time"

// Driver is a dispatchable pickup vehicle operator. Drivers are created by
// an admin and never deleted; only their availability status changes.
type Driver struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Phone           string       `json:"phone"`
	VehicleType     string       `json:"vehicle_type"`
	VehicleNumber   string       `json:"vehicle_number"`
	Status          DriverStatus `json:"status"`
	CurrentLocation *Location    `json:"current_location,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
}

// CreateDriverRequest is the admin request body for registering a driver.
type CreateDriverRequest struct {
	Name          string `json:"name" validate:"required,min=2,max=100"`
	Phone         string `json:"phone" validate:"required,min=7,max=20"`
	VehicleType   string `json:"vehicle_type" validate:"required"`
	VehicleNumber string `json:"vehicle_number" validate:"required"`
}

// UpdateDriverStatusRequest sets a driver's availability. The overwrite is
// unconditional; the registry does not check the assignment linkage.
type UpdateDriverStatusRequest struct {
	Status DriverStatus `json:"status" validate:"required,oneof=Available Busy Offline"`
}
