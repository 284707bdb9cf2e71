package models

// PickupStatus is the lifecycle stage of a pickup request.
// Transitions are strictly linear: Pending -> Approved -> Assigned -> Completed.
type PickupStatus string

const (
	StatusPending   PickupStatus = "Pending"
	StatusApproved  PickupStatus = "Approved"
	StatusAssigned  PickupStatus = "Assigned"
	StatusCompleted PickupStatus = "Completed"
)

// Valid reports whether the value is a known lifecycle status.
func (s PickupStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusAssigned, StatusCompleted:
		return true
	}
	return false
}

// WasteType is the category of waste being picked up.
type WasteType string

const (
	WasteOrganic WasteType = "Organic"
	WastePlastic WasteType = "Plastic"
	WasteMetal   WasteType = "Metal"
	WasteEWaste  WasteType = "E-Waste"
	WasteMixed   WasteType = "Mixed"
)

func (w WasteType) Valid() bool {
	switch w {
	case WasteOrganic, WastePlastic, WasteMetal, WasteEWaste, WasteMixed:
		return true
	}
	return false
}

// Quantity is the load size class of a pickup.
type Quantity string

const (
	QuantitySmall  Quantity = "Small"
	QuantityMedium Quantity = "Medium"
	QuantityLarge  Quantity = "Large"
	QuantityBulk   Quantity = "Bulk"
)

func (q Quantity) Valid() bool {
	switch q {
	case QuantitySmall, QuantityMedium, QuantityLarge, QuantityBulk:
		return true
	}
	return false
}

// DriverStatus is a driver's availability state.
type DriverStatus string

const (
	DriverAvailable DriverStatus = "Available"
	DriverBusy      DriverStatus = "Busy"
	DriverOffline   DriverStatus = "Offline"
)

func (d DriverStatus) Valid() bool {
	switch d {
	case DriverAvailable, DriverBusy, DriverOffline:
		return true
	}
	return false
}

// PaymentStatus is recorded on the pickup request; payments are never
// processed by this service.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "Pending"
	PaymentPaid    PaymentStatus = "Paid"
	PaymentFailed  PaymentStatus = "Failed"
)

func (p PaymentStatus) Valid() bool {
	switch p {
	case PaymentPending, PaymentPaid, PaymentFailed:
		return true
	}
	return false
}

// PaymentMethod is how the customer intends to pay.
type PaymentMethod string

const (
	PaymentCOD     PaymentMethod = "COD"
	PaymentUPI     PaymentMethod = "UPI"
	PaymentInvoice PaymentMethod = "Invoice"
)

func (p PaymentMethod) Valid() bool {
	switch p {
	case PaymentCOD, PaymentUPI, PaymentInvoice:
		return true
	}
	return false
}
