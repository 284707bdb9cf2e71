// Package pricing implements the geofenced pricing engine: great-circle
// distance from the service hub, the in-area decision, and the cost formula.
// The engine is pure; all constants come from the injected config.
package pricing

import (
	"math"

	"ecoport-backend/internal/config"
	"ecoport-backend/internal/models"
)

// Volume factors per load size class.
var volumeFactors = map[models.Quantity]float64{
	models.QuantitySmall:  1.0,
	models.QuantityMedium: 1.5,
	models.QuantityLarge:  2.0,
	models.QuantityBulk:   3.0,
}

// Surcharge multipliers per waste category.
var wasteSurcharges = map[models.WasteType]float64{
	models.WasteOrganic: 1.0,
	models.WastePlastic: 1.0,
	models.WasteMetal:   1.0,
	models.WasteMixed:   1.1,
	models.WasteEWaste:  1.2,
}

// Quote is the result of one pricing evaluation. DistanceKM is rounded to
// 2 decimals; EstimatedCost is only meaningful when InServiceArea is true.
type Quote struct {
	DistanceKM    float64
	InServiceArea bool
	EstimatedCost float64
}

// Engine evaluates locations against the hub and prices pickups.
type Engine struct {
	cfg config.Pricing
}

// NewEngine creates a pricing engine from the injected constants.
func NewEngine(cfg config.Pricing) *Engine {
	return &Engine{cfg: cfg}
}

// Haversine returns the great-circle distance in km between two points,
// using the mean earth radius of 6371 km.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadiusKM = 6371.0
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKM * c
}

// Quote computes distance from the hub, the service-area decision, and the
// estimated cost for the given load. Unknown quantity or waste values fall
// back to a factor of 1.0; the HTTP boundary rejects them before they reach
// here, so the fallback only matters for direct callers.
func (e *Engine) Quote(lat, lon float64, quantity models.Quantity, waste models.WasteType) Quote {
	distance := Haversine(e.cfg.HubLatitude, e.cfg.HubLongitude, lat, lon)
	q := Quote{DistanceKM: round2(distance)}
	if distance > e.cfg.ServiceRadiusKM {
		return q
	}
	q.InServiceArea = true
	q.EstimatedCost = e.Cost(distance, quantity, waste)
	return q
}

// Cost applies the pricing formula to an already-computed distance:
// ((km * per-km rate) + (volume factor * base rate)) * waste surcharge,
// rounded to 2 decimals.
func (e *Engine) Cost(distanceKM float64, quantity models.Quantity, waste models.WasteType) float64 {
	volume, ok := volumeFactors[quantity]
	if !ok {
		volume = 1.0
	}
	surcharge, ok := wasteSurcharges[waste]
	if !ok {
		surcharge = 1.0
	}
	total := ((distanceKM * e.cfg.RatePerKM) + (volume * e.cfg.BaseRate)) * surcharge
	return round2(total)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
