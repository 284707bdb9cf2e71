package pricing

import (
	"math"
	"testing"

	"ecoport-backend/internal/config"
	"ecoport-backend/internal/models"
)

func testConfig() config.Pricing {
	return config.Pricing{
		HubLatitude:     26.7271,
		HubLongitude:    88.3953,
		ServiceRadiusKM: 20,
		RatePerKM:       10,
		BaseRate:        50,
	}
}

func TestHaversineZero(t *testing.T) {
	if d := Haversine(26.7271, 88.3953, 26.7271, 88.3953); d != 0 {
		t.Fatalf("expected 0, got %f", d)
	}
}

func TestHaversineKnownDistance(t *testing.T) {
	// One degree of latitude is about 111.19 km on a 6371 km sphere.
	d := Haversine(0, 0, 1, 0)
	if math.Abs(d-111.19) > 0.05 {
		t.Fatalf("expected ~111.19 km, got %f", d)
	}
}

func TestQuoteAtHub(t *testing.T) {
	e := NewEngine(testConfig())
	q := e.Quote(26.7271, 88.3953, models.QuantityMedium, models.WastePlastic)
	if !q.InServiceArea {
		t.Fatal("hub coordinate should be in the service area")
	}
	if q.DistanceKM != 0 {
		t.Fatalf("expected distance 0, got %f", q.DistanceKM)
	}
	// (0*10 + 1.5*50) * 1.0 = 75.0
	if q.EstimatedCost != 75.0 {
		t.Fatalf("expected cost 75.0, got %f", q.EstimatedCost)
	}
}

func TestQuoteOutsideRadius(t *testing.T) {
	e := NewEngine(testConfig())
	// Roughly 55 km north of the hub.
	q := e.Quote(27.2271, 88.3953, models.QuantitySmall, models.WasteOrganic)
	if q.InServiceArea {
		t.Fatalf("location %f km away should be outside a 20 km radius", q.DistanceKM)
	}
	if q.EstimatedCost != 0 {
		t.Fatalf("out-of-area quote must carry no cost, got %f", q.EstimatedCost)
	}
}

func TestCostBulkEWaste(t *testing.T) {
	e := NewEngine(testConfig())
	// (10*10 + 3.0*50) * 1.2 = 300.0
	if got := e.Cost(10, models.QuantityBulk, models.WasteEWaste); got != 300.0 {
		t.Fatalf("expected 300.0, got %f", got)
	}
}

func TestCostMixedSurcharge(t *testing.T) {
	e := NewEngine(testConfig())
	// (5*10 + 2.0*50) * 1.1 = 165.0
	if got := e.Cost(5, models.QuantityLarge, models.WasteMixed); got != 165.0 {
		t.Fatalf("expected 165.0, got %f", got)
	}
}

func TestCostDeterministic(t *testing.T) {
	e := NewEngine(testConfig())
	first := e.Cost(7.77, models.QuantityMedium, models.WasteMetal)
	for i := 0; i < 100; i++ {
		if got := e.Cost(7.77, models.QuantityMedium, models.WasteMetal); got != first {
			t.Fatalf("cost not deterministic: %f vs %f", got, first)
		}
	}
}

func TestCostRoundsToTwoDecimals(t *testing.T) {
	e := NewEngine(testConfig())
	got := e.Cost(1.2345, models.QuantitySmall, models.WasteMixed)
	if got != math.Round(got*100)/100 {
		t.Fatalf("cost %f not rounded to 2 decimals", got)
	}
}

func TestUnknownFactorsFallBackToOne(t *testing.T) {
	e := NewEngine(testConfig())
	// The HTTP boundary rejects unknown enums; the engine itself keeps the
	// source system's 1.0 fallback.
	got := e.Cost(0, models.Quantity("Gigantic"), models.WasteType("Uranium"))
	if got != 50.0 {
		t.Fatalf("expected base rate 50.0 for unknown factors, got %f", got)
	}
}

func TestQuoteDistanceRounded(t *testing.T) {
	e := NewEngine(testConfig())
	q := e.Quote(26.80, 88.42, models.QuantitySmall, models.WasteOrganic)
	if q.DistanceKM != math.Round(q.DistanceKM*100)/100 {
		t.Fatalf("distance %f not rounded to 2 decimals", q.DistanceKM)
	}
}
