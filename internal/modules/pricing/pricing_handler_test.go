package pricing

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ecoport-backend/internal/models"

	"github.com/labstack/echo/v4"
)

func previewRequest(t *testing.T, body string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/calculate-cost", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	h := NewHandler(NewEngine(testConfig()))
	return rec, h.PreviewCost(e.NewContext(req, rec))
}

func TestPreviewCostInArea(t *testing.T) {
	rec, err := previewRequest(t, `{"latitude":26.7271,"longitude":88.3953,"quantity":"Medium","waste_type":"Plastic"}`)
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp models.CostPreviewResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !resp.InServiceArea {
		t.Fatal("hub coordinate must be in the service area")
	}
	if resp.EstimatedCost == nil || *resp.EstimatedCost != 75.0 {
		t.Fatalf("expected cost 75.0, got %v", resp.EstimatedCost)
	}
}

func TestPreviewCostZeroCoordinates(t *testing.T) {
	// 0 is a legal latitude and longitude. A point on the equator and
	// prime meridian must reach the engine and come back as out of area,
	// not be rejected by request validation.
	rec, err := previewRequest(t, `{"latitude":0,"longitude":0,"quantity":"Small","waste_type":"Organic"}`)
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp models.CostPreviewResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.InServiceArea {
		t.Fatal("(0, 0) is thousands of km from the hub, must be out of area")
	}
	if resp.EstimatedCost != nil {
		t.Fatalf("out-of-area preview must carry no cost, got %v", *resp.EstimatedCost)
	}
}

func TestPreviewCostRejectsOutOfRangeCoordinates(t *testing.T) {
	rec, err := previewRequest(t, `{"latitude":91,"longitude":88.3953,"quantity":"Small","waste_type":"Organic"}`)
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for latitude 91, got %d", rec.Code)
	}
	var resp models.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Kind != "VALIDATION_ERROR" {
		t.Fatalf("expected VALIDATION_ERROR, got %s", resp.Kind)
	}
}
