package services

import (
	"testing"

	"fleetops/internal/domain/models"
	"fleetops/internal/finance"
)

func TestInsightsServiceUsesLoader(t *testing.T) {
	loader := func(id int64) (models.Subtrip, error) {
		return models.Subtrip{
			StartKm: 0, EndKm: 500,
			Route: &models.Route{Distance: 450, TollAmt: 0},
			Trip:  &models.Trip{Vehicle: &models.Vehicle{VehicleType: "taurus"}},
		}, nil
	}

	svc := InsightsService{Loader: loader}
	insights, err := svc.ForSubtrip(1)
	if err != nil {
		t.Fatalf("ForSubtrip returned error: %v", err)
	}
	var found bool
	for _, in := range insights {
		if in.Type == finance.InsightDistanceOverrun {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a distance-overrun insight, got %v", insights)
	}
}

func TestInsightsServiceMissingRefs(t *testing.T) {
	loader := func(id int64) (models.Subtrip, error) {
		return models.Subtrip{ID: id}, nil
	}
	svc := InsightsService{Loader: loader}
	insights, err := svc.ForSubtrip(1)
	if err != nil {
		t.Fatalf("ForSubtrip returned error: %v", err)
	}
	if len(insights) != 0 {
		t.Fatalf("subtrip without refs should yield no insights, got %v", insights)
	}
}
