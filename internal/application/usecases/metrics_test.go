package usecases

import (
	"testing"
	"time"

	"github.com/LeeFlannery/dashboard-playground/internal/domain/entities"
)

func TestCalculateMetric(t *testing.T) {
	tests := []struct {
		name      string
		current   float64
		previous  float64
		wantPct   float64
		wantTrend entities.TrendDirection
	}{
		{"increase", 150, 100, 50, entities.TrendUp},
		{"decrease is absolute", 50, 100, 50, entities.TrendDown},
		{"from zero", 7, 0, 100, entities.TrendUp},
		{"both zero", 0, 0, 0, entities.TrendNeutral},
		{"truncated", 2, 3, 33.33, entities.TrendDown},
		{"unchanged", 10, 10, 0, entities.TrendNeutral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := calculateMetric("x", tt.current, tt.previous)
			if card.ChangePercentage != tt.wantPct {
				t.Errorf("percentage = %v, want %v", card.ChangePercentage, tt.wantPct)
			}
			if card.TrendDirection != tt.wantTrend {
				t.Errorf("trend = %s, want %s", card.TrendDirection, tt.wantTrend)
			}
		})
	}
}

func TestMetricCards(t *testing.T) {
	ds := Dataset{
		Sessions: []entities.Session{
			{StartTime: testNow.Add(-time.Hour)},
			{StartTime: testNow.Add(-3 * 24 * time.Hour)},
			{StartTime: testNow.Add(-20 * 24 * time.Hour)},
			{StartTime: testNow.Add(-40 * 24 * time.Hour)},
		},
		Conversions: []entities.Conversion{
			{Type: entities.ConversionPurchase, Value: 100, Timestamp: testNow.Add(-2 * time.Hour)},
			{Type: entities.ConversionSignup, Timestamp: testNow.Add(-16 * 24 * time.Hour)},
			{Type: entities.ConversionPurchase, Value: 50, Timestamp: testNow.Add(-17 * 24 * time.Hour)},
		},
	}

	cards := MetricCards(ds, testNow)
	if len(cards) != 3 {
		t.Fatalf("len = %d, want 3", len(cards))
	}

	sessions, conversions, revenue := cards[0], cards[1], cards[2]
	if sessions.Value != 2 || sessions.Previous != 1 || sessions.ChangePercentage != 100 || sessions.TrendDirection != entities.TrendUp {
		t.Errorf("sessions card = %+v", sessions)
	}
	if conversions.Value != 1 || conversions.Previous != 2 || conversions.ChangePercentage != 50 || conversions.TrendDirection != entities.TrendDown {
		t.Errorf("conversions card = %+v", conversions)
	}
	if revenue.Value != 100 || revenue.Previous != 50 || revenue.ValuePrefix != "$" {
		t.Errorf("revenue card = %+v", revenue)
	}
}
