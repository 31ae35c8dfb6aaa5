package orders

import (
	"testing"

	"doggo-marketplace/internal/domain/walkers"
)

func TestQuote_Multipliers(t *testing.T) {
	const rate = 50.0

	cases := []struct {
		name     string
		service  walkers.ServiceType
		combined bool
		want     float64
	}{
		{"walk base rate", walkers.ServiceWalk, false, 50},
		{"feeding base rate", walkers.ServiceFeeding, false, 50},
		{"stay is rate x1.5", walkers.ServiceStay, false, 75},
		{"vet care is rate x2", walkers.ServiceVetCare, false, 100},
		{"stay plus medical adds rate x0.8", walkers.ServiceStay, true, 115},
		{"combined medical ignored outside stay", walkers.ServiceWalk, true, 50},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Quote(rate, tc.service, tc.combined)
			if got != tc.want {
				t.Fatalf("Quote(%v, %s, %v) = %v, want %v", rate, tc.service, tc.combined, got, tc.want)
			}
		})
	}
}

func TestQuote_RoundsToInteger(t *testing.T) {
	// 33.5 x1.5 = 50.25 -> 50
	if got := Quote(33.5, walkers.ServiceStay, false); got != 50 {
		t.Fatalf("expected rounded 50, got %v", got)
	}
}
