package geo

import "testing"

func TestHaversineKm(t *testing.T) {
	// Victoria BC (48.4284, -123.3656) to Vancouver BC (49.2827, -123.1207) ~ 93-100 km
	d := HaversineKm(48.4284, -123.3656, 49.2827, -123.1207)
	if d < 85 || d > 110 {
		t.Fatalf("unexpected distance: %v", d)
	}
}

func TestHaversineKmZeroDistance(t *testing.T) {
	if d := HaversineKm(45.4215, -75.6972, 45.4215, -75.6972); d != 0 {
		t.Fatalf("expected 0, got %v", d)
	}
}
