package battle

import "testing"

func TestResolveAttack(t *testing.T) {
	tests := []struct {
		name     string
		attack   int
		quality  float64
		damage   int
		critical bool
	}{
		{"perfect timing", 10, 100, 15, true},
		{"threshold is critical", 10, 80, 12, true},
		{"just below threshold", 10, 79.999, 7, false},
		{"half meter", 10, 50, 5, false},
		{"zero meter floors to one", 10, 0, 1, false},
		{"weak critical keeps minimum", 1, 85, 1, true},
		{"quality above range clamps", 20, 250, 30, true},
		{"negative quality clamps", 20, -5, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ResolveAttack(tt.attack, tt.quality)
			if res.Damage != tt.damage {
				t.Errorf("Expected damage %d, got %d", tt.damage, res.Damage)
			}
			if res.Critical != tt.critical {
				t.Errorf("Expected critical %v, got %v", tt.critical, res.Critical)
			}
			if res.HitQuality < 0 || res.HitQuality > MeterMax {
				t.Errorf("Expected clamped hit quality, got %v", res.HitQuality)
			}
		})
	}
}
