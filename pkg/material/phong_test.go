package material

import (
	"math"
	"testing"
)

func TestMaterial_IsOpaque(t *testing.T) {
	tests := []struct {
		name     string
		material Material
		opaque   bool
	}{
		{"red is translucent", Red(), false},
		{"green is opaque", Green(), true},
		{"blue is opaque", Blue(), true},
		{"gray is opaque", Gray(), true},
		{"black is opaque", Black(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.material.IsOpaque(); got != tt.opaque {
				t.Errorf("Expected IsOpaque=%t, got %t", tt.opaque, got)
			}
		})
	}
}

func TestMaterial_Transmittance(t *testing.T) {
	if got := Red().Transmittance(); math.Abs(got-0.3) > 1e-12 {
		t.Errorf("Expected transmittance 0.3, got %f", got)
	}
	if got := Green().Transmittance(); got != 0 {
		t.Errorf("Expected opaque transmittance 0, got %f", got)
	}
}
