package core

import "testing"

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 2, 3), NewVec3(0, -2, 4))

	tests := []struct {
		t        float64
		expected Vec3
	}{
		{0, NewVec3(1, 2, 3)},
		{1, NewVec3(1, 0, 7)},
		{0.5, NewVec3(1, 1, 5)},
		{-1, NewVec3(1, 4, -1)},
	}

	for _, tt := range tests {
		if got := ray.At(tt.t); got != tt.expected {
			t.Errorf("At(%g): expected %v, got %v", tt.t, tt.expected, got)
		}
	}

	if ray.Time != 0 {
		t.Errorf("Expected NewRay to start at time 0, got %f", ray.Time)
	}
}

func TestRay_WithTime(t *testing.T) {
	ray := NewRay(NewVec3(1, 1, 1), NewVec3(0, 2, 0))
	if ray.Time != 0 {
		t.Errorf("Expected default time 0, got %f", ray.Time)
	}

	timed := NewRayWithTime(ray.Origin, ray.Direction, 0.25)
	if timed.Time != 0.25 {
		t.Errorf("Expected time 0.25, got %f", timed.Time)
	}

	// Time does not change the path of the ray
	if timed.At(1.5) != ray.At(1.5) || timed.At(1.5) != NewVec3(1, 4, 1) {
		t.Errorf("Timed ray mismatch: %v vs %v", timed.At(1.5), ray.At(1.5))
	}
}
