package scalar

import (
	"math"
	"testing"
)

func TestIsEqualsFloat32(t *testing.T) {
	tests := []struct {
		name string
		a, b float32
		want bool
	}{
		{"identical", 1, 1, true},
		{"within tolerance", 1.00004, 1, true},
		{"within tolerance below", 0.99996, 1, true},
		{"outside tolerance", 1.0001, 1, false},
		{"outside tolerance below", 0.9999, 1, false},
		{"zero", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsEquals(tt.a, tt.b); got != tt.want {
				t.Errorf("IsEquals(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := IsEquals(tt.b, tt.a); got != tt.want {
				t.Errorf("IsEquals(%v, %v) = %v, want %v (symmetry)", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestIsEqualsFloat64(t *testing.T) {
	if !IsEquals(1.000004, 1.0) {
		t.Error("IsEquals(1.000004, 1.0) = false, want true")
	}
	if IsEquals(1.00001, 1.0) {
		t.Error("IsEquals(1.00001, 1.0) = true, want false")
	}
	if !IsEqualsTol(10.0, 10.4, 0.5) {
		t.Error("IsEqualsTol(10, 10.4, 0.5) = false, want true")
	}
}

func TestIsEqualsIntegers(t *testing.T) {
	if !IsEquals(int32(5), 5) {
		t.Error("IsEquals(int32(5), 5) = false, want true")
	}
	if IsEquals(int32(5), 6) {
		t.Error("IsEquals(int32(5), 6) = true, want false")
	}
	if !IsEqualsTol(int32(5), 7, 2) {
		t.Error("IsEqualsTol(int32(5), 7, 2) = false, want true")
	}
	if IsEqualsTol(int32(-5), -8, 2) {
		t.Error("IsEqualsTol(int32(-5), -8, 2) = true, want false")
	}
	if !IsEquals(uint32(9), 9) {
		t.Error("IsEquals(uint32(9), 9) = false, want true")
	}
	if !IsEqualsTol(uint32(10), 12, 3) {
		t.Error("IsEqualsTol(uint32(10), 12, 3) = false, want true")
	}
}

// TestIsEqualsUnsignedWrap documents that the window is computed with
// wrapping unsigned arithmetic.
func TestIsEqualsUnsignedWrap(t *testing.T) {
	// 0 - 1 wraps to MaxUint32, so the lower bound check fails.
	if IsEqualsTol(uint32(0), 0, 1) {
		t.Error("IsEqualsTol(uint32(0), 0, 1) = true, want false")
	}
}

func TestIsZero(t *testing.T) {
	tests := []struct {
		name string
		got  bool
		want bool
	}{
		{"float32 zero", IsZero(float32(0)), true},
		{"float32 small", IsZero(float32(0.00004)), true},
		{"float32 small negative", IsZero(float32(-0.00004)), true},
		{"float32 large", IsZero(float32(0.0001)), false},
		{"float64 small", IsZero(0.000004), true},
		{"float64 large", IsZero(0.00001), false},
		{"float64 custom tolerance", IsZeroTol(-0.3, 0.5), true},
		{"int32 zero", IsZero(int32(0)), true},
		{"int32 negative", IsZero(int32(-1)), false},
		{"int32 tolerance", IsZeroTol(int32(-3), 3), true},
		{"int32 min", IsZero(int32(math.MinInt32)), false},
		{"int32 large", IsZero(int32(1 << 27)), false},
		{"uint32 zero", IsZero(uint32(0)), true},
		{"uint32 one", IsZero(uint32(1)), false},
		{"uint32 tolerance", IsZeroTol(uint32(4), 4), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestIsZeroMasked(t *testing.T) {
	tests := []struct {
		name string
		a    int32
		tol  int32
		want bool
	}{
		{"zero", 0, 0, true},
		{"small", 5, 0, false},
		{"small within tolerance", 5, 5, true},
		{"bit 27 ignored", 1 << 27, 0, true},
		{"sign bit ignored", math.MinInt32, 0, true},
		{"minus one", -1, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsZeroMasked(tt.a, tt.tol); got != tt.want {
				t.Errorf("IsZeroMasked(%d, %d) = %v, want %v", tt.a, tt.tol, got, tt.want)
			}
		})
	}
}
