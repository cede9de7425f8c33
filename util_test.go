package thermalctl

import "testing"

func TestClamp(t *testing.T) {
	cases := []struct {
		v, lo, hi, want float64
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
	}
	for _, c := range cases {
		if got := clamp(c.v, c.lo, c.hi); got != c.want {
			t.Errorf("clamp(%v,%v,%v) = %v, want %v", c.v, c.lo, c.hi, got, c.want)
		}
	}
}

func TestLerp(t *testing.T) {
	if got := lerp(5, 0, 10, 0, 100); got != 50 {
		t.Errorf("lerp(5,0,10,0,100) = %v, want 50", got)
	}
	if got := lerp(-5, 0, 10, 0, 100); got != 0 {
		t.Errorf("lerp() did not clamp below domain: got %v, want 0", got)
	}
	if got := lerp(15, 0, 10, 0, 100); got != 100 {
		t.Errorf("lerp() did not clamp above domain: got %v, want 100", got)
	}
	if got := lerp(3, 5, 5, 1, 9); got != 1 {
		t.Errorf("lerp() with zero-width domain = %v, want y0=1", got)
	}
}
