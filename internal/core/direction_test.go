package core

import "testing"

func TestOpposite(t *testing.T) {
	tests := []struct {
		dir, want Direction
	}{
		{DirUp, DirDown},
		{DirDown, DirUp},
		{DirLeft, DirRight},
		{DirRight, DirLeft},
		{DirNone, DirNone},
	}

	for _, tc := range tests {
		if got := tc.dir.Opposite(); got != tc.want {
			t.Errorf("%v.Opposite() = %v, expected %v", tc.dir, got, tc.want)
		}
	}
}

func TestVecDist(t *testing.T) {
	a := Vec{X: 0, Y: 0}
	b := Vec{X: 3, Y: 4}

	if d := a.Dist(b); d != 5 {
		t.Errorf("Dist = %f, expected 5", d)
	}
	if d := b.Dist(a); d != 5 {
		t.Errorf("Dist should be symmetric, got %f", d)
	}
}

func TestInputFrameSteerDirection(t *testing.T) {
	f := NewInputFrame()
	if f.SteerDirection() != DirNone {
		t.Error("Empty frame should steer DirNone")
	}

	f.Set(ActionLeft)
	if f.SteerDirection() != DirLeft {
		t.Errorf("SteerDirection = %v, expected left", f.SteerDirection())
	}

	f.Clear()
	if f.Has(ActionLeft) {
		t.Error("Clear should drop all actions")
	}
}
