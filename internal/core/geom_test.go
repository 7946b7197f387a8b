package core

import "testing"

func TestCoordManhattan(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Coord
		expected int
	}{
		{"same point", C(3, 4), C(3, 4), 0},
		{"horizontal", C(0, 0), C(5, 0), 5},
		{"vertical", C(0, 0), C(0, 7), 7},
		{"diagonal", C(1, 2), C(4, 6), 7},
		{"negative direction", C(4, 6), C(1, 2), 7},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Manhattan(tc.b); got != tc.expected {
				t.Errorf("Manhattan(%v, %v) = %d, expected %d", tc.a, tc.b, got, tc.expected)
			}
			// Manhattan distance is symmetric
			if got := tc.b.Manhattan(tc.a); got != tc.expected {
				t.Errorf("Manhattan(%v, %v) (reversed) = %d, expected %d", tc.b, tc.a, got, tc.expected)
			}
		})
	}
}

func TestDirStep(t *testing.T) {
	start := C(5, 5)

	tests := []struct {
		dir      Dir
		expected Coord
	}{
		{DirUp, C(5, 4)},
		{DirDown, C(5, 6)},
		{DirLeft, C(4, 5)},
		{DirRight, C(6, 5)},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			if got := start.Step(tc.dir); got != tc.expected {
				t.Errorf("Step(%v) = %v, expected %v", tc.dir, got, tc.expected)
			}
		})
	}
}

func TestDirsOrder(t *testing.T) {
	// Neighbor expansion order is part of the path tie-break contract.
	expected := [4]Dir{DirUp, DirDown, DirLeft, DirRight}
	if Dirs != expected {
		t.Errorf("Dirs = %v, expected %v", Dirs, expected)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestAbs(t *testing.T) {
	if Abs(5) != 5 {
		t.Error("Abs(5) should be 5")
	}
	if Abs(-5) != 5 {
		t.Error("Abs(-5) should be 5")
	}
	if Abs(0) != 0 {
		t.Error("Abs(0) should be 0")
	}
}
