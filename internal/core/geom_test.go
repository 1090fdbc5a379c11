package core

import "testing"

func TestRectIntersect(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected Rect
		ok       bool
	}{
		{
			name:     "partial overlap",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(12, 8, 20, 20),
			expected: NewRect(12, 8, 8, 12),
			ok:       true,
		},
		{
			name: "disjoint",
			a:    NewRect(0, 0, 20, 20),
			b:    NewRect(40, 0, 20, 20),
		},
		{
			name: "touching edges do not overlap",
			a:    NewRect(0, 0, 20, 20),
			b:    NewRect(20, 0, 20, 20),
		},
		{
			name:     "hero inside window",
			a:        NewRect(100, 60, 20, 20),
			b:        NewRect(0, 0, 480, 320),
			expected: NewRect(100, 60, 20, 20),
			ok:       true,
		},
		{
			name:     "negative origin clipped",
			a:        NewRect(-4, -6, 20, 20),
			b:        NewRect(0, 0, 480, 320),
			expected: NewRect(0, 0, 16, 14),
			ok:       true,
		},
		{
			name: "far off screen",
			a:    NewRect(-200, 500, 20, 20),
			b:    NewRect(0, 0, 480, 320),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tc.a.Intersect(tc.b)
			if ok != tc.ok {
				t.Fatalf("Intersect() ok = %v, expected %v", ok, tc.ok)
			}
			if got != tc.expected {
				t.Errorf("Intersect() = %+v, expected %+v", got, tc.expected)
			}
			swapped, swappedOK := tc.b.Intersect(tc.a)
			if swapped != got || swappedOK != ok {
				t.Errorf("b.Intersect(a) = %+v/%v, a.Intersect(b) = %+v/%v", swapped, swappedOK, got, ok)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	hero := NewRect(40, 20, HeroSize, HeroSize)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"origin corner", 40, 20, true},
		{"last pixel", 59, 39, true},
		{"right edge excluded", 60, 30, false},
		{"bottom edge excluded", 50, 40, false},
		{"above", 50, 19, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := hero.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(-10, 4, 20, 15)

	if r.Right() != 10 {
		t.Errorf("Right() = %d, expected 10", r.Right())
	}
	if r.Bottom() != 19 {
		t.Errorf("Bottom() = %d, expected 19", r.Bottom())
	}
	if r.Empty() {
		t.Error("Empty() = true for a 20x15 rect")
	}
	if !NewRect(3, 3, 5, 0).Empty() {
		t.Error("Empty() = false for a zero-height rect")
	}
}

func TestMinMax(t *testing.T) {
	if got := Min(-3, 2); got != -3 {
		t.Errorf("Min(-3, 2) = %d, expected -3", got)
	}
	if got := Max(-3, 2); got != 2 {
		t.Errorf("Max(-3, 2) = %d, expected 2", got)
	}
}
