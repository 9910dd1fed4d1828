package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 5, 5)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 12, 12, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right corner (exclusive)", 15, 15, false},
		{"last cell", 14, 14, true},
		{"left of rect", 9, 12, false},
		{"below rect", 12, 15, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.expected {
				t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(2, 3, 4, 5)

	if r.Right() != 6 {
		t.Errorf("Right() = %d, want 6", r.Right())
	}
	if r.Bottom() != 8 {
		t.Errorf("Bottom() = %d, want 8", r.Bottom())
	}
}

func TestRectInset(t *testing.T) {
	tests := []struct {
		name     string
		r        Rect
		n        int
		expected Rect
	}{
		{"border", NewRect(0, 0, 10, 6), 1, NewRect(1, 1, 8, 4)},
		{"collapses", NewRect(0, 0, 3, 3), 2, NewRect(2, 2, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Inset(tt.n); got != tt.expected {
				t.Errorf("Inset(%d) = %+v, want %+v", tt.n, got, tt.expected)
			}
		})
	}
}

func TestCenterIn(t *testing.T) {
	tests := []struct {
		name     string
		outer    Rect
		w, h     int
		expected Rect
	}{
		{"fits", NewRect(0, 0, 80, 24), 42, 22, NewRect(19, 1, 42, 22)},
		{"offset outer", NewRect(10, 5, 20, 10), 10, 4, NewRect(15, 8, 10, 4)},
		{"too large", NewRect(0, 0, 10, 10), 30, 30, NewRect(0, 0, 30, 30)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CenterIn(tt.outer, tt.w, tt.h); got != tt.expected {
				t.Errorf("CenterIn() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tt := range tests {
		if got := Clamp(tt.val, tt.lo, tt.hi); got != tt.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tt.val, tt.lo, tt.hi, got, tt.expected)
		}
	}
}

func TestActionIsMove(t *testing.T) {
	moves := map[Action]bool{
		ActionNone:   false,
		ActionUp:     true,
		ActionDown:   true,
		ActionLeft:   true,
		ActionRight:  true,
		ActionStart:  false,
		ActionPause:  false,
		ActionScores: false,
		ActionQuit:   false,
	}

	for a, want := range moves {
		if got := a.IsMove(); got != want {
			t.Errorf("%s.IsMove() = %v, want %v", a, got, want)
		}
	}
	if Action(99).String() != "Unknown" {
		t.Error("unknown action should stringify as Unknown")
	}
}
