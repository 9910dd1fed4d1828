package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Expected width 80, got %d", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Expected height 24, got %d", s.Height())
	}

	// Should be filled with spaces
	for y := 0; y < 24; y++ {
		for x := 0; x < 80; x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("Expected space at (%d, %d), got %q", x, y, s.Get(x, y))
			}
		}
	}
}

func TestNewScreenNegativeSize(t *testing.T) {
	s := NewScreen(-3, 5)
	if s.Width() != 0 || s.String() != strings.Repeat("\n", 4) {
		t.Errorf("negative width not clamped: %d %q", s.Width(), s.String())
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X', ColorGreen)
	if s.Get(5, 5) != 'X' {
		t.Errorf("Expected 'X' at (5, 5), got %q", s.Get(5, 5))
	}
	if c := s.GetCell(5, 5); c.Color != ColorGreen {
		t.Errorf("Expected green at (5, 5), got %v", c.Color)
	}

	// Out of bounds should not panic
	s.Set(-1, 0, 'A', ColorRed)
	s.Set(100, 0, 'A', ColorRed)
	s.Set(0, -1, 'A', ColorRed)
	s.Set(0, 100, 'A', ColorRed)

	// Out of bounds get should return an uncolored space
	for _, p := range [][2]int{{-1, 0}, {100, 0}, {0, 10}} {
		if c := s.GetCell(p[0], p[1]); c != blank {
			t.Errorf("Out of bounds GetCell%v = %+v, want blank", p, c)
		}
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 3)
	s.Set(1, 1, '#', ColorRed)

	s.Clear()

	if c := s.GetCell(1, 1); c != blank {
		t.Errorf("After Clear, expected blank cell, got %+v", c)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello", ColorYellow)

	for i, ch := range "Hello" {
		c := s.GetCell(2+i, 1)
		if c.Rune != ch || c.Color != ColorYellow {
			t.Errorf("DrawText: expected %q/yellow at (%d, 1), got %+v", ch, 2+i, c)
		}
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello", ColorDefault) // Only "He" should fit
	if s.Row(0)[18:] != "He" {
		t.Errorf("Text should be clipped at right boundary, row = %q", s.Row(0))
	}
}

func TestScreenDrawTextMultibyte(t *testing.T) {
	s := NewScreen(5, 1)
	s.DrawText(0, 0, "█▓x", ColorDefault)

	if s.Get(0, 0) != '█' || s.Get(1, 0) != '▓' || s.Get(2, 0) != 'x' {
		t.Errorf("multibyte text misplaced: %q", s.Row(0))
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	tests := []struct {
		name  string
		r     Rect
		text  string
		wantX int
	}{
		{"full width", NewRect(0, 0, 20, 5), "Hi", 9},
		{"offset area", NewRect(10, 0, 10, 5), "Hi", 14},
		{"multibyte", NewRect(0, 0, 20, 5), "▲▲", 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScreen(20, 5)
			s.DrawTextCentered(tt.r, 2, tt.text, ColorDefault)

			first := []rune(tt.text)[0]
			if s.Get(tt.wantX, 2) != first {
				t.Errorf("expected %q at x=%d, row = %q", first, tt.wantX, s.Row(2))
			}
		})
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	r := NewRect(1, 1, 5, 4)
	s.DrawBox(r, ColorGray)

	corners := []struct {
		x, y int
		want rune
	}{
		{1, 1, '┌'},
		{5, 1, '┐'},
		{1, 4, '└'},
		{5, 4, '┘'},
	}
	for _, c := range corners {
		if got := s.Get(c.x, c.y); got != c.want {
			t.Errorf("corner (%d, %d) = %q, want %q", c.x, c.y, got, c.want)
		}
	}

	for x := 2; x < 5; x++ {
		if s.Get(x, 1) != '─' || s.Get(x, 4) != '─' {
			t.Errorf("horizontal edge missing at x=%d", x)
		}
	}
	for y := 2; y < 4; y++ {
		if s.Get(1, y) != '│' || s.Get(5, y) != '│' {
			t.Errorf("vertical edge missing at y=%d", y)
		}
	}

	// Interior untouched
	if s.Get(3, 2) != ' ' {
		t.Error("DrawBox should not fill the interior")
	}
	if s.GetCell(1, 1).Color != ColorGray {
		t.Error("DrawBox should use the given color")
	}
}

func TestScreenDrawBoxTooSmall(t *testing.T) {
	s := NewScreen(5, 5)
	s.DrawBox(NewRect(0, 0, 1, 5), ColorDefault)

	if s.String() != NewScreen(5, 5).String() {
		t.Error("degenerate box should draw nothing")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'A', ColorRed)
	s.Set(2, 1, 'B', ColorGreen)

	want := "A  \n  B"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got := s.Row(5); got != "   " {
		t.Errorf("Row out of range = %q", got)
	}
}
