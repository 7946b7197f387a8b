package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, '#')
	if got := s.Get(3, 2); got != '#' {
		t.Errorf("Get(3, 2) = %q, expected '#'", got)
	}

	// Untouched cells are spaces
	if got := s.Get(0, 0); got != ' ' {
		t.Errorf("Get(0, 0) = %q, expected space", got)
	}

	// Out of bounds writes are ignored, reads return space
	s.Set(-1, 0, 'x')
	s.Set(10, 0, 'x')
	s.Set(0, 5, 'x')
	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("out-of-bounds Get = %q, expected space", got)
	}
}

func TestScreenColoredCells(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetColored(2, 1, '*', ColorYellow)

	cell := s.GetCell(2, 1)
	if cell.Rune != '*' || cell.Color != ColorYellow {
		t.Errorf("GetCell(2, 1) = %+v, expected {'*' yellow}", cell)
	}

	// Plain Set uses the default color
	s.Set(2, 1, '#')
	if cell := s.GetCell(2, 1); cell.Color != ColorDefault {
		t.Errorf("Set should reset color, got %+v", cell)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawText(2, 1, "hello")
	if got := s.Row(1); got != "  hello   " {
		t.Errorf("Row(1) = %q, expected %q", got, "  hello   ")
	}

	// Clipped at the right edge
	s.DrawText(8, 0, "abc")
	if got := s.Row(0); got != "        ab" {
		t.Errorf("Row(0) = %q, expected %q", got, "        ab")
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(1, 1, 'A')
	s.Set(9, 4, 'B')

	s.Resize(5, 3)

	if got := s.Get(1, 1); got != 'A' {
		t.Errorf("content inside new bounds lost: got %q", got)
	}
	if s.Width() != 5 || s.Height() != 3 {
		t.Errorf("dimensions = %dx%d, expected 5x3", s.Width(), s.Height())
	}

	s.Resize(12, 6)
	if got := s.Get(1, 1); got != 'A' {
		t.Errorf("content lost on grow: got %q", got)
	}
	if got := s.Get(11, 5); got != ' ' {
		t.Errorf("new cells should be blank, got %q", got)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	got := s.String()
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "a  " || lines[1] != "  b" {
		t.Errorf("String() = %q", got)
	}
}
