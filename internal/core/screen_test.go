package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, 'X')
	if s.Get(3, 2) != 'X' {
		t.Errorf("Get(3, 2) = %q, expected 'X'", s.Get(3, 2))
	}

	// Out of bounds set is ignored, get returns space
	s.Set(-1, 0, 'Y')
	s.Set(10, 0, 'Y')
	s.Set(0, 5, 'Y')
	if s.Get(-1, 0) != ' ' || s.Get(10, 0) != ' ' || s.Get(0, 5) != ' ' {
		t.Error("Out-of-bounds Get should return space")
	}
}

func TestScreenColoredCells(t *testing.T) {
	s := NewScreen(8, 4)

	s.SetColored(1, 1, '@', ColorGreen)
	cell := s.GetCell(1, 1)
	if cell.Rune != '@' || cell.Color != ColorGreen {
		t.Errorf("GetCell(1, 1) = %+v, expected {'@', ColorGreen}", cell)
	}

	if s.GetCell(99, 99).Color != ColorDefault {
		t.Error("Out-of-bounds GetCell should be default-colored")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(6, 3)
	s.SetColored(2, 1, '#', ColorRed)
	s.Clear()

	if s.Get(2, 1) != ' ' {
		t.Error("Clear should reset runes to space")
	}
	if s.GetCell(2, 1).Color != ColorDefault {
		t.Error("Clear should reset colors to default")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(2, 1, "hello")

	if s.Row(1) != "  hello   " {
		t.Errorf("Row(1) = %q, expected %q", s.Row(1), "  hello   ")
	}

	// Text extending past the edge is clipped
	s.DrawText(8, 0, "abc")
	if s.Get(8, 0) != 'a' || s.Get(9, 0) != 'b' {
		t.Error("Clipped text should keep the in-bounds prefix")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 6)
	s.DrawBox(NewRect(1, 1, 5, 4))

	if s.Get(1, 1) != '┌' || s.Get(5, 1) != '┐' {
		t.Error("Top corners not drawn")
	}
	if s.Get(1, 4) != '└' || s.Get(5, 4) != '┘' {
		t.Error("Bottom corners not drawn")
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("Edges not drawn")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(2, 2, 'Z')

	s.Resize(20, 10)
	if s.Width() != 20 || s.Height() != 10 {
		t.Errorf("Resize dimensions = %dx%d, expected 20x10", s.Width(), s.Height())
	}
	if s.Get(2, 2) != 'Z' {
		t.Error("Resize should preserve content where possible")
	}

	// Shrinking clips content
	s.Resize(2, 2)
	if s.Get(2, 2) != ' ' {
		t.Error("Shrunk screen should drop out-of-range content")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	out := s.String()
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "a  " || lines[1] != "  b" {
		t.Errorf("String() = %q", out)
	}
}
