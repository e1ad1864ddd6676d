package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(10, 5)

	if s.Width() != 10 || s.Height() != 5 {
		t.Errorf("Screen size = %dx%d, want 10x5", s.Width(), s.Height())
	}
	if s.Get(0, 0) != ' ' {
		t.Error("New screen should be filled with spaces")
	}
}

func TestSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, 'X')
	if s.Get(3, 2) != 'X' {
		t.Errorf("Get(3,2) = %q, want 'X'", s.Get(3, 2))
	}

	s.SetCell(4, 2, '●', ColorFruit)
	c := s.GetCell(4, 2)
	if c.Rune != '●' || c.Color != ColorFruit {
		t.Errorf("GetCell(4,2) = %+v, want fruit dot", c)
	}
}

func TestOutOfBoundsIgnored(t *testing.T) {
	s := NewScreen(10, 5)

	// Must not panic, must not wrap.
	s.Set(-1, 0, 'X')
	s.Set(10, 0, 'X')
	s.Set(0, -1, 'X')
	s.Set(0, 5, 'X')

	if s.Get(-1, 0) != ' ' || s.Get(100, 100) != ' ' {
		t.Error("Out-of-bounds Get should return space")
	}
	for y := 0; y < 5; y++ {
		if strings.ContainsRune(s.Row(y), 'X') {
			t.Fatal("Out-of-bounds Set leaked into the buffer")
		}
	}
}

func TestResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 5)
	s.SetCell(2, 2, 'A', ColorSnake)
	s.Set(9, 4, 'B')

	s.Resize(6, 4)

	if s.Width() != 6 || s.Height() != 4 {
		t.Errorf("Size after shrink = %dx%d, want 6x4", s.Width(), s.Height())
	}
	if c := s.GetCell(2, 2); c.Rune != 'A' || c.Color != ColorSnake {
		t.Errorf("Surviving cell = %+v, want colored 'A'", c)
	}

	s.Resize(12, 8)
	if s.Get(2, 2) != 'A' {
		t.Error("Grow lost surviving content")
	}
	if s.Get(11, 7) != ' ' {
		t.Error("Grown area should be blank")
	}
}

func TestDrawText(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawText(2, 1, "hi", ColorChrome)
	if s.Get(2, 1) != 'h' || s.Get(3, 1) != 'i' {
		t.Errorf("Row 1 = %q", s.Row(1))
	}

	// Clipped at the right edge, no panic.
	s.DrawText(8, 0, "long", ColorDefault)
	if s.Get(8, 0) != 'l' || s.Get(9, 0) != 'o' {
		t.Errorf("Row 0 = %q", s.Row(0))
	}
}

func TestDrawTextCentered(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextCentered(0, "ab", ColorDefault)

	if s.Get(4, 0) != 'a' || s.Get(5, 0) != 'b' {
		t.Errorf("Row 0 = %q, want text at columns 4-5", s.Row(0))
	}
}

func TestDrawBox(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawBox(NewRect(1, 1, 5, 3), ColorChrome)

	if s.Get(1, 1) != '┌' || s.Get(5, 1) != '┐' {
		t.Errorf("Top row = %q", s.Row(1))
	}
	if s.Get(1, 3) != '└' || s.Get(5, 3) != '┘' {
		t.Errorf("Bottom row = %q", s.Row(3))
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("Edges not drawn")
	}
	if s.Get(3, 2) != ' ' {
		t.Error("Box interior should stay blank")
	}
}

func TestString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	want := "a  \n  b"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestClear(t *testing.T) {
	s := NewScreen(4, 2)
	s.SetCell(1, 1, 'x', ColorSnake)

	s.Clear()

	if c := s.GetCell(1, 1); c.Rune != ' ' || c.Color != ColorDefault {
		t.Errorf("Cell after Clear = %+v", c)
	}
}
