package core

import "testing"

func runeAt(s *Screen, x, y int) rune {
	return s.GetCell(x, y).Rune
}

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	// New screens start blank
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if got := s.GetCell(x, y); got != blank {
				t.Errorf("New screen should be blank, got %+v at (%d, %d)", got, x, y)
			}
		}
	}

	if neg := NewScreen(-3, -1); neg.Width() != 0 || neg.Height() != 0 {
		t.Errorf("negative size should clamp to 0x0, got %dx%d", neg.Width(), neg.Height())
	}
}

func TestScreenSetColoredBounds(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, 'X', ColorCursor)
	if got := s.GetCell(5, 5); got.Rune != 'X' || got.Color != ColorCursor {
		t.Errorf("GetCell(5, 5) = %+v, expected cursor 'X'", got)
	}

	// Out of bounds should be silent
	s.SetColored(-1, 0, 'A', ColorDefault)
	s.SetColored(100, 0, 'A', ColorDefault)
	s.SetColored(0, -1, 'A', ColorDefault)
	s.SetColored(0, 100, 'A', ColorDefault)

	if runeAt(s, -1, 0) != ' ' || runeAt(s, 100, 0) != ' ' {
		t.Error("Out of bounds GetCell should return a blank cell")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 3)
	s.SetColored(1, 1, 'A', ColorSelected)
	s.DrawTextColored(3, 1, "BC", ColorFound)

	if got := s.GetCell(4, 1); got.Rune != 'C' || got.Color != ColorFound {
		t.Errorf("GetCell(4, 1) = %+v, expected found 'C'", got)
	}

	s.Clear()
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if got := s.GetCell(x, y); got != blank {
				t.Errorf("After Clear, expected blank at (%d, %d), got %+v", x, y, got)
			}
		}
	}
}

func TestScreenDrawTextColored(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextColored(2, 1, "Hello", ColorTitle)

	for i, ch := range "Hello" {
		got := s.GetCell(2+i, 1)
		if got.Rune != ch || got.Color != ColorTitle {
			t.Errorf("expected title %q at (%d, 1), got %+v", ch, 2+i, got)
		}
	}

	// Text should be clipped at boundaries
	s.DrawTextColored(18, 0, "Hello", ColorDefault)
	if runeAt(s, 18, 0) != 'H' || runeAt(s, 19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	r := NewRect(1, 1, 5, 4)
	s.DrawBox(r, ColorFrame)

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
		if got := runeAt(s, c.x, c.y); got != c.want {
			t.Errorf("corner (%d, %d) = %q, expected %q", c.x, c.y, got, c.want)
		}
	}

	for x := 2; x < 5; x++ {
		if runeAt(s, x, 1) != '─' || runeAt(s, x, 4) != '─' {
			t.Errorf("horizontal edges should be '─' at x=%d", x)
		}
	}
	for y := 2; y < 4; y++ {
		if runeAt(s, 1, y) != '│' || runeAt(s, 5, y) != '│' {
			t.Errorf("vertical edges should be '│' at y=%d", y)
		}
	}

	if got := s.GetCell(1, 1).Color; got != ColorFrame {
		t.Errorf("frame color = %v, expected %v", got, ColorFrame)
	}
	if runeAt(s, 3, 2) != ' ' {
		t.Error("box interior should stay blank")
	}

	tiny := NewScreen(3, 3)
	tiny.DrawBox(NewRect(0, 0, 1, 3), ColorFrame)
	if runeAt(tiny, 0, 0) != ' ' {
		t.Error("boxes narrower than 2 should draw nothing")
	}
}
