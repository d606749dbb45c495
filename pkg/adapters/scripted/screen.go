package scripted

import "strings"

// Screen dimensions of the virtual terminal every scripted session renders
// against.
const (
	ScreenWidth  = 50
	ScreenHeight = 20
)

// Screen is a fixed-size cell buffer standing in for a terminal. Questions
// render onto it so tests can assert on what the user would have seen.
type Screen struct {
	cells [ScreenHeight][ScreenWidth]rune
	row   int
}

// NewScreen returns a blank screen.
func NewScreen() *Screen {
	s := &Screen{}
	s.Clear()
	return s
}

// Clear blanks the buffer and resets the cursor to the top.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = ' '
		}
	}
	s.row = 0
}

// WriteLine renders text onto the current row, wrapping at the screen width.
// Output past the bottom row is dropped, as a real fixed terminal would scroll
// it away.
func (s *Screen) WriteLine(text string) {
	if text == "" {
		s.row++
		return
	}
	for len(text) > 0 && s.row < ScreenHeight {
		line := text
		if len(line) > ScreenWidth {
			line = line[:ScreenWidth]
		}
		for x, r := range line {
			s.cells[s.row][x] = r
		}
		text = text[len(line):]
		s.row++
	}
}

// Row returns the trimmed content of one row.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= ScreenHeight {
		return ""
	}
	return strings.TrimRight(string(s.cells[y][:]), " ")
}

// Rows returns all non-empty rows in order.
func (s *Screen) Rows() []string {
	var rows []string
	for y := 0; y < ScreenHeight; y++ {
		if r := s.Row(y); r != "" {
			rows = append(rows, r)
		}
	}
	return rows
}
