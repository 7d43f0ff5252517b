package core

import (
	"strings"
)

// Cell is one character position on the screen.
type Cell struct {
	Rune  rune
	Color Color
}

var blankCell = Cell{Rune: ' ', Color: ColorDefault}

// Screen is a row-major buffer of colored runes. Games draw into it and the
// platform turns it into terminal output.
type Screen struct {
	width  int
	height int
	cells  []Cell
}

// NewScreen creates a blank screen of the given size.
func NewScreen(width, height int) *Screen {
	width, height = max(width, 0), max(height, 0)
	s := &Screen{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	s.Clear()
	return s
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// offset returns the buffer index of (x, y), or false outside the screen.
func (s *Screen) offset(x, y int) (int, bool) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return 0, false
	}
	return y*s.width + x, true
}

// Resize changes the screen size. The overlapping top-left region keeps its
// content; new cells are blank.
func (s *Screen) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == s.width && height == s.height {
		return
	}

	next := &Screen{width: width, height: height, cells: make([]Cell, width*height)}
	next.Clear()
	w := min(s.width, width)
	for y := range min(s.height, height) {
		copy(next.cells[y*width:y*width+w], s.cells[y*s.width:y*s.width+w])
	}
	*s = *next
}

// Clear blanks every cell.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = blankCell
	}
}

// Set places an uncolored rune. Positions off the screen are ignored.
func (s *Screen) Set(x, y int, r rune) {
	s.SetColor(x, y, r, ColorDefault)
}

// SetColor places a rune painted with role c. Positions off the screen are ignored.
func (s *Screen) SetColor(x, y int, r rune, c Color) {
	if i, ok := s.offset(x, y); ok {
		s.cells[i] = Cell{Rune: r, Color: c}
	}
}

// Get returns the rune at (x, y), a space off the screen.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at (x, y), a blank cell off the screen.
func (s *Screen) GetCell(x, y int) Cell {
	if i, ok := s.offset(x, y); ok {
		return s.cells[i]
	}
	return blankCell
}

// DrawText writes text from (x, y) rightwards, clipped to the screen.
func (s *Screen) DrawText(x, y int, text string) {
	s.DrawTextColor(x, y, text, ColorDefault)
}

// DrawTextColor writes text painted with role c. Each rune takes one column.
func (s *Screen) DrawTextColor(x, y int, text string, c Color) {
	for i, r := range []rune(text) {
		s.SetColor(x+i, y, r, c)
	}
}

// DrawTextCentered draws text centered horizontally on row y.
func (s *Screen) DrawTextCentered(y int, text string) {
	s.DrawText((s.width-len([]rune(text)))/2, y, text)
}

// DrawBox draws a single-line frame around r and blanks its interior.
func (s *Screen) DrawBox(r Rect) {
	right, bottom := r.Right()-1, r.Bottom()-1
	for y := r.Y; y <= bottom; y++ {
		for x := r.X; x <= right; x++ {
			var ch rune
			switch {
			case y == r.Y && x == r.X:
				ch = '┌'
			case y == r.Y && x == right:
				ch = '┐'
			case y == bottom && x == r.X:
				ch = '└'
			case y == bottom && x == right:
				ch = '┘'
			case y == r.Y || y == bottom:
				ch = '─'
			case x == r.X || x == right:
				ch = '│'
			default:
				ch = ' '
			}
			s.Set(x, y, ch)
		}
	}
}

// DrawHLine draws length copies of r from (x, y) rightwards.
func (s *Screen) DrawHLine(x, y, length int, r rune) {
	for i := range max(length, 0) {
		s.Set(x+i, y, r)
	}
}

// String returns the plain text of the screen, rows joined by newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(len(s.cells) + s.height)
	for y := range s.height {
		if y > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(s.Row(y))
	}
	return sb.String()
}

// Row returns row y as plain text, blanks when y is off the screen.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y*s.width : (y+1)*s.width] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
