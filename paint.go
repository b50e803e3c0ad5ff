package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Surface is a rune grid the painter draws a computed layout into.
// It is deliberately simpler than a full cell buffer: one rune per cell,
// no colors, no diffing. It exists so computed layouts can be previewed
// and asserted on without a terminal.
type Surface struct {
	width, height int
	cells         []rune
}

// NewSurface creates a Surface of the given dimensions filled with spaces.
func NewSurface(width, height int) *Surface {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	cells := make([]rune, width*height)
	for i := range cells {
		cells[i] = ' '
	}
	return &Surface{width: width, height: height, cells: cells}
}

// Width returns the surface width in cells.
func (s *Surface) Width() int { return s.width }

// Height returns the surface height in cells.
func (s *Surface) Height() int { return s.height }

// Set writes a rune at (x, y). Out-of-bounds writes are dropped.
func (s *Surface) Set(x, y int, r rune) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y*s.width+x] = r
}

// At returns the rune at (x, y), or a space when out of bounds.
func (s *Surface) At(x, y int) rune {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return ' '
	}
	return s.cells[y*s.width+x]
}

// String renders the surface as newline-separated rows.
func (s *Surface) String() string {
	var sb strings.Builder
	for y := 0; y < s.height; y++ {
		sb.WriteString(string(s.cells[y*s.width : (y+1)*s.width]))
		if y < s.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Paint renders a computed layout tree onto the surface. Nodes are drawn in
// paint order—ascending z-index, tree order for ties—so higher z-index
// elements overwrite lower ones. Per node: fill, border, then text.
func Paint(root *LayoutNode, s *Surface) {
	if root == nil {
		return
	}
	for _, node := range root.PaintOrder() {
		el, ok := node.Element.(*Element)
		if !ok {
			continue
		}
		if el.fill != 0 {
			fillRect(s, node.Rect, el.fill)
		}
		if el.border != BorderNone {
			drawBorder(s, node.Rect, el.border.Chars())
		}
		if el.text != "" {
			drawText(s, node.ContentRect, el.text)
		}
	}
}

func fillRect(s *Surface, r Rect, fill rune) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.Set(x, y, fill)
		}
	}
}

func drawBorder(s *Surface, r Rect, chars BorderChars) {
	if r.Width < 2 || r.Height < 2 {
		return
	}
	right, bottom := r.Right()-1, r.Bottom()-1

	s.Set(r.X, r.Y, chars.TopLeft)
	s.Set(right, r.Y, chars.TopRight)
	s.Set(r.X, bottom, chars.BottomLeft)
	s.Set(right, bottom, chars.BottomRight)

	for x := r.X + 1; x < right; x++ {
		s.Set(x, r.Y, chars.Top)
		s.Set(x, bottom, chars.Bottom)
	}
	for y := r.Y + 1; y < bottom; y++ {
		s.Set(r.X, y, chars.Left)
		s.Set(right, y, chars.Right)
	}
}

// drawText writes the text block clipped to the content rect. Wide runes
// advance two cells; one that would straddle the right edge is dropped.
func drawText(s *Surface, r Rect, text string) {
	if r.IsEmpty() {
		return
	}
	for i, line := range strings.Split(text, "\n") {
		y := r.Y + i
		if y >= r.Bottom() {
			break
		}
		x := r.X
		for _, rn := range line {
			w := runewidth.RuneWidth(rn)
			if x+w > r.Right() {
				break
			}
			s.Set(x, y, rn)
			x += w
		}
	}
}
