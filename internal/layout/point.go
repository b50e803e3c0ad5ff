package layout

// Point represents an (X, Y) coordinate.
type Point struct {
	X, Y int
}

// Add returns a new Point offset by other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// In returns true if the point is inside the given rectangle.
func (p Point) In(r Rect) bool {
	return r.Contains(p.X, p.Y)
}

// Size represents a width/height pair in terminal cells.
type Size struct {
	Width, Height int
}

// Main returns the size along the main axis for the given direction.
func (s Size) Main(d Direction) int {
	if d == Column {
		return s.Height
	}
	return s.Width
}

// Cross returns the size along the cross axis for the given direction.
func (s Size) Cross(d Direction) int {
	if d == Column {
		return s.Width
	}
	return s.Height
}
