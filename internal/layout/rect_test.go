package layout

import "testing"

func TestRect_Contains(t *testing.T) {
	r := NewRect(2, 3, 10, 5)

	tests := map[string]struct {
		x, y int
		want bool
	}{
		"inside":          {5, 5, true},
		"top left corner": {2, 3, true},
		"right edge":      {12, 5, false},
		"bottom edge":     {5, 8, false},
		"left of rect":    {1, 5, false},
		"above rect":      {5, 2, false},
		"last interior":   {11, 7, true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRect_Inset(t *testing.T) {
	r := NewRect(0, 0, 20, 10)

	got := r.Inset(EdgeTRBL(1, 2, 3, 4))
	want := NewRect(4, 1, 14, 6)
	if got != want {
		t.Errorf("Inset = %v, want %v", got, want)
	}
}

func TestRect_InsetFloorsAtZero(t *testing.T) {
	r := NewRect(0, 0, 4, 4)

	got := r.Inset(EdgeAll(3))
	if got.Width != 0 || got.Height != 0 {
		t.Errorf("Inset size = %dx%d, want 0x0", got.Width, got.Height)
	}
}

func TestRect_Intersect(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(5, 5, 10, 10)

	got := a.Intersect(b)
	want := NewRect(5, 5, 5, 5)
	if got != want {
		t.Errorf("Intersect = %v, want %v", got, want)
	}

	far := NewRect(20, 20, 5, 5)
	if !a.Intersect(far).IsEmpty() {
		t.Error("disjoint rects should intersect to empty")
	}
	touching := NewRect(10, 0, 5, 5)
	if a.Intersects(touching) {
		t.Error("touching edges should not count as overlap")
	}
}

func TestRect_Union(t *testing.T) {
	a := NewRect(0, 0, 5, 5)
	b := NewRect(10, 10, 5, 5)

	got := a.Union(b)
	want := NewRect(0, 0, 15, 15)
	if got != want {
		t.Errorf("Union = %v, want %v", got, want)
	}
	if got := a.Union(Rect{}); got != a {
		t.Errorf("Union with empty = %v, want %v", got, a)
	}
}

func TestEdges_Totals(t *testing.T) {
	e := EdgeTRBL(1, 2, 3, 4)
	if got := e.Horizontal(); got != 6 {
		t.Errorf("Horizontal = %d, want 6", got)
	}
	if got := e.Vertical(); got != 4 {
		t.Errorf("Vertical = %d, want 4", got)
	}
	if !(Edges{}).IsZero() {
		t.Error("zero Edges should be zero")
	}
	if EdgeAll(1).IsZero() {
		t.Error("EdgeAll(1) should not be zero")
	}
}

func TestSize_Axes(t *testing.T) {
	s := Size{Width: 7, Height: 3}
	if s.Main(Row) != 7 || s.Cross(Row) != 3 {
		t.Errorf("row axes = %d/%d, want 7/3", s.Main(Row), s.Cross(Row))
	}
	if s.Main(Column) != 3 || s.Cross(Column) != 7 {
		t.Errorf("column axes = %d/%d, want 3/7", s.Main(Column), s.Cross(Column))
	}
}
