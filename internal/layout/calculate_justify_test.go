package layout

import "testing"

func justifiedRow(justify Justify, widths ...int) *testNode {
	parent := newFlexRow(24, 10)
	parent.style.JustifyContent = justify
	for _, w := range widths {
		parent.AddChild(newSizedNode(w, 4))
	}
	return parent
}

func TestJustify_Positions(t *testing.T) {
	tests := map[string]struct {
		justify Justify
		widths  []int
		wantX   []int
	}{
		"start": {
			justify: JustifyStart,
			widths:  []int{4, 4, 4},
			wantX:   []int{0, 4, 8},
		},
		"end": {
			justify: JustifyEnd,
			widths:  []int{4, 4, 4},
			wantX:   []int{12, 16, 20},
		},
		"center": {
			justify: JustifyCenter,
			widths:  []int{4, 4, 4},
			wantX:   []int{6, 10, 14},
		},
		"space between": {
			justify: JustifySpaceBetween,
			widths:  []int{4, 4, 4},
			wantX:   []int{0, 10, 20},
		},
		"space around": {
			justify: JustifySpaceAround,
			widths:  []int{5, 5},
			wantX:   []int{3, 13},
		},
		"space evenly": {
			justify: JustifySpaceEvenly,
			widths:  []int{4, 4, 4},
			wantX:   []int{3, 10, 17},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			result := calc(justifiedRow(tt.justify, tt.widths...), 100, 100)
			for i, want := range tt.wantX {
				if got := result.Children[i].Rect.X; got != want {
					t.Errorf("child %d X = %d, want %d", i, got, want)
				}
			}
		})
	}
}

func TestJustify_SingleItem(t *testing.T) {
	tests := map[string]struct {
		justify Justify
		wantX   int
	}{
		"start":         {JustifyStart, 0},
		"end":           {JustifyEnd, 18},
		"center":        {JustifyCenter, 9},
		"space between": {JustifySpaceBetween, 0},
		"space around":  {JustifySpaceAround, 9},
		"space evenly":  {JustifySpaceEvenly, 9},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			result := calc(justifiedRow(tt.justify, 6), 100, 100)
			if got := result.Children[0].Rect.X; got != tt.wantX {
				t.Errorf("X = %d, want %d", got, tt.wantX)
			}
		})
	}
}

func TestJustify_NoFreeSpacePacksAtStart(t *testing.T) {
	for name, justify := range map[string]Justify{
		"end":    JustifyEnd,
		"center": JustifyCenter,
		"evenly": JustifySpaceEvenly,
	} {
		t.Run(name, func(t *testing.T) {
			parent := justifiedRow(justify, 12, 12)
			for _, c := range parent.children {
				c.style.FlexShrink = 0
			}
			result := calc(parent, 100, 100)
			if got := result.Children[0].Rect.X; got != 0 {
				t.Errorf("first child X = %d, want 0 when overflowing", got)
			}
		})
	}
}

func TestJustify_ColumnUsesMainAxis(t *testing.T) {
	parent := newFlexRow(20, 20)
	parent.style.Direction = Column
	parent.style.JustifyContent = JustifyEnd
	parent.AddChild(newSizedNode(5, 4), newSizedNode(5, 4))

	result := calc(parent, 100, 100)

	if got := result.Children[0].Rect.Y; got != 12 {
		t.Errorf("first child Y = %d, want 12", got)
	}
	if got := result.Children[1].Rect.Y; got != 16 {
		t.Errorf("second child Y = %d, want 16", got)
	}
}
