package layout

import "testing"

func TestAlign_CrossAxisPositions(t *testing.T) {
	tests := map[string]struct {
		align      Align
		wantY      int
		wantHeight int
	}{
		"start":   {AlignStart, 0, 4},
		"end":     {AlignEnd, 6, 4},
		"center":  {AlignCenter, 3, 4},
		"stretch": {AlignStretch, 0, 4},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			parent := newFlexRow(30, 10)
			parent.style.AlignItems = tt.align
			parent.AddChild(newSizedNode(8, 4))

			result := calc(parent, 100, 100)

			child := result.Children[0]
			if child.Rect.Y != tt.wantY {
				t.Errorf("Y = %d, want %d", child.Rect.Y, tt.wantY)
			}
			if child.Rect.Height != tt.wantHeight {
				t.Errorf("Height = %d, want %d", child.Rect.Height, tt.wantHeight)
			}
		})
	}
}

func TestAlign_StretchFillsLineWhenCrossIsAuto(t *testing.T) {
	parent := newFlexRow(30, 10)
	parent.style.AlignItems = AlignStretch

	child := newTestNode(DefaultStyle())
	child.style.Width = Fixed(8)
	parent.AddChild(child)

	result := calc(parent, 100, 100)

	got := result.Children[0].Rect
	if got.Height != 10 {
		t.Errorf("Height = %d, want 10 (stretched to the line)", got.Height)
	}
	if got.Y != 0 {
		t.Errorf("Y = %d, want 0", got.Y)
	}
}

func TestAlign_StretchRespectsMaxHeight(t *testing.T) {
	parent := newFlexRow(30, 10)
	parent.style.AlignItems = AlignStretch

	child := newTestNode(DefaultStyle())
	child.style.Width = Fixed(8)
	child.style.MaxHeight = Fixed(6)
	parent.AddChild(child)

	result := calc(parent, 100, 100)

	if got := result.Children[0].Rect.Height; got != 6 {
		t.Errorf("Height = %d, want 6 (max wins over stretch)", got)
	}
}

func TestAlign_SelfOverridesItems(t *testing.T) {
	parent := newFlexRow(30, 10)
	parent.style.AlignItems = AlignStart

	plain := newSizedNode(8, 4)
	end := newSizedNode(8, 4)
	alignEnd := AlignEnd
	end.style.AlignSelf = &alignEnd
	parent.AddChild(plain, end)

	result := calc(parent, 100, 100)

	if got := result.Children[0].Rect.Y; got != 0 {
		t.Errorf("plain child Y = %d, want 0", got)
	}
	if got := result.Children[1].Rect.Y; got != 6 {
		t.Errorf("AlignSelf child Y = %d, want 6", got)
	}
}

func TestAlign_ColumnCrossAxisIsHorizontal(t *testing.T) {
	parent := newFlexRow(20, 20)
	parent.style.Direction = Column
	parent.style.AlignItems = AlignCenter
	parent.AddChild(newSizedNode(6, 4))

	result := calc(parent, 100, 100)

	if got := result.Children[0].Rect.X; got != 7 {
		t.Errorf("X = %d, want 7 (centered in 20)", got)
	}
}
