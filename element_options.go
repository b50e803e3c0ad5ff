package tui

// Option configures an Element.
type Option func(*Element)

// --- Dimension Options ---

// WithWidth sets a fixed width in terminal cells.
func WithWidth(cells int) Option {
	return func(e *Element) {
		e.style.Width = Fixed(cells)
	}
}

// WithWidthPercent sets width as a percentage of parent's available width.
func WithWidthPercent(percent float64) Option {
	return func(e *Element) {
		e.style.Width = Percent(percent)
	}
}

// WithHeight sets a fixed height in terminal cells.
func WithHeight(cells int) Option {
	return func(e *Element) {
		e.style.Height = Fixed(cells)
	}
}

// WithHeightPercent sets height as a percentage of parent's available height.
func WithHeightPercent(percent float64) Option {
	return func(e *Element) {
		e.style.Height = Percent(percent)
	}
}

// WithSize sets both width and height in terminal cells.
func WithSize(width, height int) Option {
	return func(e *Element) {
		e.style.Width = Fixed(width)
		e.style.Height = Fixed(height)
	}
}

// WithMinWidth sets the minimum width in terminal cells.
func WithMinWidth(cells int) Option {
	return func(e *Element) {
		e.style.MinWidth = Fixed(cells)
	}
}

// WithMinHeight sets the minimum height in terminal cells.
func WithMinHeight(cells int) Option {
	return func(e *Element) {
		e.style.MinHeight = Fixed(cells)
	}
}

// WithMaxWidth sets the maximum width in terminal cells.
func WithMaxWidth(cells int) Option {
	return func(e *Element) {
		e.style.MaxWidth = Fixed(cells)
	}
}

// WithMaxHeight sets the maximum height in terminal cells.
func WithMaxHeight(cells int) Option {
	return func(e *Element) {
		e.style.MaxHeight = Fixed(cells)
	}
}

// --- Container Options ---

// WithDisplay selects the box algorithm for laying out children.
func WithDisplay(d Display) Option {
	return func(e *Element) {
		e.style.Display = d
	}
}

// WithDirection sets the main axis direction and implies flex display.
func WithDirection(d Direction) Option {
	return func(e *Element) {
		e.style.Display = DisplayFlex
		e.style.Direction = d
	}
}

// WithWrap sets whether flex children may break onto additional lines.
func WithWrap(w FlexWrap) Option {
	return func(e *Element) {
		e.style.FlexWrap = w
	}
}

// WithJustify sets how children are distributed along the main axis.
func WithJustify(j Justify) Option {
	return func(e *Element) {
		e.style.JustifyContent = j
	}
}

// WithAlign sets how children are positioned on the cross axis.
func WithAlign(a Align) Option {
	return func(e *Element) {
		e.style.AlignItems = a
	}
}

// WithGap sets the space between children on the main axis and between
// wrapped lines.
func WithGap(cells int) Option {
	return func(e *Element) {
		e.style.Gap = cells
	}
}

// --- Flex Item Options ---

// WithGrow sets how much this element grows relative to its siblings.
func WithGrow(factor float64) Option {
	return func(e *Element) {
		e.style.FlexGrow = factor
	}
}

// WithShrink sets how much this element shrinks relative to its siblings.
func WithShrink(factor float64) Option {
	return func(e *Element) {
		e.style.FlexShrink = factor
	}
}

// WithAlignSelf overrides the parent's align-items for this element.
func WithAlignSelf(a Align) Option {
	return func(e *Element) {
		e.style.AlignSelf = &a
	}
}

// --- Positioning Options ---

// WithPosition sets how the element participates in flow.
func WithPosition(p Position) Option {
	return func(e *Element) {
		e.style.Position = p
	}
}

// WithTop sets the top offset for relative or absolute positioning.
func WithTop(cells int) Option {
	return func(e *Element) {
		e.style.Top = Fixed(cells)
	}
}

// WithRight sets the right offset for relative or absolute positioning.
func WithRight(cells int) Option {
	return func(e *Element) {
		e.style.Right = Fixed(cells)
	}
}

// WithBottom sets the bottom offset for relative or absolute positioning.
func WithBottom(cells int) Option {
	return func(e *Element) {
		e.style.Bottom = Fixed(cells)
	}
}

// WithLeft sets the left offset for relative or absolute positioning.
func WithLeft(cells int) Option {
	return func(e *Element) {
		e.style.Left = Fixed(cells)
	}
}

// WithZIndex sets the paint order for the renderer. Higher values paint on
// top; equal values keep tree order. Geometry is unaffected.
func WithZIndex(z int) Option {
	return func(e *Element) {
		e.style.ZIndex = z
	}
}

// --- Spacing Options ---

// WithPadding sets interior spacing between the border box and children.
func WithPadding(edges Edges) Option {
	return func(e *Element) {
		e.style.Padding = edges
	}
}

// WithMargin sets exterior spacing around the element.
func WithMargin(edges Edges) Option {
	return func(e *Element) {
		e.style.Margin = edges
	}
}

// --- Content Options ---

// WithText sets the element's text content, measured for intrinsic sizing.
func WithText(text string) Option {
	return func(e *Element) {
		e.text = text
	}
}

// WithBorder draws a one-cell border around the element.
func WithBorder(style BorderStyle) Option {
	return func(e *Element) {
		e.border = style
	}
}

// WithFill sets the rune the painter fills the element's box with.
func WithFill(r rune) Option {
	return func(e *Element) {
		e.fill = r
	}
}

// WithName attaches an identifier used by scene files and debug dumps.
func WithName(name string) Option {
	return func(e *Element) {
		e.name = name
	}
}

// WithChildren appends children to the element.
func WithChildren(children ...*Element) Option {
	return func(e *Element) {
		e.AddChild(children...)
	}
}

// WithStyle replaces the element's whole layout style.
func WithStyle(style LayoutStyle) Option {
	return func(e *Element) {
		e.style = style
	}
}
