package layout

// blockSlots stacks in-flow children along the vertical axis starting at the
// container's content origin. Each child spans the container's available
// width unless it has an explicit width; its height is explicit-or-intrinsic.
// Gap is inserted between consecutive children, matching a single-item-per-
// line column flex for spacing purposes.
func (e *Engine) blockSlots(style Style, contentRect Rect, flow []Layoutable) []Rect {
	slots := make([]Rect, len(flow))

	y := 0
	for i, child := range flow {
		cs := child.LayoutStyle()
		avail := Size{
			Width:  contentRect.Width - cs.Margin.Horizontal(),
			Height: contentRect.Height - cs.Margin.Vertical(),
		}
		intrinsic := e.resolveIntrinsicSize(child, avail)

		width := intrinsic.Width
		if cs.Width.IsAuto() {
			// Full available width, still honoring the child's min/max.
			width = clamp(avail.Width, resolveMin(cs.MinWidth, avail.Width), resolveMax(cs.MaxWidth, avail.Width))
		}

		slots[i] = Rect{
			X:      contentRect.X + cs.Margin.Left,
			Y:      contentRect.Y + y + cs.Margin.Top,
			Width:  max(0, width),
			Height: intrinsic.Height,
		}

		y += intrinsic.Height + cs.Margin.Vertical()
		if i < len(flow)-1 {
			y += style.Gap
		}
	}

	return slots
}
