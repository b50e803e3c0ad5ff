package layout

// relativeOffset computes the visual displacement for a relatively
// positioned node. Top takes precedence over Bottom and Left over Right
// when both are set. Percentages resolve against the parent's available
// space. The node's flow slot (and therefore its siblings) is unaffected.
func relativeOffset(style Style, avail Size) (dx, dy int) {
	switch {
	case !style.Left.IsAuto():
		dx = style.Left.Resolve(avail.Width, 0)
	case !style.Right.IsAuto():
		dx = -style.Right.Resolve(avail.Width, 0)
	}
	switch {
	case !style.Top.IsAuto():
		dy = style.Top.Resolve(avail.Height, 0)
	case !style.Bottom.IsAuto():
		dy = -style.Bottom.Resolve(avail.Height, 0)
	}
	return dx, dy
}

// absoluteSlot places a child removed from normal flow against the content
// box of its nearest positioned ancestor. Size is explicit-or-intrinsic,
// never flex-distributed. Top wins over Bottom and Left over Right; with
// neither set on an axis the child sits at the ancestor's origin.
func (e *Engine) absoluteSlot(child Layoutable, style Style, origin Rect) Rect {
	size := e.resolveIntrinsicSize(child, origin.Size())

	x := origin.X
	switch {
	case !style.Left.IsAuto():
		x = origin.X + style.Left.Resolve(origin.Width, 0)
	case !style.Right.IsAuto():
		x = origin.Right() - style.Right.Resolve(origin.Width, 0) - size.Width
	}

	y := origin.Y
	switch {
	case !style.Top.IsAuto():
		y = origin.Y + style.Top.Resolve(origin.Height, 0)
	case !style.Bottom.IsAuto():
		y = origin.Bottom() - style.Bottom.Resolve(origin.Height, 0) - size.Height
	}

	return Rect{X: x, Y: y, Width: size.Width, Height: size.Height}
}
