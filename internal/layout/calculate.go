package layout

// Calculate computes a fresh layout tree for root within ctx. The input
// tree is read-only during the call; the returned tree is owned entirely by
// the caller. Calling twice with an unchanged tree and context yields
// identical output.
func (e *Engine) Calculate(root Layoutable, ctx Context) *Node {
	if root == nil {
		return nil
	}

	// The root resolves its width/height against the available space. This
	// is different from child nodes, which receive their size from the
	// parent's box algorithm.
	style := root.LayoutStyle()
	width := style.Width.Resolve(ctx.Available.Width, ctx.Available.Width)
	height := style.Height.Resolve(ctx.Available.Height, ctx.Available.Height)

	slot := NewRect(ctx.Parent.X, ctx.Parent.Y, width, height)
	return e.layoutNode(root, slot, ctx)
}

// layoutNode computes the box for one element within the slot its parent
// allocated, lays out its children, and returns the resulting node.
func (e *Engine) layoutNode(el Layoutable, slot Rect, ctx Context) *Node {
	style := el.LayoutStyle()

	borderBox := computeBorderBox(style, slot)
	contentRect := borderBox.Inset(style.Padding)

	node := &Node{
		Element:     el,
		Rect:        borderBox,
		ContentRect: contentRect,
		ZIndex:      style.ZIndex,
	}

	children := el.LayoutChildren()
	if len(children) == 0 {
		return node
	}

	childCtx := Context{
		Viewport:   ctx.Viewport,
		Parent:     borderBox,
		Available:  contentRect.Size(),
		Positioned: ctx.Positioned,
	}
	// A non-static node becomes the positioned ancestor for its subtree.
	if style.Position != Static {
		childCtx.Positioned = contentRect
	}

	// Absolute children reserve no space in flow; only in-flow children go
	// through the container's box algorithm.
	flow := make([]Layoutable, 0, len(children))
	flowIdx := make([]int, 0, len(children))
	for i, child := range children {
		if child.LayoutStyle().Position != Absolute {
			flow = append(flow, child)
			flowIdx = append(flowIdx, i)
		}
	}

	var flowSlots []Rect
	switch style.Display {
	case Flex:
		flowSlots = e.flexSlots(style, contentRect, flow)
	default: // Block, and any unrecognized display mode
		flowSlots = e.blockSlots(style, contentRect, flow)
	}

	slots := make([]Rect, len(children))
	for i, idx := range flowIdx {
		slots[idx] = flowSlots[i]
	}
	for i, child := range children {
		cs := child.LayoutStyle()
		switch cs.Position {
		case Absolute:
			slots[i] = e.absoluteSlot(child, cs, childCtx.Positioned)
		case Relative:
			// Displacing the slot before recursion carries the offset
			// into the whole subtree's coordinate frame. Siblings keep
			// their flow positions; the flow slots above never saw it.
			dx, dy := relativeOffset(cs, childCtx.Available)
			slots[i] = slots[i].Translate(dx, dy)
		}
	}

	node.Children = make([]*Node, len(children))
	for i, child := range children {
		cctx := childCtx
		cctx.Available = slots[i].Size()
		node.Children[i] = e.layoutNode(child, slots[i], cctx)
	}
	return node
}

// computeBorderBox clamps the parent-allocated slot by this node's min/max
// constraints. Width/Height were already consumed by the parent's box
// algorithm when sizing the slot, so only min/max apply here. Dimensions
// never go negative.
func computeBorderBox(style Style, slot Rect) Rect {
	width := clamp(slot.Width, resolveMin(style.MinWidth, slot.Width), resolveMax(style.MaxWidth, slot.Width))
	height := clamp(slot.Height, resolveMin(style.MinHeight, slot.Height), resolveMax(style.MaxHeight, slot.Height))

	return Rect{
		X:      slot.X,
		Y:      slot.Y,
		Width:  max(0, width),
		Height: max(0, height),
	}
}
