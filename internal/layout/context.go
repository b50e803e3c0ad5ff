package layout

// Context carries the inputs for laying out one node. It is passed by value
// down the recursion; deriving a child context never mutates the parent's,
// so sibling subtrees cannot observe each other's state.
type Context struct {
	// Viewport is the absolute bounds of the layout root.
	Viewport Rect

	// Parent is the resolved border box of the parent container.
	Parent Rect

	// Available is the space the parent offers this node.
	Available Size

	// Positioned is the content box of the nearest ancestor whose position
	// is not Static, or the viewport if there is none. Absolute children
	// resolve their offsets against it.
	Positioned Rect
}

// RootContext returns the context for laying out a tree root into a
// viewport of the given dimensions (typically the terminal size).
func RootContext(width, height int) Context {
	vp := NewRect(0, 0, width, height)
	return Context{
		Viewport:   vp,
		Parent:     vp,
		Available:  Size{Width: width, Height: height},
		Positioned: vp,
	}
}
