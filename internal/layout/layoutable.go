package layout

// Layoutable is the read-only view of an element the engine lays out.
// The engine never mutates the input tree; computed geometry is returned as
// a fresh [Node] tree instead of being written back onto elements.
type Layoutable interface {
	// LayoutStyle returns the layout style properties for this element.
	LayoutStyle() Style

	// LayoutChildren returns the children to be laid out, in order.
	LayoutChildren() []Layoutable
}

// ContentSizer is optionally implemented by elements whose natural size
// derives from their content, such as text. availableWidth is the width the
// parent can offer; implementations may ignore it.
//
// The engine invokes ContentSize only when the element has no explicit size
// on the corresponding axis. A returned error, or a panic, is treated as
// zero size for that element and logged; it never aborts the layout pass.
type ContentSizer interface {
	ContentSize(availableWidth int) (Size, error)
}
