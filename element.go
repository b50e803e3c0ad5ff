package tui

var (
	_ Layoutable   = (*Element)(nil)
	_ ContentSizer = (*Element)(nil)
)

// Element is a node of the retained element tree users build. It owns its
// children, carries layout style plus a few visual properties, and is
// consumed read-only by the layout engine: computing a layout never mutates
// an Element.
type Element struct {
	// Tree structure (single source of truth)
	children []*Element
	parent   *Element

	// Layout properties
	style LayoutStyle

	// Visual properties
	border BorderStyle
	fill   rune // background fill for the painter; 0 = transparent

	// Text content; measured for intrinsic sizing when no explicit size is set
	text string

	// Optional identifier, used by scene files and debug dumps
	name string
}

// New creates an Element with default layout style, configured by opts.
func New(opts ...Option) *Element {
	e := &Element{style: DefaultLayoutStyle()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// AddChild appends children to this Element.
func (e *Element) AddChild(children ...*Element) {
	for _, child := range children {
		child.parent = e
		e.children = append(e.children, child)
	}
}

// RemoveChild removes a child from this Element.
// Returns true if the child was found and removed.
func (e *Element) RemoveChild(child *Element) bool {
	for i, c := range e.children {
		if c == child {
			e.children = append(e.children[:i], e.children[i+1:]...)
			child.parent = nil
			return true
		}
	}
	return false
}

// Children returns the element's children in order.
func (e *Element) Children() []*Element {
	return e.children
}

// Parent returns the element's parent, or nil for a root.
func (e *Element) Parent() *Element {
	return e.parent
}

// Name returns the element's identifier, if one was set.
func (e *Element) Name() string {
	return e.name
}

// Text returns the element's text content.
func (e *Element) Text() string {
	return e.text
}

// SetText replaces the element's text content.
func (e *Element) SetText(text string) {
	e.text = text
}

// Border returns the element's border style.
func (e *Element) Border() BorderStyle {
	return e.border
}

// Style returns a copy of the element's layout style.
func (e *Element) Style() LayoutStyle {
	return e.style
}

// SetStyle replaces the element's layout style.
func (e *Element) SetStyle(style LayoutStyle) {
	e.style = style
}

// Calculate computes layout for this element tree within a viewport of the
// given dimensions and returns the computed node tree.
func (e *Element) Calculate(availableWidth, availableHeight int) *LayoutNode {
	return Calculate(e, availableWidth, availableHeight)
}
