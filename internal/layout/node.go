package layout

// Node is one box of the computed layout tree. Children mirror the input
// element's children in order. A fresh tree is allocated on every Calculate
// call and owned entirely by the caller; the engine keeps no reference to it.
type Node struct {
	// Element is the input element this box was computed for.
	Element Layoutable

	// Rect is the border box in absolute (viewport) coordinates.
	Rect Rect

	// ContentRect is Rect minus padding—the area where children are placed.
	ContentRect Rect

	// ZIndex is the resolved paint order for the renderer. Nodes with equal
	// values keep input order. It has no effect on geometry.
	ZIndex int

	Children []*Node
}

// Walk visits the node and all descendants depth-first in input order.
func (n *Node) Walk(fn func(*Node)) {
	if n == nil {
		return
	}
	fn(n)
	for _, child := range n.Children {
		child.Walk(fn)
	}
}
