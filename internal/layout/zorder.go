package layout

import "sort"

// PaintOrder returns every node of the tree flattened into the order a
// renderer should paint them: ascending z-index, with tree (input) order
// preserved between nodes of equal z-index. Parents still precede their
// children at the same z-index, so backgrounds paint under content.
func (n *Node) PaintOrder() []*Node {
	if n == nil {
		return nil
	}
	var nodes []*Node
	n.Walk(func(node *Node) {
		nodes = append(nodes, node)
	})
	sort.SliceStable(nodes, func(i, j int) bool {
		return nodes[i].ZIndex < nodes[j].ZIndex
	})
	return nodes
}

// NodeAt returns the topmost node whose bounds contain (x, y): the last hit
// in paint order. Returns nil if the point is outside every node.
func (n *Node) NodeAt(x, y int) *Node {
	order := n.PaintOrder()
	for i := len(order) - 1; i >= 0; i-- {
		if order[i].Rect.Contains(x, y) {
			return order[i]
		}
	}
	return nil
}
