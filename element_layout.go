package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/cellflow/tui/internal/layout"
)

// --- Implement Layoutable and ContentSizer ---

// LayoutStyle returns the layout style properties for this element.
// If the element has a border, padding is increased so children and text
// are placed inside it: a border takes one cell on each side.
func (e *Element) LayoutStyle() LayoutStyle {
	style := e.style
	if e.border != BorderNone {
		style.Padding.Top++
		style.Padding.Right++
		style.Padding.Bottom++
		style.Padding.Left++
	}
	return style
}

// LayoutChildren returns the children to be laid out.
func (e *Element) LayoutChildren() []Layoutable {
	result := make([]Layoutable, len(e.children))
	for i, child := range e.children {
		result[i] = child
	}
	return result
}

// ContentSize returns the natural content-based dimensions of this element.
// For text elements this is the measured text block; for containers it is
// aggregated from the children along the container's axes. Absolutely
// positioned children are out of flow and contribute nothing.
func (e *Element) ContentSize(availableWidth int) (Size, error) {
	var content Size

	switch {
	case e.text != "":
		content = measureText(e.text)
	case len(e.children) > 0:
		content = e.childrenContentSize(availableWidth)
	default:
		return e.chrome(Size{}), nil
	}

	return e.chrome(content), nil
}

// chrome adds the element's own padding and border cells around a content size.
func (e *Element) chrome(content Size) Size {
	content.Width += e.style.Padding.Horizontal()
	content.Height += e.style.Padding.Vertical()
	if e.border != BorderNone {
		content.Width += 2
		content.Height += 2
	}
	return content
}

// childrenContentSize aggregates the intrinsic sizes of in-flow children:
// summed along the container's stacking axis, maximized across the other.
// Block containers stack vertically like a column.
func (e *Element) childrenContentSize(availableWidth int) Size {
	isRow := e.style.Display == DisplayFlex && e.style.Direction == Row

	var agg Size
	placed := 0
	for _, child := range e.children {
		if child.style.Position == PositionAbsolute {
			continue
		}
		cw, ch := child.intrinsicSize(availableWidth)
		mh := child.style.Margin.Horizontal()
		mv := child.style.Margin.Vertical()

		if isRow {
			agg.Width += cw + mh
			agg.Height = max(agg.Height, ch+mv)
		} else {
			agg.Width = max(agg.Width, cw+mh)
			agg.Height += ch + mv
		}
		if placed > 0 {
			if isRow {
				agg.Width += e.style.Gap
			} else {
				agg.Height += e.style.Gap
			}
		}
		placed++
	}
	return agg
}

// intrinsicSize resolves a child's contribution to its parent's content
// size: explicit dimensions win, content fills in the rest.
func (e *Element) intrinsicSize(availableWidth int) (width, height int) {
	content, _ := e.ContentSize(availableWidth)
	width = e.style.Width.Resolve(availableWidth, content.Width)
	height = e.style.Height.Resolve(0, content.Height)
	return width, height
}

// measureText returns the display size of a text block in terminal cells.
// Width is the widest line measured with go-runewidth, so wide (CJK) runes
// count as two cells; height is the line count.
func measureText(text string) Size {
	lines := strings.Split(text, "\n")
	width := 0
	for _, line := range lines {
		width = max(width, runewidth.StringWidth(line))
	}
	return Size{Width: width, Height: len(lines)}
}

// NodeFor returns the layout node computed for this element within a
// calculated tree, or nil if the element is not part of that tree.
func (e *Element) NodeFor(root *LayoutNode) *LayoutNode {
	var found *LayoutNode
	root.Walk(func(n *layout.Node) {
		if el, ok := n.Element.(*Element); ok && el == e && found == nil {
			found = n
		}
	})
	return found
}
