// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package tui

import "github.com/cellflow/tui/internal/layout"

// Display selects which box algorithm lays out a container's children.
type Display = layout.Display

const (
	DisplayBlock = layout.Block
	DisplayFlex  = layout.Flex
)

// Direction specifies the main axis for laying out flex children.
type Direction = layout.Direction

const (
	Row    = layout.Row
	Column = layout.Column
)

// FlexWrap controls whether flex children may break onto additional lines.
type FlexWrap = layout.FlexWrap

const (
	NoWrap = layout.NoWrap
	Wrap   = layout.Wrap
)

// Justify specifies how children are distributed along the main axis.
type Justify = layout.Justify

const (
	JustifyStart        = layout.JustifyStart
	JustifyEnd          = layout.JustifyEnd
	JustifyCenter       = layout.JustifyCenter
	JustifySpaceBetween = layout.JustifySpaceBetween
	JustifySpaceAround  = layout.JustifySpaceAround
	JustifySpaceEvenly  = layout.JustifySpaceEvenly
)

// Align specifies how children are aligned along the cross axis.
type Align = layout.Align

const (
	AlignStart   = layout.AlignStart
	AlignEnd     = layout.AlignEnd
	AlignCenter  = layout.AlignCenter
	AlignStretch = layout.AlignStretch
)

// Position specifies how a node participates in flow.
type Position = layout.Position

const (
	PositionStatic   = layout.Static
	PositionRelative = layout.Relative
	PositionAbsolute = layout.Absolute
)

// Value represents a dimension value (fixed, percent, or auto).
type Value = layout.Value

// Unit specifies how a Value is interpreted.
type Unit = layout.Unit

const (
	UnitAuto    = layout.UnitAuto
	UnitFixed   = layout.UnitFixed
	UnitPercent = layout.UnitPercent
)

// LayoutStyle holds the layout properties for a node.
type LayoutStyle = layout.Style

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = layout.Edges

// Size represents a width/height pair.
type Size = layout.Size

// Point represents an x/y coordinate.
type Point = layout.Point

// LayoutNode is one box of a computed layout tree.
type LayoutNode = layout.Node

// LayoutContext carries the inputs for laying out a tree.
type LayoutContext = layout.Context

// Engine holds layout configuration and is safe to share across callers.
type Engine = layout.Engine

// Layoutable is the interface the layout engine consumes.
type Layoutable = layout.Layoutable

// ContentSizer supplies content-derived intrinsic sizes to the engine.
type ContentSizer = layout.ContentSizer

// Fixed creates a Value with a fixed character count.
func Fixed(n int) Value {
	return layout.Fixed(n)
}

// Percent creates a Value representing a percentage of available space.
func Percent(p float64) Value {
	return layout.Percent(p)
}

// Auto creates a Value that sizes to content.
func Auto() Value {
	return layout.Auto()
}

// DefaultLayoutStyle returns a Style with default values.
func DefaultLayoutStyle() LayoutStyle {
	return layout.DefaultStyle()
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return layout.NewRect(x, y, width, height)
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n int) Edges {
	return layout.EdgeAll(n)
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal (left/right) values.
func EdgeSymmetric(v, h int) Edges {
	return layout.EdgeSymmetric(v, h)
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l int) Edges {
	return layout.EdgeTRBL(t, r, b, l)
}

// RootContext returns the layout context for a viewport of the given size.
func RootContext(width, height int) LayoutContext {
	return layout.RootContext(width, height)
}

// Calculate performs layout on the given tree within a viewport of the
// given dimensions and returns the computed node tree.
func Calculate(root Layoutable, availableWidth, availableHeight int) *LayoutNode {
	return layout.Calculate(root, availableWidth, availableHeight)
}
