package layout

// Display selects which box algorithm lays out a container's children.
type Display uint8

const (
	Block Display = iota // Children stacked along the vertical axis
	Flex                 // Children distributed along a main axis
)

// Direction specifies the main axis for laying out flex children.
type Direction uint8

const (
	Row    Direction = iota // Children laid out left-to-right
	Column                  // Children laid out top-to-bottom
)

// FlexWrap controls whether flex children may break onto additional lines.
type FlexWrap uint8

const (
	NoWrap FlexWrap = iota // Single line, items shrink or overflow
	Wrap                   // Break onto a new line when the main axis is full
)

// Justify specifies how children are distributed along the main axis.
type Justify uint8

const (
	JustifyStart        Justify = iota // Pack at start
	JustifyEnd                         // Pack at end
	JustifyCenter                      // Center children
	JustifySpaceBetween                // Even space between, none at edges
	JustifySpaceAround                 // Half-unit space at edges, full between
	JustifySpaceEvenly                 // Equal space between and at edges
)

// Align specifies how children are positioned on the cross axis.
type Align uint8

const (
	AlignStart   Align = iota // Align to start of cross axis
	AlignEnd                  // Align to end of cross axis
	AlignCenter               // Center on cross axis
	AlignStretch              // Stretch to fill the line's cross axis
)

// Position specifies how a node participates in flow and how its offsets
// are interpreted.
type Position uint8

const (
	// Static nodes follow normal flow; offsets are ignored.
	Static Position = iota
	// Relative nodes reserve their flow slot, then the node and its
	// subtree are displaced by the Top/Left (or Bottom/Right) offsets.
	Relative
	// Absolute nodes are removed from flow and placed against the content
	// box of the nearest non-static ancestor (or the layout root).
	Absolute
)

// Style contains all layout properties for a node.
// The zero value of every enum field is its defined default, so an
// unrecognized or unset property degrades to block / row / nowrap /
// flex-start / static rather than failing the layout pass.
type Style struct {
	Display  Display
	Position Position

	// Sizing
	Width     Value
	Height    Value
	MinWidth  Value
	MinHeight Value
	MaxWidth  Value
	MaxHeight Value

	// Offsets for Relative displacement and Absolute placement.
	// Auto means unset. Top takes precedence over Bottom, Left over Right.
	Top    Value
	Right  Value
	Bottom Value
	Left   Value

	// Flex container properties
	Direction      Direction
	FlexWrap       FlexWrap
	JustifyContent Justify
	AlignItems     Align
	Gap            int // Space between children on the main axis, and between wrapped lines

	// Flex item properties
	FlexGrow   float64 // How much to grow relative to siblings
	FlexShrink float64 // How much to shrink relative to siblings (default 1)
	AlignSelf  *Align  // Override parent's AlignItems (nil = inherit)

	// ZIndex is carried onto the output node for the renderer's paint
	// order. It never affects geometry.
	ZIndex int

	// Spacing
	Padding Edges
	Margin  Edges
}

// DefaultStyle returns a Style with default values.
func DefaultStyle() Style {
	return Style{
		Width:      Auto(),
		Height:     Auto(),
		MinWidth:   Fixed(0),
		MinHeight:  Fixed(0),
		MaxWidth:   Auto(), // No maximum
		MaxHeight:  Auto(), // No maximum
		Top:        Auto(),
		Right:      Auto(),
		Bottom:     Auto(),
		Left:       Auto(),
		FlexShrink: 1.0,
	}
}
