package layout

import "math"

// unbounded stands in for a missing max constraint. Large enough to never
// clamp, small enough that summing sizes cannot overflow int.
const unbounded = math.MaxInt32

// resolveIntrinsicSize determines a node's natural size before flexible
// distribution: the explicit size if set, else the element's content size,
// else zero. The result is clamped by the node's min/max constraints and is
// never negative. Pure function of its inputs; the element is not mutated.
func (e *Engine) resolveIntrinsicSize(el Layoutable, available Size) Size {
	style := el.LayoutStyle()

	var content Size
	if style.Width.IsAuto() || style.Height.IsAuto() {
		if sizer, ok := el.(ContentSizer); ok {
			content = e.measure(sizer, available.Width)
		}
	}

	width := content.Width
	if !style.Width.IsAuto() {
		width = style.Width.Resolve(available.Width, 0)
	}
	height := content.Height
	if !style.Height.IsAuto() {
		height = style.Height.Resolve(available.Height, 0)
	}

	width = clamp(width, resolveMin(style.MinWidth, available.Width), resolveMax(style.MaxWidth, available.Width))
	height = clamp(height, resolveMin(style.MinHeight, available.Height), resolveMax(style.MaxHeight, available.Height))

	return Size{Width: max(0, width), Height: max(0, height)}
}

// measure invokes a content-size callback, converting an error or a panic
// into zero size so one misbehaving element cannot abort the layout pass.
func (e *Engine) measure(sizer ContentSizer, availableWidth int) (size Size) {
	defer func() {
		if r := recover(); r != nil {
			size = Size{}
			if e.Logger != nil {
				e.Logger.Warn("content size callback panicked", "panic", r)
			}
		}
	}()

	s, err := sizer.ContentSize(availableWidth)
	if err != nil {
		if e.Logger != nil {
			e.Logger.Warn("content size callback failed", "err", err)
		}
		return Size{}
	}
	return Size{Width: max(0, s.Width), Height: max(0, s.Height)}
}

// resolveMin resolves a minimum size constraint. Auto means no minimum.
func resolveMin(v Value, available int) int {
	return v.Resolve(available, 0)
}

// resolveMax resolves a maximum size constraint. Auto means no maximum.
func resolveMax(v Value, available int) int {
	if v.IsAuto() {
		return unbounded
	}
	return v.Resolve(available, unbounded)
}

// clamp restricts v to the range [minVal, maxVal].
// If minVal > maxVal, minVal wins (matches CSS behavior).
func clamp(v, minVal, maxVal int) int {
	if v < minVal {
		return minVal
	}
	if maxVal >= minVal && v > maxVal {
		return maxVal
	}
	return v
}
