package layout

// flexItem holds intermediate main/cross-axis state for one in-flow child.
// This is per-call scratch state; elements are never written to.
type flexItem struct {
	el    Layoutable
	style Style
	index int // position within the flow slice

	baseSize    int // main-axis size before flexible distribution
	mainSize    int // resolved main-axis border-box size
	crossSize   int // resolved cross-axis border-box size
	mainPos     int // margin-box offset from the content origin, main axis
	crossPos    int // margin-box offset from the line start, cross axis
	mainMargin  int
	crossMargin int
	minMain     int
	maxMain     int
	grow        float64
	shrink      float64
	frozen      bool // size pinned by a min/max clamp during distribution
}

// flexSlots runs the flex algorithm for a container's in-flow children and
// returns one border-box slot per child, in order. The content rect has
// already been clamped by the container's own min/max constraints, so that
// is the space the children compete for.
func (e *Engine) flexSlots(style Style, contentRect Rect, flow []Layoutable) []Rect {
	if len(flow) == 0 {
		return nil
	}

	dir := style.Direction
	isRow := dir != Column
	mainAvail := contentRect.Size().Main(dir)
	crossAvail := contentRect.Size().Cross(dir)

	items := make([]flexItem, len(flow))
	for i, child := range flow {
		cs := child.LayoutStyle()
		it := &items[i]
		it.el = child
		it.style = cs
		it.index = i

		if isRow {
			it.mainMargin = cs.Margin.Horizontal()
			it.crossMargin = cs.Margin.Vertical()
		} else {
			it.mainMargin = cs.Margin.Vertical()
			it.crossMargin = cs.Margin.Horizontal()
		}

		avail := Size{
			Width:  contentRect.Width - cs.Margin.Horizontal(),
			Height: contentRect.Height - cs.Margin.Vertical(),
		}
		intrinsic := e.resolveIntrinsicSize(child, avail)
		if isRow {
			it.baseSize = intrinsic.Width
			it.crossSize = intrinsic.Height
		} else {
			it.baseSize = intrinsic.Height
			it.crossSize = intrinsic.Width
		}

		minV, maxV := mainConstraints(cs, dir)
		it.minMain = resolveMin(minV, mainAvail)
		it.maxMain = resolveMax(maxV, mainAvail)

		// Negative flex factors are nonsensical; treat them as zero.
		it.grow = max(0, cs.FlexGrow)
		it.shrink = max(0, cs.FlexShrink)
	}

	lines := collectLines(items, style.FlexWrap, mainAvail, style.Gap)

	slots := make([]Rect, len(flow))
	crossCursor := 0
	for li, line := range lines {
		resolveFlexibleLengths(line, mainAvail, style.Gap)

		lineCross := lineCrossSize(line, style.FlexWrap, crossAvail)
		alignLine(line, style, lineCross, dir)

		used := style.Gap * (len(line) - 1)
		for _, it := range line {
			used += it.mainSize + it.mainMargin
		}
		lead, between := justifyLine(style.JustifyContent, mainAvail-used, len(line))

		pos := lead
		for i, it := range line {
			it.mainPos = pos
			pos += it.mainSize + it.mainMargin
			if i < len(line)-1 {
				pos += style.Gap + between[i]
			}
		}

		for _, it := range line {
			if isRow {
				slots[it.index] = Rect{
					X:      contentRect.X + it.mainPos + it.style.Margin.Left,
					Y:      contentRect.Y + crossCursor + it.crossPos + it.style.Margin.Top,
					Width:  it.mainSize,
					Height: it.crossSize,
				}
			} else {
				slots[it.index] = Rect{
					X:      contentRect.X + crossCursor + it.crossPos + it.style.Margin.Left,
					Y:      contentRect.Y + it.mainPos + it.style.Margin.Top,
					Width:  it.crossSize,
					Height: it.mainSize,
				}
			}
		}

		crossCursor += lineCross
		if li < len(lines)-1 {
			crossCursor += style.Gap
		}
	}

	return slots
}

// collectLines greedily packs items into flex lines. With NoWrap all items
// share one line; with Wrap an item starts a new line when placing it (plus
// gap) would exceed the main-axis space, unless the line is still empty.
func collectLines(items []flexItem, wrap FlexWrap, mainAvail, gap int) [][]*flexItem {
	if wrap != Wrap {
		line := make([]*flexItem, len(items))
		for i := range items {
			line[i] = &items[i]
		}
		return [][]*flexItem{line}
	}

	var lines [][]*flexItem
	var line []*flexItem
	used := 0
	for i := range items {
		it := &items[i]
		outer := it.baseSize + it.mainMargin
		needed := outer
		if len(line) > 0 {
			needed += gap
		}
		if len(line) > 0 && used+needed > mainAvail {
			lines = append(lines, line)
			line = []*flexItem{it}
			used = outer
			continue
		}
		line = append(line, it)
		used += needed
	}
	if len(line) > 0 {
		lines = append(lines, line)
	}
	return lines
}

// resolveFlexibleLengths distributes the line's free space by flex-grow
// weight, or its deficit by flex-shrink weight scaled by base size, clamping
// every item to its min/max main size. A clamped item freezes at the clamp
// and the difference spills over to the items still flexible; each extra
// pass freezes at least one item, so the loop is bounded by the line length.
func resolveFlexibleLengths(line []*flexItem, mainAvail, gap int) {
	fixed := gap * (len(line) - 1)
	for _, it := range line {
		it.mainSize = it.baseSize
		it.frozen = false
		fixed += it.mainMargin
	}

	used := fixed
	for _, it := range line {
		used += it.baseSize
	}
	free := mainAvail - used
	if free == 0 {
		return
	}
	growing := free > 0

	// Items without the relevant flex factor cannot change size.
	for _, it := range line {
		if (growing && it.grow <= 0) || (!growing && it.shrink <= 0) {
			it.frozen = true
		}
	}

	for pass := 0; pass < len(line); pass++ {
		open := make([]*flexItem, 0, len(line))
		for _, it := range line {
			if !it.frozen {
				open = append(open, it)
			}
		}
		if len(open) == 0 {
			return
		}

		// Remaining space counts frozen items at their clamped size and
		// open items at their base size.
		remaining := mainAvail - fixed
		for _, it := range line {
			if it.frozen {
				remaining -= it.mainSize
			} else {
				remaining -= it.baseSize
			}
		}
		if growing && remaining <= 0 {
			return
		}
		if !growing && remaining >= 0 {
			return
		}

		weights := make([]float64, len(open))
		total := 0.0
		for i, it := range open {
			if growing {
				weights[i] = it.grow
			} else {
				weights[i] = it.shrink * float64(it.baseSize)
			}
			total += weights[i]
		}
		if total <= 0 {
			return
		}

		shares := apportion(remaining, weights)
		clampedAny := false
		for i, it := range open {
			target := it.baseSize + shares[i]
			size := max(0, clamp(target, it.minMain, it.maxMain))
			it.mainSize = size
			if size != target {
				it.frozen = true
				clampedAny = true
			}
		}
		if !clampedAny {
			return
		}
	}
}

// lineCrossSize returns the cross-axis extent of a line: the container's
// full cross space for an unwrapped container, else the largest item
// (including its cross margins) on the line.
func lineCrossSize(line []*flexItem, wrap FlexWrap, crossAvail int) int {
	if wrap != Wrap {
		return crossAvail
	}
	size := 0
	for _, it := range line {
		size = max(size, it.crossSize+it.crossMargin)
	}
	return size
}

// alignLine positions every item of a line on the cross axis. Stretch fills
// the line unless the item has an explicit cross size, in which case the
// item keeps that size and sits at the line's start.
func alignLine(line []*flexItem, style Style, lineCross int, dir Direction) {
	for _, it := range line {
		align := style.AlignItems
		if it.style.AlignSelf != nil {
			align = *it.style.AlignSelf
		}

		switch {
		case align == AlignStretch && crossValue(it.style, dir).IsAuto():
			it.crossSize = max(0, lineCross-it.crossMargin)
			it.crossPos = 0
		case align == AlignEnd:
			it.crossPos = lineCross - it.crossSize - it.crossMargin
		case align == AlignCenter:
			it.crossPos = (lineCross - it.crossSize - it.crossMargin) / 2
		default: // AlignStart; AlignStretch with an explicit cross size
			it.crossPos = 0
		}
	}
}

// justifyLine returns the leading offset and the extra spacing inserted
// after each item (on top of gap) for the given justify mode. Free space
// that does not divide evenly is spread by largest-remainder allocation,
// earlier slots first. Non-positive free space packs at the start.
func justifyLine(justify Justify, free, n int) (lead int, between []int) {
	between = make([]int, max(0, n-1))
	if free <= 0 || n == 0 {
		return 0, between
	}

	switch justify {
	case JustifyEnd:
		lead = free
	case JustifyCenter:
		lead = free / 2
	case JustifySpaceBetween:
		if n == 1 {
			return 0, between // single item falls back to start
		}
		copy(between, apportionEqual(free, n-1))
	case JustifySpaceAround:
		// One unit per item, half a unit before and after each.
		shares := apportionEqual(free, n)
		lead = shares[0] / 2
		for i := 0; i < n-1; i++ {
			between[i] = shares[i] - shares[i]/2 + shares[i+1]/2
		}
	case JustifySpaceEvenly:
		// n+1 units: before, between each pair, and after.
		shares := apportionEqual(free, n+1)
		lead = shares[0]
		for i := 0; i < n-1; i++ {
			between[i] = shares[i+1]
		}
	default: // JustifyStart and anything unrecognized
	}
	return lead, between
}

// mainConstraints returns the min/max size values for the main axis.
func mainConstraints(style Style, dir Direction) (minV, maxV Value) {
	if dir == Column {
		return style.MinHeight, style.MaxHeight
	}
	return style.MinWidth, style.MaxWidth
}

// crossValue returns the style's size value on the cross axis.
func crossValue(style Style, dir Direction) Value {
	if dir == Column {
		return style.Width
	}
	return style.Height
}
