// Package layout implements a pure-Go flexbox-style layout engine for
// terminal UIs operating on integer character cells.
//
// It supports block and flex containers, row/column directions, wrapping,
// grow/shrink distribution with min/max clamping, the six justify and four
// align modes, gap, padding, margin, relative and absolute positioning, and
// z-index annotation for paint ordering. Types are re-exported through the
// root tui package for public consumption.
//
// The main entry point is [Calculate], which takes a read-only [Layoutable]
// tree and returns a freshly allocated [Node] tree with absolute [Rect]
// bounds for each element. The engine keeps no state between calls, so a
// shared [Engine] is safe for concurrent use as long as no caller mutates an
// input tree mid-call.
package layout
