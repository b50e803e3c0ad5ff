// Package tui provides a flexbox-style layout engine for terminal UIs.
//
// Users build a tree of elements annotated with CSS-inspired layout
// properties (block/flex display, direction, wrap, justify/align, gap,
// grow/shrink, min/max constraints, relative/absolute positioning, z-index)
// and call Calculate to obtain a tree of integer-cell bounding boxes for
// character-grid rendering. The engine itself lives in internal/layout;
// this package re-exports its types and adds the element tree and a simple
// z-ordered painter.
package tui
