package layout

import "github.com/charmbracelet/log"

// Engine holds layout configuration. It carries no per-call mutable state,
// so a single Engine may be shared across goroutines as long as each call's
// input tree is not mutated during the call.
type Engine struct {
	// Logger receives out-of-band diagnostics, currently content-size
	// callback failures. Nil disables diagnostics.
	Logger *log.Logger
}

// New returns an Engine reporting diagnostics to the given logger.
// Pass nil to silence diagnostics.
func New(logger *log.Logger) *Engine {
	return &Engine{Logger: logger}
}

// Default is the shared engine used by the package-level Calculate
// functions. It logs diagnostics through log.Default.
var Default = New(log.Default())

// Calculate computes layout for the tree rooted at root within a viewport
// of the given dimensions, using the shared default engine.
func Calculate(root Layoutable, availableWidth, availableHeight int) *Node {
	return Default.Calculate(root, RootContext(availableWidth, availableHeight))
}
