// Package cli implements the cellflow command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// appName is the binary name used in help output.
const appName = "cellflow"

// Version is the release version, set via ldflags:
//
//	go build -ldflags "-X github.com/cellflow/tui/internal/cli.Version=v1.0.0"
var Version = "dev"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance logging to w at the given level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: false,
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Cellflow lays out element trees on a terminal cell grid",
		Long:         `Cellflow computes block and flexbox layout for element trees described in TOML scene files, printing the resulting cell-grid geometry or a rendered preview.`,
		Version:      Version,
		SilenceUsage: true,
	}

	root.AddCommand(c.layoutCommand())

	return root
}
