package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cellflow/tui"
)

const (
	defaultWidth  = 80 // default viewport width in cells
	defaultHeight = 24 // default viewport height in cells
)

// layoutCommand creates the layout command for computing scene geometry.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		width  int
		height int
		paint  bool
	)

	cmd := &cobra.Command{
		Use:   "layout <scene.toml>",
		Short: "Compute layout for a scene file",
		Long: `Compute layout for a TOML scene file.

The layout command builds the element tree described by the scene file,
computes its geometry within the given viewport, and prints the bounds of
every element. With --paint it renders the scene as a rune grid instead,
drawing fills, borders, and text in z-index order.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.OutOrStdout(), args[0], width, height, paint)
		},
	}

	cmd.Flags().IntVarP(&width, "width", "W", defaultWidth, "viewport width in cells")
	cmd.Flags().IntVarP(&height, "height", "H", defaultHeight, "viewport height in cells")
	cmd.Flags().BoolVarP(&paint, "paint", "p", false, "render the scene as a rune grid")

	return cmd
}

// runLayout loads the scene, computes its layout, and writes the result.
func (c *CLI) runLayout(w io.Writer, input string, width, height int, paint bool) error {
	root, err := LoadScene(input)
	if err != nil {
		return err
	}

	c.Logger.Debug("computing layout", "scene", input, "width", width, "height", height)
	result := root.Calculate(width, height)

	if paint {
		s := tui.NewSurface(width, height)
		tui.Paint(result, s)
		fmt.Fprintln(w, s.String())
		return nil
	}

	printBounds(w, result, 0)
	return nil
}

// printBounds writes one line per node: indented by depth, the element name
// (or a dash) and its border box.
func printBounds(w io.Writer, n *tui.LayoutNode, depth int) {
	name := "-"
	if el, ok := n.Element.(*tui.Element); ok && el.Name() != "" {
		name = el.Name()
	}
	fmt.Fprintf(w, "%s%s x=%d y=%d w=%d h=%d\n",
		strings.Repeat("  ", depth), name, n.Rect.X, n.Rect.Y, n.Rect.Width, n.Rect.Height)
	for _, child := range n.Children {
		printBounds(w, child, depth+1)
	}
}
