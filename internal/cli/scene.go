package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"

	"github.com/cellflow/tui"
)

// sceneFile is the top-level structure of a TOML scene description.
type sceneFile struct {
	Root sceneElement `toml:"root"`
}

// sceneElement describes one element of a scene. Dimensions are strings so a
// scene can say "auto", "12", or "50%" uniformly. Omitted fields keep the
// element defaults.
type sceneElement struct {
	Name string `toml:"name"`
	Text string `toml:"text"`

	Display   string `toml:"display"`
	Direction string `toml:"direction"`
	Wrap      bool   `toml:"wrap"`
	Justify   string `toml:"justify"`
	Align     string `toml:"align"`
	Gap       int    `toml:"gap"`

	Width     string `toml:"width"`
	Height    string `toml:"height"`
	MinWidth  string `toml:"min_width"`
	MinHeight string `toml:"min_height"`
	MaxWidth  string `toml:"max_width"`
	MaxHeight string `toml:"max_height"`

	Grow   float64  `toml:"grow"`
	Shrink *float64 `toml:"shrink"`

	Position string `toml:"position"`
	Top      string `toml:"top"`
	Right    string `toml:"right"`
	Bottom   string `toml:"bottom"`
	Left     string `toml:"left"`
	ZIndex   int    `toml:"z_index"`

	Padding int    `toml:"padding"`
	Margin  int    `toml:"margin"`
	Border  string `toml:"border"`
	Fill    string `toml:"fill"`

	Children []sceneElement `toml:"children"`
}

// LoadScene reads a TOML scene file and builds the element tree it describes.
func LoadScene(path string) (*tui.Element, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene %s: %w", path, err)
	}
	root, err := DecodeScene(data)
	if err != nil {
		return nil, fmt.Errorf("decode scene %s: %w", path, err)
	}
	return root, nil
}

// DecodeScene builds an element tree from TOML scene data.
func DecodeScene(data []byte) (*tui.Element, error) {
	var scene sceneFile
	if err := toml.Unmarshal(data, &scene); err != nil {
		return nil, err
	}
	return buildElement(scene.Root, "root")
}

// buildElement converts one scene node and its children into an Element.
// The path names the node in error messages, e.g. "root.children[2]".
func buildElement(se sceneElement, path string) (*tui.Element, error) {
	style := tui.DefaultLayoutStyle()

	fail := func(field string, err error) error {
		return fmt.Errorf("%s: %s: %w", path, field, err)
	}

	var err error
	if style.Display, err = parseDisplay(se.Display); err != nil {
		return nil, fail("display", err)
	}
	if style.Direction, err = parseDirection(se.Direction); err != nil {
		return nil, fail("direction", err)
	}
	if se.Wrap {
		style.FlexWrap = tui.Wrap
	}
	if style.JustifyContent, err = parseJustify(se.Justify); err != nil {
		return nil, fail("justify", err)
	}
	if style.AlignItems, err = parseAlign(se.Align); err != nil {
		return nil, fail("align", err)
	}
	style.Gap = se.Gap

	dims := []struct {
		field string
		raw   string
		dst   *tui.Value
	}{
		{"width", se.Width, &style.Width},
		{"height", se.Height, &style.Height},
		{"min_width", se.MinWidth, &style.MinWidth},
		{"min_height", se.MinHeight, &style.MinHeight},
		{"max_width", se.MaxWidth, &style.MaxWidth},
		{"max_height", se.MaxHeight, &style.MaxHeight},
		{"top", se.Top, &style.Top},
		{"right", se.Right, &style.Right},
		{"bottom", se.Bottom, &style.Bottom},
		{"left", se.Left, &style.Left},
	}
	for _, d := range dims {
		if d.raw == "" {
			continue
		}
		if *d.dst, err = parseDimension(d.raw); err != nil {
			return nil, fail(d.field, err)
		}
	}

	style.FlexGrow = se.Grow
	if se.Shrink != nil {
		style.FlexShrink = *se.Shrink
	}
	if style.Position, err = parsePosition(se.Position); err != nil {
		return nil, fail("position", err)
	}
	style.ZIndex = se.ZIndex
	style.Padding = tui.EdgeAll(se.Padding)
	style.Margin = tui.EdgeAll(se.Margin)

	opts := []tui.Option{tui.WithStyle(style)}
	if se.Name != "" {
		opts = append(opts, tui.WithName(se.Name))
	}
	if se.Text != "" {
		opts = append(opts, tui.WithText(se.Text))
	}

	border, err := parseBorder(se.Border)
	if err != nil {
		return nil, fail("border", err)
	}
	if border != tui.BorderNone {
		opts = append(opts, tui.WithBorder(border))
	}
	if se.Fill != "" {
		r, size := utf8.DecodeRuneInString(se.Fill)
		if size != len(se.Fill) {
			return nil, fail("fill", fmt.Errorf("want a single rune, got %q", se.Fill))
		}
		opts = append(opts, tui.WithFill(r))
	}

	el := tui.New(opts...)
	for i, child := range se.Children {
		built, err := buildElement(child, fmt.Sprintf("%s.children[%d]", path, i))
		if err != nil {
			return nil, err
		}
		el.AddChild(built)
	}
	return el, nil
}

// parseDimension interprets a scene dimension string: "auto" (or empty),
// a plain integer cell count, or a percentage like "50%".
func parseDimension(s string) (tui.Value, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "auto" {
		return tui.Auto(), nil
	}
	if p, ok := strings.CutSuffix(s, "%"); ok {
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return tui.Value{}, fmt.Errorf("invalid percentage %q", s)
		}
		return tui.Percent(f), nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return tui.Value{}, fmt.Errorf("invalid dimension %q", s)
	}
	return tui.Fixed(n), nil
}

func parseDisplay(s string) (tui.Display, error) {
	switch s {
	case "", "block":
		return tui.DisplayBlock, nil
	case "flex":
		return tui.DisplayFlex, nil
	}
	return 0, fmt.Errorf("unknown display %q", s)
}

func parseDirection(s string) (tui.Direction, error) {
	switch s {
	case "", "row":
		return tui.Row, nil
	case "column":
		return tui.Column, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

func parseJustify(s string) (tui.Justify, error) {
	switch s {
	case "", "start":
		return tui.JustifyStart, nil
	case "end":
		return tui.JustifyEnd, nil
	case "center":
		return tui.JustifyCenter, nil
	case "space-between":
		return tui.JustifySpaceBetween, nil
	case "space-around":
		return tui.JustifySpaceAround, nil
	case "space-evenly":
		return tui.JustifySpaceEvenly, nil
	}
	return 0, fmt.Errorf("unknown justify %q", s)
}

func parseAlign(s string) (tui.Align, error) {
	switch s {
	case "", "start":
		return tui.AlignStart, nil
	case "end":
		return tui.AlignEnd, nil
	case "center":
		return tui.AlignCenter, nil
	case "stretch":
		return tui.AlignStretch, nil
	}
	return 0, fmt.Errorf("unknown align %q", s)
}

func parsePosition(s string) (tui.Position, error) {
	switch s {
	case "", "static":
		return tui.PositionStatic, nil
	case "relative":
		return tui.PositionRelative, nil
	case "absolute":
		return tui.PositionAbsolute, nil
	}
	return 0, fmt.Errorf("unknown position %q", s)
}

func parseBorder(s string) (tui.BorderStyle, error) {
	switch s {
	case "", "none":
		return tui.BorderNone, nil
	case "single":
		return tui.BorderSingle, nil
	case "double":
		return tui.BorderDouble, nil
	case "rounded":
		return tui.BorderRounded, nil
	}
	return 0, fmt.Errorf("unknown border %q", s)
}
