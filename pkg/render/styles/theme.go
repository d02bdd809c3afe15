// Package styles holds the visual settings for cross-section rendering.
//
// A [Theme] maps the color keys carried by layout primitives ("casing",
// "cement", "packer", ...) to SVG colors and fixes the font and frame. Themes
// are plain values passed to the renderer; there is no global style state.
//
// Custom themes are TOML files. Unset fields fall back to [Default]:
//
//	name = "print"
//	font_family = "DejaVu Sans"
//
//	[colors]
//	cement = "#999999"
//	packer = "#aa0000"
package styles

import (
	"bytes"
	"encoding/xml"
	"maps"
	"os"
	"slices"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/wellsketch/pkg/errors"
)

// Color keys used by the layout engine.
const (
	ColorCasing  = "casing"
	ColorShoe    = "shoe"
	ColorCement  = "cement"
	ColorTubing  = "tubing"
	ColorPacker  = "packer"
	ColorKOP     = "kop"
	ColorMudline = "mudline"
	ColorLabel   = "label"
)

// Theme is a complete set of colors and text settings.
type Theme struct {
	Name       string            `toml:"name" json:"name"`
	FontFamily string            `toml:"font_family" json:"font_family"`
	FontSize   float64           `toml:"font_size" json:"font_size"`
	TitleSize  float64           `toml:"title_size" json:"title_size"`
	Background string            `toml:"background" json:"background"`
	Foreground string            `toml:"foreground" json:"foreground"`
	LineWidth  float64           `toml:"line_width" json:"line_width"` // reference line stroke
	Colors     map[string]string `toml:"colors" json:"colors"`
}

// Default mirrors the classic schematic look: black walls, grey-green cement,
// blue tubing and red packers.
func Default() Theme {
	return Theme{
		Name:       "default",
		FontFamily: "Helvetica, Arial, sans-serif",
		FontSize:   11,
		TitleSize:  16,
		Background: "white",
		Foreground: "black",
		LineWidth:  0.7,
		Colors: map[string]string{
			ColorCasing:  "black",
			ColorShoe:    "black",
			ColorCement:  "#6b705c",
			ColorTubing:  "#348ceb",
			ColorPacker:  "red",
			ColorKOP:     "#0C1713",
			ColorMudline: "#348ceb",
			ColorLabel:   "black",
		},
	}
}

// Mono is a greyscale theme for print.
func Mono() Theme {
	t := Default()
	t.Name = "mono"
	t.Colors = map[string]string{
		ColorCasing:  "black",
		ColorShoe:    "black",
		ColorCement:  "#b0b0b0",
		ColorTubing:  "#606060",
		ColorPacker:  "#303030",
		ColorKOP:     "black",
		ColorMudline: "#606060",
		ColorLabel:   "black",
	}
	return t
}

var builtin = map[string]func() Theme{
	"default": Default,
	"mono":    Mono,
}

// Names lists the built-in themes.
func Names() []string { return slices.Sorted(maps.Keys(builtin)) }

// Named returns a built-in theme.
func Named(name string) (Theme, bool) {
	fn, ok := builtin[name]
	if !ok {
		return Theme{}, false
	}
	return fn(), true
}

// Color returns the color for key, falling back to the foreground color.
func (t Theme) Color(key string) string {
	if c, ok := t.Colors[key]; ok && c != "" {
		return c
	}
	if t.Foreground != "" {
		return t.Foreground
	}
	return "black"
}

// Load resolves a theme argument: a built-in name or a TOML file path.
// An empty argument selects Default.
func Load(nameOrPath string) (Theme, error) {
	if nameOrPath == "" {
		return Default(), nil
	}
	if t, ok := Named(nameOrPath); ok {
		return t, nil
	}
	return LoadFile(nameOrPath)
}

// LoadFile reads a TOML theme file on top of Default.
func LoadFile(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Theme{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "theme %q is neither a built-in theme nor a file", path)
		}
		return Theme{}, err
	}
	return Parse(data)
}

// Parse decodes a TOML theme on top of Default.
func Parse(data []byte) (Theme, error) {
	base := Default()
	var t Theme
	if _, err := toml.Decode(string(data), &t); err != nil {
		return Theme{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse theme")
	}
	return merge(base, t), nil
}

func merge(base, over Theme) Theme {
	out := base
	if over.Name != "" {
		out.Name = over.Name
	}
	if over.FontFamily != "" {
		out.FontFamily = over.FontFamily
	}
	if over.FontSize > 0 {
		out.FontSize = over.FontSize
	}
	if over.TitleSize > 0 {
		out.TitleSize = over.TitleSize
	}
	if over.Background != "" {
		out.Background = over.Background
	}
	if over.Foreground != "" {
		out.Foreground = over.Foreground
	}
	if over.LineWidth > 0 {
		out.LineWidth = over.LineWidth
	}
	out.Colors = maps.Clone(base.Colors)
	maps.Copy(out.Colors, over.Colors)
	return out
}

// EscapeXML escapes text for SVG content and attributes.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
