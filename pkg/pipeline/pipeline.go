// Package pipeline runs the load → layout → render pipeline for wellsketch.
//
// The CLI and tests share this package so that defaults, validation, and
// caching behave the same everywhere.
//
// # Usage
//
//	w, doc, err := pipeline.Load("well.toml")
//	opts := pipeline.Options{Formats: []string{"svg", "xlsx"}}
//	opts.ApplyView(doc.View)
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	result, err := runner.Execute(ctx, w, opts)
//	svg := result.Artifacts["svg"]
//
// Stages can also run alone:
//
//	plan, err := runner.Layout(ctx, w, opts)
//	artifacts, err := runner.Render(ctx, w, plan, opts)
package pipeline

import (
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wellsketch/pkg/cache"
	"github.com/matzehuels/wellsketch/pkg/errors"
	wellio "github.com/matzehuels/wellsketch/pkg/io"
	"github.com/matzehuels/wellsketch/pkg/layout"
)

// Visualization types.
const (
	VizSection = "section"
	VizNesting = "nesting"
)

// Output formats.
const (
	FormatSVG  = "svg"
	FormatJSON = "json"
	FormatPDF  = "pdf"
	FormatPNG  = "png"
	FormatXLSX = "xlsx"
	FormatDOT  = "dot"
)

const (
	DefaultVizType = VizSection
	DefaultTheme   = "default"
	DefaultScale   = 2.0
)

// formatsByViz lists the formats each visualization type can produce.
var formatsByViz = map[string][]string{
	VizSection: {FormatSVG, FormatJSON, FormatPDF, FormatPNG, FormatXLSX},
	VizNesting: {FormatSVG, FormatPDF, FormatPNG, FormatDOT},
}

// ValidVizTypes returns the supported visualization types.
func ValidVizTypes() []string { return []string{VizSection, VizNesting} }

// ValidFormats returns every format some visualization type supports.
func ValidFormats() []string {
	return []string{FormatSVG, FormatJSON, FormatPDF, FormatPNG, FormatXLSX, FormatDOT}
}

// Options holds all pipeline configuration.
type Options struct {
	// Layout options
	HorizontalStretch float64 `json:"horizontal_stretch,omitempty"`
	VerticalStretch   float64 `json:"vertical_stretch,omitempty"`
	TopView           float64 `json:"top_view,omitempty"`
	NoTubularLabels   bool    `json:"no_tubular_labels,omitempty"`
	NoCementLabels    bool    `json:"no_cement_labels,omitempty"`
	NoLabels          bool    `json:"no_labels,omitempty"`

	// Render options
	VizType  string   `json:"viz_type,omitempty"`
	Formats  []string `json:"formats,omitempty"`
	Theme    string   `json:"theme,omitempty"` // builtin name or TOML path
	Width    float64  `json:"width,omitempty"`
	Height   float64  `json:"height,omitempty"`
	Scale    float64  `json:"scale,omitempty"`
	Detailed bool     `json:"detailed,omitempty"` // nesting node labels
	Refresh  bool     `json:"refresh,omitempty"`

	Logger *log.Logger `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	Plan      layout.Plan
	Artifacts map[string][]byte
	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline timing and size information.
type Stats struct {
	Strings    int
	Primitives int
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits per stage.
type CacheInfo struct {
	LayoutHit bool
	RenderHit bool // every cacheable artifact came from cache
}

// ValidateVizType checks that a visualization type is known.
func ValidateVizType(vizType string) error {
	if _, ok := formatsByViz[vizType]; !ok {
		return errors.New(errors.ErrCodeInvalidVizType,
			"invalid viz type %q (must be one of: %s)", vizType, strings.Join(ValidVizTypes(), ", "))
	}
	return nil
}

// ValidateFormat checks that a format is known to some visualization type.
func ValidateFormat(format string) error {
	if !slices.Contains(ValidFormats(), format) {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format %q (must be one of: %s)", format, strings.Join(ValidFormats(), ", "))
	}
	return nil
}

// ValidateFormats checks every format.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// Supports reports whether vizType can produce format.
func Supports(vizType, format string) bool {
	return slices.Contains(formatsByViz[vizType], format)
}

// ApplyView fills layout options that are still zero from a well file's
// [view] section. Call it after flags are applied so flags win.
func (o *Options) ApplyView(v wellio.View) {
	if o.HorizontalStretch == 0 {
		o.HorizontalStretch = v.HorizontalStretch
	}
	if o.VerticalStretch == 0 {
		o.VerticalStretch = v.VerticalStretch
	}
	if o.TopView == 0 && v.Top != nil {
		o.TopView = *v.Top
	}
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.HorizontalStretch == 0 {
		o.HorizontalStretch = layout.DefaultHorizontalStretch
	}
	if o.VerticalStretch == 0 {
		o.VerticalStretch = layout.DefaultVerticalStretch
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if o.VizType == "" {
		o.VizType = DefaultVizType
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Theme == "" {
		o.Theme = DefaultTheme
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender sets defaults and validates render options.
func (o *Options) ValidateForRender() error {
	o.SetLayoutDefaults()
	o.SetRenderDefaults()
	if err := ValidateVizType(o.VizType); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Scale < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be positive, got %v", o.Scale)
	}
	if o.Width < 0 || o.Height < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "frame size must be positive, got %vx%v", o.Width, o.Height)
	}
	return nil
}

// LayoutOptions converts the options into layout.Build options.
func (o *Options) LayoutOptions() []layout.Option {
	opts := []layout.Option{
		layout.WithHorizontalStretch(o.HorizontalStretch),
		layout.WithVerticalStretch(o.VerticalStretch),
		layout.WithTopView(o.TopView),
	}
	switch {
	case o.NoLabels:
		opts = append(opts, layout.WithoutLabels())
	default:
		if o.NoTubularLabels {
			opts = append(opts, layout.WithoutTubularLabels())
		}
		if o.NoCementLabels {
			opts = append(opts, layout.WithoutCementLabels())
		}
	}
	return opts
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	var labels []string
	if !o.NoLabels {
		if !o.NoTubularLabels {
			labels = append(labels, "tubular")
		}
		if !o.NoCementLabels {
			labels = append(labels, "cement")
		}
		labels = append(labels, "reference")
	}
	return cache.LayoutKeyOpts{
		HorizontalStretch: o.HorizontalStretch,
		VerticalStretch:   o.VerticalStretch,
		TopView:           o.TopView,
		Labels:            labels,
	}
}

// ArtifactKeyOpts returns cache key options for one rendered format.
// themeHash identifies the resolved theme contents, not its name.
func (o *Options) ArtifactKeyOpts(format, themeHash string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{
		VizType: o.VizType,
		Format:  format,
		Theme:   themeHash,
		Width:   o.Width,
		Height:  o.Height,
	}
	if format == FormatPNG {
		k.Scale = o.Scale
	}
	if o.VizType == VizNesting {
		k.Detailed = o.Detailed
		k.Theme = ""
	}
	return k
}
