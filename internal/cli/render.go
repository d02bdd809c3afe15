package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/matzehuels/wellsketch/pkg/observability"
	"github.com/matzehuels/wellsketch/pkg/observability/prom"
	"github.com/matzehuels/wellsketch/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output     string // output file (single format) or base path
	formats    string
	noCache    bool
	metricsOut string // Prometheus textfile path
	topSet     bool   // --top given, even as 0
	pipeline.Options
}

func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <well.toml>",
		Short: "Draw the schematic of a well description file",
		Long: `Draw the schematic of a well description file.

Layout settings from the file's [view] section apply unless the matching
flag is given. Several formats may be requested at once; formats the chosen
view cannot produce are skipped.`,
		Example: `  wellsketch render well.toml
  wellsketch render well.toml -f svg,pdf,xlsx -o out/well
  wellsketch render well.toml -t nesting -f dot`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(opts.formats)
			opts.topSet = cmd.Flags().Changed("top")
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (several formats)")
	f.StringVarP(&opts.VizType, "type", "t", pipeline.DefaultVizType, "visualization type: section, nesting")
	f.StringVarP(&opts.formats, "format", "f", "", "output format(s): svg (default), json, pdf, png, xlsx, dot (comma-separated)")
	f.StringVar(&opts.Theme, "theme", pipeline.DefaultTheme, "built-in theme name (default, mono) or TOML theme file")
	f.Float64Var(&opts.Width, "width", 0, "frame width in pixels")
	f.Float64Var(&opts.Height, "height", 0, "frame height in pixels")
	f.Float64Var(&opts.Scale, "scale", pipeline.DefaultScale, "PNG scale factor")
	f.Float64Var(&opts.HorizontalStretch, "horizontal-stretch", 0, "half-width of the view as a multiple of the largest OD (default 4)")
	f.Float64Var(&opts.VerticalStretch, "vertical-stretch", 0, "view depth as a multiple of the deepest string (default 1.05)")
	f.Float64Var(&opts.TopView, "top", 0, "shallowest depth shown")
	f.BoolVar(&opts.NoLabels, "no-labels", false, "omit all text")
	f.BoolVar(&opts.NoTubularLabels, "no-tubular-labels", false, "omit string summaries")
	f.BoolVar(&opts.NoCementLabels, "no-cement-labels", false, "omit cement intervals")
	f.BoolVar(&opts.Detailed, "detailed", false, "show diameters and depths in nesting nodes")
	f.BoolVar(&opts.noCache, "no-cache", false, "disable the plan and render cache")
	f.BoolVar(&opts.Refresh, "refresh", false, "recompute even when cached")
	f.StringVar(&opts.metricsOut, "metrics-out", "", "write Prometheus metrics to this textfile")

	_ = cmd.RegisterFlagCompletionFunc("type", cobra.FixedCompletions(pipeline.ValidVizTypes(), cobra.ShellCompDirectiveNoFileComp))
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(pipeline.ValidFormats(), cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

func (c *CLI) runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	// Layout defaults wait until the file's [view] section is applied.
	if err := pipeline.ValidateVizType(opts.VizType); err != nil {
		return err
	}
	if err := pipeline.ValidateFormats(opts.Formats); err != nil {
		return err
	}

	var reg *prometheus.Registry
	if opts.metricsOut != "" {
		reg = prometheus.NewRegistry()
		prom.New(reg).Install()
		defer observability.Reset()
	}

	w, doc, err := pipeline.Load(input)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded %s: %d strings, %d cement jobs, %d packers",
		w.Name, w.Len(), len(w.Cements()), len(w.Packers()))

	runOpts := opts.Options
	runOpts.ApplyView(doc.View)
	if opts.topSet {
		runOpts.TopView = opts.TopView
	}
	runOpts.Logger = logger

	for _, format := range runOpts.Formats {
		if !pipeline.Supports(runOpts.VizType, format) {
			printWarning(c.Out, "%s output is not available for the %s view, skipping", format, runOpts.VizType)
		}
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	result, err := runner.Execute(ctx, w, runOpts)
	if err != nil {
		return err
	}

	paths, err := writeArtifacts(result.Artifacts, runOpts.Formats, opts.output, input)
	if err != nil {
		return err
	}

	printSuccess(c.Out, "Rendered %s", w.Name)
	printStats(c.Out, result.Stats.Strings, result.Stats.Primitives, result.CacheInfo.LayoutHit && result.CacheInfo.RenderHit)
	for _, p := range paths {
		printFile(c.Out, p)
	}

	if reg != nil {
		if err := prom.WriteTextfile(opts.metricsOut, reg); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
		logger.Debugf("Wrote metrics to %s", opts.metricsOut)
	}

	prog.done(fmt.Sprintf("Rendered %d file(s)", len(paths)))
	return nil
}

// writeArtifacts writes each artifact in request order and returns the
// paths written. Output is a single file only when one format was requested,
// even if other requested formats were skipped.
func writeArtifacts(artifacts map[string][]byte, formats []string, output, input string) ([]string, error) {
	single := len(slices.Compact(slices.Sorted(slices.Values(formats)))) == 1
	var paths []string
	written := make(map[string]bool, len(artifacts))
	for _, format := range formats {
		data, ok := artifacts[format]
		if !ok || written[format] {
			continue
		}
		written[format] = true
		path := outputPath(output, input, format, single)
		if err := writeFile(path, data); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// outputPath picks the file for one format. A single output uses -o as
// given; otherwise -o (or the input name) is a base path and the format is
// the extension.
func outputPath(output, input, format string, single bool) string {
	if single && output != "" {
		return output
	}
	return basePath(output, input) + "." + format
}

// basePath strips the extension from output, or from input when output is
// empty. Only known format extensions are stripped from output.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidateFormat(strings.TrimPrefix(ext, ".")) == nil {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

func writeFile(path string, data []byte) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	if _, err := out.Write(data); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// openOutput creates path, making parent directories as needed.
func openOutput(path string) (io.WriteCloser, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create output: %w", err)
	}
	return f, nil
}
