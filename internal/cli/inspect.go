package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"

	"github.com/matzehuels/wellsketch/pkg/pipeline"
	"github.com/matzehuels/wellsketch/pkg/well"
)

func (c *CLI) inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <well.toml>",
		Short: "Summarize a well description file",
		Long: `Summarize a well description file: extrema used by the layout, the
strings with their derived quantities, cement jobs and packers.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(cmd.Context(), args[0])
		},
	}
}

func (c *CLI) runInspect(ctx context.Context, input string) error {
	w, _, err := pipeline.Load(input)
	if err != nil {
		return err
	}
	loggerFromContext(ctx).Debugf("Loaded %s", input)

	out := c.Out
	printTitle(out, w.Name)
	printKeyValue(out, "Strings", strconv.Itoa(w.Len()))
	printKeyValue(out, "Largest OD", fmt.Sprintf("%g in", w.LargestOuterDiameter()))
	printKeyValue(out, "Deepest", fmt.Sprintf("%g ft", w.DeepestDepth()))
	printKeyValue(out, "Min wall", fmt.Sprintf("%g in", w.MinimumWallThickness()))
	if walls := w.Thicknesses(); len(walls) > 0 {
		printKeyValue(out, "Max wall", fmt.Sprintf("%g in", floats.Max(walls)))
	}
	if kop, ok := w.KOP(); ok {
		printKeyValue(out, "KOP", fmt.Sprintf("%g ft", kop))
	}
	if mud, ok := w.Mudline(); ok {
		printKeyValue(out, "Mudline", fmt.Sprintf("%g ft", mud))
	}
	fmt.Fprintln(out)

	strs := w.Tubulars()
	if t, ok := w.Tubing(); ok {
		strs = append(strs, t)
	}
	rows := make([][]string, 0, len(strs))
	for _, t := range strs {
		rows = append(rows, tubularRow(t))
	}
	printTable(out, []string{"Name", "Role", "ID", "OD", "Top", "Bottom", "Wall", "Weight", "Shoe"}, rows)

	cements := w.Cements()
	if len(cements) > 0 {
		fmt.Fprintln(out)
		printTitle(out, "Cement")
		for _, cm := range cements {
			printDetail(out, "%g–%g ft between %s and %s", cm.Top, cm.Bottom, cm.Outer, cm.Inner)
		}
	}

	packers := w.Packers()
	if len(packers) > 0 {
		fmt.Fprintln(out)
		printTitle(out, "Packers")
		for _, p := range packers {
			printDetail(out, "%s", p.String())
		}
	}
	return nil
}

func tubularRow(t well.Tubular) []string {
	shoe := "-"
	if w, ok := t.ShoeWidth(); ok {
		shoe = fmt.Sprintf("%g", t.ShoeSize) + " (" + strconv.FormatFloat(w, 'g', 4, 64) + ")"
	}
	return []string{
		t.Name,
		t.Role.String(),
		fmt.Sprintf("%g", t.InnerDiameter),
		fmt.Sprintf("%g", t.OuterDiameter),
		fmt.Sprintf("%g", t.Top),
		fmt.Sprintf("%g", t.Bottom),
		strconv.FormatFloat(t.Thickness(), 'g', 4, 64),
		fmt.Sprintf("%g", t.TotalWeight()),
		shoe,
	}
}
