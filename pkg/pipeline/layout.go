package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/wellsketch/pkg/layout"
	"github.com/matzehuels/wellsketch/pkg/observability"
	"github.com/matzehuels/wellsketch/pkg/well"
)

// GenerateLayout computes the schematic plan for w without caching.
func GenerateLayout(ctx context.Context, w *well.Well, opts Options) (layout.Plan, error) {
	opts.SetLayoutDefaults()

	name, strings := "", 0
	if w != nil {
		name, strings = w.Name, w.Len()
	}
	hooks := observability.Layout()
	hooks.OnLayoutStart(ctx, name, strings)
	start := time.Now()

	plan, err := layout.Build(w, opts.LayoutOptions()...)
	hooks.OnLayoutComplete(ctx, name, len(plan.Primitives), time.Since(start), err)
	return plan, err
}
