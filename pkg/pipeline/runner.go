package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wellsketch/pkg/cache"
	"github.com/matzehuels/wellsketch/pkg/errors"
	wellio "github.com/matzehuels/wellsketch/pkg/io"
	"github.com/matzehuels/wellsketch/pkg/layout"
	"github.com/matzehuels/wellsketch/pkg/observability"
	"github.com/matzehuels/wellsketch/pkg/render/styles"
	"github.com/matzehuels/wellsketch/pkg/well"
)

// Cache key types reported to the cache hooks.
const (
	keyTypeLayout   = "layout"
	keyTypeArtifact = "artifact"
)

// Runner executes the pipeline with caching.
//
// The Runner holds no pipeline results, so one Runner may serve several
// goroutines with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner. A nil cache disables caching, a nil keyer
// selects cache.DefaultKeyer, and a nil logger selects log.Default().
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Execute runs layout and render for w.
func (r *Runner) Execute(ctx context.Context, w *well.Well, opts Options) (*Result, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}
	result := &Result{}

	layoutStart := time.Now()
	plan, hit, err := r.LayoutWithCacheInfo(ctx, w, opts)
	if err != nil {
		return nil, err
	}
	result.Plan = plan
	result.Stats.Strings = w.Len()
	result.Stats.Primitives = len(plan.Primitives)
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.CacheInfo.LayoutHit = hit

	r.Logger.Info("computed layout",
		"well", w.Name,
		"primitives", len(plan.Primitives),
		"cached", hit,
		"duration", result.Stats.LayoutTime)

	renderStart := time.Now()
	artifacts, hit, err := r.RenderWithCacheInfo(ctx, w, plan, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = hit

	r.Logger.Info("rendered outputs",
		"viz", opts.VizType,
		"formats", opts.Formats,
		"cached", hit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// LayoutWithCacheInfo computes the plan for w, reporting whether it came
// from the cache.
func (r *Runner) LayoutWithCacheInfo(ctx context.Context, w *well.Well, opts Options) (layout.Plan, bool, error) {
	opts.SetLayoutDefaults()

	if w == nil || w.Len() == 0 {
		plan, err := GenerateLayout(ctx, w, opts)
		return plan, false, err
	}

	wellHash, err := cache.HashJSON(wellio.FromWell(w))
	if err != nil {
		return layout.Plan{}, false, errors.Wrap(errors.ErrCodeInternal, err, "hash well")
	}
	key := r.Keyer.LayoutKey(wellHash, opts.LayoutKeyOpts())

	if !opts.Refresh {
		if data, ok := r.get(ctx, keyTypeLayout, key); ok {
			var cached layout.Plan
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached, true, nil
			}
			r.Logger.Debug("discarding unreadable cached plan", "key", key)
		}
	}

	plan, err := GenerateLayout(ctx, w, opts)
	if err != nil {
		return layout.Plan{}, false, err
	}
	if data, err := json.Marshal(plan); err == nil {
		r.set(ctx, keyTypeLayout, key, data, cache.TTLLayout)
	}
	return plan, false, nil
}

// Layout is LayoutWithCacheInfo without the cache hit flag.
func (r *Runner) Layout(ctx context.Context, w *well.Well, opts Options) (layout.Plan, error) {
	plan, _, err := r.LayoutWithCacheInfo(ctx, w, opts)
	return plan, err
}

// RenderWithCacheInfo produces every requested format the visualization type
// supports. Unsupported formats are skipped. The flag reports whether every
// cacheable artifact came from the cache; xlsx output is never cached.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, w *well.Well, plan layout.Plan, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}

	theme, err := styles.Load(opts.Theme)
	if err != nil {
		return nil, false, err
	}
	themeHash, err := cache.HashJSON(theme)
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeInternal, err, "hash theme")
	}
	sourceHash, err := r.sourceHash(w, plan, opts)
	if err != nil {
		return nil, false, err
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	cacheable, hits := 0, 0
	for _, format := range opts.Formats {
		if _, done := artifacts[format]; done {
			continue
		}
		if !Supports(opts.VizType, format) {
			r.Logger.Debug("skipping unsupported format", "viz", opts.VizType, "format", format)
			continue
		}

		if format == FormatXLSX {
			data, err := RenderFormat(ctx, w, plan, theme, format, opts)
			if err != nil {
				return nil, false, err
			}
			artifacts[format] = data
			continue
		}

		cacheable++
		key := r.Keyer.ArtifactKey(sourceHash, opts.ArtifactKeyOpts(format, themeHash))
		if !opts.Refresh {
			if data, ok := r.get(ctx, keyTypeArtifact, key); ok {
				artifacts[format] = data
				hits++
				continue
			}
		}

		data, err := RenderFormat(ctx, w, plan, theme, format, opts)
		if err != nil {
			return nil, false, err
		}
		artifacts[format] = data
		r.set(ctx, keyTypeArtifact, key, data, cache.TTLArtifact)
	}

	if len(artifacts) == 0 {
		return nil, false, errors.New(errors.ErrCodeInvalidFormat,
			"none of the formats %v is supported by the %s view", opts.Formats, opts.VizType)
	}
	return artifacts, cacheable > 0 && hits == cacheable, nil
}

// Render is RenderWithCacheInfo without the cache hit flag.
func (r *Runner) Render(ctx context.Context, w *well.Well, plan layout.Plan, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, w, plan, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// sourceHash identifies what an artifact is drawn from: the plan for the
// section view, the well itself for the nesting graph.
func (r *Runner) sourceHash(w *well.Well, plan layout.Plan, opts Options) (string, error) {
	var (
		h   string
		err error
	)
	if opts.VizType == VizNesting {
		if w == nil {
			return "", errors.New(errors.ErrCodeEmptyWell, "no well to render")
		}
		h, err = cache.HashJSON(wellio.FromWell(w))
	} else {
		h, err = cache.HashJSON(plan)
	}
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "hash render source")
	}
	return h, nil
}

func (r *Runner) get(ctx context.Context, keyType, key string) ([]byte, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Debug("cache read failed", "key", key, "err", err)
	}
	if err != nil || !hit {
		observability.Cache().OnCacheMiss(ctx, keyType)
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, keyType)
	return data, true
}

func (r *Runner) set(ctx context.Context, keyType, key string, data []byte, ttl time.Duration) {
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Debug("cache write failed", "key", key, "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
}
