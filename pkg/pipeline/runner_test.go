package pipeline

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/wellsketch/pkg/errors"
	wellio "github.com/matzehuels/wellsketch/pkg/io"
	"github.com/matzehuels/wellsketch/pkg/layout"
	"github.com/matzehuels/wellsketch/pkg/observability"
	"github.com/matzehuels/wellsketch/pkg/well"
)

type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
	sets int
}

func newMemCache() *memCache { return &memCache{data: map[string][]byte{}} }

func (m *memCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.data[key]
	return d, ok, nil
}

func (m *memCache) Set(_ context.Context, key string, data []byte, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = data
	m.sets++
	return nil
}

func (m *memCache) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *memCache) Close() error { return nil }

func sampleWell(t *testing.T) *well.Well {
	t.Helper()
	w, err := wellio.Sample().Build()
	require.NoError(t, err)
	return w
}

func TestExecute(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	result, err := r.Execute(context.Background(), sampleWell(t), Options{
		Formats: []string{FormatSVG, FormatJSON},
	})
	require.NoError(t, err)

	assert.Equal(t, "Test Well 001", result.Plan.Title)
	assert.Equal(t, 5, result.Stats.Strings)
	assert.Equal(t, len(result.Plan.Primitives), result.Stats.Primitives)
	assert.Positive(t, result.Stats.Primitives)
	assert.False(t, result.CacheInfo.LayoutHit)
	assert.False(t, result.CacheInfo.RenderHit)

	require.Len(t, result.Artifacts, 2)
	assert.True(t, strings.HasPrefix(string(result.Artifacts[FormatSVG]), "<svg"))
	assert.Contains(t, string(result.Artifacts[FormatJSON]), `"title": "Test Well 001"`)
}

func TestExecuteCaching(t *testing.T) {
	ctx := context.Background()
	mc := newMemCache()
	r := NewRunner(mc, nil, nil)
	w := sampleWell(t)
	opts := Options{Formats: []string{FormatSVG, FormatJSON}}

	first, err := r.Execute(ctx, w, opts)
	require.NoError(t, err)
	assert.False(t, first.CacheInfo.LayoutHit)
	assert.Equal(t, 3, mc.sets, "plan plus two artifacts")

	second, err := r.Execute(ctx, w, opts)
	require.NoError(t, err)
	assert.True(t, second.CacheInfo.LayoutHit)
	assert.True(t, second.CacheInfo.RenderHit)
	assert.Equal(t, first.Artifacts, second.Artifacts)
	assert.Len(t, second.Plan.Primitives, len(first.Plan.Primitives))

	refreshed, err := r.Execute(ctx, w, Options{Formats: opts.Formats, Refresh: true})
	require.NoError(t, err)
	assert.False(t, refreshed.CacheInfo.LayoutHit)
	assert.False(t, refreshed.CacheInfo.RenderHit)
}

func TestExecuteCacheKeysFollowOptions(t *testing.T) {
	ctx := context.Background()
	mc := newMemCache()
	r := NewRunner(mc, nil, nil)
	w := sampleWell(t)

	_, err := r.Execute(ctx, w, Options{})
	require.NoError(t, err)

	result, err := r.Execute(ctx, w, Options{HorizontalStretch: 6})
	require.NoError(t, err)
	assert.False(t, result.CacheInfo.LayoutHit)

	result, err = r.Execute(ctx, w, Options{Theme: "mono"})
	require.NoError(t, err)
	assert.True(t, result.CacheInfo.LayoutHit)
	assert.False(t, result.CacheInfo.RenderHit)
}

func TestExecuteXLSXBypassesCache(t *testing.T) {
	ctx := context.Background()
	mc := newMemCache()
	r := NewRunner(mc, nil, nil)

	result, err := r.Execute(ctx, sampleWell(t), Options{Formats: []string{FormatXLSX}})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Artifacts[FormatXLSX])
	assert.False(t, result.CacheInfo.RenderHit)
	assert.Equal(t, 1, mc.sets, "only the plan is cached")
}

func TestExecuteNesting(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	result, err := r.Execute(context.Background(), sampleWell(t), Options{
		VizType: VizNesting,
		Formats: []string{FormatDOT, FormatJSON, FormatXLSX},
	})
	require.NoError(t, err)

	require.Len(t, result.Artifacts, 1, "json and xlsx are skipped for the nesting view")
	dot := string(result.Artifacts[FormatDOT])
	assert.True(t, strings.HasPrefix(dot, "digraph G {"))
	assert.Contains(t, dot, `"surface"`)
}

func TestExecuteErrors(t *testing.T) {
	ctx := context.Background()
	r := NewRunner(nil, nil, nil)

	tests := []struct {
		name string
		well *well.Well
		opts Options
		code errors.Code
	}{
		{"empty well", well.New("empty"), Options{}, errors.ErrCodeEmptyWell},
		{"bad viz", sampleWell(t), Options{VizType: "tower"}, errors.ErrCodeInvalidVizType},
		{"no supported format", sampleWell(t), Options{VizType: VizNesting, Formats: []string{FormatJSON}}, errors.ErrCodeInvalidFormat},
		{"bad stretch", sampleWell(t), Options{VerticalStretch: -1}, errors.ErrCodeInvalidInput},
		{"missing theme", sampleWell(t), Options{Theme: filepath.Join(t.TempDir(), "nope.toml")}, errors.ErrCodeFileNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Execute(ctx, tt.well, tt.opts)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.code), "got %v", err)
		})
	}
}

type countingHooks struct {
	observability.NoopLayoutHooks
	observability.NoopRenderHooks
	observability.NoopCacheHooks

	mu         sync.Mutex
	layouts    int
	primitives int
	renders    []string
	hits       int
}

func (h *countingHooks) OnLayoutComplete(_ context.Context, _ string, n int, _ time.Duration, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err == nil {
		h.layouts++
		h.primitives = n
	}
}

func (h *countingHooks) OnRenderComplete(_ context.Context, _, format string, _ int, _ time.Duration, _ error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.renders = append(h.renders, format)
}

func (h *countingHooks) OnCacheHit(context.Context, string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.hits++
}

func TestExecuteFiresHooks(t *testing.T) {
	defer observability.Reset()
	h := &countingHooks{}
	observability.SetLayoutHooks(h)
	observability.SetRenderHooks(h)
	observability.SetCacheHooks(h)

	ctx := context.Background()
	r := NewRunner(newMemCache(), nil, nil)
	w := sampleWell(t)
	opts := Options{Formats: []string{FormatSVG, FormatJSON}}

	result, err := r.Execute(ctx, w, opts)
	require.NoError(t, err)
	assert.Equal(t, 1, h.layouts)
	assert.Equal(t, len(result.Plan.Primitives), h.primitives)
	assert.Equal(t, []string{FormatSVG, FormatJSON}, h.renders)

	_, err = r.Execute(ctx, w, opts)
	require.NoError(t, err)
	assert.Equal(t, 1, h.layouts, "cached plan skips layout")
	assert.Equal(t, 3, h.hits)
}

func TestLayoutMatchesBuild(t *testing.T) {
	w := sampleWell(t)
	r := NewRunner(nil, nil, nil)
	plan, err := r.Layout(context.Background(), w, Options{NoLabels: true})
	require.NoError(t, err)

	want, err := layout.Build(w, layout.WithoutLabels())
	require.NoError(t, err)
	assert.Equal(t, want, plan)
	assert.Zero(t, plan.Count(layout.RoleLabel))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "well.toml")
	doc := wellio.Sample()
	top := 1000.0
	doc.View.Top = &top
	require.NoError(t, wellio.ExportTOML(doc, path))

	w, loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Test Well 001", w.Name)
	assert.Equal(t, 5, w.Len())

	var opts Options
	opts.ApplyView(loaded.View)
	assert.Equal(t, 1000.0, opts.TopView)

	_, _, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.True(t, errors.Is(err, errors.ErrCodeFileNotFound), "got %v", err)
}
