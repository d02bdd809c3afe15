package prom

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/matzehuels/wellsketch/pkg/observability"
)

func TestRecorderLayout(t *testing.T) {
	ctx := context.Background()
	r := New(prometheus.NewRegistry())

	r.OnLayoutStart(ctx, "w", 5)
	r.OnLayoutComplete(ctx, "w", 40, time.Millisecond, nil)
	r.OnLayoutComplete(ctx, "w", 0, time.Millisecond, errors.New("boom"))

	if got := testutil.ToFloat64(r.layouts.WithLabelValues("ok")); got != 1 {
		t.Errorf("layouts{ok} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(r.layouts.WithLabelValues("error")); got != 1 {
		t.Errorf("layouts{error} = %v, want 1", got)
	}
	if got := testutil.CollectAndCount(r.primitives); got != 1 {
		t.Errorf("primitives series = %d, want 1", got)
	}
}

func TestRecorderRender(t *testing.T) {
	ctx := context.Background()
	r := New(prometheus.NewRegistry())

	r.OnRenderComplete(ctx, "section", "svg", 1000, time.Millisecond, nil)
	r.OnRenderComplete(ctx, "section", "svg", 500, time.Millisecond, nil)
	r.OnRenderComplete(ctx, "nesting", "png", 0, time.Millisecond, errors.New("no converter"))

	if got := testutil.ToFloat64(r.renders.WithLabelValues("section", "svg", "ok")); got != 2 {
		t.Errorf("renders{section,svg,ok} = %v, want 2", got)
	}
	if got := testutil.ToFloat64(r.renderBytes.WithLabelValues("svg")); got != 1500 {
		t.Errorf("render_bytes{svg} = %v, want 1500", got)
	}
	if got := testutil.ToFloat64(r.renders.WithLabelValues("nesting", "png", "error")); got != 1 {
		t.Errorf("renders{nesting,png,error} = %v, want 1", got)
	}
}

func TestRecorderInstall(t *testing.T) {
	defer observability.Reset()
	r := New(prometheus.NewRegistry())
	r.Install()

	ctx := context.Background()
	observability.Cache().OnCacheHit(ctx, "layout")
	observability.Cache().OnCacheMiss(ctx, "artifact")
	observability.Cache().OnCacheSet(ctx, "artifact", 10)

	for _, tt := range []struct{ key, op string }{
		{"layout", "hit"},
		{"artifact", "miss"},
		{"artifact", "set"},
	} {
		if got := testutil.ToFloat64(r.cacheOperations.WithLabelValues(tt.key, tt.op)); got != 1 {
			t.Errorf("cache_operations{%s,%s} = %v, want 1", tt.key, tt.op, got)
		}
	}
}

func TestWriteTextfile(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := New(reg)
	r.OnLayoutComplete(context.Background(), "w", 12, time.Millisecond, nil)

	path := filepath.Join(t.TempDir(), "wellsketch.prom")
	if err := WriteTextfile(path, reg); err != nil {
		t.Fatalf("WriteTextfile() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `wellsketch_layouts_total{result="ok"} 1`) {
		t.Errorf("textfile missing layout counter:\n%s", data)
	}
}
