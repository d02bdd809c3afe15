// Package prom implements the observability hooks with Prometheus metrics.
//
// A Recorder is registered once at startup and installed into the global
// hook registry:
//
//	reg := prometheus.NewRegistry()
//	rec := prom.New(reg)
//	rec.Install()
//	...
//	prometheus.WriteToTextfile("wellsketch.prom", reg)
//
// The textfile output is meant for the node_exporter textfile collector,
// which suits a short-lived CLI better than a scrape endpoint.
package prom

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/matzehuels/wellsketch/pkg/observability"
)

const namespace = "wellsketch"

// Recorder collects layout, render, and cache metrics.
type Recorder struct {
	layouts         *prometheus.CounterVec
	layoutDuration  prometheus.Histogram
	primitives      prometheus.Histogram
	renders         *prometheus.CounterVec
	renderDuration  *prometheus.HistogramVec
	renderBytes     *prometheus.CounterVec
	cacheOperations *prometheus.CounterVec
}

var (
	_ observability.LayoutHooks = (*Recorder)(nil)
	_ observability.RenderHooks = (*Recorder)(nil)
	_ observability.CacheHooks  = (*Recorder)(nil)
)

// New creates a Recorder whose metrics are registered with reg.
// It panics if the metrics are already registered.
func New(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)
	return &Recorder{
		layouts: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "layouts_total",
			Help:      "Schematic layouts computed, by result.",
		}, []string{"result"}),
		layoutDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "layout_duration_seconds",
			Help:      "Time spent computing a schematic layout.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
		primitives: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "layout_primitives",
			Help:      "Primitives emitted per successful layout.",
			Buckets:   prometheus.LinearBuckets(0, 25, 10),
		}),
		renders: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "renders_total",
			Help:      "Artifacts rendered, by visualization type, format, and result.",
		}, []string{"viz_type", "format", "result"}),
		renderDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "render_duration_seconds",
			Help:      "Time spent rendering an artifact.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 8),
		}, []string{"format"}),
		renderBytes: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "render_bytes_total",
			Help:      "Bytes of rendered output, by format.",
		}, []string{"format"}),
		cacheOperations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_operations_total",
			Help:      "Cache lookups and writes, by key type and operation.",
		}, []string{"key_type", "op"}),
	}
}

// Install registers r as the global layout, render, and cache hooks.
func (r *Recorder) Install() {
	observability.SetLayoutHooks(r)
	observability.SetRenderHooks(r)
	observability.SetCacheHooks(r)
}

func (r *Recorder) OnLayoutStart(context.Context, string, int) {}

func (r *Recorder) OnLayoutComplete(_ context.Context, _ string, primitives int, d time.Duration, err error) {
	r.layouts.WithLabelValues(result(err)).Inc()
	r.layoutDuration.Observe(d.Seconds())
	if err == nil {
		r.primitives.Observe(float64(primitives))
	}
}

func (r *Recorder) OnRenderStart(context.Context, string, string) {}

func (r *Recorder) OnRenderComplete(_ context.Context, vizType, format string, size int, d time.Duration, err error) {
	r.renders.WithLabelValues(vizType, format, result(err)).Inc()
	r.renderDuration.WithLabelValues(format).Observe(d.Seconds())
	if err == nil {
		r.renderBytes.WithLabelValues(format).Add(float64(size))
	}
}

func (r *Recorder) OnCacheHit(_ context.Context, keyType string) {
	r.cacheOperations.WithLabelValues(keyType, "hit").Inc()
}

func (r *Recorder) OnCacheMiss(_ context.Context, keyType string) {
	r.cacheOperations.WithLabelValues(keyType, "miss").Inc()
}

func (r *Recorder) OnCacheSet(_ context.Context, keyType string, _ int) {
	r.cacheOperations.WithLabelValues(keyType, "set").Inc()
}

// WriteTextfile writes every metric gathered by g to path in the text
// exposition format.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
