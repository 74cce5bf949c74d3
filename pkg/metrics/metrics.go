package metrics

import (
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/treefold-dev/treefold/pkg/dom"
)

// Config configures the Prometheus collector.
type Config struct {
	// Namespace is the metrics namespace (default: "treefold").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for fold duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// Option configures the Prometheus collector.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) Option {
	return func(c *Config) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) Option {
	return func(c *Config) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

// defaultConfig returns the default collector configuration.
func defaultConfig() Config {
	return Config{
		Namespace: "treefold",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Collector holds the Prometheus metrics for folds.
type Collector struct {
	nodesTotal   *prometheus.CounterVec
	foldsTotal   prometheus.Counter
	foldErrors   prometheus.Counter
	foldDuration prometheus.Histogram
	bytesWritten prometheus.Counter
}

// NewCollector creates and registers the fold metrics.
//
// Metrics collected:
//   - treefold_nodes_processed_total: Counter of dispatched nodes by kind
//   - treefold_folds_total: Counter of completed folds
//   - treefold_fold_errors_total: Counter of failed folds
//   - treefold_fold_duration_seconds: Histogram of fold duration
//   - treefold_bytes_written_total: Counter of bytes written to sinks
func NewCollector(opts ...Option) *Collector {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}

	factory := promauto.With(config.Registry)

	return &Collector{
		nodesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "nodes_processed_total",
			Help:        "Total number of nodes dispatched through instrumented processors",
			ConstLabels: config.ConstLabels,
		}, []string{"kind"}),

		foldsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "folds_total",
			Help:        "Total number of completed folds",
			ConstLabels: config.ConstLabels,
		}),

		foldErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "fold_errors_total",
			Help:        "Total number of folds aborted by an error",
			ConstLabels: config.ConstLabels,
		}),

		foldDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "fold_duration_seconds",
			Help:        "Fold duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),

		bytesWritten: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "bytes_written_total",
			Help:        "Total number of bytes written to instrumented sinks",
			ConstLabels: config.ConstLabels,
		}),
	}
}

// CountingWriter wraps a sink so every written byte feeds the collector.
func (c *Collector) CountingWriter(w io.Writer) io.Writer {
	return &countingWriter{w: w, c: c}
}

type countingWriter struct {
	w io.Writer
	c *Collector
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.c.bytesWritten.Add(float64(n))
	return n, err
}

// Instrument wraps p so every node dispatched through the returned
// processor is counted by kind.
//
// Only nodes dispatched by the outer fold are counted; a processor that
// recurses with its own internal dispatch functions (like the HTML
// writer) contributes its top-level nodes.
func Instrument[Acc any](c *Collector, p dom.Processor[Acc]) dom.Processor[Acc] {
	return instrumented[Acc]{c: c, inner: p}
}

type instrumented[Acc any] struct {
	c     *Collector
	inner dom.Processor[Acc]
}

// Dispatch implements dom.Processor.
func (i instrumented[Acc]) Dispatch(acc Acc) dom.ProcessFunc {
	inner := i.inner.Dispatch(acc)
	return func(n dom.Node) error {
		i.c.nodesTotal.WithLabelValues(n.Value().Kind.String()).Inc()
		return inner(n)
	}
}

// Process runs a fold with p instrumented, timing it and recording the
// outcome on c.
func Process[Acc any](c *Collector, p dom.Processor[Acc], acc Acc, nodes dom.NodeList) error {
	start := time.Now()
	err := dom.Process[Acc](Instrument[Acc](c, p), acc, nodes)
	c.foldDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		c.foldErrors.Inc()
	} else {
		c.foldsTotal.Inc()
	}
	return err
}
