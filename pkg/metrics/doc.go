// Package metrics provides Prometheus instrumentation for folds.
//
// A Collector owns the metric family; Instrument wraps any dom.Processor
// so that every node dispatched through it is counted by kind and the
// outer fold is timed. CountingWriter wraps a sink so written bytes feed
// the collector.
//
//	c := metrics.NewCollector(metrics.WithNamespace("myapp"))
//	w := render.New(render.Config{})
//	err := metrics.Process[io.Writer](c, w, c.CountingWriter(out), tree)
package metrics
