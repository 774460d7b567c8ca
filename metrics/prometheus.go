package metrics

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const (
	promNamespace       = "routequery"
	promParseSubsystem  = "parse"
	promCustomSubsystem = "custom"
)

// Prometheus implements the prometheus metrics backend.
type Prometheus struct {
	parseM           prometheus.Histogram
	parseErrorsM     prometheus.Counter
	customHistogramM *prometheus.HistogramVec
	customCounterM   *prometheus.CounterVec

	opts     Options
	registry *prometheus.Registry
}

// NewPrometheus returns a new Prometheus metric backend.
func NewPrometheus(opts Options) *Prometheus {
	namespace := promNamespace
	if opts.Prefix != "" {
		namespace = strings.TrimSuffix(opts.Prefix, ".")
	}

	if len(opts.HistogramBuckets) == 0 {
		opts.HistogramBuckets = DefaultParseBuckets
	}

	parse := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: promParseSubsystem,
		Name:      "duration_seconds",
		Help:      "Duration in seconds of parsing an api call.",
		Buckets:   opts.HistogramBuckets,
	})

	parseErrors := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: promParseSubsystem,
		Name:      "error_total",
		Help:      "The total of failed api call parses.",
	})

	customHistogram := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: promCustomSubsystem,
		Name:      "duration_seconds",
		Help:      "Duration in seconds of custom metrics.",
		Buckets:   opts.HistogramBuckets,
	}, []string{"key"})

	customCounter := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: promCustomSubsystem,
		Name:      "total",
		Help:      "Total number of custom metrics.",
	}, []string{"key"})

	p := &Prometheus{
		parseM:           parse,
		parseErrorsM:     parseErrors,
		customHistogramM: customHistogram,
		customCounterM:   customCounter,
		opts:             opts,
		registry:         prometheus.NewRegistry(),
	}

	// Register all metrics.
	p.registerMetrics()
	return p
}

// sinceS returns the seconds passed since the start time until now.
func (p *Prometheus) sinceS(start time.Time) float64 {
	return time.Since(start).Seconds()
}

func (p *Prometheus) registerMetrics() {
	p.registry.MustRegister(p.parseM)
	p.registry.MustRegister(p.parseErrorsM)
	p.registry.MustRegister(p.customHistogramM)
	p.registry.MustRegister(p.customCounterM)

	// Register prometheus runtime collectors if required.
	if p.opts.EnableRuntimeMetrics {
		p.registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		p.registry.MustRegister(collectors.NewGoCollector())
	}
}

// Registry returns the registry holding the collected metrics.
func (p *Prometheus) Registry() *prometheus.Registry {
	return p.registry
}

// MeasureSince satisfies Metrics interface.
func (p *Prometheus) MeasureSince(key string, start time.Time) {
	t := p.sinceS(start)
	if key == KeyParse {
		p.parseM.Observe(t)
		return
	}

	p.customHistogramM.WithLabelValues(key).Observe(t)
}

// IncCounter satisfies Metrics interface.
func (p *Prometheus) IncCounter(key string) {
	p.IncCounterBy(key, 1)
}

// IncCounterBy satisfies Metrics interface.
func (p *Prometheus) IncCounterBy(key string, value int64) {
	f := float64(value)
	if key == KeyParseErrors {
		p.parseErrorsM.Add(f)
		return
	}

	p.customCounterM.WithLabelValues(key).Add(f)
}

// WriteFile writes the collected metrics in the Prometheus text format.
func (p *Prometheus) WriteFile(name string) error {
	return prometheus.WriteToTextfile(name, p.registry)
}
