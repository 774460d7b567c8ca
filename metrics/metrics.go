package metrics

import (
	"strings"
	"time"
)

const (
	KeyParse       = "parse"
	KeyParseErrors = "errors.parse"
	KeyService     = "service.%s"
)

// Kind is the backend of the collected metrics.
type Kind int

const (
	UnkownKind Kind = iota
	CodaHaleKind
	PrometheusKind
	AllKind
)

func (k Kind) String() string {
	switch k {
	case CodaHaleKind:
		return "codahale"
	case PrometheusKind:
		return "prometheus"
	case AllKind:
		return "all"
	default:
		return "unknown"
	}
}

// ParseMetricsKind returns the kind of the metrics backend for a name,
// case insensitive.
func ParseMetricsKind(t string) Kind {
	switch strings.ToLower(t) {
	case "codahale":
		return CodaHaleKind
	case "prometheus":
		return PrometheusKind
	case "all":
		return AllKind
	default:
		return UnkownKind
	}
}

// Metrics is the interface of the metrics backends.
type Metrics interface {
	MeasureSince(key string, start time.Time)
	IncCounter(key string)
	IncCounterBy(key string, value int64)

	// WriteFile writes the current values of the metrics to a file.
	WriteFile(name string) error
}

// Options for initializing metrics collection.
type Options struct {

	// The metrics backend. Defaults to CodaHaleKind.
	Format Kind

	// Common prefix for the keys of the different collected metrics.
	// With Prometheus, it is used as the namespace.
	Prefix string

	// If set, Go runtime metrics are collected in addition to the
	// parse metrics.
	EnableRuntimeMetrics bool

	// If set, the Coda Hale timers use an exponentially decaying
	// sample instead of a uniform one.
	UseExpDecaySample bool

	// Histogram buckets for the Prometheus backend. Defaults to
	// DefaultParseBuckets.
	HistogramBuckets []float64
}

// DefaultParseBuckets are the Prometheus histogram buckets for parse
// durations, in seconds.
var DefaultParseBuckets = []float64{
	.000001, .0000025, .000005, .00001, .000025, .00005, .0001, .00025, .0005, .001,
}

// Void discards all the metrics.
var Void Metrics = voidMetrics{}

// New creates a metrics backend with the given options.
func New(o Options) Metrics {
	switch o.Format {
	case PrometheusKind:
		return NewPrometheus(o)
	case AllKind:
		return NewAll(o)
	default:
		return NewCodaHale(o)
	}
}

type voidMetrics struct{}

func (voidMetrics) MeasureSince(string, time.Time) {}
func (voidMetrics) IncCounter(string)              {}
func (voidMetrics) IncCounterBy(string, int64)     {}
func (voidMetrics) WriteFile(string) error         { return nil }
