package config

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"

	"github.com/zalando/routequery/apiquery"
	"github.com/zalando/routequery/logging"
	"github.com/zalando/routequery/metrics"
)

// Output formats of the parsed route requests.
const (
	FormatJSON      = "json"
	FormatYAML      = "yaml"
	FormatCanonical = "canonical"
)

type Config struct {
	ConfigFile string
	Flags      *flag.FlagSet

	// parser:
	OutputFormat string `yaml:"output-format"`
	Format       string `yaml:"format"`

	// input:
	URL  string `yaml:"url"`
	File string `yaml:"file"`

	// logging:
	ApplicationLogLevel       log.Level `yaml:"-"`
	ApplicationLogLevelString string    `yaml:"application-log-level"`
	ApplicationLogPrefix      string    `yaml:"application-log-prefix"`
	ApplicationLogJSONEnabled bool      `yaml:"application-log-json-enabled"`

	// metrics:
	MetricsFlavour               string    `yaml:"metrics-flavour"`
	MetricsFile                  string    `yaml:"metrics-file"`
	MetricsPrefix                string    `yaml:"metrics-prefix"`
	EnableRuntimeMetrics         bool      `yaml:"runtime-metrics"`
	MetricsUseExpDecaySample     bool      `yaml:"metrics-exp-decay-sample"`
	HistogramMetricBuckets       []float64 `yaml:"-"`
	HistogramMetricBucketsString string    `yaml:"histogram-metric-buckets"`
}

const (
	outputFormatUsage    = "output format assumed by the route requests when the call has no output parameter"
	formatUsage          = "format of the printed route requests: json, yaml or canonical"
	urlUsage             = "api call to process, e.g. /viaroute?loc=52.5,13.4&loc=52.6,13.5"
	fileUsage            = "file containing api calls, one per line, use - for stdin"
	metricsFlavourUsage  = "metrics backend: codahale, prometheus or all"
	metricsFileUsage     = "when set, the collected metrics are written to this file before exiting"
	histogramBucketUsage = "use custom buckets for the parse duration histogram, comma separated, in seconds"
)

func NewConfig() *Config {
	cfg := new(Config)

	flag := flag.NewFlagSet("", flag.ExitOnError)
	flag.StringVar(&cfg.ConfigFile, "config-file", "", "if provided the flags will be loaded/overwritten by the values on the file (yaml)")

	// parser:
	flag.StringVar(&cfg.OutputFormat, "output-format", apiquery.DefaultOutputFormat, outputFormatUsage)
	flag.StringVar(&cfg.Format, "format", FormatJSON, formatUsage)

	// input:
	flag.StringVar(&cfg.URL, "url", "", urlUsage)
	flag.StringVar(&cfg.File, "file", "", fileUsage)

	// logging:
	flag.StringVar(&cfg.ApplicationLogLevelString, "application-log-level", "info", "log level for application logs, possible values: PANIC, FATAL, ERROR, WARN, INFO, DEBUG")
	flag.StringVar(&cfg.ApplicationLogPrefix, "application-log-prefix", "", "prefix for each log entry")
	flag.BoolVar(&cfg.ApplicationLogJSONEnabled, "application-log-json-enabled", false, "when this flag is set, log in JSON format is used")

	// metrics:
	flag.StringVar(&cfg.MetricsFlavour, "metrics-flavour", "codahale", metricsFlavourUsage)
	flag.StringVar(&cfg.MetricsFile, "metrics-file", "", metricsFileUsage)
	flag.StringVar(&cfg.MetricsPrefix, "metrics-prefix", "routequery.", "allows setting a custom path prefix for metrics export")
	flag.BoolVar(&cfg.EnableRuntimeMetrics, "runtime-metrics", false, "enables reporting the Go runtime statistics")
	flag.BoolVar(&cfg.MetricsUseExpDecaySample, "metrics-exp-decay-sample", false, "use exponentially-decaying sample in timers")
	flag.StringVar(&cfg.HistogramMetricBucketsString, "histogram-metric-buckets", "", histogramBucketUsage)

	cfg.Flags = flag
	return cfg
}

func validate(c *Config) error {
	_, err := log.ParseLevel(c.ApplicationLogLevelString)
	if err != nil {
		return err
	}

	switch c.Format {
	case FormatJSON, FormatYAML, FormatCanonical:
	default:
		return fmt.Errorf("invalid format: %q", c.Format)
	}

	if metrics.ParseMetricsKind(c.MetricsFlavour) == metrics.UnkownKind {
		return fmt.Errorf("invalid metrics flavour: %q", c.MetricsFlavour)
	}

	if c.URL != "" && c.File != "" {
		return fmt.Errorf("only one of url and file can be set")
	}

	_, err = parseHistogramBuckets(c.HistogramMetricBucketsString, metrics.DefaultParseBuckets)
	return err
}

func (c *Config) Parse() error {
	return c.ParseArgs(os.Args[0], os.Args[1:])
}

// ParseArgs parses the flags, and when a config file is set, loads it and
// lets the flags override its values.
func (c *Config) ParseArgs(progname string, args []string) error {
	c.Flags.Init(progname, flag.ExitOnError)
	err := c.Flags.Parse(args)
	if err != nil {
		return err
	}

	// check if arguments were correctly parsed.
	if len(c.Flags.Args()) != 0 {
		return fmt.Errorf("invalid arguments: %s", c.Flags.Args())
	}

	if c.ConfigFile != "" {
		yamlFile, err := os.ReadFile(c.ConfigFile)
		if err != nil {
			return fmt.Errorf("invalid config file: %w", err)
		}

		err = yaml.Unmarshal(yamlFile, c)
		if err != nil {
			return fmt.Errorf("unmarshalling config file error: %w", err)
		}

		err = c.Flags.Parse(args)
		if err != nil {
			return err
		}
	}

	if err := validate(c); err != nil {
		return err
	}

	c.ApplicationLogLevel, _ = log.ParseLevel(c.ApplicationLogLevelString)
	c.HistogramMetricBuckets, _ = parseHistogramBuckets(c.HistogramMetricBucketsString, metrics.DefaultParseBuckets)
	return nil
}

func (c *Config) ToLoggingOptions() logging.Options {
	return logging.Options{
		ApplicationLogLevel:       c.ApplicationLogLevel.String(),
		ApplicationLogPrefix:      c.ApplicationLogPrefix,
		ApplicationLogJSONEnabled: c.ApplicationLogJSONEnabled,
	}
}

func (c *Config) ToMetricsOptions() metrics.Options {
	return metrics.Options{
		Format:               metrics.ParseMetricsKind(c.MetricsFlavour),
		Prefix:               c.MetricsPrefix,
		EnableRuntimeMetrics: c.EnableRuntimeMetrics,
		UseExpDecaySample:    c.MetricsUseExpDecaySample,
		HistogramBuckets:     c.HistogramMetricBuckets,
	}
}

// ToParserOptions returns the options of the api call parser. The metrics
// and the log are passed in by the caller, they are shared with the rest
// of the application.
func (c *Config) ToParserOptions(m metrics.Metrics, l log.FieldLogger) apiquery.Options {
	return apiquery.Options{
		OutputFormat: c.OutputFormat,
		Metrics:      m,
		Log:          l,
	}
}

func parseHistogramBuckets(bucketString string, defaultBuckets []float64) ([]float64, error) {
	if bucketString == "" {
		return defaultBuckets, nil
	}

	var result []float64
	thresholds := strings.Split(bucketString, ",")
	for _, v := range thresholds {
		bucket, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil, fmt.Errorf("unable to parse histogram-metric-buckets: %w", err)
		}
		result = append(result, bucket)
	}
	sort.Float64s(result)
	return result, nil
}
