package metrics

import (
	"errors"
	"path/filepath"
	"strings"
	"time"
)

// All collects the metrics with both the Prometheus and the Coda Hale
// backends.
type All struct {
	prometheus *Prometheus
	codaHale   *CodaHale
}

func NewAll(o Options) *All {
	return &All{
		prometheus: NewPrometheus(o),
		codaHale:   NewCodaHale(o),
	}
}

func (a *All) MeasureSince(key string, start time.Time) {
	a.prometheus.MeasureSince(key, start)
	a.codaHale.MeasureSince(key, start)
}

func (a *All) IncCounter(key string) {
	a.prometheus.IncCounter(key)
	a.codaHale.IncCounter(key)
}

func (a *All) IncCounterBy(key string, value int64) {
	a.prometheus.IncCounterBy(key, value)
	a.codaHale.IncCounterBy(key, value)
}

// WriteFile writes the Prometheus metrics to name, and the Coda Hale
// metrics to the same path with the extension replaced by .json.
func (a *All) WriteFile(name string) error {
	jsonName := strings.TrimSuffix(name, filepath.Ext(name)) + ".json"
	if jsonName == name {
		jsonName = strings.TrimSuffix(name, ".json") + ".codahale.json"
	}

	return errors.Join(
		a.prometheus.WriteFile(name),
		a.codaHale.WriteFile(jsonName),
	)
}
