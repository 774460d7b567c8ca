// Copyright 2015 Zalando SE
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package apiquery

import (
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/zalando/routequery/metrics"
)

// Options for creating a Parser.
type Options struct {

	// OutputFormat used by the route requests when no output
	// parameter is present. Defaults to DefaultOutputFormat.
	OutputFormat string

	// Metrics collects the parse durations and failures. When nil, no
	// metrics are collected.
	Metrics metrics.Metrics

	// Log receives the failed parses at debug level. When nil, the
	// standard logrus logger is used.
	Log log.FieldLogger

	// Services limits the per service counters to the listed service
	// names. The calls to other services are counted as OtherService.
	// When empty, every service name gets its own counter, which is
	// only suitable for short lived processes, since the service name
	// comes from the input.
	Services []string
}

// OtherService is the counter name of the services not listed in
// Options.Services.
const OtherService = "other"

// Parser parses API calls with fixed options. It can be used from
// multiple goroutines.
type Parser struct {
	options  Options
	services map[string]bool
}

// New creates a Parser.
func New(o Options) *Parser {
	if o.OutputFormat == "" {
		o.OutputFormat = DefaultOutputFormat
	}

	if o.Metrics == nil {
		o.Metrics = metrics.Void
	}

	if o.Log == nil {
		o.Log = log.StandardLogger()
	}

	p := &Parser{options: o}
	if len(o.Services) > 0 {
		p.services = make(map[string]bool)
		for _, s := range o.Services {
			p.services[s] = true
		}
	}

	return p
}

func (p *Parser) serviceKey(service string) string {
	if p.services != nil && !p.services[service] {
		service = OtherService
	}

	return fmt.Sprintf(metrics.KeyService, service)
}

// Parse parses an API call of the form '/' service ['?' query]. The
// complete input needs to match, otherwise a *ParseError is returned.
func Parse(apiCall string) (*Call, error) {
	return parse(apiCall)
}

// ParseInto parses an API call and, only when it succeeds, reports its
// values to the handler.
func ParseInto(apiCall string, h Handler) error {
	c, err := parse(apiCall)
	if err != nil {
		return err
	}

	c.Replay(h)
	return nil
}

// Parse parses an API call, see the package level Parse.
func (p *Parser) Parse(apiCall string) (*Call, error) {
	start := time.Now()
	c, err := parse(apiCall)
	p.options.Metrics.MeasureSince(metrics.KeyParse, start)
	if err != nil {
		p.options.Metrics.IncCounter(metrics.KeyParseErrors)
		fields := log.Fields{"call": apiCall}
		var perr *ParseError
		if errors.As(err, &perr) {
			fields["position"] = perr.Position
		}

		p.options.Log.WithFields(fields).Debugf("failed to parse api call: %v", err)
		return nil, err
	}

	p.options.Metrics.IncCounter(p.serviceKey(c.Service))
	return c, nil
}

// ParseInto parses an API call, and reports it to the handler when it
// succeeds.
func (p *Parser) ParseInto(apiCall string, h Handler) error {
	c, err := p.Parse(apiCall)
	if err != nil {
		return err
	}

	c.Replay(h)
	return nil
}

// ParseRequest parses an API call into a new route request.
func (p *Parser) ParseRequest(apiCall string) (*RouteRequest, error) {
	r := NewRouteRequest(p.options.OutputFormat)
	if err := p.ParseInto(apiCall, r); err != nil {
		return nil, err
	}

	return r, nil
}
