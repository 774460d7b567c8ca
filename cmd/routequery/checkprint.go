package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"runtime"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"sigs.k8s.io/yaml"

	"github.com/zalando/routequery/apiquery"
	"github.com/zalando/routequery/config"
)

var invalidFormat = errors.New("invalid format")

type parsedCall struct {
	apiCall
	request *apiquery.RouteRequest
}

// parseCalls returns the successfully parsed calls, and the errors of
// the failing ones, joined. The calls are parsed concurrently, the order
// of the input is kept.
func parseCalls(e *env) ([]parsedCall, error) {
	calls, err := loadCalls(e)
	if err != nil {
		return nil, err
	}

	requests := make([]*apiquery.RouteRequest, len(calls))
	errs := make([]error, len(calls))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, c := range calls {
		g.Go(func() error {
			r, err := e.parser.ParseRequest(c.text)
			if err == nil {
				err = r.Validate()
			}

			if err != nil {
				errs[i] = fmt.Errorf("line %d: %w", c.line, err)
				return nil
			}

			requests[i] = r
			return nil
		})
	}

	// the tasks don't fail, errors are collected per line
	_ = g.Wait()

	var parsed []parsedCall
	for i, r := range requests {
		if r != nil {
			parsed = append(parsed, parsedCall{apiCall: calls[i], request: r})
		}
	}

	log.Debugf("parsed %d api calls, %d failed", len(parsed), len(calls)-len(parsed))
	return parsed, errors.Join(errs...)
}

func writeRequest(out io.Writer, format string, r *apiquery.RouteRequest) error {
	var (
		b   []byte
		err error
	)

	switch format {
	case config.FormatJSON:
		b, err = json.MarshalIndent(r, "", "  ")
		b = append(b, '\n')
	case config.FormatYAML:
		b, err = yaml.Marshal(r)
		b = append([]byte("---\n"), b...)
	case config.FormatCanonical:
		b = []byte(r.String() + "\n")
	default:
		return invalidFormat
	}

	if err != nil {
		return err
	}

	_, err = out.Write(b)
	return err
}

func checkCmd(e *env) error {
	_, err := parseCalls(e)
	return err
}

func printCmd(e *env) error {
	parsed, err := parseCalls(e)
	for _, p := range parsed {
		if werr := writeRequest(e.out, e.config.Format, p.request); werr != nil {
			return werr
		}
	}

	return err
}

func grammarCmd(e *env) error {
	if _, err := apiquery.Grammar(); err != nil {
		return err
	}

	_, err := fmt.Fprint(e.out, apiquery.GrammarDoc())
	return err
}
