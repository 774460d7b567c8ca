package main

import (
	"bufio"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"golang.org/x/term"
)

const (
	stdinPath     = "-"
	commentPrefix = "#"
)

var missingInput = errors.New("missing input: set -url or -file, or pipe the api calls to stdin")

// apiCall is a single api call of the input, with its line number.
type apiCall struct {
	line int
	text string
}

func readCalls(r io.Reader) ([]apiCall, error) {
	var calls []apiCall
	s := bufio.NewScanner(r)
	for line := 1; s.Scan(); line++ {
		text := strings.TrimSpace(s.Text())
		if text == "" || strings.HasPrefix(text, commentPrefix) {
			continue
		}

		calls = append(calls, apiCall{line: line, text: text})
	}

	return calls, s.Err()
}

// decompress handles the compressed files, e.g. rotated access logs, based
// on their extension. Closing the returned reader does not close r.
func decompress(path string, r io.Reader) (io.ReadCloser, error) {
	switch filepath.Ext(path) {
	case ".gz":
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, err
		}

		return zr, nil
	case ".br":
		return io.NopCloser(brotli.NewReader(r)), nil
	default:
		return io.NopCloser(r), nil
	}
}

func loadFile(path string) ([]apiCall, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	defer f.Close()
	r, err := decompress(path, f)
	if err != nil {
		return nil, err
	}

	defer r.Close()
	return readCalls(r)
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func loadCalls(e *env) ([]apiCall, error) {
	switch {
	case e.config.URL != "":
		return []apiCall{{line: 1, text: e.config.URL}}, nil
	case e.config.File != "" && e.config.File != stdinPath:
		return loadFile(e.config.File)
	case isTerminal(e.in):
		return nil, missingInput
	default:
		return readCalls(e.in)
	}
}
