/*
This command provides utilities to check and print route API calls.

The commands:

	routequery check -url '/viaroute?loc=52.5,13.4&loc=52.6,13.5'
	routequery print -file calls.txt -format yaml
	routequery grammar
	routequery help

When neither -url nor -file is set, the calls are read from the
standard input, one per line. Empty lines and lines starting with #
are skipped.
*/
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/zalando/routequery/apiquery"
	"github.com/zalando/routequery/config"
	"github.com/zalando/routequery/logging"
	"github.com/zalando/routequery/metrics"
)

type (
	command     string
	commandFunc func(e *env) error
)

const (
	check   command = "check"
	print   command = "print"
	grammar command = "grammar"
	help    command = "help"
)

var commands = map[command]commandFunc{
	check:   checkCmd,
	print:   printCmd,
	grammar: grammarCmd,
	help:    helpCmd,
}

var (
	missingCommand = errors.New("missing command")
	invalidCommand = errors.New("invalid command")
)

// env holds what the commands operate on.
type env struct {
	config *config.Config
	parser *apiquery.Parser
	in     io.Reader
	out    io.Writer
}

func printStderr(args ...interface{}) {
	fmt.Fprintln(os.Stderr, args...)
}

func exitErrHint(err error, hint bool) {
	if err == nil {
		os.Exit(0)
	}

	printStderr(err)
	if hint {
		printStderr()
		printHint()
	}

	os.Exit(-1)
}

func exitHint(err error) { exitErrHint(err, true) }
func exit(err error)     { exitErrHint(err, false) }

func getCommand(args []string) (command, error) {
	if len(args) < 2 {
		return "", missingCommand
	}

	cmd := command(args[1])
	if _, ok := commands[cmd]; ok {
		return cmd, nil
	} else {
		return "", invalidCommand
	}
}

func newEnv(cfg *config.Config, m metrics.Metrics, in io.Reader, out io.Writer) *env {
	return &env{
		config: cfg,
		parser: apiquery.New(cfg.ToParserOptions(m, log.StandardLogger())),
		in:     in,
		out:    out,
	}
}

func run(cmd command, cfg *config.Config) error {
	if err := logging.Init(cfg.ToLoggingOptions()); err != nil {
		return err
	}

	m := metrics.New(cfg.ToMetricsOptions())
	err := commands[cmd](newEnv(cfg, m, os.Stdin, os.Stdout))
	if cfg.MetricsFile != "" {
		if werr := m.WriteFile(cfg.MetricsFile); werr != nil {
			log.Errorf("Failed to write metrics to %s: %v", cfg.MetricsFile, werr)
		}
	}

	return err
}

func main() {
	cmd, err := getCommand(os.Args)
	if err != nil {
		exitHint(err)
	}

	cfg := config.NewConfig()
	if err := cfg.ParseArgs(os.Args[0], os.Args[2:]); err != nil {
		exitHint(err)
	}

	if cmd == help {
		exit(helpCmd(&env{config: cfg, out: os.Stderr}))
	}

	exit(run(cmd, cfg))
}
