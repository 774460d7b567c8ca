package main

import "fmt"

const helpHint = "To print routequery usage, enter:\n\nroutequery help"

const usageHeader = `Usage: routequery <command> [flags]

Commands:
  check     parse the api calls and report the failing ones
  print     parse the api calls and print the route requests
  grammar   print the grammar of the api calls
  help      print this message

Flags:`

func printHint() {
	printStderr(helpHint)
}

func helpCmd(e *env) error {
	_, err := fmt.Fprintln(e.out, usageHeader)
	if err != nil {
		return err
	}

	e.config.Flags.SetOutput(e.out)
	e.config.Flags.PrintDefaults()
	return nil
}
