/*
Package metrics implements collection of the parse metrics.

Two backends are supported: the Go implementation of the Coda Hale
metrics library:

https://github.com/dropwizard/metrics

and Prometheus:

https://prometheus.io

The collected metrics include the duration of the parse calls, the
number of failed parses and the number of parsed calls per service.
For the keys used for the different metrics, please, see the Key*
constants.

The collected values can be written to a file with WriteFile: the
Prometheus backend writes the text exposition format, the Coda Hale
backend writes JSON.
*/
package metrics
