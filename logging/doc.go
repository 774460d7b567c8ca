/*
Package logging implements the application log initialization.

Application Log

The application log uses the logrus package:

https://github.com/sirupsen/logrus

To send messages to the application log, import this package and use its
methods. Example:

    import log "github.com/sirupsen/logrus"

    func doSomething() {
        log.Errorf("nothing to do")
    }

During startup initialization, it is possible to redirect the log output
from the default /dev/stderr to another writer, to set the log level, to
switch to JSON formatted entries, and to set a common prefix for each
log entry. Setting the prefix may be a good idea when the log output is
mixed with the output of the parsed api calls, to make it easier to
split the output for diagnostics.
*/
package logging
