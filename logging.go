package main

import (
	"fmt"
	"io"

	"github.com/shenwei356/go-logging"
	"github.com/shenwei356/xopen"
)

// DEFAULT_LOG_FILE receives all diagnostics; nothing is logged to stdout
const DEFAULT_LOG_FILE = "sequencer.log"

var log = logging.MustGetLogger("sequencer")

var logFormat = logging.MustStringFormatter(`%{module}:%{level}:%{message}`)

// initLogging sends log records to file, truncating it first. Records below
// INFO are dropped unless debug is set. The returned closer flushes the file
func initLogging(file string, debug bool) (io.Closer, error) {
	if err := checkLogFile(file); err != nil {
		return nil, err
	}

	fh, err := xopen.Wopen(file)
	if err != nil {
		return nil, fmt.Errorf("error creating log file: %v", err)
	}

	backend := logging.NewBackendFormatter(logging.NewLogBackend(fh, "", 0), logFormat)
	leveled := logging.AddModuleLevel(backend)
	if debug {
		leveled.SetLevel(logging.DEBUG, "")
	} else {
		leveled.SetLevel(logging.INFO, "")
	}
	logging.SetBackend(leveled)

	return fh, nil
}

// checkLogFile rejects log destinations that would mix with the output on stdout
func checkLogFile(file string) error {
	if file == "" || file == "-" {
		return fmt.Errorf("invalid log file %q: logging to stdout is not supported", file)
	}
	return nil
}
