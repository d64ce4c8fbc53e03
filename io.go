// Sequencer I/O utilities for single-record FASTA-like files

package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shenwei356/util/pathutil"
	"github.com/shenwei356/xopen"
)

// ErrNoRecord is returned by readRecordLine when a file holds no header followed by content
var ErrNoRecord = errors.New("no sequence record found")

// extractRecordLine returns the first content line following the first FASTA
// header ('>') in file, without its line ending. Any further records are
// ignored. ok is false when there is no header, or no content line after it
//
// Plain and compressed files are both accepted (via xopen), and "-" reads stdin
func extractRecordLine(file string) (line string, ok bool, err error) {
	fh, err := xopen.Ropen(file)
	if errors.Is(err, xopen.ErrNoContent) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("error opening %s: %v", file, err)
	}
	defer fh.Close()

	headerFound := false
	for {
		l, err := fh.ReadString('\n')
		if len(l) > 0 {
			if strings.HasPrefix(l, ">") {
				headerFound = true
			} else if headerFound {
				return strings.TrimRight(l, "\r\n"), true, nil
			}
		}
		if err == io.EOF {
			return "", false, nil
		}
		if err != nil {
			return "", false, fmt.Errorf("error reading %s: %v", file, err)
		}
	}
}

// readRecordLine is extractRecordLine for callers that cannot go on without a record
func readRecordLine(file string) (string, error) {
	line, ok, err := extractRecordLine(file)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("%w in %s", ErrNoRecord, file)
	}
	return line, nil
}

// splitScores splits a score line on single spaces, one token per base call
func splitScores(line string) []string {
	if line == "" {
		return nil
	}
	return strings.Split(line, " ")
}

// writeOutput writes data to file, replacing any existing content.
// A compression suffix (.gz, .xz, .zst, .bz2) compresses the output, "-" is stdout
func writeOutput(file string, data []byte) error {
	outfh, err := xopen.Wopen(file)
	if err != nil {
		return fmt.Errorf("error creating output file: %v", err)
	}

	if _, err = outfh.Write(data); err != nil {
		outfh.Close()
		return fmt.Errorf("error writing output file: %v", err)
	}
	if err = outfh.Close(); err != nil {
		return fmt.Errorf("error closing output file: %v", err)
	}
	return nil
}

// checkInputFile fails when a named input file does not exist ("-" is stdin)
func checkInputFile(flag, file string) error {
	if file == "-" {
		return nil
	}
	exists, err := pathutil.Exists(file)
	if err != nil {
		return fmt.Errorf("error checking %s file %s: %v", flag, file, err)
	}
	if !exists {
		return fmt.Errorf("%s file does not exist: %s", flag, file)
	}
	return nil
}
