// Quality-threshold filtering of base calls

package main

import (
	"errors"
	"fmt"
	"strconv"
)

// GAP is emitted in place of a base call whose score is below the cutoff
const GAP = '-'

var (
	// ErrEmptyInput is the soft failure returned when there is nothing to filter.
	// Use errors.Is to tell it apart from malformed input
	ErrEmptyInput    = errors.New("empty input")
	ErrEmptySequence = fmt.Errorf("nucleotide sequence is empty: %w", ErrEmptyInput)
	ErrEmptyScores   = fmt.Errorf("quality score list is empty: %w", ErrEmptyInput)

	// ErrLengthMismatch indicates malformed data: every base call needs exactly one score
	ErrLengthMismatch = errors.New("nucleotide and score lists are not equal in length")
)

// ScoreError reports a score token that is not an integer
type ScoreError struct {
	Pos   int    // 0-based position in the score list
	Token string // Offending token
	Err   error
}

func (e *ScoreError) Error() string {
	return fmt.Sprintf("invalid quality score %q at position %d: %v", e.Token, e.Pos+1, e.Err)
}

func (e *ScoreError) Unwrap() error { return e.Err }

// parseScores converts score tokens to integers, stopping at the first bad token
func parseScores(tokens []string) ([]int, error) {
	scores := make([]int, len(tokens))
	for i, tok := range tokens {
		q, err := strconv.Atoi(tok)
		if err != nil {
			return nil, &ScoreError{Pos: i, Token: tok, Err: err}
		}
		scores[i] = q
	}
	return scores, nil
}

// FilterResult is a successful filtering run
type FilterResult struct {
	Seq   []byte // Filtered base calls, same length as the input
	Quals []int  // Parsed scores, parallel to Seq
}

// filterSequence replaces every base call scoring below cutoff with a gap.
// A score equal to the cutoff is retained. The inputs are left untouched and
// the filtered sequence always has the same length as bases
//
// Errors, in the order they are checked:
//   - ErrEmptySequence / ErrEmptyScores when either list is empty
//   - ErrLengthMismatch when the lists differ in length
//   - *ScoreError for the first score that is not an integer
func filterSequence(bases []byte, scores []string, cutoff int) (*FilterResult, error) {
	log.Debugf("Input nucleotides: %s", bases)
	log.Debugf("Input quality scores: %v", scores)

	if len(bases) == 0 {
		log.Error("Nucleotide sequence is empty, aborting")
		return nil, ErrEmptySequence
	}
	if len(scores) == 0 {
		log.Error("Quality score list is empty, aborting")
		return nil, ErrEmptyScores
	}

	log.Debugf("Nucleotide list length: %d, quality list length: %d", len(bases), len(scores))
	if len(bases) != len(scores) {
		return nil, fmt.Errorf("%w (%d bases, %d scores)", ErrLengthMismatch, len(bases), len(scores))
	}

	quals, err := parseScores(scores)
	if err != nil {
		return nil, err
	}

	log.Infof("Signal threshold has been set to %d", cutoff)
	filtered := make([]byte, len(bases))
	for i, q := range quals {
		if q >= cutoff {
			filtered[i] = bases[i]
		} else {
			filtered[i] = GAP
		}
	}

	return &FilterResult{Seq: filtered, Quals: quals}, nil
}
