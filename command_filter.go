// Main command (`sequencer`) for quality filtering of a single base-call sequence

package main

import (
	"errors"
	"fmt"
	"os"
)

// Default quality cutoff; a base call needs at least this score to be kept
const DEFAULT_CUTOFF = 20

// Config holds everything a run needs, parsed once from the command line
type Config struct {
	NucleotideFile    string // Single-record FASTA-like file with the base calls
	ScoresFile        string // Single-record FASTA-like file with space-separated scores
	Cutoff            int
	OutFile           string
	ReverseComplement bool
	LogFile           string
}

func (cfg Config) validate() error {
	if cfg.NucleotideFile == "" || cfg.ScoresFile == "" || cfg.OutFile == "" {
		return errors.New("nucleotide (-n), scores (-s) and output (-o) files are required")
	}
	if err := checkInputFile("nucleotide", cfg.NucleotideFile); err != nil {
		return err
	}
	if err := checkInputFile("scores", cfg.ScoresFile); err != nil {
		return err
	}
	if cfg.NucleotideFile == "-" && cfg.ScoresFile == "-" {
		return errors.New("only one of the input files can be read from stdin")
	}
	return checkLogFile(cfg.LogFile)
}

// runSequencer is the linear filtering pipeline: read the scores and the
// nucleotides, optionally reverse-complement both, filter, and write the result.
// The first failure aborts the run; nothing is written in that case
func runSequencer(cfg Config) error {
	log.Infof("Nucleotide sequence file: %s", cfg.NucleotideFile)
	log.Infof("Nucleotide scores file: %s", cfg.ScoresFile)

	scoreLine, err := readRecordLine(cfg.ScoresFile)
	if err != nil {
		return err
	}
	scores := splitScores(scoreLine)

	nucleotides, err := readRecordLine(cfg.NucleotideFile)
	if err != nil {
		return err
	}

	if cfg.ReverseComplement {
		log.Info("Reverse complement specified")
		scores = reverseScores(scores)
		nucleotides = reverseComplement(nucleotides)
	}

	res, err := filterSequence([]byte(nucleotides), scores, cfg.Cutoff)
	if err != nil {
		return err
	}

	s := summarizeQuality(res.Quals, cfg.Cutoff)
	log.Infof("Average Phred score: %.2f, expected errors: %.4f", s.AvgPhred, s.MaxEE)
	log.Infof("Rejected %d of %d base calls (%.2f%%)", s.LQCount, s.Length, s.LQPercent)

	fmt.Fprintf(os.Stderr, "Writing results into %s\n", cfg.OutFile)
	return writeOutput(cfg.OutFile, res.Seq)
}
