package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const VERSION = "1.0.0"

// Replaced in tests
var exitFunc = os.Exit

// Define color functions
var (
	bold   = color.New(color.Bold).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
)

func getColorizedLogo() string {
	return color.New(color.FgGreen).Sprint("A") +
		color.New(color.FgBlue).Sprint("C") +
		color.New(color.FgYellow).Sprint("G") +
		color.New(color.FgRed).Sprint("T")
}

// Flags of the root command
var (
	nucleotideFile string
	scoresFile     string
	cutoff         int
	outFile        string
	revComp        bool
	logFile        string
	debug          bool
	version        bool
)

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "sequencer",
		Short:         bold("Filter base calls by quality score"),
		RunE:          runDefaultCommand,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.SetHelpFunc(helpFunc)
	rootCmd.AddCommand(RevCompCommand())

	flags := rootCmd.Flags()
	flags.StringVarP(&nucleotideFile, "nucleotides", "n", "", "Input file in FASTA format containing the nucleotide sequence (required)")
	flags.StringVarP(&scoresFile, "scores", "s", "", "Input file in FASTA format containing the nucleotide scores (required)")
	flags.IntVarP(&cutoff, "cutoff", "f", DEFAULT_CUTOFF, "Signal cutoff value under which a base call is rejected")
	flags.StringVarP(&outFile, "out", "o", "", "Output file for the results (required)")
	flags.BoolVarP(&revComp, "revcomp", "r", false, "Reverse complement the sequence before filtering")
	flags.BoolVarP(&version, "version", "v", false, "Show version information")

	pflags := rootCmd.PersistentFlags()
	pflags.StringVarP(&logFile, "log", "l", DEFAULT_LOG_FILE, "Log file")
	pflags.BoolVarP(&debug, "debug", "d", false, "Write debug messages to the log file")

	return rootCmd
}

// runDefaultCommand builds a Config from the flags, validates it, and runs the filter
func runDefaultCommand(cmd *cobra.Command, args []string) error {
	if version {
		fmt.Printf("sequencer %s\n", VERSION)
		return nil
	}

	cfg := Config{
		NucleotideFile:    nucleotideFile,
		ScoresFile:        scoresFile,
		Cutoff:            cutoff,
		OutFile:           outFile,
		ReverseComplement: revComp,
		LogFile:           logFile,
	}
	if err := cfg.validate(); err != nil {
		return err
	}

	closer, err := initLogging(cfg.LogFile, debug)
	if err != nil {
		return err
	}
	defer closer.Close()

	if err := runSequencer(cfg); err != nil {
		log.Error(err.Error())
		return err
	}
	return nil
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, red("Error: "+err.Error()))
		fmt.Fprintln(os.Stderr, red("Try 'sequencer --help' for more information"))
		exitFunc(1)
	}
}
