// Subcommand (`sequencer revcomp`) for reverse-complementing a sequence without filtering

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RevCompCommand creates the `revcomp` subcommand, which writes the reverse
// complement of the first record of a nucleotide file. Gaps and ambiguity
// codes are kept as they are
func RevCompCommand() *cobra.Command {
	var (
		inFile  string
		outFile string
	)

	cmd := &cobra.Command{
		Use:   "revcomp",
		Short: "Reverse complement a single-record nucleotide file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkInputFile("nucleotide", inFile); err != nil {
				return err
			}

			closer, err := initLogging(logFile, debug)
			if err != nil {
				return err
			}
			defer closer.Close()

			return runRevComp(inFile, outFile)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&inFile, "nucleotides", "n", "", "Input nucleotide file (required, use - for stdin)")
	flags.StringVarP(&outFile, "out", "o", "", "Output file (required, use - for stdout)")
	cmd.MarkFlagRequired("nucleotides")
	cmd.MarkFlagRequired("out")

	return cmd
}

func runRevComp(inFile, outFile string) error {
	log.Infof("Nucleotide sequence file: %s", inFile)

	nucleotides, err := readRecordLine(inFile)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Writing results into %s\n", outFile)
	return writeOutput(outFile, []byte(reverseComplement(nucleotides)))
}
