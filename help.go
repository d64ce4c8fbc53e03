package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Custom help function used
// It provides nicely formatted help messages for the root command and the revcomp subcommand
func helpFunc(cmd *cobra.Command, args []string) {

	if cmd.Name() == "revcomp" {
		fmt.Printf(`
%s

%s
  Write the reverse complement of the first record of a nucleotide file.
  Only A/T and G/C are complemented (case is kept); gaps and ambiguity
  codes stay as they are.

%s
  %s
  %s
  %s
  %s

%s
  %s

`,
			bold(getColorizedLogo()+" sequencer revcomp - Reverse complements a sequence"),
			bold(yellow("Description:")),
			bold(yellow("Flags:")),
			cyan("-n, --nucleotides")+" <string> : Input nucleotide file (required, use '-' for stdin)",
			cyan("-o, --out")+" <string>         : Output file (required, use '-' for stdout)",
			cyan("-l, --log")+" <string>         : Log file (default, 'sequencer.log')",
			cyan("-d, --debug")+"                : Write debug messages to the log file",
			bold(yellow("Examples:")),
			cyan("sequencer revcomp -n seq.fasta -o seq_rc.txt"),
		)
		return
	}

	fmt.Printf(`
%s

%s
  Base calls with a quality score below the cutoff are replaced by a gap ('-').
  Both input files hold a single FASTA-like record: a '>' header line followed
  by one line of content (bases, or space-separated integer scores).

%s
  %s
  %s
  %s
  %s
  %s
  %s
  %s
  %s
  %s

%s
  %s

%s
  %s
  %s

`,
		bold(getColorizedLogo()+" sequencer v."+VERSION+" - Filters base calls by quality score"),
		bold(yellow("Description:")),
		bold(yellow("Flags:")),
		cyan("-n, --nucleotides")+" <string> : Nucleotide sequence file (required)",
		cyan("-s, --scores")+" <string>      : Quality scores file (required)",
		cyan("-f, --cutoff")+" <int>         : Signal cutoff under which a base call is rejected (default, 20)",
		cyan("-o, --out")+" <string>         : Output file (required, use '-' for stdout)",
		cyan("-r, --revcomp")+"              : Reverse complement the sequence before filtering",
		cyan("-l, --log")+" <string>         : Log file (default, 'sequencer.log')",
		cyan("-d, --debug")+"                : Write debug messages to the log file",
		cyan("-h, --help")+"                 : Show help message",
		cyan("-v, --version")+"              : Show version information",
		bold(yellow("Subcommands:")),
		cyan("revcomp")+" : Reverse complement a sequence without filtering",
		bold(yellow("Usage examples:")),
		cyan("sequencer -n seq.fasta -s scores.fasta -o filtered.txt"),
		cyan("sequencer -n seq.fasta -s scores.fasta -f 30 -r -o filtered.txt"),
	)
}
