package main

import (
	"github.com/shenwei356/bio/seq"
)

var complementable [256]bool

func init() {
	for _, b := range []byte("ACGTacgt") {
		complementable[b] = true
	}
}

// reverseComplement reverses s symbol by symbol and complements A/T and G/C,
// keeping the case of each symbol. Anything else (gaps, IUPAC codes,
// whitespace, non-ASCII characters) is copied unchanged to its mirrored position
func reverseComplement(s string) string {
	rs := []rune(s)
	n := len(rs)
	rc := make([]rune, n)
	for i, r := range rs {
		if r < 256 && complementable[r] {
			if p, err := seq.DNA.PairLetter(byte(r)); err == nil {
				r = rune(p)
			}
		}
		rc[n-1-i] = r
	}
	return string(rc)
}

// reverseScores returns the score tokens in reverse order, so that they
// still line up with a reverse-complemented sequence
func reverseScores(scores []string) []string {
	n := len(scores)
	rev := make([]string, n)
	for i, s := range scores {
		rev[n-1-i] = s
	}
	return rev
}
