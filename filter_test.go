package main

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

// Test quality filtering of base calls
func TestFilterSequence(t *testing.T) {
	tests := []struct {
		name   string
		bases  string
		scores string
		cutoff int
		want   string
	}{
		{
			name:   "Uppercase input",
			bases:  "AGTCG",
			scores: "10 19 50 40 30",
			cutoff: 20,
			want:   "--TCG",
		},
		{
			name:   "Lowercase input",
			bases:  "agtcg",
			scores: "10 19 50 40 30",
			cutoff: 20,
			want:   "--tcg",
		},
		{
			name:   "Mixed case input",
			bases:  "aGTcg",
			scores: "20 19 50 40 5",
			cutoff: 20,
			want:   "a-Tc-",
		},
		{
			name:   "Score equal to cutoff is kept",
			bases:  "AGCA",
			scores: "20 19 5 30",
			cutoff: 20,
			want:   "A--A",
		},
		{
			name:   "Single long string",
			bases:  "AGCAA",
			scores: "20 19 5 30 5",
			cutoff: 20,
			want:   "A--A-",
		},
		{
			name:   "Zero cutoff keeps everything",
			bases:  "AC-N",
			scores: "0 1 2 3",
			cutoff: 0,
			want:   "AC-N",
		},
		{
			name:   "Negative scores",
			bases:  "AC",
			scores: "-5 -1",
			cutoff: -1,
			want:   "-C",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bases := []byte(tt.bases)
			scores := strings.Split(tt.scores, " ")

			res, err := filterSequence(bases, scores, tt.cutoff)
			if err != nil {
				t.Fatalf("filterSequence() error = %v", err)
			}
			got := res.Seq
			if string(got) != tt.want {
				t.Errorf("filterSequence() = %q, want %q", got, tt.want)
			}
			if len(got) != len(bases) {
				t.Errorf("filterSequence() length = %d, want %d", len(got), len(bases))
			}
			if string(bases) != tt.bases {
				t.Errorf("filterSequence() modified its input: %q", bases)
			}
		})
	}
}

// Every position is either the original base or a gap, depending on its score
func TestFilterSequencePositions(t *testing.T) {
	bases := []byte("ACGTACGTNN")
	scores := []string{"0", "10", "19", "20", "21", "40", "5", "20", "35", "2"}
	quals, err := parseScores(scores)
	if err != nil {
		t.Fatal(err)
	}

	for _, cutoff := range []int{0, 10, 20, 21, 50} {
		res, err := filterSequence(bases, scores, cutoff)
		if err != nil {
			t.Fatalf("cutoff %d: %v", cutoff, err)
		}
		got := res.Seq
		if !reflect.DeepEqual(res.Quals, quals) {
			t.Errorf("cutoff %d: parsed scores = %v, want %v", cutoff, res.Quals, quals)
		}
		for i := range bases {
			want := byte(GAP)
			if quals[i] >= cutoff {
				want = bases[i]
			}
			if got[i] != want {
				t.Errorf("cutoff %d, position %d: got %c, want %c", cutoff, i, got[i], want)
			}
		}
	}
}

func TestFilterSequenceErrors(t *testing.T) {
	tests := []struct {
		name    string
		bases   []byte
		scores  []string
		wantErr error
	}{
		{
			name:    "Empty sequence",
			bases:   nil,
			scores:  []string{"20"},
			wantErr: ErrEmptySequence,
		},
		{
			name:    "Empty scores",
			bases:   []byte("A"),
			scores:  nil,
			wantErr: ErrEmptyScores,
		},
		{
			name:    "Both empty",
			bases:   []byte{},
			scores:  []string{},
			wantErr: ErrEmptySequence,
		},
		{
			name:    "More bases than scores",
			bases:   []byte("AGCA"),
			scores:  []string{"20", "30", "40"},
			wantErr: ErrLengthMismatch,
		},
		{
			name:    "More scores than bases",
			bases:   []byte("AG"),
			scores:  []string{"20", "30", "40"},
			wantErr: ErrLengthMismatch,
		},
		{
			name:    "Length is checked before scores are parsed",
			bases:   []byte("AG"),
			scores:  []string{"x"},
			wantErr: ErrLengthMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, cutoff := range []int{-10, 0, 20, 100} {
				got, err := filterSequence(tt.bases, tt.scores, cutoff)
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("cutoff %d: error = %v, want %v", cutoff, err, tt.wantErr)
				}
				if got != nil {
					t.Errorf("cutoff %d: got %+v, want nil", cutoff, got)
				}
			}
		})
	}

	if !errors.Is(ErrEmptyScores, ErrEmptyInput) || !errors.Is(ErrEmptySequence, ErrEmptyInput) {
		t.Error("empty-input errors should wrap ErrEmptyInput")
	}
	if errors.Is(ErrLengthMismatch, ErrEmptyInput) {
		t.Error("ErrLengthMismatch should not be an empty-input error")
	}
}

func TestFilterSequenceBadScores(t *testing.T) {
	tests := []struct {
		name    string
		bases   string
		scores  []string
		wantPos int
		wantTok string
	}{
		{
			name:    "All tokens invalid",
			bases:   "ygERR",
			scores:  []string{"g", "g", "h", "&", "x"},
			wantPos: 0,
			wantTok: "g",
		},
		{
			name:    "Invalid token in the middle",
			bases:   "ACGT",
			scores:  []string{"20", "30", "3.5", "x"},
			wantPos: 2,
			wantTok: "3.5",
		},
		{
			name:    "Empty token from a double space",
			bases:   "ACG",
			scores:  []string{"20", "", "30"},
			wantPos: 1,
			wantTok: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := filterSequence([]byte(tt.bases), tt.scores, 20)
			var scoreErr *ScoreError
			if !errors.As(err, &scoreErr) {
				t.Fatalf("filterSequence() error = %v, want *ScoreError", err)
			}
			if scoreErr.Pos != tt.wantPos || scoreErr.Token != tt.wantTok {
				t.Errorf("ScoreError = {%d %q}, want {%d %q}", scoreErr.Pos, scoreErr.Token, tt.wantPos, tt.wantTok)
			}
		})
	}
}
