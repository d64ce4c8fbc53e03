package main

import (
	"math"
)

// Scores above this are clamped when looking up error probabilities
const MAX_PHRED = 93

var errorProbs [MAX_PHRED + 1]float64

func init() {
	// Pre-compute error probabilities for Phred scores
	for i := range errorProbs {
		errorProbs[i] = math.Pow(10, float64(i)/-10)
	}
}

// Error probability of a single Phred score (negative scores count as certain errors)
func errorProb(q int) float64 {
	switch {
	case q <= 0:
		return 1
	case q > MAX_PHRED:
		return errorProbs[MAX_PHRED]
	}
	return errorProbs[q]
}

// Sum of error probabilities for quality scores
func sumErrorProbs(quals []int) float64 {
	var sum float64
	for _, q := range quals {
		sum += errorProb(q)
	}
	return sum
}

// Average Phred score from quality scores
func calculateAvgPhred(quals []int) float64 {
	if len(quals) == 0 {
		return 0.0
	}
	meanProb := sumErrorProbs(quals) / float64(len(quals))
	return -10 * math.Log10(meanProb)
}

// Maximum expected error (absolute number)
func calculateMaxEE(quals []int) float64 {
	if len(quals) == 0 {
		return math.Inf(1)
	}
	return sumErrorProbs(quals)
}

// Count the number of base calls below the cutoff
func countLowQualityBases(quals []int, cutoff int) int {
	count := 0
	for _, q := range quals {
		if q < cutoff {
			count++
		}
	}
	return count
}

// QualitySummary describes one score list against a cutoff
type QualitySummary struct {
	Length    int
	AvgPhred  float64
	MaxEE     float64
	LQCount   int
	LQPercent float64
}

func summarizeQuality(quals []int, cutoff int) QualitySummary {
	s := QualitySummary{
		Length:   len(quals),
		AvgPhred: calculateAvgPhred(quals),
		MaxEE:    calculateMaxEE(quals),
		LQCount:  countLowQualityBases(quals, cutoff),
	}
	if s.Length > 0 {
		s.LQPercent = float64(s.LQCount) * 100 / float64(s.Length)
	}
	return s
}
