package sieve

import "fmt"

// PanSize is the sentinel opening size for the pan at the bottom of the stack.
const PanSize = 0.0

// StandardSizes is the fine-aggregate sieve series in mm, coarsest first,
// with the pan as the final entry.
var StandardSizes = []float64{4.75, 2.36, 1.18, 0.6, 0.3, 0.15, PanSize}

// Reading is one raw weight measurement for a single sieve.
type Reading struct {
	Size     float64 // opening size in mm, PanSize for the pan
	Retained float64 // weight retained on the sieve in grams
}

// ResultRow is the computed analysis for a single sieve. Rows are created by
// Analyze and never mutated afterwards.
type ResultRow struct {
	Size               float64
	Retained           float64 // grams
	CumulativeRetained float64 // grams, running sum down the stack
	PercentRetained    float64
	CumulativePercent  float64 // cumulative percent retained, clamped to [0,100]
	PercentPassing     float64
	Limit              GradationLimit
}

// Summary holds the whole-sample figures derived from one analysis.
type Summary struct {
	TotalWeight     float64 // grams
	FinenessModulus float64
	Classification  string
}

// Result is the full output of a single Analyze call.
type Result struct {
	Rows    []ResultRow
	Summary Summary
}

// StandardReadings returns the standard sieve series with zero weights,
// ready to be filled in from the entry form.
func StandardReadings() []Reading {
	readings := make([]Reading, len(StandardSizes))
	for i, size := range StandardSizes {
		readings[i] = Reading{Size: size}
	}
	return readings
}

// SizeLabel formats a sieve opening for display: "4.75 mm", or "Pan".
func SizeLabel(size float64) string {
	if size == PanSize {
		return "Pan"
	}
	return fmt.Sprintf("%.2f mm", size)
}
