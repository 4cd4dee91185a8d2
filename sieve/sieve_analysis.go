package sieve

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput is returned when the supplied readings cannot be analyzed:
// a weight is negative or not finite, the series does not match the standard
// sieve set, or the total weight is not positive.
var ErrInvalidInput = errors.New("invalid sieve input")

// Analyze runs a full sieve analysis over one set of readings. The readings
// must cover the standard series in order; blank entries are represented as
// zero weights. The computation is pure: identical input always yields an
// identical result.
func Analyze(readings []Reading) (*Result, error) {
	if len(readings) != len(StandardSizes) {
		return nil, fmt.Errorf("%w: expected %d sieves, got %d",
			ErrInvalidInput, len(StandardSizes), len(readings))
	}

	total := 0.0
	for i, r := range readings {
		if r.Size != StandardSizes[i] {
			return nil, fmt.Errorf("%w: sieve %d is %v mm, expected %v mm",
				ErrInvalidInput, i+1, r.Size, StandardSizes[i])
		}
		if math.IsNaN(r.Retained) || math.IsInf(r.Retained, 0) {
			return nil, fmt.Errorf("%w: weight for %s is not a finite number",
				ErrInvalidInput, SizeLabel(r.Size))
		}
		if r.Retained < 0 {
			return nil, fmt.Errorf("%w: weight for %s is negative (%.2f g)",
				ErrInvalidInput, SizeLabel(r.Size), r.Retained)
		}
		total += r.Retained
	}
	if total <= 0 {
		return nil, fmt.Errorf("%w: total weight must be greater than zero", ErrInvalidInput)
	}

	rows := make([]ResultRow, len(readings))
	cumulative := 0.0
	fmSum := 0.0
	for i, r := range readings {
		cumulative += r.Retained
		cumulativePct := clampPercent(100 * cumulative / total)
		rows[i] = ResultRow{
			Size:               r.Size,
			Retained:           r.Retained,
			CumulativeRetained: cumulative,
			PercentRetained:    100 * r.Retained / total,
			CumulativePercent:  cumulativePct,
			PercentPassing:     100 - cumulativePct,
			Limit:              limitFor(r.Size),
		}
		// The pan fraction is excluded from the fineness modulus by definition.
		if r.Size != PanSize {
			fmSum += cumulativePct
		}
	}

	fm := fmSum / 100
	return &Result{
		Rows: rows,
		Summary: Summary{
			TotalWeight:     total,
			FinenessModulus: fm,
			Classification:  Classify(fm),
		},
	}, nil
}

// clampPercent absorbs floating-point drift at the interval edges.
func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
