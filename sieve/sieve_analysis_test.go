package sieve

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

const tol = 1e-9

func readingsWithWeights(t *testing.T, weights []float64) []Reading {
	t.Helper()
	if len(weights) != len(StandardSizes) {
		t.Fatalf("test weights cover %d sieves, want %d", len(weights), len(StandardSizes))
	}
	readings := StandardReadings()
	for i := range readings {
		readings[i].Retained = weights[i]
	}
	return readings
}

func TestAnalyzeWorkedExample(t *testing.T) {
	// 4.75, 2.36, 1.18, 0.6, 0.3, 0.15, pan
	res, err := Analyze(readingsWithWeights(t, []float64{0, 20, 20, 20, 20, 15, 5}))
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}

	wantRetained := []float64{0, 20, 20, 20, 20, 15, 5}
	wantCumulative := []float64{0, 20, 40, 60, 80, 95, 100}

	for i, row := range res.Rows {
		if math.Abs(row.PercentRetained-wantRetained[i]) > tol {
			t.Errorf("row %d: percent retained = %v, want %v", i, row.PercentRetained, wantRetained[i])
		}
		if math.Abs(row.CumulativePercent-wantCumulative[i]) > tol {
			t.Errorf("row %d: cumulative percent = %v, want %v", i, row.CumulativePercent, wantCumulative[i])
		}
		if math.Abs(row.PercentPassing-(100-wantCumulative[i])) > tol {
			t.Errorf("row %d: percent passing = %v, want %v", i, row.PercentPassing, 100-wantCumulative[i])
		}
	}

	if math.Abs(res.Summary.TotalWeight-100) > tol {
		t.Errorf("total weight = %v, want 100", res.Summary.TotalWeight)
	}
	if math.Abs(res.Summary.FinenessModulus-2.95) > tol {
		t.Errorf("fineness modulus = %v, want 2.95", res.Summary.FinenessModulus)
	}
	if res.Summary.Classification != CoarseSand {
		t.Errorf("classification = %q, want %q", res.Summary.Classification, CoarseSand)
	}
}

func TestAnalyzeInvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		weights []float64
	}{
		{name: "all zero", weights: []float64{0, 0, 0, 0, 0, 0, 0}},
		{name: "negative weight", weights: []float64{10, 20, -1, 20, 20, 15, 5}},
		{name: "NaN weight", weights: []float64{10, 20, math.NaN(), 20, 20, 15, 5}},
		{name: "infinite weight", weights: []float64{10, 20, math.Inf(1), 20, 20, 15, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Analyze(readingsWithWeights(t, tt.weights))
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("Analyze error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestAnalyzeSeriesMismatch(t *testing.T) {
	short := StandardReadings()[:4]
	if _, err := Analyze(short); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("truncated series: error = %v, want ErrInvalidInput", err)
	}

	swapped := readingsWithWeights(t, []float64{10, 10, 10, 10, 10, 10, 10})
	swapped[0].Size, swapped[1].Size = swapped[1].Size, swapped[0].Size
	if _, err := Analyze(swapped); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("reordered series: error = %v, want ErrInvalidInput", err)
	}
}

func TestAnalyzeSingleNonzeroWeight(t *testing.T) {
	// All material retained on the 0.6 mm sieve.
	res, err := Analyze(readingsWithWeights(t, []float64{0, 0, 0, 42.5, 0, 0, 0}))
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}
	for i, row := range res.Rows {
		want := 0.0
		if i >= 3 {
			want = 100.0
		}
		if math.Abs(row.CumulativePercent-want) > tol {
			t.Errorf("row %d: cumulative percent = %v, want %v", i, row.CumulativePercent, want)
		}
	}
	// FM = (0+0+0+100+100+100)/100
	if math.Abs(res.Summary.FinenessModulus-3.0) > tol {
		t.Errorf("fineness modulus = %v, want 3.0", res.Summary.FinenessModulus)
	}
}

func TestAnalyzeInvariants(t *testing.T) {
	tests := []struct {
		name    string
		weights []float64
	}{
		{name: "uniform", weights: []float64{10, 10, 10, 10, 10, 10, 10}},
		{name: "fractional grams", weights: []float64{3.3, 14.1, 22.7, 31.9, 18.4, 7.2, 2.4}},
		{name: "everything in the pan", weights: []float64{0, 0, 0, 0, 0, 0, 12}},
		{name: "tiny sample", weights: []float64{0.01, 0.02, 0.04, 0.03, 0.02, 0.01, 0.01}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Analyze(readingsWithWeights(t, tt.weights))
			if err != nil {
				t.Fatalf("Analyze returned error: %v", err)
			}
			prev := 0.0
			for i, row := range res.Rows {
				if row.CumulativePercent < prev-tol {
					t.Errorf("row %d: cumulative percent %v decreased from %v", i, row.CumulativePercent, prev)
				}
				if row.CumulativePercent < 0 || row.CumulativePercent > 100 {
					t.Errorf("row %d: cumulative percent %v outside [0,100]", i, row.CumulativePercent)
				}
				if sum := row.PercentPassing + row.CumulativePercent; math.Abs(sum-100) > tol {
					t.Errorf("row %d: passing+cumulative = %v, want 100", i, sum)
				}
				prev = row.CumulativePercent
			}
			last := res.Rows[len(res.Rows)-1]
			if math.Abs(last.CumulativePercent-100) > 1e-6 {
				t.Errorf("final cumulative percent = %v, want 100", last.CumulativePercent)
			}
		})
	}
}

func TestAnalyzeDeterministic(t *testing.T) {
	weights := []float64{3.3, 14.1, 22.7, 31.9, 18.4, 7.2, 2.4}
	first, err := Analyze(readingsWithWeights(t, weights))
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}
	second, err := Analyze(readingsWithWeights(t, weights))
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("repeated Analyze calls on identical input differ")
	}
}
