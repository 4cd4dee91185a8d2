package sieve

import "testing"

func TestGradationLimitString(t *testing.T) {
	tests := []struct {
		size float64
		want string
	}{
		{4.75, "95-100%"},
		{1.18, "40-80%"},
		{0.15, "0-20%"},
		{PanSize, "0-10%"},
	}
	for _, tt := range tests {
		if got := limitFor(tt.size).String(); got != tt.want {
			t.Errorf("limit for %v mm = %q, want %q", tt.size, got, tt.want)
		}
	}
}

func TestGradationLimitContains(t *testing.T) {
	l := GradationLimit{Lo: 20, Hi: 60}
	for _, v := range []float64{20, 40, 60} {
		if !l.Contains(v) {
			t.Errorf("Contains(%v) = false, want true", v)
		}
	}
	for _, v := range []float64{19.99, 60.01} {
		if l.Contains(v) {
			t.Errorf("Contains(%v) = true, want false", v)
		}
	}
}

func TestResultCompliance(t *testing.T) {
	// Every sieve inside its ASTM C33 band.
	good, err := Analyze(readingsWithWeights(t, []float64{4, 8, 28, 20, 20, 15, 5}))
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}
	if !good.Compliant() {
		for _, row := range good.Rows {
			if !row.WithinLimit() {
				t.Errorf("%s: passing %.2f outside %s", SizeLabel(row.Size), row.PercentPassing, row.Limit)
			}
		}
		t.Fatal("expected compliant gradation")
	}

	// 80% passing at 2.36 mm is below the 85-100% band.
	bad, err := Analyze(readingsWithWeights(t, []float64{0, 20, 20, 20, 20, 15, 5}))
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}
	if bad.Compliant() {
		t.Fatal("expected non-compliant gradation")
	}
	if !bad.Rows[0].WithinLimit() {
		t.Errorf("4.75 mm row: passing %.2f should be inside %s", bad.Rows[0].PercentPassing, bad.Rows[0].Limit)
	}
	if bad.Rows[1].WithinLimit() {
		t.Errorf("2.36 mm row: passing %.2f should be outside %s", bad.Rows[1].PercentPassing, bad.Rows[1].Limit)
	}
}
