package sieve

import "fmt"

// GradationLimit is the ASTM C33 percent-passing band for one sieve.
type GradationLimit struct {
	Lo float64
	Hi float64
}

// astmLimits holds the ASTM C33 fine-aggregate passing limits, indexed by
// sieve opening in mm (PanSize for the pan).
var astmLimits = map[float64]GradationLimit{
	4.75:    {95, 100},
	2.36:    {85, 100},
	1.18:    {40, 80},
	0.6:     {20, 60},
	0.3:     {10, 40},
	0.15:    {0, 20},
	PanSize: {0, 10},
}

func limitFor(size float64) GradationLimit {
	return astmLimits[size]
}

// String renders the band the way test reports print it, e.g. "95-100%".
func (l GradationLimit) String() string {
	return fmt.Sprintf("%.0f-%.0f%%", l.Lo, l.Hi)
}

// Contains reports whether a percent-passing value falls inside the band.
func (l GradationLimit) Contains(passing float64) bool {
	return passing >= l.Lo && passing <= l.Hi
}

// WithinLimit reports whether the row's percent passing meets its ASTM band.
func (r ResultRow) WithinLimit() bool {
	return r.Limit.Contains(r.PercentPassing)
}

// Compliant reports whether every sieve in the result meets its ASTM C33
// gradation band.
func (res *Result) Compliant() bool {
	for _, row := range res.Rows {
		if !row.WithinLimit() {
			return false
		}
	}
	return true
}
