package sieve

// Classification labels.
const (
	FineSand      = "Fine Sand"
	MediumSand    = "Medium Sand"
	CoarseSand    = "Coarse Sand"
	NotClassified = "Not Classified"
)

// Fineness modulus breakpoints. A fineness modulus outside [1.0, 4.0] is not
// a sand at all and gets no classification.
const (
	fmFloor           = 1.0
	fineMediumBreak   = 2.2
	mediumCoarseBreak = 2.8
	fmCeiling         = 4.0
)

// Classify maps a fineness modulus to a sand classification.
func Classify(fm float64) string {
	switch {
	case fm < fmFloor || fm > fmCeiling:
		return NotClassified
	case fm < fineMediumBreak:
		return FineSand
	case fm < mediumCoarseBreak:
		return MediumSand
	default:
		return CoarseSand
	}
}
