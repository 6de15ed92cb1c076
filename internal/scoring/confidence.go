package scoring

import "math"

// Confidence estimates data completeness from the number of supplied
// payload keys: 0.60 plus 0.05 per key, capped at 0.95 and rounded to
// two decimals. It is a heuristic, not a statistical probability.
func Confidence(fieldCount int) float64 {
	c := math.Min(0.95, 0.6+float64(fieldCount)*0.05)
	return math.Floor(c*100+0.5) / 100
}
