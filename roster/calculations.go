// calculations.go
package roster

import (
	"math"

	"github.com/aclements/go-moremath/stats"
)

func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return math.NaN()
	}
	return stats.Sample{Xs: vals}.Mean()
}

// median averages the two middle values for even-sized input.
func median(vals []float64) float64 {
	if len(vals) == 0 {
		return math.NaN()
	}
	s := stats.Sample{Xs: append([]float64(nil), vals...)}
	s.Sort()
	return s.Quantile(0.5)
}

// roundTo rounds half to even at the given number of decimal places.
func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.RoundToEven(v*p) / p
}

func toFloats(counts []int) []float64 {
	out := make([]float64, len(counts))
	for i, c := range counts {
		out[i] = float64(c)
	}
	return out
}
