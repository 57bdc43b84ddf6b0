package stats

import "math"

// normalQuantile is the inverse CDF of the standard normal distribution.
func normalQuantile(p float64) float64 {
	return math.Sqrt2 * math.Erfinv(2*p-1)
}

// chiSquareQuantile approximates the inverse CDF of the chi-square
// distribution with df degrees of freedom using the Wilson-Hilferty cube-root
// transform. Relative error is below 1e-3 for df >= 10 and shrinks as df grows.
func chiSquareQuantile(p, df float64) float64 {
	z := normalQuantile(p)
	c := 2 / (9 * df)
	q := df * math.Pow(1-c+z*math.Sqrt(c), 3)
	return math.Max(q, 0)
}
