package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// ScottBandwidth is Scott's rule of thumb, sigma * n^(-1/5).
func ScottBandwidth(x []float64) float64 {
	if len(x) < 2 {
		return math.NaN()
	}
	return StdDev(x) * math.Pow(float64(len(x)), -0.2)
}

// GaussianKDE evaluates a Gaussian kernel density estimate of x at each point.
func GaussianKDE(x []float64, bandwidth float64, points []float64) []float64 {
	out := make([]float64, len(points))
	if len(x) == 0 || !(bandwidth > 0) {
		return out
	}
	kernels := make([]distuv.Normal, len(x))
	for i, v := range x {
		kernels[i] = distuv.Normal{Mu: v, Sigma: bandwidth}
	}
	n := float64(len(x))
	for i, p := range points {
		sum := 0.0
		for _, k := range kernels {
			sum += k.Prob(p)
		}
		out[i] = sum / n
	}
	return out
}

// Linspace returns n evenly spaced points from lo to hi inclusive.
func Linspace(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{lo}
	}
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + step*float64(i)
	}
	out[n-1] = hi
	return out
}
