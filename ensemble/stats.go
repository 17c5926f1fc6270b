package ensemble

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// oneSigma is the one-tailed normal quantile used for the spanning
// credible interval, so SpanCILo/SpanCIHi bracket the same probability
// mass a ±1 standard deviation interval would under a Gaussian.
const oneSigma = 0.15865525393145707

// aggregate reduces R per-run observable rows into the microcanonical
// moments, one entry per main edge added (index t = state after t+1
// edges).
func aggregate(maxRows [][]float64, spanRows [][]uint8, n int32, runs, m int) Microcanonical {
	meanMax := make([]float64, m)
	stderrMax := make([]float64, m)
	kSpan := make([]int, m)
	meanSpan := make([]float64, m)
	spanCILo := make([]float64, m)
	spanCIHi := make([]float64, m)

	nf := float64(n)
	for t := 0; t < m; t++ {
		var sum float64
		for r := 0; r < runs; r++ {
			sum += maxRows[r][t]
		}
		mean := sum / float64(runs)
		meanMax[t] = mean / nf

		var variance float64
		if runs > 1 {
			var ss float64
			for r := 0; r < runs; r++ {
				d := maxRows[r][t] - mean
				ss += d * d
			}
			variance = ss / float64(runs-1)
		}
		stderrMax[t] = math.Sqrt(variance/float64(runs)) / nf

		k := 0
		for r := 0; r < runs; r++ {
			if spanRows[r][t] != 0 {
				k++
			}
		}
		kSpan[t] = k
		meanSpan[t] = float64(k+1) / float64(runs+2)

		beta := distuv.Beta{Alpha: float64(k + 1), Beta: float64(runs-k) + 1}
		spanCILo[t] = clamp01(beta.Quantile(oneSigma))
		spanCIHi[t] = clamp01(beta.Quantile(1 - oneSigma))
	}

	return Microcanonical{
		MeanMax:   meanMax,
		StderrMax: stderrMax,
		KSpan:     kSpan,
		MeanSpan:  meanSpan,
		SpanCILo:  spanCILo,
		SpanCIHi:  spanCIHi,
	}
}

// clamp01 keeps a value inside [0, 1], absorbing the rare floating-point
// overshoot a Beta quantile evaluation near k ∈ {0, runs} can produce
// instead of returning it as an error.
func clamp01(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return 0
	case x < 0:
		return 0
	case x > 1:
		return 1
	default:
		return x
	}
}
