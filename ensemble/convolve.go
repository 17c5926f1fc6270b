package ensemble

import "gonum.org/v1/gonum/stat/distuv"

// convolve resamples the microcanonical moments as a function of
// bond-occupation probability p, for every p in ps, by convolving with a
// Binomial(m, p) kernel over the number of main edges present.
//
// The n == 0 term of the convolution — "no main edges have been added
// yet" — is not present in micro (its arrays start at "after edge 1"),
// so it is filled analytically: every node is its own singleton, giving
// a mean max-cluster-size of 1/N, and spanning probability 0.
//
// When spanning is false, the spanning fields are left zero-filled:
// spanning was never selected or measured, so micro's spanning moments
// are meaningless Laplace-smoothing artifacts rather than real signal.
func convolve(micro Microcanonical, ps []float64, n int32, m int, spanning bool) Canonical {
	preMax := 0.0
	if n > 0 {
		preMax = 1.0 / float64(n)
	}

	out := Canonical{
		Ps:                ps,
		MaxClusterSize:    make([]float64, len(ps)),
		SpanningCluster:   make([]float64, len(ps)),
		MaxClusterSizeCI:  make([][2]float64, len(ps)),
		SpanningClusterCI: make([][2]float64, len(ps)),
	}

	for i, p := range ps {
		binom := distuv.Binomial{N: float64(m), P: p}

		pmf0 := binom.Prob(0)
		maxVal := pmf0 * preMax
		maxLo := pmf0 * preMax
		maxHi := pmf0 * preMax
		spanVal := 0.0
		spanLo := 0.0
		spanHi := 0.0

		for t := 0; t < m; t++ {
			pmf := binom.Prob(float64(t + 1))
			maxVal += pmf * micro.MeanMax[t]
			maxLo += pmf * (micro.MeanMax[t] - micro.StderrMax[t])
			maxHi += pmf * (micro.MeanMax[t] + micro.StderrMax[t])
			if spanning {
				spanVal += pmf * micro.MeanSpan[t]
				spanLo += pmf * micro.SpanCILo[t]
				spanHi += pmf * micro.SpanCIHi[t]
			}
		}

		out.MaxClusterSize[i] = maxVal
		out.MaxClusterSizeCI[i] = [2]float64{maxLo, maxHi}
		if spanning {
			out.SpanningCluster[i] = spanVal
			out.SpanningClusterCI[i] = [2]float64{spanLo, spanHi}
		}
	}

	return out
}
