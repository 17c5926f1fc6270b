package ensemble

// Microcanonical holds the per-edge-count aggregated moments over R
// realizations. Every slice has length M (one entry per main edge added),
// mirroring percolate.Single's own indexing: index t is the state after
// t+1 main edges have been added.
type Microcanonical struct {
	// MeanMax is the sample mean of the largest component size after
	// each edge addition, across all runs, normalized by the node count N
	// so it reads as a fraction of the graph in [0, 1].
	MeanMax []float64
	// StderrMax is the standard error of MeanMax (sample standard
	// deviation divided by sqrt(R), then by N; zero when R == 1).
	StderrMax []float64
	// KSpan counts, at each edge count, how many of the R runs had
	// already spanned.
	KSpan []int
	// MeanSpan is a Laplace-smoothed estimate of the spanning
	// probability: (KSpan+1)/(R+2).
	MeanSpan []float64
	// SpanCILo and SpanCIHi bound a one-sigma-equivalent credible
	// interval for the spanning probability, from the Beta(KSpan+1,
	// R-KSpan+1) posterior under a uniform prior.
	SpanCILo []float64
	SpanCIHi []float64
}

// Canonical is the final canonical-ensemble result: each observable
// resampled as a function of bond-occupation probability p via Binomial
// convolution of the microcanonical moments.
type Canonical struct {
	Ps                []float64
	MaxClusterSize    []float64
	SpanningCluster   []float64
	MaxClusterSizeCI  [][2]float64
	SpanningClusterCI [][2]float64
}
