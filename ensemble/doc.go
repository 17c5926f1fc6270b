// Package ensemble runs many independent percolation realizations over
// the same edge list and aggregates them into microcanonical moments and
// a canonical (bond-occupation-probability) curve.
//
// ComputeStatistics is the single entry point: it dispatches R
// realizations across a bounded worker pool, collects each realization's
// per-edge max-cluster-size and spanning traces into disjoint row
// buffers, reduces those rows into mean/stderr/credible-interval arrays
// indexed by edge count, and finally convolves those arrays against a
// Binomial(M, p) kernel for each requested p to produce smooth curves as
// a function of bond-occupation probability.
package ensemble
