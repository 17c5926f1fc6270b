// Package graphgen samples deterministic Erdős–Rényi-style graphs for
// tests, benchmarks, and examples elsewhere in this module. It is not a
// runtime dependency of the percolation engine itself — only a way to
// produce *graph.Graph values to feed it.
package graphgen
