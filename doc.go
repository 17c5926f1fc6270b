// Package nzpercolate computes Newman–Ziff microcanonical and canonical
// percolation observables on an arbitrary undirected graph.
//
// 🚀 What is nzpercolate?
//
//	A small, thread-safe library built around one idea: add the edges of a
//	graph one at a time, in a chosen order, and track two things after each
//	addition — the size of the largest connected component, and whether two
//	designated boundary regions are joined. From that raw per-edge trace,
//	convolve with a Binomial distribution to recover bond-percolation curves
//	as a function of occupation probability p.
//
// ✨ Why choose nzpercolate?
//
//   - Fast core     — O(α(N)) amortized weighted union–find, no heap, no
//     allocation after setup
//   - Reproducible  — ensembles are seeded; a fixed seed reproduces results
//     regardless of worker-pool scheduling
//   - Pure Go       — no cgo; gonum supplies the Binomial/Beta special
//     functions
//
// Under the hood, everything is organized under six subpackages:
//
//	unionfind/ — weighted union–find with a running max-cluster-size tracker
//	percolate/ — the percolation runner and the pure RunPercolation engine
//	boundary/  — coordinate-driven spanning-boundary node selection
//	ensemble/  — multi-run aggregation and canonical (Binomial) convolution
//	graph/     — thread-safe typed graph container + coordinate metadata
//	graphgen/  — deterministic Erdős–Rényi sampler for tests and benchmarks
//
// Quick example: a triangle, added edge by edge, tracks its largest
// component growing 2, 3, 3 — see percolate's example_test.go for the full
// walkthrough, and TestSentinelSpanning in percolate's engine_test.go for
// the sentinel-spanning scenario.
//
//	go get github.com/katalvlaran/nzpercolate
package nzpercolate
