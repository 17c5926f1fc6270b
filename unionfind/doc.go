// Package unionfind implements a weighted union–find (disjoint-set) data
// structure specialized for Newman–Ziff percolation: beyond the classic
// Find/Union pair, it tracks the running maximum component size so callers
// never need a heap or a second pass over the component table.
//
// Determinism & complexity:
//   - Union-by-size with two-pass path compression: amortized O(α(T)) per
//     call, where α is the inverse Ackermann function.
//   - No allocation after New: parent/size are sized once and mutated in
//     place for the lifetime of one realization.
//   - Ties (equal-size roots) attach the second root under the first, so
//     observable sequences are independent of tie-break choice.
//
// Out of scope: disconnection, node insertion after New, weighted edges,
// concurrent mutation of a single UF (each realization owns its own UF).
package unionfind
