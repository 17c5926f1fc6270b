//go:build !unionfind_debug

package unionfind

// assertBounds is a no-op in default builds; see debug.go for the
// unionfind_debug-tagged variant used in tests and local debugging.
func assertBounds(*UF, int32) {}
