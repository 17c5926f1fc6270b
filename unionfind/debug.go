//go:build unionfind_debug

package unionfind

// assertBounds aborts on an out-of-range index. Compiled in only under the
// unionfind_debug build tag, per the package's "programmer error, not a
// runtime error" contract: production builds pay zero cost for this
// check, debug builds catch the bug at the call site instead of silently
// corrupting parent/size.
func assertBounds(u *UF, x int32) {
	if x < 0 || int(x) >= len(u.parent) {
		panic("unionfind: index out of range")
	}
}
