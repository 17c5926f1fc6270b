package boundary

// Select scans coords along axis, classifies each of the n nodes as
// belonging to side 0 (near the minimum), side 1 (near the maximum), or
// neither, and returns the two virtual vertex indices (n and n+1) plus
// the boundary edges to prepend ahead of the main edge list.
//
// coords must have exactly n rows; axis must be a valid column index.
// margin must lie in [0, 1]. When the coordinate range along axis is
// exactly zero (every node shares one value), every node matches both
// sides — a degenerate but well-defined case, handled without a division
// by zero.
//
// Complexity: O(n) time, O(|side0|+|side1|) space for the output edges.
func Select(coords [][]float64, axis int, margin float64, n int32) (Result, error) {
	if margin < 0 || margin > 1 {
		return Result{}, ErrMarginOutOfRange
	}
	if len(coords) != int(n) {
		return Result{}, ErrCoordShapeMismatch
	}
	if n > 0 {
		d := len(coords[0])
		if axis < 0 || axis >= d {
			return Result{}, ErrAxisOutOfRange
		}
		for _, row := range coords {
			if len(row) != d {
				return Result{}, ErrCoordShapeMismatch
			}
		}
	} else if axis < 0 {
		return Result{}, ErrAxisOutOfRange
	}

	lo, hi := minMaxAlongAxis(coords, axis)
	rng := hi - lo

	aux0 := n
	aux1 := n + 1

	var edgesU, edgesV []int32
	// Side 0: nodes at or below lo + margin*rng.
	thresholdLo := lo + margin*rng
	for i := int32(0); i < n; i++ {
		if coords[i][axis] <= thresholdLo {
			edgesU = append(edgesU, aux0)
			edgesV = append(edgesV, i)
		}
	}
	// Side 1: nodes at or above hi - margin*rng.
	thresholdHi := hi - margin*rng
	for i := int32(0); i < n; i++ {
		if coords[i][axis] >= thresholdHi {
			edgesU = append(edgesU, aux1)
			edgesV = append(edgesV, i)
		}
	}

	return Result{Aux0: aux0, Aux1: aux1, EdgesU: edgesU, EdgesV: edgesV}, nil
}

// minMaxAlongAxis returns the min and max of coords[:,axis]. For n == 0 it
// returns (0, 0), making the caller's rng == 0 degenerate path apply
// uniformly rather than requiring a separate empty-input branch.
func minMaxAlongAxis(coords [][]float64, axis int) (lo, hi float64) {
	if len(coords) == 0 {
		return 0, 0
	}
	lo, hi = coords[0][axis], coords[0][axis]
	for _, row := range coords[1:] {
		v := row[axis]
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	return lo, hi
}
