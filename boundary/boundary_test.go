package boundary

import "testing"

func TestSelectBasic(t *testing.T) {
	// 4 nodes on a line at x = 0, 1, 2, 3; margin 0.3 picks node 0 (side 0)
	// and node 3 (side 1).
	coords := [][]float64{{0}, {1}, {2}, {3}}
	res, err := Select(coords, 0, 0.3, 4)
	if err != nil {
		t.Fatalf("Select returned error: %v", err)
	}
	if res.Aux0 != 4 || res.Aux1 != 5 {
		t.Fatalf("Aux0/Aux1 = %d/%d; want 4/5", res.Aux0, res.Aux1)
	}
	if res.B() != 2 {
		t.Fatalf("B() = %d; want 2", res.B())
	}
	if res.EdgesU[0] != 4 || res.EdgesV[0] != 0 {
		t.Errorf("first boundary edge = (%d,%d); want (4,0)", res.EdgesU[0], res.EdgesV[0])
	}
	if res.EdgesU[1] != 5 || res.EdgesV[1] != 3 {
		t.Errorf("second boundary edge = (%d,%d); want (5,3)", res.EdgesU[1], res.EdgesV[1])
	}
}

func TestSelectDegenerateRangeZero(t *testing.T) {
	// All nodes share the same coordinate: rng == 0, so every node matches
	// both the "<= lo" and ">= hi" thresholds. Must not divide by zero.
	coords := [][]float64{{5}, {5}, {5}}
	res, err := Select(coords, 0, 0.1, 3)
	if err != nil {
		t.Fatalf("Select returned error: %v", err)
	}
	if res.B() != 6 {
		t.Fatalf("B() = %d; want 6 (every node on both sides)", res.B())
	}
}

func TestSelectErrors(t *testing.T) {
	coords := [][]float64{{0, 0}, {1, 1}}

	if _, err := Select(coords, 0, 1.5, 2); err != ErrMarginOutOfRange {
		t.Errorf("margin=1.5: err = %v; want ErrMarginOutOfRange", err)
	}
	if _, err := Select(coords, -1, 0.1, 2); err != ErrAxisOutOfRange {
		t.Errorf("axis=-1: err = %v; want ErrAxisOutOfRange", err)
	}
	if _, err := Select(coords, 5, 0.1, 2); err != ErrAxisOutOfRange {
		t.Errorf("axis=5: err = %v; want ErrAxisOutOfRange", err)
	}
	if _, err := Select(coords, 0, 0.1, 3); err != ErrCoordShapeMismatch {
		t.Errorf("n mismatch: err = %v; want ErrCoordShapeMismatch", err)
	}
	ragged := [][]float64{{0, 0}, {1}}
	if _, err := Select(ragged, 0, 0.1, 2); err != ErrCoordShapeMismatch {
		t.Errorf("ragged coords: err = %v; want ErrCoordShapeMismatch", err)
	}
}

func TestSelectEmpty(t *testing.T) {
	res, err := Select(nil, 0, 0.05, 0)
	if err != nil {
		t.Fatalf("Select(empty) returned error: %v", err)
	}
	if res.B() != 0 {
		t.Fatalf("B() = %d; want 0", res.B())
	}
	if res.Aux0 != 0 || res.Aux1 != 1 {
		t.Fatalf("Aux0/Aux1 = %d/%d; want 0/1", res.Aux0, res.Aux1)
	}
}
