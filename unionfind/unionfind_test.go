package unionfind

import "testing"

// TestNewSingletons verifies that New(t) starts every node as its own root
// of size 1, with MaxSize()==1 (or 0 for the degenerate empty universe).
func TestNewSingletons(t *testing.T) {
	u := New(5)
	if got := u.MaxSize(); got != 1 {
		t.Fatalf("MaxSize() = %d; want 1", got)
	}
	var i int32
	for i = 0; i < 5; i++ {
		if r := u.Find(i); r != i {
			t.Errorf("Find(%d) = %d; want %d (singleton root)", i, r, i)
		}
		if s := u.Size(i); s != 1 {
			t.Errorf("Size(%d) = %d; want 1", i, s)
		}
	}
}

func TestNewEmpty(t *testing.T) {
	u := New(0)
	if got := u.MaxSize(); got != 0 {
		t.Fatalf("MaxSize() on empty universe = %d; want 0", got)
	}
}

// TestUnionMergesAndTracksMax walks through a small chain of unions and
// checks both the merge result and MaxSize() after each step.
func TestUnionMergesAndTracksMax(t *testing.T) {
	u := New(4)

	if merged := u.Union(0, 1); !merged {
		t.Fatal("Union(0,1) = false; want true (distinct singletons)")
	}
	if got := u.MaxSize(); got != 2 {
		t.Fatalf("MaxSize() after Union(0,1) = %d; want 2", got)
	}

	if merged := u.Union(0, 1); merged {
		t.Fatal("Union(0,1) re-applied = true; want false (already joined)")
	}
	if got := u.MaxSize(); got != 2 {
		t.Fatalf("MaxSize() after redundant Union(0,1) = %d; want 2 (idempotent)", got)
	}

	if merged := u.Union(2, 3); !merged {
		t.Fatal("Union(2,3) = false; want true")
	}
	if got := u.MaxSize(); got != 2 {
		t.Fatalf("MaxSize() after Union(2,3) = %d; want 2 (two size-2 components)", got)
	}

	if merged := u.Union(1, 2); !merged {
		t.Fatal("Union(1,2) = false; want true")
	}
	if got := u.MaxSize(); got != 4 {
		t.Fatalf("MaxSize() after Union(1,2) = %d; want 4", got)
	}

	root := u.Find(0)
	for i := int32(0); i < 4; i++ {
		if r := u.Find(i); r != root {
			t.Errorf("Find(%d) = %d; want shared root %d", i, r, root)
		}
	}
}

// TestUnionSelfLoopIsNoOp checks that a self-loop never changes MaxSize
// or the merge count.
func TestUnionSelfLoopIsNoOp(t *testing.T) {
	u := New(2)
	if merged := u.Union(0, 0); merged {
		t.Fatal("Union(0,0) = true; want false (self-loop)")
	}
	if got := u.MaxSize(); got != 1 {
		t.Fatalf("MaxSize() after self-loop = %d; want 1", got)
	}
}

// TestMaxSizeNonDecreasing checks that MaxSize never decreases over a
// pseudo-random sequence of unions.
func TestMaxSizeNonDecreasing(t *testing.T) {
	const n = 64
	u := New(n)
	prev := u.MaxSize()
	// A fixed, deterministic pairing sequence (no math/rand dependency
	// needed here; percolate's tests cover permutation invariance).
	for i := int32(0); i < n; i++ {
		j := (i*37 + 11) % n
		u.Union(i, j)
		cur := u.MaxSize()
		if cur < prev {
			t.Fatalf("MaxSize() decreased: %d -> %d at i=%d", prev, cur, i)
		}
		if cur < 1 || cur > n {
			t.Fatalf("MaxSize() = %d out of range [1,%d]", cur, n)
		}
		prev = cur
	}
	if prev != n {
		t.Fatalf("final MaxSize() = %d; want %d (fully connected)", prev, n)
	}
}

// TestPathCompressionFlattensTree asserts that after a chain of unions,
// Find on any node returns in O(1) "hops" as observed via repeated calls
// collapsing parent pointers (a white-box check of compression, not just
// the root value).
func TestPathCompressionFlattensTree(t *testing.T) {
	const n = 8
	u := New(n)
	for i := int32(1); i < n; i++ {
		u.Union(i-1, i)
	}
	root := u.Find(0)
	// After one Find per node, every node's parent must point at root.
	for i := int32(0); i < n; i++ {
		u.Find(i)
		if u.parent[i] != root {
			t.Errorf("parent[%d] = %d after Find; want root %d", i, u.parent[i], root)
		}
	}
}
