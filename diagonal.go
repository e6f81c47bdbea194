// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package hypertrie

import (
	"sort"

	"github.com/sparsetensor/hypertrie/internal/omap"
	"github.com/sparsetensor/hypertrie/internal/raw"
)

// keySource is the common shape of the container a DiagonalView scans
// candidates from: either a depth>1 node's edges[scanPos] (an
// OrderedMap keyed by key part) or a depth-1 node's leaf set
// (OrderedSet). Both already provide the O(1) min/max and O(log n)
// lower/upper bound the view's contract requires.
type keySource interface {
	Len() int
	KeyAt(i int) omap.KeyPart
	LowerBound(x omap.KeyPart) int
	UpperBound(x omap.KeyPart) int
	Min() (omap.KeyPart, bool)
	Max() (omap.KeyPart, bool)
}

// DiagonalView iterates the key parts that occur simultaneously at a
// chosen set of positions D of a hypertrie, per §4.5. For |D| < depth
// each key part carries a residual sub-trie; for |D| == depth it
// carries a bool.
//
// A DiagonalView goes through exactly the states its contract names:
// constructed (only Empty/Size/Min/Max/Done/ValueOf/Contains are
// safe), then, after Init,
// either "safe" (CurrentKeyPart and friends are safe) or "done".
type DiagonalView struct {
	node      *raw.Node
	positions []int // D, ascending, deduplicated
	full      bool  // |D| == depth
	scanPos   int   // the D position chosen to enumerate candidates from
	src       keySource

	loVal, hiVal KeyPart // scan window, narrowed by minimizeRange before Init
	idx          int     // index into src of the candidate at `current`, once started
	current      KeyPart
	started      bool
	done         bool
}

// Diagonal builds a DiagonalView over the given positions (a non-empty
// subset of [0, h.Depth()), no duplicates). The view is constructed
// but not yet initialized; call Init before reading CurrentKeyPart.
//
// Returns ErrArityUnsupported if positions is empty or longer than the
// trie's depth (an arity the facade does not support at this depth);
// an out-of-range or duplicated position is a precondition violation
// and panics.
func (h *Hypertrie) Diagonal(positions []int) (*DiagonalView, error) {
	if len(positions) == 0 || len(positions) > h.depth {
		return nil, ErrArityUnsupported
	}
	sorted := append([]int(nil), positions...)
	sort.Ints(sorted)
	seen := make(map[int]bool, len(sorted))
	for _, p := range sorted {
		if p < 0 || p >= h.depth {
			panic("hypertrie: diagonal position out of range")
		}
		if seen[p] {
			panic("hypertrie: duplicate diagonal position")
		}
		seen[p] = true
	}
	return newDiagonalView(h.root, sorted), nil
}

// newDiagonalView picks the scan position — the member of positions
// with the smallest edge cardinality — so that Size is as tight as
// possible, per §4.5's implementation note.
func newDiagonalView(node *raw.Node, positions []int) *DiagonalView {
	d := node.Depth()
	full := len(positions) == d

	var scanPos int
	var src keySource
	if d == 1 {
		scanPos = positions[0]
		src = node.Leaves()
	} else {
		best, bestLen := -1, 0
		for _, p := range positions {
			l := node.Edges(p).Len()
			if best == -1 || l < bestLen || (l == bestLen && p < best) {
				best, bestLen = p, l
			}
		}
		scanPos = best
		src = node.Edges(scanPos)
	}

	lo, hasLo := src.Min()
	hi, hasHi := src.Max()
	if !hasLo {
		lo, hi = 1, 0 // empty window: lo > hi
	}
	_ = hasHi

	return &DiagonalView{
		node:      node,
		positions: positions,
		full:      full,
		scanPos:   scanPos,
		src:       src,
		loVal:     lo,
		hiVal:     hi,
	}
}

// shrinkRange narrows the scan window to [lo, hi], intersected with
// whatever window is already in effect. Used by minimizeRange before
// Init; calling it after Init would leave `current`/`done` stale, so
// Join only calls it during construction.
func (d *DiagonalView) shrinkRange(lo, hi KeyPart) {
	if lo > d.loVal {
		d.loVal = lo
	}
	if hi < d.hiVal {
		d.hiVal = hi
	}
}

// sliceAt fixes every diagonal position to x and slices node at that
// assignment, giving both a validity check (is x on the diagonal?)
// and, if not full, the residual sub-trie in one pass.
func (d *DiagonalView) sliceAt(x KeyPart) raw.SliceResult {
	partial := make(map[int]KeyPart, len(d.positions))
	for _, p := range d.positions {
		partial[p] = x
	}
	return d.node.Slice(partial)
}

func (d *DiagonalView) validAt(x KeyPart) bool {
	r := d.sliceAt(x)
	if d.full {
		return r.Bool
	}
	return !r.Node.IsEmpty()
}

// requireSafe panics if the view has not been initialized or is done;
// every per-spec "safe state" precondition routes through this.
func (d *DiagonalView) requireSafe() {
	if !d.started {
		panic("hypertrie: diagonal view used before Init")
	}
	if d.done {
		panic("hypertrie: diagonal view is done")
	}
}

// Init advances the view to the first valid key part in its scan
// window, or marks it done if none exists. Must be called exactly
// once, before any other method except Empty/Size/Min/Max/Done/
// ValueOf/Contains.
func (d *DiagonalView) Init() {
	d.started = true
	if d.loVal > d.hiVal {
		d.done = true
		return
	}
	d.idx = d.src.LowerBound(d.loVal)
	d.advanceToValid()
}

// advanceToValid scans forward from d.idx for the next candidate in
// [loVal, hiVal] that passes validAt, setting current or done.
func (d *DiagonalView) advanceToValid() {
	for {
		if d.idx >= d.src.Len() {
			d.done = true
			return
		}
		x := d.src.KeyAt(d.idx)
		if x > d.hiVal {
			d.done = true
			return
		}
		if d.validAt(x) {
			d.current = x
			return
		}
		d.idx++
	}
}

// CurrentKeyPart returns the key part the view currently sits on.
// Requires a safe state (Init called, not done).
func (d *DiagonalView) CurrentKeyPart() KeyPart {
	d.requireSafe()
	return d.current
}

// CurrentValue returns the residual Hypertrie for CurrentKeyPart.
// Requires a safe state and |D| < depth.
func (d *DiagonalView) CurrentValue() *Hypertrie {
	d.requireSafe()
	if d.full {
		panic("hypertrie: CurrentValue called on a full diagonal")
	}
	return d.valueOf(d.current)
}

// ValueOf returns the residual Hypertrie for key part x (an empty one
// if x is absent from the diagonal). Requires |D| < depth; safe in
// any view state.
func (d *DiagonalView) ValueOf(x KeyPart) *Hypertrie {
	if d.full {
		panic("hypertrie: ValueOf called on a full diagonal")
	}
	return d.valueOf(x)
}

func (d *DiagonalView) valueOf(x KeyPart) *Hypertrie {
	r := d.sliceAt(x)
	r.Node.Retain()
	return &Hypertrie{depth: r.Node.Depth(), root: r.Node}
}

// Contains reports whether x appears on the full diagonal. Requires
// |D| == depth.
func (d *DiagonalView) Contains(x KeyPart) bool {
	if !d.full {
		panic("hypertrie: Contains called on a non-full diagonal")
	}
	return d.sliceAt(x).Bool
}

// Advance moves to the next valid key part, possibly marking the view
// done. Requires a safe state.
func (d *DiagonalView) Advance() {
	d.requireSafe()
	d.idx++
	d.advanceToValid()
}

// ContainsAndUpdateMin reports whether x is present on the diagonal.
// If so, current becomes x. If not, current becomes the smallest
// valid key part >= x (or the view is marked done). Requires a safe
// state.
func (d *DiagonalView) ContainsAndUpdateMin(x KeyPart) bool {
	d.requireSafe()
	if d.validAt(x) && x >= d.loVal && x <= d.hiVal {
		d.idx = d.src.LowerBound(x)
		d.current = x
		return true
	}
	d.SetMinGeq(x)
	return false
}

// SetMinGeq sets current to the smallest valid key part >= x (marking
// the view done if none exists). Requires a safe state.
func (d *DiagonalView) SetMinGeq(x KeyPart) {
	d.requireSafe()
	lo := x
	if lo < d.loVal {
		lo = d.loVal
	}
	d.idx = d.src.LowerBound(lo)
	d.advanceToValid()
}

// Empty reports whether no key parts remain. Before Init this is
// conservative: it may report false even though Init will immediately
// mark the view done.
func (d *DiagonalView) Empty() bool {
	if d.started {
		return d.done
	}
	if d.loVal > d.hiVal {
		return true
	}
	i := d.src.LowerBound(d.loVal)
	return i >= d.src.Len() || d.src.KeyAt(i) > d.hiVal
}

// Size returns an upper bound on the number of valid key parts
// remaining in the scan window — the window's candidate count, not
// the count after diagonal filtering, so it may overstate.
func (d *DiagonalView) Size() int {
	if d.loVal > d.hiVal {
		return 0
	}
	return d.src.UpperBound(d.hiVal) - d.src.LowerBound(d.loVal)
}

// Min returns the current scan window's lower bound and whether it is
// non-empty.
func (d *DiagonalView) Min() (KeyPart, bool) {
	if d.loVal > d.hiVal {
		return 0, false
	}
	return d.loVal, true
}

// Max returns the current scan window's upper bound and whether it is
// non-empty.
func (d *DiagonalView) Max() (KeyPart, bool) {
	if d.loVal > d.hiVal {
		return 0, false
	}
	return d.hiVal, true
}

// Done reports whether the view has been initialized and has no
// further valid key parts. Used by Join's leapfrog loop to detect
// exhaustion without triggering requireSafe's panic.
func (d *DiagonalView) Done() bool {
	return d.started && d.done
}
