// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package raw implements RawHypertrie<d>, the recursive, depth-fixed
// trie engine behind the public Hypertrie facade (see package
// hypertrie). A Node is reference-counted so that structurally
// identical sub-tries reached from different parents, or from
// different positions of the same parent, can be shared; mutation
// obeys copy-on-write whenever a node's reference count exceeds one.
//
// The recursive shape — a node holding either a leaf set (depth 1) or
// one ordered map of children per remaining position (depth > 1) — is
// grounded on [github.com/gaissmai/bart]'s bartNode, which likewise
// pairs a "prefixes" leaf-style container with a per-stride children
// container; here every position gets its own children container
// instead of a single fixed 8-bit stride, because a hypertrie must
// support a cardinality-minimizing dive through *any* position (see
// Slice).
package raw

import (
	"github.com/sparsetensor/hypertrie/internal/omap"
	"github.com/sparsetensor/hypertrie/internal/poscalc"
)

// KeyPart is a single coordinate of a hypertrie key.
type KeyPart = omap.KeyPart

// MaxDepth is the largest depth RawHypertrie supports.
const MaxDepth = poscalc.MaxDepth

// Node is a RawHypertrie<d> for some depth d >= 1. The zero value is
// not valid; use New.
type Node struct {
	depth int
	size  uint64
	refs  int // number of parent edge slots and handles currently pointing at this node

	leaves *omap.OrderedSet        // populated iff depth == 1
	edges  []omap.OrderedMap[*Node] // len(edges) == depth, populated iff depth > 1
}

// New allocates an empty Node of the given depth with refs == 0: like
// clone, it starts unowned, and whoever installs it into an edge slot
// (or takes it as a handle's root) is responsible for the matching
// Retain. This keeps every node's refcount equal to the number of
// edge slots (or handles) actually pointing at it, so a node nobody
// else has retained yet correctly takes the in-place-mutate fast path
// on its first subsequent Insert/Remove instead of being mistaken for
// shared.
func New(depth int) *Node {
	if depth < 1 || depth > MaxDepth {
		panic("raw: depth out of range")
	}
	n := &Node{depth: depth, refs: 0}
	if depth == 1 {
		n.leaves = &omap.OrderedSet{}
	} else {
		n.edges = make([]omap.OrderedMap[*Node], depth)
	}
	return n
}

// Depth returns the node's fixed arity.
func (n *Node) Depth() int { return n.depth }

// Size returns the number of distinct keys present.
func (n *Node) Size() uint64 { return n.size }

// LeafCount returns the number of distinct keys present. For the
// boolean core every present key counts exactly once, so LeafCount
// and Size coincide; the accessor is kept distinct from Size because
// the original C++ HyperTrie tracks them as separate fields (leafcount
// vs the leafsum used by the out-of-scope typed-value variant), and
// the façade exposes both for parity with that shape.
func (n *Node) LeafCount() uint64 { return n.size }

// IsEmpty reports whether the node has no keys.
func (n *Node) IsEmpty() bool { return n.size == 0 }

// Refs returns the current reference count. Exported for tests that
// assert on the sharing invariant.
func (n *Node) Refs() int { return n.refs }

// Retain increments the reference count: called whenever a new edge
// slot is made to point at n.
func (n *Node) Retain() { n.refs++ }

// Release decrements the reference count: called whenever an edge
// slot that pointed at n is removed or redirected. Go's garbage
// collector reclaims the node once it becomes unreachable; Release
// exists purely to keep the count accurate for future copy-on-write
// decisions, not for manual memory management.
func (n *Node) Release() { n.refs-- }

// Edges returns the edge map for position pos (0 <= pos < depth).
// Valid only for depth > 1; panics otherwise, matching the
// precondition-violation policy for malformed internal access.
func (n *Node) Edges(pos int) *omap.OrderedMap[*Node] {
	if n.depth == 1 {
		panic("raw: Edges called on a depth-1 node")
	}
	if pos < 0 || pos >= n.depth {
		panic("raw: position out of range")
	}
	return &n.edges[pos]
}

// Leaves returns the leaf set. Valid only for depth == 1.
func (n *Node) Leaves() *omap.OrderedSet {
	if n.depth != 1 {
		panic("raw: Leaves called on a depth>1 node")
	}
	return n.leaves
}

// clone produces a copy-on-write duplicate of n: its own leaf set or
// edge maps (so mutating the clone never affects n), while the
// children referenced from those maps are shared with n — their
// reference counts are bumped to account for the new incoming
// pointers the clone's maps now hold. The clone starts with refs == 0;
// callers that install it into a parent edge are responsible for
// incrementing refs for that edge (see remove.go).
func (n *Node) clone() *Node {
	c := &Node{depth: n.depth, size: n.size, refs: 0}
	if n.depth == 1 {
		c.leaves = n.leaves.Clone()
		return c
	}
	c.edges = make([]omap.OrderedMap[*Node], n.depth)
	for i := range n.edges {
		c.edges[i] = *n.edges[i].Clone()
		for _, child := range c.edges[i].Values() {
			child.Retain()
		}
	}
	return c
}
