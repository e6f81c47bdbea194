// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package raw

import "github.com/sparsetensor/hypertrie/internal/poscalc"

// Get walks position 0 of successive sub-tries, as specified in
// §4.3: O(depth * log(fanout)). len(key) must equal n.Depth().
func (n *Node) Get(key []KeyPart) bool {
	cur := n
	for cur.depth > 1 {
		child, ok := cur.edges[0].Get(key[0])
		if !ok {
			return false
		}
		cur = child
		key = key[1:]
	}
	return cur.leaves.Test(key[0])
}

// SliceResult is the outcome of Slice: exactly one of Node or Bool is
// meaningful, selected by IsBool. Fresh reports whether Node was
// freshly allocated for this call (an empty miss result, refs == 0,
// owned by nobody yet) as opposed to an existing, possibly shared
// sub-trie (refs reflects its other owners) — in either case, callers
// that hand Node to a new owner must Retain it for that owner.
type SliceResult struct {
	Node   *Node
	Bool   bool
	IsBool bool
	Fresh  bool
}

// Slice generalizes Get: partial is a sparse assignment of positions
// (0 <= pos < n.Depth()) to key parts, for a non-empty subset of
// positions. If the subset covers every position, the result is a
// boolean; otherwise it is a RawHypertrie of depth n.Depth()-len(partial).
//
// At each step the position minimizing edge fanout is chosen — the
// cardinality-minimizing dive of §4.3 — which is why every remaining
// position keeps its own edge map rather than a single canonical one.
func (n *Node) Slice(partial map[int]KeyPart) SliceResult {
	if len(partial) == 0 {
		panic("raw: Slice requires a non-empty position set")
	}
	for pos := range partial {
		if pos < 0 || pos >= n.depth {
			panic("raw: slice position out of range")
		}
	}

	resultDepth := n.depth - len(partial)

	token := poscalc.Full(n.depth)
	remaining := make(map[int]struct{}, len(partial))
	for pos := range partial {
		remaining[pos] = struct{}{}
	}

	cur := n
	for {
		if len(remaining) == 0 {
			return SliceResult{Node: cur}
		}
		if cur.depth == 1 {
			// exactly one position remains in cur and it must be the
			// sole member of `remaining` at this point, since
			// remaining is always a subset of token's bits.
			var p int
			for p = range remaining {
				break
			}
			found := cur.leaves.Test(partial[p])
			return SliceResult{Bool: found, IsBool: true}
		}

		p := chooseMinCardinality(cur, token, remaining)
		localIdx := token.KeyToSubkeyPos(p)
		child, ok := cur.edges[localIdx].Get(partial[p])
		delete(remaining, p)
		if !ok {
			if resultDepth == 0 {
				return SliceResult{Bool: false, IsBool: true}
			}
			return SliceResult{Node: New(resultDepth), Fresh: true}
		}
		token = token.Use(p)
		cur = child
	}
}

// chooseMinCardinality implements the cardinality-minimizing dive of
// §4.3: among the original positions in remaining, pick the one whose
// edge map (within cur, addressed via token) has the fewest entries,
// breaking ties by the lowest position index.
func chooseMinCardinality(cur *Node, token poscalc.Token, remaining map[int]struct{}) int {
	best := -1
	bestLen := 0
	for p := range remaining {
		l := cur.edges[token.KeyToSubkeyPos(p)].Len()
		if best == -1 || l < bestLen || (l == bestLen && p < best) {
			best = p
			bestLen = l
		}
	}
	return best
}
