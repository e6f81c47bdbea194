// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package raw

import "github.com/sparsetensor/hypertrie/internal/poscalc"

// insertResult carries, for a given remaining-position token, the node
// that now represents it and whether the insertion actually added a
// new key anywhere in that subtree (as opposed to a no-op on an
// already-present key).
type insertResult struct {
	node  *Node
	added bool
}

// Insert adds key to the trie rooted at root, returning the (possibly
// new, if copy-on-write cloned a shared node) root and whether key was
// newly added. len(key) must equal root.Depth().
//
// The caller owns root's reference count: if the returned node differs
// from root, the caller must Release the old root and account for the
// new one, exactly as with Remove.
func Insert(root *Node, key []KeyPart) (*Node, bool) {
	if len(key) != root.depth {
		panic("raw: key length does not match depth")
	}
	finished := make(map[poscalc.Token]*insertResult, root.depth)
	token := poscalc.Full(root.depth)
	res := insertRec(root, token, root.depth, key, finished)
	return res.node, res.added
}

// insertRec produces the post-insertion node for the sub-trie
// addressed by token (a subset of the original positions), given the
// pre-existing node for that subset (existing, or nil if none yet
// exists).
//
// Within a single Insert call, the pre-existing content reachable for
// a given token is uniquely determined by key and token alone — every
// path that reaches token consumes exactly the same complementary key
// parts to get there — so finished memoizes by token and every
// position that converges on the same token after this call reuses
// the identical node, preserving the structural-sharing invariant
// instead of allocating duplicate equivalent sub-tries.
func insertRec(existing *Node, token poscalc.Token, originalDepth int, key []KeyPart, finished map[poscalc.Token]*insertResult) *insertResult {
	if r, ok := finished[token]; ok {
		return r
	}

	depth := token.SubkeyLength()
	var result *Node
	switch {
	case existing == nil:
		result = New(depth)
	case existing.refs > 1:
		result = existing.clone()
	default:
		result = existing
	}

	if depth == 1 {
		p := token.Positions(originalDepth)[0]
		existed := result.leaves.Add(key[p])
		added := !existed
		if added {
			result.size++
		}
		res := &insertResult{node: result, added: added}
		finished[token] = res
		return res
	}

	addedAny := false
	for _, p := range token.Positions(originalDepth) {
		idx := token.KeyToSubkeyPos(p)
		childToken := token.Use(p)
		edgeMap := result.Edges(idx)

		oldChild, ok := edgeMap.Get(key[p])
		var childExisting *Node
		if ok {
			childExisting = oldChild
		}

		childRes := insertRec(childExisting, childToken, originalDepth, key, finished)
		if childRes.added {
			addedAny = true
		}
		if childRes.node != oldChild {
			if ok {
				oldChild.Release()
			}
			childRes.node.Retain()
			edgeMap.Set(key[p], childRes.node)
		}
	}
	if addedAny {
		result.size++
	}

	res := &insertResult{node: result, added: addedAny}
	finished[token] = res
	return res
}
