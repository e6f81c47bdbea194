// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package raw

import "github.com/sparsetensor/hypertrie/internal/poscalc"

// Remove deletes key from the trie rooted at root, returning the
// (possibly new, if copy-on-write cloned a shared node) root and
// whether key was present. len(key) must equal root.Depth().
//
// Source original_source/HyperTrie.hpp leaves removal unimplemented
// (a stub); this is a from-scratch design symmetric to Insert's
// token-memoized descent, extended with copy-on-write: any node whose
// refcount exceeds one is cloned before mutation, so that a sub-trie
// shared with another Hypertrie handle (e.g. produced by Slice) is
// never mutated in place.
//
// The caller owns root's reference count: if the returned node
// differs from root, the caller must Release the old root and account
// for the new one.
func Remove(root *Node, key []KeyPart) (*Node, bool) {
	if len(key) != root.depth {
		panic("raw: key length does not match depth")
	}
	if !root.Get(key) {
		return root, false
	}
	replaced := make(map[poscalc.Token]*Node, root.depth)
	token := poscalc.Full(root.depth)
	newRoot := removeRec(root, token, root.depth, key, replaced)
	return newRoot, true
}

// removeRec produces the post-removal node for the sub-trie addressed
// by token, given the pre-existing node existing (which must be
// non-nil: Remove's caller has already confirmed key is present, so
// every position's edge along the path is known to exist).
//
// replaced memoizes by token for the same reason insertRec's finished
// map does: every path converging on the same token after this call
// removed the same complementary key parts, so it is the same
// pre-existing node and must become the same post-removal node.
func removeRec(existing *Node, token poscalc.Token, originalDepth int, key []KeyPart, replaced map[poscalc.Token]*Node) *Node {
	if r, ok := replaced[token]; ok {
		return r
	}

	var result *Node
	if existing.refs > 1 {
		result = existing.clone()
	} else {
		result = existing
	}

	if result.depth == 1 {
		p := token.Positions(originalDepth)[0]
		result.leaves.Delete(key[p])
		result.size--
		replaced[token] = result
		return result
	}

	for _, p := range token.Positions(originalDepth) {
		idx := token.KeyToSubkeyPos(p)
		childToken := token.Use(p)
		edgeMap := result.Edges(idx)

		oldChild, ok := edgeMap.Get(key[p])
		if !ok {
			panic("raw: remove: key reported present but edge missing")
		}

		newChild := removeRec(oldChild, childToken, originalDepth, key, replaced)
		switch {
		case newChild.IsEmpty():
			edgeMap.Delete(key[p])
			oldChild.Release()
		case newChild != oldChild:
			oldChild.Release()
			newChild.Retain()
			edgeMap.Set(key[p], newChild)
		}
	}
	result.size--

	replaced[token] = result
	return result
}
