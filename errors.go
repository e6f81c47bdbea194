// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package hypertrie

import "errors"

// Sentinel errors for the unsupported-depth-combination cases the
// depth-erased facade must report rather than panic on, per §7:
// precondition violations on malformed input panic, but an otherwise
// well-formed request for a depth or diagonal arity the compiled
// RawHypertrie set does not cover is a typed error, since a caller
// (the planner) may legitimately probe supported shapes.
var (
	// ErrDepthUnsupported is returned by New when depth is outside
	// [1, MaxDepth].
	ErrDepthUnsupported = errors.New("hypertrie: depth unsupported")

	// ErrArityUnsupported is returned by Diagonal when the number of
	// diagonal positions exceeds the trie's depth, or is zero.
	ErrArityUnsupported = errors.New("hypertrie: diagonal arity unsupported")
)
