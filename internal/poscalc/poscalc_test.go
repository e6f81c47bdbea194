// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package poscalc

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestFull(t *testing.T) {
	c := qt.New(t)
	for d := 1; d <= MaxDepth; d++ {
		tok := Full(d)
		c.Assert(tok.SubkeyLength(), qt.Equals, d)
		for p := 0; p < d; p++ {
			c.Assert(tok.Has(p), qt.IsTrue)
		}
	}
}

func TestFullPanicsOutOfRange(t *testing.T) {
	c := qt.New(t)
	c.Assert(func() { Full(0) }, qt.PanicMatches, "poscalc:.*")
	c.Assert(func() { Full(MaxDepth + 1) }, qt.PanicMatches, "poscalc:.*")
}

func TestUse(t *testing.T) {
	c := qt.New(t)
	tok := Full(3)
	next := tok.Use(1)
	c.Assert(next.Has(0), qt.IsTrue)
	c.Assert(next.Has(1), qt.IsFalse)
	c.Assert(next.Has(2), qt.IsTrue)
	c.Assert(next.SubkeyLength(), qt.Equals, 2)
}

func TestUsePanicsOnAbsentPosition(t *testing.T) {
	c := qt.New(t)
	tok := Full(3).Use(1)
	c.Assert(func() { tok.Use(1) }, qt.PanicMatches, "poscalc:.*")
}

func TestKeyToSubkeyPosRoundTrip(t *testing.T) {
	c := qt.New(t)
	tok := Full(5)
	for _, p := range []int{0, 2, 4} {
		tok = tok.Use(p)
	}
	// remaining positions: 1, 3
	c.Assert(tok.KeyToSubkeyPos(1), qt.Equals, 0)
	c.Assert(tok.KeyToSubkeyPos(3), qt.Equals, 1)
	c.Assert(tok.SubkeyToKeyPos(0), qt.Equals, 1)
	c.Assert(tok.SubkeyToKeyPos(1), qt.Equals, 3)
}

func TestPositions(t *testing.T) {
	c := qt.New(t)
	tok := Full(4).Use(1)
	c.Assert(tok.Positions(4), qt.DeepEquals, []int{0, 2, 3})
}

func TestEmpty(t *testing.T) {
	c := qt.New(t)
	tok := Full(2).Use(0).Use(1)
	c.Assert(tok, qt.Equals, Empty())
	c.Assert(tok.SubkeyLength(), qt.Equals, 0)
}

func TestCanonicalEquality(t *testing.T) {
	c := qt.New(t)
	// two independently derived tokens describing the same subset
	// must compare equal, since Token is a plain comparable value.
	a := Full(4).Use(0).Use(2)
	b := Full(4).Use(2).Use(0)
	c.Assert(a, qt.Equals, b)
}
