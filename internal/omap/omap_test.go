// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package omap

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestOrderedMapSetGet(t *testing.T) {
	c := qt.New(t)
	var m OrderedMap[string]

	c.Assert(m.Set(5, "five"), qt.IsFalse)
	c.Assert(m.Set(3, "three"), qt.IsFalse)
	c.Assert(m.Set(7, "seven"), qt.IsFalse)
	c.Assert(m.Set(5, "FIVE"), qt.IsTrue) // overwrite

	v, ok := m.Get(5)
	c.Assert(ok, qt.IsTrue)
	c.Assert(v, qt.Equals, "FIVE")

	_, ok = m.Get(9)
	c.Assert(ok, qt.IsFalse)

	c.Assert(m.Keys(), qt.DeepEquals, []KeyPart{3, 5, 7})
	c.Assert(m.Len(), qt.Equals, 3)
}

func TestOrderedMapMustGetPanics(t *testing.T) {
	c := qt.New(t)
	var m OrderedMap[int]
	c.Assert(func() { m.MustGet(1) }, qt.PanicMatches, "omap:.*")
}

func TestOrderedMapDelete(t *testing.T) {
	c := qt.New(t)
	var m OrderedMap[int]
	m.Set(1, 10)
	m.Set(2, 20)

	v, existed := m.Delete(1)
	c.Assert(existed, qt.IsTrue)
	c.Assert(v, qt.Equals, 10)
	c.Assert(m.Test(1), qt.IsFalse)

	_, existed = m.Delete(1)
	c.Assert(existed, qt.IsFalse)
}

func TestOrderedMapMinMax(t *testing.T) {
	c := qt.New(t)
	var m OrderedMap[int]
	_, ok := m.Min()
	c.Assert(ok, qt.IsFalse)

	m.Set(4, 0)
	m.Set(1, 0)
	m.Set(9, 0)

	min, ok := m.Min()
	c.Assert(ok, qt.IsTrue)
	c.Assert(min, qt.Equals, KeyPart(1))

	max, ok := m.Max()
	c.Assert(ok, qt.IsTrue)
	c.Assert(max, qt.Equals, KeyPart(9))
}

func TestOrderedMapBoundsAndView(t *testing.T) {
	c := qt.New(t)
	var m OrderedMap[int]
	for _, k := range []KeyPart{2, 4, 6, 8} {
		m.Set(k, int(k))
	}
	c.Assert(m.LowerBound(5), qt.Equals, 2)
	c.Assert(m.UpperBound(6), qt.Equals, 3)

	lo, hi := m.View(3, 7)
	c.Assert(lo, qt.Equals, 1)
	c.Assert(hi, qt.Equals, 3)
}

func TestOrderedMapClone(t *testing.T) {
	c := qt.New(t)
	var m OrderedMap[int]
	m.Set(1, 10)
	clone := m.Clone()
	clone.Set(2, 20)

	c.Assert(m.Len(), qt.Equals, 1)
	c.Assert(clone.Len(), qt.Equals, 2)
}

func TestOrderedSet(t *testing.T) {
	c := qt.New(t)
	var s OrderedSet

	c.Assert(s.Add(3), qt.IsFalse)
	c.Assert(s.Add(1), qt.IsFalse)
	c.Assert(s.Add(3), qt.IsTrue) // idempotent

	c.Assert(s.Keys(), qt.DeepEquals, []KeyPart{1, 3})
	c.Assert(s.Test(1), qt.IsTrue)
	c.Assert(s.Test(2), qt.IsFalse)

	c.Assert(s.Delete(1), qt.IsTrue)
	c.Assert(s.Delete(1), qt.IsFalse)
	c.Assert(s.Len(), qt.Equals, 1)
}

func TestOrderedSetClone(t *testing.T) {
	c := qt.New(t)
	var s OrderedSet
	s.Add(1)
	clone := s.Clone()
	clone.Add(2)

	c.Assert(s.Len(), qt.Equals, 1)
	c.Assert(clone.Len(), qt.Equals, 2)
}
