// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package triplestore

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestAddContainsRemove(t *testing.T) {
	c := qt.New(t)
	ts := New()

	c.Assert(ts.Add("alice", "knows", "bob"), qt.IsTrue)
	c.Assert(ts.Add("alice", "knows", "bob"), qt.IsFalse) // idempotent
	c.Assert(ts.Contains("alice", "knows", "bob"), qt.IsTrue)
	c.Assert(ts.Size(), qt.Equals, uint64(1))

	c.Assert(ts.Contains("alice", "knows", "carol"), qt.IsFalse)
	// an unseen term must not be allocated an id as a side effect
	_, seen := ts.Dictionary().Lookup("carol")
	c.Assert(seen, qt.IsFalse)

	c.Assert(ts.Remove("alice", "knows", "bob"), qt.IsTrue)
	c.Assert(ts.Contains("alice", "knows", "bob"), qt.IsFalse)
	c.Assert(ts.Remove("alice", "knows", "bob"), qt.IsFalse)
}

func TestLoadTriples(t *testing.T) {
	c := qt.New(t)
	ts := New()

	added, err := ts.LoadTriples([]Triple{
		{"alice", "knows", "bob"},
		{"alice", "knows", "carol"},
		{"alice", "knows", "bob"}, // duplicate
	})
	c.Assert(err, qt.IsNil)
	c.Assert(added, qt.Equals, 2)
	c.Assert(ts.Size(), qt.Equals, uint64(2))
}

func TestDictionaryRoundTrip(t *testing.T) {
	c := qt.New(t)
	d := NewDictionary()

	id := d.ID("alice")
	c.Assert(id, qt.Not(qt.Equals), uint64(0))
	c.Assert(d.ID("alice"), qt.Equals, id) // stable on re-lookup

	term, ok := d.Term(id)
	c.Assert(ok, qt.IsTrue)
	c.Assert(term, qt.Equals, "alice")

	_, ok = d.Term(0)
	c.Assert(ok, qt.IsFalse)
}
