// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package triplestore

import "github.com/sparsetensor/hypertrie"

// arity is the fixed depth of every TripleStore's hypertrie:
// (subject, predicate, object).
const arity = 3

// Triple is one already-parsed RDF statement. Parsing N-Triples text
// into Triples is the N-Triples parser's job, out of scope here.
type Triple struct {
	Subject, Predicate, Object string
}

// TripleStore pairs a depth-3 Hypertrie with a Dictionary, so that
// callers deal in RDF terms while the trie itself only ever sees
// dictionary-assigned key parts.
type TripleStore struct {
	dict *Dictionary
	trie *hypertrie.Hypertrie
}

// New returns an empty TripleStore.
func New() *TripleStore {
	trie, err := hypertrie.New(arity)
	if err != nil {
		// arity is a compile-time constant within [1, MaxDepth];
		// hypertrie.New can only fail for an out-of-range depth.
		panic(err)
	}
	return &TripleStore{dict: NewDictionary(), trie: trie}
}

// Add inserts the triple (s, p, o), assigning dictionary ids to any
// term not seen before. It returns true iff the triple was newly
// inserted.
func (ts *TripleStore) Add(s, p, o string) bool {
	key := []hypertrie.KeyPart{ts.dict.ID(s), ts.dict.ID(p), ts.dict.ID(o)}
	return ts.trie.Set(key)
}

// Contains reports whether (s, p, o) is present. Unlike Add, an
// unseen term short-circuits to false rather than allocating it a
// dictionary id — checking containment must not mutate the
// dictionary.
func (ts *TripleStore) Contains(s, p, o string) bool {
	sid, ok := ts.dict.Lookup(s)
	if !ok {
		return false
	}
	pid, ok := ts.dict.Lookup(p)
	if !ok {
		return false
	}
	oid, ok := ts.dict.Lookup(o)
	if !ok {
		return false
	}
	return ts.trie.Contains([]hypertrie.KeyPart{sid, pid, oid})
}

// Remove deletes (s, p, o), returning true iff it was present. Terms
// that were only ever used by this triple keep their dictionary ids;
// the dictionary is append-only.
func (ts *TripleStore) Remove(s, p, o string) bool {
	sid, ok := ts.dict.Lookup(s)
	if !ok {
		return false
	}
	pid, ok := ts.dict.Lookup(p)
	if !ok {
		return false
	}
	oid, ok := ts.dict.Lookup(o)
	if !ok {
		return false
	}
	return ts.trie.Remove([]hypertrie.KeyPart{sid, pid, oid})
}

// Size returns the number of distinct triples stored.
func (ts *TripleStore) Size() uint64 { return ts.trie.Size() }

// Dictionary exposes the store's term dictionary, e.g. to decode a
// query result's key parts back into RDF terms via Dictionary.Term.
func (ts *TripleStore) Dictionary() *Dictionary { return ts.dict }

// LoadTriples adds every triple in triples to ts, returning how many were newly
// inserted. Unlike the original C++ TripleStore::loadRDF, it returns
// a count instead of writing to stdout — no core component owns
// standard output.
func (ts *TripleStore) LoadTriples(triples []Triple) (added int, err error) {
	for _, t := range triples {
		if ts.Add(t.Subject, t.Predicate, t.Object) {
			added++
		}
	}
	return added, nil
}
