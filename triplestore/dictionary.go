// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package triplestore is a thin, arity-3 use-site of package
// hypertrie: an RDF triple store backed by a depth-3 Hypertrie plus a
// term dictionary. It exists to pin down what the core must expose to
// a real collaborator (§4's C7), not to implement RDF in full — there
// is no N-Triples parser or SPARQL planner here, per spec.
package triplestore

// Dictionary is an injective Term <-> uint64 map, maintained outside
// the hypertrie (which never sees strings, only the ids this
// dictionary hands out). Ids start at 1; 0 is reserved, matching
// hypertrie's own "zero is absent" convention for key parts.
type Dictionary struct {
	termToID map[string]uint64
	idToTerm []string // idToTerm[0] is an unused placeholder
}

// NewDictionary returns an empty Dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{
		termToID: make(map[string]uint64),
		idToTerm: []string{""},
	}
}

// ID returns term's id, assigning the next unused id if term has not
// been seen before (get-or-create).
func (d *Dictionary) ID(term string) uint64 {
	if id, ok := d.termToID[term]; ok {
		return id
	}
	id := uint64(len(d.idToTerm))
	d.idToTerm = append(d.idToTerm, term)
	d.termToID[term] = id
	return id
}

// Lookup returns term's id without creating one, and whether term has
// been seen.
func (d *Dictionary) Lookup(term string) (uint64, bool) {
	id, ok := d.termToID[term]
	return id, ok
}

// Term reverse-looks-up id, decoding a query result's key part back
// to the term it came from.
func (d *Dictionary) Term(id uint64) (string, bool) {
	if id == 0 || id >= uint64(len(d.idToTerm)) {
		return "", false
	}
	return d.idToTerm[id], true
}

// Len returns the number of distinct terms assigned an id.
func (d *Dictionary) Len() int {
	return len(d.idToTerm) - 1
}
