// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package omap implements OrderedMap and OrderedSet, the key-part
// indexed containers underlying every hypertrie edge and leaf set.
//
// Both are sorted parallel-vector representations (a keys slice plus,
// for the map, a values slice, kept in lockstep and searched with
// binary search) rather than a tree or hash map. This mirrors
// [github.com/gaissmai/bart]'s internal/sparse.Array, which stores a
// popcount-compressed bitset plus a values slice for the same reason:
// small fanouts are common at most hypertrie levels, and a sorted
// slice is cache-friendly and trivially gives ordered iteration,
// min/max in O(1), and a binary-search lower bound. Unlike bart's
// sparse.Array, key parts here are arbitrary nonzero uint64 values,
// not bounded byte-stride indices, so there is no bitset: the key
// slice itself carries the ordering (following the approach used by
// the source's own VecMap, see DESIGN.md).
package omap

import "sort"

// KeyPart is an unsigned integer coordinate of a hypertrie key.
// Zero is reserved as "absent/sentinel" and must never be stored.
type KeyPart = uint64

// search returns the index of key within keys, or the insertion point
// (where key would go to keep keys sorted) and false if absent.
func search(keys []KeyPart, key KeyPart) (int, bool) {
	i := sort.Search(len(keys), func(i int) bool { return keys[i] >= key })
	return i, i < len(keys) && keys[i] == key
}

// OrderedMap maps KeyPart to a value V, keeping entries sorted by key.
// The zero value is an empty, ready-to-use map.
type OrderedMap[V any] struct {
	keys   []KeyPart
	values []V
}

// Len returns the number of entries.
func (m *OrderedMap[V]) Len() int {
	return len(m.keys)
}

// Get returns the value stored for key and whether it was present.
// Looking up an absent key is a normal outcome, not an error.
func (m *OrderedMap[V]) Get(key KeyPart) (value V, ok bool) {
	i, found := search(m.keys, key)
	if !found {
		return value, false
	}
	return m.values[i], true
}

// MustGet returns the value stored for key. It panics if key is
// absent; callers must only use it after a successful Get or Test.
func (m *OrderedMap[V]) MustGet(key KeyPart) V {
	i, found := search(m.keys, key)
	if !found {
		panic("omap: MustGet on absent key")
	}
	return m.values[i]
}

// Test reports whether key is present, without retrieving the value.
func (m *OrderedMap[V]) Test(key KeyPart) bool {
	_, found := search(m.keys, key)
	return found
}

// Set inserts or overwrites the value for key. It returns true if key
// already existed (an overwrite), false if this is a new insertion.
func (m *OrderedMap[V]) Set(key KeyPart, value V) (exists bool) {
	i, found := search(m.keys, key)
	if found {
		m.values[i] = value
		return true
	}
	m.keys = append(m.keys, 0)
	copy(m.keys[i+1:], m.keys[i:])
	m.keys[i] = key

	m.values = append(m.values, value)
	copy(m.values[i+1:], m.values[i:])
	m.values[i] = value

	return false
}

// Delete removes key, returning its value and whether it was present.
func (m *OrderedMap[V]) Delete(key KeyPart) (value V, existed bool) {
	i, found := search(m.keys, key)
	if !found {
		return value, false
	}
	value = m.values[i]

	m.keys = append(m.keys[:i], m.keys[i+1:]...)
	m.values = append(m.values[:i], m.values[i+1:]...)

	return value, true
}

// Min returns the smallest key currently stored and true, or false if
// the map is empty. O(1), as required by the diagonal view contract.
func (m *OrderedMap[V]) Min() (KeyPart, bool) {
	if len(m.keys) == 0 {
		return 0, false
	}
	return m.keys[0], true
}

// Max returns the largest key currently stored and true, or false if
// the map is empty. O(1).
func (m *OrderedMap[V]) Max() (KeyPart, bool) {
	if len(m.keys) == 0 {
		return 0, false
	}
	return m.keys[len(m.keys)-1], true
}

// LowerBound returns the index of the first key >= x, which may equal
// Len() if no such key exists.
func (m *OrderedMap[V]) LowerBound(x KeyPart) int {
	return sort.Search(len(m.keys), func(i int) bool { return m.keys[i] >= x })
}

// UpperBound returns the index of the first key > x, which may equal
// Len() if no such key exists.
func (m *OrderedMap[V]) UpperBound(x KeyPart) int {
	return sort.Search(len(m.keys), func(i int) bool { return m.keys[i] > x })
}

// View returns the index range [lo, hi) covering keys in [min, max],
// inclusive on both ends, mirroring the source's VecMap range views.
func (m *OrderedMap[V]) View(min, max KeyPart) (lo, hi int) {
	return m.LowerBound(min), m.UpperBound(max)
}

// KeyAt returns the key at slice index i. Out-of-range access is a
// precondition violation and panics, matching the public-API
// precondition policy (§4.2 of the spec this package implements).
func (m *OrderedMap[V]) KeyAt(i int) KeyPart {
	return m.keys[i]
}

// ValueAt returns the value at slice index i. Panics if out of range.
func (m *OrderedMap[V]) ValueAt(i int) V {
	return m.values[i]
}

// Keys returns the sorted keys. The returned slice aliases internal
// storage and must not be mutated by the caller.
func (m *OrderedMap[V]) Keys() []KeyPart {
	return m.keys
}

// Values returns the values in key order. Aliases internal storage.
func (m *OrderedMap[V]) Values() []V {
	return m.values
}

// Clone returns a shallow copy: new backing slices, values copied by
// assignment (no deep clone of V). Used to implement copy-on-write
// when a sub-trie's refcount exceeds one (see package raw).
func (m *OrderedMap[V]) Clone() *OrderedMap[V] {
	if m == nil {
		return &OrderedMap[V]{}
	}
	c := &OrderedMap[V]{
		keys:   append([]KeyPart(nil), m.keys...),
		values: append([]V(nil), m.values...),
	}
	return c
}

// OrderedSet is an OrderedMap without values, used for depth-1
// hypertrie leaf sets.
type OrderedSet struct {
	keys []KeyPart
}

// Len returns the number of elements.
func (s *OrderedSet) Len() int {
	return len(s.keys)
}

// Test reports whether key is a member.
func (s *OrderedSet) Test(key KeyPart) bool {
	_, found := search(s.keys, key)
	return found
}

// Add inserts key. It returns true if key was already present
// (idempotent no-op), false if newly inserted.
func (s *OrderedSet) Add(key KeyPart) (existed bool) {
	i, found := search(s.keys, key)
	if found {
		return true
	}
	s.keys = append(s.keys, 0)
	copy(s.keys[i+1:], s.keys[i:])
	s.keys[i] = key
	return false
}

// Delete removes key, returning whether it was present.
func (s *OrderedSet) Delete(key KeyPart) (existed bool) {
	i, found := search(s.keys, key)
	if !found {
		return false
	}
	s.keys = append(s.keys[:i], s.keys[i+1:]...)
	return true
}

// Min returns the smallest key and true, or false if empty.
func (s *OrderedSet) Min() (KeyPart, bool) {
	if len(s.keys) == 0 {
		return 0, false
	}
	return s.keys[0], true
}

// Max returns the largest key and true, or false if empty.
func (s *OrderedSet) Max() (KeyPart, bool) {
	if len(s.keys) == 0 {
		return 0, false
	}
	return s.keys[len(s.keys)-1], true
}

// LowerBound returns the index of the first key >= x.
func (s *OrderedSet) LowerBound(x KeyPart) int {
	return sort.Search(len(s.keys), func(i int) bool { return s.keys[i] >= x })
}

// UpperBound returns the index of the first key > x.
func (s *OrderedSet) UpperBound(x KeyPart) int {
	return sort.Search(len(s.keys), func(i int) bool { return s.keys[i] > x })
}

// View returns the index range [lo, hi) covering keys in [min, max].
func (s *OrderedSet) View(min, max KeyPart) (lo, hi int) {
	return s.LowerBound(min), s.UpperBound(max)
}

// KeyAt returns the key at slice index i. Panics if out of range.
func (s *OrderedSet) KeyAt(i int) KeyPart {
	return s.keys[i]
}

// Keys returns the sorted keys. Aliases internal storage.
func (s *OrderedSet) Keys() []KeyPart {
	return s.keys
}

// Clone returns a copy with its own backing slice.
func (s *OrderedSet) Clone() *OrderedSet {
	if s == nil {
		return &OrderedSet{}
	}
	return &OrderedSet{keys: append([]KeyPart(nil), s.keys...)}
}
