/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

// Package grammar is the L1 kernel: character-set predicates and the
// small set of rule combinators every RFC 3986 production in the rfc
// package is built from. Nothing here knows about URLs; it only knows
// how to recognise runs of bytes.
package grammar

// CharSet classifies single bytes into a fixed set, mirroring an RFC
// 3986 character-class production such as unreserved or sub-delims.
type CharSet interface {
	Contains(c byte) bool
}

// TableSet is a 256-entry lookup table charset, the fast path for any
// set fixed at construction time.
type TableSet [256]bool

func (t *TableSet) Contains(c byte) bool { return t[c] }

// NewTableSet builds a TableSet from a literal string of member bytes
// plus the union of any number of contributing charsets.
func NewTableSet(members string, sets ...CharSet) *TableSet {
	var t TableSet
	for i := 0; i < len(members); i++ {
		t[members[i]] = true
	}
	for _, s := range sets {
		if s == nil {
			continue
		}
		for c := 0; c < 256; c++ {
			if s.Contains(byte(c)) {
				t[c] = true
			}
		}
	}
	return &t
}

// PredicateSet is a charset defined by a function rather than a
// precomputed table, for sets that are cheaper to state as a range
// comparison (e.g. dec-octet bounds) than to enumerate.
type PredicateSet func(c byte) bool

func (p PredicateSet) Contains(c byte) bool { return p(c) }

// Union returns a charset that contains every byte that is a member
// of at least one of sets.
func Union(sets ...CharSet) CharSet {
	return PredicateSet(func(c byte) bool {
		for _, s := range sets {
			if s.Contains(c) {
				return true
			}
		}
		return false
	})
}

// Intersect returns a charset that contains only bytes that are
// members of every set in sets.
func Intersect(sets ...CharSet) CharSet {
	return PredicateSet(func(c byte) bool {
		for _, s := range sets {
			if !s.Contains(c) {
				return false
			}
		}
		return true
	})
}

// Complement returns a charset containing every byte not in s.
func Complement(s CharSet) CharSet {
	return PredicateSet(func(c byte) bool { return !s.Contains(c) })
}
