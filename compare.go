/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package url

import "strings"

// Compare implements RFC 3986 section 6.2.2 syntax-based normalised
// comparison, returning -1, 0, or 1. The scheme is compared
// case-insensitively; every other component is compared as if its
// percent-triplets were uppercased and its unreserved-character
// escapes were decoded, without touching either URL's buffer. Ties
// fall through component by component in declared part order.
func Compare(a, b *URL) int {
	if c := strings.Compare(strings.ToLower(a.Scheme()), strings.ToLower(b.Scheme())); c != 0 {
		return c
	}
	if c := strings.Compare(normalizedForCompare(a.EncodedUser()), normalizedForCompare(b.EncodedUser())); c != 0 {
		return c
	}
	if c := strings.Compare(normalizedForCompare(a.EncodedPassword()), normalizedForCompare(b.EncodedPassword())); c != 0 {
		return c
	}
	if c := strings.Compare(strings.ToLower(normalizedForCompare(a.EncodedHost())), strings.ToLower(normalizedForCompare(b.EncodedHost()))); c != 0 {
		return c
	}
	if c := strings.Compare(a.Port(), b.Port()); c != 0 {
		return c
	}
	if c := strings.Compare(normalizedForCompare(a.EncodedPath()), normalizedForCompare(b.EncodedPath())); c != 0 {
		return c
	}
	if c := strings.Compare(normalizedForCompare(a.EncodedQuery()), normalizedForCompare(b.EncodedQuery())); c != 0 {
		return c
	}
	return strings.Compare(normalizedForCompare(a.EncodedFragment()), normalizedForCompare(b.EncodedFragment()))
}

// Equal reports whether Compare(a, b) == 0.
func Equal(a, b *URL) bool { return Compare(a, b) == 0 }

// normalizedForCompare rewrites raw so that every percent-triplet
// appears uppercased and every triplet that encodes an unreserved
// character is replaced by that character literally -- the two
// transformations RFC 3986 section 6.2.2 permits without altering a
// URL's meaning -- leaving every other byte untouched.
func normalizedForCompare(raw string) string {
	hasPercent := strings.IndexByte(raw, '%') >= 0
	if !hasPercent {
		return raw
	}

	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		if raw[i] != '%' || i+2 >= len(raw) {
			b.WriteByte(raw[i])
			continue
		}
		v := hexByte(raw[i+1], raw[i+2])
		if isUnreservedByte(v) {
			b.WriteByte(v)
		} else {
			b.WriteByte('%')
			b.WriteByte(upperHex(raw[i+1]))
			b.WriteByte(upperHex(raw[i+2]))
		}
		i += 2
	}
	return b.String()
}

func isUnreservedByte(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		return true
	}
	switch c {
	case '-', '.', '_', '~':
		return true
	}
	return false
}

func upperHex(c byte) byte {
	if c >= 'a' && c <= 'f' {
		return c - 'a' + 'A'
	}
	return c
}
