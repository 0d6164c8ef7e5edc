/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package rfc

import "github.com/samd2/url/grammar"

// queryChars is "query = *( pchar / '/' / '?' )".
var queryChars = grammar.NewTableSet("/?", grammar.PChar)

// fragmentChars is "fragment = *( pchar / '/' / '?' )", the same
// charset as query -- RFC 3986 defines them identically.
var fragmentChars = queryChars

// QueryResult is what parseQuery reports back to the top-level parser.
type QueryResult struct {
	Raw        string
	DecodedLen int
	ParamCount int
}

// parseQuery recognises the query text at c (the leading '?' must
// already have been consumed by the caller) and counts the '&'
// -separated parameters it contains, per spec.md section 4.4's
// parameter-counting law: an empty query has zero parameters, and a
// non-empty query has one more parameter than it has '&' separators.
// ';' is an ordinary query byte, not a separator (section 4.2).
func parseQuery(c *grammar.Cursor) (QueryResult, *Error) {
	run, badAt, ok := grammar.PctEncodedAt(queryChars)(c)
	if !ok {
		return QueryResult{}, newError(KindInvalidPercent, badAt)
	}
	return QueryResult{Raw: run.Raw, DecodedLen: run.DecodedLen, ParamCount: countParams(run.Raw)}, nil
}

// FragmentResult is what parseFragment reports back to the top-level parser.
type FragmentResult struct {
	Raw        string
	DecodedLen int
}

// parseFragment recognises the fragment text at c (the leading '#'
// must already have been consumed by the caller).
func parseFragment(c *grammar.Cursor) (FragmentResult, *Error) {
	run, badAt, ok := grammar.PctEncodedAt(fragmentChars)(c)
	if !ok {
		return FragmentResult{}, newError(KindInvalidPercent, badAt)
	}
	return FragmentResult{Raw: run.Raw, DecodedLen: run.DecodedLen}, nil
}

// countParams counts '&'-delimited parameters in an encoded query
// string: zero for an empty query, otherwise one more than the number
// of '&' separators.
func countParams(raw string) int {
	if raw == "" {
		return 0
	}
	n := 1
	for i := 0; i < len(raw); i++ {
		if raw[i] == '&' {
			n++
		}
	}
	return n
}
