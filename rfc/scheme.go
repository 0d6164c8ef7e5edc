/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package rfc

import (
	"strings"

	"github.com/samd2/url/grammar"
)

// SchemeTable is the fixed, process-wide well-known scheme lookup per
// spec.md section 6: "a process-wide immutable table initialised
// once; no runtime mutation, no teardown. Represent as a constant
// lookup." A trie (as used for the dictionary lookup in
// npillmayer-hyphenate, elsewhere in the retrieval pack) was
// considered and rejected: the set is small and fixed, and spec.md
// explicitly calls for a constant table rather than a dynamic
// structure.
var SchemeTable = map[string]SchemeID{
	"http":   SchemeHTTP,
	"https":  SchemeHTTPS,
	"ws":     SchemeWS,
	"wss":    SchemeWSS,
	"ftp":    SchemeFTP,
	"file":   SchemeFile,
	"mailto": SchemeMailto,
	"urn":    SchemeURN,
}

// LookupScheme classifies a lower-cased scheme spelling against
// SchemeTable, returning SchemeUnknown for anything not listed.
func LookupScheme(lower string) SchemeID {
	if id, ok := SchemeTable[lower]; ok {
		return id
	}
	return SchemeUnknown
}

// Scheme parses "scheme = ALPHA *( ALPHA / DIGIT / '+' / '-' / '.' )"
// at the cursor and, on success, looks up its canonical lower-cased
// spelling in SchemeTable.
func Scheme(c *grammar.Cursor) (text string, id SchemeID, ok bool) {
	start := c.Mark()
	if _, matched := grammar.OneOf(grammar.Alpha)(c); !matched {
		return "", SchemeNone, false
	}
	grammar.Run(grammar.SchemeTail)(c)
	text = c.Slice(start, c.Pos())
	id = LookupScheme(strings.ToLower(text))
	return text, id, true
}
