/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package rfc

import "github.com/samd2/url/grammar"

// pathContext selects which of the five path-* productions governs
// the text path.go validates, per RFC 3986 section 3.3.
type pathContext int

const (
	pathAbEmpty   pathContext = iota // path-abempty  = *( "/" segment )
	pathAbsolute                     // path-absolute = "/" [ segment-nz *( "/" segment ) ]
	pathRootless                     // path-rootless = segment-nz *( "/" segment )
	pathNoScheme                     // path-noscheme = segment-nz-nc *( "/" segment )
	pathEmptyOnly                    // path-empty    = 0<pchar>
)

// pathChars is pchar union '/': path.go takes a single PctEncodedAt
// pass over the whole path text and validates shape afterwards,
// rather than driving the generic Range combinator -- path-abempty's
// "every repetition, including the first, is '/' segment" shape does
// not fit Range's "unprefixed first element then sep-prefixed repeats"
// contract used for path-absolute/rootless/noscheme. See DESIGN.md.
var pathChars = grammar.NewTableSet("/", grammar.PChar)

// PathResult is what parsePath reports back to the top-level parser.
type PathResult struct {
	Raw        string
	DecodedLen int
	Absolute   bool
	Segments   []string // encoded segment text, '/' separators removed
}

// parsePath recognises the path text at c under the given context and
// reports its segments per spec.md's boundary rules: an empty path and
// a path equal to "/" both yield zero segments; a leading '/' never
// produces a leading empty segment; a trailing '/' produces a
// trailing empty segment only when the path is longer than one byte.
func parsePath(c *grammar.Cursor, ctx pathContext) (PathResult, *Error) {
	if ctx == pathEmptyOnly {
		return PathResult{}, nil
	}

	start := c.Mark()
	run, badAt, ok := grammar.PctEncodedAt(pathChars)(c)
	if !ok {
		return PathResult{}, newError(KindInvalidPercent, badAt)
	}
	raw := run.Raw

	switch ctx {
	case pathAbsolute:
		if len(raw) > 0 && len(raw) >= 2 && raw[0] == '/' && raw[1] == '/' {
			c.Reset(start)
			return PathResult{}, newError(KindInvalidPath, start)
		}
	case pathRootless:
		if len(raw) == 0 {
			c.Reset(start)
			return PathResult{}, newError(KindInvalidPath, start)
		}
		if raw[0] == '/' {
			c.Reset(start)
			return PathResult{}, newError(KindInvalidPath, start)
		}
	case pathNoScheme:
		if len(raw) == 0 {
			c.Reset(start)
			return PathResult{}, newError(KindInvalidPath, start)
		}
		if raw[0] == '/' {
			c.Reset(start)
			return PathResult{}, newError(KindInvalidPath, start)
		}
		first := firstSegment(raw)
		for i := 0; i < len(first); i++ {
			if first[i] == ':' {
				c.Reset(start)
				return PathResult{}, newError(KindInvalidPath, start)
			}
		}
	}

	return PathResult{
		Raw:        raw,
		DecodedLen: run.DecodedLen,
		Absolute:   len(raw) > 0 && raw[0] == '/',
		Segments:   splitSegments(raw),
	}, nil
}

func firstSegment(raw string) string {
	for i := 0; i < len(raw); i++ {
		if raw[i] == '/' {
			return raw[:i]
		}
	}
	return raw
}

// splitSegments implements the segment-counting law directly on the
// final encoded path string: empty path and path=="/" both yield zero
// segments, a leading '/' never introduces a leading empty segment,
// and a trailing '/' introduces a trailing empty segment only when
// the path is longer than a single byte.
func splitSegments(raw string) []string {
	if raw == "" || raw == "/" {
		return nil
	}
	body := raw
	if body[0] == '/' {
		body = body[1:]
	}
	if body == "" {
		return nil
	}
	var segs []string
	start := 0
	for i := 0; i < len(body); i++ {
		if body[i] == '/' {
			segs = append(segs, body[start:i])
			start = i + 1
		}
	}
	segs = append(segs, body[start:])
	return segs
}
