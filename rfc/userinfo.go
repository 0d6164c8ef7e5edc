/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package rfc

import "github.com/samd2/url/grammar"

// userinfoPassChars adds ':' to the userinfo charset, matching
// "userinfo = *( unreserved / pct-encoded / sub-delims / ':' )"; the
// username half forbids ':' only implicitly, by virtue of the
// password split happening one level up (spec.md section 4.2).
var userinfoPassChars = grammar.NewTableSet(":", grammar.UnreservedOrSubDelims)

// userinfoResult carries what the authority parser needs to populate
// Index.PartLen[PartUser]/[PartPass] and the HasUserinfo flag.
type userinfoResult struct {
	hasUserinfo bool
	user        string
	userDecoded int
	hasPass     bool
	pass        string
	passDecoded int
}

// findUserinfoAt scans rest for a literal '@' that terminates the
// authority's userinfo component. Since neither userinfo nor reg-name
// may contain a literal, unencoded '@' outside of userinfo's own text,
// any '@' found before the next authority-ending delimiter
// unambiguously marks the end of userinfo -- the same lookahead trick
// the teacher's own Parse (url/public.go, splitting on "#") uses for
// the fragment delimiter.
func findUserinfoAt(rest string) int {
	for i := 0; i < len(rest); i++ {
		switch rest[i] {
		case '/', '?', '#':
			return -1
		case '@':
			return i
		}
	}
	return -1
}

// tryUserinfo attempts "userinfo '@'" at the cursor, consuming both on
// success and leaving the cursor untouched on absence.
func tryUserinfo(c *grammar.Cursor) (userinfoResult, *Error) {
	rest := c.Remaining()
	at := findUserinfoAt(rest)
	if at < 0 {
		return userinfoResult{}, nil
	}

	sub := grammar.NewCursor(rest[:at])
	userRun, badAt, ok := grammar.PctEncodedAt(grammar.UnreservedOrSubDelims)(sub)
	if !ok {
		return userinfoResult{}, newError(KindInvalidPercent, c.Pos()+badAt)
	}

	res := userinfoResult{hasUserinfo: true, user: userRun.Raw, userDecoded: userRun.DecodedLen}

	if !sub.Done() {
		b, _ := sub.Peek()
		if b != ':' {
			return userinfoResult{}, newError(KindInvalidAuthority, c.Pos()+sub.Pos())
		}
		sub.Advance(1)
		passRun, badAt2, ok2 := grammar.PctEncodedAt(userinfoPassChars)(sub)
		if !ok2 {
			return userinfoResult{}, newError(KindInvalidPercent, c.Pos()+badAt2)
		}
		res.hasPass = true
		res.pass = passRun.Raw
		res.passDecoded = passRun.DecodedLen
	}

	if !sub.Done() {
		return userinfoResult{}, newError(KindInvalidAuthority, c.Pos()+sub.Pos())
	}

	c.Advance(at + 1) // userinfo text + '@'
	return res, nil
}
