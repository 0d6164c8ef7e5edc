/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package rfc

import "github.com/samd2/url/grammar"

// parseAuthorityInto recognises "authority = [ userinfo '@' ] host [ ':' port ]"
// at c and populates ix's user/pass/host/port fields. markerLen is 2
// when the caller has already consumed a "//" introducer immediately
// before c's current position (every hier-part/relative-part
// authority), and 0 for a standalone ParseAuthority call whose buffer
// never held one; it is folded straight into PartLen[PartUser] --
// matching spec.md section 3.1's "user: length > 0 ⇔ authority
// present" -- the same way the userinfo-terminating '@' is folded into
// PartLen[PartPass], so that the nine parts concatenate back to
// exactly the buffer that was parsed. HasAuthority/HasUserinfo remain
// the derived-presence source of truth, so a marker-only PartLen[PartUser]
// (authority present, no userinfo) never gets mistaken for userinfo
// text by a caller that only looks at the length.
func parseAuthorityInto(c *grammar.Cursor, ix *Index, markerLen int) *Error {
	ix.HasAuthority = true

	ui, err := tryUserinfo(c)
	if err != nil {
		return err
	}

	userLen := markerLen
	if ui.hasUserinfo {
		ix.HasUserinfo = true
		userLen += len(ui.user)
		ix.DecodedLen[PartUser] = uint32(ui.userDecoded)

		passLen := 1 // the terminating '@'
		if ui.hasPass {
			passLen += 1 + len(ui.pass) // ':' + text
			ix.DecodedLen[PartPass] = uint32(ui.passDecoded)
		}
		ix.PartLen[PartPass] = uint32(passLen)
	}
	ix.PartLen[PartUser] = uint32(userLen)

	hostStart := c.Pos()
	hr, herr := Host(c)
	if herr != nil {
		return herr
	}
	ix.PartLen[PartHost] = uint32(c.Pos() - hostStart)
	ix.DecodedLen[PartHost] = uint32(hr.DecodedLen)
	ix.HostKind = hr.Kind
	ix.IPBytes = hr.IPBytes

	if b, has := c.Peek(); has && b == ':' {
		c.Advance(1)
		pr := Port(c)
		ix.PartLen[PartPort] = uint32(1 + len(pr.Text))
		ix.PortNumber = pr.Number
	}

	return nil
}

// parse drives every top-level grammar production from a single
// function, parameterised the way the teacher parameterises its own
// request-line/status-line parsing paths with small boolean flags
// (init_npn_request.go) rather than one function per case: tryScheme
// says whether a leading "scheme ':'" should even be attempted,
// mustHaveScheme says whether its absence is an error (true for URI
// and absolute-URI, false for URI-reference, irrelevant when
// tryScheme is false for relative-ref), and allowFragment gates the
// trailing "'#' fragment".
func parse(input string, tryScheme, mustHaveScheme, allowFragment bool) (Index, *Error) {
	c := grammar.NewCursor(input)
	var ix Index

	if tryScheme {
		mark := c.Mark()
		text, id, ok := Scheme(c)
		if ok {
			if b, has := c.Peek(); has && b == ':' {
				c.Advance(1)
				ix.SchemeID = id
				ix.PartLen[PartScheme] = uint32(len(text) + 1)
			} else {
				ok = false
				c.Reset(mark)
			}
		}
		if !ok && mustHaveScheme {
			return ix, newError(KindInvalidScheme, mark)
		}
	}

	var pctx pathContext
	switch {
	case func() bool { b, has := c.Peek(); return has && b == '/' }():
		rest := c.Remaining()
		if len(rest) >= 2 && rest[1] == '/' {
			c.Advance(2)
			if err := parseAuthorityInto(c, &ix, 2); err != nil {
				return ix, err
			}
			pctx = pathAbEmpty
		} else {
			pctx = pathAbsolute
		}
	case func() bool { b, has := c.Peek(); return has && (b == '?' || b == '#') }():
		pctx = pathEmptyOnly
	case !c.Done():
		if ix.PartLen[PartScheme] > 0 {
			pctx = pathRootless
		} else {
			pctx = pathNoScheme
		}
	default:
		pctx = pathEmptyOnly
	}

	pathStart := c.Pos()
	pr, perr := parsePath(c, pctx)
	if perr != nil {
		return ix, perr
	}
	ix.PartLen[PartPath] = uint32(c.Pos() - pathStart)
	ix.DecodedLen[PartPath] = uint32(pr.DecodedLen)
	ix.PathAbsolute = pr.Absolute
	ix.SegmentCount = len(pr.Segments)

	if b, has := c.Peek(); has && b == '?' {
		c.Advance(1)
		qStart := c.Pos()
		qr, qerr := parseQuery(c)
		if qerr != nil {
			return ix, qerr
		}
		ix.PartLen[PartQuery] = uint32(1 + (c.Pos() - qStart))
		ix.DecodedLen[PartQuery] = uint32(qr.DecodedLen)
		ix.ParamCount = qr.ParamCount
	}

	if allowFragment {
		if b, has := c.Peek(); has && b == '#' {
			c.Advance(1)
			fStart := c.Pos()
			fr, ferr := parseFragment(c)
			if ferr != nil {
				return ix, ferr
			}
			ix.PartLen[PartFragment] = uint32(1 + (c.Pos() - fStart))
			ix.DecodedLen[PartFragment] = uint32(fr.DecodedLen)
		}
	}

	if !c.Done() {
		return ix, newError(KindTrailingBytes, c.Pos())
	}

	return ix, nil
}

// ParseURI recognises "URI = scheme ':' hier-part [ '?' query ] [ '#' fragment ]".
func ParseURI(input string) (Index, *Error) {
	return parse(input, true, true, true)
}

// ParseAbsoluteURI recognises "absolute-URI = scheme ':' hier-part [ '?' query ]".
func ParseAbsoluteURI(input string) (Index, *Error) {
	return parse(input, true, true, false)
}

// ParseRelativeRef recognises "relative-ref = relative-part [ '?' query ] [ '#' fragment ]".
func ParseRelativeRef(input string) (Index, *Error) {
	return parse(input, false, false, true)
}

// ParseURIReference recognises "URI-reference = URI / relative-ref".
func ParseURIReference(input string) (Index, *Error) {
	return parse(input, true, false, true)
}

// ParseAuthority recognises a standalone authority component, with no
// "//" introducer, scheme, path, query or fragment surrounding it.
func ParseAuthority(input string) (Index, *Error) {
	c := grammar.NewCursor(input)
	var ix Index
	if err := parseAuthorityInto(c, &ix, 0); err != nil {
		return ix, err
	}
	if !c.Done() {
		return ix, newError(KindTrailingBytes, c.Pos())
	}
	return ix, nil
}
