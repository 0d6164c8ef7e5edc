/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

// Package url is a non-owning, zero-copy view over a caller-supplied
// URL buffer. Parsing never allocates: it walks the grammar rules in
// package rfc once and leaves the result as a compact index table
// (rfc.Index) plus the borrowed buffer. Every "encoded" accessor
// returns a slice of that buffer directly; every "decoded" accessor
// percent-decodes into a freshly allocated string on demand.
package url

import "github.com/samd2/url/rfc"

// URL is a parsed view over cs. It holds no owned bytes: copying a URL
// copies the index table and the borrowed string header, never the
// underlying data, matching the read-only, freely-copyable view
// spec.md section 3.4 describes.
type URL struct {
	cs               string
	ix               rfc.Index
	isAuthorityScope bool
}

// Parse recognises a URI-reference: either a full URI or a
// relative-ref. This is the general-purpose entry point, analogous to
// the teacher's own url.Parse for an arbitrary (possibly relative)
// rawurl.
func Parse(raw string) (*URL, error) {
	ix, err := rfc.ParseURIReference(raw)
	if err != nil {
		return nil, newParseError("parse", raw, err)
	}
	return &URL{cs: raw, ix: ix}, nil
}

// ParseURI recognises a strict absolute "scheme:hier-part[?query][#fragment]",
// failing if raw has no scheme.
func ParseURI(raw string) (*URL, error) {
	ix, err := rfc.ParseURI(raw)
	if err != nil {
		return nil, newParseError("parse_uri", raw, err)
	}
	return &URL{cs: raw, ix: ix}, nil
}

// ParseAbsoluteURI recognises "scheme:hier-part[?query]", with no
// fragment permitted.
func ParseAbsoluteURI(raw string) (*URL, error) {
	ix, err := rfc.ParseAbsoluteURI(raw)
	if err != nil {
		return nil, newParseError("parse_absolute_uri", raw, err)
	}
	return &URL{cs: raw, ix: ix}, nil
}

// ParseRelativeRef recognises a relative-ref: no scheme permitted.
func ParseRelativeRef(raw string) (*URL, error) {
	ix, err := rfc.ParseRelativeRef(raw)
	if err != nil {
		return nil, newParseError("parse_relative_ref", raw, err)
	}
	return &URL{cs: raw, ix: ix}, nil
}

// ParseAuthority recognises a standalone authority component (no
// surrounding scheme, "//", path, query or fragment), reusing the same
// index-table machinery on the narrower buffer per spec.md section
// 3.2's is_authority_scope flag.
func ParseAuthority(raw string) (*URL, error) {
	ix, err := rfc.ParseAuthority(raw)
	if err != nil {
		return nil, newParseError("parse_authority", raw, err)
	}
	return &URL{cs: raw, ix: ix, isAuthorityScope: true}, nil
}

// Size returns the total encoded length of the view.
func (u *URL) Size() int { return u.ix.End() }

// Data returns the full borrowed buffer the view was parsed from.
func (u *URL) Data() string { return u.cs }

// String returns the same borrowed buffer as Data; the view never
// normalises or rebuilds its input.
func (u *URL) String() string { return u.cs }

// IsAuthorityScope reports whether this view was produced by
// ParseAuthority rather than one of the full-URL parsers.
func (u *URL) IsAuthorityScope() bool { return u.isAuthorityScope }

func (u *URL) slice(p rfc.Part) string {
	off := u.ix.Offset(p)
	return u.cs[off : off+int(u.ix.PartLen[p])]
}

// markerLen is the number of leading bytes of PartLen[PartUser] that
// are the "//" authority introducer rather than userinfo text: 2 for
// any full-URL view with an authority, 0 for a view built by
// ParseAuthority (whose buffer never held one) or with no authority at
// all. rfc.Index folds the marker into PartLen[PartUser] (see
// rfc/types.go); this is where that fold gets unwound again.
func (u *URL) markerLen() int {
	if u.ix.HasAuthority && !u.isAuthorityScope {
		return 2
	}
	return 0
}

// HasScheme reports whether a scheme was recognised.
func (u *URL) HasScheme() bool { return u.ix.PartLen[rfc.PartScheme] > 0 }

// Scheme returns the scheme text without its trailing ':', or "" if absent.
func (u *URL) Scheme() string {
	if !u.HasScheme() {
		return ""
	}
	s := u.slice(rfc.PartScheme)
	return s[:len(s)-1]
}

// SchemeID classifies Scheme() against the well-known scheme table.
func (u *URL) SchemeID() rfc.SchemeID { return u.ix.SchemeID }

// HasAuthority reports whether a "//"-introduced authority is present.
func (u *URL) HasAuthority() bool { return u.ix.HasAuthority }

// HasUserinfo reports whether userinfo precedes the host.
func (u *URL) HasUserinfo() bool { return u.ix.HasUserinfo }

// HasPassword reports whether userinfo carries a ':'-separated password.
func (u *URL) HasPassword() bool { return u.ix.PartLen[rfc.PartPass] >= 2 }

// EncodedUser returns the borrowed, still-percent-encoded username,
// or "" if there is no userinfo.
func (u *URL) EncodedUser() string {
	if !u.ix.HasUserinfo {
		return ""
	}
	return u.slice(rfc.PartUser)[u.markerLen():]
}

// User returns the percent-decoded username.
func (u *URL) User() string { return decode(u.EncodedUser()) }

// EncodedPassword returns the borrowed, still-percent-encoded
// password, or "" if absent.
func (u *URL) EncodedPassword() string {
	if !u.HasPassword() {
		return ""
	}
	s := u.slice(rfc.PartPass)
	return s[1 : len(s)-1] // strip leading ':' and trailing '@'
}

// Password returns the percent-decoded password.
func (u *URL) Password() string { return decode(u.EncodedPassword()) }

// HostKind classifies the recognised host production.
func (u *URL) HostKind() rfc.HostKind { return u.ix.HostKind }

// EncodedHost returns the borrowed host text: a bare name or dotted
// quad, or an IP-literal with its brackets stripped.
func (u *URL) EncodedHost() string {
	s := u.slice(rfc.PartHost)
	if u.ix.HostKind == rfc.HostIPv6 || u.ix.HostKind == rfc.HostIPvFuture {
		return s[1 : len(s)-1] // strip '[' ']'
	}
	return s
}

// Host returns the percent-decoded host (a no-op for IP forms, which
// never carry percent-encoding).
func (u *URL) Host() string {
	if u.ix.HostKind == rfc.HostName {
		return decode(u.EncodedHost())
	}
	return u.EncodedHost()
}

// HostIPv4 returns the 4 parsed octets when HostKind is HostIPv4, or
// the zero address otherwise.
func (u *URL) HostIPv4() [4]byte {
	var out [4]byte
	if u.ix.HostKind == rfc.HostIPv4 {
		copy(out[:], u.ix.IPBytes[:4])
	}
	return out
}

// HostIPv6 returns the 16 parsed octets when HostKind is HostIPv6, or
// the unspecified address otherwise.
func (u *URL) HostIPv6() [16]byte {
	if u.ix.HostKind == rfc.HostIPv6 {
		return u.ix.IPBytes
	}
	var zero [16]byte
	return zero
}

// HostIPvFuture returns the borrowed IPvFuture text (brackets
// stripped), or "" if HostKind is not HostIPvFuture.
func (u *URL) HostIPvFuture() string {
	if u.ix.HostKind != rfc.HostIPvFuture {
		return ""
	}
	return u.EncodedHost()
}

// HasPort reports whether a ':'-introduced port follows the host.
func (u *URL) HasPort() bool { return u.ix.PartLen[rfc.PartPort] > 0 }

// Port returns the literal port digits, or "" if absent.
func (u *URL) Port() string {
	if !u.HasPort() {
		return ""
	}
	s := u.slice(rfc.PartPort)
	return s[1:] // strip leading ':'
}

// PortNumber returns the numeric port, saturating to 0 when the
// literal digits overflow a uint16 (spec.md section 4.2).
func (u *URL) PortNumber() uint16 { return u.ix.PortNumber }

// IsPathAbsolute reports whether the path begins with '/'.
func (u *URL) IsPathAbsolute() bool { return u.ix.PathAbsolute }

// EncodedPath returns the borrowed, still-percent-encoded path.
func (u *URL) EncodedPath() string { return u.slice(rfc.PartPath) }

// Path returns the percent-decoded path.
func (u *URL) Path() string { return decode(u.EncodedPath()) }

// HasQuery reports whether a '?'-introduced query is present.
func (u *URL) HasQuery() bool { return u.ix.PartLen[rfc.PartQuery] > 0 }

// EncodedQuery returns the borrowed query text without its leading '?'.
func (u *URL) EncodedQuery() string {
	if !u.HasQuery() {
		return ""
	}
	return u.slice(rfc.PartQuery)[1:]
}

// Query returns the percent-decoded query text (no '+' substitution;
// that only applies within a decoded parameter, see Params).
func (u *URL) Query() string { return decode(u.EncodedQuery()) }

// HasFragment reports whether a '#'-introduced fragment is present.
func (u *URL) HasFragment() bool { return u.ix.PartLen[rfc.PartFragment] > 0 }

// EncodedFragment returns the borrowed fragment text without its
// leading '#'.
func (u *URL) EncodedFragment() string {
	if !u.HasFragment() {
		return ""
	}
	return u.slice(rfc.PartFragment)[1:]
}

// Fragment returns the percent-decoded fragment text.
func (u *URL) Fragment() string { return decode(u.EncodedFragment()) }

// SegmentCount returns the number of path segments (see Segments).
func (u *URL) SegmentCount() int { return u.ix.SegmentCount }

// ParamCount returns the number of query parameters (see Params).
func (u *URL) ParamCount() int { return u.ix.ParamCount }

// EncodedAuthority returns the borrowed "[userinfo@]host[:port]" text,
// or "" if there is no authority.
func (u *URL) EncodedAuthority() string {
	if !u.ix.HasAuthority {
		return ""
	}
	start := u.ix.Offset(rfc.PartUser) + u.markerLen()
	end := u.ix.Offset(rfc.PartPath)
	return u.cs[start:end]
}

// EncodedUserinfo returns the borrowed "user[:pass]" text (without the
// trailing '@'), or "" if there is no userinfo.
func (u *URL) EncodedUserinfo() string {
	if !u.ix.HasUserinfo {
		return ""
	}
	start := u.ix.Offset(rfc.PartUser) + u.markerLen()
	end := u.ix.Offset(rfc.PartHost) - 1 // drop the terminating '@'
	return u.cs[start:end]
}

// EncodedHostAndPort returns the borrowed "host[:port]" text.
func (u *URL) EncodedHostAndPort() string {
	start := u.ix.Offset(rfc.PartHost)
	end := u.ix.Offset(rfc.PartPath)
	return u.cs[start:end]
}

// EncodedOrigin returns "scheme://authority", or "" if either is missing.
func (u *URL) EncodedOrigin() string {
	if !u.HasScheme() || !u.ix.HasAuthority {
		return ""
	}
	start := u.ix.Offset(rfc.PartScheme)
	end := u.ix.Offset(rfc.PartPath)
	return u.cs[start:end]
}

// EncodedTarget returns "path[?query]".
func (u *URL) EncodedTarget() string {
	start := u.ix.Offset(rfc.PartPath)
	end := u.ix.Offset(rfc.PartFragment)
	return u.cs[start:end]
}

// EncodedResource returns "path[?query][#fragment]".
func (u *URL) EncodedResource() string {
	start := u.ix.Offset(rfc.PartPath)
	return u.cs[start:]
}
