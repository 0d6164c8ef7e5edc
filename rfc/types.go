/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

// Package rfc is the L2 rule layer: the RFC 3986 grammar productions
// (scheme, userinfo, host, port, the five path variants, query,
// fragment) composed from package grammar's kernel, and the four
// top-level parsers that drive them. Its output is an Index -- the
// compact per-URL record the root package builds its read-only view
// on top of.
package rfc

// Part identifies one of the nine positions in the index table, in
// the order they appear in the encoded buffer.
type Part int

const (
	PartScheme Part = iota
	PartUser
	PartPass
	PartHost
	PartPort
	PartPath
	PartQuery
	PartFragment
	PartEnd
	partCount = int(PartEnd) + 1
)

func (p Part) String() string {
	switch p {
	case PartScheme:
		return "scheme"
	case PartUser:
		return "user"
	case PartPass:
		return "pass"
	case PartHost:
		return "host"
	case PartPort:
		return "port"
	case PartPath:
		return "path"
	case PartQuery:
		return "query"
	case PartFragment:
		return "fragment"
	case PartEnd:
		return "end"
	}
	return "part(?)"
}

// HostKind classifies the host production that was recognised.
type HostKind int

const (
	HostNone HostKind = iota
	HostName
	HostIPv4
	HostIPv6
	HostIPvFuture
)

func (k HostKind) String() string {
	switch k {
	case HostNone:
		return "none"
	case HostName:
		return "name"
	case HostIPv4:
		return "ipv4"
	case HostIPv6:
		return "ipv6"
	case HostIPvFuture:
		return "ipvfuture"
	}
	return "host(?)"
}

// SchemeID is a closed set of well-known schemes plus none/unknown,
// looked up once per parse against SchemeTable -- a process-wide
// immutable table, never mutated at runtime (see SchemeTable in
// scheme.go).
type SchemeID int

const (
	SchemeNone SchemeID = iota
	SchemeUnknown
	SchemeHTTP
	SchemeHTTPS
	SchemeWS
	SchemeWSS
	SchemeFTP
	SchemeFile
	SchemeMailto
	SchemeURN
)

func (s SchemeID) String() string {
	switch s {
	case SchemeNone:
		return "none"
	case SchemeUnknown:
		return "unknown"
	case SchemeHTTP:
		return "http"
	case SchemeHTTPS:
		return "https"
	case SchemeWS:
		return "ws"
	case SchemeWSS:
		return "wss"
	case SchemeFTP:
		return "ftp"
	case SchemeFile:
		return "file"
	case SchemeMailto:
		return "mailto"
	case SchemeURN:
		return "urn"
	}
	return "scheme(?)"
}

// Index is the compact per-URL record populated by the top-level
// parsers in parse.go. It holds no pointer to the source buffer --
// that is the root package's job, since Index only describes offsets
// and side channels, never the bytes themselves (spec's "index table
// is an internal contract, not a stable interface").
type Index struct {
	// PartLen[p] is the encoded byte length of part p, delimiter(s)
	// included per the table in spec.md section 3.1. The "//" authority
	// marker, when present, is folded into PartLen[PartUser] -- exactly
	// the symmetric treatment already given the userinfo-terminating
	// '@', which is folded into PartLen[PartPass] -- so that
	// PartLen[PartUser] can be nonzero purely because of the marker,
	// with no userinfo text following it. HasAuthority/HasUserinfo below
	// are the derived-presence source of truth precisely so that this
	// folding never has to be reverse-engineered from a length: querying
	// presence never depends on distinguishing "marker only" from
	// "marker plus text" by inspecting PartLen[PartUser] alone.
	PartLen [partCount]uint32

	// DecodedLen[p] is the byte count part p would occupy after
	// percent-decoding (with '+' to space inside query, when enabled).
	DecodedLen [partCount]uint32

	HostKind   HostKind
	IPBytes    [16]byte
	PortNumber uint16
	SchemeID   SchemeID

	SegmentCount int
	ParamCount   int

	// HasAuthority and HasUserinfo are stored explicitly rather than
	// derived purely from PartLen, because PartLen[PartUser] can be
	// nonzero solely due to the folded-in "//" marker with no userinfo
	// text following it; storing the semantic flags keeps has_authority
	// and has_userinfo O(1) and exactly right in that case.
	HasAuthority bool
	HasUserinfo  bool

	// PathAbsolute records whether the path begins with '/', needed to
	// reconstruct encoded_path from segments() per the segment count law.
	PathAbsolute bool
}

// Offset returns the cumulative byte offset of part p within the
// encoded buffer: the sum of every prior part's length, per the
// offset-monotonicity invariant in spec.md section 3.3.
func (ix *Index) Offset(p Part) int {
	off := 0
	for i := PartScheme; i < p; i++ {
		off += int(ix.PartLen[i])
	}
	return off
}

// End returns the total encoded length, i.e. Offset(PartEnd).
func (ix *Index) End() int {
	return ix.Offset(PartEnd)
}
