/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package rfc

import (
	"strings"

	"github.com/samd2/url/grammar"
)

// HostResult is what Host (and its IP-literal/IPv4/reg-name
// alternatives) reports back to the authority parser in parse.go.
type HostResult struct {
	Kind       HostKind
	Raw        string // full encoded host text, brackets included for IP-literal forms
	DecodedLen int
	IPBytes    [16]byte
}

// regNameChars backs both reg-name and the IPv4 alternative, since
// IPv4's digits and dots are a strict subset of reg-name's charset --
// host tries the run once and classifies it afterwards rather than
// attempting two separate consuming passes. See DESIGN.md.
var regNameChars = grammar.UnreservedOrSubDelims

// Host recognises "host = IP-literal / IPv4address / reg-name".
func Host(c *grammar.Cursor) (HostResult, *Error) {
	if b, has := c.Peek(); has && b == '[' {
		return ipLiteralHost(c)
	}

	run, badAt, ok := grammar.PctEncodedAt(regNameChars)(c)
	if !ok {
		return HostResult{}, newError(KindInvalidAuthority, badAt)
	}
	if v4, isV4 := parseIPv4(run.Raw); isV4 {
		return HostResult{Kind: HostIPv4, Raw: run.Raw, DecodedLen: run.DecodedLen, IPBytes: ipv4To16(v4)}, nil
	}
	return HostResult{Kind: HostName, Raw: run.Raw, DecodedLen: run.DecodedLen}, nil
}

// ipLiteralHost recognises "IP-literal = '[' ( IPv6address / IPvFuture ) ']'".
func ipLiteralHost(c *grammar.Cursor) (HostResult, *Error) {
	start := c.Mark()
	c.Advance(1) // '['
	bodyStart := c.Pos()
	for {
		b, has := c.Peek()
		if !has {
			c.Reset(start)
			return HostResult{}, newError(KindInvalidIPLiteral, start)
		}
		if b == ']' {
			break
		}
		c.Advance(1)
	}
	body := c.Slice(bodyStart, c.Pos())
	c.Advance(1) // ']'
	full := c.Slice(start, c.Pos())

	if len(body) > 0 && (body[0] == 'v' || body[0] == 'V') {
		if !parseIPvFuture(body) {
			c.Reset(start)
			return HostResult{}, newError(KindInvalidIPvFuture, bodyStart)
		}
		return HostResult{Kind: HostIPvFuture, Raw: full, DecodedLen: len(body)}, nil
	}

	ip, ok := parseIPv6(body)
	if !ok {
		c.Reset(start)
		return HostResult{}, newError(KindInvalidIPv6, bodyStart)
	}
	return HostResult{Kind: HostIPv6, Raw: full, DecodedLen: len(body), IPBytes: ip}, nil
}

// parseIPv4 validates "dec-octet '.' dec-octet '.' dec-octet '.' dec-octet",
// rejecting the multi-digit leading-zero ambiguity spec.md section 4.2 calls
// out ("no leading-zero ambiguity for multi-digit octets").
func parseIPv4(s string) ([4]byte, bool) {
	var out [4]byte
	if s == "" {
		return out, false
	}
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return out, false
	}
	for i, p := range parts {
		if len(p) == 0 || len(p) > 3 {
			return out, false
		}
		if len(p) > 1 && p[0] == '0' {
			return out, false
		}
		val := 0
		for j := 0; j < len(p); j++ {
			ch := p[j]
			if ch < '0' || ch > '9' {
				return out, false
			}
			val = val*10 + int(ch-'0')
		}
		if val > 255 {
			return out, false
		}
		out[i] = byte(val)
	}
	return out, true
}

func ipv4To16(v4 [4]byte) [16]byte {
	var out [16]byte
	copy(out[:4], v4[:])
	return out
}
