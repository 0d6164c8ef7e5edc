/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package rfc

import (
	"strconv"
	"strings"

	"github.com/samd2/url/grammar"
)

// parseIPv6 implements the full IPv6address grammar including "::"
// elision and an embedded IPv4 tail, materialising 16 octets per
// spec.md section 4.2.
func parseIPv6(body string) ([16]byte, bool) {
	var out [16]byte
	if body == "" {
		return out, false
	}

	hasDouble := strings.Contains(body, "::")
	var leftStr, rightStr string
	if hasDouble {
		idx := strings.Index(body, "::")
		leftStr = body[:idx]
		rest := body[idx+2:]
		if strings.Contains(rest, "::") {
			return out, false // at most one elision allowed
		}
		rightStr = rest
	} else {
		leftStr = body
	}
	if hasDouble && strings.Contains(leftStr, ".") {
		return out, false // an IPv4 tail may only end the address
	}

	left, ok := splitIPv6Groups(leftStr)
	if !ok {
		return out, false
	}
	var right [][2]byte
	if hasDouble {
		right, ok = splitIPv6Groups(rightStr)
		if !ok {
			return out, false
		}
	}

	total := len(left) + len(right)
	if hasDouble {
		if total >= 8 {
			return out, false // "::" must elide at least one group
		}
	} else if total != 8 {
		return out, false
	}

	idx := 0
	for _, g := range left {
		out[idx], out[idx+1] = g[0], g[1]
		idx += 2
	}
	if hasDouble {
		idx += (8 - total) * 2
	}
	for _, g := range right {
		out[idx], out[idx+1] = g[0], g[1]
		idx += 2
	}
	return out, true
}

// splitIPv6Groups parses a colon-separated run of 16-bit hex groups.
// The final group may instead be a dotted-quad IPv4 tail, which
// contributes two groups worth of bytes (the "IPv4-mapped tail" form
// of IPv6address).
func splitIPv6Groups(s string) ([][2]byte, bool) {
	if s == "" {
		return nil, true
	}
	parts := strings.Split(s, ":")
	out := make([][2]byte, 0, len(parts)+1)
	for i, p := range parts {
		if p == "" {
			return nil, false
		}
		if strings.Contains(p, ".") {
			if i != len(parts)-1 {
				return nil, false
			}
			v4, ok := parseIPv4(p)
			if !ok {
				return nil, false
			}
			out = append(out, [2]byte{v4[0], v4[1]}, [2]byte{v4[2], v4[3]})
			continue
		}
		if len(p) > 4 {
			return nil, false
		}
		for j := 0; j < len(p); j++ {
			if !grammar.HexDig.Contains(p[j]) {
				return nil, false
			}
		}
		v, err := strconv.ParseUint(p, 16, 16)
		if err != nil {
			return nil, false
		}
		out = append(out, [2]byte{byte(v >> 8), byte(v)})
	}
	return out, true
}

// parseIPvFuture validates "v" 1*HEXDIG "." 1*( unreserved / sub-delims / ":" ).
func parseIPvFuture(body string) bool {
	if len(body) < 4 {
		return false
	}
	if body[0] != 'v' && body[0] != 'V' {
		return false
	}
	i := 1
	hexStart := i
	for i < len(body) && grammar.HexDig.Contains(body[i]) {
		i++
	}
	if i == hexStart {
		return false
	}
	if i >= len(body) || body[i] != '.' {
		return false
	}
	i++
	tailStart := i
	for i < len(body) {
		ch := body[i]
		if grammar.Unreserved.Contains(ch) || grammar.SubDelims.Contains(ch) || ch == ':' {
			i++
			continue
		}
		return false
	}
	return i > tailStart
}
