/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package grammar

// EncodedRun is the result of PctEncoded: the accepted encoded text
// (members of the charset plus any %HH triplets) and the byte count
// it would occupy once percent-decoded. DecodedLen is computed while
// scanning, never by materialising the decoded bytes, so a caller can
// answer "how long would this be decoded" in the same pass that
// validates it.
type EncodedRun struct {
	Raw        string
	DecodedLen int
}

// PctEncoded builds a rule that consumes a maximal run of bytes each
// of which is either a member of cs or a %HH triplet of two hex
// digits. It never fails on an empty run. It fails only when a '%' is
// not followed by two hex digits, leaving the cursor where it started;
// the offset of the offending '%' is not reported here, PctEncodedAt
// reports it.
func PctEncoded(cs CharSet) Rule[EncodedRun] {
	pe := PctEncodedAt(cs)
	return func(c *Cursor) (EncodedRun, bool) {
		run, _, ok := pe(c)
		return run, ok
	}
}

// PctEncodedAt is PctEncoded's richer form: on failure it also reports
// the byte offset of the offending '%', so that package rfc can
// surface a precise invalid_percent error location per spec.
func PctEncodedAt(cs CharSet) func(c *Cursor) (EncodedRun, int, bool) {
	return func(c *Cursor) (EncodedRun, int, bool) {
		start := c.Mark()
		decoded := 0
		for {
			v, ok := c.Peek()
			if !ok {
				break
			}
			if v == '%' {
				badAt := c.pos
				if c.pos+3 > len(c.s) || !HexDig.Contains(c.s[c.pos+1]) || !HexDig.Contains(c.s[c.pos+2]) {
					c.Reset(start)
					return EncodedRun{}, badAt, false
				}
				c.Advance(3)
				decoded++
				continue
			}
			if !cs.Contains(v) {
				break
			}
			c.Advance(1)
			decoded++
		}
		return EncodedRun{Raw: c.s[start:c.pos], DecodedLen: decoded}, -1, true
	}
}

// hexVal decodes a single ASCII hex digit, returning -1 for any byte
// that is not a member of HexDig.
func hexVal(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return -1
}

// DecodeByte decodes a %HH triplet (s must be exactly 3 bytes starting
// with '%') into its octet value.
func DecodeByte(s string) (byte, bool) {
	if len(s) != 3 || s[0] != '%' {
		return 0, false
	}
	hi, lo := hexVal(s[1]), hexVal(s[2])
	if hi < 0 || lo < 0 {
		return 0, false
	}
	return byte(hi<<4 | lo), true
}
