/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package grammar

// Range repeats element separated by a single separator byte, between
// min and max times inclusive (max <= 0 means unbounded). It reports
// the matched elements; their count is len of the result.
//
// Grounded on Boost.URL's range_rule(sequence_rule(char_rule(sep), element))
// composition (see rfc/path_rules.hpp in the retrieved original source).
// The path and query rules in package rfc do not use Range: they take
// a single PctEncodedAt pass and count segments and parameters from
// the accepted text (see rfc/path.go and rfc/query.go).
func Range[T any](element Rule[T], sep byte, min, max int) Rule[[]T] {
	return func(c *Cursor) ([]T, bool) {
		mark := c.Mark()
		var out []T

		v, ok := element(c)
		if ok {
			out = append(out, v)
		} else if min > 0 {
			c.Reset(mark)
			return nil, false
		}

		if ok {
			for max <= 0 || len(out) < max {
				m2 := c.Mark()
				if b, ok2 := Literal(sep)(c); !ok2 || b != sep {
					c.Reset(m2)
					break
				}
				v, ok2 := element(c)
				if !ok2 {
					c.Reset(m2)
					break
				}
				out = append(out, v)
			}
		}

		if len(out) < min {
			c.Reset(mark)
			return nil, false
		}
		return out, true
	}
}
