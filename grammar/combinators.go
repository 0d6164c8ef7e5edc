/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package grammar

// Rule is the parse-operation contract every combinator in this file
// and every composite rule in the rfc package conforms to: given a
// cursor, either advance it past the consumed bytes and return a
// value with ok == true, or leave the cursor untouched and return
// ok == false. Rule is a plain function type rather than an interface
// because every combinator's shape is fixed at composition time; see
// the DESIGN NOTES on avoiding open-ended virtual dispatch.
type Rule[T any] func(c *Cursor) (T, bool)

// Option models the result of Optional: either a present value or
// absence, without resorting to a pointer or a zero-value sentinel
// that could collide with a legitimate zero result.
type Option[T any] struct {
	Value T
	Set   bool
}

// Literal succeeds iff the next byte equals b.
func Literal(b byte) Rule[byte] {
	return func(c *Cursor) (byte, bool) {
		v, ok := c.Peek()
		if !ok || v != b {
			return 0, false
		}
		c.Advance(1)
		return v, true
	}
}

// OneOf succeeds on exactly one byte that is a member of cs.
func OneOf(cs CharSet) Rule[byte] {
	return func(c *Cursor) (byte, bool) {
		v, ok := c.Peek()
		if !ok || !cs.Contains(v) {
			return 0, false
		}
		c.Advance(1)
		return v, true
	}
}

// Run consumes the maximal prefix of bytes matching cs. It never
// fails; a zero-length match is a valid result.
func Run(cs CharSet) Rule[string] {
	return func(c *Cursor) (string, bool) {
		start := c.Mark()
		for {
			v, ok := c.Peek()
			if !ok || !cs.Contains(v) {
				break
			}
			c.Advance(1)
		}
		return c.s[start:c.pos], true
	}
}

// NonEmpty wraps r so that a zero-length success is turned into a
// failure. Only meaningful for rules whose successful value has a
// natural notion of length (string).
func NonEmpty(r Rule[string]) Rule[string] {
	return func(c *Cursor) (string, bool) {
		mark := c.Mark()
		v, ok := r(c)
		if !ok || len(v) == 0 {
			c.Reset(mark)
			return "", false
		}
		return v, true
	}
}

// Optional attempts r; on failure it reports success with an absent
// Option, restoring the cursor to where r started.
func Optional[T any](r Rule[T]) Rule[Option[T]] {
	return func(c *Cursor) (Option[T], bool) {
		mark := c.Mark()
		v, ok := r(c)
		if !ok {
			c.Reset(mark)
			return Option[T]{}, true
		}
		return Option[T]{Value: v, Set: true}, true
	}
}

// Alt tries each rule in order and succeeds with the first match,
// restoring the cursor between attempts so that backtracking is total:
// an alternative only ever retries from its own starting position.
func Alt[T any](rs ...Rule[T]) Rule[T] {
	return func(c *Cursor) (T, bool) {
		mark := c.Mark()
		for _, r := range rs {
			c.Reset(mark)
			if v, ok := r(c); ok {
				return v, true
			}
		}
		c.Reset(mark)
		var zero T
		return zero, false
	}
}

// Seq2 succeeds iff both rules succeed in order, restoring the cursor
// if either fails.
func Seq2[A, B any](ra Rule[A], rb Rule[B]) Rule[struct {
	A A
	B B
}] {
	return func(c *Cursor) (struct {
		A A
		B B
	}, bool) {
		type pair = struct {
			A A
			B B
		}
		mark := c.Mark()
		a, ok := ra(c)
		if !ok {
			c.Reset(mark)
			return pair{}, false
		}
		b, ok := rb(c)
		if !ok {
			c.Reset(mark)
			return pair{}, false
		}
		return pair{A: a, B: b}, true
	}
}

// Seq3 is Seq2 generalised to three rules.
func Seq3[A, B, D any](ra Rule[A], rb Rule[B], rd Rule[D]) Rule[struct {
	A A
	B B
	D D
}] {
	return func(c *Cursor) (struct {
		A A
		B B
		D D
	}, bool) {
		type triple = struct {
			A A
			B B
			D D
		}
		mark := c.Mark()
		a, ok := ra(c)
		if !ok {
			c.Reset(mark)
			return triple{}, false
		}
		b, ok := rb(c)
		if !ok {
			c.Reset(mark)
			return triple{}, false
		}
		d, ok := rd(c)
		if !ok {
			c.Reset(mark)
			return triple{}, false
		}
		return triple{A: a, B: b, D: d}, true
	}
}

// Lookahead succeeds iff r would succeed, without consuming any input.
func Lookahead[T any](r Rule[T]) Rule[T] {
	return func(c *Cursor) (T, bool) {
		mark := c.Mark()
		v, ok := r(c)
		c.Reset(mark)
		return v, ok
	}
}
