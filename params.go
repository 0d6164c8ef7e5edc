/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package url

import "strings"

// paramWalker is the traversal engine behind Params and the lookup
// methods; EncodedParams splits the query text on '&' directly.
type paramWalker struct {
	query string
	pos   int
	done  bool
}

func newParamWalker(encodedQuery string) *paramWalker {
	return &paramWalker{query: encodedQuery, done: encodedQuery == ""}
}

func (w *paramWalker) next() (key, value string, hasValue, ok bool) {
	if w.done {
		return "", "", false, false
	}
	i := w.pos
	for i < len(w.query) && w.query[i] != '&' {
		i++
	}
	field := w.query[w.pos:i]
	if i >= len(w.query) {
		w.done = true
	} else {
		w.pos = i + 1
	}

	if eq := strings.IndexByte(field, '='); eq >= 0 {
		return field[:eq], field[eq+1:], true, true
	}
	return field, "", false, true
}

// Param is one query parameter, carrying both its encoded and
// decoded projections. HasValue distinguishes a bare "k" from "k=".
type Param struct {
	Key            string
	Value          string
	HasValue       bool
	DecodedKey     string
	DecodedValue   string
}

// ParamIter is a forward cursor over the query's parameters.
type ParamIter struct {
	w    *paramWalker
	opts DecodeOpts
}

// Params returns a fresh iterator over u's query parameters, decoding
// with the given options (defaulting to '+' as space).
func (u *URL) Params(opts ...DecodeOption) *ParamIter {
	return &ParamIter{w: newParamWalker(u.EncodedQuery()), opts: buildOpts(opts)}
}

// Next advances the iterator, returning false once exhausted.
func (it *ParamIter) Next() (Param, bool) {
	k, v, hasValue, ok := it.w.next()
	if !ok {
		return Param{}, false
	}
	p := Param{Key: k, Value: v, HasValue: hasValue, DecodedKey: decodeParam(k, it.opts)}
	if hasValue {
		p.DecodedValue = decodeParam(v, it.opts)
	}
	return p, true
}

// EncodedParams returns every "k[=v]" field of the query, in order,
// without decoding. Its length always equals ParamCount (spec.md
// section 8, parameter count law).
func (u *URL) EncodedParams() []string {
	q := u.EncodedQuery()
	if q == "" {
		return nil
	}
	return strings.Split(q, "&")
}

// Contains reports whether key appears among the query parameters,
// comparing percent-decoded (and, if ignoreCase, case-folded) keys.
func (u *URL) Contains(key string, ignoreCase bool, opts ...DecodeOption) bool {
	_, _, found := u.FindFrom(0, key, ignoreCase, opts...)
	return found
}

// Count reports how many parameters match key.
func (u *URL) Count(key string, ignoreCase bool, opts ...DecodeOption) int {
	n := 0
	it := u.Params(opts...)
	for {
		p, ok := it.Next()
		if !ok {
			break
		}
		if keyMatches(p.DecodedKey, key, ignoreCase) {
			n++
		}
	}
	return n
}

// FindFrom returns the first parameter at or after the from'th
// parameter (0-indexed) whose decoded key matches key, along with the
// index one past the match so a caller can resume scanning from there
// without rescanning matches already seen -- the position Boost.URL's
// params_encoded_base.hpp exposes via its EqualRange-style iteration
// but spec.md's prose only implies (section 4.5, "find(from, key)").
func (u *URL) FindFrom(from int, key string, ignoreCase bool, opts ...DecodeOption) (Param, int, bool) {
	it := u.Params(opts...)
	idx := 0
	for {
		p, ok := it.Next()
		if !ok {
			return Param{}, idx, false
		}
		if idx >= from && keyMatches(p.DecodedKey, key, ignoreCase) {
			return p, idx + 1, true
		}
		idx++
	}
}

// FindLast returns the last parameter whose decoded key matches key.
func (u *URL) FindLast(key string, ignoreCase bool, opts ...DecodeOption) (Param, bool) {
	var last Param
	found := false
	it := u.Params(opts...)
	for {
		p, ok := it.Next()
		if !ok {
			break
		}
		if keyMatches(p.DecodedKey, key, ignoreCase) {
			last = p
			found = true
		}
	}
	return last, found
}

func keyMatches(decodedKey, key string, ignoreCase bool) bool {
	if ignoreCase {
		return strings.EqualFold(decodedKey, key)
	}
	return decodedKey == key
}
