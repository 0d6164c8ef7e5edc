/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package url

import (
	"fmt"

	"github.com/samd2/url/rfc"
)

// ErrorKind mirrors rfc.ErrorKind at the package boundary, so callers
// of this package never need to import rfc directly -- the index
// table's layout, and the rule layer that populates it, are an
// internal contract (spec.md section 6), not a stable interface.
type ErrorKind = rfc.ErrorKind

const (
	InvalidScheme     = rfc.KindInvalidScheme
	InvalidAuthority  = rfc.KindInvalidAuthority
	InvalidIPLiteral  = rfc.KindInvalidIPLiteral
	InvalidIPv4       = rfc.KindInvalidIPv4
	InvalidIPv6       = rfc.KindInvalidIPv6
	InvalidIPvFuture  = rfc.KindInvalidIPvFuture
	InvalidPath       = rfc.KindInvalidPath
	InvalidQuery      = rfc.KindInvalidQuery
	InvalidFragment   = rfc.KindInvalidFragment
	InvalidPercent    = rfc.KindInvalidPercent
	TrailingBytes     = rfc.KindTrailingBytes
	BadUTF8           = rfc.KindBadUTF8
)

// ParseError is what every Parse* function in this package returns on
// failure: a Kind plus the byte offset of the first mismatch, in the
// spirit of the teacher's own url.Error (Op/URL/Err) but carrying a
// location instead of a wrapped cause, matching rfc.Error's shape one
// level up.
type ParseError struct {
	Op     string
	Input  string
	Kind   ErrorKind
	Offset int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s %q: %s at offset %d", e.Op, e.Input, e.Kind, e.Offset)
}

func newParseError(op, input string, cause *rfc.Error) *ParseError {
	return &ParseError{Op: op, Input: input, Kind: cause.Kind, Offset: cause.Offset}
}
