/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package rfc

import "github.com/samd2/url/grammar"

// PortResult is the raw port text plus its saturating numeric value.
type PortResult struct {
	Text   string
	Number uint16
}

// Port recognises "port = *DIGIT". A value exceeding 65535 saturates
// Number to zero while Text still carries the literal digits, per
// spec.md section 4.2 ("port() returns the literal but port_number()
// returns zero").
func Port(c *grammar.Cursor) PortResult {
	s, _ := grammar.Run(grammar.Digit)(c)
	return PortResult{Text: s, Number: parsePortNumber(s)}
}

func parsePortNumber(s string) uint16 {
	if s == "" {
		return 0
	}
	var v uint64
	for i := 0; i < len(s); i++ {
		v = v*10 + uint64(s[i]-'0')
		if v > 65535 {
			return 0
		}
	}
	return uint16(v)
}
