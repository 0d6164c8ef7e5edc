/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlphaDigit(t *testing.T) {
	for c := 0; c < 256; c++ {
		b := byte(c)
		wantAlpha := (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
		assert.Equalf(t, wantAlpha, Alpha.Contains(b), "byte %q", b)

		wantDigit := b >= '0' && b <= '9'
		assert.Equalf(t, wantDigit, Digit.Contains(b), "byte %q", b)
	}
}

func TestUnreservedOrSubDelims(t *testing.T) {
	cases := map[byte]bool{
		'a': true, 'Z': true, '9': true,
		'-': true, '.': true, '_': true, '~': true,
		'!': true, '$': true, '&': true, '\'': true, '(': true, ')': true,
		'*': true, '+': true, ',': true, ';': true, '=': true,
		':': false, '@': false, '/': false, '?': false, '#': false, '%': false,
	}
	for b, want := range cases {
		assert.Equalf(t, want, UnreservedOrSubDelims.Contains(b), "byte %q", b)
	}
}

func TestUnionIntersectComplement(t *testing.T) {
	digits := Digit
	letters := Alpha
	alnum := Union(digits, letters)
	assert.True(t, alnum.Contains('a'))
	assert.True(t, alnum.Contains('9'))
	assert.False(t, alnum.Contains('-'))

	neither := Intersect(digits, letters)
	assert.False(t, neither.Contains('a'))
	assert.False(t, neither.Contains('9'))

	notDigit := Complement(digits)
	assert.True(t, notDigit.Contains('a'))
	assert.False(t, notDigit.Contains('5'))
}
