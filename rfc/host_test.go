/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package rfc

import (
	"testing"

	"github.com/samd2/url/grammar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHostRegName(t *testing.T) {
	c := grammar.NewCursor("www.example.com")
	res, err := Host(c)
	require.Nil(t, err)
	assert.Equal(t, HostName, res.Kind)
	assert.Equal(t, "www.example.com", res.Raw)
	assert.True(t, c.Done())
}

func TestHostIPv4(t *testing.T) {
	c := grammar.NewCursor("192.168.0.1")
	res, err := Host(c)
	require.Nil(t, err)
	assert.Equal(t, HostIPv4, res.Kind)
	assert.Equal(t, [16]byte{192, 168, 0, 1}, res.IPBytes)
}

func TestHostIPv4RejectsLeadingZero(t *testing.T) {
	c := grammar.NewCursor("192.168.00.1")
	res, err := Host(c)
	require.Nil(t, err)
	assert.Equal(t, HostName, res.Kind) // falls back to reg-name, not a parse error
}

func TestHostIPv6Literal(t *testing.T) {
	c := grammar.NewCursor("[::1]")
	res, err := Host(c)
	require.Nil(t, err)
	assert.Equal(t, HostIPv6, res.Kind)
	assert.Equal(t, byte(0), res.IPBytes[14])
	assert.Equal(t, byte(1), res.IPBytes[15])
}

func TestHostIPv6EmbeddedIPv4(t *testing.T) {
	c := grammar.NewCursor("[::ffff:192.0.2.1]")
	res, err := Host(c)
	require.Nil(t, err)
	assert.Equal(t, HostIPv6, res.Kind)
	assert.Equal(t, byte(192), res.IPBytes[12])
	assert.Equal(t, byte(1), res.IPBytes[15])
}

func TestHostIPLiteralUnterminated(t *testing.T) {
	c := grammar.NewCursor("[::1")
	_, err := Host(c)
	require.NotNil(t, err)
	assert.Equal(t, KindInvalidIPLiteral, err.Kind)
}

func TestHostIPvFuture(t *testing.T) {
	c := grammar.NewCursor("[vA.x:y]")
	res, err := Host(c)
	require.Nil(t, err)
	assert.Equal(t, HostIPvFuture, res.Kind)
	assert.Equal(t, "[vA.x:y]", res.Raw)
}

func TestPortSaturates(t *testing.T) {
	c := grammar.NewCursor("99999")
	p := Port(c)
	assert.Equal(t, "99999", p.Text)
	assert.Equal(t, uint16(0), p.Number)
}

func TestPortOrdinary(t *testing.T) {
	c := grammar.NewCursor("8080")
	p := Port(c)
	assert.Equal(t, uint16(8080), p.Number)
}
