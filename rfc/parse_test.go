/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package rfc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseURIBasic(t *testing.T) {
	ix, err := ParseURI("http://www.example.com/index.htm")
	require.Nil(t, err)
	assert.Equal(t, SchemeHTTP, ix.SchemeID)
	assert.Equal(t, HostName, ix.HostKind)
	assert.True(t, ix.HasAuthority)
	assert.Equal(t, 1, ix.SegmentCount)
	assert.False(t, ix.PartLen[PartQuery] > 0)
}

func TestParseURIFullScenario(t *testing.T) {
	raw := "https://jane%2Ddoe:pass@[::1]:8080/a/b?x=1&y=&z#top"
	ix, err := ParseURI(raw)
	require.Nil(t, err)
	assert.True(t, ix.HasUserinfo)
	assert.True(t, ix.PartLen[PartPass] >= 2)
	assert.Equal(t, HostIPv6, ix.HostKind)
	assert.Equal(t, byte(1), ix.IPBytes[15])
	assert.Equal(t, uint16(8080), ix.PortNumber)
	assert.Equal(t, 2, ix.SegmentCount)
	assert.Equal(t, 3, ix.ParamCount)
	assert.True(t, ix.PartLen[PartFragment] > 0)

	// round-trip: End() accounts for every byte of raw, marker included.
	assert.Equal(t, len(raw), ix.End())
}

func TestParseFileURIEmptyHost(t *testing.T) {
	ix, err := ParseURI("file:///Program%20Files/x")
	require.Nil(t, err)
	assert.Equal(t, SchemeFile, ix.SchemeID)
	assert.True(t, ix.HasAuthority)
	assert.Equal(t, 0, int(ix.PartLen[PartHost]))
}

func TestParseMailto(t *testing.T) {
	ix, err := ParseURI("mailto:a@b")
	require.Nil(t, err)
	assert.Equal(t, SchemeMailto, ix.SchemeID)
	assert.False(t, ix.HasAuthority)
}

func TestParseRelativeRefAbsolutePath(t *testing.T) {
	ix, err := ParseRelativeRef("/only/a/path?k=v#f")
	require.Nil(t, err)
	assert.False(t, ix.HasAuthority)
	assert.True(t, ix.PathAbsolute)
	assert.Equal(t, 1, ix.ParamCount)
	assert.Equal(t, uint32(0), ix.PartLen[PartScheme])
}

func TestParseHostIPvFutureURI(t *testing.T) {
	ix, err := ParseURI("http://[vA.x:y]/")
	require.Nil(t, err)
	assert.Equal(t, HostIPvFuture, ix.HostKind)
}

func TestParsePortSaturatedURI(t *testing.T) {
	ix, err := ParseURI("http://h:99999/")
	require.Nil(t, err)
	assert.Equal(t, uint16(0), ix.PortNumber)
	assert.True(t, ix.PartLen[PartPort] > 0)
}

func TestParseNegativeScenarios(t *testing.T) {
	cases := []struct {
		name  string
		input string
		kind  ErrorKind
	}{
		{"scheme interrupted by @", "ht@tp://x", KindInvalidScheme},
		{"unterminated ip literal", "http://[::1/", KindInvalidIPLiteral},
		{"bad percent triplet", "http://h:/p%ZZ", KindInvalidPercent},
		{"trailing stray byte", "http://h/p\x00", KindTrailingBytes},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseURI(tt.input)
			require.NotNil(t, err)
			assert.Equal(t, tt.kind, err.Kind)
		})
	}
}

func TestParseAuthorityStandalone(t *testing.T) {
	raw := "user:pass@example.com:443"
	ix, err := ParseAuthority(raw)
	require.Nil(t, err)
	assert.True(t, ix.HasUserinfo)
	assert.Equal(t, uint16(443), ix.PortNumber)
	// a standalone authority buffer never held a "//" marker, so
	// PartUser's length is userinfo text alone -- round-trip still
	// holds with no marker folded in.
	assert.Equal(t, len(raw), ix.End())
}

func TestBacktrackingOnAmbiguousPrefix(t *testing.T) {
	// "h" alone is a valid path-noscheme segment, not a scheme without ':'.
	ix, err := ParseRelativeRef("h")
	require.Nil(t, err)
	assert.Equal(t, uint32(0), ix.PartLen[PartScheme])
	assert.Equal(t, 1, ix.SegmentCount)
}
