/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package url

import (
	"testing"

	"github.com/samd2/url/rfc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBasicHTTP(t *testing.T) {
	u, err := Parse("http://www.example.com/index.htm")
	require.NoError(t, err)
	assert.Equal(t, "http", u.Scheme())
	assert.Equal(t, "www.example.com", u.Host())
	assert.Equal(t, "/index.htm", u.Path())
	assert.False(t, u.HasQuery())
	assert.Equal(t, []string{"index.htm"}, u.EncodedSegments())
}

func TestParseFullScenario(t *testing.T) {
	u, err := Parse("https://jane%2Ddoe:pass@[::1]:8080/a/b?x=1&y=&z#top")
	require.NoError(t, err)
	assert.Equal(t, "jane%2Ddoe", u.EncodedUser())
	assert.Equal(t, "jane-doe", u.User())
	assert.True(t, u.HasPassword())
	assert.Equal(t, "pass", u.Password())
	assert.Equal(t, uint16(8080), u.PortNumber())
	assert.Equal(t, []string{"a", "b"}, u.EncodedSegments())
	assert.True(t, u.HasFragment())
	assert.Equal(t, "top", u.Fragment())

	var got []Param
	it := u.Params()
	for {
		p, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, p)
	}
	require.Len(t, got, 3)
	assert.Equal(t, "x", got[0].Key)
	assert.Equal(t, "1", got[0].Value)
	assert.True(t, got[0].HasValue)
	assert.Equal(t, "y", got[1].Key)
	assert.True(t, got[1].HasValue)
	assert.Equal(t, "", got[1].Value)
	assert.Equal(t, "z", got[2].Key)
	assert.False(t, got[2].HasValue)
}

func TestParseFileURIEmptyHost(t *testing.T) {
	u, err := Parse("file:///Program%20Files/x")
	require.NoError(t, err)
	assert.True(t, u.HasAuthority())
	assert.Equal(t, "", u.Host())
	assert.Equal(t, "/Program Files/x", u.Path())
}

func TestParseRelativePathOnly(t *testing.T) {
	u, err := Parse("/only/a/path?k=v#f")
	require.NoError(t, err)
	assert.False(t, u.HasScheme())
	assert.False(t, u.HasAuthority())
	assert.True(t, u.IsPathAbsolute())
	assert.Equal(t, "f", u.Fragment())

	p, _, found := u.FindFrom(0, "k", false)
	require.True(t, found)
	assert.Equal(t, "v", p.DecodedValue)
}

func TestRoundTripProperty(t *testing.T) {
	inputs := []string{
		"http://www.example.com/index.htm",
		"https://jane%2Ddoe:pass@[::1]:8080/a/b?x=1&y=&z#top",
		"file:///Program%20Files/x",
		"mailto:a@b",
		"/only/a/path?k=v#f",
		"http://[vA.x:y]/",
		"http://h:99999/",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			u, err := Parse(in)
			require.NoError(t, err)
			assert.Equal(t, len(in), u.Size())
			assert.Equal(t, in, u.Data())
		})
	}
}

// TestRoundTripFromDeclaredParts reconstructs the input by concatenating
// the nine declared index-table parts in order (the raw PartLen spans,
// not the ergonomic accessors that strip delimiters for callers) -- the
// literal check spec.md section 8's round-trip law demands, and the
// exact case a prior "//" marker bookkeeping bug broke for every
// authority-bearing URL.
func TestRoundTripFromDeclaredParts(t *testing.T) {
	inputs := []string{
		"http://www.example.com/index.htm",
		"https://jane%2Ddoe:pass@[::1]:8080/a/b?x=1&y=&z#top",
		"file:///Program%20Files/x",
		"mailto:a@b",
		"/only/a/path?k=v#f",
		"http://[vA.x:y]/",
		"http://h:99999/",
	}
	parts := []rfc.Part{
		rfc.PartScheme, rfc.PartUser, rfc.PartPass, rfc.PartHost,
		rfc.PartPort, rfc.PartPath, rfc.PartQuery, rfc.PartFragment,
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			u, err := Parse(in)
			require.NoError(t, err)

			var rebuilt string
			for _, p := range parts {
				rebuilt += u.slice(p)
			}
			assert.Equal(t, in, rebuilt)
		})
	}
}

func TestNegativeScenarios(t *testing.T) {
	cases := []struct {
		name  string
		input string
		kind  ErrorKind
	}{
		{"scheme interrupted by @", "ht@tp://x", InvalidScheme},
		{"unterminated ip literal", "http://[::1/", InvalidIPLiteral},
		{"bad percent triplet", "http://h:/p%ZZ", InvalidPercent},
		{"trailing stray byte", "http://h/p\x00", TrailingBytes},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseURI(tt.input)
			require.Error(t, err)
			pe, ok := err.(*ParseError)
			require.True(t, ok)
			assert.Equal(t, tt.kind, pe.Kind)
		})
	}
}

func TestParseAuthorityScope(t *testing.T) {
	u, err := ParseAuthority("user:pass@example.com:443")
	require.NoError(t, err)
	assert.True(t, u.IsAuthorityScope())
	assert.Equal(t, "user", u.User())
	assert.Equal(t, uint16(443), u.PortNumber())
}

func TestIdempotence(t *testing.T) {
	u1, err := Parse("http://www.example.com/a/b?x=1#f")
	require.NoError(t, err)
	u2, err := Parse(u1.String())
	require.NoError(t, err)
	assert.True(t, Equal(u1, u2))
}
