/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package url

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentsBoundaryRules(t *testing.T) {
	cases := []struct {
		name string
		path string
		want []string
	}{
		{"empty path", "", nil},
		{"root only", "/", nil},
		{"single segment", "/a", []string{"a"}},
		{"multi segment", "/a/b/c", []string{"a", "b", "c"}},
		{"no leading slash", "a/b", []string{"a", "b"}},
		{"trailing slash with len>1", "/a/b/", []string{"a", "b", ""}},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			w := newSegmentWalker(tt.path)
			var got []string
			for {
				s, ok := w.next()
				if !ok {
					break
				}
				got = append(got, s)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSegmentsAgreeWithSegmentCount(t *testing.T) {
	cases := []string{
		"http://h/",
		"http://h",
		"http://h/a",
		"http://h/a/b/",
		"http://h/a/b/c",
	}
	for _, in := range cases {
		t.Run(in, func(t *testing.T) {
			u, err := Parse(in)
			require.NoError(t, err)
			assert.Equal(t, u.SegmentCount(), len(u.EncodedSegments()))

			var viaIter []string
			it := u.Segments()
			for {
				s, ok := it.Next()
				if !ok {
					break
				}
				viaIter = append(viaIter, s.Encoded)
			}
			assert.Equal(t, u.EncodedSegments(), viaIter)
		})
	}
}

func TestSegmentsDecodedProjection(t *testing.T) {
	u, err := Parse("http://h/a%20b/c")
	require.NoError(t, err)
	it := u.Segments()

	s, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, "a%20b", s.Encoded)
	assert.Equal(t, "a b", s.Decoded)

	s, ok = it.Next()
	require.True(t, ok)
	assert.Equal(t, "c", s.Encoded)
	assert.Equal(t, "c", s.Decoded)

	_, ok = it.Next()
	assert.False(t, ok)
}
