// Copyright (c) 2026, The Plugkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexRoundTrip(t *testing.T) {
	for _, hex := range []string{"#102030", "#A0B0C0D0"} {
		clr, err := FromHex(hex)
		require.NoError(t, err)
		assert.Equal(t, hex, ToHex(clr))
	}

	clr, err := FromHex("ff0000")
	require.NoError(t, err, "the leading # is optional")
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, clr)

	_, err = FromHex("#zzzzzz")
	assert.Error(t, err)
	_, err = FromHex("#ff00")
	assert.Error(t, err)
}

func TestThemeFileRoundTrip(t *testing.T) {
	v := NewVector(DefaultSpec())
	v.SetGeometry(true, false, true, 0.25, 3, 5)
	spec := DefaultSpec()
	spec.Foreground = color.RGBA{10, 20, 30, 255}
	spec.Extra3 = color.RGBA{1, 2, 3, 128}

	path := filepath.Join(t.TempDir(), "theme.toml")
	require.NoError(t, SaveTheme(path, NewTheme(spec, v)))

	loaded, err := OpenTheme(path)
	require.NoError(t, err)

	got, err := loaded.Spec()
	require.NoError(t, err)
	assert.Equal(t, spec, got)

	v2 := NewVector(DefaultSpec())
	require.NoError(t, loaded.Apply(v2))
	assert.Equal(t, spec.Foreground, v2.Color(Foreground))
	assert.True(t, v2.Emboss())
	assert.False(t, v2.DrawsShadows())
	assert.Equal(t, float32(0.25), v2.Roundness())
	assert.Equal(t, float32(3), v2.FrameThickness())
	assert.Equal(t, float32(5), v2.ShadowOffset())
}

func TestThemeEmptyRolesFallBack(t *testing.T) {
	th := &Theme{Foreground: "#00ff00"}
	spec, err := th.Spec()
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0, 255, 0, 255}, spec.Foreground)
	assert.Equal(t, DefaultSpec().Background, spec.Background)
}

func TestThemeBadHexRejected(t *testing.T) {
	th := &Theme{Frame: "not-a-color"}
	_, err := th.Spec()
	assert.Error(t, err)
}

func TestDefaultSpecIsFresh(t *testing.T) {
	a := DefaultSpec()
	a.Frame = color.RGBA{9, 9, 9, 255}
	assert.NotEqual(t, a.Frame, DefaultSpec().Frame)
}
