// Copyright (c) 2026, The Plugkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"image/color"
	"testing"

	"github.com/plugkit/plugkit/geom"
	"github.com/plugkit/plugkit/paint"
	"github.com/stretchr/testify/assert"
)

func TestRoleRoundTrip(t *testing.T) {
	v := NewVector(DefaultSpec())
	red := color.RGBA{255, 0, 0, 255}
	for role := Roles(0); role < RolesN; role++ {
		v.SetColor(role, red)
		assert.Equal(t, red, v.Color(role), role.String())
	}
}

func TestRoleOutOfRangePanics(t *testing.T) {
	v := NewVector(DefaultSpec())
	assert.Panics(t, func() { v.Color(RolesN) })
	assert.Panics(t, func() { v.SetColor(-1, color.RGBA{}) })
}

func TestSetColorsDoesNotTouchGeometry(t *testing.T) {
	v := NewVector(DefaultSpec())
	v.SetGeometry(false, false, true, 0.7, 5, 9)

	spec := DefaultSpec()
	spec.Foreground = color.RGBA{1, 2, 3, 255}
	v.SetColors(spec)

	assert.Equal(t, spec.Foreground, v.Color(Foreground))
	assert.False(t, v.DrawsFrame())
	assert.False(t, v.DrawsShadows())
	assert.True(t, v.Emboss())
	assert.Equal(t, float32(0.7), v.Roundness())
	assert.Equal(t, float32(5), v.FrameThickness())
	assert.Equal(t, float32(9), v.ShadowOffset())
}

func TestSettersMarkOwnerDirty(t *testing.T) {
	v := NewVector(DefaultSpec())
	dirty := 0
	v.Attach(func() { dirty++ })

	v.SetColor(Frame, color.RGBA{})
	v.SetColors(DefaultSpec())
	v.SetRoundness(0.5)
	v.SetFrameThickness(3)
	assert.Equal(t, 4, dirty)

	// The splash radius is driven per animation frame and must not
	// re-mark the control each time.
	v.SetSplashRadius(0.5)
	assert.Equal(t, 4, dirty)
}

func TestRoundnessClamps(t *testing.T) {
	v := NewVector(DefaultSpec())
	v.SetRoundness(3)
	assert.Equal(t, float32(1), v.Roundness())
	v.SetRoundness(-1)
	assert.Equal(t, float32(0), v.Roundness())
}

func TestAdjustedHandleBounds(t *testing.T) {
	v := NewVector(DefaultSpec())
	v.SetGeometry(true, true, false, 0, 2, 3)
	b := geom.NewRect(0, 0, 100, 50)

	// Framed: inset by half the frame. Drop shadow: trailing edges
	// pull in by the offset.
	assert.Equal(t, geom.NewRect(1, 1, 96, 46), v.AdjustedHandleBounds(b))

	v.SetGeometry(false, true, false, 0, 2, 3)
	assert.Equal(t, geom.NewRect(0, 0, 97, 47), v.AdjustedHandleBounds(b))

	// Emboss has no drop shadow, so no trailing inset.
	v.SetGeometry(true, true, true, 0, 2, 3)
	assert.Equal(t, geom.NewRect(1, 1, 99, 49), v.AdjustedHandleBounds(b))
}

func TestDrawButtonCompositingOrder(t *testing.T) {
	v := NewVector(DefaultSpec())
	v.SetGeometry(true, true, false, 0.5, 2, 3)
	rec := paint.NewRecorder()

	// Unpressed, hovered, with a splash running.
	v.SetSplashRadius(0.5)
	v.DrawButton(rec, geom.NewRect(0, 0, 100, 50), false, true, true, geom.Vec2(50, 25))

	want := []string{
		"FillRect",      // background
		"FillRoundRect", // drop shadow
		"FillRoundRect", // foreground fill
		"FillRoundRect", // hover highlight
		"FillCircle",    // splash
		"DrawRoundRect", // frame, topmost
	}
	assert.Equal(t, len(want), len(rec.Ops))
	for i, op := range want {
		assert.Equal(t, op, rec.Op(i), "op %d", i)
	}
}

func TestDrawButtonPressedEmboss(t *testing.T) {
	v := NewVector(DefaultSpec())
	v.SetGeometry(true, true, true, 0, 2, 3)
	rec := paint.NewRecorder()

	v.DrawButton(rec, geom.NewRect(0, 0, 100, 50), true, false, false, geom.Vector2{})

	want := []string{
		"FillRect",      // background
		"FillRoundRect", // pressed fill
		"PathRect",      // inner shadow, top slice
		"PathRect",      // inner shadow, left slice
		"PathFill",
		"DrawRoundRect", // frame
	}
	assert.Equal(t, len(want), len(rec.Ops))
	for i, op := range want {
		assert.Equal(t, op, rec.Op(i), "op %d", i)
	}
}

func TestDrawButtonNoFrameNoShadow(t *testing.T) {
	v := NewVector(DefaultSpec())
	v.SetGeometry(false, false, false, 0, 2, 3)
	rec := paint.NewRecorder()

	handle := v.DrawButton(rec, geom.NewRect(0, 0, 100, 50), false, false, false, geom.Vector2{})

	assert.Equal(t, geom.NewRect(0, 0, 100, 50), handle)
	assert.Equal(t, []string{"FillRect", "FillRoundRect"},
		[]string{rec.Op(0), rec.Op(1)})
	assert.Len(t, rec.Ops, 2)
}
