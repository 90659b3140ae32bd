// Copyright (c) 2026, The Plugkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"image/color"

	"github.com/chewxy/math32"
	"github.com/plugkit/plugkit/geom"
	"github.com/plugkit/plugkit/paint"
)

// Vector is the style component held by vector-drawn controls. It owns
// a nine-role palette plus the geometric style settings, and provides
// the shared drawing primitives (button body, splash highlight).
//
// A Vector is attached to its owning control with [Vector.Attach];
// setters mark the owner dirty through that hook so style changes
// trigger a redraw without a parameter notification.
type Vector struct {
	colors [RolesN]color.RGBA

	// roundness is the corner radius as a fraction in [0, 1] of half
	// the shorter handle dimension.
	roundness float32

	// frameThickness is the outline stroke width.
	frameThickness float32

	// shadowOffset is the drop shadow offset in scene units.
	shadowOffset float32

	drawFrame   bool
	drawShadows bool

	// emboss draws an inner shadow on the pressed handle instead of a
	// drop shadow on the unpressed one.
	emboss bool

	splashRadius    float32
	maxSplashRadius float32

	// dirty marks the owning control for redraw; set by Attach.
	dirty func()
}

// NewVector returns a vector style component with the given palette
// and default geometry.
func NewVector(spec ColorSpec) *Vector {
	return &Vector{
		colors:          spec.Colors(),
		frameThickness:  2,
		shadowOffset:    3,
		drawFrame:       true,
		drawShadows:     true,
		maxSplashRadius: 50,
	}
}

// Attach sets the hook used to mark the owning control dirty when a
// style setting changes. It must be called before any setter.
func (v *Vector) Attach(dirty func()) {
	v.dirty = dirty
}

func (v *Vector) markDirty() {
	if v.dirty != nil {
		v.dirty()
	}
}

// Color returns the color for the given role.
func (v *Vector) Color(role Roles) color.RGBA {
	if role < 0 || role >= RolesN {
		panic("styles: color role out of range")
	}
	return v.colors[role]
}

// SetColor sets the color for one role and marks the owner dirty.
func (v *Vector) SetColor(role Roles, clr color.RGBA) {
	if role < 0 || role >= RolesN {
		panic("styles: color role out of range")
	}
	v.colors[role] = clr
	v.markDirty()
}

// SetColors replaces the whole palette in one swap. Geometric settings
// are not touched.
func (v *Vector) SetColors(spec ColorSpec) {
	v.colors = spec.Colors()
	v.markDirty()
}

// Spec returns the current palette as a [ColorSpec].
func (v *Vector) Spec() ColorSpec {
	c := v.colors
	return ColorSpec{
		Background: c[Background], Foreground: c[Foreground], Pressed: c[Pressed],
		Frame: c[Frame], Highlight: c[Highlight], Shadow: c[Shadow],
		Extra1: c[Extra1], Extra2: c[Extra2], Extra3: c[Extra3],
	}
}

// Roundness returns the corner roundness fraction.
func (v *Vector) Roundness() float32 { return v.roundness }

// SetRoundness sets the corner roundness, clamped to [0, 1].
func (v *Vector) SetRoundness(roundness float32) {
	v.roundness = math32.Min(math32.Max(roundness, 0), 1)
	v.markDirty()
}

// FrameThickness returns the outline stroke width.
func (v *Vector) FrameThickness() float32 { return v.frameThickness }

// SetFrameThickness sets the outline stroke width.
func (v *Vector) SetFrameThickness(thickness float32) {
	v.frameThickness = thickness
	v.markDirty()
}

// ShadowOffset returns the drop shadow offset.
func (v *Vector) ShadowOffset() float32 { return v.shadowOffset }

// SetShadowOffset sets the drop shadow offset.
func (v *Vector) SetShadowOffset(offset float32) {
	v.shadowOffset = offset
	v.markDirty()
}

// SetDrawFrame sets whether the frame outline is drawn.
func (v *Vector) SetDrawFrame(draw bool) {
	v.drawFrame = draw
	v.markDirty()
}

// DrawsFrame returns whether the frame outline is drawn.
func (v *Vector) DrawsFrame() bool { return v.drawFrame }

// SetDrawShadows sets whether shadows are drawn.
func (v *Vector) SetDrawShadows(draw bool) {
	v.drawShadows = draw
	v.markDirty()
}

// DrawsShadows returns whether shadows are drawn.
func (v *Vector) DrawsShadows() bool { return v.drawShadows }

// SetEmboss sets whether the pressed handle gets an inner shadow
// instead of the unpressed drop shadow.
func (v *Vector) SetEmboss(emboss bool) {
	v.emboss = emboss
	v.markDirty()
}

// Emboss returns whether emboss mode is on.
func (v *Vector) Emboss() bool { return v.emboss }

// SetSplashRadius sets the splash highlight radius as a fraction of
// the maximum radius. Animation functions drive this per frame, so it
// does not mark the owner dirty itself.
func (v *Vector) SetSplashRadius(frac float32) {
	v.splashRadius = frac * v.maxSplashRadius
}

// SetGeometry sets all geometric style settings at once.
func (v *Vector) SetGeometry(drawFrame, drawShadows, emboss bool, roundness, frameThickness, shadowOffset float32) {
	v.drawFrame = drawFrame
	v.drawShadows = drawShadows
	v.emboss = emboss
	v.roundness = math32.Min(math32.Max(roundness, 0), 1)
	v.frameThickness = frameThickness
	v.shadowOffset = shadowOffset
	v.markDirty()
}

// AdjustedHandleBounds returns the handle rectangle for the given
// bounds: inset by half the frame thickness when framed, and further
// inset on the trailing edges by the shadow offset when a drop shadow
// will be drawn.
func (v *Vector) AdjustedHandleBounds(bounds geom.Rect) geom.Rect {
	if v.drawFrame {
		bounds = bounds.Padded(-0.5 * v.frameThickness)
	}
	if v.drawShadows && !v.emboss {
		bounds = bounds.Altered(0, 0, -v.shadowOffset, -v.shadowOffset)
	}
	return bounds
}

// DrawSplash fills the splash highlight circle at the given point,
// typically the recorded mouse-down position.
func (v *Vector) DrawSplash(pr paint.Painter, at geom.Vector2) {
	pr.FillCircle(v.colors[Highlight], at, v.splashRadius)
}

// DrawButton draws the shared vector button body and returns the
// handle bounds it used. The compositing order is part of the
// contract: background, shadow, fill, hover highlight, splash, frame.
// The frame is always topmost.
func (v *Vector) DrawButton(pr paint.Painter, bounds geom.Rect, pressed, mouseOver, animating bool, splashAt geom.Vector2) geom.Rect {
	pr.FillRect(v.colors[Background], bounds)

	handle := v.AdjustedHandleBounds(bounds)
	corner := v.roundness * (handle.W() / 2)

	if pressed {
		pr.FillRoundRect(v.colors[Pressed], handle, corner)
		if v.drawShadows && v.emboss {
			pr.PathRect(handle.HSliced(v.shadowOffset))
			pr.PathRect(handle.VSliced(v.shadowOffset))
			pr.PathFill(v.colors[Shadow])
		}
	} else {
		if v.drawShadows && !v.emboss {
			pr.FillRoundRect(v.colors[Shadow], handle.Translated(v.shadowOffset, v.shadowOffset), corner)
		}
		pr.FillRoundRect(v.colors[Foreground], handle, corner)
	}

	if mouseOver {
		pr.FillRoundRect(v.colors[Highlight], handle, corner)
	}

	if animating {
		v.DrawSplash(pr, splashAt)
	}

	if v.drawFrame {
		pr.DrawRoundRect(v.colors[Frame], handle, corner, v.frameThickness)
	}

	return handle
}
