// Copyright (c) 2026, The Plugkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package paint defines the render-backend capability surface that
// controls draw through: primitive vector ops, image draws with blending,
// text, and cached render layers. The [Raster] type is a self-contained
// software implementation; GPU or platform backends implement the same
// [Painter] interface.
package paint

import (
	"image"
	"image/color"

	"github.com/plugkit/plugkit/geom"
)

// Painter is the set of draw operations a render backend provides to
// controls. One control is drawn at a time; a Painter is never shared
// across threads. All coordinates are unscaled scene units; the painter
// applies its own [Painter.Scale] when rasterizing.
type Painter interface {

	// FillRect fills the given rectangle with the given color.
	FillRect(clr color.Color, r geom.Rect)

	// DrawRect strokes the outline of the given rectangle.
	DrawRect(clr color.Color, r geom.Rect, thickness float32)

	// FillRoundRect fills a rounded rectangle with the given corner radius.
	FillRoundRect(clr color.Color, r geom.Rect, radius float32)

	// DrawRoundRect strokes the outline of a rounded rectangle.
	DrawRoundRect(clr color.Color, r geom.Rect, radius, thickness float32)

	// FillCircle fills a circle at the given center and radius.
	FillCircle(clr color.Color, center geom.Vector2, radius float32)

	// DrawLine strokes a line segment from a to b.
	DrawLine(clr color.Color, a, b geom.Vector2, thickness float32)

	// PathRect adds a rectangle to the current path, for compound fills
	// such as the emboss inner shadow.
	PathRect(r geom.Rect)

	// PathFill fills the accumulated path with the given color and
	// clears the path.
	PathFill(clr color.Color)

	// DrawImage draws the given image scaled into the destination
	// rectangle with the given blend.
	DrawImage(img image.Image, dest geom.Rect, blend Blend)

	// DrawRotatedImage draws the image rotated by the given angle in
	// degrees about the given center point.
	DrawRotatedImage(img image.Image, center geom.Vector2, degrees float32, blend Blend)

	// MeasureText returns the rendered size of the given string.
	MeasureText(style TextStyle, str string) geom.Vector2

	// DrawText draws the string within the given rectangle according to
	// the style's alignment.
	DrawText(style TextStyle, str string, r geom.Rect)

	// CheckLayer reports whether a previously produced layer is still
	// valid: non-nil, not invalidated, and rasterized at the painter's
	// current scale. A false result means the caller must re-render it.
	CheckLayer(l *Layer) bool

	// StartLayer redirects subsequent draw ops into an offscreen surface
	// sized to the given bounds, until [Painter.EndLayer].
	StartLayer(bounds geom.Rect)

	// EndLayer captures and returns the layer begun by the matching
	// [Painter.StartLayer].
	EndLayer() *Layer

	// ReleaseLayer invalidates a layer and recycles its pixels.
	// Callers release a stale layer before rebuilding it.
	ReleaseLayer(l *Layer)

	// DrawLayer draws a cached layer at its recorded bounds.
	DrawLayer(l *Layer)

	// DrawRotatedLayer draws a cached layer rotated by the given angle
	// in degrees about the center of its recorded bounds.
	DrawRotatedLayer(l *Layer, degrees float32)

	// Scale returns the current device pixel ratio of the backend.
	Scale() float32
}

// BlendModes determine how an image draw composites onto the target.
type BlendModes int32

const (
	// BlendDefault is standard source-over alpha compositing.
	BlendDefault BlendModes = iota

	// BlendClobber replaces the destination entirely.
	BlendClobber
)

// Blend is a blend specification for image draws.
type Blend struct {

	// Mode is the compositing mode.
	Mode BlendModes

	// Weight is the opacity of the draw in [0, 1].
	Weight float32
}

// BlendNormal returns the default fully-opaque blend.
func BlendNormal() Blend {
	return Blend{Mode: BlendDefault, Weight: 1}
}

// Aligns specifies horizontal text alignment.
type Aligns int32

const (
	AlignNear Aligns = iota
	AlignCenter
	AlignFar
)

// TextStyle specifies how a control's text is drawn.
type TextStyle struct {

	// Size is the text size in scene units.
	Size float32

	// Color is the text fill color.
	Color color.RGBA

	// Align is the horizontal alignment within the draw rectangle.
	Align Aligns

	// VAlign is the vertical alignment within the draw rectangle.
	VAlign Aligns
}

// DefaultTextStyle returns the text style controls start with.
func DefaultTextStyle() TextStyle {
	return TextStyle{
		Size:   14,
		Color:  color.RGBA{30, 30, 30, 255},
		Align:  AlignCenter,
		VAlign: AlignCenter,
	}
}
