// Copyright (c) 2026, The Plugkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"fmt"
	"image"
	"image/color"

	"github.com/plugkit/plugkit/geom"
)

// Recorder is a [Painter] that records the names of the draw operations
// performed on it, in order, without rasterizing anything. It is used in
// tests to assert on draw protocols such as compositing order and layer
// rebuild behavior.
type Recorder struct {

	// Ops are the recorded operation descriptions, in call order.
	Ops []string

	scale float32
	stack []geom.Rect
}

// NewRecorder returns a [Recorder] at scale 1.
func NewRecorder() *Recorder {
	return &Recorder{scale: 1}
}

// Op returns the name (first word) of the i-th recorded operation.
func (rc *Recorder) Op(i int) string {
	var name string
	fmt.Sscan(rc.Ops[i], &name)
	return name
}

// Reset clears the recorded operations.
func (rc *Recorder) Reset() {
	rc.Ops = rc.Ops[:0]
}

func (rc *Recorder) record(format string, args ...any) {
	rc.Ops = append(rc.Ops, fmt.Sprintf(format, args...))
}

func (rc *Recorder) FillRect(clr color.Color, r geom.Rect) {
	rc.record("FillRect %v %v", clr, r)
}

func (rc *Recorder) DrawRect(clr color.Color, r geom.Rect, thickness float32) {
	rc.record("DrawRect %v %v %v", clr, r, thickness)
}

func (rc *Recorder) FillRoundRect(clr color.Color, r geom.Rect, radius float32) {
	rc.record("FillRoundRect %v %v %v", clr, r, radius)
}

func (rc *Recorder) DrawRoundRect(clr color.Color, r geom.Rect, radius, thickness float32) {
	rc.record("DrawRoundRect %v %v %v %v", clr, r, radius, thickness)
}

func (rc *Recorder) FillCircle(clr color.Color, center geom.Vector2, radius float32) {
	rc.record("FillCircle %v %v %v", clr, center, radius)
}

func (rc *Recorder) DrawLine(clr color.Color, a, b geom.Vector2, thickness float32) {
	rc.record("DrawLine %v %v %v %v", clr, a, b, thickness)
}

func (rc *Recorder) PathRect(r geom.Rect) {
	rc.record("PathRect %v", r)
}

func (rc *Recorder) PathFill(clr color.Color) {
	rc.record("PathFill %v", clr)
}

func (rc *Recorder) DrawImage(img image.Image, dest geom.Rect, blend Blend) {
	rc.record("DrawImage %v %v", dest, blend)
}

func (rc *Recorder) DrawRotatedImage(img image.Image, center geom.Vector2, degrees float32, blend Blend) {
	rc.record("DrawRotatedImage %v %v", center, degrees)
}

func (rc *Recorder) MeasureText(style TextStyle, str string) geom.Vector2 {
	return geom.Vec2(float32(7*len(str)), 13)
}

func (rc *Recorder) DrawText(style TextStyle, str string, r geom.Rect) {
	rc.record("DrawText %q %v", str, r)
}

func (rc *Recorder) CheckLayer(l *Layer) bool {
	return l != nil && !l.invalid && l.scale == rc.scale
}

func (rc *Recorder) StartLayer(bounds geom.Rect) {
	rc.record("StartLayer %v", bounds)
	rc.stack = append(rc.stack, bounds)
}

func (rc *Recorder) EndLayer() *Layer {
	n := len(rc.stack)
	if n == 0 {
		panic("paint: EndLayer without matching StartLayer")
	}
	bounds := rc.stack[n-1]
	rc.stack = rc.stack[:n-1]
	rc.record("EndLayer %v", bounds)
	return &Layer{bounds: bounds, scale: rc.scale}
}

func (rc *Recorder) ReleaseLayer(l *Layer) {
	if l != nil {
		l.invalid = true
	}
}

func (rc *Recorder) DrawLayer(l *Layer) {
	rc.record("DrawLayer %v", l.bounds)
}

func (rc *Recorder) DrawRotatedLayer(l *Layer, degrees float32) {
	rc.record("DrawRotatedLayer %v %v", l.bounds, degrees)
}

func (rc *Recorder) Scale() float32 { return rc.scale }

// SetScale changes the recorder's scale, for testing rescale behavior.
func (rc *Recorder) SetScale(scale float32) { rc.scale = scale }
