// Copyright (c) 2026, The Plugkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package controls

import (
	"image"

	"github.com/chewxy/math32"
	"github.com/plugkit/plugkit/geom"
	"github.com/plugkit/plugkit/paint"
)

// grayedAlpha is the draw opacity of a grayed bitmap control.
const grayedAlpha float32 = 0.3

// Bitmap is a filmstrip image resource: frames stacked vertically in
// one image, selected by index. A single-frame bitmap is just an
// image.
type Bitmap struct {
	img    image.Image
	frames int
	fw, fh int
}

// NewBitmap wraps an image holding the given number of vertically
// stacked frames.
func NewBitmap(img image.Image, frames int) *Bitmap {
	if frames < 1 {
		frames = 1
	}
	b := img.Bounds()
	return &Bitmap{img: img, frames: frames, fw: b.Dx(), fh: b.Dy() / frames}
}

// NumFrames returns the frame count.
func (b *Bitmap) NumFrames() int { return b.frames }

// FrameSize returns the pixel size of one frame.
func (b *Bitmap) FrameSize() (w, h int) { return b.fw, b.fh }

// Frame returns the i-th frame as a sub-image. Out-of-range indices
// clamp to the strip.
func (b *Bitmap) Frame(i int) image.Image {
	if b.frames == 1 {
		return b.img
	}
	if i < 0 {
		i = 0
	} else if i >= b.frames {
		i = b.frames - 1
	}
	min := b.img.Bounds().Min
	r := image.Rect(min.X, min.Y+i*b.fh, min.X+b.fw, min.Y+(i+1)*b.fh)
	if sub, ok := b.img.(interface {
		SubImage(image.Rectangle) image.Image
	}); ok {
		return sub.SubImage(r)
	}
	return b.img
}

// FrameForValue maps a normalized value onto the nearest frame index.
func (b *Bitmap) FrameForValue(value float32) int {
	if b.frames < 2 {
		return 0
	}
	return int(math32.Round(math32.Min(math32.Max(value, 0), 1) * float32(b.frames-1)))
}

// bitmapBlend is the draw blend for a bitmap control, dimmed when
// grayed.
func bitmapBlend(grayed bool) paint.Blend {
	bl := paint.BlendNormal()
	if grayed {
		bl.Weight = grayedAlpha
	}
	return bl
}

// BKnob is a filmstrip knob: the value selects the frame to draw.
type BKnob struct {
	KnobBase

	bitmap *Bitmap
}

// NewBKnob returns a filmstrip knob linked to the given parameter.
func NewBKnob(bounds geom.Rect, paramIdx int, bitmap *Bitmap) *BKnob {
	k := &BKnob{bitmap: bitmap}
	k.InitKnob(k, bounds, paramIdx)
	return k
}

func (k *BKnob) Draw(pr paint.Painter) {
	frame := k.bitmap.Frame(k.bitmap.FrameForValue(k.Value(0)))
	pr.DrawImage(frame, k.Bounds(), bitmapBlend(k.IsGrayed()))
}

// BKnobRotater draws a single knob image rotated by the value's angle,
// sweeping -130 to +130 degrees.
type BKnobRotater struct {
	KnobBase

	bitmap *Bitmap
}

// NewBKnobRotater returns a rotating-image knob linked to the given
// parameter.
func NewBKnobRotater(bounds geom.Rect, paramIdx int, bitmap *Bitmap) *BKnobRotater {
	k := &BKnobRotater{bitmap: bitmap}
	k.InitKnob(k, bounds, paramIdx)
	return k
}

func (k *BKnobRotater) Draw(pr paint.Painter) {
	angle := -130 + k.Value(0)*260
	pr.DrawRotatedImage(k.bitmap.Frame(0), k.Bounds().Center(), angle, bitmapBlend(k.IsGrayed()))
}

// BSwitch is a filmstrip switch: the state selects the frame.
type BSwitch struct {
	SwitchBase

	bitmap *Bitmap
}

// NewBSwitch returns a filmstrip switch with one state per frame.
func NewBSwitch(bounds geom.Rect, paramIdx int, bitmap *Bitmap) *BSwitch {
	s := &BSwitch{bitmap: bitmap}
	s.InitSwitch(s, bounds, paramIdx, max(bitmap.NumFrames(), 2))
	return s
}

func (s *BSwitch) Draw(pr paint.Painter) {
	pr.DrawImage(s.bitmap.Frame(s.StateIdx()), s.Bounds(), bitmapBlend(s.IsGrayed()))
}

// BSlider is a linear slider with a bitmap handle riding the track.
type BSlider struct {
	SliderBase

	handle *Bitmap
}

// NewBSlider returns a bitmap-handled slider linked to the given
// parameter.
func NewBSlider(bounds geom.Rect, paramIdx int, handle *Bitmap, dir geom.Dims) *BSlider {
	s := &BSlider{handle: handle}
	s.InitSlider(s, bounds, paramIdx, dir)
	hw, hh := handle.FrameSize()
	if dir == geom.Y {
		s.HandleSize = float32(hh)
	} else {
		s.HandleSize = float32(hw)
	}
	return s
}

func (s *BSlider) Draw(pr paint.Painter) {
	center := s.handleCenter(s.Value(0))
	hw, hh := s.handle.FrameSize()
	dest := geom.NewRect(center.X-0.5*float32(hw), center.Y-0.5*float32(hh),
		center.X+0.5*float32(hw), center.Y+0.5*float32(hh))
	frame := s.handle.Frame(s.handle.FrameForValue(s.Value(0)))
	pr.DrawImage(frame, dest, bitmapBlend(s.IsGrayed()))
}
