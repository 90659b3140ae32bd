// Copyright (c) 2026, The Plugkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"image"
	"math"

	"github.com/plugkit/plugkit/geom"
)

// Layer is a cached offscreen rendering of static content, reused across
// frames until invalidated. A layer records the scene bounds it was
// rendered for and the scale it was rasterized at; it becomes invalid
// when explicitly invalidated (e.g. on a control resize) or when the
// backend scale changes.
type Layer struct {
	bounds  geom.Rect
	scale   float32
	image   *image.RGBA
	invalid bool
}

// Bounds returns the scene bounds the layer was rendered for.
func (l *Layer) Bounds() geom.Rect { return l.bounds }

// Image returns the rasterized pixels, or nil for recording backends.
func (l *Layer) Image() *image.RGBA { return l.image }

// Invalidate marks the layer as stale so that the next
// [Painter.CheckLayer] returns false. Resize hooks must call this
// unconditionally; rendering a stale layer at new bounds is a
// correctness bug, not a recoverable condition.
func (l *Layer) Invalidate() {
	if l != nil {
		l.invalid = true
	}
}

// layerPool reuses offscreen images, bucketed by power-of-two
// dimensions so that repeated invalidate/rebuild cycles during
// animation do not allocate every frame.
type layerPool struct {
	buckets map[uint64][]*image.RGBA
}

func poolKey(w, h int) uint64 {
	return uint64(w)<<32 | uint64(h)
}

// acquire returns a cleared image with at least (w, h) pixels, rounded
// up to power-of-two dimensions.
func (p *layerPool) acquire(w, h int) *image.RGBA {
	pw := nextPowerOfTwo(w)
	ph := nextPowerOfTwo(h)
	key := poolKey(pw, ph)
	if stack := p.buckets[key]; len(stack) > 0 {
		img := stack[len(stack)-1]
		p.buckets[key] = stack[:len(stack)-1]
		clear(img.Pix)
		return img
	}
	return image.NewRGBA(image.Rect(0, 0, pw, ph))
}

// release returns an image to the pool for reuse.
func (p *layerPool) release(img *image.RGBA) {
	if img == nil {
		return
	}
	b := img.Bounds()
	key := poolKey(b.Dx(), b.Dy())
	if p.buckets == nil {
		p.buckets = make(map[uint64][]*image.RGBA)
	}
	p.buckets[key] = append(p.buckets[key], img)
}

// nextPowerOfTwo returns the smallest power of two >= n (minimum 1).
func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << int(math.Ceil(math.Log2(float64(n))))
}
