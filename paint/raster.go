// Copyright (c) 2026, The Plugkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/transform"
	"github.com/chewxy/math32"
	"github.com/plugkit/plugkit/geom"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// magic number for approximating circular arcs with cubic beziers
const bezierCircle = 0.5523

// Raster is a software [Painter] that rasterizes into an [image.RGBA].
// It supports the full layer protocol, pooling offscreen images so that
// animated invalidate/rebuild cycles do not allocate per frame.
// Text is drawn with a fixed bitmap face; it does not scale with
// [TextStyle.Size], which is acceptable for testing and simple panels.
type Raster struct {
	scene *image.RGBA
	scale float32
	pool  layerPool
	stack []*rasterLayer
	path  []geom.Rect
}

type rasterLayer struct {
	bounds geom.Rect
	img    *image.RGBA
}

// NewRaster returns a software painter targeting a new image of the
// given size in scene units, rasterized at the given scale (the device
// pixel ratio; 1 for standard displays).
func NewRaster(w, h int, scale float32) *Raster {
	if scale <= 0 {
		panic("paint: Raster scale must be > 0")
	}
	pw := int(math32.Ceil(float32(w) * scale))
	ph := int(math32.Ceil(float32(h) * scale))
	return &Raster{
		scene: image.NewRGBA(image.Rect(0, 0, pw, ph)),
		scale: scale,
	}
}

// Image returns the scene target image.
func (rs *Raster) Image() *image.RGBA { return rs.scene }

// Scale returns the device pixel ratio.
func (rs *Raster) Scale() float32 { return rs.scale }

// SetScale changes the device pixel ratio and reallocates the scene
// target, as on a move to a display with a different DPI. Previously
// produced layers fail [Raster.CheckLayer] afterward, so cached content
// is rebuilt at the new resolution rather than upscaled.
func (rs *Raster) SetScale(scale float32) {
	if scale <= 0 {
		panic("paint: Raster scale must be > 0")
	}
	if scale == rs.scale {
		return
	}
	b := rs.scene.Bounds()
	w := float32(b.Dx()) / rs.scale
	h := float32(b.Dy()) / rs.scale
	rs.scale = scale
	rs.scene = image.NewRGBA(image.Rect(0, 0, int(math32.Ceil(w*scale)), int(math32.Ceil(h*scale))))
	rs.pool = layerPool{}
}

// target returns the current draw target and the scene offset of its
// origin: the top of the layer stack if a layer is open, else the scene.
func (rs *Raster) target() (*image.RGBA, geom.Vector2) {
	if n := len(rs.stack); n > 0 {
		rl := rs.stack[n-1]
		return rl.img, geom.Vec2(rl.bounds.L, rl.bounds.T)
	}
	return rs.scene, geom.Vector2{}
}

// rasterize fills the path built by the given function, in device
// coordinates produced by the supplied transform.
func (rs *Raster) rasterize(clr color.Color, build func(vr *vector.Rasterizer, tx func(geom.Vector2) (float32, float32))) {
	dst, off := rs.target()
	b := dst.Bounds()
	vr := &vector.Rasterizer{}
	vr.Reset(b.Dx(), b.Dy())
	tx := func(p geom.Vector2) (float32, float32) {
		return (p.X - off.X) * rs.scale, (p.Y - off.Y) * rs.scale
	}
	build(vr, tx)
	vr.Draw(dst, b, image.NewUniform(clr), image.Point{})
}

func rectPath(vr *vector.Rasterizer, tx func(geom.Vector2) (float32, float32), r geom.Rect) {
	x0, y0 := tx(geom.Vec2(r.L, r.T))
	x1, y1 := tx(geom.Vec2(r.R, r.B))
	vr.MoveTo(x0, y0)
	vr.LineTo(x1, y0)
	vr.LineTo(x1, y1)
	vr.LineTo(x0, y1)
	vr.ClosePath()
}

// rectPathCCW adds a rectangle wound in the opposite direction, which
// subtracts coverage and so cuts a hole for stroked outlines.
func rectPathCCW(vr *vector.Rasterizer, tx func(geom.Vector2) (float32, float32), r geom.Rect) {
	x0, y0 := tx(geom.Vec2(r.L, r.T))
	x1, y1 := tx(geom.Vec2(r.R, r.B))
	vr.MoveTo(x0, y0)
	vr.LineTo(x0, y1)
	vr.LineTo(x1, y1)
	vr.LineTo(x1, y0)
	vr.ClosePath()
}

func roundRectPath(vr *vector.Rasterizer, tx func(geom.Vector2) (float32, float32), r geom.Rect, radius float32, ccw bool) {
	radius = math32.Min(math32.Max(radius, 0), 0.5*math32.Min(r.W(), r.H()))
	if radius <= 0 {
		if ccw {
			rectPathCCW(vr, tx, r)
		} else {
			rectPath(vr, tx, r)
		}
		return
	}
	k := radius * bezierCircle
	type pt = geom.Vector2
	// clockwise contour starting after the top-left corner arc
	pts := []pt{
		{X: r.L + radius, Y: r.T}, {X: r.R - radius, Y: r.T}, // top edge
		{X: r.R - radius + k, Y: r.T}, {X: r.R, Y: r.T + radius - k}, {X: r.R, Y: r.T + radius}, // top-right arc
		{X: r.R, Y: r.B - radius},                                                               // right edge
		{X: r.R, Y: r.B - radius + k}, {X: r.R - radius + k, Y: r.B}, {X: r.R - radius, Y: r.B}, // bottom-right arc
		{X: r.L + radius, Y: r.B},                                                               // bottom edge
		{X: r.L + radius - k, Y: r.B}, {X: r.L, Y: r.B - radius + k}, {X: r.L, Y: r.B - radius}, // bottom-left arc
		{X: r.L, Y: r.T + radius},                                                               // left edge
		{X: r.L, Y: r.T + radius - k}, {X: r.L + radius - k, Y: r.T}, {X: r.L + radius, Y: r.T}, // top-left arc
	}
	if ccw {
		// reverse the contour to subtract coverage; the reversed layout is
		// an arc triple, then alternating edge lines and arc triples
		for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}
		x, y := tx(pts[0])
		vr.MoveTo(x, y)
		for i := 1; i < len(pts); {
			if i%4 == 0 {
				x, y := tx(pts[i])
				vr.LineTo(x, y)
				i++
			} else {
				x1, y1 := tx(pts[i])
				x2, y2 := tx(pts[i+1])
				x3, y3 := tx(pts[i+2])
				vr.CubeTo(x1, y1, x2, y2, x3, y3)
				i += 3
			}
		}
		vr.ClosePath()
		return
	}
	x, y := tx(pts[0])
	vr.MoveTo(x, y)
	x, y = tx(pts[1])
	vr.LineTo(x, y)
	for i := 2; i < len(pts); i += 4 {
		x1, y1 := tx(pts[i])
		x2, y2 := tx(pts[i+1])
		x3, y3 := tx(pts[i+2])
		vr.CubeTo(x1, y1, x2, y2, x3, y3)
		if i+3 < len(pts) {
			x, y = tx(pts[i+3])
			vr.LineTo(x, y)
		}
	}
	vr.ClosePath()
}

func circlePath(vr *vector.Rasterizer, tx func(geom.Vector2) (float32, float32), center geom.Vector2, radius float32) {
	k := radius * bezierCircle
	cx, cy := center.X, center.Y
	x, y := tx(geom.Vec2(cx, cy-radius))
	vr.MoveTo(x, y)
	cube := func(p1, p2, p3 geom.Vector2) {
		x1, y1 := tx(p1)
		x2, y2 := tx(p2)
		x3, y3 := tx(p3)
		vr.CubeTo(x1, y1, x2, y2, x3, y3)
	}
	cube(geom.Vec2(cx+k, cy-radius), geom.Vec2(cx+radius, cy-k), geom.Vec2(cx+radius, cy))
	cube(geom.Vec2(cx+radius, cy+k), geom.Vec2(cx+k, cy+radius), geom.Vec2(cx, cy+radius))
	cube(geom.Vec2(cx-k, cy+radius), geom.Vec2(cx-radius, cy+k), geom.Vec2(cx-radius, cy))
	cube(geom.Vec2(cx-radius, cy-k), geom.Vec2(cx-k, cy-radius), geom.Vec2(cx, cy-radius))
	vr.ClosePath()
}

func (rs *Raster) FillRect(clr color.Color, r geom.Rect) {
	rs.rasterize(clr, func(vr *vector.Rasterizer, tx func(geom.Vector2) (float32, float32)) {
		rectPath(vr, tx, r)
	})
}

func (rs *Raster) DrawRect(clr color.Color, r geom.Rect, thickness float32) {
	rs.rasterize(clr, func(vr *vector.Rasterizer, tx func(geom.Vector2) (float32, float32)) {
		rectPath(vr, tx, r)
		rectPathCCW(vr, tx, r.Padded(-thickness))
	})
}

func (rs *Raster) FillRoundRect(clr color.Color, r geom.Rect, radius float32) {
	rs.rasterize(clr, func(vr *vector.Rasterizer, tx func(geom.Vector2) (float32, float32)) {
		roundRectPath(vr, tx, r, radius, false)
	})
}

func (rs *Raster) DrawRoundRect(clr color.Color, r geom.Rect, radius, thickness float32) {
	rs.rasterize(clr, func(vr *vector.Rasterizer, tx func(geom.Vector2) (float32, float32)) {
		roundRectPath(vr, tx, r, radius, false)
		roundRectPath(vr, tx, r.Padded(-thickness), math32.Max(0, radius-thickness), true)
	})
}

func (rs *Raster) FillCircle(clr color.Color, center geom.Vector2, radius float32) {
	rs.rasterize(clr, func(vr *vector.Rasterizer, tx func(geom.Vector2) (float32, float32)) {
		circlePath(vr, tx, center, radius)
	})
}

func (rs *Raster) DrawLine(clr color.Color, a, b geom.Vector2, thickness float32) {
	d := b.Sub(a)
	length := math32.Hypot(d.X, d.Y)
	if length == 0 {
		return
	}
	// unit normal scaled to half thickness
	n := geom.Vec2(-d.Y/length, d.X/length).MulScalar(0.5 * thickness)
	rs.rasterize(clr, func(vr *vector.Rasterizer, tx func(geom.Vector2) (float32, float32)) {
		x, y := tx(a.Add(n))
		vr.MoveTo(x, y)
		x, y = tx(b.Add(n))
		vr.LineTo(x, y)
		x, y = tx(b.Sub(n))
		vr.LineTo(x, y)
		x, y = tx(a.Sub(n))
		vr.LineTo(x, y)
		vr.ClosePath()
	})
}

func (rs *Raster) PathRect(r geom.Rect) {
	rs.path = append(rs.path, r)
}

func (rs *Raster) PathFill(clr color.Color) {
	rects := rs.path
	rs.path = nil
	rs.rasterize(clr, func(vr *vector.Rasterizer, tx func(geom.Vector2) (float32, float32)) {
		for _, r := range rects {
			rectPath(vr, tx, r)
		}
	})
}

func (rs *Raster) DrawImage(img image.Image, dest geom.Rect, blend Blend) {
	dst, off := rs.target()
	dr := rs.deviceRect(dest, off)
	op := xdraw.Over
	if blend.Mode == BlendClobber {
		op = xdraw.Src
	}
	var opts *xdraw.Options
	if blend.Weight < 1 {
		opts = &xdraw.Options{
			SrcMask: image.NewUniform(color.Alpha{A: uint8(math32.Min(math32.Max(blend.Weight, 0), 1) * 255)}),
		}
	}
	xdraw.ApproxBiLinear.Scale(dst, dr, img, img.Bounds(), op, opts)
}

func (rs *Raster) DrawRotatedImage(img image.Image, center geom.Vector2, degrees float32, blend Blend) {
	rotated := transform.Rotate(img, float64(degrees), nil)
	b := rotated.Bounds()
	w := float32(b.Dx()) / rs.scale
	h := float32(b.Dy()) / rs.scale
	dest := geom.NewRectSize(center.X-0.5*w, center.Y-0.5*h, w, h)
	rs.DrawImage(rotated, dest, blend)
}

func (rs *Raster) MeasureText(style TextStyle, str string) geom.Vector2 {
	face := basicfont.Face7x13
	d := font.Drawer{Face: face}
	adv := d.MeasureString(str)
	return geom.Vec2(float32(adv.Round())/rs.scale, float32(face.Height)/rs.scale)
}

func (rs *Raster) DrawText(style TextStyle, str string, r geom.Rect) {
	dst, off := rs.target()
	face := basicfont.Face7x13
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(style.Color),
		Face: face,
	}
	size := rs.MeasureText(style, str)
	x := r.L
	switch style.Align {
	case AlignCenter:
		x = r.L + 0.5*(r.W()-size.X)
	case AlignFar:
		x = r.R - size.X
	}
	y := r.T + size.Y
	switch style.VAlign {
	case AlignCenter:
		y = r.T + 0.5*(r.H()+size.Y) - float32(face.Descent)/rs.scale
	case AlignFar:
		y = r.B - float32(face.Descent)/rs.scale
	}
	d.Dot = fixed.P(int((x-off.X)*rs.scale), int((y-off.Y)*rs.scale))
	d.DrawString(str)
}

func (rs *Raster) CheckLayer(l *Layer) bool {
	return l != nil && !l.invalid && l.scale == rs.scale
}

func (rs *Raster) StartLayer(bounds geom.Rect) {
	w := int(math32.Ceil(bounds.W() * rs.scale))
	h := int(math32.Ceil(bounds.H() * rs.scale))
	if w <= 0 || h <= 0 {
		panic("paint: StartLayer with empty bounds")
	}
	rs.stack = append(rs.stack, &rasterLayer{
		bounds: bounds,
		img:    rs.pool.acquire(w, h),
	})
}

func (rs *Raster) EndLayer() *Layer {
	n := len(rs.stack)
	if n == 0 {
		panic("paint: EndLayer without matching StartLayer")
	}
	rl := rs.stack[n-1]
	rs.stack = rs.stack[:n-1]
	return &Layer{bounds: rl.bounds, scale: rs.scale, image: rl.img}
}

// ReleaseLayer returns a layer's pixels to the pool for reuse and
// invalidates it. Call before rebuilding a stale layer.
func (rs *Raster) ReleaseLayer(l *Layer) {
	if l == nil {
		return
	}
	l.invalid = true
	rs.pool.release(l.image)
	l.image = nil
}

func (rs *Raster) DrawLayer(l *Layer) {
	if l == nil || l.image == nil {
		return
	}
	dst, off := rs.target()
	dr := rs.deviceRect(l.bounds, off)
	w := int(math32.Ceil(l.bounds.W() * l.scale))
	h := int(math32.Ceil(l.bounds.H() * l.scale))
	xdraw.Draw(dst, dr, l.image.SubImage(image.Rect(0, 0, w, h)), image.Point{}, xdraw.Over)
}

func (rs *Raster) DrawRotatedLayer(l *Layer, degrees float32) {
	if l == nil || l.image == nil {
		return
	}
	w := int(math32.Ceil(l.bounds.W() * l.scale))
	h := int(math32.Ceil(l.bounds.H() * l.scale))
	src := l.image.SubImage(image.Rect(0, 0, w, h))
	rs.DrawRotatedImage(src, l.bounds.Center(), degrees, BlendNormal())
}

func (rs *Raster) deviceRect(r geom.Rect, off geom.Vector2) image.Rectangle {
	return image.Rect(
		int(math32.Round((r.L-off.X)*rs.scale)),
		int(math32.Round((r.T-off.Y)*rs.scale)),
		int(math32.Round((r.R-off.X)*rs.scale)),
		int(math32.Round((r.B-off.Y)*rs.scale)),
	)
}
