// Copyright (c) 2026, The Plugkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom provides the float32 vector and rectangle types used
// throughout the control layer. Coordinates are in scene pixels with the
// origin at the top-left and Y increasing downward.
package geom

import "github.com/chewxy/math32"

// Vector2 is a 2D float32 vector, used for positions, sizes and deltas.
type Vector2 struct {
	X float32
	Y float32
}

// Vec2 returns a new [Vector2] with the given x and y components.
func Vec2(x, y float32) Vector2 {
	return Vector2{x, y}
}

// Add returns the vector sum of v and other.
func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{v.X + other.X, v.Y + other.Y}
}

// Sub returns other subtracted from v.
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{v.X - other.X, v.Y - other.Y}
}

// MulScalar returns v scaled by s.
func (v Vector2) MulScalar(s float32) Vector2 {
	return Vector2{v.X * s, v.Y * s}
}

// DistanceTo returns the Euclidean distance between v and other.
func (v Vector2) DistanceTo(other Vector2) float32 {
	return math32.Hypot(v.X-other.X, v.Y-other.Y)
}

// Rect is an axis-aligned rectangle given by its left, top, right and
// bottom edges. An empty Rect has R <= L or B <= T.
type Rect struct {
	L float32
	T float32
	R float32
	B float32
}

// NewRect returns a [Rect] with the given left, top, right and bottom edges.
func NewRect(l, t, r, b float32) Rect {
	return Rect{l, t, r, b}
}

// NewRectSize returns a [Rect] at the given top-left position with the
// given width and height.
func NewRectSize(x, y, w, h float32) Rect {
	return Rect{x, y, x + w, y + h}
}

// W returns the width of the rectangle.
func (r Rect) W() float32 { return r.R - r.L }

// H returns the height of the rectangle.
func (r Rect) H() float32 { return r.B - r.T }

// MW returns the horizontal center of the rectangle.
func (r Rect) MW() float32 { return 0.5 * (r.L + r.R) }

// MH returns the vertical center of the rectangle.
func (r Rect) MH() float32 { return 0.5 * (r.T + r.B) }

// Center returns the center point of the rectangle.
func (r Rect) Center() Vector2 { return Vector2{r.MW(), r.MH()} }

// IsEmpty returns whether the rectangle has no area.
func (r Rect) IsEmpty() bool { return r.R <= r.L || r.B <= r.T }

// Contains returns whether the given point is inside the rectangle,
// inclusive of all edges.
func (r Rect) Contains(p Vector2) bool {
	return p.X >= r.L && p.X <= r.R && p.Y >= r.T && p.Y <= r.B
}

// ContainsRect returns whether other is entirely inside r.
func (r Rect) ContainsRect(other Rect) bool {
	return other.L >= r.L && other.T >= r.T && other.R <= r.R && other.B <= r.B
}

// Constrain returns the given point clamped to lie within the rectangle.
func (r Rect) Constrain(p Vector2) Vector2 {
	return Vector2{
		math32.Min(math32.Max(p.X, r.L), r.R),
		math32.Min(math32.Max(p.Y, r.T), r.B),
	}
}

// Translated returns the rectangle offset by the given amounts.
func (r Rect) Translated(dx, dy float32) Rect {
	return Rect{r.L + dx, r.T + dy, r.R + dx, r.B + dy}
}

// Padded returns the rectangle expanded by pad on all sides.
// Negative values shrink it.
func (r Rect) Padded(pad float32) Rect {
	return Rect{r.L - pad, r.T - pad, r.R + pad, r.B + pad}
}

// PaddedXY returns the rectangle expanded by padX left and right and
// padY top and bottom. Negative values shrink it.
func (r Rect) PaddedXY(padX, padY float32) Rect {
	return Rect{r.L - padX, r.T - padY, r.R + padX, r.B + padY}
}

// Altered returns the rectangle with the given amounts added to each edge.
func (r Rect) Altered(dl, dt, dr, db float32) Rect {
	return Rect{r.L + dl, r.T + dt, r.R + dr, r.B + db}
}

// HSliced returns a slice of the given height off the top of the rectangle.
func (r Rect) HSliced(h float32) Rect {
	return Rect{r.L, r.T, r.R, r.T + h}
}

// VSliced returns a slice of the given width off the left of the rectangle.
func (r Rect) VSliced(w float32) Rect {
	return Rect{r.L, r.T, r.L + w, r.B}
}

// FracH returns the bottom fraction frac of the rectangle, as used for
// vertical value fills that grow upward from the bottom edge.
func (r Rect) FracH(frac float32) Rect {
	return Rect{r.L, r.B - frac*r.H(), r.R, r.B}
}

// FracW returns the left fraction frac of the rectangle, as used for
// horizontal value fills that grow rightward from the left edge.
func (r Rect) FracW(frac float32) Rect {
	return Rect{r.L, r.T, r.L + frac*r.W(), r.B}
}

// SubRect returns cell i of the rectangle divided into n equal slices
// along the given dimension: columns for [X], rows for [Y].
func (r Rect) SubRect(dim Dims, n, i int) Rect {
	if dim == X {
		w := r.W() / float32(n)
		return Rect{r.L + float32(i)*w, r.T, r.L + float32(i+1)*w, r.B}
	}
	h := r.H() / float32(n)
	return Rect{r.L, r.T + float32(i)*h, r.R, r.T + float32(i+1)*h}
}

// CenteredInside returns a rectangle of the given size centered
// within r.
func (r Rect) CenteredInside(w, h float32) Rect {
	l := r.MW() - 0.5*w
	t := r.MH() - 0.5*h
	return Rect{l, t, l + w, t + h}
}

// Square returns the largest centered square that fits inside r.
func (r Rect) Square() Rect {
	s := math32.Min(r.W(), r.H())
	return r.CenteredInside(s, s)
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		math32.Min(r.L, other.L),
		math32.Min(r.T, other.T),
		math32.Max(r.R, other.R),
		math32.Max(r.B, other.B),
	}
}

// Dims is an axis dimension, used to select the primary travel axis of
// drag-based controls.
type Dims int32

const (
	// X is the horizontal axis.
	X Dims = iota

	// Y is the vertical axis.
	Y
)

// Other returns the other dimension.
func (d Dims) Other() Dims {
	if d == X {
		return Y
	}
	return X
}
