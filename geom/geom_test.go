// Copyright (c) 2026, The Plugkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectContainsInclusive(t *testing.T) {
	r := NewRect(10, 10, 20, 20)
	assert.True(t, r.Contains(Vec2(10, 10)))
	assert.True(t, r.Contains(Vec2(20, 20)))
	assert.True(t, r.Contains(Vec2(15, 15)))
	assert.False(t, r.Contains(Vec2(9.9, 15)))
	assert.False(t, r.Contains(Vec2(15, 20.1)))
}

func TestRectConstrain(t *testing.T) {
	r := NewRect(0, 0, 100, 50)
	assert.Equal(t, Vec2(30, 20), r.Constrain(Vec2(30, 20)))
	assert.Equal(t, Vec2(0, 50), r.Constrain(Vec2(-10, 80)))
	assert.Equal(t, Vec2(100, 0), r.Constrain(Vec2(200, -5)))
}

func TestRectFracFillsFromTheEnd(t *testing.T) {
	r := NewRect(0, 0, 100, 100)

	// FracH keeps the bottom portion: a half-full vertical meter.
	h := r.FracH(0.5)
	assert.Equal(t, NewRect(0, 50, 100, 100), h)

	// FracW keeps the left portion.
	w := r.FracW(0.25)
	assert.Equal(t, NewRect(0, 0, 25, 100), w)
}

func TestRectSubRect(t *testing.T) {
	r := NewRect(0, 0, 100, 40)
	assert.Equal(t, NewRect(0, 0, 25, 40), r.SubRect(X, 4, 0))
	assert.Equal(t, NewRect(75, 0, 100, 40), r.SubRect(X, 4, 3))
	assert.Equal(t, NewRect(0, 20, 100, 40), r.SubRect(Y, 2, 1))
}

func TestRectSlices(t *testing.T) {
	r := NewRect(10, 20, 110, 220)
	assert.Equal(t, NewRect(10, 20, 110, 25), r.HSliced(5))
	assert.Equal(t, NewRect(10, 20, 15, 220), r.VSliced(5))
}

func TestRectPaddedAltered(t *testing.T) {
	r := NewRect(10, 10, 90, 90)
	assert.Equal(t, NewRect(5, 5, 95, 95), r.Padded(5))
	assert.Equal(t, NewRect(15, 15, 85, 85), r.Padded(-5))
	assert.Equal(t, NewRect(11, 12, 87, 86), r.Altered(1, 2, -3, -4))
	assert.Equal(t, NewRect(20, 15, 100, 95), r.Translated(10, 5))
}

func TestRectCenteredSquare(t *testing.T) {
	r := NewRect(0, 0, 100, 60)
	assert.Equal(t, Vec2(50, 30), r.Center())
	assert.Equal(t, NewRect(40, 20, 60, 40), r.CenteredInside(20, 20))

	sq := r.Square()
	assert.Equal(t, sq.W(), sq.H())
	assert.Equal(t, float32(60), sq.W())
	assert.Equal(t, Vec2(50, 30), sq.Center())
}

func TestRectUnion(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(5, 5, 20, 30)
	assert.Equal(t, NewRect(0, 0, 20, 30), a.Union(b))
}

func TestRectEmpty(t *testing.T) {
	assert.True(t, Rect{}.IsEmpty())
	assert.True(t, NewRect(10, 10, 10, 20).IsEmpty())
	assert.False(t, NewRect(0, 0, 1, 1).IsEmpty())
}

func TestVector2Ops(t *testing.T) {
	a := Vec2(3, 4)
	assert.Equal(t, Vec2(5, 6), a.Add(Vec2(2, 2)))
	assert.Equal(t, Vec2(1, 2), a.Sub(Vec2(2, 2)))
	assert.Equal(t, Vec2(6, 8), a.MulScalar(2))
	assert.Equal(t, float32(5), Vec2(0, 0).DistanceTo(a))
}

func TestDimsOther(t *testing.T) {
	assert.Equal(t, Y, X.Other())
	assert.Equal(t, X, Y.Other())
}
