// Copyright (c) 2026, The Plugkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"testing"

	"github.com/plugkit/plugkit/geom"
	"github.com/stretchr/testify/assert"
)

func TestMouseDeltas(t *testing.T) {
	e := NewDrag(geom.Vec2(30, 40), geom.Vec2(10, 10), geom.Vec2(5, 5), Left, 0)
	assert.Equal(t, geom.Vec2(20, 30), e.Delta())
	assert.Equal(t, geom.Vec2(25, 35), e.StartDelta())
}

func TestNewMouseStartsAtPos(t *testing.T) {
	e := NewMouse(geom.Vec2(7, 9), Right, Shift)
	assert.Equal(t, geom.Vector2{}, e.Delta())
	assert.Equal(t, geom.Vector2{}, e.StartDelta())
	assert.Equal(t, Right, e.Button)
}

func TestModifiersHasAny(t *testing.T) {
	m := Shift | Alt
	assert.True(t, m.HasAny(Shift))
	assert.True(t, m.HasAny(Control, Alt))
	assert.False(t, m.HasAny(Control, Meta))
	assert.False(t, Modifiers(0).HasAny(Shift))
}

func TestScrollCarriesDelta(t *testing.T) {
	e := NewScroll(geom.Vec2(1, 2), -3, Control)
	assert.Equal(t, float32(-3), e.Delta)
	assert.True(t, e.Mods.HasAny(Control))
}
