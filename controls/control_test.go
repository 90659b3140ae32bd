// Copyright (c) 2026, The Plugkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package controls

import (
	"testing"
	"time"

	"github.com/plugkit/plugkit/geom"
	"github.com/plugkit/plugkit/paint"
	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Unix(1000, 0)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type note struct {
	param int
	value float32
}

// fakeHost is a recording [Delegate].
type fakeHost struct {
	params map[int]*Param
	notes  []note
}

func newFakeHost() *fakeHost {
	return &fakeHost{params: map[int]*Param{
		0: {Name: "Gain", Min: -70, Max: 12, Default: 0, Unit: "dB"},
		1: {Name: "Pan", Min: -1, Max: 1, Default: 0},
		2: {Name: "Mode", Min: 0, Max: 2, Step: 1, Default: 1},
	}}
}

func (h *fakeHost) Param(paramIdx int) *Param { return h.params[paramIdx] }

func (h *fakeHost) NotifyParameterChanged(paramIdx int, value float32) {
	h.notes = append(h.notes, note{paramIdx, value})
}

// stub is a minimal control recording its lifecycle hooks.
type stub struct {
	ControlBase
	inits    int
	resizes  int
	rescales int
	draws    int
	endAnims int
}

func newStub(bounds geom.Rect, params ...int) *stub {
	s := &stub{}
	s.Init(s, bounds, params...)
	return s
}

func (s *stub) Draw(pr paint.Painter) { s.draws++ }

func (s *stub) OnInit() { s.inits++ }

func (s *stub) OnResize() { s.resizes++ }

func (s *stub) OnRescale() { s.rescales++ }

func (s *stub) OnEndAnimation() {
	s.endAnims++
	s.ControlBase.OnEndAnimation()
}

func TestValueClamp(t *testing.T) {
	s := newStub(geom.NewRect(0, 0, 100, 100))
	s.SetValue(1.5, 0)
	assert.Equal(t, float32(1), s.Value(0))
	s.SetValue(-0.2, 0)
	assert.Equal(t, float32(0), s.Value(0))
	s.SetValue(0.25, 0)
	assert.Equal(t, float32(0.25), s.Value(0))
}

func TestNewControlIsDirtyAndUsableUnattached(t *testing.T) {
	s := newStub(geom.NewRect(0, 0, 10, 10), 0)
	assert.True(t, s.IsDirty())
	assert.Nil(t, s.Param(0))
	// No delegate yet: marking dirty with notification must not panic.
	s.SetValueFromUserInput(0.5, 0)
	assert.Equal(t, float32(0.5), s.Value(0))
}

func TestSetDirtyNotifiesInSlotOrder(t *testing.T) {
	host := newFakeHost()
	p := NewPanel(host)
	s := newStub(geom.NewRect(0, 0, 10, 10), 2, 0, 1)
	p.AttachControl(s)

	s.SetValue(0.1, 0)
	s.SetValue(0.2, 1)
	s.SetValue(0.3, 2)
	actions := 0
	s.SetAction(func(c Control) { actions++ })

	s.SetDirty(true, AllValues)
	assert.Equal(t, []note{{2, 0.1}, {0, 0.2}, {1, 0.3}}, host.notes)
	assert.Equal(t, 1, actions, "action fires once per marking, not per value")
	assert.True(t, s.IsDirty())
}

func TestSetDirtySingleValue(t *testing.T) {
	host := newFakeHost()
	p := NewPanel(host)
	s := newStub(geom.NewRect(0, 0, 10, 10), 0, 1)
	p.AttachControl(s)

	s.SetValue(0.7, 1)
	s.SetDirty(true, 1)
	assert.Equal(t, []note{{1, 0.7}}, host.notes)
}

func TestUnlinkedSlotDoesNotNotify(t *testing.T) {
	host := newFakeHost()
	p := NewPanel(host)
	s := newStub(geom.NewRect(0, 0, 10, 10), NoParameter, 1)
	p.AttachControl(s)

	s.SetDirty(true, AllValues)
	assert.Equal(t, []note{{1, 0}}, host.notes)
}

func TestSetValueFromDelegateDoesNotEcho(t *testing.T) {
	host := newFakeHost()
	p := NewPanel(host)
	s := newStub(geom.NewRect(0, 0, 10, 10), 0)
	p.AttachControl(s)
	s.SetClean()

	s.SetValueFromDelegate(0.6, 0)
	assert.Empty(t, host.notes, "host edits must not loop back to the host")
	assert.Equal(t, float32(0.6), s.Value(0))
	assert.True(t, s.IsDirty())

	s.SetValueFromUserInput(0.8, 0)
	assert.Equal(t, []note{{0, 0.8}}, host.notes)
}

func TestSetValueToDefault(t *testing.T) {
	host := newFakeHost()
	p := NewPanel(host)
	s := newStub(geom.NewRect(0, 0, 10, 10), 2)
	p.AttachControl(s)
	s.SetValue(1, 0)
	host.notes = nil

	s.SetValueToDefault(0)
	assert.InDelta(t, 0.5, s.Value(0), 1e-6) // Mode default 1 of 0..2
	assert.Len(t, host.notes, 1)
}

func TestLinkedToParamFirstMatch(t *testing.T) {
	s := newStub(geom.NewRect(0, 0, 10, 10), 5, 7, 5)
	assert.Equal(t, 0, s.LinkedToParam(5))
	assert.Equal(t, 1, s.LinkedToParam(7))
	assert.Equal(t, NoValIdx, s.LinkedToParam(9))
}

func TestAttachLifecycleOrder(t *testing.T) {
	host := newFakeHost()
	p := NewPanel(host)
	s := newStub(geom.NewRect(0, 0, 10, 10), 0)
	assert.Equal(t, 0, s.inits)
	p.AttachControl(s)
	assert.Equal(t, 1, s.inits)
	assert.Equal(t, 1, s.resizes)
	assert.Equal(t, 1, s.rescales)
	assert.Same(t, host, s.Delegate().(*fakeHost))
	assert.Same(t, p, s.Panel())
}

func TestHitUsesTargetBounds(t *testing.T) {
	s := newStub(geom.NewRect(10, 10, 30, 30))
	assert.True(t, s.IsHit(geom.Vec2(15, 15)))
	assert.False(t, s.IsHit(geom.Vec2(5, 5)))

	// A padded grab area extends the hit region past the drawn bounds.
	s.SetTargetBounds(geom.NewRect(0, 0, 40, 40))
	assert.True(t, s.IsHit(geom.Vec2(5, 5)))
	assert.False(t, s.IsHit(geom.Vec2(45, 45)))
}

func TestSetBoundsRunsResize(t *testing.T) {
	s := newStub(geom.NewRect(0, 0, 10, 10))
	s.mouseIsOver = true
	s.SetClean()
	s.SetBounds(geom.NewRect(0, 0, 20, 20))
	assert.Equal(t, 1, s.resizes)
	assert.False(t, s.MouseIsOver())
	assert.True(t, s.IsDirty())
}

func TestAnimationEndFiresOnce(t *testing.T) {
	clk := newFakeClock()
	s := newStub(geom.NewRect(0, 0, 10, 10))
	s.SetClock(clk)
	ticks := 0
	s.SetAnimationAndStart(func(c Control) { ticks++ }, 100*time.Millisecond)

	clk.Advance(50 * time.Millisecond)
	assert.True(t, s.IsDirty())
	assert.Equal(t, 1, ticks)
	assert.Equal(t, 0, s.endAnims)
	assert.InDelta(t, 0.5, s.AnimationProgress(), 1e-6)

	clk.Advance(50 * time.Millisecond)
	assert.True(t, s.IsDirty())
	assert.Equal(t, 1, s.endAnims)
	assert.Nil(t, s.Animation())

	// The end hook requested a final redraw; after that the control
	// goes quiet no matter how often it is polled.
	assert.True(t, s.IsDirty())
	s.SetClean()
	clk.Advance(time.Second)
	assert.False(t, s.IsDirty())
	assert.Equal(t, 1, s.endAnims)
	assert.Equal(t, 2, ticks)
}

func TestAnimationTicksOncePerInstant(t *testing.T) {
	clk := newFakeClock()
	s := newStub(geom.NewRect(0, 0, 10, 10))
	s.SetClock(clk)
	ticks := 0
	s.SetAnimationAndStart(func(c Control) { ticks++ }, 100*time.Millisecond)

	clk.Advance(10 * time.Millisecond)
	assert.True(t, s.IsDirty())
	assert.True(t, s.IsDirty())
	assert.True(t, s.IsDirty())
	assert.Equal(t, 1, ticks, "repeated polls within one instant tick once")

	clk.Advance(10 * time.Millisecond)
	s.IsDirty()
	assert.Equal(t, 2, ticks)
}

func TestAnimationProgressUnclamped(t *testing.T) {
	clk := newFakeClock()
	s := newStub(geom.NewRect(0, 0, 10, 10))
	s.SetClock(clk)
	s.SetAnimation(func(c Control) {})
	s.StartAnimation(100 * time.Millisecond)
	clk.Advance(150 * time.Millisecond)
	assert.InDelta(t, 1.5, s.AnimationProgress(), 1e-6)
}

func TestStartAnimationRejectsZeroDuration(t *testing.T) {
	s := newStub(geom.NewRect(0, 0, 10, 10))
	assert.Panics(t, func() { s.StartAnimation(0) })
}

func TestValueIndexOutOfRangePanics(t *testing.T) {
	s := newStub(geom.NewRect(0, 0, 10, 10), 0)
	assert.Panics(t, func() { s.Value(1) })
	assert.Panics(t, func() { s.SetValue(0.5, -2) })
}

func TestSnapToMouse(t *testing.T) {
	host := newFakeHost()
	p := NewPanel(host)
	s := newStub(geom.NewRect(0, 0, 100, 200), 0)
	p.AttachControl(s)

	// Vertical tracks fill bottom-up.
	s.SnapToMouse(geom.Vec2(50, 50), geom.Y, s.Bounds(), 0, 1)
	assert.InDelta(t, 0.75, s.Value(0), 1e-6)
	assert.Equal(t, []note{{0, 0.75}}, host.notes)

	// Points outside the track constrain to its edge.
	s.SnapToMouse(geom.Vec2(50, 500), geom.Y, s.Bounds(), 0, 1)
	assert.Equal(t, float32(0), s.Value(0))

	// Projection rounds to a 0.001 grid.
	s.SnapToMouse(geom.Vec2(50, 137), geom.Y, s.Bounds(), 0, 1)
	assert.InDelta(t, 0.315, s.Value(0), 1e-6)

	// Horizontal tracks fill left to right.
	s.SnapToMouse(geom.Vec2(25, 10), geom.X, s.Bounds(), 0, 1)
	assert.InDelta(t, 0.25, s.Value(0), 1e-6)
}

func TestHitTestInclusiveBounds(t *testing.T) {
	s := newStub(geom.NewRect(10, 10, 20, 20))
	assert.True(t, s.IsHit(geom.Vec2(10, 10)))
	assert.True(t, s.IsHit(geom.Vec2(20, 20)))
	assert.False(t, s.IsHit(geom.Vec2(20.5, 20)))
	assert.Equal(t, NoValIdx, s.ValIdxForPos(geom.Vec2(15, 15)))
}
