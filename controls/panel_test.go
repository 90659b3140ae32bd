// Copyright (c) 2026, The Plugkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package controls

import (
	"testing"

	"github.com/plugkit/plugkit/events"
	"github.com/plugkit/plugkit/geom"
	"github.com/plugkit/plugkit/paint"
	"github.com/stretchr/testify/assert"
)

// gesture is a shorthand left-click event at a point.
func click(x, y float32) *events.Mouse {
	return events.NewMouse(geom.Vec2(x, y), events.Left, 0)
}

// eventStub extends stub with event counters.
type eventStub struct {
	stub
	downs, ups, drags, dbls, wheels, overs, outs int
	midis                                        []MidiMessage
	msgs                                         []any
}

func newEventStub(bounds geom.Rect, params ...int) *eventStub {
	s := &eventStub{}
	s.Init(s, bounds, params...)
	return s
}

func (s *eventStub) OnMouseDown(e *events.Mouse) {
	s.downs++
	s.ControlBase.OnMouseDown(e)
}

func (s *eventStub) OnMouseUp(e *events.Mouse)      { s.ups++ }
func (s *eventStub) OnMouseDrag(e *events.Mouse)    { s.drags++ }
func (s *eventStub) OnMouseDblClick(e *events.Mouse) { s.dbls++ }
func (s *eventStub) OnMouseWheel(e *events.Scroll)  { s.wheels++ }

func (s *eventStub) OnMouseOver(e *events.Mouse) {
	s.overs++
	s.ControlBase.OnMouseOver(e)
}

func (s *eventStub) OnMouseOut() {
	s.outs++
	s.ControlBase.OnMouseOut()
}

func (s *eventStub) OnMidi(msg MidiMessage)     { s.midis = append(s.midis, msg) }
func (s *eventStub) OnMessage(tag int, data any) { s.msgs = append(s.msgs, data) }

func TestPanelRoutesTopmostControl(t *testing.T) {
	p := NewPanel(newFakeHost())
	under := newEventStub(geom.NewRect(0, 0, 100, 100))
	over := newEventStub(geom.NewRect(25, 25, 75, 75))
	p.AttachControl(under)
	p.AttachControl(over)

	p.MouseDown(click(50, 50))
	assert.Equal(t, 0, under.downs)
	assert.Equal(t, 1, over.downs, "later-attached controls are hit first")

	p.MouseDown(click(10, 10))
	assert.Equal(t, 1, under.downs)
}

func TestPanelCapturesGesture(t *testing.T) {
	p := NewPanel(newFakeHost())
	a := newEventStub(geom.NewRect(0, 0, 50, 100))
	b := newEventStub(geom.NewRect(50, 0, 100, 100))
	p.AttachControl(a)
	p.AttachControl(b)

	p.MouseDown(click(25, 50))
	// The drag wanders over b, but a holds the capture.
	p.MouseDrag(events.NewDrag(geom.Vec2(75, 50), geom.Vec2(25, 50), geom.Vec2(25, 50),
		events.Left, 0))
	p.MouseUp(click(75, 50))

	assert.Equal(t, 1, a.drags)
	assert.Equal(t, 1, a.ups)
	assert.Equal(t, 0, b.drags)
	assert.Equal(t, 0, b.ups)

	// The capture is released; drags without a press go nowhere.
	p.MouseDrag(events.NewDrag(geom.Vec2(75, 50), geom.Vec2(25, 50), geom.Vec2(25, 50),
		events.Left, 0))
	assert.Equal(t, 1, a.drags)
}

func TestPanelHiddenControlsAreNotHit(t *testing.T) {
	p := NewPanel(newFakeHost())
	s := newEventStub(geom.NewRect(0, 0, 100, 100))
	p.AttachControl(s)
	s.Hide(true)

	p.MouseDown(click(50, 50))
	assert.Equal(t, 0, s.downs)

	s.Hide(false)
	p.MouseDown(click(50, 50))
	assert.Equal(t, 1, s.downs)
}

func TestPanelGrayedGates(t *testing.T) {
	p := NewPanel(newFakeHost())
	s := newEventStub(geom.NewRect(0, 0, 100, 100))
	p.AttachControl(s)
	s.GrayOut(true)

	p.MouseDown(click(50, 50))
	p.MouseMove(click(50, 50))
	assert.Equal(t, 0, s.downs, "grayed controls ignore clicks")
	assert.Equal(t, 0, s.overs, "grayed controls ignore hover")

	s.SetMouseOverWhenGrayed(true)
	p.MouseMove(click(50, 50))
	assert.Equal(t, 1, s.overs)
	assert.Equal(t, 0, s.downs)

	s.SetMouseEventsWhenGrayed(true)
	p.MouseDown(click(50, 50))
	assert.Equal(t, 1, s.downs)
}

func TestPanelIgnoreMouseFallsThrough(t *testing.T) {
	p := NewPanel(newFakeHost())
	under := newEventStub(geom.NewRect(0, 0, 100, 100))
	cover := newEventStub(geom.NewRect(0, 0, 100, 100))
	cover.SetIgnoreMouse(true)
	p.AttachControl(under)
	p.AttachControl(cover)

	p.MouseDown(click(50, 50))
	assert.Equal(t, 0, cover.downs)
	assert.Equal(t, 1, under.downs)
}

func TestPanelDblAsSingleClick(t *testing.T) {
	p := NewPanel(newFakeHost())
	s := newEventStub(geom.NewRect(0, 0, 100, 100))
	p.AttachControl(s)

	p.MouseDblClick(click(50, 50))
	assert.Equal(t, 1, s.dbls)
	assert.Equal(t, 0, s.downs)

	s.SetDblAsSingleClick(true)
	p.MouseDblClick(click(50, 50))
	assert.Equal(t, 1, s.dbls)
	assert.Equal(t, 1, s.downs, "flagged controls take a double as a fresh press")

	// And the synthesized press captures the gesture.
	p.MouseDrag(events.NewDrag(geom.Vec2(60, 50), geom.Vec2(50, 50), geom.Vec2(50, 50),
		events.Left, 0))
	assert.Equal(t, 1, s.drags)
}

func TestPanelHoverTransitions(t *testing.T) {
	p := NewPanel(newFakeHost())
	a := newEventStub(geom.NewRect(0, 0, 50, 100))
	b := newEventStub(geom.NewRect(50.5, 0, 100, 100))
	p.AttachControl(a)
	p.AttachControl(b)

	p.MouseMove(click(25, 50))
	assert.True(t, a.MouseIsOver())
	assert.Equal(t, 1, a.overs)

	// Moving within the same control keeps reporting over, no out.
	p.MouseMove(click(30, 50))
	assert.Equal(t, 2, a.overs)
	assert.Equal(t, 0, a.outs)

	p.MouseMove(click(75, 50))
	assert.Equal(t, 1, a.outs)
	assert.False(t, a.MouseIsOver())
	assert.True(t, b.MouseIsOver())

	// Off every control.
	p.MouseMove(click(75, 200))
	assert.Equal(t, 1, b.outs)
}

func TestPanelRedrawTick(t *testing.T) {
	p := NewPanel(newFakeHost())
	rec := paint.NewRecorder()
	a := newStub(geom.NewRect(0, 0, 50, 50))
	b := newStub(geom.NewRect(50, 0, 100, 50))
	p.AttachControl(a)
	p.AttachControl(b)

	// Both start dirty.
	assert.Equal(t, 2, p.RedrawTick(rec))
	assert.Equal(t, 1, a.draws)

	// Clean controls are not redrawn.
	assert.Equal(t, 0, p.RedrawTick(rec))
	assert.Equal(t, 1, a.draws)

	a.SetDirty(false, AllValues)
	assert.Equal(t, 1, p.RedrawTick(rec))
	assert.Equal(t, 2, a.draws)
	assert.Equal(t, 1, b.draws)

	// Hidden controls are skipped even when dirty.
	b.Hide(true)
	assert.Equal(t, 0, p.RedrawTick(rec))
}

func TestPanelTags(t *testing.T) {
	p := NewPanel(newFakeHost())
	a := newEventStub(geom.NewRect(0, 0, 10, 10))
	a.SetTag(7)
	b := newEventStub(geom.NewRect(0, 0, 10, 10))
	p.AttachControl(a)
	p.AttachControl(b)

	assert.Same(t, a, p.ControlWithTag(7).(*eventStub))
	assert.Nil(t, p.ControlWithTag(9))

	p.SendMessage(7, "ping")
	assert.Equal(t, []any{"ping"}, a.msgs)
	assert.Empty(t, b.msgs)
}

func TestPanelMidiRouting(t *testing.T) {
	p := NewPanel(newFakeHost())
	listener := newEventStub(geom.NewRect(0, 0, 10, 10))
	listener.SetWantsMidi(true)
	deaf := newEventStub(geom.NewRect(0, 0, 10, 10))
	p.AttachControl(listener)
	p.AttachControl(deaf)

	msg := MidiMessage{Status: 0x93, Data1: 60, Data2: 100}
	p.SendMidi(msg)
	assert.Equal(t, []MidiMessage{msg}, listener.midis)
	assert.Empty(t, deaf.midis)
	assert.Equal(t, byte(3), msg.Channel())
}

func TestPanelGroups(t *testing.T) {
	p := NewPanel(newFakeHost())
	a := newStub(geom.NewRect(0, 0, 10, 10))
	a.SetGroup("eq")
	b := newStub(geom.NewRect(0, 0, 10, 10))
	b.SetGroup("eq")
	c := newStub(geom.NewRect(0, 0, 10, 10))
	p.AttachControl(a)
	p.AttachControl(b)
	p.AttachControl(c)

	p.HideGroup("eq", true)
	assert.True(t, a.IsHidden())
	assert.True(t, b.IsHidden())
	assert.False(t, c.IsHidden())

	p.GrayGroup("eq", true)
	assert.True(t, a.IsGrayed())
	assert.False(t, c.IsGrayed())
}

func TestPanelUpdateFromDelegate(t *testing.T) {
	host := newFakeHost()
	p := NewPanel(host)
	a := newStub(geom.NewRect(0, 0, 10, 10), 0)
	b := newStub(geom.NewRect(0, 0, 10, 10), 1, 0)
	p.AttachControl(a)
	p.AttachControl(b)
	host.notes = nil

	p.UpdateFromDelegate(0, 0.4)
	assert.Equal(t, float32(0.4), a.Value(0))
	assert.Equal(t, float32(0.4), b.Value(1))
	assert.Equal(t, float32(0), b.Value(0))
	assert.Empty(t, host.notes, "host pushes never echo back")
}

func TestPanelRescaleInvalidatesLayers(t *testing.T) {
	p := NewPanel(newFakeHost())
	rec := paint.NewRecorder()
	k := NewLayerKnob(geom.NewRect(0, 0, 64, 64), 0, func(pr paint.Painter, bounds geom.Rect) {
		pr.FillRect(nil, bounds)
	})
	p.AttachControl(k)

	p.RedrawTick(rec)
	assert.Equal(t, "StartLayer", rec.Op(0), "first draw renders the face into a layer")

	// A clean redraw reuses the cached layer.
	rec.Reset()
	k.SetDirty(false, AllValues)
	p.RedrawTick(rec)
	assert.Equal(t, "DrawRotatedLayer", rec.Op(0))

	// A scale change invalidates the cache and forces a rebuild.
	rec.SetScale(2)
	rec.Reset()
	p.SetScale(2)
	p.RedrawTick(rec)
	assert.Equal(t, "StartLayer", rec.Op(0))

	// So does a resize.
	rec.Reset()
	k.SetBounds(geom.NewRect(0, 0, 32, 32))
	p.RedrawTick(rec)
	assert.Equal(t, "StartLayer", rec.Op(0))
}

func TestPanelClearStopsAnimations(t *testing.T) {
	p := NewPanel(newFakeHost())
	s := newStub(geom.NewRect(0, 0, 10, 10))
	p.AttachControl(s)
	s.SetAnimationAndStart(func(c Control) {}, DefaultAnimationDuration)

	p.Clear()
	assert.Equal(t, 0, p.NumControls())
	assert.Nil(t, s.Animation())
}

// recPrompter records prompt requests.
type recPrompter struct {
	prompts []int
}

func (r *recPrompter) PromptUserInput(c Control, valIdx int, bounds geom.Rect) {
	r.prompts = append(r.prompts, valIdx)
}

func TestPromptGating(t *testing.T) {
	host := newFakeHost()
	pm := &recPrompter{}
	p := NewPanel(host)
	p.SetPrompter(pm)

	s := newStub(geom.NewRect(0, 0, 10, 10), 0)
	p.AttachControl(s)

	// Prompting is disabled by default.
	s.PromptUserInput(0)
	assert.Empty(t, pm.prompts)

	s.SetDisablePrompt(false)
	s.PromptUserInput(0)
	assert.Equal(t, []int{0}, pm.prompts)

	// Unlinked slots never prompt.
	u := newStub(geom.NewRect(0, 0, 10, 10))
	u.SetDisablePrompt(false)
	p.AttachControl(u)
	u.PromptUserInput(0)
	assert.Equal(t, []int{0}, pm.prompts)
}

func TestCaptionPromptsAndParsesEntry(t *testing.T) {
	host := newFakeHost()
	pm := &recPrompter{}
	p := NewPanel(host)
	p.SetPrompter(pm)

	c := NewCaption(geom.NewRect(0, 0, 80, 20), 0)
	p.AttachControl(c)

	p.MouseDown(click(40, 10))
	assert.Equal(t, []int{0}, pm.prompts)

	c.OnTextEntry("-12", 0)
	gain := host.params[0]
	assert.InDelta(t, gain.ToNormalized(-12), c.Value(0), 1e-6)
	assert.Equal(t, []note{{0, c.Value(0)}}, host.notes)

	// Garbage input is dropped.
	before := c.Value(0)
	c.OnTextEntry("loud", 0)
	assert.Equal(t, before, c.Value(0))
}

func TestPopupSelectionSetsSteppedValue(t *testing.T) {
	host := newFakeHost()
	p := NewPanel(host)
	s := newStub(geom.NewRect(0, 0, 10, 10), 2)
	p.AttachControl(s)
	host.notes = nil

	s.OnPopupSelection(2, 0)
	assert.Equal(t, float32(1), s.Value(0))
	assert.Len(t, host.notes, 1)

	// A dismissed menu changes nothing.
	s.OnPopupSelection(NoValIdx, 0)
	assert.Equal(t, float32(1), s.Value(0))
	assert.Len(t, host.notes, 1)
}
