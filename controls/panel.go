// Copyright (c) 2026, The Plugkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package controls

import (
	"log/slog"

	"github.com/plugkit/plugkit/events"
	"github.com/plugkit/plugkit/geom"
	"github.com/plugkit/plugkit/paint"
)

// Panel owns a set of controls: it attaches them to the delegate, runs
// the redraw tick, routes pointer and key events with mouse capture,
// and fans out messages, MIDI and group operations. Controls are drawn
// in attach order, so later controls paint on top and are hit first.
type Panel struct {
	delegate Delegate
	prompter Prompter
	controls []Control
	scale    float32

	// capture receives drags and the matching up event after a down.
	capture Control
	// over is the control currently under the pointer.
	over Control
}

// NewPanel returns a panel that attaches its controls to the given
// delegate. The delegate may be nil for display-only panels.
func NewPanel(delegate Delegate) *Panel {
	return &Panel{delegate: delegate, scale: 1}
}

// SetPrompter installs the input surface used by
// [ControlBase.PromptUserInput].
func (p *Panel) SetPrompter(pm Prompter) { p.prompter = pm }

// AttachControl adds the control on top of the panel and runs its
// attach lifecycle: OnInit, then OnResize, then OnRescale. It returns
// the control for chained configuration.
func (p *Panel) AttachControl(c Control) Control {
	p.controls = append(p.controls, c)
	c.Base().attach(p.delegate, p)
	return c
}

// NumControls returns the number of attached controls.
func (p *Panel) NumControls() int { return len(p.controls) }

// Control returns the i-th attached control.
func (p *Panel) Control(i int) Control { return p.controls[i] }

// ControlWithTag returns the first control carrying the tag, or nil.
func (p *Panel) ControlWithTag(tag int) Control {
	for _, c := range p.controls {
		if c.Base().Tag() == tag {
			return c
		}
	}
	return nil
}

// Clear detaches every control, stopping animations and releasing
// cached layers.
func (p *Panel) Clear() {
	for _, c := range p.controls {
		c.Base().release()
	}
	p.controls = nil
	p.capture = nil
	p.over = nil
}

// Scale returns the backing-store scale.
func (p *Panel) Scale() float32 { return p.scale }

// SetScale records a new backing-store scale and tells every control,
// so cached layers rendered at the old scale are invalidated.
func (p *Panel) SetScale(scale float32) {
	if scale == p.scale {
		return
	}
	p.scale = scale
	for _, c := range p.controls {
		c.OnRescale()
		c.Base().SetDirty(false, AllValues)
	}
}

// SetAllDirty requests a redraw of every control.
func (p *Panel) SetAllDirty() {
	for _, c := range p.controls {
		c.Base().SetDirty(false, AllValues)
	}
}

// RedrawTick is the render loop body: every visible dirty control is
// drawn and then marked clean. Polling IsDirty here is also what ticks
// animations. It returns the number of controls drawn.
func (p *Panel) RedrawTick(pr paint.Painter) int {
	n := 0
	for _, c := range p.controls {
		cb := c.Base()
		if cb.IsHidden() {
			continue
		}
		if cb.IsDirty() {
			c.Draw(pr)
			cb.SetClean()
			n++
		}
	}
	return n
}

// DrawAll unconditionally draws every visible control, for first paint
// and full-damage repaints.
func (p *Panel) DrawAll(pr paint.Painter) {
	for _, c := range p.controls {
		cb := c.Base()
		if cb.IsHidden() {
			continue
		}
		// Tick the animation even on a full repaint.
		cb.IsDirty()
		c.Draw(pr)
		cb.SetClean()
	}
}

// controlAt returns the topmost control whose interactive region
// contains pos, skipping hidden and mouse-transparent controls. The
// grayed gate is event-specific, so callers apply it.
func (p *Panel) controlAt(pos geom.Vector2) Control {
	for i := len(p.controls) - 1; i >= 0; i-- {
		c := p.controls[i]
		cb := c.Base()
		if cb.IsHidden() || cb.IgnoresMouse() {
			continue
		}
		if c.IsHit(pos) {
			return c
		}
	}
	return nil
}

// clickTarget is controlAt with the grayed click gate: a grayed control
// swallows the click unless it opted into mouse events while grayed.
func (p *Panel) clickTarget(pos geom.Vector2) Control {
	c := p.controlAt(pos)
	if c == nil {
		return nil
	}
	if c.Base().IsGrayed() && !c.Base().MouseEventsWhenGrayed() {
		return nil
	}
	return c
}

// MouseDown routes a press to the control under the pointer and
// captures it for the rest of the gesture.
func (p *Panel) MouseDown(e *events.Mouse) {
	c := p.clickTarget(e.Pos)
	if c == nil {
		return
	}
	slog.Debug("mouse down", "pos", e.Pos, "control", c.Base().Tag())
	p.capture = c
	c.OnMouseDown(e)
}

// MouseUp completes a gesture on the captured control and releases the
// capture.
func (p *Panel) MouseUp(e *events.Mouse) {
	c := p.capture
	p.capture = nil
	if c == nil {
		c = p.clickTarget(e.Pos)
	}
	if c != nil {
		c.OnMouseUp(e)
	}
}

// MouseDrag routes drag motion to the captured control only.
func (p *Panel) MouseDrag(e *events.Mouse) {
	if p.capture != nil {
		p.capture.OnMouseDrag(e)
	}
}

// MouseDblClick routes a double click. Controls flagged double-as-
// single get a fresh OnMouseDown, with capture, instead.
func (p *Panel) MouseDblClick(e *events.Mouse) {
	c := p.clickTarget(e.Pos)
	if c == nil {
		return
	}
	if c.Base().DblAsSingleClick() {
		p.capture = c
		c.OnMouseDown(e)
		return
	}
	c.OnMouseDblClick(e)
}

// MouseWheel routes a scroll to the control under the pointer.
func (p *Panel) MouseWheel(e *events.Scroll) {
	c := p.controlAt(e.Pos)
	if c == nil {
		return
	}
	if c.Base().IsGrayed() && !c.Base().MouseEventsWhenGrayed() {
		return
	}
	c.OnMouseWheel(e)
}

// MouseMove maintains hover state: the control left gets OnMouseOut,
// the control entered gets OnMouseOver, and the hovered control keeps
// receiving OnMouseOver while the pointer moves inside it. Grayed
// controls hover only if they opted in.
func (p *Panel) MouseMove(e *events.Mouse) {
	c := p.controlAt(e.Pos)
	if c != nil && c.Base().IsGrayed() && !c.Base().MouseOverWhenGrayed() {
		c = nil
	}
	if c != p.over && p.over != nil {
		p.over.OnMouseOut()
	}
	p.over = c
	if c != nil {
		c.OnMouseOver(e)
	}
}

// KeyDown offers a key press to the control under the pointer and
// reports whether it was consumed.
func (p *Panel) KeyDown(pos geom.Vector2, e *events.Key) bool {
	if c := p.clickTarget(pos); c != nil {
		return c.OnKeyDown(e)
	}
	return false
}

// KeyUp offers a key release to the control under the pointer.
func (p *Panel) KeyUp(pos geom.Vector2, e *events.Key) bool {
	if c := p.clickTarget(pos); c != nil {
		return c.OnKeyUp(e)
	}
	return false
}

// SendMessage delivers data to every control carrying the tag.
func (p *Panel) SendMessage(tag int, data any) {
	for _, c := range p.controls {
		if c.Base().Tag() == tag {
			c.OnMessage(tag, data)
		}
	}
}

// SendMidi delivers a MIDI message to every control that wants MIDI.
func (p *Panel) SendMidi(msg MidiMessage) {
	for _, c := range p.controls {
		if c.Base().WantsMidi() {
			c.OnMidi(msg)
		}
	}
}

// UpdateFromDelegate pushes a host-side parameter change into every
// control linked to the parameter, without echoing back to the host.
func (p *Panel) UpdateFromDelegate(paramIdx int, value float32) {
	for _, c := range p.controls {
		if v := c.Base().LinkedToParam(paramIdx); v != NoValIdx {
			c.Base().SetValueFromDelegate(value, v)
		}
	}
}

// ForGroup runs fn on every control in the named group.
func (p *Panel) ForGroup(group string, fn func(c Control)) {
	for _, c := range p.controls {
		if c.Base().Group() == group {
			fn(c)
		}
	}
}

// HideGroup hides or shows every control in the named group.
func (p *Panel) HideGroup(group string, hide bool) {
	p.ForGroup(group, func(c Control) { c.Base().Hide(hide) })
}

// GrayGroup grays or ungrays every control in the named group.
func (p *Panel) GrayGroup(group string, gray bool) {
	p.ForGroup(group, func(c Control) { c.Base().GrayOut(gray) })
}

func (p *Panel) promptUserInput(c Control, valIdx int, bounds geom.Rect) {
	if p.prompter == nil {
		slog.Debug("prompt requested with no prompter installed", "valIdx", valIdx)
		return
	}
	p.prompter.PromptUserInput(c, valIdx, bounds)
}
