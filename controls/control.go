// Copyright (c) 2026, The Plugkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package controls implements the widget state machine of a plugin UI:
// controls hold normalized parameter values, track dirtiness for the
// redraw loop, run fixed-duration animations and route pointer gestures
// into value edits that are reported back to a [Delegate].
package controls

import (
	"log/slog"
	"time"

	"github.com/chewxy/math32"
	"github.com/plugkit/plugkit/events"
	"github.com/plugkit/plugkit/geom"
	"github.com/plugkit/plugkit/paint"
)

// Control is the interface satisfied by every widget. [ControlBase]
// provides defaults for everything except drawing; concrete controls embed
// it and override what they need. The embedded base dispatches through its
// This field so overridden methods are reached from base code.
type Control interface {
	// Base returns the embedded [ControlBase].
	Base() *ControlBase

	// Draw renders the control into its bounds.
	Draw(pr paint.Painter)

	// IsHit reports whether the point is inside the control's
	// interactive region. The default tests the bounds rectangle.
	IsHit(pos geom.Vector2) bool

	// ValIdxForPos maps a point to the value slot it addresses, or
	// NoValIdx. Multi-value controls override this with a
	// deterministic partition of their bounds.
	ValIdxForPos(pos geom.Vector2) int

	OnMouseDown(e *events.Mouse)
	OnMouseUp(e *events.Mouse)
	OnMouseDrag(e *events.Mouse)
	OnMouseDblClick(e *events.Mouse)
	OnMouseWheel(e *events.Scroll)
	OnMouseOver(e *events.Mouse)
	OnMouseOut()

	// OnKeyDown and OnKeyUp report whether the key was consumed.
	OnKeyDown(e *events.Key) bool
	OnKeyUp(e *events.Key) bool

	// OnInit is called once, after the control has been attached to a
	// panel and its delegate is available.
	OnInit()

	// OnResize is called after the bounds change so the control can
	// recompute derived geometry and invalidate cached layers.
	OnResize()

	// OnRescale is called when the backing-store scale changes.
	OnRescale()

	// OnEndAnimation fires exactly once when a running animation
	// reaches its duration. The default clears the animation and
	// requests a final redraw.
	OnEndAnimation()

	// OnMessage receives arbitrary data sent to this control's tag.
	OnMessage(tag int, data any)

	// OnMidi receives raw MIDI routed to controls that want it.
	OnMidi(msg MidiMessage)

	// OnPopupSelection completes a prompt that used a popup menu.
	// itemIdx is NoValIdx if the menu was dismissed.
	OnPopupSelection(itemIdx, valIdx int)

	// OnTextEntry completes a prompt that used a text box.
	OnTextEntry(text string, valIdx int)
}

// ActionFunc runs when a control fires its action, after parameter
// notification in [ControlBase.SetDirty].
type ActionFunc func(c Control)

// AnimationFunc is ticked from [ControlBase.IsDirty] while an animation
// is active. It typically reads [ControlBase.AnimationProgress] and
// updates visual state.
type AnimationFunc func(c Control)

// Clock abstracts time for the animation machinery so tests can drive
// it deterministically.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// paramValue is one value slot of a control: a normalized value and the
// index of the host parameter it is linked to, or NoParameter.
type paramValue struct {
	idx   int
	value float32
}

// ControlBase implements the state machine shared by all controls:
// value storage and clamping, the dirty protocol, animation, flags and
// the attach lifecycle. Concrete controls embed it.
type ControlBase struct {
	// This is the concrete control, for virtual dispatch from base
	// code. Set by Init.
	This Control

	bounds       geom.Rect
	targetBounds geom.Rect
	vals         []paramValue
	tag          int
	group        string

	dirty  bool
	hidden bool
	grayed bool

	disablePrompt    bool
	dblAsSingleClick bool
	moWhenGrayed     bool
	meWhenGrayed     bool
	ignoreMouse      bool
	wantsMidi        bool

	mouseIsOver  bool
	mouseDownPos geom.Vector2

	action ActionFunc

	animation    AnimationFunc
	animStart    time.Time
	animDuration time.Duration
	lastAnimTick time.Time
	clock        Clock

	delegate Delegate
	panel    *Panel
}

// Init wires the base for its concrete control and establishes the value
// slots, one per given parameter index. With no indices the control gets
// a single unlinked slot. A freshly constructed control is dirty so it is
// drawn on the first tick, and is usable before any delegate is attached.
func (cb *ControlBase) Init(this Control, bounds geom.Rect, paramIdxs ...int) {
	cb.This = this
	cb.bounds = bounds
	cb.targetBounds = bounds
	cb.dirty = true
	cb.disablePrompt = true
	cb.tag = NoTag
	cb.clock = systemClock{}
	if len(paramIdxs) == 0 {
		cb.vals = []paramValue{{idx: NoParameter}}
		return
	}
	cb.vals = make([]paramValue, len(paramIdxs))
	for i, pi := range paramIdxs {
		cb.vals[i] = paramValue{idx: pi}
	}
}

// Base returns cb itself, satisfying [Control].
func (cb *ControlBase) Base() *ControlBase { return cb }

// SetClock replaces the animation clock. Tests use this to drive
// animations deterministically.
func (cb *ControlBase) SetClock(clk Clock) { cb.clock = clk }

// attach gives the control its delegate and owning panel and runs the
// init hooks in order.
func (cb *ControlBase) attach(dlg Delegate, p *Panel) {
	cb.delegate = dlg
	cb.panel = p
	cb.This.OnInit()
	cb.This.OnResize()
	cb.This.OnRescale()
}

// Delegate returns the attached delegate, or nil before attachment.
func (cb *ControlBase) Delegate() Delegate { return cb.delegate }

// Panel returns the owning panel, or nil before attachment.
func (cb *ControlBase) Panel() *Panel { return cb.panel }

func (cb *ControlBase) valCheck(valIdx int) {
	if valIdx < 0 || valIdx >= len(cb.vals) {
		panic("controls: value index out of range")
	}
}

// NumValues returns the number of value slots.
func (cb *ControlBase) NumValues() int { return len(cb.vals) }

// Value returns the normalized value of the given slot.
func (cb *ControlBase) Value(valIdx int) float32 {
	cb.valCheck(valIdx)
	return cb.vals[valIdx].value
}

// SetValue stores a normalized value, clamped to [0..1]. It is quiet:
// no dirty marking and no notification. Gesture code follows it with
// [ControlBase.SetDirty].
func (cb *ControlBase) SetValue(value float32, valIdx int) {
	cb.valCheck(valIdx)
	cb.vals[valIdx].value = math32.Min(math32.Max(value, 0), 1)
}

// SetValueFromDelegate applies a value change that originated in the
// host. The control redraws but does not notify the delegate back,
// which would otherwise loop host -> control -> host.
func (cb *ControlBase) SetValueFromDelegate(value float32, valIdx int) {
	cb.SetValue(value, valIdx)
	cb.SetDirty(false, valIdx)
}

// SetValueFromUserInput applies a value change typed or picked by the
// user through a prompt: the control redraws and the delegate is
// notified, as for any other user edit.
func (cb *ControlBase) SetValueFromUserInput(value float32, valIdx int) {
	cb.SetValue(value, valIdx)
	cb.SetDirty(true, valIdx)
}

// SetValueToDefault resets the slot (or, with AllValues, every linked
// slot) to its parameter's default and notifies. Unlinked slots are
// left alone.
func (cb *ControlBase) SetValueToDefault(valIdx int) {
	changed := false
	cb.forValIdx(valIdx, func(v int) {
		if p := cb.Param(v); p != nil {
			cb.SetValue(p.DefaultNormalized(), v)
			changed = true
		}
	})
	if changed {
		cb.SetDirty(true, valIdx)
	}
}

// ParamIdx returns the parameter index linked to the slot, or
// NoParameter.
func (cb *ControlBase) ParamIdx(valIdx int) int {
	cb.valCheck(valIdx)
	return cb.vals[valIdx].idx
}

// SetParamIdx relinks a slot to another parameter and requests a
// redraw.
func (cb *ControlBase) SetParamIdx(paramIdx, valIdx int) {
	cb.valCheck(valIdx)
	cb.vals[valIdx].idx = paramIdx
	cb.SetDirty(false, valIdx)
}

// LinkedToParam returns the first value slot linked to the given
// parameter index, or NoValIdx.
func (cb *ControlBase) LinkedToParam(paramIdx int) int {
	for i := range cb.vals {
		if cb.vals[i].idx == paramIdx {
			return i
		}
	}
	return NoValIdx
}

// Param returns the metadata of the parameter linked to the slot, or
// nil if the slot is unlinked or no delegate is attached.
func (cb *ControlBase) Param(valIdx int) *Param {
	cb.valCheck(valIdx)
	if cb.vals[valIdx].idx == NoParameter || cb.delegate == nil {
		return nil
	}
	return cb.delegate.Param(cb.vals[valIdx].idx)
}

// forValIdx runs fn for the addressed slot, or for every slot in
// ascending index order when valIdx is AllValues.
func (cb *ControlBase) forValIdx(valIdx int, fn func(v int)) {
	if valIdx == AllValues {
		for i := range cb.vals {
			fn(i)
		}
		return
	}
	cb.valCheck(valIdx)
	fn(valIdx)
}

// SetDirty marks the control for redraw. With triggerAction it also
// notifies the delegate of every addressed linked slot, in ascending
// slot order, and then fires the control's action once.
func (cb *ControlBase) SetDirty(triggerAction bool, valIdx int) {
	cb.dirty = true
	if !triggerAction {
		return
	}
	cb.forValIdx(valIdx, func(v int) {
		if idx := cb.vals[v].idx; idx > NoParameter && cb.delegate != nil {
			cb.delegate.NotifyParameterChanged(idx, cb.vals[v].value)
		}
	})
	if cb.action != nil {
		cb.action(cb.This)
	}
}

// SetClean clears the dirty flag. Only the panel's redraw tick calls
// this, after drawing.
func (cb *ControlBase) SetClean() { cb.dirty = false }

// IsDirty reports whether the control needs drawing. It is also the
// animation tick: while an animation is active it advances it at most
// once per clock instant, fires [Control.OnEndAnimation] when the
// elapsed time reaches the duration, and always reports dirty.
func (cb *ControlBase) IsDirty() bool {
	if cb.animation != nil {
		now := cb.clock.Now()
		if !now.Equal(cb.lastAnimTick) {
			cb.lastAnimTick = now
			cb.animation(cb.This)
			if cb.animation != nil && cb.AnimationProgress() >= 1 {
				cb.This.OnEndAnimation()
			}
		}
		return true
	}
	return cb.dirty
}

// Animation returns the active animation func, or nil.
func (cb *ControlBase) Animation() AnimationFunc { return cb.animation }

// SetAnimation installs an animation func without starting it.
// Passing nil clears any animation.
func (cb *ControlBase) SetAnimation(fn AnimationFunc) { cb.animation = fn }

// StartAnimation starts the installed animation func with the given
// duration, which must be positive.
func (cb *ControlBase) StartAnimation(duration time.Duration) {
	if duration <= 0 {
		panic("controls: animation duration must be positive")
	}
	cb.animStart = cb.clock.Now()
	cb.animDuration = duration
	cb.lastAnimTick = time.Time{}
}

// SetAnimationAndStart installs fn and starts it.
func (cb *ControlBase) SetAnimationAndStart(fn AnimationFunc, duration time.Duration) {
	cb.animation = fn
	cb.StartAnimation(duration)
}

// AnimationProgress returns elapsed/duration for the active animation.
// It is not clamped; values above 1 mean the animation has run past its
// duration. Without an active animation it returns 0.
func (cb *ControlBase) AnimationProgress() float32 {
	if cb.animation == nil || cb.animDuration <= 0 {
		return 0
	}
	return float32(cb.clock.Now().Sub(cb.animStart)) / float32(cb.animDuration)
}

// OnEndAnimation clears the animation and requests one final redraw so
// the resting state is painted.
func (cb *ControlBase) OnEndAnimation() {
	cb.animation = nil
	cb.SetDirty(false, AllValues)
}

// Bounds returns the control's current rectangle.
func (cb *ControlBase) Bounds() geom.Rect { return cb.bounds }

// SetBounds moves the control and runs its resize hook. The hover flag
// is cleared because the pointer may no longer be inside.
func (cb *ControlBase) SetBounds(bounds geom.Rect) {
	cb.bounds = bounds
	cb.mouseIsOver = false
	cb.This.OnResize()
	cb.SetDirty(false, AllValues)
}

// TargetBounds is the rectangle layout code aims the control at; it can
// differ from Bounds during layout transitions.
func (cb *ControlBase) TargetBounds() geom.Rect { return cb.targetBounds }

// SetTargetBounds sets the layout target without moving the control.
func (cb *ControlBase) SetTargetBounds(bounds geom.Rect) { cb.targetBounds = bounds }

// SetBoundsAndTarget moves the control and its layout target together.
func (cb *ControlBase) SetBoundsAndTarget(bounds geom.Rect) {
	cb.targetBounds = bounds
	cb.SetBounds(bounds)
}

// Hide sets the hidden flag. Hidden controls are neither drawn nor hit.
func (cb *ControlBase) Hide(hide bool) {
	cb.hidden = hide
	cb.SetDirty(false, AllValues)
}

// IsHidden reports the hidden flag.
func (cb *ControlBase) IsHidden() bool { return cb.hidden }

// GrayOut sets the grayed flag. Grayed controls draw disabled and
// ignore mouse input unless they opt in.
func (cb *ControlBase) GrayOut(gray bool) {
	cb.grayed = gray
	cb.SetDirty(false, AllValues)
}

// IsGrayed reports the grayed flag.
func (cb *ControlBase) IsGrayed() bool { return cb.grayed }

// SetMouseOverWhenGrayed opts the control into hover events while
// grayed.
func (cb *ControlBase) SetMouseOverWhenGrayed(allow bool) { cb.moWhenGrayed = allow }

// MouseOverWhenGrayed reports the hover-while-grayed opt-in.
func (cb *ControlBase) MouseOverWhenGrayed() bool { return cb.moWhenGrayed }

// SetMouseEventsWhenGrayed opts the control into click and drag events
// while grayed.
func (cb *ControlBase) SetMouseEventsWhenGrayed(allow bool) { cb.meWhenGrayed = allow }

// MouseEventsWhenGrayed reports the clicks-while-grayed opt-in.
func (cb *ControlBase) MouseEventsWhenGrayed() bool { return cb.meWhenGrayed }

// SetIgnoreMouse makes the control transparent to hit testing.
func (cb *ControlBase) SetIgnoreMouse(ignore bool) { cb.ignoreMouse = ignore }

// IgnoresMouse reports whether the control is transparent to hits.
func (cb *ControlBase) IgnoresMouse() bool { return cb.ignoreMouse }

// SetDblAsSingleClick makes double clicks route to OnMouseDown.
func (cb *ControlBase) SetDblAsSingleClick(on bool) { cb.dblAsSingleClick = on }

// DblAsSingleClick reports the double-as-single-click flag.
func (cb *ControlBase) DblAsSingleClick() bool { return cb.dblAsSingleClick }

// SetDisablePrompt controls whether [ControlBase.PromptUserInput] is
// suppressed. Prompting is disabled by default.
func (cb *ControlBase) SetDisablePrompt(disable bool) { cb.disablePrompt = disable }

// SetWantsMidi opts the control into MIDI routing.
func (cb *ControlBase) SetWantsMidi(wants bool) { cb.wantsMidi = wants }

// WantsMidi reports the MIDI opt-in.
func (cb *ControlBase) WantsMidi() bool { return cb.wantsMidi }

// MouseIsOver reports whether the pointer is currently over the
// control.
func (cb *ControlBase) MouseIsOver() bool { return cb.mouseIsOver }

// MouseDownPos returns the point, in panel coordinates, of the most
// recent mouse down on this control.
func (cb *ControlBase) MouseDownPos() geom.Vector2 { return cb.mouseDownPos }

// Tag returns the control's message tag, NoTag if unset.
func (cb *ControlBase) Tag() int { return cb.tag }

// SetTag assigns the control's message tag.
func (cb *ControlBase) SetTag(tag int) { cb.tag = tag }

// Group returns the control's group name.
func (cb *ControlBase) Group() string { return cb.group }

// SetGroup assigns the control to a named group, for collective hide
// and gray operations on the panel.
func (cb *ControlBase) SetGroup(group string) { cb.group = group }

// Action returns the control's action func.
func (cb *ControlBase) Action() ActionFunc { return cb.action }

// SetAction installs the func fired by [ControlBase.SetDirty] with
// triggerAction.
func (cb *ControlBase) SetAction(fn ActionFunc) { cb.action = fn }

// SnapToMouse maps a pointer position onto the track rectangle along
// the given axis and applies it as a user edit: the point is constrained
// to the track, projected to a normalized position (vertical tracks fill
// bottom-up), rounded to a 0.001 grid, scaled, clamped, stored quietly
// and then marked dirty with notification.
func (cb *ControlBase) SnapToMouse(pos geom.Vector2, dir geom.Dims, track geom.Rect, valIdx int, scalar float32) {
	p := track.Constrain(pos)
	var val float32
	if dir == geom.Y {
		val = 1 - (p.Y-track.T)/track.H()
	} else {
		val = (p.X - track.L) / track.W()
	}
	val = math32.Round(val/0.001) * 0.001
	v := valIdx
	if v == NoValIdx {
		v = 0
	}
	cb.SetValue(math32.Min(math32.Max(val*scalar, 0), 1), v)
	cb.SetDirty(true, v)
}

// PromptUserInput opens the panel's prompter over this control, if the
// slot is linked, prompting is enabled and a prompter is installed.
func (cb *ControlBase) PromptUserInput(valIdx int) {
	cb.PromptUserInputIn(cb.bounds, valIdx)
}

// PromptUserInputIn is PromptUserInput with an explicit anchor
// rectangle for the input surface.
func (cb *ControlBase) PromptUserInputIn(bounds geom.Rect, valIdx int) {
	cb.valCheck(valIdx)
	if cb.disablePrompt || cb.vals[valIdx].idx == NoParameter || cb.panel == nil {
		return
	}
	cb.panel.promptUserInput(cb.This, valIdx, bounds)
}

// Draw is a no-op; concrete controls override it.
func (cb *ControlBase) Draw(pr paint.Painter) {}

// IsHit tests the point against the control's target bounds, which
// default to its drawn bounds but may grant a larger grab area.
func (cb *ControlBase) IsHit(pos geom.Vector2) bool { return cb.targetBounds.Contains(pos) }

// ValIdxForPos maps every point to NoValIdx by default.
func (cb *ControlBase) ValIdxForPos(pos geom.Vector2) int { return NoValIdx }

// OnMouseDown records the press position and, on a right-button press,
// offers the prompt for the slot under the pointer.
func (cb *ControlBase) OnMouseDown(e *events.Mouse) {
	cb.mouseDownPos = e.Pos
	if e.Button == events.Right {
		v := cb.This.ValIdxForPos(e.Pos)
		if v == NoValIdx {
			v = 0
		}
		cb.PromptUserInput(v)
	}
}

func (cb *ControlBase) OnMouseUp(e *events.Mouse)   {}
func (cb *ControlBase) OnMouseDrag(e *events.Mouse) {}

// OnMouseDblClick offers the prompt for the slot under the pointer.
// Controls flagged with [ControlBase.SetDblAsSingleClick] never reach
// this; the panel routes their double clicks to OnMouseDown.
func (cb *ControlBase) OnMouseDblClick(e *events.Mouse) {
	v := cb.This.ValIdxForPos(e.Pos)
	if v == NoValIdx {
		v = 0
	}
	cb.PromptUserInput(v)
}

func (cb *ControlBase) OnMouseWheel(e *events.Scroll) {}

// OnMouseOver sets the hover flag and requests a redraw.
func (cb *ControlBase) OnMouseOver(e *events.Mouse) {
	if !cb.mouseIsOver {
		cb.SetDirty(false, AllValues)
	}
	cb.mouseIsOver = true
}

// OnMouseOut clears the hover flag and requests a redraw.
func (cb *ControlBase) OnMouseOut() {
	if cb.mouseIsOver {
		cb.SetDirty(false, AllValues)
	}
	cb.mouseIsOver = false
}

func (cb *ControlBase) OnKeyDown(e *events.Key) bool { return false }
func (cb *ControlBase) OnKeyUp(e *events.Key) bool   { return false }

func (cb *ControlBase) OnInit()    {}
func (cb *ControlBase) OnResize()  {}
func (cb *ControlBase) OnRescale() {}

// OnMessage logs and drops messages; controls that expect them
// override.
func (cb *ControlBase) OnMessage(tag int, data any) {
	slog.Debug("unhandled control message", "tag", tag)
}

func (cb *ControlBase) OnMidi(msg MidiMessage) {}

// OnPopupSelection applies a popup pick as a user edit of a stepped
// parameter. A dismissed menu (itemIdx == NoValIdx) changes nothing.
func (cb *ControlBase) OnPopupSelection(itemIdx, valIdx int) {
	if itemIdx < 0 {
		return
	}
	if p := cb.Param(valIdx); p != nil && p.NSteps() > 1 {
		cb.SetValueFromUserInput(p.NormalizedFromStep(itemIdx), valIdx)
	}
}

// OnTextEntry drops typed input; controls that prompt with a text box
// override.
func (cb *ControlBase) OnTextEntry(text string, valIdx int) {}

// release detaches the control from live resources when its panel
// clears: the animation stops and any cached layers are dropped.
func (cb *ControlBase) release() {
	cb.animation = nil
	cb.action = nil
	if rl, ok := cb.This.(interface{ ReleaseLayers() }); ok {
		rl.ReleaseLayers()
	}
}
