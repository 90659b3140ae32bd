// Copyright (c) 2026, The Plugkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package controls

import (
	"github.com/chewxy/math32"
	"github.com/plugkit/plugkit/events"
	"github.com/plugkit/plugkit/geom"
	"github.com/plugkit/plugkit/paint"
	"github.com/plugkit/plugkit/styles"
)

// DefaultGearing divides drag distance into value change for knobs; a
// full traversal of the knob's height moves the value by 1/gearing.
const DefaultGearing float32 = 4

// KnobBase implements relative-drag ballistics shared by knob widgets:
// dragging maps pointer deltas, divided by the knob's extent and a
// gearing factor, onto the value. Holding Control or Shift multiplies
// the gearing by 10 for fine adjustment.
type KnobBase struct {
	ControlBase

	// Direction selects the drag axis; vertical (Y, the default) knobs
	// increase upward.
	Direction geom.Dims

	// Gearing scales drag distance to value change.
	Gearing float32
}

// InitKnob wires the base for a single-value knob.
func (kb *KnobBase) InitKnob(this Control, bounds geom.Rect, paramIdx int) {
	kb.Init(this, bounds, paramIdx)
	kb.Direction = geom.Y
	kb.Gearing = DefaultGearing
}

// IsFineControl reports whether the modifiers request fine adjustment.
func (kb *KnobBase) IsFineControl(mods events.Modifiers) bool {
	return mods.HasAny(events.Control, events.Shift)
}

// OnMouseDrag applies relative ballistics: the pointer delta along the
// drag axis, divided by the knob extent and gearing, is added to the
// value. Upward vertical motion increases the value.
func (kb *KnobBase) OnMouseDrag(e *events.Mouse) {
	gearing := kb.Gearing
	if kb.IsFineControl(e.Mods) {
		gearing *= 10
	}
	d := e.Delta()
	v := kb.Value(0)
	if kb.Direction == geom.Y {
		v -= d.Y / (kb.Bounds().H() * gearing)
	} else {
		v += d.X / (kb.Bounds().W() * gearing)
	}
	kb.SetValue(v, 0)
	kb.SetDirty(true, 0)
}

// OnMouseWheel steps the value by 0.01, or 0.001 with a fine-control
// modifier held.
func (kb *KnobBase) OnMouseWheel(e *events.Scroll) {
	step := float32(0.01)
	if kb.IsFineControl(e.Mods) {
		step = 0.001
	}
	kb.SetValue(kb.Value(0)+step*e.Delta, 0)
	kb.SetDirty(true, 0)
}

// OnMouseDblClick resets the knob to its parameter default.
func (kb *KnobBase) OnMouseDblClick(e *events.Mouse) {
	kb.SetValueToDefault(0)
}

// VKnob is a vector-drawn rotary knob: a circular handle with a pointer
// line sweeping from -135 to +135 degrees, an optional label above and
// the parameter's display value below.
type VKnob struct {
	KnobBase

	// Label is drawn above the knob.
	Label string

	// ShowValue draws the linked parameter's display value under the
	// knob and lets the user click it to type a value.
	ShowValue bool

	// AngleMin and AngleMax bound the pointer sweep in degrees, with 0
	// pointing up.
	AngleMin, AngleMax float32

	style *styles.Vector
	text  paint.TextStyle

	handleBounds geom.Rect
	labelBounds  geom.Rect
	valueBounds  geom.Rect
}

// NewVKnob returns a vector knob linked to the given parameter.
func NewVKnob(bounds geom.Rect, paramIdx int, label string) *VKnob {
	k := &VKnob{
		Label:     label,
		ShowValue: true,
		AngleMin:  -135,
		AngleMax:  135,
		style:     styles.NewVector(styles.DefaultSpec()),
		text:      paint.DefaultTextStyle(),
	}
	k.InitKnob(k, bounds, paramIdx)
	k.style.Attach(func() { k.SetDirty(false, AllValues) })
	return k
}

// VectorStyle returns the knob's style component.
func (k *VKnob) VectorStyle() *styles.Vector { return k.style }

// OnResize lays the knob out: label strip on top, value strip below,
// and the largest centered square between them for the handle.
func (k *VKnob) OnResize() {
	b := k.Bounds()
	strip := k.text.Size + 4
	k.labelBounds = geom.Rect{}
	k.valueBounds = geom.Rect{}
	if k.Label != "" {
		k.labelBounds = b.HSliced(strip)
		b = b.Altered(0, strip, 0, 0)
	}
	if k.ShowValue {
		k.valueBounds = geom.NewRect(b.L, b.B-strip, b.R, b.B)
		b = b.Altered(0, 0, 0, -strip)
	}
	k.handleBounds = k.style.AdjustedHandleBounds(b.Square())
}

// OnInit seeds the value from the linked parameter's default.
func (k *VKnob) OnInit() {
	if p := k.Param(0); p != nil {
		k.SetValue(p.DefaultNormalized(), 0)
		if k.Label == "" {
			k.Label = p.Name
			k.OnResize()
		}
	}
}

// OnMouseDown starts a drag, or opens the value prompt when the press
// lands on the displayed value.
func (k *VKnob) OnMouseDown(e *events.Mouse) {
	if k.ShowValue && !k.valueBounds.IsEmpty() && k.valueBounds.Contains(e.Pos) {
		k.PromptUserInputIn(k.valueBounds, 0)
		return
	}
	k.ControlBase.OnMouseDown(e)
}

func (k *VKnob) pointerAngle() float32 {
	return k.AngleMin + k.Value(0)*(k.AngleMax-k.AngleMin)
}

func (k *VKnob) Draw(pr paint.Painter) {
	hb := k.handleBounds
	center := hb.Center()
	radius := 0.5 * hb.W()

	if k.style.DrawsShadows() && !k.style.Emboss() {
		off := k.style.ShadowOffset()
		pr.FillCircle(k.style.Color(styles.Shadow), center.Add(geom.Vec2(off, off)), radius)
	}
	fill := styles.Foreground
	if k.IsGrayed() {
		fill = styles.Background
	}
	pr.FillCircle(k.style.Color(fill), center, radius)
	if k.MouseIsOver() && !k.IsGrayed() {
		pr.FillCircle(k.style.Color(styles.Highlight), center, radius)
	}

	// Pointer line from 60% radius out to the rim.
	rad := k.pointerAngle() * math32.Pi / 180
	sin, cos := math32.Sincos(rad)
	dir := geom.Vec2(sin, -cos)
	a := center.Add(dir.MulScalar(radius * 0.6))
	b := center.Add(dir.MulScalar(radius))
	pr.DrawLine(k.style.Color(styles.Frame), a, b, k.style.FrameThickness())

	if k.style.DrawsFrame() {
		pr.DrawRoundRect(k.style.Color(styles.Frame), hb, radius, k.style.FrameThickness())
	}

	if k.Label != "" && !k.labelBounds.IsEmpty() {
		pr.DrawText(k.text, k.Label, k.labelBounds)
	}
	if k.ShowValue && !k.valueBounds.IsEmpty() {
		if p := k.Param(0); p != nil {
			pr.DrawText(k.text, p.Display(k.Value(0)), k.valueBounds)
		}
	}
}

// LayerKnob renders its face once into a cached layer through an
// arbitrary render func, then draws the cached layer rotated by the
// value's angle each frame. The layer is rebuilt only when the painter
// reports it stale, after a resize or a scale change.
type LayerKnob struct {
	KnobBase

	// Render draws the knob face, unrotated, into the given bounds.
	Render func(pr paint.Painter, bounds geom.Rect)

	// AngleMin and AngleMax bound the rotation sweep in degrees.
	AngleMin, AngleMax float32

	layer *paint.Layer
}

// NewLayerKnob returns a layer-cached knob whose face is produced by
// render.
func NewLayerKnob(bounds geom.Rect, paramIdx int, render func(pr paint.Painter, bounds geom.Rect)) *LayerKnob {
	k := &LayerKnob{
		Render:   render,
		AngleMin: -135,
		AngleMax: 135,
	}
	k.InitKnob(k, bounds, paramIdx)
	return k
}

func (k *LayerKnob) Draw(pr paint.Painter) {
	if !pr.CheckLayer(k.layer) {
		if k.layer != nil {
			pr.ReleaseLayer(k.layer)
		}
		pr.StartLayer(k.Bounds())
		k.Render(pr, k.Bounds())
		k.layer = pr.EndLayer()
	}
	angle := k.AngleMin + k.Value(0)*(k.AngleMax-k.AngleMin)
	pr.DrawRotatedLayer(k.layer, angle)
}

// OnResize drops the cached face; it no longer matches the bounds.
func (k *LayerKnob) OnResize() {
	k.layer.Invalidate()
}

// OnRescale drops the cached face; it was rasterized at the old scale.
func (k *LayerKnob) OnRescale() {
	k.layer.Invalidate()
}

// ReleaseLayers drops the cached face when the control is detached.
func (k *LayerKnob) ReleaseLayers() {
	k.layer.Invalidate()
	k.layer = nil
}
