// Copyright (c) 2026, The Plugkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package controls

import (
	"github.com/plugkit/plugkit/events"
	"github.com/plugkit/plugkit/geom"
	"github.com/plugkit/plugkit/paint"
	"github.com/plugkit/plugkit/styles"
)

// VXYPad edits two parameters at once from a single pointer position:
// value 0 follows the pointer left to right and value 1 bottom to top.
// A gesture updates both values and notifies both parameters, in slot
// order, from one dirty marking.
type VXYPad struct {
	ControlBase

	// HandleRadius is the radius of the position handle.
	HandleRadius float32

	style     *styles.Vector
	mouseDown bool
}

// NewVXYPad returns a pad with value 0 linked to xParamIdx and value 1
// to yParamIdx.
func NewVXYPad(bounds geom.Rect, xParamIdx, yParamIdx int) *VXYPad {
	p := &VXYPad{
		HandleRadius: 10,
		style:        styles.NewVector(styles.DefaultSpec()),
	}
	p.Init(p, bounds, xParamIdx, yParamIdx)
	p.SetValue(0.5, 0)
	p.SetValue(0.5, 1)
	p.style.Attach(func() { p.SetDirty(false, AllValues) })
	return p
}

// VectorStyle returns the pad's style component.
func (p *VXYPad) VectorStyle() *styles.Vector { return p.style }

// OnInit seeds both values from their parameter defaults.
func (p *VXYPad) OnInit() {
	for v := 0; v < p.NumValues(); v++ {
		if pm := p.Param(v); pm != nil {
			p.SetValue(pm.DefaultNormalized(), v)
		}
	}
}

func (p *VXYPad) OnMouseDown(e *events.Mouse) {
	p.mouseDownPos = e.Pos
	if e.Button == events.Right {
		p.ControlBase.OnMouseDown(e)
		return
	}
	p.mouseDown = true
	p.snap(e.Pos)
}

func (p *VXYPad) OnMouseDrag(e *events.Mouse) {
	if p.mouseDown {
		p.snap(e.Pos)
	}
}

func (p *VXYPad) OnMouseUp(e *events.Mouse) {
	p.mouseDown = false
	p.SetDirty(false, AllValues)
}

// snap maps the constrained point to both axes and applies the edit to
// both slots with one notification pass.
func (p *VXYPad) snap(pos geom.Vector2) {
	b := p.Bounds()
	pt := b.Constrain(pos)
	p.SetValue((pt.X-b.L)/b.W(), 0)
	p.SetValue(1-(pt.Y-b.T)/b.H(), 1)
	p.SetDirty(true, AllValues)
}

// handlePos returns the handle center for the current values.
func (p *VXYPad) handlePos() geom.Vector2 {
	b := p.Bounds()
	return geom.Vec2(b.L+p.Value(0)*b.W(), b.B-p.Value(1)*b.H())
}

func (p *VXYPad) Draw(pr paint.Painter) {
	b := p.Bounds()
	pr.FillRect(p.style.Color(styles.Background), b)

	// Crosshair through the handle.
	hp := p.handlePos()
	pr.DrawLine(p.style.Color(styles.Shadow), geom.Vec2(b.L, hp.Y), geom.Vec2(b.R, hp.Y), 1)
	pr.DrawLine(p.style.Color(styles.Shadow), geom.Vec2(hp.X, b.T), geom.Vec2(hp.X, b.B), 1)

	fill := styles.Foreground
	if p.mouseDown {
		fill = styles.Pressed
	}
	pr.FillCircle(p.style.Color(fill), hp, p.HandleRadius)
	if p.MouseIsOver() && !p.IsGrayed() {
		pr.FillCircle(p.style.Color(styles.Highlight), hp, p.HandleRadius)
	}
	if p.style.DrawsFrame() {
		pr.DrawRect(p.style.Color(styles.Frame), b, p.style.FrameThickness())
	}
}
