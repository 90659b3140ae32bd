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

// ButtonBase implements momentary button behavior: a press sets the
// value to 1 and fires the action, and when the click animation ends
// the value falls back to 0.
type ButtonBase struct {
	ControlBase
}

// InitButton wires the base for an unlinked momentary button with the
// given action.
func (bb *ButtonBase) InitButton(this Control, bounds geom.Rect, action ActionFunc) {
	bb.Init(this, bounds)
	bb.action = action
}

// OnMouseDown latches the pressed value and fires the action.
func (bb *ButtonBase) OnMouseDown(e *events.Mouse) {
	bb.mouseDownPos = e.Pos
	bb.SetValue(1, 0)
	bb.SetDirty(true, 0)
}

// OnEndAnimation releases the latch before the final redraw.
func (bb *ButtonBase) OnEndAnimation() {
	bb.SetValue(0, 0)
	bb.ControlBase.OnEndAnimation()
}

// SwitchBase implements stepped-toggle behavior: each press advances
// the value by 1/(states-1), wrapping past the last state back to 0.
type SwitchBase struct {
	ControlBase

	numStates int
	mouseDown bool
}

// InitSwitch wires the base for a stepped switch linked to the given
// parameter. numStates must be at least 2.
func (sb *SwitchBase) InitSwitch(this Control, bounds geom.Rect, paramIdx, numStates int) {
	if numStates < 2 {
		panic("controls: a switch needs at least 2 states")
	}
	sb.Init(this, bounds, paramIdx)
	sb.numStates = numStates
}

// NumStates returns the number of switch positions.
func (sb *SwitchBase) NumStates() int { return sb.numStates }

// StateIdx returns the current position as a step index.
func (sb *SwitchBase) StateIdx() int {
	return int(math32.Round(sb.Value(0) * float32(sb.numStates-1)))
}

// OnInit adopts the step count and default of the linked parameter.
func (sb *SwitchBase) OnInit() {
	if p := sb.Param(0); p != nil {
		if n := p.NSteps(); n >= 2 {
			sb.numStates = n
		}
		sb.SetValue(p.DefaultNormalized(), 0)
	}
}

// OnMouseDown advances to the next state and notifies.
func (sb *SwitchBase) OnMouseDown(e *events.Mouse) {
	sb.mouseDownPos = e.Pos
	sb.mouseDown = true
	v := sb.Value(0) + 1/float32(sb.numStates-1)
	if v > 1 {
		v = 0
	}
	sb.SetValue(v, 0)
	sb.SetDirty(true, 0)
}

func (sb *SwitchBase) OnMouseUp(e *events.Mouse) {
	sb.mouseDown = false
	sb.SetDirty(false, AllValues)
}

// VButton is a vector-drawn momentary button with a centered label and
// the stock splash click feedback.
type VButton struct {
	ButtonBase

	// Label is drawn centered on the button.
	Label string

	style *styles.Vector
	text  paint.TextStyle
}

// NewVButton returns a vector button that runs fn when pressed, after
// the splash animation starts.
func NewVButton(bounds geom.Rect, label string, fn ActionFunc) *VButton {
	b := &VButton{
		Label: label,
		style: styles.NewVector(styles.DefaultSpec()),
		text:  paint.DefaultTextStyle(),
	}
	b.InitButton(b, bounds, func(c Control) {
		SplashClickAction(c)
		if fn != nil {
			fn(c)
		}
	})
	b.style.Attach(func() { b.SetDirty(false, AllValues) })
	return b
}

// VectorStyle returns the button's style component.
func (b *VButton) VectorStyle() *styles.Vector { return b.style }

func (b *VButton) Draw(pr paint.Painter) {
	pressed := b.Value(0) > 0.5
	handle := b.style.DrawButton(pr, b.Bounds(), pressed, b.MouseIsOver() && !b.IsGrayed(),
		b.Animation() != nil, b.MouseDownPos())
	if b.Label != "" {
		pr.DrawText(b.text, b.Label, handle)
	}
}

// VSwitch is a vector-drawn stepped switch showing the linked
// parameter's display value for the current state.
type VSwitch struct {
	SwitchBase

	// Label overrides the displayed text when non-empty.
	Label string

	style *styles.Vector
	text  paint.TextStyle
}

// NewVSwitch returns a vector switch linked to the given stepped
// parameter.
func NewVSwitch(bounds geom.Rect, paramIdx, numStates int) *VSwitch {
	s := &VSwitch{
		style: styles.NewVector(styles.DefaultSpec()),
		text:  paint.DefaultTextStyle(),
	}
	s.InitSwitch(s, bounds, paramIdx, numStates)
	s.style.Attach(func() { s.SetDirty(false, AllValues) })
	return s
}

// VectorStyle returns the switch's style component.
func (s *VSwitch) VectorStyle() *styles.Vector { return s.style }

func (s *VSwitch) Draw(pr paint.Painter) {
	handle := s.style.DrawButton(pr, s.Bounds(), s.mouseDown, s.MouseIsOver() && !s.IsGrayed(),
		s.Animation() != nil, s.MouseDownPos())
	str := s.Label
	if str == "" {
		if p := s.Param(0); p != nil {
			str = p.Display(s.Value(0))
		}
	}
	if str != "" {
		pr.DrawText(s.text, str, handle)
	}
}

// VRadioButton is a vector-drawn radio group: one circle per state in a
// row or column, with the selected state filled.
type VRadioButton struct {
	SwitchBase

	// Labels holds one label per state; missing entries draw no label.
	Labels []string

	// Direction stacks the buttons along this axis.
	Direction geom.Dims

	// ButtonSize is the diameter of each state circle.
	ButtonSize float32

	style   *styles.Vector
	text    paint.TextStyle
	buttons []geom.Rect
}

// NewVRadioButton returns a radio group linked to the given stepped
// parameter, stacked along dir.
func NewVRadioButton(bounds geom.Rect, paramIdx, numStates int, dir geom.Dims, labels ...string) *VRadioButton {
	r := &VRadioButton{
		Labels:     labels,
		Direction:  dir,
		ButtonSize: 12,
		style:      styles.NewVector(styles.DefaultSpec()),
		text:       paint.DefaultTextStyle(),
	}
	r.InitSwitch(r, bounds, paramIdx, numStates)
	r.text.Align = paint.AlignNear
	r.style.Attach(func() { r.SetDirty(false, AllValues) })
	return r
}

// VectorStyle returns the radio group's style component.
func (r *VRadioButton) VectorStyle() *styles.Vector { return r.style }

// OnResize splits the bounds into one equal cell per state.
func (r *VRadioButton) OnResize() {
	r.buttons = r.buttons[:0]
	for i := 0; i < r.NumStates(); i++ {
		r.buttons = append(r.buttons, r.Bounds().SubRect(r.Direction, r.NumStates(), i))
	}
}

// OnMouseDown selects the state whose cell was pressed, rather than
// cycling.
func (r *VRadioButton) OnMouseDown(e *events.Mouse) {
	r.mouseDownPos = e.Pos
	r.mouseDown = true
	for i, cell := range r.buttons {
		if cell.Contains(e.Pos) {
			r.SetValue(float32(i)/float32(r.NumStates()-1), 0)
			r.SetDirty(true, 0)
			return
		}
	}
}

func (r *VRadioButton) Draw(pr paint.Painter) {
	selected := r.StateIdx()
	radius := 0.5 * r.ButtonSize
	for i, cell := range r.buttons {
		center := geom.Vec2(cell.L+radius+2, cell.MH())
		pr.FillCircle(r.style.Color(styles.Background), center, radius)
		if i == selected {
			pr.FillCircle(r.style.Color(styles.Foreground), center, radius-2)
		}
		if r.style.DrawsFrame() {
			pr.DrawRoundRect(r.style.Color(styles.Frame),
				geom.NewRect(center.X-radius, center.Y-radius, center.X+radius, center.Y+radius),
				radius, r.style.FrameThickness())
		}
		if i < len(r.Labels) && r.Labels[i] != "" {
			pr.DrawText(r.text, r.Labels[i], cell.Altered(r.ButtonSize+6, 0, 0, 0))
		}
	}
}
