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

// SliderBase implements absolute positioning shared by slider widgets:
// presses and drags snap the value to the pointer's position on the
// track through [ControlBase.SnapToMouse].
type SliderBase struct {
	ControlBase

	// Direction selects the track axis; vertical tracks fill bottom-up.
	Direction geom.Dims

	// HandleSize is the extent of the handle along the track axis.
	HandleSize float32

	// KeyStep is the value change per arrow key press.
	KeyStep float32

	track geom.Rect
}

// InitSlider wires the base for a single-value slider.
func (sb *SliderBase) InitSlider(this Control, bounds geom.Rect, paramIdx int, dir geom.Dims) {
	sb.Init(this, bounds, paramIdx)
	sb.Direction = dir
	sb.HandleSize = 16
	sb.KeyStep = 0.05
	sb.track = bounds
}

// Track returns the rectangle pointer positions are mapped onto.
func (sb *SliderBase) Track() geom.Rect { return sb.track }

// SetTrack overrides the mapping rectangle. OnResize resets it.
func (sb *SliderBase) SetTrack(track geom.Rect) { sb.track = track }

// OnResize insets the track by half the handle so the handle center
// stays inside the bounds at both extremes.
func (sb *SliderBase) OnResize() {
	inset := 0.5 * sb.HandleSize
	if sb.Direction == geom.Y {
		sb.track = sb.Bounds().Altered(0, inset, 0, -inset)
	} else {
		sb.track = sb.Bounds().Altered(inset, 0, -inset, 0)
	}
}

// OnMouseDown jumps the value to the pressed position.
func (sb *SliderBase) OnMouseDown(e *events.Mouse) {
	sb.mouseDownPos = e.Pos
	if e.Button == events.Right {
		sb.ControlBase.OnMouseDown(e)
		return
	}
	sb.SnapToMouse(e.Pos, sb.Direction, sb.track, 0, 1)
}

// OnMouseDrag tracks the pointer absolutely.
func (sb *SliderBase) OnMouseDrag(e *events.Mouse) {
	sb.SnapToMouse(e.Pos, sb.Direction, sb.track, 0, 1)
}

// OnMouseWheel steps the value by 0.01, or 0.001 with Control or Shift.
func (sb *SliderBase) OnMouseWheel(e *events.Scroll) {
	step := float32(0.01)
	if e.Mods.HasAny(events.Control, events.Shift) {
		step = 0.001
	}
	sb.SetValue(sb.Value(0)+step*e.Delta, 0)
	sb.SetDirty(true, 0)
}

// OnMouseDblClick resets the slider to its parameter default.
func (sb *SliderBase) OnMouseDblClick(e *events.Mouse) {
	sb.SetValueToDefault(0)
}

// OnKeyDown steps the value with the arrow keys and jumps to the
// extremes with Home and End.
func (sb *SliderBase) OnKeyDown(e *events.Key) bool {
	v := sb.Value(0)
	switch e.Code {
	case events.CodeUp, events.CodeRight:
		v += sb.KeyStep
	case events.CodeDown, events.CodeLeft:
		v -= sb.KeyStep
	case events.CodeHome:
		v = 0
	case events.CodeEnd:
		v = 1
	default:
		return false
	}
	sb.SetValue(v, 0)
	sb.SetDirty(true, 0)
	return true
}

// handleCenter returns the handle center for a value on the track.
func (sb *SliderBase) handleCenter(value float32) geom.Vector2 {
	t := sb.track
	if sb.Direction == geom.Y {
		return geom.Vec2(t.MW(), t.B-value*t.H())
	}
	return geom.Vec2(t.L+value*t.W(), t.MH())
}

// VSlider is a vector-drawn linear slider: a recessed track, a value
// fill from the track start to the handle, and a circular handle.
type VSlider struct {
	SliderBase

	// TrackSize is the thickness of the track across its axis.
	TrackSize float32

	style *styles.Vector
}

// NewVSlider returns a vector slider linked to the given parameter.
func NewVSlider(bounds geom.Rect, paramIdx int, dir geom.Dims) *VSlider {
	s := &VSlider{
		TrackSize: 6,
		style:     styles.NewVector(styles.DefaultSpec()),
	}
	s.InitSlider(s, bounds, paramIdx, dir)
	s.style.Attach(func() { s.SetDirty(false, AllValues) })
	return s
}

// VectorStyle returns the slider's style component.
func (s *VSlider) VectorStyle() *styles.Vector { return s.style }

// OnInit seeds the value from the linked parameter's default.
func (s *VSlider) OnInit() {
	if p := s.Param(0); p != nil {
		s.SetValue(p.DefaultNormalized(), 0)
	}
}

func (s *VSlider) trackRect() geom.Rect {
	t := s.Track()
	half := 0.5 * s.TrackSize
	if s.Direction == geom.Y {
		return geom.NewRect(t.MW()-half, t.T, t.MW()+half, t.B)
	}
	return geom.NewRect(t.L, t.MH()-half, t.R, t.MH()+half)
}

func (s *VSlider) Draw(pr paint.Painter) {
	tr := s.trackRect()
	radius := 0.5 * s.TrackSize
	pr.FillRoundRect(s.style.Color(styles.Shadow), tr, radius)

	var fill geom.Rect
	if s.Direction == geom.Y {
		fill = tr.FracH(s.Value(0))
	} else {
		fill = tr.FracW(s.Value(0))
	}
	fillColor := styles.Foreground
	if s.IsGrayed() {
		fillColor = styles.Background
	}
	pr.FillRoundRect(s.style.Color(fillColor), fill, radius)
	if s.style.DrawsFrame() {
		pr.DrawRoundRect(s.style.Color(styles.Frame), tr, radius, s.style.FrameThickness())
	}

	center := s.handleCenter(s.Value(0))
	hr := 0.5 * s.HandleSize
	if s.style.DrawsShadows() && !s.style.Emboss() {
		off := s.style.ShadowOffset()
		pr.FillCircle(s.style.Color(styles.Shadow), center.Add(geom.Vec2(off, off)), hr)
	}
	pr.FillCircle(s.style.Color(styles.Pressed), center, hr)
	if s.MouseIsOver() && !s.IsGrayed() {
		pr.FillCircle(s.style.Color(styles.Highlight), center, hr)
	}
}

// VRangeSlider edits two values, a low and a high bound, on a shared
// track. A press grabs the nearer handle; the grabbed handle cannot
// cross the other one.
type VRangeSlider struct {
	SliderBase

	// TrackSize is the thickness of the track across its axis.
	TrackSize float32

	style     *styles.Vector
	activeVal int
}

// NewVRangeSlider returns a range slider; loParamIdx edits value 0 and
// hiParamIdx value 1.
func NewVRangeSlider(bounds geom.Rect, loParamIdx, hiParamIdx int, dir geom.Dims) *VRangeSlider {
	s := &VRangeSlider{
		TrackSize: 6,
		style:     styles.NewVector(styles.DefaultSpec()),
		activeVal: NoValIdx,
	}
	s.Init(s, bounds, loParamIdx, hiParamIdx)
	s.Direction = dir
	s.HandleSize = 16
	s.KeyStep = 0.05
	s.track = bounds
	s.SetValue(1, 1)
	s.style.Attach(func() { s.SetDirty(false, AllValues) })
	return s
}

// VectorStyle returns the slider's style component.
func (s *VRangeSlider) VectorStyle() *styles.Vector { return s.style }

// ValIdxForPos returns the handle nearer to the point along the track
// axis; equidistant points resolve to the low handle.
func (s *VRangeSlider) ValIdxForPos(pos geom.Vector2) int {
	d0 := pos.DistanceTo(s.handleCenter(s.Value(0)))
	d1 := pos.DistanceTo(s.handleCenter(s.Value(1)))
	if d1 < d0 {
		return 1
	}
	return 0
}

// OnMouseDown grabs the nearer handle and snaps it to the press.
func (s *VRangeSlider) OnMouseDown(e *events.Mouse) {
	s.mouseDownPos = e.Pos
	if e.Button == events.Right {
		s.ControlBase.OnMouseDown(e)
		return
	}
	s.activeVal = s.ValIdxForPos(e.Pos)
	s.snapActive(e.Pos)
}

func (s *VRangeSlider) OnMouseDrag(e *events.Mouse) {
	if s.activeVal == NoValIdx {
		return
	}
	s.snapActive(e.Pos)
}

func (s *VRangeSlider) OnMouseUp(e *events.Mouse) {
	s.activeVal = NoValIdx
}

// snapActive maps the point onto the track for the grabbed handle,
// clamps it against the other handle so low never exceeds high, and
// applies it as a user edit.
func (s *VRangeSlider) snapActive(pos geom.Vector2) {
	tr := s.Track()
	pt := tr.Constrain(pos)
	var val float32
	if s.Direction == geom.Y {
		val = 1 - (pt.Y-tr.T)/tr.H()
	} else {
		val = (pt.X - tr.L) / tr.W()
	}
	val = math32.Round(val/0.001) * 0.001
	if s.activeVal == 0 {
		val = math32.Min(val, s.Value(1))
	} else {
		val = math32.Max(val, s.Value(0))
	}
	s.SetValue(val, s.activeVal)
	s.SetDirty(true, s.activeVal)
}

func (s *VRangeSlider) trackRect() geom.Rect {
	t := s.Track()
	half := 0.5 * s.TrackSize
	if s.Direction == geom.Y {
		return geom.NewRect(t.MW()-half, t.T, t.MW()+half, t.B)
	}
	return geom.NewRect(t.L, t.MH()-half, t.R, t.MH()+half)
}

func (s *VRangeSlider) Draw(pr paint.Painter) {
	tr := s.trackRect()
	radius := 0.5 * s.TrackSize
	pr.FillRoundRect(s.style.Color(styles.Shadow), tr, radius)

	lo := s.handleCenter(s.Value(0))
	hi := s.handleCenter(s.Value(1))
	var fill geom.Rect
	if s.Direction == geom.Y {
		fill = geom.NewRect(tr.L, hi.Y, tr.R, lo.Y)
	} else {
		fill = geom.NewRect(lo.X, tr.T, hi.X, tr.B)
	}
	fillColor := styles.Foreground
	if s.IsGrayed() {
		fillColor = styles.Background
	}
	if !fill.IsEmpty() {
		pr.FillRect(s.style.Color(fillColor), fill)
	}
	if s.style.DrawsFrame() {
		pr.DrawRoundRect(s.style.Color(styles.Frame), tr, radius, s.style.FrameThickness())
	}

	hr := 0.5 * s.HandleSize
	for _, center := range []geom.Vector2{lo, hi} {
		pr.FillCircle(s.style.Color(styles.Pressed), center, hr)
		if s.style.DrawsFrame() {
			pr.DrawRoundRect(s.style.Color(styles.Frame),
				geom.NewRect(center.X-hr, center.Y-hr, center.X+hr, center.Y+hr), hr,
				s.style.FrameThickness())
		}
	}
}
