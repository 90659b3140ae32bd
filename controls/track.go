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

// TrackBase is a multi-value control that partitions its bounds into
// one sub-rectangle per value slot, such as a bank of level faders.
// Hit testing is a deterministic first match over the partition in
// ascending slot order, so a given point always addresses the same
// slot.
type TrackBase struct {
	ControlBase

	// Direction is the axis the tracks fill along; the partition runs
	// across it.
	Direction geom.Dims

	// OuterPadding insets the whole partition from the bounds.
	OuterPadding float32

	// TrackPadding insets each track within its partition cell.
	TrackPadding float32

	trackBounds []geom.Rect
}

// InitTracks wires the base with one value slot per parameter index
// starting at lowParamIdx, or nTracks unlinked slots when lowParamIdx
// is NoParameter.
func (tb *TrackBase) InitTracks(this Control, bounds geom.Rect, lowParamIdx, nTracks int, dir geom.Dims) {
	idxs := make([]int, nTracks)
	for i := range idxs {
		if lowParamIdx == NoParameter {
			idxs[i] = NoParameter
		} else {
			idxs[i] = lowParamIdx + i
		}
	}
	tb.Init(this, bounds, idxs...)
	tb.Direction = dir
	tb.OuterPadding = 2
	tb.TrackPadding = 2
}

// NumTracks returns the number of tracks.
func (tb *TrackBase) NumTracks() int { return tb.NumValues() }

// TrackBounds returns the rectangle of the i-th track.
func (tb *TrackBase) TrackBounds(i int) geom.Rect { return tb.trackBounds[i] }

// MakeRects rebuilds the partition from the current bounds. OnResize
// calls this; controls that alter padding afterwards call it again.
func (tb *TrackBase) MakeRects() {
	inner := tb.Bounds().Padded(-tb.OuterPadding)
	across := tb.Direction.Other()
	tb.trackBounds = tb.trackBounds[:0]
	for i := 0; i < tb.NumValues(); i++ {
		cell := inner.SubRect(across, tb.NumValues(), i).Padded(-tb.TrackPadding)
		tb.trackBounds = append(tb.trackBounds, cell)
	}
}

func (tb *TrackBase) OnResize() {
	tb.MakeRects()
}

// ValIdxForPos returns the first track containing the point, in
// ascending slot order, or NoValIdx.
func (tb *TrackBase) ValIdxForPos(pos geom.Vector2) int {
	for i, r := range tb.trackBounds {
		if r.Contains(pos) {
			return i
		}
	}
	return NoValIdx
}

// OnMouseDown edits the track under the press.
func (tb *TrackBase) OnMouseDown(e *events.Mouse) {
	tb.mouseDownPos = e.Pos
	if e.Button == events.Right {
		tb.ControlBase.OnMouseDown(e)
		return
	}
	tb.snapTrack(e.Pos)
}

// OnMouseDrag keeps editing whichever track the pointer is over.
func (tb *TrackBase) OnMouseDrag(e *events.Mouse) {
	tb.snapTrack(e.Pos)
}

func (tb *TrackBase) snapTrack(pos geom.Vector2) {
	v := tb.This.ValIdxForPos(pos)
	if v == NoValIdx {
		return
	}
	tb.SnapToMouse(pos, tb.Direction, tb.trackBounds[v], v, 1)
}

// VTrack is a vector-drawn bank of tracks with a value fill per track.
type VTrack struct {
	TrackBase

	style *styles.Vector
}

// NewVTrack returns a track bank. With a linked lowParamIdx the slots
// bind to consecutive parameters.
func NewVTrack(bounds geom.Rect, lowParamIdx, nTracks int, dir geom.Dims) *VTrack {
	t := &VTrack{style: styles.NewVector(styles.DefaultSpec())}
	t.InitTracks(t, bounds, lowParamIdx, nTracks, dir)
	t.style.Attach(func() { t.SetDirty(false, AllValues) })
	return t
}

// VectorStyle returns the bank's style component.
func (t *VTrack) VectorStyle() *styles.Vector { return t.style }

func (t *VTrack) Draw(pr paint.Painter) {
	pr.FillRect(t.style.Color(styles.Background), t.Bounds())
	fillColor := styles.Foreground
	if t.IsGrayed() {
		fillColor = styles.Background
	}
	for i := 0; i < t.NumTracks(); i++ {
		tr := t.TrackBounds(i)
		pr.FillRect(t.style.Color(styles.Shadow), tr)
		var fill geom.Rect
		if t.Direction == geom.Y {
			fill = tr.FracH(t.Value(i))
		} else {
			fill = tr.FracW(t.Value(i))
		}
		pr.FillRect(t.style.Color(fillColor), fill)
		if t.style.DrawsFrame() {
			pr.DrawRect(t.style.Color(styles.Frame), tr, t.style.FrameThickness())
		}
	}
}
