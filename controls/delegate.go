// Copyright (c) 2026, The Plugkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package controls

import (
	"strconv"

	"github.com/chewxy/math32"
	"github.com/plugkit/plugkit/geom"
)

// Sentinel indices used throughout the control layer.
const (
	// NoParameter marks a value slot that is not linked to any
	// host parameter.
	NoParameter = -1

	// NoValIdx is returned by [Control.ValIdxForPos] when a point does
	// not map to a specific value slot.
	NoValIdx = -1

	// AllValues addresses every value slot of a control in operations
	// that take a value index, such as [ControlBase.SetDirty].
	AllValues = -1

	// NoTag is the tag of a control that has not been given one.
	NoTag = -1
)

// Delegate is the surface a control uses to talk to its processing host.
// It resolves parameter metadata and receives change notifications when a
// user gesture edits a linked value. Implementations must tolerate being
// called from the UI goroutine only.
type Delegate interface {
	// Param returns the metadata for the given parameter index, or nil
	// if the index names no parameter.
	Param(paramIdx int) *Param

	// NotifyParameterChanged is called with the new normalized value
	// whenever a user gesture changes a linked value slot. It is never
	// called for edits that originate from the delegate itself.
	NotifyParameterChanged(paramIdx int, value float32)
}

// Prompter opens an input surface (a text box or a popup menu, depending on
// the parameter's step count) over a control so the user can type or pick a
// value directly. The prompter reports the result back through
// [Control.OnTextEntry] or [Control.OnPopupSelection].
type Prompter interface {
	PromptUserInput(c Control, valIdx int, bounds geom.Rect)
}

// MidiMessage is a raw three-byte MIDI event routed to controls that have
// opted in with [ControlBase.SetWantsMidi].
type MidiMessage struct {
	Status byte
	Data1  byte
	Data2  byte
}

// Channel returns the 0-based MIDI channel of the message.
func (m MidiMessage) Channel() byte { return m.Status & 0x0f }

// Param describes a host parameter: its real-valued range, default and
// step size. Controls hold normalized [0..1] values; Param converts
// between the normalized and real domains.
type Param struct {
	Name    string
	Min     float32
	Max     float32
	Default float32
	Step    float32 // 0 for a continuous parameter
	Unit    string
}

// FromNormalized maps a normalized [0..1] value into the parameter's
// real range, snapping to the step grid when the parameter is stepped.
func (p *Param) FromNormalized(norm float32) float32 {
	v := p.Min + norm*(p.Max-p.Min)
	if p.Step > 0 {
		v = p.Min + math32.Round((v-p.Min)/p.Step)*p.Step
	}
	return math32.Min(math32.Max(v, p.Min), p.Max)
}

// ToNormalized maps a real value into [0..1].
func (p *Param) ToNormalized(real float32) float32 {
	if p.Max == p.Min {
		return 0
	}
	return math32.Min(math32.Max((real-p.Min)/(p.Max-p.Min), 0), 1)
}

// DefaultNormalized returns the parameter default in normalized form.
func (p *Param) DefaultNormalized() float32 {
	return p.ToNormalized(p.Default)
}

// NSteps returns the number of discrete steps of a stepped parameter,
// or 0 for a continuous one.
func (p *Param) NSteps() int {
	if p.Step <= 0 {
		return 0
	}
	return int((p.Max-p.Min)/p.Step) + 1
}

// NormalizedFromStep returns the normalized value of the given step
// index of a stepped parameter.
func (p *Param) NormalizedFromStep(step int) float32 {
	n := p.NSteps()
	if n < 2 {
		return 0
	}
	return math32.Min(math32.Max(float32(step)/float32(n-1), 0), 1)
}

// StepFromNormalized returns the nearest step index for a normalized
// value of a stepped parameter.
func (p *Param) StepFromNormalized(norm float32) int {
	n := p.NSteps()
	if n < 2 {
		return 0
	}
	return int(math32.Round(math32.Min(math32.Max(norm, 0), 1) * float32(n-1)))
}

// Display renders a normalized value as a display string in the
// parameter's real range, with its unit if it has one.
func (p *Param) Display(norm float32) string {
	s := strconv.FormatFloat(float64(p.FromNormalized(norm)), 'f', 2, 32)
	if p.Unit != "" {
		s += " " + p.Unit
	}
	return s
}
