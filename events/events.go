// Copyright (c) 2026, The Plugkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the input event types delivered to controls:
// mouse, scroll and key events, along with modifier key state. The
// platform event pump translates native events into these types; this
// package has no platform dependencies.
package events

import (
	"fmt"

	"github.com/plugkit/plugkit/geom"
)

// Buttons is a mouse button.
type Buttons int32

const (
	NoButton Buttons = iota
	Left
	Middle
	Right
)

// Modifiers are the currently held modifier keys, as a bit flag.
type Modifiers int32

const (
	Shift Modifiers = 1 << iota
	Control
	Alt
	Meta
)

// HasAny returns whether any of the given modifiers are held.
func (m Modifiers) HasAny(mods ...Modifiers) bool {
	for _, mod := range mods {
		if m&mod != 0 {
			return true
		}
	}
	return false
}

// Mouse is a mouse event: down, up, move, drag, or double click.
// For drag events, Prev and Start record the previous and initial
// positions so that per-event and total deltas can be computed.
type Mouse struct {

	// Pos is the event position in scene coordinates.
	Pos geom.Vector2

	// Prev is the position of the previous event in a move or drag
	// sequence. It equals Pos for other events.
	Prev geom.Vector2

	// Start is the position where the button was first pressed,
	// for drag events.
	Start geom.Vector2

	// Button is the mouse button involved, if any.
	Button Buttons

	// Mods are the modifier keys held at the time of the event.
	Mods Modifiers
}

// NewMouse returns a mouse event at the given position with the given
// button and modifiers. Prev and Start are set to the position.
func NewMouse(pos geom.Vector2, button Buttons, mods Modifiers) *Mouse {
	return &Mouse{Pos: pos, Prev: pos, Start: pos, Button: button, Mods: mods}
}

// NewDrag returns a drag event with the given current, previous and
// start positions.
func NewDrag(pos, prev, start geom.Vector2, button Buttons, mods Modifiers) *Mouse {
	return &Mouse{Pos: pos, Prev: prev, Start: start, Button: button, Mods: mods}
}

// Delta returns the movement since the previous event in the sequence.
func (e *Mouse) Delta() geom.Vector2 {
	return e.Pos.Sub(e.Prev)
}

// StartDelta returns the total movement since the start of a drag.
func (e *Mouse) StartDelta() geom.Vector2 {
	return e.Pos.Sub(e.Start)
}

func (e *Mouse) String() string {
	return fmt.Sprintf("Mouse{Pos: %v, Button: %v, Mods: %b}", e.Pos, e.Button, e.Mods)
}

// Scroll is a mouse wheel event. Delta is in wheel notches, positive
// for scrolling up/away.
type Scroll struct {
	Mouse

	// Delta is the scroll amount in notches.
	Delta float32
}

// NewScroll returns a scroll event at the given position with the
// given notch delta.
func NewScroll(pos geom.Vector2, delta float32, mods Modifiers) *Scroll {
	return &Scroll{Mouse: Mouse{Pos: pos, Prev: pos, Start: pos, Mods: mods}, Delta: delta}
}

// Codes identify non-printing keys of interest to controls.
type Codes int32

const (
	CodeUnknown Codes = iota
	CodeUp
	CodeDown
	CodeLeft
	CodeRight
	CodeHome
	CodeEnd
	CodeEscape
	CodeReturn
	CodeSpace
)

// Key is a keyboard event. Rune is the typed character, if any;
// Code identifies non-printing keys.
type Key struct {

	// Rune is the character for printing keys, or 0.
	Rune rune

	// Code identifies non-printing keys.
	Code Codes

	// Mods are the modifier keys held at the time of the event.
	Mods Modifiers
}
