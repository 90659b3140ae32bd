// Copyright (c) 2026, The Plugkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package styles provides the role-based color palette and geometric
// style settings shared by vector-drawn controls, along with the shared
// drawing primitives built on them. Controls reference colors by role,
// never by raw value, so a restyle is a palette swap that requires no
// per-control changes.
package styles

import (
	"fmt"
	"image/color"
)

// Roles are the semantic color roles of a control palette. Role order
// is stable across the toolkit; controls index palettes by role.
type Roles int32

const (
	// Background is the color behind the control's handle.
	Background Roles = iota

	// Foreground is the main handle fill.
	Foreground

	// Pressed is the handle fill while the control is pressed.
	Pressed

	// Frame is the outline stroke color.
	Frame

	// Highlight is the hover overlay and splash color.
	Highlight

	// Shadow is the drop/inner shadow color.
	Shadow

	// Extra1 is the first accent role; its meaning is per-widget.
	Extra1

	// Extra2 is the second accent role.
	Extra2

	// Extra3 is the third accent role.
	Extra3

	// RolesN is the number of color roles.
	RolesN
)

var roleNames = [RolesN]string{
	"background", "foreground", "pressed", "frame",
	"highlight", "shadow", "extra1", "extra2", "extra3",
}

func (r Roles) String() string {
	if r < 0 || r >= RolesN {
		return fmt.Sprintf("Roles(%d)", int32(r))
	}
	return roleNames[r]
}

// ColorSpec is a complete nine-role palette.
type ColorSpec struct {
	Background color.RGBA
	Foreground color.RGBA
	Pressed    color.RGBA
	Frame      color.RGBA
	Highlight  color.RGBA
	Shadow     color.RGBA
	Extra1     color.RGBA
	Extra2     color.RGBA
	Extra3     color.RGBA
}

// Colors returns the palette as an array indexed by [Roles].
func (cs ColorSpec) Colors() [RolesN]color.RGBA {
	return [RolesN]color.RGBA{
		cs.Background, cs.Foreground, cs.Pressed, cs.Frame,
		cs.Highlight, cs.Shadow, cs.Extra1, cs.Extra2, cs.Extra3,
	}
}

// DefaultSpec returns the palette controls start with. It is
// constructed fresh per call; there is no shared mutable default.
func DefaultSpec() ColorSpec {
	return ColorSpec{
		Background: color.RGBA{220, 220, 225, 255},
		Foreground: color.RGBA{120, 120, 130, 255},
		Pressed:    color.RGBA{80, 80, 95, 255},
		Frame:      color.RGBA{50, 50, 55, 255},
		Highlight:  color.RGBA{255, 255, 255, 80},
		Shadow:     color.RGBA{0, 0, 0, 70},
		Extra1:     color.RGBA{230, 90, 60, 255},
		Extra2:     color.RGBA{70, 150, 220, 255},
		Extra3:     color.RGBA{100, 200, 120, 255},
	}
}
