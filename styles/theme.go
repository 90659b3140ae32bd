// Copyright (c) 2026, The Plugkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"fmt"
	"image/color"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Theme is the on-disk TOML form of a control style: a nine-role
// palette in #RRGGBB or #RRGGBBAA hex, plus the geometric settings.
type Theme struct {
	Background string `toml:"background"`
	Foreground string `toml:"foreground"`
	Pressed    string `toml:"pressed"`
	Frame      string `toml:"frame"`
	Highlight  string `toml:"highlight"`
	Shadow     string `toml:"shadow"`
	Extra1     string `toml:"extra1"`
	Extra2     string `toml:"extra2"`
	Extra3     string `toml:"extra3"`

	Roundness      float32 `toml:"roundness"`
	FrameThickness float32 `toml:"frame-thickness"`
	ShadowOffset   float32 `toml:"shadow-offset"`
	DrawFrame      bool    `toml:"draw-frame"`
	DrawShadows    bool    `toml:"draw-shadows"`
	Emboss         bool    `toml:"emboss"`
}

// OpenTheme reads a [Theme] from a TOML file.
func OpenTheme(filename string) (*Theme, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("styles: opening theme: %w", err)
	}
	t := &Theme{}
	if err := toml.Unmarshal(b, t); err != nil {
		return nil, fmt.Errorf("styles: parsing theme %s: %w", filename, err)
	}
	return t, nil
}

// SaveTheme writes a [Theme] to a TOML file.
func SaveTheme(filename string, t *Theme) error {
	b, err := toml.Marshal(t)
	if err != nil {
		return fmt.Errorf("styles: encoding theme: %w", err)
	}
	if err := os.WriteFile(filename, b, 0o644); err != nil {
		return fmt.Errorf("styles: saving theme: %w", err)
	}
	return nil
}

// NewTheme returns the TOML form of the given palette and geometry
// settings, suitable for saving.
func NewTheme(spec ColorSpec, v *Vector) *Theme {
	return &Theme{
		Background: ToHex(spec.Background),
		Foreground: ToHex(spec.Foreground),
		Pressed:    ToHex(spec.Pressed),
		Frame:      ToHex(spec.Frame),
		Highlight:  ToHex(spec.Highlight),
		Shadow:     ToHex(spec.Shadow),
		Extra1:     ToHex(spec.Extra1),
		Extra2:     ToHex(spec.Extra2),
		Extra3:     ToHex(spec.Extra3),

		Roundness:      v.Roundness(),
		FrameThickness: v.FrameThickness(),
		ShadowOffset:   v.ShadowOffset(),
		DrawFrame:      v.DrawsFrame(),
		DrawShadows:    v.DrawsShadows(),
		Emboss:         v.Emboss(),
	}
}

// Spec parses the theme's palette. Roles left empty fall back to the
// corresponding default role color.
func (t *Theme) Spec() (ColorSpec, error) {
	spec := DefaultSpec()
	fields := []struct {
		hex string
		dst *color.RGBA
	}{
		{t.Background, &spec.Background},
		{t.Foreground, &spec.Foreground},
		{t.Pressed, &spec.Pressed},
		{t.Frame, &spec.Frame},
		{t.Highlight, &spec.Highlight},
		{t.Shadow, &spec.Shadow},
		{t.Extra1, &spec.Extra1},
		{t.Extra2, &spec.Extra2},
		{t.Extra3, &spec.Extra3},
	}
	for _, f := range fields {
		if f.hex == "" {
			continue
		}
		clr, err := FromHex(f.hex)
		if err != nil {
			return spec, err
		}
		*f.dst = clr
	}
	return spec, nil
}

// Apply sets the theme's palette and geometry on the given style
// component.
func (t *Theme) Apply(v *Vector) error {
	spec, err := t.Spec()
	if err != nil {
		return err
	}
	v.SetColors(spec)
	v.SetGeometry(t.DrawFrame, t.DrawShadows, t.Emboss, t.Roundness, t.FrameThickness, t.ShadowOffset)
	return nil
}

// FromHex parses a color from #RRGGBB or #RRGGBBAA hex form; the
// leading # is optional.
func FromHex(hex string) (color.RGBA, error) {
	if len(hex) > 0 && hex[0] == '#' {
		hex = hex[1:]
	}
	var c color.RGBA
	c.A = 255
	switch len(hex) {
	case 6:
		if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
			return c, fmt.Errorf("styles: invalid hex color %q: %w", hex, err)
		}
	case 8:
		if _, err := fmt.Sscanf(hex, "%02x%02x%02x%02x", &c.R, &c.G, &c.B, &c.A); err != nil {
			return c, fmt.Errorf("styles: invalid hex color %q: %w", hex, err)
		}
	default:
		return c, fmt.Errorf("styles: invalid hex color %q", hex)
	}
	return c, nil
}

// ToHex formats a color in #RRGGBB form, or #RRGGBBAA if not opaque.
func ToHex(c color.RGBA) string {
	if c.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}
