// Copyright (c) 2026, The Plugkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package controls

import (
	"time"

	"github.com/chewxy/math32"
	"github.com/plugkit/plugkit/styles"
	"github.com/tanema/gween/ease"
)

// DefaultAnimationDuration is the duration of click feedback
// animations started by the stock actions.
const DefaultAnimationDuration = 250 * time.Millisecond

// VectorStyler is implemented by controls that carry a vector style
// component, so shared actions can animate it.
type VectorStyler interface {
	VectorStyle() *styles.Vector
}

// DefaultAnimation just keeps the control redrawing every tick; the
// control's Draw reads [ControlBase.AnimationProgress] itself.
func DefaultAnimation(c Control) {
	c.Base().SetDirty(false, AllValues)
}

// SplashAnimation grows the splash circle of a vector-styled control
// over the animation, with a decelerating curve.
func SplashAnimation(c Control) {
	p := math32.Min(math32.Max(c.Base().AnimationProgress(), 0), 1)
	if vs, ok := c.(VectorStyler); ok {
		vs.VectorStyle().SetSplashRadius(ease.OutQuad(p, 0, 1, 1))
	}
	c.Base().SetDirty(false, AllValues)
}

// SplashClickAction is the stock click action for vector buttons: it
// resets the splash and starts the splash animation.
func SplashClickAction(c Control) {
	if vs, ok := c.(VectorStyler); ok {
		vs.VectorStyle().SetSplashRadius(0)
	}
	c.Base().SetAnimationAndStart(SplashAnimation, DefaultAnimationDuration)
}
