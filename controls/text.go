// Copyright (c) 2026, The Plugkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package controls

import (
	"image/color"
	"log/slog"
	"strconv"
	"time"

	"github.com/plugkit/plugkit/events"
	"github.com/plugkit/plugkit/geom"
	"github.com/plugkit/plugkit/paint"
)

// Backdrop fills its bounds with a solid color and is transparent to
// the mouse. Panels use it as a background behind other controls.
type Backdrop struct {
	ControlBase

	// Color is the fill color.
	Color color.RGBA
}

// NewBackdrop returns a mouse-transparent fill.
func NewBackdrop(bounds geom.Rect, clr color.RGBA) *Backdrop {
	b := &Backdrop{Color: clr}
	b.Init(b, bounds)
	b.SetIgnoreMouse(true)
	return b
}

func (b *Backdrop) Draw(pr paint.Painter) {
	pr.FillRect(b.Color, b.Bounds())
}

// TextControl draws a string within its bounds.
type TextControl struct {
	ControlBase

	// Style is the text style; alignment places the string within the
	// bounds.
	Style paint.TextStyle

	// Background, if non-zero alpha, is filled behind the text.
	Background color.RGBA

	str string
}

// NewTextControl returns a static text display.
func NewTextControl(bounds geom.Rect, str string) *TextControl {
	t := &TextControl{Style: paint.DefaultTextStyle(), str: str}
	t.Init(t, bounds)
	t.SetIgnoreMouse(true)
	return t
}

// Text returns the displayed string.
func (t *TextControl) Text() string { return t.str }

// SetText replaces the displayed string and requests a redraw.
func (t *TextControl) SetText(str string) {
	if str == t.str {
		return
	}
	t.str = str
	t.SetDirty(false, AllValues)
}

func (t *TextControl) Draw(pr paint.Painter) {
	if t.Background.A > 0 {
		pr.FillRect(t.Background, t.Bounds())
	}
	if t.str != "" {
		pr.DrawText(t.Style, t.str, t.Bounds())
	}
}

// CaptionControl displays the linked parameter's current value as text
// and lets the user click it to type a new value. Typed input is
// interpreted in the parameter's real range.
type CaptionControl struct {
	TextControl
}

// NewCaption returns a caption for the given parameter.
func NewCaption(bounds geom.Rect, paramIdx int) *CaptionControl {
	c := &CaptionControl{}
	c.Style = paint.DefaultTextStyle()
	c.Init(c, bounds, paramIdx)
	c.SetIgnoreMouse(false)
	c.SetDisablePrompt(false)
	return c
}

// OnInit seeds the caption from the parameter default.
func (c *CaptionControl) OnInit() {
	if p := c.Param(0); p != nil {
		c.SetValue(p.DefaultNormalized(), 0)
	}
}

// OnMouseDown opens the text prompt.
func (c *CaptionControl) OnMouseDown(e *events.Mouse) {
	c.mouseDownPos = e.Pos
	c.PromptUserInput(0)
}

// OnTextEntry parses the typed string in the parameter's real range
// and applies it as a user edit. Unparseable input is logged and
// dropped.
func (c *CaptionControl) OnTextEntry(text string, valIdx int) {
	p := c.Param(valIdx)
	if p == nil {
		return
	}
	real64, err := strconv.ParseFloat(text, 32)
	if err != nil {
		slog.Debug("ignoring unparseable value entry", "text", text, "param", p.Name)
		return
	}
	c.SetValueFromUserInput(p.ToNormalized(float32(real64)), valIdx)
}

func (c *CaptionControl) Draw(pr paint.Painter) {
	if c.Background.A > 0 {
		pr.FillRect(c.Background, c.Bounds())
	}
	if p := c.Param(0); p != nil {
		pr.DrawText(c.Style, p.Display(c.Value(0)), c.Bounds())
	}
}

// LambdaControl delegates drawing to a func and reanimates itself on a
// fixed period, for meters and other continuously redrawn displays.
type LambdaControl struct {
	ControlBase

	// Render draws the control each frame; it can read
	// [ControlBase.AnimationProgress] for phase.
	Render func(c Control, pr paint.Painter, bounds geom.Rect)

	// Period is the animation duration; with Loop set the animation
	// restarts each time it completes.
	Period time.Duration

	// Loop keeps the animation running indefinitely.
	Loop bool
}

// NewLambda returns a func-drawn control. With startNow the animation
// begins immediately; otherwise a mouse press starts it.
func NewLambda(bounds geom.Rect, render func(c Control, pr paint.Painter, bounds geom.Rect),
	period time.Duration, loop, startNow bool) *LambdaControl {
	l := &LambdaControl{Render: render, Period: period, Loop: loop}
	l.Init(l, bounds)
	if startNow {
		l.SetAnimationAndStart(DefaultAnimation, period)
	}
	return l
}

// OnMouseDown records the press and (re)starts the animation.
func (l *LambdaControl) OnMouseDown(e *events.Mouse) {
	l.mouseDownPos = e.Pos
	l.SetAnimationAndStart(DefaultAnimation, l.Period)
}

// OnEndAnimation restarts a looping animation instead of clearing it.
func (l *LambdaControl) OnEndAnimation() {
	if l.Loop {
		l.StartAnimation(l.Period)
		l.SetDirty(false, AllValues)
		return
	}
	l.ControlBase.OnEndAnimation()
}

func (l *LambdaControl) Draw(pr paint.Painter) {
	if l.Render != nil {
		l.Render(l, pr, l.Bounds())
	}
}
