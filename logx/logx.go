// Copyright (c) 2026, The Plugkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx configures the standard [log/slog] logger for plugkit:
// a user-settable level, a default chosen by build tags (debug,
// release), and colored level names on terminals that support them.
package logx

import (
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// UserLevel is the current logging level. The default comes from build
// tags: Debug with -tags debug, Warn with -tags release, Info
// otherwise.
var UserLevel = defaultUserLevel

// Is reports whether messages at the given level are logged.
func Is(level slog.Level) bool {
	return level >= UserLevel
}

// levelVar tracks UserLevel for the installed handler.
type levelVar struct{}

func (levelVar) Level() slog.Level { return UserLevel }

// Init installs a text handler on [slog.Default] that follows
// [UserLevel] and colors level names when stderr is a capable
// terminal.
func Init() {
	out := termenv.NewOutput(os.Stderr)
	profile := out.EnvColorProfile()
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: levelVar{},
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key != slog.LevelKey || profile == termenv.Ascii {
				return a
			}
			level, ok := a.Value.Any().(slog.Level)
			if !ok {
				return a
			}
			s := out.String(level.String())
			switch {
			case level >= slog.LevelError:
				s = s.Foreground(profile.Color("9"))
			case level >= slog.LevelWarn:
				s = s.Foreground(profile.Color("11"))
			case level >= slog.LevelInfo:
				s = s.Foreground(profile.Color("12"))
			default:
				s = s.Foreground(profile.Color("8"))
			}
			a.Value = slog.StringValue(s.String())
			return a
		},
	})
	slog.SetDefault(slog.New(h))
}
