// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx configures the default [slog] logger used throughout
// quaddemo, with level-colored output on terminals.
package logx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity [slog.Level] that the user has selected
// for what logging and printing messages should be shown.
// Messages at levels at or above this level will be shown.
var UserLevel = slog.LevelInfo

// ParseLevel returns the [slog.Level] named by s, which is one of
// debug, info, warn, or error (case insensitive).
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("logx: unknown log level %q", s)
}

// NewHandler returns a [slog.Handler] writing to w at [UserLevel].
// Each record starts with its level, colored according to the color
// profile of w (plain for files and pipes), followed by the record
// in [slog.TextHandler] format.
func NewHandler(w io.Writer, opts ...termenv.OutputOption) slog.Handler {
	out := termenv.NewOutput(w, opts...)
	text := slog.NewTextHandler(out, &slog.HandlerOptions{
		Level: UserLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.LevelKey {
				return slog.Attr{}
			}
			return a
		},
	})
	return &handler{Handler: text, out: out, mu: &sync.Mutex{}}
}

// handler prefixes a text handler's records with a colored level.
type handler struct {
	slog.Handler
	out *termenv.Output
	mu  *sync.Mutex
}

func (h *handler) Handle(ctx context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	lvl := h.out.String(fmt.Sprintf("%-5s", r.Level.String())).Foreground(LevelColor(r.Level))
	if _, err := io.WriteString(h.out, lvl.String()+" "); err != nil {
		return err
	}
	return h.Handler.Handle(ctx, r)
}

func (h *handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &handler{Handler: h.Handler.WithAttrs(attrs), out: h.out, mu: h.mu}
}

func (h *handler) WithGroup(name string) slog.Handler {
	return &handler{Handler: h.Handler.WithGroup(name), out: h.out, mu: h.mu}
}

// SetDefaultLogger installs a [NewHandler] logger writing to w
// as the [slog] default.
func SetDefaultLogger(w io.Writer, opts ...termenv.OutputOption) {
	slog.SetDefault(slog.New(NewHandler(w, opts...)))
}

// LevelColor returns the terminal color used for the given level.
func LevelColor(lvl slog.Level) termenv.Color {
	switch {
	case lvl >= slog.LevelError:
		return termenv.ANSIRed
	case lvl >= slog.LevelWarn:
		return termenv.ANSIYellow
	case lvl >= slog.LevelInfo:
		return termenv.ANSIGreen
	}
	return termenv.ANSIBrightBlack
}
