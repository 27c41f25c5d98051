// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"context"
	"log/slog"
	"time"

	"github.com/quaddemo/quaddemo/base/errors"
)

// DefaultInterval is the time between redraws.
const DefaultInterval = 250 * time.Millisecond

// EventSource is the window side of the frame loop.
// [*Window] is the standard implementation.
type EventSource interface {
	// ShouldClose reports whether the loop should end.
	ShouldClose() bool

	// WaitEventsTimeout blocks until an event arrives or
	// the timeout passes.
	WaitEventsTimeout(timeout time.Duration)
}

// Drawer draws one frame. [*Context] is the standard implementation.
type Drawer interface {
	Draw() error
}

// FrameStates are the states of a [FrameLoop].
type FrameStates int32

const (
	// Idle is waiting for events until the next deadline.
	Idle FrameStates = iota

	// Rendering is drawing a frame.
	Rendering
)

func (fs FrameStates) String() string {
	if fs == Rendering {
		return "Rendering"
	}
	return "Idle"
}

// FrameStats counts the outcomes of frames.
type FrameStats struct {
	// Drawn is the number of frames drawn.
	Drawn int

	// Skipped is the number of frames dropped because the
	// swap chain texture could not be acquired.
	Skipped int
}

// FrameLoop redraws on a fixed interval. It waits for window events
// until the next deadline, then draws a frame and schedules the next
// deadline at the current time plus Interval.
type FrameLoop struct {
	// Interval between frames.
	Interval time.Duration

	// Source provides events and the close signal.
	Source EventSource

	// Drawer draws each frame.
	Drawer Drawer

	// State is the current state.
	State FrameStates

	// Stats counts frame outcomes.
	Stats FrameStats

	// Deadline is when the next frame is due.
	Deadline time.Time

	// Now returns the current time.
	Now func() time.Time
}

// NewFrameLoop returns a loop drawing with dr every interval,
// or every [DefaultInterval] if interval is not positive.
func NewFrameLoop(src EventSource, dr Drawer, interval time.Duration) *FrameLoop {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &FrameLoop{Interval: interval, Source: src, Drawer: dr, Now: time.Now}
}

// Run runs the loop until the source should close, which returns nil,
// or ctx is done, which returns the context error. The first frame is
// drawn immediately. A skipped frame is counted and dropped without
// retry; any other draw error ends the loop and is returned.
func (fl *FrameLoop) Run(ctx context.Context) error {
	fl.State = Idle
	fl.Deadline = fl.Now()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if fl.Source.ShouldClose() {
			return nil
		}
		now := fl.Now()
		if now.Before(fl.Deadline) {
			fl.Source.WaitEventsTimeout(fl.Deadline.Sub(now))
			continue
		}
		if err := fl.frame(); err != nil {
			return err
		}
	}
}

// frame draws one frame and schedules the next.
func (fl *FrameLoop) frame() error {
	fl.State = Rendering
	err := fl.Drawer.Draw()
	fl.State = Idle
	switch {
	case errors.Is(err, ErrFrameSkipped):
		fl.Stats.Skipped++
	case err != nil:
		return err
	default:
		fl.Stats.Drawn++
	}
	fl.Deadline = fl.Now().Add(fl.Interval)
	return nil
}

// LogStats logs the frame counts at debug level.
func (fl *FrameLoop) LogStats() {
	slog.Debug("frame loop done", "drawn", fl.Stats.Drawn, "skipped", fl.Stats.Skipped)
}
