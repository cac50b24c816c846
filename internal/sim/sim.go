// Package sim runs sessions without a window: the loop renders into an
// unpaced surface and time advances by a fixed step per iteration.
package sim

import (
	"context"
	"fmt"
	"time"

	"cannon/internal/core"
	"cannon/internal/game"
	"cannon/internal/surface"
)

// Options configures a headless run.
type Options struct {
	Game   game.Config
	Width  int
	Height int
	// Step is the simulated time between loop iterations.
	Step time.Duration
}

// DefaultOptions matches a 320x480 screen refreshed every 16ms.
func DefaultOptions() Options {
	return Options{Game: game.DefaultConfig(), Width: 320, Height: 480, Step: 16 * time.Millisecond}
}

// Reason explains why a session ended.
type Reason string

const (
	ReasonReflections Reason = "reflections"
	ReasonTime        Reason = "time"
	ReasonCancelled   Reason = "cancelled"
)

// Outcome is the final state of a headless session.
type Outcome struct {
	Seed     int64
	Reason   Reason
	Result   game.Result
	Session  game.Session
	Geometry game.Geometry
	Frames   uint64
}

// Run plays one session to its end, or until ctx is done. The returned
// buffer holds the last rendered frame; the caller closes it.
func Run(ctx context.Context, opts Options) (Outcome, *surface.Buffer, error) {
	if opts.Step <= 0 {
		opts.Step = DefaultOptions().Step
	}
	buf := surface.NewBuffer(false)
	if err := buf.Resize(opts.Width, opts.Height); err != nil {
		return Outcome{}, nil, fmt.Errorf("sim: %w", err)
	}

	done := make(chan game.Result, 1)
	g := game.New(opts.Game,
		game.WithClock(core.NewStepClock(opts.Step)),
		game.WithDialog(game.DialogFunc(func(r game.Result) {
			select {
			case done <- r:
			default:
			}
		})),
	)
	if err := g.SurfaceChanged(opts.Width, opts.Height); err != nil {
		buf.Close()
		return Outcome{}, nil, fmt.Errorf("sim: %w", err)
	}
	g.SurfaceCreated(buf)

	out := Outcome{Seed: opts.Game.Seed}
	select {
	case r := <-done:
		out.Result = r
	case <-ctx.Done():
		out.Reason = ReasonCancelled
	}
	g.SurfaceDestroyed()

	out.Session = g.State()
	out.Geometry = g.Geometry()
	out.Frames = buf.Posted()
	if out.Reason == "" {
		out.Reason = ReasonTime
		if out.Session.Reflections >= g.Config().ReflectionCap {
			out.Reason = ReasonReflections
		}
	}
	if err := ctx.Err(); err != nil && out.Reason == ReasonCancelled {
		return out, buf, err
	}
	return out, buf, nil
}
