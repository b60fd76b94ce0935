// Package loop drives the starfield: it pumps events, draws every star each
// frame, presents, and paces frames with a fixed delay.
package loop

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/starfield/internal/core"
	"github.com/vovakirdan/starfield/internal/gfx"
	"github.com/vovakirdan/starfield/internal/starfield"
)

// State is the driver's run state.
type State int

const (
	Running State = iota
	Stopped
)

func (s State) String() string {
	switch s {
	case Running:
		return "Running"
	case Stopped:
		return "Stopped"
	default:
		return "Unknown"
	}
}

// EventSource is the part of a backend the driver needs.
type EventSource interface {
	PollEvent() core.Event
	Delay(d time.Duration)
}

// Options configures a Driver.
type Options struct {
	Events     EventSource
	Renderer   gfx.Renderer
	Simulator  *starfield.Simulator
	Background core.Color
	Foreground core.Color
	FrameDelay time.Duration
	MaxFrames  int // Stop after this many frames; 0 runs until quit
	Logger     *log.Logger
}

// Stats summarizes a run.
type Stats struct {
	Frames     int // Frames drawn and presented
	Points     int // Points successfully drawn
	DrawErrors int // Failed draw calls, all non-fatal
}

// Driver owns the render loop. Not safe for concurrent use.
type Driver struct {
	opts   Options
	state  State
	stats  Stats
	points []core.Point
}

// New creates a driver in the Running state.
func New(opts Options) *Driver {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return &Driver{
		opts:   opts,
		state:  Running,
		points: make([]core.Point, 0, opts.Simulator.Len()),
	}
}

// State returns the current run state.
func (d *Driver) State() State {
	return d.state
}

// Run loops until a quit event, ctx cancellation, or the frame limit.
// The iteration that observes the stop condition still draws and presents
// its frame; no further iteration starts.
func (d *Driver) Run(ctx context.Context) Stats {
	for d.state == Running {
		d.pollOnce(ctx)
		d.frame()

		if d.opts.MaxFrames > 0 && d.stats.Frames >= d.opts.MaxFrames {
			d.stop("frame limit reached")
		}

		d.opts.Events.Delay(d.opts.FrameDelay)
	}

	d.opts.Logger.Debug("render loop stopped",
		"frames", d.stats.Frames,
		"points", d.stats.Points,
		"draw_errors", d.stats.DrawErrors,
	)
	return d.stats
}

// pollOnce handles at most one pending event.
func (d *Driver) pollOnce(ctx context.Context) {
	if ctx.Err() != nil {
		d.stop("context done")
		return
	}

	ev := d.opts.Events.PollEvent()
	switch {
	case ev.IsQuit():
		d.stop("quit event")
	case ev.Type != core.EventNone:
		d.opts.Logger.Debug("event ignored", "type", ev.Type, "key", ev.Key)
	}
}

func (d *Driver) stop(reason string) {
	if d.state == Stopped {
		return
	}
	d.opts.Logger.Debug("stopping", "reason", reason, "frame", d.stats.Frames)
	d.state = Stopped
}

// frame clears, draws every star, and presents. Draw failures are logged
// and counted but never abort the frame.
func (d *Driver) frame() {
	r := d.opts.Renderer

	d.check("set background", r.SetDrawColor(d.opts.Background))
	d.check("clear", r.Clear())
	d.check("set foreground", r.SetDrawColor(d.opts.Foreground))

	d.points = d.opts.Simulator.Step(d.points[:0])
	failed := 0
	var firstErr error
	for _, p := range d.points {
		if err := r.DrawPoint(p.X, p.Y); err != nil {
			if failed == 0 {
				firstErr = err
			}
			failed++
			continue
		}
		d.stats.Points++
	}
	if failed > 0 {
		d.stats.DrawErrors += failed
		d.opts.Logger.Error("draw point failed", "error", firstErr, "failed", failed, "frame", d.stats.Frames)
	}

	d.check("present", r.Present())
	d.stats.Frames++
}

func (d *Driver) check(op string, err error) {
	if err == nil {
		return
	}
	d.stats.DrawErrors++
	d.opts.Logger.Error("draw call failed", "op", op, "error", err, "frame", d.stats.Frames)
}
