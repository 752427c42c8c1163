// Package runner drives a dino game from a free-running host loop.
//
// Front-ends call Poll as often as they like with the current monotonic time
// and button levels. The runner steps the simulation when the scheduler says
// a tick is due, keeps the wing animation timer, logs run events, records
// finished runs and hands every new frame to the display.
package runner

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pocketdino/internal/config"
	"github.com/vovakirdan/pocketdino/internal/core"
	"github.com/vovakirdan/pocketdino/internal/games/dino"
	"github.com/vovakirdan/pocketdino/internal/storage"
)

// ErrDisplayUnavailable is returned when the display cannot be started.
var ErrDisplayUnavailable = errors.New("runner: display unavailable")

// Display consumes one frame per simulation tick.
type Display interface {
	// Begin prepares the output device. An error refuses start-up.
	Begin() error
	// Present shows a frame. It must not block the loop.
	Present(f dino.Frame)
}

// RunLog records finished runs. *storage.Store satisfies it.
type RunLog interface {
	SaveRun(r storage.Run) (int64, error)
}

// Options are the optional collaborators of a Runner.
type Options struct {
	Logger *log.Logger // nil discards
	Runs   RunLog      // nil keeps no log
}

// Runner owns the game and the per-loop timing state. It is not safe for
// concurrent use; call it from the host loop's goroutine.
type Runner struct {
	game    *dino.Game
	display Display
	runs    RunLog
	logger  *log.Logger

	sched   *core.Scheduler
	sampler core.Sampler
	flap    *core.PhaseTimer

	lastPoll time.Duration
	frame    dino.Frame
}

// New starts the display and creates a runner. The simulation does not
// begin if the display fails.
func New(cfg config.DinoConfig, rng dino.Rand, display Display, opts Options) (*Runner, error) {
	if err := display.Begin(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDisplayUnavailable, err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	r := &Runner{
		game:    dino.New(cfg, rng),
		display: display,
		runs:    opts.Runs,
		logger:  logger,
		sched:   core.NewScheduler(cfg.Timing.TickInterval()),
		flap:    core.NewPhaseTimer(cfg.Timing.FlapPeriod(), true),
	}
	r.frame = r.decorate(r.game.Frame())

	r.logger.Info("run started", "tick", cfg.Timing.TickInterval(), "policy", cfg.Collision.GroundPolicy)
	r.display.Present(r.frame)
	return r, nil
}

// Poll advances the runner to now with the given button levels and reports
// whether a simulation tick ran. Levels are only sampled on ticks, so a
// press shorter than one tick interval between polls may be missed.
func (r *Runner) Poll(now time.Duration, levels core.InputFrame) bool {
	dt := now - r.lastPoll
	r.lastPoll = now

	if r.frame.Phase == dino.PhaseRunning && r.frame.Obstacle.Kind == dino.KindAerial {
		r.flap.Advance(dt)
	}

	if !r.sched.Tick(now) {
		return false
	}

	res := r.game.Step(r.sampler.Sample(levels))
	r.observe(res)

	r.frame = r.decorate(r.game.Frame())
	r.display.Present(r.frame)
	return true
}

// decorate fills in the presentation-only parts of a frame.
func (r *Runner) decorate(f dino.Frame) dino.Frame {
	if f.Obstacle.Kind == dino.KindAerial {
		f.Obstacle.WingUp = r.flap.Phase()
	}
	return f
}

func (r *Runner) observe(res dino.StepResult) {
	switch {
	case res.Crashed:
		w := r.game.World()
		r.logger.Info("game over",
			"score", res.State.Score,
			"high_score", res.State.HighScore,
			"ticks", res.State.Tick,
		)
		if r.runs != nil {
			_, err := r.runs.SaveRun(storage.Run{
				Score:        res.State.Score,
				HighScore:    res.State.HighScore,
				Ticks:        res.State.Tick,
				AerialPassed: w.AerialPassed,
			})
			if err != nil {
				r.logger.Warn("could not record run", "error", err)
			}
		}
	case res.Restarted:
		r.logger.Info("run reset", "high_score", res.State.HighScore)
	case res.Scored:
		r.logger.Debug("obstacle passed", "score", res.State.Score)
	}
}

// Frame returns the most recently presented frame.
func (r *Runner) Frame() dino.Frame {
	return r.frame
}

// State returns the game's current status.
func (r *Runner) State() dino.State {
	return r.game.State()
}
