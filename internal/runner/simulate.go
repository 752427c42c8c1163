package runner

import (
	"math/rand"

	"github.com/vovakirdan/pocketdino/internal/config"
	"github.com/vovakirdan/pocketdino/internal/core"
	"github.com/vovakirdan/pocketdino/internal/games/dino"
)

// Headless is a Display that only keeps the last frame.
type Headless struct {
	Frames int
	Last   dino.Frame
}

// Begin always succeeds.
func (h *Headless) Begin() error { return nil }

// Present records f.
func (h *Headless) Present(f dino.Frame) {
	h.Frames++
	h.Last = f
}

// SimOptions configure a headless autopilot session.
type SimOptions struct {
	Runs     int    // finished runs to collect
	MaxTicks uint64 // polls allowed per requested run before giving up
	Skill    int    // autopilot skill in percent
	Seed     int64  // obstacle and autopilot seed
	Options
}

// SimResult summarizes a headless session.
type SimResult struct {
	Finished  int
	Ticks     uint64
	HighScore int
	Capped    bool // stopped by MaxTicks before Runs finished
}

// Simulate plays runs with the autopilot on a manual clock, one poll per
// tick interval, so it runs as fast as the CPU allows and is repeatable for
// a given seed.
func Simulate(cfg config.DinoConfig, opts SimOptions) (SimResult, error) {
	if opts.Runs <= 0 {
		opts.Runs = 1
	}
	if opts.MaxTicks == 0 {
		opts.MaxTicks = 20000
	}

	r, err := New(cfg, rand.New(rand.NewSource(opts.Seed)), &Headless{}, opts.Options)
	if err != nil {
		return SimResult{}, err
	}
	bot := dino.NewAutopilot(rand.New(rand.NewSource(opts.Seed+1)), opts.Skill)

	clock := &core.ManualClock{}
	step := cfg.Timing.TickInterval()
	budget := opts.MaxTicks * uint64(opts.Runs)

	var res SimResult
	for polls := uint64(0); res.Finished < opts.Runs; polls++ {
		if polls >= budget {
			res.Capped = true
			break
		}
		clock.Advance(step)

		before := r.State().Phase
		if r.Poll(clock.Now(), bot.Decide(r.Frame())) {
			res.Ticks++
		}
		if before == dino.PhaseRunning && r.State().Phase == dino.PhaseGameOver {
			res.Finished++
		}
	}

	res.HighScore = r.State().HighScore
	r.logger.Info("simulation finished", "runs", res.Finished, "ticks", res.Ticks, "high_score", res.HighScore)
	return res, nil
}
