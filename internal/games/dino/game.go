// Package dino implements the side-scrolling runner simulation: player
// physics, obstacle spawning with score-keyed speed scaling, shape-aware
// collision and the running/game-over state machine.
//
// The package is pure: it never reads clocks, keys or displays. Callers feed
// it one core.Intents per fixed tick and read back a Frame.
package dino

import (
	"github.com/vovakirdan/pocketdino/internal/config"
	"github.com/vovakirdan/pocketdino/internal/core"
)

// Phase is the state machine's state.
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	if p == PhaseGameOver {
		return "game_over"
	}
	return "running"
}

// World is the complete mutable simulation state of one power cycle.
type World struct {
	Phase     Phase
	Score     int
	HighScore int
	Tick      uint64 // running ticks since the last reset
	Player    Player
	Obstacle  Obstacle

	AerialPassed int      // aerial obstacles cleared this run
	Summary      *Summary // set while in game over
	guardTicks   int      // game-over ticks left before reset is honored
}

// Summary is the end-of-run report shown on the game-over screen.
type Summary struct {
	Score     int
	HighScore int
	NewBest   bool
	Ticks     uint64
}

// State is the light-weight status returned by Step.
type State struct {
	Phase     Phase
	Score     int
	HighScore int
	Tick      uint64
}

// StepResult is returned by Step after each simulation tick.
// The flags describe what happened during that tick.
type StepResult struct {
	State     State
	Jumped    bool
	Scored    bool
	Crashed   bool
	Restarted bool
}

// Game is the runner state machine. It is not safe for concurrent use.
type Game struct {
	cfg        config.DinoConfig
	world      World
	spawner    *Spawner
	detector   Detector
	resetGuard int
}

// New creates a game in the running phase.
func New(cfg config.DinoConfig, rng Rand) *Game {
	g := &Game{
		cfg:        cfg,
		spawner:    NewSpawner(cfg, rng),
		detector:   NewDetector(cfg.Collision),
		resetGuard: cfg.Timing.ResetGuardTicks(),
	}
	g.world.Player = *NewPlayer(cfg)
	g.restart()
	return g
}

// Step advances the game by one tick.
//
// While running the order is fixed: player input and physics, obstacle
// advance and respawn, collision, transition. Game over is inert apart from
// the reset check.
func (g *Game) Step(in core.Intents) StepResult {
	w := &g.world

	if w.Phase == PhaseGameOver {
		if w.guardTicks > 0 {
			w.guardTicks--
			return StepResult{State: g.State()}
		}
		if in.Reset {
			g.restart()
			return StepResult{State: g.State(), Restarted: true}
		}
		return StepResult{State: g.State()}
	}

	var res StepResult
	w.Tick++

	res.Jumped = w.Player.Update(in.Jump, in.Crouch)

	moved, passed := g.spawner.Advance(w.Obstacle, w.Score)
	w.Obstacle = moved
	if passed {
		if moved.Kind() == KindAerial {
			w.AerialPassed++
		}
		w.Score++
		w.Obstacle = g.spawner.Spawn(w.Score)
		res.Scored = true
	}

	if g.detector.Collides(w.Player.Rect(), w.Obstacle) {
		g.endRun()
		res.Crashed = true
	}

	res.State = g.State()
	return res
}

// endRun moves to game over and records the high score.
func (g *Game) endRun() {
	w := &g.world
	newBest := w.Score > w.HighScore
	if newBest {
		w.HighScore = w.Score
	}
	w.Phase = PhaseGameOver
	w.guardTicks = g.resetGuard
	w.Summary = &Summary{
		Score:     w.Score,
		HighScore: w.HighScore,
		NewBest:   newBest,
		Ticks:     w.Tick,
	}
}

// restart resets every per-run field in one go; the high score survives.
func (g *Game) restart() {
	w := &g.world
	w.Player.Reset()
	w.Obstacle = g.spawner.Initial()
	w.Score = 0
	w.Tick = 0
	w.AerialPassed = 0
	w.Summary = nil
	w.guardTicks = 0
	w.Phase = PhaseRunning
}

// State returns the current status.
func (g *Game) State() State {
	return State{
		Phase:     g.world.Phase,
		Score:     g.world.Score,
		HighScore: g.world.HighScore,
		Tick:      g.world.Tick,
	}
}

// World returns a copy of the simulation state.
func (g *Game) World() World {
	return g.world
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.DinoConfig {
	return g.cfg
}
