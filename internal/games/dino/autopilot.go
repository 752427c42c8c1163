package dino

import "github.com/vovakirdan/pocketdino/internal/core"

// Autopilot is a scripted player used by the headless simulator. It only
// looks at Frames, the same information a display gets.
type Autopilot struct {
	rng   Rand
	skill int // percent of obstacles handled correctly

	lastScore int
	fumble    bool
	pressed   bool
}

// NewAutopilot creates a bot. skill is clamped to [0, 100]; 100 never
// fumbles an obstacle on purpose.
func NewAutopilot(rng Rand, skill int) *Autopilot {
	skill = core.Clamp(skill, 0, 100)
	return &Autopilot{rng: rng, skill: skill, lastScore: -1}
}

// Decide returns the button levels for the next tick.
func (a *Autopilot) Decide(f Frame) core.InputFrame {
	in := core.NewInputFrame()

	if f.Phase == PhaseGameOver {
		// Release and press again so the press registers as a new edge.
		a.pressed = !a.pressed
		if a.pressed {
			in.Set(core.ActionJump)
		}
		a.lastScore = -1
		return in
	}
	a.pressed = false

	if f.Score != a.lastScore {
		a.lastScore = f.Score
		a.fumble = a.skill < 100 && a.rng.Intn(100) >= a.skill
	}
	if a.fumble {
		return in
	}

	p := f.Player.Rect
	o := f.Obstacle.Rect
	v := f.Obstacle.Speed

	switch f.Obstacle.Kind {
	case KindGround:
		// Take off three to four ticks before the obstacle reaches the
		// player so the feet are high enough by the time it arrives.
		if !f.Player.Airborne && o.Right() >= p.X && o.X <= p.Right()+4*v {
			in.Set(core.ActionJump)
		}
	case KindAerial:
		if o.X <= p.Right()+2*v && o.Right() >= p.X {
			in.Set(core.ActionCrouch)
		}
	}
	return in
}
