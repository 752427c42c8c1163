package dino

import (
	"github.com/vovakirdan/pocketdino/internal/config"
	"github.com/vovakirdan/pocketdino/internal/core"
)

// Posture is the player's hitbox profile.
type Posture int

const (
	PostureStanding Posture = iota
	PostureCrouching
)

// String returns a human-readable name for the posture.
func (p Posture) String() string {
	if p == PostureCrouching {
		return "crouching"
	}
	return "standing"
}

// Player is the runner. It never moves horizontally; obstacles do.
// Y is the top of the hitbox and grows downward.
type Player struct {
	X         int
	Y         int
	VelY      int
	Width     int
	Height    int
	Airborne  bool
	Crouching bool

	groundY int
	body    config.PlayerConfig
	physics config.PhysicsConfig
}

// NewPlayer creates a standing player with its feet on the ground line.
func NewPlayer(cfg config.DinoConfig) *Player {
	p := &Player{
		groundY: cfg.Field.GroundY,
		body:    cfg.Player,
		physics: cfg.Physics,
	}
	p.Reset()
	return p
}

// Reset puts the player back on the ground, standing and at rest.
func (p *Player) Reset() {
	p.X = p.body.X
	p.Width = p.body.Width
	p.Height = p.body.StandHeight
	p.Y = p.restY()
	p.VelY = 0
	p.Airborne = false
	p.Crouching = false
}

// restY is the top of the hitbox when the feet touch the ground line.
func (p *Player) restY() int {
	return p.groundY - p.Height
}

// Update applies one tick of input and physics and reports whether a jump
// started this tick.
//
// Posture only changes on the ground and keeps the feet anchored. A jump
// needs the player grounded and standing. Integration is plain Euler:
// position first, then gravity while above the ground line.
func (p *Player) Update(jumpRequested, crouchHeld bool) (jumped bool) {
	if !p.Airborne {
		p.setCrouching(crouchHeld)
	}

	if jumpRequested && !p.Airborne && !p.Crouching {
		p.VelY = p.physics.JumpImpulse
		p.Airborne = true
		jumped = true
	}

	p.Y += p.VelY

	if p.Y < p.restY() {
		p.VelY += p.physics.Gravity
		if p.VelY > p.physics.MaxFallSpeed {
			p.VelY = p.physics.MaxFallSpeed
		}
	} else {
		p.VelY = 0
		p.Y = p.restY()
		p.Airborne = false
	}

	return jumped
}

func (p *Player) setCrouching(crouch bool) {
	if crouch == p.Crouching {
		return
	}
	p.Crouching = crouch
	if crouch {
		p.Height = p.body.CrouchHeight
	} else {
		p.Height = p.body.StandHeight
	}
	p.Y = p.restY()
}

// Posture returns the current hitbox profile.
func (p *Player) Posture() Posture {
	if p.Crouching {
		return PostureCrouching
	}
	return PostureStanding
}

// Rect returns the player's hitbox.
func (p *Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, p.Height)
}

// OnGround reports whether the feet are exactly on the ground line.
func (p *Player) OnGround() bool {
	return p.Y+p.Height == p.groundY
}
