package dino

import "github.com/vovakirdan/pocketdino/internal/core"

// Frame is a read-only view of one tick, handed to displays and the
// autopilot. It holds values only, so callers may keep it around.
type Frame struct {
	Tick      uint64
	Phase     Phase
	Score     int
	HighScore int

	FieldW  int
	FieldH  int
	GroundY int

	Player   PlayerView
	Obstacle ObstacleView

	// Summary is non-nil only in game over.
	Summary *Summary
}

// PlayerView describes the player for rendering.
type PlayerView struct {
	Rect     core.Rect
	Posture  Posture
	Airborne bool
}

// ObstacleView describes the active obstacle for rendering.
type ObstacleView struct {
	Kind   Kind
	Rect   core.Rect
	Speed  int
	WingUp bool // animation phase, filled in by the caller for aerial obstacles
}

// Frame returns the current view of the game.
func (g *Game) Frame() Frame {
	w := &g.world
	f := Frame{
		Tick:      w.Tick,
		Phase:     w.Phase,
		Score:     w.Score,
		HighScore: w.HighScore,
		FieldW:    g.cfg.Field.Width,
		FieldH:    g.cfg.Field.Height,
		GroundY:   g.cfg.Field.GroundY,
		Player: PlayerView{
			Rect:     w.Player.Rect(),
			Posture:  w.Player.Posture(),
			Airborne: w.Player.Airborne,
		},
		Obstacle: ObstacleView{
			Kind:  w.Obstacle.Kind(),
			Rect:  w.Obstacle.Rect(),
			Speed: g.spawner.Speed(w.Obstacle, w.Score),
		},
	}
	if w.Summary != nil {
		s := *w.Summary
		f.Summary = &s
	}
	return f
}
