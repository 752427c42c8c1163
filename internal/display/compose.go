package display

import (
	"strconv"

	"github.com/vovakirdan/pocketdino/internal/assets"
	"github.com/vovakirdan/pocketdino/internal/core"
	"github.com/vovakirdan/pocketdino/internal/games/dino"
)

// Game-over panel baselines.
var panelBaselines = [3]int{24, 37, 50}

// Compose draws a frame into fb, replacing its previous contents.
//
// While running it draws the ground line, the score in the top-right corner,
// the player and the active obstacle. Game over shows only the summary panel.
func Compose(fb *Framebuffer, f dino.Frame) {
	fb.Clear()

	if f.Phase == dino.PhaseGameOver && f.Summary != nil {
		lines := [3]string{
			"GAME OVER",
			"Score: " + strconv.Itoa(f.Summary.Score),
			"Best: " + strconv.Itoa(f.Summary.HighScore),
		}
		for i, line := range lines {
			fb.DrawText((fb.Width()-TextWidth(line))/2, panelBaselines[i], line)
		}
		return
	}

	fb.DrawHLine(0, fb.Width()-1, f.GroundY)

	hud := "Score: " + strconv.Itoa(f.Score)
	fb.DrawText(fb.Width()-TextWidth(hud)-1, glyphAscent, hud)

	p := f.Player.Rect
	if f.Player.Posture == dino.PostureCrouching {
		fb.DrawBitmap(p.X, p.Y, assets.DinoCrouch)
	} else {
		fb.DrawBitmap(p.X, p.Y, assets.DinoStand)
	}

	o := f.Obstacle.Rect
	switch f.Obstacle.Kind {
	case dino.KindAerial:
		if f.Obstacle.WingUp {
			fb.DrawBitmap(o.X, o.Y, assets.BirdWingUp)
		} else {
			fb.DrawBitmap(o.X, o.Y, assets.BirdWingDown)
		}
	default:
		fb.DrawBitmap(o.X, o.Y, assets.Cactus)
	}
}

// Half-block glyphs indexed by (top lit)<<1 | (bottom lit).
var halfBlocks = [4]rune{' ', '▄', '▀', '█'}

// HalfBlocks converts fb into text, two vertical pixels per character cell.
// The screen is resized by the caller; cells outside it are skipped.
func HalfBlocks(fb *Framebuffer, s *core.Screen) {
	s.Clear()
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			i := 0
			if fb.On(x, 2*y) {
				i |= 2
			}
			if fb.On(x, 2*y+1) {
				i |= 1
			}
			s.Set(x, y, halfBlocks[i])
		}
	}
}

// CellRows returns how many text rows HalfBlocks needs for fb.
func CellRows(fb *Framebuffer) int {
	return (fb.Height() + 1) / 2
}

// Text renders fb as half-block text without styling, one line per cell row.
// Used for clipboard copies.
func Text(fb *Framebuffer) string {
	s := core.NewScreen(fb.Width(), CellRows(fb))
	HalfBlocks(fb, s)
	return s.String()
}
