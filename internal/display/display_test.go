package display

import (
	"testing"

	"github.com/vovakirdan/pocketdino/internal/assets"
	"github.com/vovakirdan/pocketdino/internal/core"
	"github.com/vovakirdan/pocketdino/internal/games/dino"
)

func spritePixels(s assets.Sprite) int {
	n := 0
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			if s.On(x, y) {
				n++
			}
		}
	}
	return n
}

func TestDrawBitmap(t *testing.T) {
	fb := NewFramebuffer(128, 64)
	fb.DrawBitmap(20, 10, assets.Cactus)

	if got, expected := fb.Lit(), spritePixels(assets.Cactus); got != expected {
		t.Errorf("lit = %d, expected %d", got, expected)
	}
	for y := 0; y < assets.Cactus.Height; y++ {
		for x := 0; x < assets.Cactus.Width; x++ {
			if fb.On(20+x, 10+y) != assets.Cactus.On(x, y) {
				t.Fatalf("pixel (%d,%d) does not match the sprite", x, y)
			}
		}
	}
}

func TestDrawBitmapClips(t *testing.T) {
	fb := NewFramebuffer(128, 64)
	fb.DrawBitmap(-8, 56, assets.BirdWingUp)
	fb.DrawBitmap(124, -8, assets.DinoStand)

	if fb.Lit() >= spritePixels(assets.BirdWingUp)+spritePixels(assets.DinoStand) {
		t.Error("sprites partly off screen should be clipped")
	}
	if fb.On(-1, 0) || fb.On(128, 0) || fb.On(0, 64) {
		t.Error("out-of-range pixels must read as off")
	}
}

func TestDrawHLine(t *testing.T) {
	fb := NewFramebuffer(128, 64)
	fb.DrawHLine(140, -5, 60)

	if fb.Lit() != 128 {
		t.Errorf("lit = %d, expected a clipped full-width line", fb.Lit())
	}
}

func TestDrawText(t *testing.T) {
	if w := TextWidth("Score: 12"); w != 63 {
		t.Errorf("TextWidth = %d, expected 63", w)
	}

	fb := NewFramebuffer(128, 64)
	fb.DrawText(10, 20, "A")
	if fb.Lit() == 0 {
		t.Fatal("text should light pixels")
	}
	for y := 0; y < 64; y++ {
		for x := 0; x < 128; x++ {
			if !fb.On(x, y) {
				continue
			}
			if x < 10 || x >= 17 || y < 20-glyphAscent || y > 22 {
				t.Fatalf("glyph pixel (%d,%d) outside its cell", x, y)
			}
		}
	}
}

func runningFrame() dino.Frame {
	return dino.Frame{
		Phase:   dino.PhaseRunning,
		Score:   7,
		FieldW:  128,
		FieldH:  64,
		GroundY: 60,
		Player: dino.PlayerView{
			Rect:    core.NewRect(10, 46, 16, 14),
			Posture: dino.PostureStanding,
		},
		Obstacle: dino.ObstacleView{
			Kind: dino.KindGround,
			Rect: core.NewRect(80, 44, 8, 16),
		},
	}
}

func TestComposeRunning(t *testing.T) {
	fb := NewFramebuffer(128, 64)
	Compose(fb, runningFrame())

	for x := 0; x < 128; x++ {
		if !fb.On(x, 60) {
			t.Fatalf("ground line missing at x=%d", x)
		}
	}

	hud := false
	for y := 0; y < 13; y++ {
		for x := 64; x < 128; x++ {
			hud = hud || fb.On(x, y)
		}
	}
	if !hud {
		t.Error("score should be drawn in the top-right corner")
	}

	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if assets.DinoStand.On(x, y) && !fb.On(10+x, 46+y) {
				t.Fatalf("dino pixel (%d,%d) missing", x, y)
			}
		}
	}
	for y := 0; y < 16; y++ {
		for x := 0; x < 8; x++ {
			if assets.Cactus.On(x, y) && !fb.On(80+x, 44+y) {
				t.Fatalf("cactus pixel (%d,%d) missing", x, y)
			}
		}
	}
}

func TestComposeWingPhase(t *testing.T) {
	f := runningFrame()
	f.Obstacle = dino.ObstacleView{Kind: dino.KindAerial, Rect: core.NewRect(80, 40, 16, 9), WingUp: true}

	up := NewFramebuffer(128, 64)
	Compose(up, f)
	f.Obstacle.WingUp = false
	down := NewFramebuffer(128, 64)
	Compose(down, f)

	if Text(up) == Text(down) {
		t.Error("wing phases should render differently")
	}
}

func TestComposeGameOver(t *testing.T) {
	f := runningFrame()
	f.Phase = dino.PhaseGameOver
	f.Summary = &dino.Summary{Score: 7, HighScore: 12}

	fb := NewFramebuffer(128, 64)
	fb.DrawHLine(0, 127, 5)
	Compose(fb, f)

	if fb.Lit() == 0 {
		t.Fatal("game over panel should be drawn")
	}
	for x := 0; x < 128; x++ {
		if fb.On(x, 60) || fb.On(x, 5) {
			t.Fatal("game over screen should only show the panel")
		}
	}
}

func TestHalfBlocks(t *testing.T) {
	fb := NewFramebuffer(4, 3)
	fb.SetPixel(0, 0, true)
	fb.SetPixel(1, 1, true)
	fb.SetPixel(2, 0, true)
	fb.SetPixel(2, 1, true)
	fb.SetPixel(3, 2, true)

	if got := CellRows(fb); got != 2 {
		t.Fatalf("CellRows = %d, expected 2", got)
	}
	if got, expected := Text(fb), "▀▄█ \n   ▀"; got != expected {
		t.Errorf("Text = %q, expected %q", got, expected)
	}
}
