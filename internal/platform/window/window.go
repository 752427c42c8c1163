// Package window plays pocketdino in a desktop window with Ebitengine.
//
// The window shows the framebuffer pixel for pixel, scaled up, in the ink
// colors of the chosen OLED panel. Unlike terminals, key releases are seen
// directly, so buttons are plain levels.
package window

import (
	"errors"
	"fmt"
	"image/color"
	"math/rand"
	"os"
	"runtime"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/pocketdino/internal/config"
	"github.com/vovakirdan/pocketdino/internal/core"
	"github.com/vovakirdan/pocketdino/internal/display"
	"github.com/vovakirdan/pocketdino/internal/games/dino"
	"github.com/vovakirdan/pocketdino/internal/runner"
	"github.com/vovakirdan/pocketdino/internal/storage"
)

// pollRate is how often Ebitengine calls Update. Several polls per
// simulation tick keep the scheduler's jitter small.
const pollRate = 120

// inkColors maps panel inks to pixel colors.
var inkColors = map[core.Color]color.RGBA{
	core.ColorWhite:  {R: 0xf0, G: 0xf4, B: 0xff, A: 0xff},
	core.ColorBlue:   {R: 0x3c, G: 0xb4, B: 0xff, A: 0xff},
	core.ColorYellow: {R: 0xff, G: 0xd2, B: 0x28, A: 0xff},
}

// Display keeps the latest frame as RGBA pixels. It satisfies
// runner.Display.
type Display struct {
	fb    *display.Framebuffer
	panel core.Panel
	scale int
	pix   []byte
	dirty bool

	env func(string) string
}

// NewDisplay creates a display for a w x h pixel panel.
func NewDisplay(w, h int, panel core.Panel, scale int) *Display {
	return &Display{
		fb:    display.NewFramebuffer(w, h),
		panel: panel,
		scale: scale,
		pix:   make([]byte, 4*w*h),
		env:   os.Getenv,
	}
}

// Begin checks that a window can be opened.
func (d *Display) Begin() error {
	if d.scale <= 0 {
		return fmt.Errorf("window: invalid scale %d", d.scale)
	}
	if runtime.GOOS == "linux" && d.env("DISPLAY") == "" && d.env("WAYLAND_DISPLAY") == "" {
		return errors.New("window: no X11 or Wayland display")
	}
	return nil
}

// Present composes f and converts it to panel-tinted pixels.
func (d *Display) Present(f dino.Frame) {
	display.Compose(d.fb, f)

	w := d.fb.Width()
	for y := 0; y < d.fb.Height(); y++ {
		ink := inkColors[d.panel.InkAt(y)]
		for x := 0; x < w; x++ {
			i := 4 * (y*w + x)
			if d.fb.On(x, y) {
				d.pix[i], d.pix[i+1], d.pix[i+2], d.pix[i+3] = ink.R, ink.G, ink.B, ink.A
			} else {
				d.pix[i], d.pix[i+1], d.pix[i+2], d.pix[i+3] = 0, 0, 0, 0xff
			}
		}
	}
	d.dirty = true
}

// Pixels returns the RGBA pixels of the last frame.
func (d *Display) Pixels() []byte {
	return d.pix
}

// Game adapts a runner to ebiten.Game.
type Game struct {
	runner  *runner.Runner
	display *Display
	clock   core.Clock
	logger  *log.Logger
	img     *ebiten.Image
}

// Update polls the keyboard and the runner.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if err := clipboard.WriteAll(display.Text(g.display.fb)); err != nil {
			g.logger.Warn("could not copy frame", "error", err)
		}
	}

	g.runner.Poll(g.clock.Now(), levels())
	return nil
}

// levels reads the game buttons.
func levels() core.InputFrame {
	f := core.NewInputFrame()
	if ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		f.Set(core.ActionJump)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		f.Set(core.ActionCrouch)
	}
	if ebiten.IsKeyPressed(ebiten.KeyR) || ebiten.IsKeyPressed(ebiten.KeyEnter) {
		f.Set(core.ActionReset)
	}
	return f
}

// Draw blits the last frame.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.img == nil {
		g.img = ebiten.NewImage(g.display.fb.Width(), g.display.fb.Height())
		g.display.dirty = true
	}
	if g.display.dirty {
		g.img.WritePixels(g.display.pix)
		g.display.dirty = false
	}
	screen.DrawImage(g.img, nil)
}

// Layout keeps the logical screen at the panel resolution.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.display.fb.Width(), g.display.fb.Height()
}

// Options configure a window session.
type Options struct {
	Config config.DinoConfig
	Seed   int64
	Runs   *storage.Store // nil keeps no run log
	Logger *log.Logger
}

// Run plays the game in a window until it is closed.
func Run(opts Options) error {
	cfg := opts.Config
	panel, err := core.ParsePanel(cfg.Display.Panel)
	if err != nil {
		return err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	d := NewDisplay(cfg.Field.Width, cfg.Field.Height, panel, cfg.Display.Scale)

	var runLog runner.RunLog
	if opts.Runs != nil {
		runLog = opts.Runs
	}
	r, err := runner.New(cfg, rand.New(rand.NewSource(opts.Seed)), d, runner.Options{
		Logger: logger,
		Runs:   runLog,
	})
	if err != nil {
		return err
	}

	ebiten.SetWindowTitle("pocketdino")
	ebiten.SetWindowSize(cfg.Field.Width*cfg.Display.Scale, cfg.Field.Height*cfg.Display.Scale)
	ebiten.SetTPS(pollRate)

	g := &Game{
		runner:  r,
		display: d,
		clock:   core.NewMonotonicClock(),
		logger:  logger,
	}
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
