package tui

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/pocketdino/internal/core"
	"github.com/vovakirdan/pocketdino/internal/display"
	"github.com/vovakirdan/pocketdino/internal/games/dino"
)

// Rows needed around the playfield for the status and help lines.
const chromeRows = 3

// Display renders frames as half-block text. It satisfies runner.Display.
type Display struct {
	fb     *display.Framebuffer
	screen *core.Screen
	panel  core.Panel
	frame  dino.Frame

	size func() (w, h int, err error)
}

// NewDisplay creates a display for a w x h pixel panel drawn on the
// terminal behind f.
func NewDisplay(w, h int, panel core.Panel, f *os.File) *Display {
	fb := display.NewFramebuffer(w, h)
	return &Display{
		fb:     fb,
		screen: core.NewScreen(w, display.CellRows(fb)),
		panel:  panel,
		size: func() (int, int, error) {
			fd := int(f.Fd())
			if !term.IsTerminal(fd) {
				return 0, 0, errors.New("output is not a terminal")
			}
			return term.GetSize(fd)
		},
	}
}

// MinSize returns the smallest terminal that fits the display.
func (d *Display) MinSize() (w, h int) {
	return d.screen.Width(), d.screen.Height() + chromeRows
}

// Begin checks that the terminal is large enough.
func (d *Display) Begin() error {
	w, h, err := d.size()
	if err != nil {
		return fmt.Errorf("tui: cannot query terminal size: %w", err)
	}
	minW, minH := d.MinSize()
	if w < minW || h < minH {
		return fmt.Errorf("tui: terminal is %dx%d, need at least %dx%d", w, h, minW, minH)
	}
	return nil
}

// Present composes f into the text buffer.
func (d *Display) Present(f dino.Frame) {
	d.frame = f
	display.Compose(d.fb, f)
	display.HalfBlocks(d.fb, d.screen)
}

// View returns the styled playfield.
func (d *Display) View() string {
	return RenderScreen(d.screen, d.panel)
}

// Text returns the playfield as plain text.
func (d *Display) Text() string {
	return d.screen.String()
}

// Frame returns the last presented frame.
func (d *Display) Frame() dino.Frame {
	return d.frame
}
