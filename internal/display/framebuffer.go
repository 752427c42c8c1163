// Package display renders dino frames into a 1-bit framebuffer shaped like
// a 128x64 SSD1306 module, and converts that buffer for text terminals.
package display

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/vovakirdan/pocketdino/internal/assets"
)

// Framebuffer is a monochrome pixel buffer. Out-of-range writes are clipped.
//
// It implements draw.Image so x/image font drawers can render into it; any
// color at least half bright lights a pixel.
type Framebuffer struct {
	w, h int
	pix  []bool
}

// NewFramebuffer creates a cleared buffer.
func NewFramebuffer(w, h int) *Framebuffer {
	return &Framebuffer{w: w, h: h, pix: make([]bool, w*h)}
}

// Width returns the buffer width in pixels.
func (fb *Framebuffer) Width() int { return fb.w }

// Height returns the buffer height in pixels.
func (fb *Framebuffer) Height() int { return fb.h }

// Clear turns every pixel off.
func (fb *Framebuffer) Clear() {
	clear(fb.pix)
}

// SetPixel lights or clears one pixel.
func (fb *Framebuffer) SetPixel(x, y int, on bool) {
	if x < 0 || y < 0 || x >= fb.w || y >= fb.h {
		return
	}
	fb.pix[y*fb.w+x] = on
}

// On reports whether a pixel is lit. Pixels outside the buffer are off.
func (fb *Framebuffer) On(x, y int) bool {
	if x < 0 || y < 0 || x >= fb.w || y >= fb.h {
		return false
	}
	return fb.pix[y*fb.w+x]
}

// Lit returns the number of lit pixels.
func (fb *Framebuffer) Lit() int {
	n := 0
	for _, on := range fb.pix {
		if on {
			n++
		}
	}
	return n
}

// DrawBitmap draws the lit pixels of a sprite with its top-left corner at
// (x, y). Unlit sprite pixels leave the buffer untouched.
func (fb *Framebuffer) DrawBitmap(x, y int, s assets.Sprite) {
	for row := 0; row < s.Height; row++ {
		for col := 0; col < s.Width; col++ {
			if s.On(col, row) {
				fb.SetPixel(x+col, y+row, true)
			}
		}
	}
}

// DrawHLine lights a horizontal line from x0 to x1 inclusive.
func (fb *Framebuffer) DrawHLine(x0, x1, y int) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	for x := x0; x <= x1; x++ {
		fb.SetPixel(x, y, true)
	}
}

// Glyph metrics of the built-in face.
const (
	glyphW      = 7
	glyphAscent = 11
)

var face font.Face = basicfont.Face7x13

// DrawText renders s with its baseline at y, starting at x.
func (fb *Framebuffer) DrawText(x, baseline int, s string) {
	d := font.Drawer{
		Dst:  fb,
		Src:  image.White,
		Face: face,
		Dot:  fixed.P(x, baseline),
	}
	d.DrawString(s)
}

// TextWidth returns the advance of s in pixels.
func TextWidth(s string) int {
	return font.MeasureString(face, s).Round()
}

// ColorModel implements image.Image.
func (fb *Framebuffer) ColorModel() color.Model { return color.GrayModel }

// Bounds implements image.Image.
func (fb *Framebuffer) Bounds() image.Rectangle { return image.Rect(0, 0, fb.w, fb.h) }

// At implements image.Image.
func (fb *Framebuffer) At(x, y int) color.Color {
	if fb.On(x, y) {
		return color.White
	}
	return color.Black
}

// Set implements draw.Image.
func (fb *Framebuffer) Set(x, y int, c color.Color) {
	g := color.GrayModel.Convert(c).(color.Gray)
	fb.SetPixel(x, y, g.Y >= 0x80)
}
