// Package assets holds the 1-bit sprite tables. Rows are MSB-first with
// (width+7)/8 bytes per row, the layout SSD1306 bitmap helpers expect.
package assets

// Sprite is an opaque monochrome bitmap.
type Sprite struct {
	Width  int
	Height int
	Bits   []byte
}

// RowBytes returns the number of bytes per row.
func (s Sprite) RowBytes() int {
	return (s.Width + 7) / 8
}

// On reports whether pixel (x, y) of the sprite is lit.
func (s Sprite) On(x, y int) bool {
	if x < 0 || y < 0 || x >= s.Width || y >= s.Height {
		return false
	}
	i := y*s.RowBytes() + x/8
	if i >= len(s.Bits) {
		return false
	}
	return s.Bits[i]&(0x80>>uint(x&7)) != 0
}

// DinoStand is the running pose.
var DinoStand = Sprite{Width: 16, Height: 16, Bits: []byte{
	0x00, 0x00,
	0x00, 0x00,
	0x03, 0xF8,
	0x03, 0xFC,
	0x07, 0x0E,
	0x07, 0x3E,
	0x07, 0xE0,
	0x07, 0xF0,
	0x0F, 0xF8,
	0x1F, 0xFE,
	0x1F, 0xF4,
	0x0F, 0xE0,
	0x06, 0x60,
	0x02, 0x20,
	0x02, 0x20,
	0x03, 0x30,
}}

// DinoCrouch is the ducking pose.
var DinoCrouch = Sprite{Width: 16, Height: 16, Bits: []byte{
	0x00, 0x00,
	0x00, 0x00,
	0x00, 0x00,
	0x00, 0x00,
	0x00, 0x00,
	0x00, 0xFE,
	0x01, 0xFF,
	0x07, 0xFF,
	0x0F, 0xFD,
	0x1F, 0xF5,
	0x1F, 0xF5,
	0x0F, 0xE5,
	0x06, 0x67,
	0x02, 0x20,
	0x02, 0x20,
	0x03, 0x30,
}}

// Cactus is the ground obstacle, 8 pixels wide.
var Cactus = Sprite{Width: 8, Height: 16, Bits: []byte{
	0x18, 0x18,
	0x18, 0x38,
	0x3C, 0x7C,
	0x7C, 0x7C,
	0x7C, 0x78,
	0x18, 0x18,
	0x18, 0x18,
	0x18, 0x18,
}}

// BirdWingUp and BirdWingDown are the two flap frames of the aerial obstacle.
var BirdWingUp = Sprite{Width: 16, Height: 16, Bits: []byte{
	0x00, 0x40,
	0x00, 0x60,
	0x0C, 0x70,
	0x1E, 0x78,
	0x3F, 0xFE,
	0x03, 0xF8,
	0x01, 0xFE,
	0x00, 0x00,
	0x00, 0x00,
	0x00, 0x00,
	0x00, 0x00,
	0x00, 0x00,
	0x00, 0x00,
	0x00, 0x00,
	0x00, 0x00,
	0x00, 0x00,
}}

var BirdWingDown = Sprite{Width: 16, Height: 16, Bits: []byte{
	0x00, 0x00,
	0x00, 0x00,
	0x0C, 0x00,
	0x1E, 0x00,
	0x3F, 0xFE,
	0x03, 0xF8,
	0x01, 0xFE,
	0x00, 0x60,
	0x00, 0x40,
	0x00, 0x00,
	0x00, 0x00,
	0x00, 0x00,
	0x00, 0x00,
	0x00, 0x00,
	0x00, 0x00,
	0x00, 0x00,
}}
