package core

import "fmt"

// Color is a display ink color, kept abstract so front-ends map it to
// terminal styles or RGBA values.
type Color uint8

const (
	ColorWhite Color = iota
	ColorBlue
	ColorYellow
)

// Panel describes the ink of a monochrome OLED module.
type Panel string

const (
	PanelWhite      Panel = "white"
	PanelBlue       Panel = "blue"
	PanelYellowBlue Panel = "yellow-blue" // two-color module: yellow strip on top
)

// yellowStripRows is the height of the yellow band on two-color 128x64 modules.
const yellowStripRows = 16

// ParsePanel validates a panel name.
func ParsePanel(name string) (Panel, error) {
	switch p := Panel(name); p {
	case PanelWhite, PanelBlue, PanelYellowBlue:
		return p, nil
	case "":
		return PanelWhite, nil
	default:
		return "", fmt.Errorf("core: unknown panel %q", name)
	}
}

// InkAt returns the ink color of pixel row y.
func (p Panel) InkAt(y int) Color {
	switch p {
	case PanelBlue:
		return ColorBlue
	case PanelYellowBlue:
		if y < yellowStripRows {
			return ColorYellow
		}
		return ColorBlue
	default:
		return ColorWhite
	}
}
