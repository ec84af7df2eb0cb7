package gioui

import (
	"image/color"
	"strings"

	"gioui.org/font/gofont"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"
)

var white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
var black = color.NRGBA{R: 0, G: 0, B: 0, A: 255}

var backgroundColor = color.NRGBA{R: 18, G: 18, B: 18, A: 255}
var housingColor = color.NRGBA{R: 70, G: 74, B: 80, A: 255}
var bezelColor = color.NRGBA{R: 24, G: 26, B: 28, A: 255}
var buttonColor = color.NRGBA{R: 45, G: 48, B: 52, A: 255}
var buttonLabelColor = color.NRGBA{R: 95, G: 100, B: 108, A: 255}
var knobColor = color.NRGBA{R: 20, G: 20, B: 22, A: 255}
var knobCapColor = color.NRGBA{R: 150, G: 152, B: 158, A: 255}
var powerColor = color.NRGBA{R: 160, G: 40, B: 40, A: 255}
var powerOnColor = color.NRGBA{R: 230, G: 70, B: 60, A: 255}
var portColor = color.NRGBA{R: 190, G: 190, B: 196, A: 255}
var portRingColor = color.NRGBA{R: 212, G: 175, B: 55, A: 255}
var probeColor = color.NRGBA{R: 40, G: 90, B: 200, A: 255}
var probeTipColor = color.NRGBA{R: 220, G: 220, B: 225, A: 255}
var cableColor = color.NRGBA{R: 30, G: 60, B: 150, A: 255}
var labelColor = color.NRGBA{R: 222, G: 222, B: 222, A: 222}
var selectedColor = color.NRGBA{R: 128, G: 222, B: 234, A: 255}

var hoverColor = color.NRGBA{R: 255, G: 255, B: 255, A: 160}
var highlightColor = color.NRGBA{R: 255, G: 255, B: 130, A: 255}

var infoColor = color.NRGBA{R: 50, G: 50, B: 51, A: 230}
var warningColor = color.NRGBA{R: 251, G: 192, B: 45, A: 255}
var errorColor = color.NRGBA{R: 207, G: 102, B: 121, A: 255}

var labelFontSize = unit.Sp(11)
var alertFontSize = unit.Sp(16)

func newTheme() *material.Theme {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	th.Palette.Bg = backgroundColor
	th.Palette.Fg = labelColor
	return th
}

// shapeColor picks the fill of a panel shape by its ID.
func shapeColor(id string, power bool) color.NRGBA {
	switch {
	case id == "housing":
		return housingColor
	case id == "screen":
		return bezelColor
	case id == "power":
		if power {
			return powerOnColor
		}
		return powerColor
	case id == "ch1":
		return portColor
	case id == "ch1.ring":
		return portRingColor
	case id == "probe":
		return probeColor
	case id == "probe.tip":
		return probeTipColor
	case strings.HasSuffix(id, ".cap"):
		return knobCapColor
	case strings.HasPrefix(id, "knob."):
		return knobColor
	case strings.HasSuffix(id, ".label"):
		return buttonLabelColor
	}
	return buttonColor
}
