package trainer

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/vsariola/scopetrainer"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// ScreenStyle is the look of the drawn display surface.
type ScreenStyle struct {
	Background color.RGBA
	Graticule  color.RGBA
	Trace      color.RGBA
	Trigger    color.RGBA
	Text       color.RGBA
	TraceWidth float32
}

var DefaultScreenStyle = ScreenStyle{
	Background: color.RGBA{R: 8, G: 20, B: 12, A: 255},
	Graticule:  color.RGBA{R: 40, G: 80, B: 55, A: 255},
	Trace:      color.RGBA{R: 90, G: 255, B: 140, A: 255},
	Trigger:    color.RGBA{R: 255, G: 170, B: 40, A: 255},
	Text:       color.RGBA{R: 200, G: 240, B: 210, A: 255},
	TraceWidth: 2,
}

// DrawScreen renders a frame into an image of the screen size, as it appears
// on the display of the instrument in the given mode. The image is handed to
// the rendering collaborator as the texture of the display surface.
func DrawScreen(f scopetrainer.Frame, mode DisplayMode, sc scopetrainer.Screen, style ScreenStyle) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, max(sc.Width, 1), max(sc.Height, 1)))
	if mode == DisplayOff {
		draw.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{A: 255}), image.Point{}, draw.Src)
		drawLabel(img, "OFF", sc.Width/2-10, sc.Height/2+4, style.Graticule)
		return img
	}
	draw.Draw(img, img.Bounds(), image.NewUniform(style.Background), image.Point{}, draw.Src)
	drawGraticule(img, sc, style.Graticule)
	if mode != DisplayNoProbe {
		drawDashedLine(img, f.TriggerY, style.Trigger)
	}
	drawTrace(img, f.Points, style.TraceWidth, style.Trace)
	switch mode {
	case DisplayNoProbe:
		drawLabel(img, "NO PROBE", 6, 16, style.Text)
	case DisplayFrozen:
		drawLabel(img, "STOP", sc.Width-34, 16, style.Trigger)
		if len(f.Points) == 0 {
			drawLabel(img, "HOLD", sc.Width/2-14, sc.Height/2+4, style.Text)
		}
	case DisplayLive:
		drawLabel(img, "RUN", sc.Width-28, 16, style.Trace)
	}
	if mode == DisplayLive || mode == DisplayFrozen {
		drawLabel(img, f.Measurement.String(), 6, sc.Height-6, style.Text)
	}
	return img
}

func drawGraticule(img *image.RGBA, sc scopetrainer.Screen, c color.RGBA) {
	for i := 0; i <= scopetrainer.HorizontalDivs; i++ {
		x := int(math.Round(float64(i) * sc.DivWidth()))
		x = min(x, sc.Width-1)
		for y := 0; y < sc.Height; y += 2 {
			img.SetRGBA(x, y, c)
		}
	}
	for j := 0; j <= scopetrainer.VerticalDivs; j++ {
		y := int(math.Round(float64(j) * sc.DivHeight()))
		y = min(y, sc.Height-1)
		for x := 0; x < sc.Width; x += 2 {
			img.SetRGBA(x, y, c)
		}
	}
}

func drawDashedLine(img *image.RGBA, y float64, c color.RGBA) {
	b := img.Bounds()
	iy := int(math.Round(y))
	if iy < b.Min.Y || iy >= b.Max.Y {
		return
	}
	for x := b.Min.X; x < b.Max.X; x++ {
		if (x/6)%2 == 0 {
			img.SetRGBA(x, iy, c)
		}
	}
}

// drawTrace strokes the polyline through the points, one quad per segment.
func drawTrace(img *image.RGBA, points []scopetrainer.Point, width float32, c color.RGBA) {
	if len(points) < 2 {
		return
	}
	b := img.Bounds()
	r := vector.NewRasterizer(b.Dx(), b.Dy())
	half := width / 2
	for i := 1; i < len(points); i++ {
		x0, y0 := float32(points[i-1].X), float32(points[i-1].Y)
		x1, y1 := float32(points[i].X), float32(points[i].Y)
		dx, dy := x1-x0, y1-y0
		l := float32(math.Hypot(float64(dx), float64(dy)))
		if l == 0 {
			continue
		}
		nx, ny := -dy/l*half, dx/l*half
		r.MoveTo(x0+nx, y0+ny)
		r.LineTo(x1+nx, y1+ny)
		r.LineTo(x1-nx, y1-ny)
		r.LineTo(x0-nx, y0-ny)
		r.ClosePath()
	}
	r.Draw(img, b, image.NewUniform(c), image.Point{})
}

func drawLabel(img *image.RGBA, text string, x, y int, c color.RGBA) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(text)
}
