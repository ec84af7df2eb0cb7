package gioui

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"slices"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"
	"gioui.org/x/stroke"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/vsariola/scopetrainer/trainer"
	"golang.org/x/exp/shiny/materialdesign/icons"
)

// project returns the screen rectangle covered by the front face of a shape.
func (t *Trainer) project(sh trainer.Shape, size image.Point) image.Rectangle {
	x0, y0 := t.Camera.Project(mgl32.Vec3{sh.Min[0], sh.Min[1], sh.Max[2]}, size.X, size.Y)
	x1, y1 := t.Camera.Project(mgl32.Vec3{sh.Max[0], sh.Max[1], sh.Max[2]}, size.X, size.Y)
	return image.Rect(int(x0), int(y0), int(x1), int(y1)).Canon()
}

func (t *Trainer) layoutPanel(gtx C, size image.Point, status trainer.Status) {
	shapes := t.Scene()
	if probe := t.Probe(); probe.Grabbed() {
		shapes = slices.Concat(shapes, trainer.ProbeShapes(probe.Position))
	}
	rects := make(map[string]image.Rectangle, len(shapes))
	for _, sh := range shapes {
		r := t.project(sh, size)
		rects[sh.ID] = r
		if sh.ID == "screen" {
			paint.FillShape(gtx.Ops, bezelColor, clip.Rect(r.Inset(-gtx.Dp(4))).Op())
			t.layoutScreen(gtx, r, status)
			continue
		}
		paint.FillShape(gtx.Ops, shapeColor(sh.ID, t.Power().Value()), clip.Rect(r).Op())
	}
	t.layoutCable(gtx, rects["probe"], size)
	if r, ok := rects["power"]; ok {
		gtx := gtx
		gtx.Constraints = layout.Exact(image.Pt(r.Dy(), r.Dy()))
		stack := op.Offset(image.Pt(r.Min.X+(r.Dx()-r.Dy())/2, r.Min.Y)).Push(gtx.Ops)
		widgetForIcon(icons.ActionPowerSettingsNew).Layout(gtx, white)
		stack.Pop()
	}
	t.layoutKnobs(gtx, rects)
	t.layoutLabels(gtx, rects)
	if d, ok := t.hover(size); ok {
		outline(gtx, rects[d.Anchor], hoverColor, 1)
	}
	if status.HasHighlight {
		pulse := 0.5 + 0.5*math.Sin(float64(gtx.Now.UnixMilli())/1000*2*math.Pi)
		c := highlightColor
		c.A = uint8(96 + 159*pulse)
		outline(gtx, rects[status.Highlight.Anchor].Inset(-gtx.Dp(3)), c, 2)
	}
}

// layoutScreen paints the display surface into the screen rectangle.
func (t *Trainer) layoutScreen(gtx C, r image.Rectangle, status trainer.Status) {
	img := trainer.DrawScreen(status.Frame, status.Mode, t.Screen(), trainer.DefaultScreenStyle)
	b := img.Bounds()
	if r.Empty() || b.Empty() {
		return
	}
	imgOp := paint.NewImageOp(img)
	imgOp.Filter = paint.FilterLinear
	scale := f32.Pt(float32(r.Dx())/float32(b.Dx()), float32(r.Dy())/float32(b.Dy()))
	defer op.Affine(f32.Affine2D{}.Scale(f32.Point{}, scale).Offset(layout.FPt(r.Min))).Push(gtx.Ops).Pop()
	defer clip.Rect(b).Push(gtx.Ops).Pop()
	imgOp.Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)
}

// layoutCable draws the probe lead from the edge of the bench to the probe.
func (t *Trainer) layoutCable(gtx C, probe image.Rectangle, size image.Point) {
	if probe.Empty() {
		return
	}
	end := layout.FPt(image.Pt(probe.Min.X+probe.Dx()/2, probe.Max.Y))
	start := f32.Pt(float32(size.X)*0.85, float32(size.Y))
	ctrl := f32.Pt((start.X+end.X)/2, float32(size.Y))
	segments := [...]stroke.Segment{
		stroke.MoveTo(start),
		stroke.QuadTo(ctrl, end),
	}
	s := stroke.Stroke{
		Path:  stroke.Path{Segments: segments[:]},
		Width: float32(gtx.Dp(4)),
		Cap:   stroke.RoundCap,
	}
	paint.FillShape(gtx.Ops, cableColor, s.Op(gtx.Ops))
}

// layoutKnobs draws the pointer line of each rotary, its angle showing the
// selected table entry.
func (t *Trainer) layoutKnobs(gtx C, rects map[string]image.Rectangle) {
	for _, d := range t.Registry().Descriptors {
		if !d.Kind.Rotary() {
			continue
		}
		r, ok := rects[d.Anchor]
		if !ok {
			continue
		}
		v := t.knob(d.Kind)
		rng := v.Range()
		amount := float64(v.Value()-rng.Min) / float64(max(rng.Max-rng.Min, 1))
		angle := (amount*8 + 1) / 10 * 2 * math.Pi
		center := layout.FPt(r.Min.Add(r.Max).Div(2))
		inner := float32(r.Dx()) * 0.1
		outer := float32(r.Dx()) * 0.45
		start := f32.Pt(center.X-inner*float32(math.Sin(angle)), center.Y+inner*float32(math.Cos(angle)))
		end := f32.Pt(center.X-outer*float32(math.Sin(angle)), center.Y+outer*float32(math.Cos(angle)))
		segments := [...]stroke.Segment{
			stroke.MoveTo(start),
			stroke.LineTo(end),
		}
		s := stroke.Stroke{
			Path:  stroke.Path{Segments: segments[:]},
			Width: float32(gtx.Dp(2)),
			Cap:   stroke.FlatCap,
		}
		paint.FillShape(gtx.Ops, selectedColor, s.Op(gtx.Ops))
	}
}

func (t *Trainer) knob(kind trainer.ControlKind) trainer.Int {
	switch kind {
	case trainer.Timebase:
		return t.Timebase()
	case trainer.Vdiv:
		return t.VoltsPerDiv()
	}
	return t.Trigger()
}

// layoutLabels writes the legend of each control under it, and the current
// value under the rotaries.
func (t *Trainer) layoutLabels(gtx C, rects map[string]image.Rectangle) {
	for _, d := range t.Registry().Descriptors {
		r, ok := rects[d.Anchor]
		if !ok {
			continue
		}
		text := d.Label
		if d.Kind.Rotary() {
			text = fmt.Sprintf("%s\n%s", d.Label, t.knob(d.Kind).String())
		}
		l := material.Label(t.Theme, labelFontSize, text)
		l.Color = labelColor
		if d.Kind == trainer.Wave && d.Waveform == t.Waveform() {
			l.Color = selectedColor
		}
		func() {
			gtx := gtx
			gtx.Constraints = layout.Constraints{Max: image.Pt(gtx.Dp(120), gtx.Dp(40))}
			defer op.Offset(image.Pt(r.Min.X, r.Max.Y+gtx.Dp(2))).Push(gtx.Ops).Pop()
			l.Layout(gtx)
		}()
	}
}

func outline(gtx C, r image.Rectangle, c color.NRGBA, width unit.Dp) {
	if r.Empty() {
		return
	}
	rr := clip.UniformRRect(r, gtx.Dp(3))
	paint.FillShape(gtx.Ops, c, clip.Stroke{Path: rr.Path(gtx.Ops), Width: float32(gtx.Dp(width))}.Op())
}

// layoutTutorial shows the current step of the tutorial in the top left
// corner.
func (t *Trainer) layoutTutorial(gtx C) D {
	tut := t.Tutorial()
	step := tut.Step()
	icon := icons.ActionHelpOutline
	if tut.Done() {
		icon = icons.ActionCheckCircle
	}
	title := material.H6(t.Theme, fmt.Sprintf("%d/%d  %s", tut.Index()+1, tut.Count(), step.Title))
	title.Color = highlightColor
	desc := material.Body2(t.Theme, step.Description)
	desc.Color = labelColor
	return layout.UniformInset(unit.Dp(12)).Layout(gtx, func(gtx C) D {
		gtx.Constraints.Max.X = min(gtx.Constraints.Max.X, gtx.Dp(420))
		return layout.Flex{Axis: layout.Horizontal}.Layout(gtx,
			layout.Rigid(func(gtx C) D {
				gtx.Constraints = layout.Exact(image.Pt(gtx.Dp(28), gtx.Dp(28)))
				return widgetForIcon(icon).Layout(gtx, highlightColor)
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
			layout.Flexed(1, func(gtx C) D {
				return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
					layout.Rigid(title.Layout),
					layout.Rigid(desc.Layout),
				)
			}),
		)
	})
}
