package gioui

import (
	"image"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"
	"github.com/vsariola/scopetrainer/trainer"
)

// AlertsWidget stacks the pending feedback messages at the bottom of the
// window, newest lowest. The model counts them down; the widget only draws.
type AlertsWidget struct {
	Theme  *material.Theme
	Model  *trainer.Alerts
	Margin layout.Inset
	Inset  layout.Inset
}

func Alerts(m *trainer.Alerts, th *material.Theme) AlertsWidget {
	return AlertsWidget{
		Theme:  th,
		Model:  m,
		Margin: layout.Inset{Left: unit.Dp(20), Right: unit.Dp(20), Bottom: unit.Dp(6)},
		Inset:  layout.Inset{Top: unit.Dp(6), Bottom: unit.Dp(6), Left: unit.Dp(10), Right: unit.Dp(10)},
	}
}

func (a *AlertsWidget) Layout(gtx C) D {
	totalY := 0
	for _, alert := range a.Model.Iterate {
		bg, fg := infoColor, labelColor
		switch alert.Priority {
		case trainer.Warning:
			bg, fg = warningColor, black
		case trainer.Error:
			bg, fg = errorColor, black
		}
		label := material.Label(a.Theme, alertFontSize, alert.Message)
		label.Color = fg
		bgWidget := func(gtx C) D {
			paint.FillShape(gtx.Ops, bg, clip.UniformRRect(image.Rectangle{Max: gtx.Constraints.Min}, gtx.Dp(4)).Op(gtx.Ops))
			return D{Size: gtx.Constraints.Min}
		}
		a.Margin.Layout(gtx, func(gtx C) D {
			return layout.S.Layout(gtx, func(gtx C) D {
				recording := op.Record(gtx.Ops)
				dims := layout.Stack{Alignment: layout.Center}.Layout(gtx,
					layout.Expanded(bgWidget),
					layout.Stacked(func(gtx C) D {
						return a.Inset.Layout(gtx, label.Layout)
					}),
				)
				macro := recording.Stop()
				defer op.Offset(image.Point{0, -totalY}).Push(gtx.Ops).Pop()
				totalY += dims.Size.Y + gtx.Dp(a.Margin.Bottom)
				macro.Add(gtx.Ops)
				return dims
			})
		})
	}
	return D{}
}
