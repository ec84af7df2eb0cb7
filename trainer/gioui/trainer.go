package gioui

import (
	"errors"
	"image"
	"image/png"
	"time"

	"gioui.org/app"
	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"
	"gioui.org/x/explorer"
	"github.com/vsariola/scopetrainer/trainer"
	"github.com/vsariola/scopetrainer/version"
	"go.uber.org/zap"
)

const frameInterval = time.Second / 60

type (
	// Trainer is the desktop front end: it renders the instrument with a
	// perspective camera and turns cursor input into pointer rays.
	Trainer struct {
		Theme    *material.Theme
		Camera   trainer.Camera
		Explorer *explorer.Explorer

		pointer    f32.Point
		hasPointer bool
		lastFrame  time.Time
		saved      chan error
		log        *zap.Logger

		*trainer.Model
	}

	C = layout.Context
	D = layout.Dimensions
)

func NewTrainer(model *trainer.Model, log *zap.Logger) *Trainer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Trainer{
		Theme:  newTheme(),
		Camera: trainer.DefaultCamera,
		saved:  make(chan error, 1),
		log:    log,
		Model:  model,
	}
}

// Main runs the window until it is closed. It must be called on a goroutine
// of its own, with app.Main on the main goroutine.
func (t *Trainer) Main() {
	var ops op.Ops
	w := new(app.Window)
	w.Option(app.Title(title()), app.Size(unit.Dp(1024), unit.Dp(680)))
	t.Explorer = explorer.NewExplorer(w)
	acks := make(chan struct{})
	events := make(chan event.Event)
	go func() {
		for {
			ev := w.Event()
			events <- ev
			<-acks
			if _, ok := ev.(app.DestroyEvent); ok {
				return
			}
		}
	}()
	for {
		select {
		case err := <-t.saved:
			switch {
			case err == nil:
				t.Notify("screenshot", "Screenshot saved", trainer.Info)
			case errors.Is(err, explorer.ErrUserDecline):
			default:
				t.log.Error("saving screenshot failed", zap.Error(err))
				t.Notify("screenshot", err.Error(), trainer.Error)
			}
			w.Invalidate()
		case e := <-events:
			t.Explorer.ListenEvents(e)
			switch e := e.(type) {
			case app.DestroyEvent:
				if e.Err != nil {
					t.log.Error("window closed with error", zap.Error(e.Err))
				}
				acks <- struct{}{}
				return
			case app.FrameEvent:
				gtx := app.NewContext(&ops, e)
				t.Layout(gtx)
				e.Frame(gtx.Ops)
			}
			acks <- struct{}{}
		}
	}
}

func title() string {
	if v := version.VersionOrHash; v != "" {
		return "Oscilloscope Trainer " + v
	}
	return "Oscilloscope Trainer"
}

func (t *Trainer) Layout(gtx C) {
	size := gtx.Constraints.Max
	defer clip.Rect(image.Rectangle{Max: size}).Push(gtx.Ops).Pop()
	paint.Fill(gtx.Ops, backgroundColor)
	event.Op(gtx.Ops, t)
	t.handleEvents(gtx, size)

	var dt time.Duration
	if !t.lastFrame.IsZero() {
		dt = gtx.Now.Sub(t.lastFrame)
	}
	t.lastFrame = gtx.Now
	status := t.Tick(dt)
	gtx.Execute(op.InvalidateCmd{At: gtx.Now.Add(frameInterval)})

	t.layoutPanel(gtx, size, status)
	layout.NW.Layout(gtx, t.layoutTutorial)
	alerts := Alerts(t.Alerts(), t.Theme)
	alerts.Layout(gtx)
}

func (t *Trainer) handleEvents(gtx C, size image.Point) {
	filters := append([]event.Filter{
		pointer.Filter{
			Target:  t,
			Kinds:   pointer.Move | pointer.Press | pointer.Drag | pointer.Scroll | pointer.Leave,
			ScrollY: pointer.ScrollRange{Min: -100, Max: 100},
		},
	}, keyFilters...)
	for {
		ev, ok := gtx.Event(filters...)
		if !ok {
			break
		}
		switch e := ev.(type) {
		case pointer.Event:
			t.pointerEvent(e, size)
		case key.Event:
			t.KeyEvent(e)
		}
	}
}

func (t *Trainer) pointerEvent(e pointer.Event, size image.Point) {
	if e.Kind == pointer.Leave {
		t.hasPointer = false
		return
	}
	t.pointer, t.hasPointer = e.Position, true
	ray, err := t.Camera.Ray(e.Position.X, e.Position.Y, size.X, size.Y)
	if err != nil {
		return
	}
	switch e.Kind {
	case pointer.Move, pointer.Drag:
		t.Drag(ray)
	case pointer.Press:
		dir := 1
		if e.Buttons.Contain(pointer.ButtonSecondary) {
			dir = -1
		}
		t.Activate(ray, dir)
	case pointer.Scroll:
		d, ok := t.Hover(ray)
		if !ok || !d.Kind.Rotary() || e.Scroll.Y == 0 {
			return
		}
		dir := 1
		if e.Scroll.Y > 0 {
			dir = -1
		}
		t.Apply(d.Kind, trainer.Params{Direction: dir})
	}
}

// hover returns the control under the cursor, if any.
func (t *Trainer) hover(size image.Point) (trainer.Descriptor, bool) {
	if !t.hasPointer {
		return trainer.Descriptor{}, false
	}
	ray, err := t.Camera.Ray(t.pointer.X, t.pointer.Y, size.X, size.Y)
	if err != nil {
		return trainer.Descriptor{}, false
	}
	return t.Hover(ray)
}

func (t *Trainer) saveScreenshot() {
	img := trainer.DrawScreen(t.Frame(), t.DisplayMode(), t.Screen(), trainer.DefaultScreenStyle)
	go func() {
		f, err := t.Explorer.CreateFile("scope.png")
		if err == nil {
			err = png.Encode(f, img)
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}
		t.saved <- err
	}()
}
