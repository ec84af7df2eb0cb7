package trainer_test

import (
	"image/color"
	"testing"

	"github.com/vsariola/scopetrainer"
	"github.com/vsariola/scopetrainer/trainer"
)

func countColor(img interface {
	At(x, y int) color.Color
}, w, h int, c color.RGBA) int {
	n := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if img.At(x, y) == c {
				n++
			}
		}
	}
	return n
}

func TestDrawScreenModes(t *testing.T) {
	sc := scopetrainer.Screen{Width: 200, Height: 160}
	style := trainer.DefaultScreenStyle
	s := scopetrainer.Settings{
		Signal:           scopetrainer.DefaultSignal,
		TimebaseMsPerDiv: 1,
		VoltsPerDiv:      1,
	}
	live := scopetrainer.ComputeFrame(s, sc)

	off := trainer.DrawScreen(scopetrainer.Frame{}, trainer.DisplayOff, sc, style)
	if b := off.Bounds(); b.Dx() != 200 || b.Dy() != 160 {
		t.Fatalf("unexpected image size %v", b)
	}
	if countColor(off, 200, 160, style.Trace) != 0 {
		t.Error("a switched off screen should not show a trace")
	}
	img := trainer.DrawScreen(live, trainer.DisplayLive, sc, style)
	if countColor(img, 200, 160, style.Trace) == 0 {
		t.Error("expected trace pixels on a live screen")
	}
	if countColor(img, 200, 160, style.Trigger) == 0 {
		t.Error("expected the trigger marker")
	}
	none := trainer.DrawScreen(scopetrainer.ZeroLine(sc), trainer.DisplayNoProbe, sc, style)
	if n := countColor(none, 200, 160, style.Trigger); n != 0 {
		t.Errorf("no trigger marker expected without a probe, got %d pixels", n)
	}
}

func TestDrawScreenDeterministic(t *testing.T) {
	sc := scopetrainer.Screen{Width: 120, Height: 96}
	f := scopetrainer.ComputeFrame(scopetrainer.Settings{
		Signal:           scopetrainer.Signal{Waveform: scopetrainer.Square, FrequencyHz: 1000, AmplitudeVolts: 2},
		TimebaseMsPerDiv: 0.5,
		VoltsPerDiv:      1,
	}, sc)
	a := trainer.DrawScreen(f, trainer.DisplayFrozen, sc, trainer.DefaultScreenStyle)
	b := trainer.DrawScreen(f, trainer.DisplayFrozen, sc, trainer.DefaultScreenStyle)
	if string(a.Pix) != string(b.Pix) {
		t.Error("drawing the same frame twice gave different images")
	}
}
