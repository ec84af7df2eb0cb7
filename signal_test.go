package scopetrainer_test

import (
	"math"
	"reflect"
	"testing"

	"github.com/vsariola/scopetrainer"
)

func defaultSettings(w scopetrainer.Waveform) scopetrainer.Settings {
	sig := scopetrainer.DefaultSignal
	sig.Waveform = w
	return scopetrainer.Settings{
		Signal:           sig,
		TimebaseMsPerDiv: scopetrainer.TimebaseValues[scopetrainer.DefaultTimebaseIndex],
		VoltsPerDiv:      scopetrainer.VoltsPerDivValues[scopetrainer.DefaultVoltsPerDivIndex],
		TriggerDiv:       scopetrainer.TriggerValues[scopetrainer.DefaultTriggerIndex],
	}
}

func TestPeriodsShown(t *testing.T) {
	for _, tc := range []struct {
		timebase, freq, want float64
	}{
		{1, 1000, 10},
		{0.1, 1000, 1},
		{10, 50, 5},
		{2, 0, 0},
	} {
		s := scopetrainer.Settings{TimebaseMsPerDiv: tc.timebase}
		s.FrequencyHz = tc.freq
		if got := s.PeriodsShown(); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("PeriodsShown(%v ms/div, %v Hz) = %v, want %v", tc.timebase, tc.freq, got, tc.want)
		}
	}
}

func TestSquareWaveAlternates(t *testing.T) {
	s := defaultSettings(scopetrainer.Square)
	if s.TimebaseMsPerDiv != 1 {
		t.Fatalf("default timebase should be 1 ms/div, got %v", s.TimebaseMsPerDiv)
	}
	sc := scopetrainer.Screen{Width: 500, Height: 400}
	f := scopetrainer.ComputeFrame(s, sc)
	if len(f.Volts) != sc.Width+1 {
		t.Fatalf("expected %d samples, got %d", sc.Width+1, len(f.Volts))
	}
	// 10 periods over 500 pixels: a half period every 25 samples
	const half = 25
	for i, v := range f.Volts {
		if r := i % half; r == 0 || r == half-1 || r == 1 {
			continue // transition band, within one sample
		}
		want := s.AmplitudeVolts
		if (i/half)%2 == 1 {
			want = -want
		}
		if v != want {
			t.Fatalf("sample %d: got %v V, want %v V", i, v, want)
		}
	}
	amp := s.AmplitudeDivs() * float64(sc.Height) / 2
	for i, p := range f.Points {
		if d := math.Abs(p.Y - float64(sc.Height)/2); d != 0 && math.Abs(d-amp) > 1e-9 {
			t.Fatalf("point %d at y=%v is neither on the rails nor on the center line", i, p.Y)
		}
	}
}

func TestComputeFrameIsDeterministic(t *testing.T) {
	for w := scopetrainer.Waveform(0); w < scopetrainer.NumWaveforms; w++ {
		s := defaultSettings(w)
		s.Phase = 12.345
		a := scopetrainer.ComputeFrame(s, scopetrainer.DefaultScreen)
		b := scopetrainer.ComputeFrame(s, scopetrainer.DefaultScreen)
		if !reflect.DeepEqual(a, b) {
			t.Errorf("%v: two computations of the same settings differ", w)
		}
	}
}

func TestTriangleStaysWithinAmplitude(t *testing.T) {
	s := defaultSettings(scopetrainer.Triangle)
	f := scopetrainer.ComputeFrame(s, scopetrainer.DefaultScreen)
	for i, v := range f.Volts {
		if math.Abs(v) > s.AmplitudeVolts+1e-12 {
			t.Fatalf("sample %d: %v V exceeds amplitude", i, v)
		}
	}
	// the peak of a triangle is reached at a quarter period
	if got := scopetrainer.Triangle.Shape(math.Pi / 2); math.Abs(got-1) > 1e-12 {
		t.Errorf("triangle peak = %v, want 1", got)
	}
	if got := scopetrainer.Triangle.Shape(math.Pi / 4); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("triangle at pi/4 = %v, want 0.5", got)
	}
}

func TestVerticalScaling(t *testing.T) {
	s := defaultSettings(scopetrainer.Sine)
	sc := scopetrainer.Screen{Width: 400, Height: 80}
	// 2 V amplitude at 1 V/div is two of the four half-height divisions
	if got := s.AmplitudeDivs(); got != 0.5 {
		t.Fatalf("AmplitudeDivs = %v, want 0.5", got)
	}
	f := scopetrainer.ComputeFrame(s, sc)
	top := math.Inf(1)
	for _, p := range f.Points {
		top = math.Min(top, p.Y)
	}
	if want := 40 - 0.5*40.0; math.Abs(top-want) > 0.5 {
		t.Errorf("top of trace at %v, want about %v", top, want)
	}
}

func TestTriggerY(t *testing.T) {
	sc := scopetrainer.Screen{Width: 100, Height: 80}
	for i, div := range scopetrainer.TriggerValues {
		s := scopetrainer.Settings{TriggerDiv: div}
		want := 40 - div*10
		if got := s.TriggerY(sc); got != want {
			t.Errorf("trigger index %d: y = %v, want %v", i, got, want)
		}
	}
}

func TestWrap(t *testing.T) {
	for _, tc := range []struct{ index, length, want int }{
		{0, 7, 0}, {7, 7, 0}, {-1, 7, 6}, {15, 7, 1}, {-15, 7, 6}, {3, 0, 0},
	} {
		if got := scopetrainer.Wrap(tc.index, tc.length); got != tc.want {
			t.Errorf("Wrap(%d, %d) = %d, want %d", tc.index, tc.length, got, tc.want)
		}
	}
}

func TestParseWaveform(t *testing.T) {
	for w := scopetrainer.Waveform(0); w < scopetrainer.NumWaveforms; w++ {
		got, err := scopetrainer.ParseWaveform(w.String())
		if err != nil || got != w {
			t.Errorf("ParseWaveform(%q) = %v, %v", w.String(), got, err)
		}
	}
	if _, err := scopetrainer.ParseWaveform("sawtooth"); err == nil {
		t.Error("expected an error for an unknown waveform")
	}
}
