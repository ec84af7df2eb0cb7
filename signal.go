package scopetrainer

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

type (
	// Signal is the fixed source connected to CH1 when the probe is plugged in.
	Signal struct {
		Waveform       Waveform `yaml:"waveform"`
		FrequencyHz    float64  `yaml:"frequencyHz"`
		AmplitudeVolts float64  `yaml:"amplitudeVolts"`
	}

	// Settings is everything the signal model needs to compute a frame.
	Settings struct {
		Signal
		TimebaseMsPerDiv float64
		VoltsPerDiv      float64
		TriggerDiv       float64
		Phase            float64
	}

	// Screen is the pixel extent of the display. The extent always spans
	// HorizontalDivs x VerticalDivs divisions.
	Screen struct {
		Width, Height int
	}

	Point struct {
		X, Y float64
	}

	// Frame is one computed display frame. Points are in screen pixels with y
	// growing downwards; Volts holds the instantaneous input voltage of each
	// point.
	Frame struct {
		Points      []Point
		Volts       []float64
		TriggerY    float64
		Measurement Measurement
	}
)

var DefaultSignal = Signal{Waveform: Sine, FrequencyHz: 1000, AmplitudeVolts: 2}

var DefaultScreen = Screen{Width: 500, Height: 400}

// PeriodsShown returns the number of signal periods that fit in the
// horizontal span of the display.
func (s Settings) PeriodsShown() float64 {
	if s.FrequencyHz <= 0 {
		return 0
	}
	totalMs := s.TimebaseMsPerDiv * HorizontalDivs
	return totalMs / (1000 / s.FrequencyHz)
}

// AmplitudeDivs returns the signal amplitude as a fraction of the half
// height of the display (4 divisions).
func (s Settings) AmplitudeDivs() float64 {
	if s.VoltsPerDiv <= 0 {
		return 0
	}
	return s.AmplitudeVolts / (s.VoltsPerDiv * VerticalDivs / 2)
}

// Shape evaluates the unit amplitude waveform at the given angle.
func (w Waveform) Shape(angle float64) float64 {
	s := math.Sin(angle)
	switch w {
	case Square:
		switch {
		case s > 0:
			return 1
		case s < 0:
			return -1
		}
		return 0
	case Triangle:
		return (2 / math.Pi) * math.Asin(s)
	}
	return s
}

func (sc Screen) mid() float64        { return float64(sc.Height) / 2 }
func (sc Screen) halfHeight() float64 { return float64(sc.Height) / 2 }

// DivHeight returns the height of one vertical division in pixels.
func (sc Screen) DivHeight() float64 { return float64(sc.Height) / VerticalDivs }

// DivWidth returns the width of one horizontal division in pixels.
func (sc Screen) DivWidth() float64 { return float64(sc.Width) / HorizontalDivs }

// TriggerY returns the screen y coordinate of the trigger marker.
func (s Settings) TriggerY(sc Screen) float64 {
	return sc.mid() - (s.TriggerDiv/(VerticalDivs/2))*sc.halfHeight()
}

// ComputeFrame samples the signal across the display. It is a pure function:
// identical settings and screen always give bit-identical frames.
func ComputeFrame(s Settings, sc Screen) Frame {
	n := max(sc.Width, 1) + 1
	u := floats.Span(make([]float64, n), 0, 1)
	periods := s.PeriodsShown()
	amp := s.AmplitudeDivs() * sc.halfHeight()
	f := Frame{
		Points:   make([]Point, n),
		Volts:    make([]float64, n),
		TriggerY: s.TriggerY(sc),
	}
	for i, x := range u {
		shape := s.Waveform.Shape(x*2*math.Pi*periods + s.Phase)
		f.Points[i] = Point{X: x * float64(sc.Width), Y: sc.mid() - shape*amp}
		f.Volts[i] = shape * s.AmplitudeVolts
	}
	f.Measurement = Measure(f.Volts, s)
	return f
}

// ZeroLine is the flat trace shown while no probe is connected.
func ZeroLine(sc Screen) Frame {
	y := sc.mid()
	return Frame{
		Points:   []Point{{0, y}, {float64(sc.Width), y}},
		TriggerY: y,
	}
}
