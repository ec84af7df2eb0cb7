// Package scopetrainer holds the pure parts of the oscilloscope trainer: the
// waveform kinds and value tables of the simulated instrument, and the signal
// model that turns instrument settings into displayable samples.
//
// Nothing in this package has state. The mutable instrument lives in the
// trainer package, which calls ComputeFrame once per displayed frame.
package scopetrainer

import "fmt"

// Waveform is the shape produced by the simulated signal source.
type Waveform int

const (
	Sine Waveform = iota
	Square
	Triangle
	NumWaveforms
)

var waveformNames = [NumWaveforms]string{"sine", "square", "triangle"}

func (w Waveform) String() string {
	if w < 0 || w >= NumWaveforms {
		return fmt.Sprintf("Waveform(%d)", int(w))
	}
	return waveformNames[w]
}

// ParseWaveform returns the waveform with the given lower case name.
func ParseWaveform(name string) (Waveform, error) {
	for i, n := range waveformNames {
		if n == name {
			return Waveform(i), nil
		}
	}
	return Sine, fmt.Errorf("unknown waveform %q", name)
}

func (w Waveform) MarshalText() ([]byte, error) { return []byte(w.String()), nil }

func (w *Waveform) UnmarshalText(text []byte) error {
	v, err := ParseWaveform(string(text))
	if err != nil {
		return err
	}
	*w = v
	return nil
}

// Value tables selected by the three rotary controls. The rotaries hold an
// index into these tables and wrap around at both ends.
var (
	TimebaseValues    = []float64{0.1, 0.2, 0.5, 1, 2, 5, 10} // ms per division
	VoltsPerDivValues = []float64{0.1, 0.2, 0.5, 1, 2, 5}     // volts per division
	TriggerValues     = []float64{-3, -2, -1, 0, 1, 2, 3}     // trigger level, in divisions from center
)

// Default indices restored by the Auto button: 1 ms/div, 1 V/div and a
// trigger at the center line.
const (
	DefaultTimebaseIndex    = 3
	DefaultVoltsPerDivIndex = 3
	DefaultTriggerIndex     = 3
)

const (
	HorizontalDivs = 10
	VerticalDivs   = 8
)

// Wrap maps any integer onto [0, length).
func Wrap(index, length int) int {
	if length <= 0 {
		return 0
	}
	index %= length
	if index < 0 {
		index += length
	}
	return index
}

func engineeringTime(ms float64) string {
	switch {
	case ms < 1:
		return fmt.Sprintf("%gus", ms*1e3)
	case ms < 1000:
		return fmt.Sprintf("%gms", ms)
	}
	return fmt.Sprintf("%gs", ms/1e3)
}

func engineeringVolts(v float64) string {
	if v != 0 && v < 1 && v > -1 {
		return fmt.Sprintf("%gmV", v*1e3)
	}
	return fmt.Sprintf("%gV", v)
}

func engineeringFrequency(hz float64) string {
	switch {
	case hz >= 1e6:
		return fmt.Sprintf("%.3gMHz", hz/1e6)
	case hz >= 1e3:
		return fmt.Sprintf("%.3gkHz", hz/1e3)
	}
	return fmt.Sprintf("%.3gHz", hz)
}

// TimebaseString formats a ms/div value with units, e.g. "500us/div".
func TimebaseString(msPerDiv float64) string { return engineeringTime(msPerDiv) + "/div" }

// VoltsPerDivString formats a V/div value with units, e.g. "200mV/div".
func VoltsPerDivString(v float64) string { return engineeringVolts(v) + "/div" }

// TriggerString formats a trigger offset in divisions, e.g. "+1 div".
func TriggerString(divs float64) string { return fmt.Sprintf("%+g div", divs) }
