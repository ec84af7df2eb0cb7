package scopetrainer

import (
	"fmt"
	"math"
	"strings"

	"github.com/viterin/vek"
)

// Measurement summarizes the trace currently on screen, the way the
// measurement bar of a digital scope does.
type Measurement struct {
	Vmax, Vmin, Vpp, Vrms float64
	FrequencyHz           float64
	TimebaseMsPerDiv      float64
	VoltsPerDiv           float64
	Valid                 bool
}

// Measure computes a Measurement over the instantaneous voltages of a frame.
func Measure(volts []float64, s Settings) Measurement {
	m := Measurement{
		FrequencyHz:      s.FrequencyHz,
		TimebaseMsPerDiv: s.TimebaseMsPerDiv,
		VoltsPerDiv:      s.VoltsPerDiv,
	}
	if len(volts) == 0 {
		return m
	}
	m.Vmax = vek.Max(volts)
	m.Vmin = vek.Min(volts)
	m.Vpp = m.Vmax - m.Vmin
	m.Vrms = math.Sqrt(vek.Dot(volts, volts) / float64(len(volts)))
	m.Valid = true
	return m
}

func (m Measurement) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "CH1 %s  %s", VoltsPerDivString(m.VoltsPerDiv), TimebaseString(m.TimebaseMsPerDiv))
	if !m.Valid {
		return b.String()
	}
	fmt.Fprintf(&b, "  Vpp %.2fV  Vrms %.2fV  f %s", m.Vpp, m.Vrms, engineeringFrequency(m.FrequencyHz))
	return b.String()
}
