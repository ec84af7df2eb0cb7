package trainer

import (
	"time"

	"github.com/vsariola/scopetrainer"
	"go.uber.org/zap"
)

type (
	// DisplayMode is what the screen of the instrument shows. The modes are
	// evaluated in order: a switched off instrument shows nothing regardless of
	// the probe, an unconnected probe shows the zero line regardless of
	// RUN/STOP.
	DisplayMode int

	// Status is what the frame driver renders after each tick.
	Status struct {
		Feedback     string
		HasFeedback  bool
		Highlight    Descriptor
		HasHighlight bool
		Mode         DisplayMode
		Frame        scopetrainer.Frame
	}
)

const (
	DisplayOff DisplayMode = iota
	DisplayNoProbe
	DisplayFrozen
	DisplayLive
)

// PhaseRate is how fast the trace scrolls while live, in radians per second.
const PhaseRate = 4.0

func (d DisplayMode) String() string {
	switch d {
	case DisplayOff:
		return "off"
	case DisplayNoProbe:
		return "no probe"
	case DisplayFrozen:
		return "frozen"
	case DisplayLive:
		return "live"
	}
	return "unknown"
}

func (m *Model) DisplayMode() DisplayMode {
	switch {
	case !m.d.Power:
		return DisplayOff
	case !m.d.ProbeConnected:
		return DisplayNoProbe
	case !m.d.Running:
		return DisplayFrozen
	}
	return DisplayLive
}

// Frame returns the frame to show in the current display mode. It does not
// change the model.
func (m *Model) Frame() scopetrainer.Frame {
	switch m.DisplayMode() {
	case DisplayOff:
		return scopetrainer.Frame{}
	case DisplayNoProbe:
		return scopetrainer.ZeroLine(m.config.Screen)
	case DisplayFrozen:
		if m.d.Frozen == nil {
			return scopetrainer.Frame{Measurement: scopetrainer.Measurement{
				TimebaseMsPerDiv: scopetrainer.TimebaseValues[m.d.TimebaseIndex],
				VoltsPerDiv:      scopetrainer.VoltsPerDivValues[m.d.VoltsPerDivIndex],
			}}
		}
		return *m.d.Frozen
	}
	return scopetrainer.ComputeFrame(m.Settings(), m.config.Screen)
}

// freeze stores the frame of the current settings and phase as the one held
// on screen while stopped.
func (m *Model) freeze() {
	f := scopetrainer.ComputeFrame(m.Settings(), m.config.Screen)
	m.d.Frozen = &f
}

// Tick advances the simulation by dt; negative durations count as zero. Control messages queued in the broker
// are applied first, then the trace scrolls if it is live and the feedback
// messages count down. The returned status is what should be drawn.
func (m *Model) Tick(dt time.Duration) Status {
	dt = max(dt, 0)
	m.drainMessages()
	if m.DisplayMode() == DisplayLive {
		m.d.Phase += dt.Seconds() * PhaseRate
	}
	m.alerts.Update(dt)
	ret := Status{
		Mode:  m.DisplayMode(),
		Frame: m.Frame(),
	}
	if a, ok := m.alerts.Current(); ok {
		ret.Feedback, ret.HasFeedback = a.Message, true
	}
	ret.Highlight, ret.HasHighlight = m.Highlight()
	return ret
}

// Highlight returns the control the current tutorial step asks the user to
// operate. There is none once the tutorial is complete.
func (m *Model) Highlight() (Descriptor, bool) {
	kind := m.tutorial.Step().Expected
	if kind == NoControl {
		return Descriptor{}, false
	}
	if kind == Ch1Port && m.d.Probe.State == ProbeResting {
		// the port can only be used with the probe in hand
		return m.registry.ByKind(ProbeBody)
	}
	return m.registry.ByKind(kind)
}

func (m *Model) drainMessages() {
	if m.broker == nil {
		return
	}
	for {
		select {
		case msg := <-m.broker.ToModel:
			m.log.Debug("control message", zap.Stringer("control", msg.Kind))
			m.Apply(msg.Kind, msg.Params)
		default:
			return
		}
	}
}
