package trainer

import (
	"github.com/vsariola/scopetrainer"
	"go.uber.org/zap"
)

// Params carries the arguments of an activation. Waveform is only read by
// Wave controls and Direction only by the rotaries; a zero Direction turns
// one step clockwise.
type Params struct {
	Waveform  scopetrainer.Waveform
	Direction int
}

func (p Params) direction() int {
	if p.Direction == 0 {
		return 1
	}
	return p.Direction
}

// Control returns the action that activating a control of the given kind
// performs. The action of NoControl (or any unknown kind) is never enabled.
func (m *Model) Control(kind ControlKind, p Params) Action {
	switch kind {
	case Power:
		return MakeAction((*powerToggle)(m))
	case Ch1Port:
		return MakeAction((*ch1Port)(m))
	case ProbeBody:
		return MakeAction((*probeBody)(m))
	case Wave:
		return MakeAction(waveSelect{m, p.Waveform})
	case Timebase, Vdiv, Trigger:
		return MakeAction(rotaryStep{m, kind, p.direction()})
	case RunStop:
		return MakeAction((*runStopToggle)(m))
	case Auto:
		return MakeAction((*autoSet)(m))
	case NoControl, NumControlKinds:
	}
	return Action{}
}

// Apply operates a control, as if it was activated on the panel. Returns
// false if the control could not be operated; the user is told why.
func (m *Model) Apply(kind ControlKind, p Params) bool {
	a := m.Control(kind, p)
	if !a.Enabled() {
		if !m.powerGuard() {
			m.alert("poweredOff", Warning, nil)
		}
		m.log.Debug("control not enabled", zap.Stringer("control", kind))
		return false
	}
	a.Do()
	m.log.Debug("control applied",
		zap.Stringer("control", kind),
		zap.Int("step", m.tutorial.Index()),
		zap.Bool("power", m.d.Power),
		zap.Bool("running", m.d.Running),
		zap.Stringer("probe", m.d.Probe.State))
	return true
}

// Activate resolves the pointer ray against the current scene and operates
// the control that was hit. Activating empty space with the probe in hand
// puts the probe down.
func (m *Model) Activate(ray Ray, direction int) (Descriptor, bool) {
	d, ok := m.router.Resolve(m.Scene(), ray)
	if !ok {
		if m.d.Probe.State == ProbeGrabbed {
			m.dropProbe()
		}
		return Descriptor{}, false
	}
	m.Apply(d.Kind, Params{Waveform: d.Waveform, Direction: direction})
	return d, true
}

// Hover returns the control under the pointer ray without changing anything.
func (m *Model) Hover(ray Ray) (Descriptor, bool) {
	return m.router.Hover(m.Scene(), ray)
}

// powerGuard disables the settings controls of a switched off instrument,
// when the configuration asks for it.
func (m *Model) powerGuard() bool {
	return m.d.Power || !m.config.RequirePower
}

// Power

type powerToggle Model

func (m *powerToggle) Do() {
	m.d.Power = !m.d.Power
	if m.d.Power {
		(*Model)(m).alerts.Remove("poweredOff")
		(*Model)(m).alert("powerOn", Info, nil)
	} else {
		(*Model)(m).alert("powerOff", Info, nil)
	}
	(*Model)(m).cue(CueClick)
	(*Model)(m).advanceTutorial(Power)
}

func (m *Model) Power() Bool { return MakeBool((*powerValue)(m)) }

type powerValue Model

func (m *powerValue) Value() bool { return m.d.Power }
func (m *powerValue) SetValue(v bool) {
	if v != m.d.Power {
		(*powerToggle)(m).Do()
	}
}

// Wave

type waveSelect struct {
	*Model
	waveform scopetrainer.Waveform
}

func (w waveSelect) Enabled() bool {
	return w.powerGuard() && w.waveform >= 0 && w.waveform < scopetrainer.NumWaveforms
}

func (w waveSelect) Do() {
	w.d.Signal.Waveform = w.waveform
	w.alert("waveform", Info, map[string]any{"Name": WaveformName(w.waveform)})
	w.cue(CueClick)
	w.advanceTutorial(Wave)
}

// Rotaries

type rotaryStep struct {
	*Model
	kind      ControlKind
	direction int
}

func (r rotaryStep) Enabled() bool { return r.powerGuard() }

func (r rotaryStep) Do() {
	v := r.Model.rotary(r.kind)
	v.Add(r.direction)
	r.alert(r.kind.String(), Info, map[string]any{"Value": v.String()})
	r.cue(CueClick)
	r.advanceTutorial(r.kind)
}

func (m *Model) rotary(kind ControlKind) Int {
	switch kind {
	case Timebase:
		return m.Timebase()
	case Vdiv:
		return m.VoltsPerDiv()
	}
	return m.Trigger()
}

// Timebase returns the index into TimebaseValues set with the TIME/DIV knob.
func (m *Model) Timebase() Int    { return MakeInt((*timebaseIndex)(m)) }
func (m *Model) VoltsPerDiv() Int { return MakeInt((*vdivIndex)(m)) }
func (m *Model) Trigger() Int     { return MakeInt((*triggerIndex)(m)) }

type (
	timebaseIndex Model
	vdivIndex     Model
	triggerIndex  Model
)

func (m *timebaseIndex) Value() int { return m.d.TimebaseIndex }
func (m *timebaseIndex) SetValue(v int) bool {
	m.d.TimebaseIndex = v
	return true
}
func (m *timebaseIndex) Range() RangeInclusive {
	return RangeInclusive{0, len(scopetrainer.TimebaseValues) - 1}
}
func (m *timebaseIndex) Enabled() bool { return (*Model)(m).powerGuard() }
func (m *timebaseIndex) StringOf(v int) string {
	return scopetrainer.TimebaseString(scopetrainer.TimebaseValues[v])
}

func (m *vdivIndex) Value() int { return m.d.VoltsPerDivIndex }
func (m *vdivIndex) SetValue(v int) bool {
	m.d.VoltsPerDivIndex = v
	return true
}
func (m *vdivIndex) Range() RangeInclusive {
	return RangeInclusive{0, len(scopetrainer.VoltsPerDivValues) - 1}
}
func (m *vdivIndex) Enabled() bool { return (*Model)(m).powerGuard() }
func (m *vdivIndex) StringOf(v int) string {
	return scopetrainer.VoltsPerDivString(scopetrainer.VoltsPerDivValues[v])
}

func (m *triggerIndex) Value() int { return m.d.TriggerIndex }
func (m *triggerIndex) SetValue(v int) bool {
	m.d.TriggerIndex = v
	return true
}
func (m *triggerIndex) Range() RangeInclusive {
	return RangeInclusive{0, len(scopetrainer.TriggerValues) - 1}
}
func (m *triggerIndex) Enabled() bool { return (*Model)(m).powerGuard() }
func (m *triggerIndex) StringOf(v int) string {
	return scopetrainer.TriggerString(scopetrainer.TriggerValues[v])
}

// Run/Stop

type runStopToggle Model

func (m *runStopToggle) Enabled() bool { return (*Model)(m).powerGuard() }

func (m *runStopToggle) Do() {
	(*Model)(m).setRunning(!m.d.Running)
	if m.d.Running {
		(*Model)(m).alert("run", Info, nil)
	} else {
		(*Model)(m).alert("stop", Info, nil)
	}
	(*Model)(m).cue(CueClick)
	(*Model)(m).advanceTutorial(RunStop)
}

func (m *Model) Running() Bool { return MakeBool((*runningValue)(m)) }

type runningValue Model

func (m *runningValue) Value() bool   { return m.d.Running }
func (m *runningValue) Enabled() bool { return (*Model)(m).powerGuard() }
func (m *runningValue) SetValue(v bool) {
	if v != m.d.Running {
		(*runStopToggle)(m).Do()
	}
}

// setRunning keeps the frozen frame in step with the run state: stopping
// captures the frame on screen, running again discards it.
func (m *Model) setRunning(running bool) {
	if running == m.d.Running {
		return
	}
	m.d.Running = running
	if running {
		m.d.Frozen = nil
	} else {
		m.freeze()
	}
}

// Auto

type autoSet Model

func (m *autoSet) Enabled() bool { return (*Model)(m).powerGuard() }

func (m *autoSet) Do() {
	defaults := m.config.Defaults
	m.d.TimebaseIndex = defaults.Timebase
	m.d.VoltsPerDivIndex = defaults.VoltsPerDiv
	m.d.TriggerIndex = defaults.Trigger
	m.d.Running = true
	m.d.Frozen = nil
	(*Model)(m).alert("auto", Info, map[string]any{
		"Timebase":    (*Model)(m).Timebase().String(),
		"VoltsPerDiv": (*Model)(m).VoltsPerDiv().String(),
		"Trigger":     (*Model)(m).Trigger().String(),
	})
	(*Model)(m).cue(CueClick)
}
