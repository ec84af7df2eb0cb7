package trainer

import (
	"github.com/vsariola/scopetrainer"
	"go.uber.org/zap"
)

// Model implements the mutable state of the oscilloscope trainer.
//
// It is owned by the frame driver's goroutine: pointer activations, drags and
// Tick must all be called from it, never concurrently. Other goroutines (MIDI
// input) reach the model only through the Broker.
type (
	// modelData is the instrument state proper
	modelData struct {
		Power            bool
		ProbeConnected   bool
		Signal           scopetrainer.Signal
		TimebaseIndex    int
		VoltsPerDivIndex int
		TriggerIndex     int
		Running          bool
		Phase            float64
		Frozen           *scopetrainer.Frame
		Probe            Probe
	}

	Model struct {
		d        modelData
		tutorial Tutorial
		alerts   Alerts
		config   Config
		registry *Registry
		router   *Router
		panel    Shapes
		messages *Messages
		broker   *Broker
		log      *zap.Logger
	}
)

// NewModel creates the instrument in its startup state: powered off, probe
// resting on the bench, running, tutorial at the first step. A nil logger
// disables logging.
func NewModel(broker *Broker, config Config, logger *zap.Logger) *Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	config = config.sanitize()
	ret := &Model{
		tutorial: DefaultTutorial(),
		config:   config,
		registry: DefaultRegistry(),
		panel:    PanelScene(),
		messages: DefaultMessages(),
		broker:   broker,
		log:      logger,
	}
	ret.router = NewRouter(ret.registry)
	ret.d.Signal = config.Signal
	ret.d.TimebaseIndex = config.Defaults.Timebase
	ret.d.VoltsPerDivIndex = config.Defaults.VoltsPerDiv
	ret.d.TriggerIndex = config.Defaults.Trigger
	ret.d.Running = true
	ret.d.Probe = restingProbe()
	if config.YmlError != nil {
		ret.alert("configError", Error, map[string]any{"Error": config.YmlError.Error()})
		logger.Warn("config file could not be fully decoded", zap.Error(config.YmlError))
	}
	return ret
}

// SetTutorial replaces the tutorial, e.g. with one read from a file. The
// tutorial restarts from its first step.
func (m *Model) SetTutorial(steps []TutorialStep) { m.tutorial = NewTutorial(steps) }

// SetMessages replaces the feedback message templates.
func (m *Model) SetMessages(messages *Messages) { m.messages = messages }

func (m *Model) Alerts() *Alerts       { return &m.alerts }
func (m *Model) Tutorial() Tutorial    { return m.tutorial }
func (m *Model) Registry() *Registry   { return m.registry }
func (m *Model) Router() *Router       { return m.router }
func (m *Model) Config() Config        { return m.config }
func (m *Model) Probe() Probe          { return m.d.Probe }
func (m *Model) ProbeConnected() bool  { return m.d.ProbeConnected }
func (m *Model) Phase() float64        { return m.d.Phase }
func (m *Model) Screen() scopetrainer.Screen { return m.config.Screen }

func (m *Model) Waveform() scopetrainer.Waveform { return m.d.Signal.Waveform }

// Scene returns the current geometry of the instrument: the static panel and
// the probe. A grabbed probe travels with the pointer and is left out, so it
// never occludes what the pointer is aimed at.
func (m *Model) Scene() Shapes {
	ret := make(Shapes, 0, len(m.panel)+2)
	ret = append(ret, m.panel...)
	if m.d.Probe.State != ProbeGrabbed {
		ret = append(ret, ProbeShapes(m.d.Probe.Position)...)
	}
	return ret
}

// Settings returns what the signal model needs for the current state.
func (m *Model) Settings() scopetrainer.Settings {
	return scopetrainer.Settings{
		Signal:           m.d.Signal,
		TimebaseMsPerDiv: scopetrainer.TimebaseValues[m.d.TimebaseIndex],
		VoltsPerDiv:      scopetrainer.VoltsPerDivValues[m.d.VoltsPerDivIndex],
		TriggerDiv:       scopetrainer.TriggerValues[m.d.TriggerIndex],
		Phase:            m.d.Phase,
	}
}

// Notify shows a message from outside the instrument, e.g. the result of
// saving a screenshot, for the configured alert duration.
func (m *Model) Notify(name, message string, priority AlertPriority) {
	m.alerts.AddAlert(Alert{
		Name:     name,
		Priority: priority,
		Message:  message,
		Duration: m.config.AlertDuration,
	})
}

// alert formats a feedback message and queues it for the configured time.
func (m *Model) alert(name string, priority AlertPriority, data map[string]any) {
	text, err := m.messages.Format(name, data)
	if err != nil {
		m.log.Error("cannot format feedback message", zap.String("message", name), zap.Error(err))
		text = name
	}
	m.alerts.AddAlert(Alert{
		Name:     name,
		Priority: priority,
		Message:  text,
		Duration: m.config.AlertDuration,
	})
}

func (m *Model) cue(c Cue) {
	if m.broker == nil {
		return
	}
	if !TrySend(m.broker.ToAudio, c) {
		m.log.Debug("audio queue full, dropping cue", zap.Stringer("cue", c))
	}
}

// advanceTutorial feeds the operated control to the tutorial and announces
// the next step when it changes.
func (m *Model) advanceTutorial(kind ControlKind) {
	if !m.tutorial.Advance(kind) {
		return
	}
	step := m.tutorial.Step()
	data := map[string]any{
		"Index": m.tutorial.Index(),
		"Count": m.tutorial.Count(),
		"Title": step.Title,
	}
	if m.tutorial.Done() {
		m.alert("complete", Info, data)
	} else {
		m.alert("step", Info, data)
	}
	m.log.Info("tutorial advanced", zap.Int("step", m.tutorial.Index()), zap.String("id", step.ID))
}
