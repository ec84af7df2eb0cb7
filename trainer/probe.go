package trainer

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

type (
	ProbeState int

	// Probe is the test probe: where it is and whether it is in hand or
	// plugged into CH1.
	Probe struct {
		State    ProbeState
		Position mgl32.Vec3
	}
)

const (
	ProbeResting ProbeState = iota
	ProbeGrabbed
	ProbeConnected
)

func (s ProbeState) String() string {
	switch s {
	case ProbeResting:
		return "resting"
	case ProbeGrabbed:
		return "grabbed"
	case ProbeConnected:
		return "connected"
	}
	return "unknown"
}

func restingProbe() Probe { return Probe{State: ProbeResting, Position: RestingPosition} }

func (p Probe) Grabbed() bool   { return p.State == ProbeGrabbed }
func (p Probe) Connected() bool { return p.State == ProbeConnected }

// Valid reports if the probe is in one of its states, a resting probe lies
// on the bench and a connected probe sits at the CH1 port. A probe can never be both grabbed and connected.
func (p Probe) Valid() bool {
	switch p.State {
	case ProbeResting:
		return p.Position == RestingPosition
	case ProbeGrabbed:
		return true
	case ProbeConnected:
		return p.Position == Ch1PortPosition
	}
	return false
}

// Probe transitions. These are reached through the ProbeBody and Ch1Port
// actions of the dispatcher, and through Drag for the proximity snap.

func (m *Model) grabProbe() {
	m.d.Probe.State = ProbeGrabbed
	m.alerts.Remove("grabProbeFirst")
	m.alert("probeGrabbed", Info, nil)
	m.cue(CueClick)
	m.log.Debug("probe grabbed")
}

func (m *Model) dropProbe() {
	m.d.Probe = restingProbe()
	m.alert("probeDropped", Info, nil)
	m.log.Debug("probe dropped")
}

func (m *Model) connectProbe() {
	m.d.Probe = Probe{State: ProbeConnected, Position: Ch1PortPosition}
	m.d.ProbeConnected = true
	m.alert("probeConnected", Info, nil)
	m.cue(CueConnect)
	m.log.Debug("probe connected")
	m.advanceTutorial(Ch1Port)
}

func (m *Model) unplugProbe() {
	m.d.Probe = restingProbe()
	m.d.ProbeConnected = false
	m.alert("probeDisconnected", Info, nil)
	m.cue(CueClick)
	m.log.Debug("probe disconnected")
}

// Drag moves a grabbed probe along the plane in front of the instrument face,
// following the pointer ray. The position is clamped to the face; coming
// within the snap radius of the CH1 port connects the probe. Returns false if
// the probe is not in hand or the ray misses the plane.
func (m *Model) Drag(ray Ray) bool {
	if m.d.Probe.State != ProbeGrabbed {
		return false
	}
	p, ok := ray.IntersectPlaneZ(FacePlaneZ)
	if !ok {
		return false
	}
	p[0] = mgl32.Clamp(p[0], FaceMin[0], FaceMax[0])
	p[1] = mgl32.Clamp(p[1], FaceMin[1], FaceMax[1])
	p[2] = FacePlaneZ
	m.d.Probe.Position = p
	if p.Sub(Ch1PortPosition).Len() <= m.config.SnapRadius {
		m.connectProbe()
	}
	return true
}

// probeBody is the action of activating the probe itself: pick it up, put it
// down, or pull it out of the port.
type probeBody Model

func (m *probeBody) Do() {
	switch m.d.Probe.State {
	case ProbeResting:
		(*Model)(m).grabProbe()
	case ProbeGrabbed:
		(*Model)(m).dropProbe()
	case ProbeConnected:
		(*Model)(m).unplugProbe()
	}
}

// ch1Port is the action of activating the CH1 input: plug in the probe in
// hand or unplug the connected one.
type ch1Port Model

func (m *ch1Port) Do() {
	switch m.d.Probe.State {
	case ProbeResting:
		(*Model)(m).alert("grabProbeFirst", Warning, nil)
		m.log.Debug("CH1 activated without probe", zap.Stringer("probe", m.d.Probe.State))
	case ProbeGrabbed:
		(*Model)(m).connectProbe()
	case ProbeConnected:
		(*Model)(m).unplugProbe()
	}
}
