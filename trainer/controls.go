package trainer

import (
	"fmt"

	"github.com/vsariola/scopetrainer"
)

type (
	// ControlKind identifies what an addressable element of the instrument
	// does when activated.
	ControlKind int

	// Descriptor is the static metadata of one registered control. Anchor
	// names the scene node used for hit-testing and highlight placement.
	Descriptor struct {
		Kind     ControlKind
		Waveform scopetrainer.Waveform // only meaningful for Wave controls
		Label    string
		Anchor   string
	}

	// Registry is the ordered collection of all controls of the instrument.
	// It is built once at startup and read-only afterwards.
	Registry struct {
		descriptors []Descriptor
		byAnchor    map[string]int
	}
)

const (
	NoControl ControlKind = iota
	Power
	Ch1Port
	ProbeBody
	Wave
	Timebase
	Vdiv
	Trigger
	RunStop
	Auto
	NumControlKinds
)

var controlKindNames = [NumControlKinds]string{
	"", "power", "ch1port", "probe", "wave", "timebase", "vdiv", "trigger", "runstop", "auto",
}

func (k ControlKind) String() string {
	if k < 0 || k >= NumControlKinds {
		return fmt.Sprintf("ControlKind(%d)", int(k))
	}
	if k == NoControl {
		return "none"
	}
	return controlKindNames[k]
}

// ParseControlKind parses the lower case name of a control kind. The empty
// string and "none" parse to NoControl.
func ParseControlKind(name string) (ControlKind, error) {
	if name == "none" {
		return NoControl, nil
	}
	for i, n := range controlKindNames {
		if n == name {
			return ControlKind(i), nil
		}
	}
	return NoControl, fmt.Errorf("unknown control %q", name)
}

func (k ControlKind) MarshalText() ([]byte, error) {
	if k == NoControl {
		return []byte{}, nil
	}
	return []byte(k.String()), nil
}

func (k *ControlKind) UnmarshalText(text []byte) error {
	v, err := ParseControlKind(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// Rotary reports if the control steps through one of the value tables.
func (k ControlKind) Rotary() bool {
	return k == Timebase || k == Vdiv || k == Trigger
}

// NewRegistry builds a registry from the descriptors, keeping their order.
// Every descriptor needs a unique, non-empty anchor.
func NewRegistry(descriptors ...Descriptor) (*Registry, error) {
	r := &Registry{
		descriptors: make([]Descriptor, 0, len(descriptors)),
		byAnchor:    make(map[string]int, len(descriptors)),
	}
	for _, d := range descriptors {
		if d.Anchor == "" {
			return nil, fmt.Errorf("control %q has no anchor", d.Label)
		}
		if d.Kind <= NoControl || d.Kind >= NumControlKinds {
			return nil, fmt.Errorf("control %q has invalid kind %v", d.Label, d.Kind)
		}
		if _, ok := r.byAnchor[d.Anchor]; ok {
			return nil, fmt.Errorf("duplicate control anchor %q", d.Anchor)
		}
		r.byAnchor[d.Anchor] = len(r.descriptors)
		r.descriptors = append(r.descriptors, d)
	}
	return r, nil
}

var defaultDescriptors = []Descriptor{
	{Kind: Power, Label: "POWER", Anchor: "power"},
	{Kind: Ch1Port, Label: "CH1", Anchor: "ch1"},
	{Kind: ProbeBody, Label: "Probe", Anchor: "probe"},
	{Kind: Wave, Waveform: scopetrainer.Sine, Label: "SINE", Anchor: "wave.sine"},
	{Kind: Wave, Waveform: scopetrainer.Square, Label: "SQUARE", Anchor: "wave.square"},
	{Kind: Wave, Waveform: scopetrainer.Triangle, Label: "TRI", Anchor: "wave.triangle"},
	{Kind: Timebase, Label: "TIME/DIV", Anchor: "knob.timebase"},
	{Kind: Vdiv, Label: "VOLTS/DIV", Anchor: "knob.vdiv"},
	{Kind: Trigger, Label: "TRIG LEVEL", Anchor: "knob.trigger"},
	{Kind: RunStop, Label: "RUN/STOP", Anchor: "runstop"},
	{Kind: Auto, Label: "AUTO", Anchor: "auto"},
}

// DefaultRegistry returns the registry of the standard front panel.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(defaultDescriptors...)
	if err != nil {
		panic(fmt.Errorf("default registry: %w", err))
	}
	return r
}

func (r *Registry) Lookup(anchor string) (Descriptor, bool) {
	i, ok := r.byAnchor[anchor]
	if !ok {
		return Descriptor{}, false
	}
	return r.descriptors[i], true
}

// ByKind returns the first registered control of the given kind.
func (r *Registry) ByKind(kind ControlKind) (Descriptor, bool) {
	for _, d := range r.descriptors {
		if d.Kind == kind {
			return d, true
		}
	}
	return Descriptor{}, false
}

func (r *Registry) Len() int { return len(r.descriptors) }

// Descriptors iterates the controls in registration order.
func (r *Registry) Descriptors(yield func(int, Descriptor) bool) {
	for i, d := range r.descriptors {
		if !yield(i, d) {
			return
		}
	}
}
