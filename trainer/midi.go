package trainer

import (
	"strings"

	"github.com/vsariola/scopetrainer"
	"gitlab.com/gomidi/midi/v2"
)

type (
	// MIDIMap binds MIDI notes to buttons and MIDI controllers to the rotary
	// controls, so a hardware control surface can drive the trainer.
	MIDIMap struct {
		Channel int                 `yaml:"channel"` // 1-16; 0 accepts every channel
		Notes   map[int]MIDIBinding `yaml:"notes"`
		Knobs   map[int]ControlKind `yaml:"knobs"`
	}

	MIDIBinding struct {
		Control  ControlKind           `yaml:"control"`
		Waveform scopetrainer.Waveform `yaml:"waveform,omitempty"`
	}

	// MIDIContext is the MIDI input collaborator: something that can list
	// and open input devices and forwards their messages to the broker.
	MIDIContext interface {
		InputDevices(yield func(MIDIDevice) bool)
		Close()
		HasDeviceOpen() bool
	}

	MIDIDevice interface {
		String() string
		Open() error
	}

	NullMIDIContext struct{}
)

func (m NullMIDIContext) InputDevices(yield func(MIDIDevice) bool) {}
func (m NullMIDIContext) Close()                                  {}
func (m NullMIDIContext) HasDeviceOpen() bool                     { return false }

// Translate turns a MIDI message into a control message for the model. Note
// on messages press the bound button. Control change messages turn the bound
// knob one step, reading the value as a relative encoder: 1-63 turns
// clockwise, 64-127 counterclockwise.
func (mm MIDIMap) Translate(msg midi.Message) (MsgToModel, bool) {
	var channel, key, velocity, controller, value uint8
	switch {
	case msg.GetNoteOn(&channel, &key, &velocity):
		if velocity == 0 || !mm.acceptsChannel(channel) {
			return MsgToModel{}, false
		}
		b, ok := mm.Notes[int(key)]
		if !ok || b.Control == NoControl {
			return MsgToModel{}, false
		}
		return MsgToModel{Kind: b.Control, Params: Params{Waveform: b.Waveform}}, true
	case msg.GetControlChange(&channel, &controller, &value):
		if value == 0 || value == 64 || !mm.acceptsChannel(channel) {
			return MsgToModel{}, false
		}
		kind, ok := mm.Knobs[int(controller)]
		if !ok || !kind.Rotary() {
			return MsgToModel{}, false
		}
		dir := 1
		if value > 64 {
			dir = -1
		}
		return MsgToModel{Kind: kind, Params: Params{Direction: dir}}, true
	}
	return MsgToModel{}, false
}

// gomidi channels are 0-based
func (mm MIDIMap) acceptsChannel(channel uint8) bool {
	return mm.Channel == 0 || int(channel)+1 == mm.Channel
}

// FindMIDIDeviceByPrefix returns the first input device whose name starts
// with the prefix.
func FindMIDIDeviceByPrefix(c MIDIContext, prefix string) (input MIDIDevice, ok bool) {
	for device := range c.InputDevices {
		if strings.HasPrefix(device.String(), prefix) {
			return device, true
		}
	}
	return nil, false
}
