package trainer_test

import (
	"testing"

	"github.com/vsariola/scopetrainer"
	"github.com/vsariola/scopetrainer/trainer"
	"gitlab.com/gomidi/midi/v2"
)

func TestTranslateMIDI(t *testing.T) {
	mm := trainer.DefaultConfig().MIDI
	tests := []struct {
		name string
		msg  midi.Message
		ok   bool
		want trainer.MsgToModel
	}{
		{"power", midi.NoteOn(0, 36, 100), true, trainer.MsgToModel{Kind: trainer.Power}},
		{"square", midi.NoteOn(3, 42, 1), true, trainer.MsgToModel{Kind: trainer.Wave, Params: trainer.Params{Waveform: scopetrainer.Square}}},
		{"zero velocity", midi.NoteOn(0, 36, 0), false, trainer.MsgToModel{}},
		{"note off", midi.NoteOff(0, 36), false, trainer.MsgToModel{}},
		{"unbound note", midi.NoteOn(0, 60, 100), false, trainer.MsgToModel{}},
		{"knob up", midi.ControlChange(0, 20, 1), true, trainer.MsgToModel{Kind: trainer.Timebase, Params: trainer.Params{Direction: 1}}},
		{"knob down", midi.ControlChange(0, 22, 127), true, trainer.MsgToModel{Kind: trainer.Trigger, Params: trainer.Params{Direction: -1}}},
		{"knob center", midi.ControlChange(0, 21, 64), false, trainer.MsgToModel{}},
		{"unbound knob", midi.ControlChange(0, 7, 1), false, trainer.MsgToModel{}},
		{"program change", midi.ProgramChange(0, 1), false, trainer.MsgToModel{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := mm.Translate(tt.msg)
			if ok != tt.ok || got != tt.want {
				t.Errorf("got %+v %v, want %+v %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestTranslateMIDIChannel(t *testing.T) {
	mm := trainer.DefaultConfig().MIDI
	mm.Channel = 2
	if _, ok := mm.Translate(midi.NoteOn(0, 36, 100)); ok {
		t.Error("message on channel 1 should be ignored")
	}
	if _, ok := mm.Translate(midi.NoteOn(1, 36, 100)); !ok {
		t.Error("message on channel 2 should be accepted")
	}
}

func TestTranslateMIDIOnlyRotaryKnobs(t *testing.T) {
	mm := trainer.DefaultConfig().MIDI
	mm.Knobs = map[int]trainer.ControlKind{1: trainer.Power}
	if _, ok := mm.Translate(midi.ControlChange(0, 1, 1)); ok {
		t.Error("a knob bound to a button should be ignored")
	}
}

type fakeDevice string

func (d fakeDevice) String() string { return string(d) }
func (d fakeDevice) Open() error    { return nil }

type fakeContext []string

func (c fakeContext) InputDevices(yield func(trainer.MIDIDevice) bool) {
	for _, n := range c {
		if !yield(fakeDevice(n)) {
			return
		}
	}
}
func (c fakeContext) Close()              {}
func (c fakeContext) HasDeviceOpen() bool { return false }

func TestFindMIDIDeviceByPrefix(t *testing.T) {
	c := fakeContext{"Midi Through", "nanoKONTROL2 MIDI 1", "nanoKEY"}
	d, ok := trainer.FindMIDIDeviceByPrefix(c, "nanoK")
	if !ok || d.String() != "nanoKONTROL2 MIDI 1" {
		t.Errorf("expected the first matching device, got %v", d)
	}
	if _, ok := trainer.FindMIDIDeviceByPrefix(c, "Launch"); ok {
		t.Error("no device should match")
	}
	if _, ok := trainer.FindMIDIDeviceByPrefix(trainer.NullMIDIContext{}, ""); ok {
		t.Error("the null context has no devices")
	}
}
