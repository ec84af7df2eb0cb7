//go:build !cgo

package cmd

import (
	"github.com/vsariola/scopetrainer/trainer"
	"go.uber.org/zap"
)

func NewMidiContext(broker *trainer.Broker, mapping trainer.MIDIMap, log *zap.Logger) trainer.MIDIContext {
	// with no cgo, we cannot use MIDI, so return a null context
	return trainer.NullMIDIContext{}
}
