//go:build cgo

package cmd

import (
	"github.com/vsariola/scopetrainer/trainer"
	"github.com/vsariola/scopetrainer/trainer/gomidi"
	"go.uber.org/zap"
)

func NewMidiContext(broker *trainer.Broker, mapping trainer.MIDIMap, log *zap.Logger) trainer.MIDIContext {
	return gomidi.NewContext(broker, mapping, log)
}
