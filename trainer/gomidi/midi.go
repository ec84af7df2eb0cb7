package gomidi

import (
	"errors"
	"fmt"

	"github.com/vsariola/scopetrainer/trainer"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	"gitlab.com/gomidi/midi/v2/drivers/rtmididrv"
	"go.uber.org/zap"
)

type (
	// RTMIDIContext listens to one MIDI input device at a time and forwards
	// the messages that the MIDI map binds to a control into the broker.
	RTMIDIContext struct {
		driver             *rtmididrv.Driver
		currentIn          drivers.In
		stop               func()
		inputDevices       []RTMIDIDevice
		devicesInitialized bool
		broker             *trainer.Broker
		mapping            trainer.MIDIMap
		log                *zap.Logger
	}

	RTMIDIDevice struct {
		context *RTMIDIContext
		in      drivers.In
	}
)

func (m *RTMIDIContext) InputDevices(yield func(trainer.MIDIDevice) bool) {
	if m.devicesInitialized {
		m.yieldCachedInputDevices(yield)
	} else {
		m.initInputDevices(yield)
	}
}

func (m *RTMIDIContext) yieldCachedInputDevices(yield func(trainer.MIDIDevice) bool) {
	for _, device := range m.inputDevices {
		if !yield(device) {
			break
		}
	}
}

func (m *RTMIDIContext) initInputDevices(yield func(trainer.MIDIDevice) bool) {
	if m.driver == nil {
		return
	}
	ins, err := m.driver.Ins()
	if err != nil {
		m.log.Warn("listing MIDI inputs failed", zap.Error(err))
		return
	}
	for i := 0; i < len(ins); i++ {
		m.inputDevices = append(m.inputDevices, RTMIDIDevice{context: m, in: ins[i]})
	}
	m.devicesInitialized = true
	m.yieldCachedInputDevices(yield)
}

// NewContext opens the rtmidi driver. If the driver is not available, the
// context has no devices.
func NewContext(broker *trainer.Broker, mapping trainer.MIDIMap, log *zap.Logger) *RTMIDIContext {
	if log == nil {
		log = zap.NewNop()
	}
	m := RTMIDIContext{broker: broker, mapping: mapping, log: log}
	var err error
	if m.driver, err = rtmididrv.New(); err != nil {
		m.driver = nil
		log.Info("MIDI driver not available", zap.Error(err))
	}
	return &m
}

// Open an input device while closing the currently open if necessary.
func (d RTMIDIDevice) Open() error {
	c := d.context
	if c.currentIn == d.in {
		return nil
	}
	if c.driver == nil {
		return errors.New("no driver available")
	}
	c.closeCurrent()
	if err := d.in.Open(); err != nil {
		return fmt.Errorf("opening MIDI input failed: %w", err)
	}
	stop, err := midi.ListenTo(d.in, c.HandleMessage)
	if err != nil {
		d.in.Close()
		return fmt.Errorf("listening to MIDI input failed: %w", err)
	}
	c.currentIn, c.stop = d.in, stop
	c.log.Info("MIDI input opened", zap.String("device", d.in.String()))
	return nil
}

func (d RTMIDIDevice) String() string {
	return d.in.String()
}

func (c *RTMIDIContext) closeCurrent() {
	if c.stop != nil {
		c.stop()
		c.stop = nil
	}
	if c.currentIn != nil && c.currentIn.IsOpen() {
		c.currentIn.Close()
	}
	c.currentIn = nil
}

func (c *RTMIDIContext) Close() {
	if c.driver == nil {
		return
	}
	c.closeCurrent()
	c.driver.Close()
}

func (c *RTMIDIContext) HasDeviceOpen() bool {
	return c.currentIn != nil && c.currentIn.IsOpen()
}

// HandleMessage is called on the driver's goroutine for every incoming
// message. If the model is not keeping up, the message is dropped.
func (c *RTMIDIContext) HandleMessage(msg midi.Message, timestampms int32) {
	m, ok := c.mapping.Translate(msg)
	if !ok {
		return
	}
	if !trainer.TrySend(c.broker.ToModel, m) {
		c.log.Debug("model queue full, dropping MIDI message", zap.Stringer("control", m.Kind))
	}
}
