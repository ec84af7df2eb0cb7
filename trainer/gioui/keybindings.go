package gioui

import (
	_ "embed"
	"fmt"

	"gioui.org/io/event"
	"gioui.org/io/key"
	"github.com/vsariola/scopetrainer"
	"github.com/vsariola/scopetrainer/trainer"
	"go.uber.org/zap"
	"gopkg.in/yaml.v2"
)

type KeyBinding struct {
	Key                                        string
	Shortcut, Ctrl, Command, Shift, Alt, Super bool
	Action                                     string
}

var keyBindingMap = map[key.Event]string{}
var keyFilters []event.Filter

//go:embed keybindings.yml
var defaultKeyBindingsYaml []byte

func loadDefaultKeyBindings() []KeyBinding {
	var keyBindings []KeyBinding
	err := yaml.Unmarshal(defaultKeyBindingsYaml, &keyBindings)
	if err != nil {
		panic(fmt.Errorf("failed to unmarshal keybindings: %w", err))
	}
	return keyBindings
}

// loadCustomKeyBindings reads keybindings.yml from the user config directory.
// Its bindings are applied after the defaults; an empty action unbinds a key.
func loadCustomKeyBindings() []KeyBinding {
	var keyBindings []KeyBinding
	_, err := trainer.ReadCustomConfigYml("keybindings.yml", &keyBindings)
	if err != nil {
		return nil
	}
	return keyBindings
}

func init() {
	bindKeys(append(loadDefaultKeyBindings(), loadCustomKeyBindings()...))
}

func bindKeys(keyBindings []KeyBinding) {
	clear(keyBindingMap)
	for _, kb := range keyBindings {
		var mods key.Modifiers
		if kb.Shortcut {
			mods |= key.ModShortcut
		}
		if kb.Ctrl {
			mods |= key.ModCtrl
		}
		if kb.Command {
			mods |= key.ModCommand
		}
		if kb.Shift {
			mods |= key.ModShift
		}
		if kb.Alt {
			mods |= key.ModAlt
		}
		if kb.Super {
			mods |= key.ModSuper
		}
		keyEvent := key.Event{Name: key.Name(kb.Key), Modifiers: mods, State: key.Press}
		if kb.Action == "" {
			delete(keyBindingMap, keyEvent)
		} else {
			keyBindingMap[keyEvent] = kb.Action
		}
	}
	keyFilters = keyFilters[:0]
	for e := range keyBindingMap {
		keyFilters = append(keyFilters, key.Filter{Name: e.Name, Required: e.Modifiers})
	}
}

// KeyEvent runs the action bound to a key press.
func (t *Trainer) KeyEvent(e key.Event) {
	if e.State != key.Press {
		return
	}
	action, ok := keyBindingMap[key.Event{Name: e.Name, Modifiers: e.Modifiers, State: key.Press}]
	if !ok {
		return
	}
	switch action {
	case "Power":
		t.Apply(trainer.Power, trainer.Params{})
	case "RunStop":
		t.Apply(trainer.RunStop, trainer.Params{})
	case "Auto":
		t.Apply(trainer.Auto, trainer.Params{})
	case "Probe":
		t.Apply(trainer.ProbeBody, trainer.Params{})
	case "WaveSine":
		t.Apply(trainer.Wave, trainer.Params{Waveform: scopetrainer.Sine})
	case "WaveSquare":
		t.Apply(trainer.Wave, trainer.Params{Waveform: scopetrainer.Square})
	case "WaveTriangle":
		t.Apply(trainer.Wave, trainer.Params{Waveform: scopetrainer.Triangle})
	case "TimebaseUp":
		t.Apply(trainer.Timebase, trainer.Params{Direction: 1})
	case "TimebaseDown":
		t.Apply(trainer.Timebase, trainer.Params{Direction: -1})
	case "VdivUp":
		t.Apply(trainer.Vdiv, trainer.Params{Direction: 1})
	case "VdivDown":
		t.Apply(trainer.Vdiv, trainer.Params{Direction: -1})
	case "TriggerUp":
		t.Apply(trainer.Trigger, trainer.Params{Direction: 1})
	case "TriggerDown":
		t.Apply(trainer.Trigger, trainer.Params{Direction: -1})
	case "Screenshot":
		t.saveScreenshot()
	default:
		t.log.Warn("unknown key action", zap.String("action", action))
	}
}
