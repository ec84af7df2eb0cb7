package trainer_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vsariola/scopetrainer"
	"github.com/vsariola/scopetrainer/trainer"
)

func TestDefaultConfig(t *testing.T) {
	c := trainer.DefaultConfig()
	if c.Signal != scopetrainer.DefaultSignal {
		t.Errorf("unexpected signal %+v", c.Signal)
	}
	if c.Screen != scopetrainer.DefaultScreen {
		t.Errorf("unexpected screen %+v", c.Screen)
	}
	if c.Defaults.Timebase != 3 || c.Defaults.VoltsPerDiv != 3 || c.Defaults.Trigger != 3 {
		t.Errorf("unexpected default indices %+v", c.Defaults)
	}
	if c.AlertDuration != 2*time.Second || c.RequirePower {
		t.Errorf("unexpected alert duration %v or power policy %v", c.AlertDuration, c.RequirePower)
	}
	if b := c.MIDI.Notes[36]; b.Control != trainer.Power {
		t.Errorf("note 36 should be power, got %v", b.Control)
	}
	if b := c.MIDI.Notes[42]; b.Control != trainer.Wave || b.Waveform != scopetrainer.Square {
		t.Errorf("note 42 should select square, got %+v", b)
	}
}

func TestReadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	yml := "signal:\n  waveform: square\n  frequencyHz: 500\n  amplitudeVolts: 1\nrequirePower: true\nsnapRadius: -1\n"
	if err := os.WriteFile(path, []byte(yml), 0644); err != nil {
		t.Fatal(err)
	}
	c, err := trainer.ReadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Signal.Waveform != scopetrainer.Square || c.Signal.FrequencyHz != 500 || !c.RequirePower {
		t.Errorf("config not applied: %+v", c)
	}
	if c.SnapRadius != trainer.DefaultConfig().SnapRadius {
		t.Errorf("invalid snap radius should fall back to the default, got %v", c.SnapRadius)
	}
	if c.Screen != scopetrainer.DefaultScreen {
		t.Errorf("unset fields should keep their defaults, got %+v", c.Screen)
	}
}

func TestReadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := trainer.ReadConfig(filepath.Join(dir, "missing.yml")); err == nil {
		t.Error("expected error for a missing file")
	}
	path := filepath.Join(dir, "bad.yml")
	if err := os.WriteFile(path, []byte("colour: red\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := trainer.ReadConfig(path); err == nil {
		t.Error("expected error for an unknown field")
	}
}
