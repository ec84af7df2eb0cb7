package trainer

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/vsariola/scopetrainer"
	"gopkg.in/yaml.v2"
)

type (
	Config struct {
		Signal        scopetrainer.Signal `yaml:"signal"`
		Defaults      DefaultIndices      `yaml:"defaults"`
		Screen        scopetrainer.Screen `yaml:"screen"`
		SnapRadius    float32             `yaml:"snapRadius"`
		AlertDuration time.Duration       `yaml:"alertDuration"`
		// RequirePower disables every control except POWER and the probe
		// while the instrument is off. When false, the knobs, waveform
		// buttons, RUN/STOP and AUTO change the settings even when off.
		RequirePower bool    `yaml:"requirePower"`
		MIDI         MIDIMap `yaml:"midi"`
		YmlError     error   `yaml:"-"`
	}

	// DefaultIndices are the table indices set at startup and by AUTO.
	DefaultIndices struct {
		Timebase    int `yaml:"timebase"`
		VoltsPerDiv int `yaml:"voltsPerDiv"`
		Trigger     int `yaml:"trigger"`
	}
)

//go:embed config.yml
var defaultConfigYaml []byte

func loadDefaultConfig() Config {
	var config Config
	err := yaml.UnmarshalStrict(defaultConfigYaml, &config)
	if err != nil {
		panic(fmt.Errorf("failed to unmarshal config: %w", err))
	}
	return config
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config { return loadDefaultConfig() }

// ReadCustomConfigYml modifies the target argument, i.e. needs a pointer
func ReadCustomConfigYml(filename string, target interface{}) (exists bool, err error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return false, err
	}
	path := filepath.Join(configDir, "scopetrainer", filename)
	bytes, err2 := os.ReadFile(path)
	if err2 != nil {
		return false, err2
	}
	err = yaml.UnmarshalStrict(bytes, target)
	return true, err
}

// MakeConfig returns the built-in configuration overridden by the user's
// config.yml, if there is one. A broken user file is reported in YmlError and
// the fields that could be decoded are kept.
func MakeConfig() Config {
	config := loadDefaultConfig()
	exists, err := ReadCustomConfigYml("config.yml", &config)
	if exists {
		config.YmlError = err
	}
	return config.sanitize()
}

// ReadConfig decodes a configuration file on top of the built-in defaults.
func ReadConfig(path string) (Config, error) {
	config := loadDefaultConfig()
	bytes, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.UnmarshalStrict(bytes, &config); err != nil {
		return config.sanitize(), fmt.Errorf("decode config %s: %w", path, err)
	}
	return config.sanitize(), nil
}

// sanitize replaces values that would break the instrument invariants.
func (c Config) sanitize() Config {
	def := loadDefaultConfig()
	if c.Signal.FrequencyHz <= 0 {
		c.Signal.FrequencyHz = def.Signal.FrequencyHz
	}
	if c.Signal.AmplitudeVolts <= 0 {
		c.Signal.AmplitudeVolts = def.Signal.AmplitudeVolts
	}
	if c.Signal.Waveform < 0 || c.Signal.Waveform >= scopetrainer.NumWaveforms {
		c.Signal.Waveform = def.Signal.Waveform
	}
	c.Defaults.Timebase = scopetrainer.Wrap(c.Defaults.Timebase, len(scopetrainer.TimebaseValues))
	c.Defaults.VoltsPerDiv = scopetrainer.Wrap(c.Defaults.VoltsPerDiv, len(scopetrainer.VoltsPerDivValues))
	c.Defaults.Trigger = scopetrainer.Wrap(c.Defaults.Trigger, len(scopetrainer.TriggerValues))
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		c.Screen = def.Screen
	}
	if c.SnapRadius <= 0 {
		c.SnapRadius = def.SnapRadius
	}
	if c.AlertDuration <= 0 {
		c.AlertDuration = def.AlertDuration
	}
	return c
}
