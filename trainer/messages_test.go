package trainer_test

import (
	"strings"
	"testing"

	"github.com/vsariola/scopetrainer"
	"github.com/vsariola/scopetrainer/trainer"
)

func TestDefaultMessages(t *testing.T) {
	m := trainer.DefaultMessages()
	tests := []struct {
		name string
		data any
		want string
	}{
		{"waveform", map[string]any{"Name": trainer.WaveformName(scopetrainer.Triangle)}, "Waveform: Triangle"},
		{"step", map[string]any{"Index": 1, "Count": 8, "Title": "Connect the probe"}, "Step 2/8: Connect the probe"},
		{"complete", map[string]any{"Title": "Tutorial complete"}, "TUTORIAL COMPLETE!"},
		{"powerOn", nil, "Power ON"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := m.Format(tt.name, tt.data)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMessagesErrors(t *testing.T) {
	m := trainer.DefaultMessages()
	if _, err := m.Format("nonexistent", nil); err == nil {
		t.Error("expected error for unknown message")
	}
	if _, err := m.Format("waveform", map[string]any{}); err == nil {
		t.Error("expected error for missing key")
	}
	if _, err := trainer.NewMessages([]byte("x: \"{{ .Broken\"\n")); err == nil {
		t.Error("expected template parse error")
	}
}

func TestConfigErrorTruncated(t *testing.T) {
	got, err := trainer.DefaultMessages().Format("configError", map[string]any{"Error": strings.Repeat("e", 200)})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len("Config: ")+80 {
		t.Errorf("expected the error to be truncated, got %d bytes", len(got))
	}
}
