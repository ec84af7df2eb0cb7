package trainer_test

import (
	"testing"

	"github.com/vsariola/scopetrainer/trainer"
)

func TestDefaultTutorialOrder(t *testing.T) {
	want := []trainer.ControlKind{
		trainer.Power, trainer.Ch1Port, trainer.Wave, trainer.Timebase,
		trainer.Vdiv, trainer.Trigger, trainer.RunStop, trainer.NoControl,
	}
	tut := trainer.DefaultTutorial()
	if tut.Count() != len(want) {
		t.Fatalf("expected %d steps, got %d", len(want), tut.Count())
	}
	for i, s := range tut.Steps {
		if s.Expected != want[i] {
			t.Errorf("step %d expects %v, want %v", i, s.Expected, want[i])
		}
		if s.Title == "" || s.Description == "" {
			t.Errorf("step %d (%s) has no text", i, s.ID)
		}
	}
}

func TestTutorialAdvance(t *testing.T) {
	tut := trainer.DefaultTutorial()
	if tut.Advance(trainer.Wave) || tut.Index() != 0 {
		t.Error("wrong control should not advance")
	}
	if !tut.Advance(trainer.Power) || tut.Index() != 1 {
		t.Error("expected control should advance")
	}
	if tut.Advance(trainer.Power) {
		t.Error("the same control should not advance twice")
	}
	for _, k := range []trainer.ControlKind{trainer.Ch1Port, trainer.Wave, trainer.Timebase, trainer.Vdiv, trainer.Trigger, trainer.RunStop} {
		tut.Advance(k)
	}
	if !tut.Done() || tut.Index() != 7 {
		t.Fatalf("expected terminal step, got %d", tut.Index())
	}
	for k := trainer.NoControl; k < trainer.NumControlKinds; k++ {
		if tut.Advance(k) {
			t.Errorf("terminal step advanced with %v", k)
		}
	}
}

func TestDecodeTutorialSteps(t *testing.T) {
	tests := []struct {
		name string
		yml  string
		ok   bool
	}{
		{"valid", "- {id: a, title: A, expected: power}\n- {id: b, title: B}\n", true},
		{"empty", "[]\n", false},
		{"unknown field", "- {id: a, colour: red}\n", false},
		{"unknown control", "- {id: a, expected: volume}\n- {id: b}\n", false},
		{"missing expected", "- {id: a}\n- {id: b}\n", false},
		{"terminal expects", "- {id: a, expected: power}\n", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			steps, err := trainer.DecodeTutorialSteps([]byte(tt.yml))
			if (err == nil) != tt.ok {
				t.Errorf("got %v steps, err %v", len(steps), err)
			}
		})
	}
}
