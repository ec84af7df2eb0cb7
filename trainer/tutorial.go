package trainer

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

type (
	// TutorialStep is one ordered unit of guided instruction. The step is
	// completed by operating a control of the Expected kind; the last step
	// expects nothing and is terminal.
	TutorialStep struct {
		ID          string      `yaml:"id"`
		Title       string      `yaml:"title"`
		Description string      `yaml:"description"`
		Expected    ControlKind `yaml:"expected"`
	}

	// Tutorial is the strictly ordered sequence of steps and the index of the
	// current one. The index never decreases and never skips a step.
	Tutorial struct {
		steps []TutorialStep
		index int
	}
)

//go:embed tutorial.yml
var defaultTutorialYaml []byte

var defaultTutorialSteps = func() []TutorialStep {
	steps, err := DecodeTutorialSteps(defaultTutorialYaml)
	if err != nil {
		panic(fmt.Errorf("failed to unmarshal default tutorial: %w", err))
	}
	return steps
}()

// DecodeTutorialSteps reads and validates a tutorial table: it needs at least
// one step, every step except the last needs an expected control and the
// last one must not have one.
func DecodeTutorialSteps(data []byte) ([]TutorialStep, error) {
	var steps []TutorialStep
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&steps); err != nil {
		return nil, fmt.Errorf("decode tutorial: %w", err)
	}
	if len(steps) == 0 {
		return nil, errors.New("tutorial has no steps")
	}
	for i, s := range steps[:len(steps)-1] {
		if s.Expected == NoControl {
			return nil, fmt.Errorf("tutorial step %d (%s) has no expected control", i, s.ID)
		}
	}
	if last := steps[len(steps)-1]; last.Expected != NoControl {
		return nil, fmt.Errorf("last tutorial step (%s) must not expect a control", last.ID)
	}
	return steps, nil
}

func NewTutorial(steps []TutorialStep) Tutorial {
	return Tutorial{steps: steps}
}

// DefaultTutorial returns the built-in eight step tutorial, at its first step.
func DefaultTutorial() Tutorial {
	return NewTutorial(defaultTutorialSteps)
}

// Advance moves to the next step iff the operated control is the one the
// current step expects. Returns true if the step changed.
func (t *Tutorial) Advance(kind ControlKind) bool {
	if t.Done() || kind == NoControl || t.steps[t.index].Expected != kind {
		return false
	}
	t.index++
	return true
}

func (t Tutorial) Index() int { return t.index }
func (t Tutorial) Count() int { return len(t.steps) }

// Done reports if the tutorial is at its terminal step.
func (t Tutorial) Done() bool { return t.index >= len(t.steps)-1 }

func (t Tutorial) Step() TutorialStep {
	if len(t.steps) == 0 {
		return TutorialStep{}
	}
	return t.steps[t.index]
}

// Steps iterates all steps of the tutorial.
func (t Tutorial) Steps(yield func(int, TutorialStep) bool) {
	for i, s := range t.steps {
		if !yield(i, s) {
			return
		}
	}
}
