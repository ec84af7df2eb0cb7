package main

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/vsariola/scopetrainer"
	"github.com/vsariola/scopetrainer/trainer"
	"gopkg.in/yaml.v3"
)

type (
	// Session is a scripted run of the trainer. Coordinates of clicks and
	// drags are window pixels of a Width x Height viewport seen through the
	// default camera.
	Session struct {
		Width  int           `yaml:"width"`
		Height int           `yaml:"height"`
		Steps  []SessionStep `yaml:"steps"`
	}

	// SessionStep does exactly one thing: operate a control, advance time,
	// click, drag or save the screen.
	SessionStep struct {
		Control   trainer.ControlKind   `yaml:"control,omitempty"`
		Direction int                   `yaml:"direction,omitempty"`
		Waveform  scopetrainer.Waveform `yaml:"waveform,omitempty"`
		Tick      time.Duration         `yaml:"tick,omitempty"`
		Click     []float32             `yaml:"click,omitempty"`
		Drag      []float32             `yaml:"drag,omitempty"`
		PNG       string                `yaml:"png,omitempty"`
	}
)

const (
	defaultWidth  = 1024
	defaultHeight = 680
)

var errEmptyStep = errors.New("step does nothing")

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run session.yml",
		Short: "Replay a scripted session",
		Long: `Replays the steps of a session file in order and prints what the trainer
reports after each of them. Screens requested with "png" are written to the
output directory.

Example session:

  steps:
    - control: power
    - click: [880, 520]
    - drag: [770, 500]
    - control: timebase
      direction: -1
    - tick: 500ms
    - png: sine.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outDir, _ := cmd.Flags().GetString("out")
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			session, err := DecodeSession(data)
			if err != nil {
				return err
			}
			log := newLogger(cmd)
			defer log.Sync()
			model := trainer.NewModel(trainer.NewBroker(), loadConfig(cmd), log)
			return session.Run(model, outDir, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringP("out", "o", ".", "Directory for the PNG files")
	return cmd
}

// DecodeSession parses a session file. Unknown fields are errors.
func DecodeSession(data []byte) (*Session, error) {
	s := &Session{Width: defaultWidth, Height: defaultHeight}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	if s.Width <= 0 || s.Height <= 0 {
		return nil, fmt.Errorf("invalid viewport %dx%d", s.Width, s.Height)
	}
	for i, step := range s.Steps {
		if err := step.validate(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return s, nil
}

func (s SessionStep) validate() error {
	n := 0
	if s.Control != trainer.NoControl {
		n++
	}
	if s.Tick != 0 {
		n++
		if s.Tick < 0 {
			return fmt.Errorf("negative tick %v", s.Tick)
		}
	}
	for _, p := range [][]float32{s.Click, s.Drag} {
		if p != nil {
			n++
			if len(p) != 2 {
				return fmt.Errorf("expected [x, y], got %v", p)
			}
		}
	}
	if s.PNG != "" {
		n++
	}
	switch {
	case n == 0:
		return errEmptyStep
	case n > 1:
		return errors.New("step does more than one thing")
	}
	return nil
}

// Run replays the session on the model. Every step is followed by a zero
// length tick so that queued input is applied and feedback is reported.
func (s *Session) Run(model *trainer.Model, outDir string, out io.Writer) error {
	cam := trainer.DefaultCamera
	for i, step := range s.Steps {
		switch {
		case step.Control != trainer.NoControl:
			model.Apply(step.Control, trainer.Params{Waveform: step.Waveform, Direction: step.Direction})
		case step.Tick != 0:
			model.Tick(step.Tick)
		case step.Click != nil, step.Drag != nil:
			p, click := step.Drag, false
			if step.Click != nil {
				p, click = step.Click, true
			}
			ray, err := cam.Ray(p[0], p[1], s.Width, s.Height)
			if err != nil {
				return fmt.Errorf("step %d: %w", i+1, err)
			}
			if click {
				model.Activate(ray, 1)
			} else {
				model.Drag(ray)
			}
		case step.PNG != "":
			if err := savePNG(model, filepath.Join(outDir, step.PNG)); err != nil {
				return fmt.Errorf("step %d: %w", i+1, err)
			}
		}
		report(out, i+1, model, model.Tick(0))
	}
	return nil
}

func report(out io.Writer, n int, model *trainer.Model, status trainer.Status) {
	tut := model.Tutorial()
	fmt.Fprintf(out, "%3d  %-8s step %d/%d %-12s", n, status.Mode, tut.Index()+1, tut.Count(), tut.Step().ID)
	if status.HasFeedback {
		fmt.Fprintf(out, "  %s", status.Feedback)
	}
	fmt.Fprintln(out)
}

func savePNG(model *trainer.Model, path string) error {
	img := trainer.DrawScreen(model.Frame(), model.DisplayMode(), model.Screen(), trainer.DefaultScreenStyle)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
