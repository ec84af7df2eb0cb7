package main

import (
	"context"
	"flag"
	"os"
	"time"

	"gioui.org/app"
	"github.com/vsariola/scopetrainer/cmd"
	"github.com/vsariola/scopetrainer/oto"
	"github.com/vsariola/scopetrainer/trainer"
	"github.com/vsariola/scopetrainer/trainer/gioui"
	"go.uber.org/zap"
)

var logFile = flag.String("log-file", "", "write JSON logs to a rotating `file` instead of stderr")
var debug = flag.Bool("debug", false, "enable debug logging")
var configFile = flag.String("config", "", "read configuration from `file` instead of the user config directory")
var tutorialFile = flag.String("tutorial", "", "read tutorial steps from `file`")
var messagesFile = flag.String("messages", "", "read feedback message templates from `file`")
var defaultMidiInput = flag.String("midi-input", "", "connect MIDI input to matching device name prefix")
var mute = flag.Bool("mute", false, "do not open an audio device")

func main() {
	flag.Parse()
	log := cmd.NewLogger(*logFile, *debug)
	defer log.Sync()

	config := trainer.MakeConfig()
	if *configFile != "" {
		var err error
		config, err = trainer.ReadConfig(*configFile)
		if err != nil {
			config.YmlError = err
		}
	}
	broker := trainer.NewBroker()
	model := trainer.NewModel(broker, config, log)
	if *tutorialFile != "" {
		steps, err := readFile(*tutorialFile, trainer.DecodeTutorialSteps)
		if err != nil {
			log.Fatal("cannot load tutorial", zap.Error(err))
		}
		model.SetTutorial(steps)
	}
	if *messagesFile != "" {
		messages, err := readFile(*messagesFile, trainer.NewMessages)
		if err != nil {
			log.Fatal("cannot load messages", zap.Error(err))
		}
		model.SetMessages(messages)
	}

	midiContext := cmd.NewMidiContext(broker, config.MIDI, log)
	defer midiContext.Close()
	if isFlagPassed("midi-input") {
		input, ok := trainer.FindMIDIDeviceByPrefix(midiContext, *defaultMidiInput)
		if ok {
			if err := input.Open(); err != nil {
				log.Warn("failed to open MIDI input", zap.Stringer("device", input), zap.Error(err))
			}
		} else {
			log.Warn("no MIDI input device found", zap.String("prefix", *defaultMidiInput))
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if *mute {
		go drainCues(ctx, broker)
	} else {
		player, err := oto.NewCuePlayer(log)
		if err != nil {
			log.Error("audio disabled", zap.Error(err))
			go drainCues(ctx, broker)
		} else {
			go player.Run(ctx, broker)
		}
	}

	trainerUi := gioui.NewTrainer(model, log)
	go func() {
		trainerUi.Main()
		trainer.TrySend(broker.CloseAudio, struct{}{})
		if _, ok := trainer.TimeoutReceive(broker.FinishedAudio, 3*time.Second); !ok {
			log.Warn("audio did not close in time")
		}
		log.Sync()
		os.Exit(0)
	}()
	app.Main()
}

// drainCues stands in for the audio player when there is none, so that the
// shutdown handshake still completes.
func drainCues(ctx context.Context, b *trainer.Broker) {
	defer close(b.FinishedAudio)
	for {
		select {
		case <-ctx.Done():
			return
		case <-b.CloseAudio:
			return
		case <-b.ToAudio:
		}
	}
}

func readFile[T any](name string, decode func([]byte) (T, error)) (T, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		var zero T
		return zero, err
	}
	return decode(data)
}

func isFlagPassed(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}
