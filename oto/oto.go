package oto

import (
	"bytes"
	"context"
	"fmt"

	"github.com/ebitengine/oto/v3"
	"github.com/vsariola/scopetrainer/trainer"
	"go.uber.org/zap"
)

const sampleRate = 44100

// CuePlayer plays the sound cues requested by the model.
type CuePlayer struct {
	ctx     *oto.Context
	cues    [trainer.NumCues][]byte
	playing []*oto.Player
	log     *zap.Logger
}

// NewCuePlayer opens the audio device and renders the cues.
func NewCuePlayer(log *zap.Logger) (*CuePlayer, error) {
	if log == nil {
		log = zap.NewNop()
	}
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	}
	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("cannot create oto context: %w", err)
	}
	<-ready
	p := &CuePlayer{ctx: ctx, log: log}
	for c := range p.cues {
		p.cues[c] = FloatBufferToFloat32LE(Synth(trainer.Cue(c), sampleRate), nil)
	}
	return p, nil
}

// Play starts playing a cue and returns immediately. Cues may overlap.
func (p *CuePlayer) Play(cue trainer.Cue) {
	if cue < 0 || cue >= trainer.NumCues {
		return
	}
	p.reap()
	player := p.ctx.NewPlayer(bytes.NewReader(p.cues[cue]))
	player.Play()
	p.playing = append(p.playing, player)
	p.log.Debug("cue", zap.Stringer("cue", cue))
}

// reap closes the players that have finished.
func (p *CuePlayer) reap() {
	j := 0
	for _, pl := range p.playing {
		if pl.IsPlaying() {
			p.playing[j] = pl
			j++
			continue
		}
		if err := pl.Close(); err != nil {
			p.log.Warn("cannot close oto player", zap.Error(err))
		}
	}
	clear(p.playing[j:])
	p.playing = p.playing[:j]
}

// Run plays the cues sent to the broker until the context is done or someone
// requests closing the audio through the broker. FinishedAudio is closed on
// return.
func (p *CuePlayer) Run(ctx context.Context, b *trainer.Broker) {
	defer close(b.FinishedAudio)
	defer p.closePlayers()
	for {
		select {
		case <-ctx.Done():
			return
		case <-b.CloseAudio:
			return
		case cue := <-b.ToAudio:
			p.Play(cue)
		}
	}
}

func (p *CuePlayer) closePlayers() {
	for _, pl := range p.playing {
		pl.Close()
	}
	p.playing = nil
}
