package oto

import (
	"encoding/binary"
	"math"

	"github.com/vsariola/scopetrainer/trainer"
)

// FloatBufferToFloat32LE appends the samples to out as little-endian float32,
// the sample format the audio context is opened with.
func FloatBufferToFloat32LE(buff []float32, out []byte) []byte {
	for _, v := range buff {
		out = binary.LittleEndian.AppendUint32(out, math.Float32bits(v))
	}
	return out
}

// Cue synthesis. The cues are short decaying tones, generated on demand.

const (
	clickFrequency  = 2000
	clickLength     = 0.03
	chimeLow        = 880
	chimeHigh       = 1320
	chimeLength     = 0.08
	cueAmplitude    = 0.5
	decayTimeConst  = 0.012
	chimeTimeConst  = 0.03
	fadeOutDuration = 0.002
)

// Synth renders a cue as mono samples at the given sample rate. Unknown cues
// render as silence of zero length.
func Synth(cue trainer.Cue, sampleRate int) []float32 {
	switch cue {
	case trainer.CueClick:
		return tone(sampleRate, clickLength, clickLength, func(float64) float64 { return clickFrequency }, decayTimeConst)
	case trainer.CueConnect:
		return tone(sampleRate, chimeLength, chimeLength/2, func(t float64) float64 {
			if t < chimeLength/2 {
				return chimeLow
			}
			return chimeHigh
		}, chimeTimeConst)
	}
	return nil
}

// tone renders a sine with an exponential decay that restarts every segment
// seconds, and a short linear fade at the end so the cue never clicks off.
func tone(sampleRate int, length, segment float64, freq func(t float64) float64, tau float64) []float32 {
	n := int(math.Round(float64(sampleRate) * length))
	ret := make([]float32, n)
	phase := 0.0
	fade := fadeOutDuration * float64(sampleRate)
	for i := range ret {
		t := float64(i) / float64(sampleRate)
		env := math.Exp(-math.Mod(t, segment) / tau)
		if rem := float64(n - i); rem < fade {
			env *= rem / fade
		}
		ret[i] = float32(cueAmplitude * env * math.Sin(phase))
		phase += 2 * math.Pi * freq(t) / float64(sampleRate)
	}
	return ret
}
