package oto_test

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/vsariola/scopetrainer/oto"
	"github.com/vsariola/scopetrainer/trainer"
)

func TestFloatBufferToFloat32LE(t *testing.T) {
	in := []float32{0, 1, -0.5}
	out := oto.FloatBufferToFloat32LE(in, []byte{0xff})
	if len(out) != 1+4*len(in) {
		t.Fatalf("unexpected length %d", len(out))
	}
	for i, v := range in {
		got := math.Float32frombits(binary.LittleEndian.Uint32(out[1+4*i:]))
		if got != v {
			t.Errorf("sample %d: got %v, want %v", i, got, v)
		}
	}
}

func TestSynthCues(t *testing.T) {
	const rate = 44100
	tests := []struct {
		cue    trainer.Cue
		length int
	}{
		{trainer.CueClick, rate * 30 / 1000},
		{trainer.CueConnect, rate * 80 / 1000},
	}
	for _, tt := range tests {
		t.Run(tt.cue.String(), func(t *testing.T) {
			s := oto.Synth(tt.cue, rate)
			if len(s) != tt.length {
				t.Fatalf("expected %d samples, got %d", tt.length, len(s))
			}
			peak := float32(0)
			for _, v := range s {
				peak = max(peak, v, -v)
			}
			if peak == 0 || peak > 1 {
				t.Errorf("peak %v out of range", peak)
			}
			if last := s[len(s)-1]; last > 0.01 || last < -0.01 {
				t.Errorf("cue should fade out, last sample %v", last)
			}
		})
	}
	if s := oto.Synth(trainer.NumCues, rate); len(s) != 0 {
		t.Error("unknown cue should be silent")
	}
}

func TestSynthDeterministic(t *testing.T) {
	a := oto.Synth(trainer.CueConnect, 48000)
	b := oto.Synth(trainer.CueConnect, 48000)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d differs", i)
		}
	}
}
