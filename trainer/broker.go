package trainer

import (
	"time"
)

type (
	// Broker is the centralized message broker of the trainer. The model is
	// the only mutator of the instrument state and it runs on the frame
	// driver's goroutine; everything else (MIDI input, the audio player) talks
	// to it through the channels of the broker. ToModel is drained by the
	// model once per frame, so input events are always serialized with frame
	// advances. ToAudio carries cue requests out of the model; the model
	// never waits for them to be played.
	//
	// For closing the audio goroutine, the broker has two channels:
	// CloseAudio and FinishedAudio. CloseAudio has a capacity of 1, so you can
	// always send a empty message (struct{}{}) to it without blocking. If the
	// channel is already full, that means someone else has already requested
	// its closure, so dropping the message is fine. FinishedAudio is closed by
	// the audio goroutine once it has cleaned up. You can wait until it's done
	// with a timeout:
	//    select {
	//      case <-FinishedAudio:
	//      case <-time.After(3 * time.Second):
	//    }
	Broker struct {
		ToModel chan MsgToModel
		ToAudio chan Cue

		CloseAudio    chan struct{}
		FinishedAudio chan struct{}
	}

	// MsgToModel asks the model to operate a control, as if it had been
	// activated by the pointer.
	MsgToModel struct {
		Kind   ControlKind
		Params Params
	}

	// Cue is a short sound effect requested from the audio collaborator.
	Cue int
)

const (
	CueClick Cue = iota
	CueConnect
	NumCues
)

func (c Cue) String() string {
	switch c {
	case CueClick:
		return "click"
	case CueConnect:
		return "connect"
	}
	return "unknown"
}

func NewBroker() *Broker {
	return &Broker{
		ToModel:       make(chan MsgToModel, 1024),
		ToAudio:       make(chan Cue, 64),
		CloseAudio:    make(chan struct{}, 1),
		FinishedAudio: make(chan struct{}),
	}
}

// TrySend is a helper function to send a value to a channel if it is not full.
// It is guaranteed to be non-blocking. Return true if the value was sent, false
// otherwise.
func TrySend[T any](c chan<- T, v T) bool {
	select {
	case c <- v:
	default:
		return false
	}
	return true
}

// TimeoutReceive is a helper function to block until a value is received from a
// channel, or timing out after t. ok will be false if the timeout occurred or
// if the channel is closed.
func TimeoutReceive[T any](c <-chan T, t time.Duration) (v T, ok bool) {
	select {
	case v, ok = <-c:
		return v, ok
	case <-time.After(t):
		return v, false
	}
}
