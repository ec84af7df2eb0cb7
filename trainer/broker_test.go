package trainer_test

import (
	"testing"
	"time"

	"github.com/vsariola/scopetrainer/trainer"
)

func TestTrySendNeverBlocks(t *testing.T) {
	b := trainer.NewBroker()
	sent := 0
	for i := 0; i < 100; i++ {
		if trainer.TrySend(b.ToAudio, trainer.CueClick) {
			sent++
		}
	}
	if sent != cap(b.ToAudio) {
		t.Errorf("expected %d sends to succeed, got %d", cap(b.ToAudio), sent)
	}
	if !trainer.TrySend(b.CloseAudio, struct{}{}) || trainer.TrySend(b.CloseAudio, struct{}{}) {
		t.Error("CloseAudio should accept exactly one pending request")
	}
}

func TestTimeoutReceive(t *testing.T) {
	c := make(chan int, 1)
	if _, ok := trainer.TimeoutReceive(c, time.Millisecond); ok {
		t.Error("expected timeout")
	}
	c <- 5
	if v, ok := trainer.TimeoutReceive(c, time.Second); !ok || v != 5 {
		t.Errorf("expected 5, got %v %v", v, ok)
	}
	close(c)
	if _, ok := trainer.TimeoutReceive(c, time.Second); ok {
		t.Error("closed channel should not report ok")
	}
}

func TestModelCuesNeverBlock(t *testing.T) {
	b := trainer.NewBroker()
	m := trainer.NewModel(b, trainer.DefaultConfig(), nil)
	for i := 0; i < 3*cap(b.ToAudio); i++ {
		m.Apply(trainer.Vdiv, trainer.Params{})
	}
	if len(b.ToAudio) != cap(b.ToAudio) {
		t.Errorf("expected a full audio queue, got %d", len(b.ToAudio))
	}
}
