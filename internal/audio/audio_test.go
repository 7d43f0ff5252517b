package audio

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestPlayNeverBlocks(t *testing.T) {
	s := newSpeaker(log.New(io.Discard), 2)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			s.Play(CueCapture)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Play blocked with no consumer")
	}
	if len(s.queue) != 2 {
		t.Errorf("queue holds %d cues, want 2", len(s.queue))
	}
}

func TestBuildCueLength(t *testing.T) {
	for _, c := range []Cue{CueCapture, CueWon, CueLost} {
		t.Run(c.String(), func(t *testing.T) {
			st, err := build(c)
			if err != nil {
				t.Fatal(err)
			}
			buf := make([][2]float64, 512)
			total := 0
			for {
				n, ok := st.Stream(buf)
				total += n
				if !ok {
					break
				}
			}
			want := 0
			for _, n := range cues[c] {
				want += sampleRate.N(n.dur)
			}
			if total != want {
				t.Errorf("streamed %d samples, want %d", total, want)
			}
		})
	}
}

func TestBuildUnknownCue(t *testing.T) {
	if _, err := build(Cue(99)); err == nil {
		t.Error("unknown cue built")
	}
}

func TestMutedIsNop(t *testing.T) {
	p := New(log.New(io.Discard), true)
	if _, ok := p.(Nop); !ok {
		t.Fatalf("New(muted) = %T, want Nop", p)
	}
	p.Play(CueWon)
	p.Close()
}
