//go:build ebiten

package audio

import (
	"bytes"
	"fmt"
	"sync"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

// Bank plays the preloaded effects through oto.
type Bank struct {
	ctx    *oto.Context
	ready  chan struct{}
	clips  map[SoundID][]byte
	volume float64

	mu      sync.Mutex
	closed  bool
	playing map[oto.Player]struct{}
}

// NewBank opens the audio device and loads every effect.
func NewBank(volume float64) (*Bank, error) {
	ctx, ready, err := oto.NewContext(SampleRate, 1, oto.FormatSignedInt16LE)
	if err != nil {
		return nil, fmt.Errorf("audio: open device: %w", err)
	}
	return &Bank{
		ctx:     ctx,
		ready:   ready,
		clips:   Load(),
		volume:  clamp(volume, 0, 1),
		playing: make(map[oto.Player]struct{}),
	}, nil
}

// Play starts the effect and returns immediately. Requests made before the
// device is ready, or after Close, are dropped.
func (b *Bank) Play(id SoundID) {
	select {
	case <-b.ready:
	default:
		return
	}
	clip := b.clips[id]
	if len(clip) == 0 || b.volume <= 0 {
		return
	}
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	player := b.ctx.NewPlayer(bytes.NewReader(clip))
	b.playing[player] = struct{}{}
	b.mu.Unlock()

	player.SetVolume(b.volume)
	player.Play()
	go func() {
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		b.mu.Lock()
		delete(b.playing, player)
		b.mu.Unlock()
		player.Close()
	}()
}

// Close stops every active effect. Later Play calls are ignored.
func (b *Bank) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true
	for player := range b.playing {
		player.Pause()
	}
	return nil
}
