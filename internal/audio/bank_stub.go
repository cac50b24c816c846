//go:build !ebiten

package audio

// Bank holds the preloaded effects but never plays them in headless builds.
type Bank struct {
	clips map[SoundID][]byte
}

// NewBank loads every effect without opening an audio device.
func NewBank(float64) (*Bank, error) {
	return &Bank{clips: Load()}, nil
}

// Play is a no-op in headless builds.
func (b *Bank) Play(SoundID) {}

// Close is a no-op in headless builds.
func (b *Bank) Close() error { return nil }
