// Package audio provides the game's three sound effects.
package audio

// SampleRate is the playback rate of every generated clip.
const SampleRate = 44100

// SoundID identifies a sound effect.
type SoundID int

const (
	TargetHit SoundID = iota
	CannonFire
	BlockerHit
)

// IDs lists every effect in load order.
var IDs = []SoundID{TargetHit, CannonFire, BlockerHit}

func (id SoundID) String() string {
	switch id {
	case TargetHit:
		return "target_hit"
	case CannonFire:
		return "cannon_fire"
	case BlockerHit:
		return "blocker_hit"
	default:
		return "unknown"
	}
}

// Player plays effects by logical id.
type Player interface {
	Play(id SoundID)
	Close() error
}

// Silent is a Player that discards every request.
type Silent struct{}

func (Silent) Play(SoundID) {}
func (Silent) Close() error { return nil }
