package audio

import (
	"math"
	"math/rand/v2"
)

type voice struct {
	freq     float64 // start frequency in Hz
	sweep    float64 // frequency multiplier reached at the end
	duration float64 // seconds
	noise    float64 // 0..1 mix of white noise
	square   bool
	gain     float64
}

var voices = map[SoundID]voice{
	TargetHit:  {freq: 880, sweep: 1.5, duration: 0.15, gain: 0.4},
	CannonFire: {freq: 110, sweep: 0.5, duration: 0.30, noise: 0.6, gain: 0.5},
	BlockerHit: {freq: 330, sweep: 0.8, duration: 0.10, square: true, gain: 0.3},
}

// Synthesize renders the effect as 16-bit little-endian mono PCM.
func Synthesize(id SoundID) []byte {
	v, ok := voices[id]
	if !ok {
		return nil
	}
	n := int(float64(SampleRate) * v.duration)
	pcm := make([]byte, n*2)
	rng := rand.New(rand.NewPCG(uint64(id)+1, 0))
	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		freq := v.freq * math.Pow(v.sweep, t)
		phase += 2 * math.Pi * freq / SampleRate
		s := math.Sin(phase)
		if v.square {
			s = math.Copysign(1, s)
		}
		if v.noise > 0 {
			s = s*(1-v.noise) + (rng.Float64()*2-1)*v.noise
		}
		env := (1 - t) * (1 - t)
		sample := int16(clamp(s*env*v.gain, -1, 1) * math.MaxInt16)
		pcm[2*i] = byte(sample)
		pcm[2*i+1] = byte(sample >> 8)
	}
	return pcm
}

// Load synthesizes every effect once.
func Load() map[SoundID][]byte {
	clips := make(map[SoundID][]byte, len(IDs))
	for _, id := range IDs {
		clips[id] = Synthesize(id)
	}
	return clips
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
