package audio

import (
	"bytes"
	"testing"
)

func TestSynthesizeProducesAudibleClips(t *testing.T) {
	for _, id := range IDs {
		pcm := Synthesize(id)
		want := int(float64(SampleRate)*voices[id].duration) * 2
		if len(pcm) != want {
			t.Fatalf("%s: %d bytes, want %d", id, len(pcm), want)
		}
		silent := true
		for _, b := range pcm {
			if b != 0 {
				silent = false
				break
			}
		}
		if silent {
			t.Fatalf("%s is silent", id)
		}
		if !bytes.Equal(pcm, Synthesize(id)) {
			t.Fatalf("%s is not deterministic", id)
		}
	}
}

func TestLoadCoversEveryEffect(t *testing.T) {
	clips := Load()
	if len(clips) != 3 {
		t.Fatalf("loaded %d clips, want 3", len(clips))
	}
	if Synthesize(SoundID(99)) != nil {
		t.Fatal("unknown id should produce no clip")
	}
	names := map[string]bool{}
	for _, id := range IDs {
		names[id.String()] = true
	}
	for _, n := range []string{"target_hit", "cannon_fire", "blocker_hit"} {
		if !names[n] {
			t.Fatalf("missing effect %q", n)
		}
	}
}
