// Package audio plays short synthesized cues for fuel cell events.
package audio

import (
	"math"
	"sync"
	"time"

	"fuelcell/internal/sims/fuelcell"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	chimeDuration = 220 * time.Millisecond
	chimeAttack   = 8 * time.Millisecond
	chimeDecay    = 14.0

	blipDuration = 40 * time.Millisecond
)

// Player mixes event cues into a single speaker stream. A Player that failed
// to initialize ignores every cue.
type Player struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	volume float64
	ready  bool
}

// NewPlayer returns an uninitialized player with the given master volume in
// [0,1].
func NewPlayer(volume float64) *Player {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	return &Player{mixer: &beep.Mixer{}, volume: volume}
}

// Init opens the default audio device.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ready {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.ready = true
	return nil
}

// Close releases the audio device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.ready = false
}

// Ready reports whether the device is open.
func (p *Player) Ready() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ready
}

// Handle queues the cues for one tick's events: a chime per reaction and a
// faint blip per admitted pair.
func (p *Player) Handle(events []fuelcell.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready {
		return
	}
	for _, ev := range events {
		var s beep.Streamer
		switch ev.Kind {
		case fuelcell.EventReaction:
			s = Chime(sampleRate, p.volume)
		case fuelcell.EventPairAdmitted:
			s = Blip(sampleRate, p.volume*0.3)
		}
		if s == nil {
			continue
		}
		speaker.Lock()
		p.mixer.Add(s)
		speaker.Unlock()
	}
}

// Chime builds a bell-like two-partial tone.
func Chime(sr beep.SampleRate, volume float64) beep.Streamer {
	n := sr.N(chimeDuration)
	fund, err := generators.SineTone(sr, 660)
	if err != nil {
		return nil
	}
	over, err := generators.SineTone(sr, 990)
	if err != nil {
		return nil
	}
	mixed := beep.Mix(
		withVolume(beep.Take(n, fund), 0.6),
		withVolume(beep.Take(n, over), 0.4),
	)
	return withVolume(newDecayEnvelope(mixed, sr.N(chimeAttack), chimeDecay, sr), volume)
}

// Blip builds a very short tick.
func Blip(sr beep.SampleRate, volume float64) beep.Streamer {
	tone, err := generators.SineTone(sr, 1320)
	if err != nil {
		return nil
	}
	shaped := newDecayEnvelope(beep.Take(sr.N(blipDuration), tone), sr.N(2*time.Millisecond), 60, sr)
	return withVolume(shaped, volume)
}

// decayEnvelope ramps in linearly then decays exponentially.
type decayEnvelope struct {
	streamer beep.Streamer
	sr       beep.SampleRate
	attack   int
	rate     float64
	pos      int
}

func newDecayEnvelope(s beep.Streamer, attack int, rate float64, sr beep.SampleRate) beep.Streamer {
	return &decayEnvelope{streamer: s, sr: sr, attack: attack, rate: rate}
}

func (e *decayEnvelope) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 1.0
		if e.pos < e.attack {
			gain = float64(e.pos) / float64(e.attack)
		} else {
			t := float64(e.pos-e.attack) / float64(e.sr)
			gain = math.Exp(-t * e.rate)
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.pos++
	}
	return n, ok
}

func (e *decayEnvelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, so zero volume maps to a silent effect.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
