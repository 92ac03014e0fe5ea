package game

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const audioSampleRate = beep.SampleRate(44100)

// waveType selects the oscillator shape for a synthesized cue.
type waveType int

const (
	waveSine waveType = iota
	waveSquare
	waveSaw
)

// oscillator is a finite beep.Streamer generating one raw wave.
type oscillator struct {
	freq     float64
	endFreq  float64 // sweep target; equal to freq for a flat tone
	phase    float64
	total    int
	position int
	wave     waveType
}

func newOscillator(freq, endFreq float64, d time.Duration, wave waveType) *oscillator {
	return &oscillator{
		freq:    freq,
		endFreq: endFreq,
		total:   audioSampleRate.N(d),
		wave:    wave,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if o.position >= o.total {
			return i, false
		}
		var val float64
		switch o.wave {
		case waveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case waveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case waveSaw:
			val = 2.0 * (o.phase - 0.5)
		}
		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.position) / float64(o.total)
		f := lerp(o.freq, o.endFreq, t)
		o.phase += f / float64(audioSampleRate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack/release shaping so cues don't click.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
	gain     float64
}

func newEnvelope(s beep.Streamer, d, attack, release time.Duration, gain float64) *envelope {
	return &envelope{
		streamer: s,
		attack:   audioSampleRate.N(attack),
		release:  audioSampleRate.N(release),
		total:    audioSampleRate.N(d),
		gain:     gain,
	}
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		amp := e.gain
		pos := e.position + i
		if pos < e.attack && e.attack > 0 {
			amp *= float64(pos) / float64(e.attack)
		}
		if rem := e.total - pos; rem < e.release && e.release > 0 {
			amp *= float64(rem) / float64(e.release)
		}
		samples[i][0] *= amp
		samples[i][1] *= amp
	}
	e.position += n
	return n, ok
}

func (e *envelope) Err() error { return nil }

// SoundManager synthesizes short cues for simulation events. All state
// behind a mutex because the speaker pulls from another goroutine.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates an inert manager; call Init before use.
func NewSoundManager() *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}}
}

// Init opens the speaker. Failure (no audio device, CI) leaves the
// manager inert: every later call is a silent no-op.
func (sm *SoundManager) Init() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sm.initialized {
		return nil
	}
	if err := speaker.Init(audioSampleRate, audioSampleRate.N(time.Millisecond*50)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

func (sm *SoundManager) play(freq, endFreq float64, d time.Duration, wave waveType, gain float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return
	}
	osc := newOscillator(freq, endFreq, d, wave)
	env := newEnvelope(osc, d, time.Millisecond*4, time.Millisecond*30, gain)
	speaker.Lock()
	sm.mixer.Add(env)
	speaker.Unlock()
}

// AttachTo subscribes the manager's cues to a session's event bus.
func (sm *SoundManager) AttachTo(bus *EventBus) {
	bus.Subscribe(EventGateCrossed, func(e Event) {
		if e.Amount > 0 {
			sm.play(660, 990, time.Millisecond*120, waveSine, 0.35) // rising chime
		} else {
			sm.play(440, 300, time.Millisecond*140, waveSine, 0.35) // falling
		}
	})
	bus.Subscribe(EventObstacleDestroyed, func(Event) {
		sm.play(180, 90, time.Millisecond*90, waveSaw, 0.30)
	})
	bus.Subscribe(EventWeaponPickup, func(Event) {
		sm.play(880, 1320, time.Millisecond*160, waveSquare, 0.25)
	})
	bus.Subscribe(EventDefeat, func(Event) {
		sm.play(220, 55, time.Millisecond*600, waveSquare, 0.40)
	})
}
