package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/dispenser/event"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// SoundManager plays the machine's cosmetic sounds
// Every method is a safe no-op until Initialize succeeds
type SoundManager struct {
	mu           sync.Mutex
	pourStreamer *beep.Ctrl
	mixer        *beep.Mixer
	initialized  bool
	muted        bool
	pouring      bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	sm := &SoundManager{
		mixer: &beep.Mixer{},
	}
	return sm
}

// Initialize sets up the audio device
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	if sm.pourStreamer != nil {
		speaker.Lock()
		sm.pourStreamer.Paused = true
		speaker.Unlock()
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.pourStreamer = nil

	// beep has no speaker Close; clearing the mixer silences it
	sm.initialized = false
}

// SetMuted silences or restores output
// A hum for a pour in progress follows the mute state
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
	sm.setHum(sm.pouring && !muted)
}

// Muted reports the mute state
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

func (sm *SoundManager) ready() bool {
	return sm.initialized && !sm.muted
}

// PlayStick plays the click of a flavor stick bending
func (sm *SoundManager) PlayStick(down bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.ready() {
		return
	}

	freq := 660.0
	if !down {
		freq = 440
	}
	streamer := beep.Take(sampleRate.N(time.Millisecond*60), NewClickGenerator(sampleRate, freq))
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// StartPour starts the soft-serve hum
func (sm *SoundManager) StartPour() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.pouring = true
	sm.setHum(!sm.muted)
}

// StopPour stops the hum
func (sm *SoundManager) StopPour() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.pouring = false
	sm.setHum(false)
}

// setHum plays or pauses the pour hum; caller holds sm.mu
func (sm *SoundManager) setHum(on bool) {
	if !sm.initialized {
		return
	}
	if sm.pourStreamer == nil {
		if !on {
			return
		}
		// Hum is endless, pausing the ctrl is the only stop
		sm.pourStreamer = &beep.Ctrl{Streamer: NewHumGenerator(sampleRate)}
		speaker.Lock()
		sm.mixer.Add(sm.pourStreamer)
		speaker.Unlock()
		return
	}
	// Reuse the paused hum instead of stacking ctrls in the mixer
	speaker.Lock()
	sm.pourStreamer.Paused = !on
	speaker.Unlock()
}

// PlayFilled plays the chime for a full cone
func (sm *SoundManager) PlayFilled() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.ready() {
		return
	}

	streamer := beep.Take(sampleRate.N(time.Millisecond*600), NewChimeGenerator(sampleRate))
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

func (sm *SoundManager) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventStickActivate,
		event.EventStickDeactivate,
		event.EventSessionBegin,
		event.EventSessionEnd,
		event.EventConeFilled,
	}
}

func (sm *SoundManager) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventStickActivate:
		sm.PlayStick(true)
	case event.EventStickDeactivate:
		sm.PlayStick(false)
	case event.EventSessionBegin:
		sm.StartPour()
	case event.EventSessionEnd:
		sm.StopPour()
	case event.EventConeFilled:
		sm.PlayFilled()
	}
}

// ClickGenerator generates a short decaying blip
type ClickGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewClickGenerator creates a click sound generator
func NewClickGenerator(sr beep.SampleRate, freq float64) *ClickGenerator {
	return &ClickGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *ClickGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Fast exponential decay
		envelope := math.Exp(-t * 60)
		sample := 0.25 * envelope * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ClickGenerator) Err() error {
	return nil
}

// HumGenerator generates the low motor hum of the machine
type HumGenerator struct {
	sr      beep.SampleRate
	pos     int
	samples int
}

// NewHumGenerator creates a hum generator
func NewHumGenerator(sr beep.SampleRate) *HumGenerator {
	return &HumGenerator{
		sr:      sr,
		samples: sr.N(time.Second), // 1 second wobble cycle
	}
}

func (g *HumGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		cyclePos := float64(g.pos%g.samples) / float64(g.samples)
		wobble := 0.5 + 0.5*math.Sin(cyclePos*math.Pi*2)

		sample := 0.06 * (math.Sin(2*math.Pi*90*t) + 0.4*wobble*math.Sin(2*math.Pi*180*t))

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *HumGenerator) Err() error {
	return nil
}

// ChimeGenerator generates a rising two-note chime
type ChimeGenerator struct {
	sr  beep.SampleRate
	pos int
}

// NewChimeGenerator creates a chime generator
func NewChimeGenerator(sr beep.SampleRate) *ChimeGenerator {
	return &ChimeGenerator{sr: sr}
}

func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	half := g.sr.N(time.Millisecond * 200)
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		freq := 784.0 // G5
		local := t
		if g.pos >= half {
			freq = 1047 // C6
			local = t - float64(half)/float64(g.sr)
		}
		envelope := math.Exp(-local * 6)
		sample := 0.2 * envelope * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChimeGenerator) Err() error {
	return nil
}
