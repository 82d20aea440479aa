package audio

import (
	"testing"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/dispenser/event"
)

// TestSoundManagerGracefulDegradation verifies audio operations don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	sm.PlayStick(true)
	sm.StartPour()
	sm.StopPour()
	sm.PlayFilled()
	sm.SetMuted(true)
	sm.Cleanup()
}

// TestSoundManagerHandlesRouterEvents verifies the manager is routable without a device
func TestSoundManagerHandlesRouterEvents(t *testing.T) {
	sm := NewSoundManager()
	r := event.NewRouter()
	r.Register(sm)

	for _, et := range sm.EventTypes() {
		if r.HandlerCount(et) != 1 {
			t.Errorf("%v not registered", et)
		}
		r.Emit(et, nil)
	}
}

// TestSoundManagerInitialization verifies sound manager can be initialized and cleaned up
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager()

	// Speaker initialization may fail in CI/test environments without audio devices
	err := sm.Initialize()
	if err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}

	if err := sm.Initialize(); err != nil {
		t.Errorf("Second initialization should succeed as no-op, got error: %v", err)
	}
	sm.StartPour()
	sm.StopPour()
	sm.Cleanup()
}

func TestMute(t *testing.T) {
	sm := NewSoundManager()
	sm.SetMuted(true)
	if !sm.Muted() {
		t.Error("expected muted")
	}
	sm.SetMuted(false)
	if sm.Muted() {
		t.Error("expected unmuted")
	}
}

func TestGeneratorsStayInRange(t *testing.T) {
	gens := map[string]beep.Streamer{
		"click": NewClickGenerator(sampleRate, 660),
		"hum":   NewHumGenerator(sampleRate),
		"chime": NewChimeGenerator(sampleRate),
	}
	buf := make([][2]float64, 4096)
	for name, g := range gens {
		for round := 0; round < 20; round++ {
			n, ok := g.Stream(buf)
			if !ok || n != len(buf) {
				t.Fatalf("%s: stream returned %d,%v", name, n, ok)
			}
			for _, s := range buf {
				if s[0] > 1 || s[0] < -1 || s[0] != s[1] {
					t.Fatalf("%s: sample out of range or not mono: %v", name, s)
				}
			}
		}
	}
}

// humPlaying reports whether the pour hum is audible
func humPlaying(sm *SoundManager) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.pourStreamer != nil && !sm.pourStreamer.Paused
}

// TestMuteFollowsPour verifies the hum tracks mute changes during and after a pour
func TestMuteFollowsPour(t *testing.T) {
	sm := NewSoundManager()
	// Mark ready without opening a device; only the mixer is exercised
	sm.initialized = true

	sm.HandleEvent(event.GameEvent{Type: event.EventSessionBegin})
	if !humPlaying(sm) {
		t.Fatal("expected hum during pour")
	}

	sm.SetMuted(true)
	if humPlaying(sm) {
		t.Error("hum still playing after mute")
	}
	sm.SetMuted(false)
	if !humPlaying(sm) {
		t.Error("hum did not resume on unmute mid-pour")
	}

	sm.HandleEvent(event.GameEvent{Type: event.EventSessionEnd})
	if humPlaying(sm) {
		t.Error("hum playing after session end")
	}
	sm.SetMuted(true)
	sm.SetMuted(false)
	if humPlaying(sm) {
		t.Error("unmute after the pour restarted the hum")
	}

	// A pour begun while muted starts its hum on unmute
	sm.SetMuted(true)
	sm.StartPour()
	if humPlaying(sm) {
		t.Error("hum audible while muted")
	}
	sm.SetMuted(false)
	if !humPlaying(sm) {
		t.Error("muted pour stayed silent after unmute")
	}
	if n := sm.mixer.Len(); n != 1 {
		t.Errorf("mixer holds %d streamers, want one reused hum", n)
	}
}
