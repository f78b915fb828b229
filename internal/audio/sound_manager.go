package audio

import (
	"sync"
	"time"

	"gridsnake/internal/sims/snake"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)

	eatDuration   = 90 * time.Millisecond
	crashDuration = 250 * time.Millisecond
)

// SoundManager plays the short cues that accompany round events.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker. Frontends treat a failure as "play silently".
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences all queued cues.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// PlayEat plays a short rising chirp.
func (sm *SoundManager) PlayEat() {
	sm.play(beep.Take(sampleRate.N(eatDuration), NewChirpGenerator(sampleRate, 660, 1320, eatDuration)))
}

// PlayCrash plays a low buzz.
func (sm *SoundManager) PlayCrash() {
	sm.play(beep.Take(sampleRate.N(crashDuration), NewBuzzGenerator(sampleRate, 110)))
}

// Handle plays the cues for the events in res.
func (sm *SoundManager) Handle(res snake.StepResult) {
	if res.Ate {
		sm.PlayEat()
	}
	if res.Crashed {
		sm.PlayCrash()
	}
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
