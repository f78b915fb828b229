package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// attack is the fade-in applied to every cue to avoid clicks.
const attack = 0.005

// ChirpGenerator sweeps a sine tone linearly between two frequencies.
type ChirpGenerator struct {
	sr       beep.SampleRate
	from, to float64
	length   int
	pos      int
	phase    float64
}

// NewChirpGenerator creates a sweep from one frequency to another over d.
func NewChirpGenerator(sr beep.SampleRate, from, to float64, d time.Duration) *ChirpGenerator {
	length := sr.N(d)
	if length < 1 {
		length = 1
	}
	return &ChirpGenerator{sr: sr, from: from, to: to, length: length}
}

// Frequency returns the instantaneous frequency at the current position.
func (g *ChirpGenerator) Frequency() float64 {
	progress := math.Min(float64(g.pos)/float64(g.length), 1)
	return g.from + (g.to-g.from)*progress
}

func (g *ChirpGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		g.phase += 2 * math.Pi * g.Frequency() / float64(g.sr)
		t := float64(g.pos) / float64(g.sr)
		remaining := 1 - math.Min(float64(g.pos)/float64(g.length), 1)

		sample := 0.25 * math.Sin(g.phase) * fadeIn(t) * remaining
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChirpGenerator) Err() error {
	return nil
}

// BuzzGenerator generates a low-pitch buzz sound
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBuzzGenerator creates a buzz sound generator
func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{sr: sr, freq: freq}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sample := 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)
		sample *= fadeIn(t) * 0.4

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}

func fadeIn(t float64) float64 {
	return math.Min(t/attack, 1)
}
