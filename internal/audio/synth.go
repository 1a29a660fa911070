package audio

import (
	"math"
	"path"
	"strings"
	"time"

	"github.com/gopxl/beep"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a single tone for a fixed duration.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	seed     uint32
}

// NewOscillator creates a tone generator. A negative duration never ends.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	samples := -1
	if duration >= 0 {
		samples = rate.N(duration)
	}
	return &oscillator{
		freq:     freq,
		duration: samples,
		wave:     wave,
		rate:     rate,
		seed:     0x2545f491,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.duration >= 0 && o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			// xorshift keeps the noise reproducible
			o.seed ^= o.seed << 13
			o.seed ^= o.seed >> 17
			o.seed ^= o.seed << 5
			val = float64(o.seed)/float64(math.MaxUint32)*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// decay fades a stream out exponentially over its duration.
type decay struct {
	streamer beep.Streamer
	position int
	total    int
	rate     float64
}

// NewDecay shapes s with a short attack and an exponential tail, and ends it after duration.
func NewDecay(s beep.Streamer, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	return &decay{
		streamer: beep.Take(total, s),
		total:    total,
		rate:     5.0 / float64(total),
	}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := math.Exp(-float64(d.position) * d.rate)
		if d.position < 64 {
			vol *= float64(d.position) / 64
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// Synthesize returns a stand-in for a sound file, picked by its name.
// Music (.ogg) gets an endless drone; effects get short cues.
func Synthesize(file string, rate beep.SampleRate) beep.Streamer {
	name := strings.TrimSuffix(path.Base(file), path.Ext(file))

	switch {
	case strings.HasSuffix(file, ".ogg"):
		return newVolume(beep.Mix(
			NewOscillator(110, -1, WaveSine, rate),
			newVolume(NewOscillator(165, -1, WaveSine, rate), 0.5),
		), 0.15)
	case strings.Contains(name, "fireball"):
		return newVolume(NewDecay(NewOscillator(0, -1, WaveNoise, rate), 180*time.Millisecond, rate), 0.3)
	case strings.Contains(name, "target"):
		return newVolume(beep.Mix(
			NewDecay(NewOscillator(880, -1, WaveSine, rate), 300*time.Millisecond, rate),
			newVolume(NewDecay(NewOscillator(1760, -1, WaveSine, rate), 200*time.Millisecond, rate), 0.4),
		), 0.5)
	case strings.Contains(name, "game-over"):
		return newVolume(beep.Seq(
			NewDecay(NewOscillator(523.25, -1, WaveSquare, rate), 150*time.Millisecond, rate),
			NewDecay(NewOscillator(392.00, -1, WaveSquare, rate), 150*time.Millisecond, rate),
			NewDecay(NewOscillator(261.63, -1, WaveSquare, rate), 300*time.Millisecond, rate),
		), 0.25)
	default:
		return newVolume(NewDecay(NewOscillator(440, -1, WaveSaw, rate), 100*time.Millisecond, rate), 0.2)
	}
}
