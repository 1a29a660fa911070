// Package audio plays the sound cues a game enqueues on its frames.
// Samples are decoded from the assets directory with beep; anything that
// can't be loaded falls back to a synthesized stand-in.
package audio

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/vorbis"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/target-practice/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Mixer owns the speaker and the music track.
// An uninitialized Mixer accepts every call and plays nothing.
type Mixer struct {
	mu          sync.Mutex
	assetsDir   string
	volume      float64
	logger      *log.Logger
	mixer       *beep.Mixer
	music       *beep.Ctrl
	cache       map[string]*beep.Buffer
	failed      map[string]bool // Paths already reported as unloadable
	initialized bool
}

// New creates a mixer reading samples from assetsDir.
// Volume is clamped to 0..1. A nil logger uses the default logger.
func New(assetsDir string, volume float64, logger *log.Logger) *Mixer {
	if logger == nil {
		logger = log.Default()
	}
	return &Mixer{
		assetsDir: assetsDir,
		volume:    core.ClampF(volume, 0, 1),
		logger:    logger,
		mixer:     &beep.Mixer{},
		cache:     make(map[string]*beep.Buffer),
		failed:    make(map[string]bool),
	}
}

// Initialize opens the speaker. Calling it again is a no-op.
func (m *Mixer) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return fmt.Errorf("audio: speaker init: %w", err)
	}

	speaker.Play(newVolume(m.mixer, m.volume))
	m.initialized = true
	return nil
}

// Cleanup stops everything that is playing.
func (m *Mixer) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	speaker.Lock()
	if m.music != nil {
		m.music.Paused = true
	}
	m.mixer.Clear()
	speaker.Unlock()

	m.music = nil
	m.initialized = false
}

// Apply plays the cues queued on a frame.
func (m *Mixer) Apply(f core.Frame) {
	switch f.Music.Action {
	case core.MusicPlay:
		m.PlayMusic(f.Music.Path)
	case core.MusicPause:
		m.PauseMusic()
	}
	for _, path := range f.Sounds {
		m.PlaySound(path)
	}
}

// PlaySound plays a one-shot effect.
func (m *Mixer) PlaySound(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	s := m.streamer(path, false)
	speaker.Lock()
	m.mixer.Add(s)
	speaker.Unlock()
}

// PlayMusic starts path looping from the beginning. A track that is
// already loaded is dropped and replaced, so a reset game hears its
// music from the top.
func (m *Mixer) PlayMusic(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()

	if m.music != nil {
		m.music.Paused = true
		m.music.Streamer = nil
	}

	m.music = &beep.Ctrl{Streamer: m.streamer(path, true)}
	m.mixer.Add(m.music)
}

// PauseMusic pauses the music track.
func (m *Mixer) PauseMusic() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.music == nil {
		return
	}
	speaker.Lock()
	m.music.Paused = true
	speaker.Unlock()
}

// musicPlaying reports whether a music track is loaded and not paused.
func (m *Mixer) musicPlaying() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.music != nil && !m.music.Paused
}

// streamer returns a fresh stream for path, from the sample cache or a
// synthesized fallback. Must be called with m.mu held.
func (m *Mixer) streamer(path string, loop bool) beep.Streamer {
	buf, err := m.load(path)
	if err != nil {
		if !m.failed[path] {
			m.failed[path] = true
			m.logger.Warn("using synthesized sound", "path", path, "error", err)
		}
		return Synthesize(path, sampleRate)
	}

	s := buf.Streamer(0, buf.Len())
	if loop {
		return beep.Loop(-1, s)
	}
	return s
}

// load decodes path once and keeps the samples.
func (m *Mixer) load(path string) (*beep.Buffer, error) {
	if buf, ok := m.cache[path]; ok {
		return buf, nil
	}
	if m.failed[path] {
		return nil, fmt.Errorf("audio: %s failed to load earlier", path)
	}

	buf, err := Decode(filepath.Join(m.assetsDir, filepath.FromSlash(path)))
	if err != nil {
		return nil, err
	}
	m.cache[path] = buf
	return buf, nil
}

// Decode reads a .wav or .ogg file into memory at the mixer's sample rate.
func Decode(file string) (*beep.Buffer, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("audio: %w", err)
	}

	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)
	switch strings.ToLower(filepath.Ext(file)) {
	case ".wav":
		stream, format, err = wav.Decode(f)
	case ".ogg":
		stream, format, err = vorbis.Decode(f)
	default:
		f.Close()
		return nil, fmt.Errorf("audio: unsupported format %q", filepath.Ext(file))
	}
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("audio: decode %s: %w", file, err)
	}
	defer stream.Close()

	var s beep.Streamer = stream
	if format.SampleRate != sampleRate {
		s = beep.Resample(4, format.SampleRate, sampleRate, stream)
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
	buf.Append(s)
	if err := stream.Err(); err != nil {
		return nil, fmt.Errorf("audio: read %s: %w", file, err)
	}
	return buf, nil
}

// newVolume scales a stream by a linear factor.
// math.Log2(0) is -Inf, so 0 means silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
