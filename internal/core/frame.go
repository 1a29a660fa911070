package core

// Align controls how a label is positioned relative to its X coordinate.
type Align int

const (
	AlignLeft   Align = iota // X is the left edge of the text
	AlignCenter              // X is the center of the text
	AlignRight               // X is the right edge of the text
)

// Sprite is an image drawn at a world rectangle.
type Sprite struct {
	Rect
	Path string // Image path relative to the assets directory
}

// Label is a line of text. Y is the top of the text in world space.
type Label struct {
	X, Y  int
	Text  string
	Size  int // Size tier, 0 is the default body size
	Align Align
}

// MusicAction is a change requested for the background music track.
type MusicAction int

const (
	MusicNone  MusicAction = iota
	MusicPlay              // Start Path, looping
	MusicPause             // Pause the current track
)

// MusicCue is a background music request.
type MusicCue struct {
	Action MusicAction
	Path   string
}

// Frame is everything a game enqueued for the host during one tick.
// Sprites are drawn in order, so later sprites cover earlier ones.
type Frame struct {
	Sprites []Sprite
	Labels  []Label
	Sounds  []string // One-shot sound effect paths
	Music   MusicCue
}

// AddSprite appends a sprite to the frame.
func (f *Frame) AddSprite(s Sprite) {
	f.Sprites = append(f.Sprites, s)
}

// AddLabel appends a label to the frame.
func (f *Frame) AddLabel(l Label) {
	f.Labels = append(f.Labels, l)
}

// PlaySound enqueues a one-shot sound effect.
func (f *Frame) PlaySound(path string) {
	f.Sounds = append(f.Sounds, path)
}

// PlayMusic requests the looping background track.
func (f *Frame) PlayMusic(path string) {
	f.Music = MusicCue{Action: MusicPlay, Path: path}
}

// PauseMusic requests the background track to pause.
func (f *Frame) PauseMusic() {
	f.Music = MusicCue{Action: MusicPause}
}
