package window

import (
	"image/color"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/bitmapfont/v3"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/vovakirdan/target-practice/internal/core"
	"github.com/vovakirdan/target-practice/internal/games/targetpractice"
)

var fontFace = text.NewGoXFace(bitmapfont.Face)

var (
	skyColor    = color.RGBA{R: 0x87, G: 0xce, B: 0xeb, A: 0xff}
	labelShadow = color.RGBA{A: 0x90}
)

// fallbackColors are used for sprites whose image could not be loaded.
var fallbackColors = map[string]color.RGBA{
	targetpractice.BackgroundPath: skyColor,
	targetpractice.CloudPath:      {R: 0xf5, G: 0xf5, B: 0xf5, A: 0xe0},
	targetpractice.TargetPath:     {R: 0xd0, G: 0x20, B: 0x20, A: 0xff},
	targetpractice.FireballPath:   {R: 0xff, G: 0x8c, B: 0x00, A: 0xff},
}

var dragonColor = color.RGBA{R: 0x2e, G: 0x8b, B: 0x57, A: 0xff}

// fallbackColor returns the solid color drawn in place of a missing image.
func fallbackColor(path string) color.RGBA {
	if c, ok := fallbackColors[path]; ok {
		return c
	}
	if strings.HasPrefix(path, "sprites/misc/dragon-") {
		return dragonColor
	}
	return color.RGBA{R: 0xff, B: 0xff, A: 0xff}
}

// screenTop converts a world rectangle's bottom edge and height into
// the screen row of its top edge. World y grows upward.
func screenTop(worldH, y, h int) int {
	return worldH - y - h
}

// labelScale is the font magnification for a label size tier.
func labelScale(size int) float64 {
	if size < 0 {
		size = 0
	}
	return float64(size+4) / 2
}

// alignOffset is how far left of X a label of the given width starts.
func alignOffset(a core.Align, width float64) float64 {
	switch a {
	case core.AlignCenter:
		return width / 2
	case core.AlignRight:
		return width
	default:
		return 0
	}
}

// imageCache loads sprite images on first use.
type imageCache struct {
	dir    string
	logger *log.Logger
	images map[string]*ebiten.Image
}

func newImageCache(dir string, logger *log.Logger) *imageCache {
	return &imageCache{
		dir:    dir,
		logger: logger,
		images: make(map[string]*ebiten.Image),
	}
}

// get returns the image for path. A missing file is reported once
// and replaced by a 1x1 image of the fallback color.
func (c *imageCache) get(path string) *ebiten.Image {
	if img, ok := c.images[path]; ok {
		return img
	}

	img, _, err := ebitenutil.NewImageFromFile(filepath.Join(c.dir, path))
	if err != nil {
		c.logger.Debug("sprite missing, using solid color", "path", path, "error", err)
		img = ebiten.NewImage(1, 1)
		img.Fill(fallbackColor(path))
	}
	c.images[path] = img
	return img
}

// drawFrame renders sprites in order and then labels on top.
func drawFrame(screen *ebiten.Image, f core.Frame, worldH int, images *imageCache) {
	screen.Fill(skyColor)

	for _, s := range f.Sprites {
		if s.W <= 0 || s.H <= 0 {
			continue
		}
		img := images.get(s.Path)
		b := img.Bounds()

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(s.W)/float64(b.Dx()), float64(s.H)/float64(b.Dy()))
		op.GeoM.Translate(float64(s.X), float64(screenTop(worldH, s.Y, s.H)))
		screen.DrawImage(img, op)
	}

	for _, l := range f.Labels {
		drawLabel(screen, l, worldH)
	}
}

func drawLabel(screen *ebiten.Image, l core.Label, worldH int) {
	scale := labelScale(l.Size)
	w, _ := text.Measure(l.Text, fontFace, fontFace.Metrics().HLineGap)
	x := float64(l.X) - alignOffset(l.Align, w*scale)
	y := float64(worldH - l.Y)

	// Shadow pass, then the text itself
	for _, pass := range []struct {
		dx, dy float64
		c      color.Color
	}{
		{scale / 2, scale / 2, labelShadow},
		{0, 0, color.White},
	} {
		op := &text.DrawOptions{}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(x+pass.dx, y+pass.dy)
		op.ColorScale.ScaleWithColor(pass.c)
		text.Draw(screen, l.Text, fontFace, op)
	}
}
