package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/target-practice/internal/core"
	"github.com/vovakirdan/target-practice/internal/games/targetpractice"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightWhite:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorSkyBlue:      lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Rasterizer draws world-space frames onto a cell screen.
// World y grows upward; screen rows grow downward.
type Rasterizer struct {
	WorldW, WorldH int
}

// Draw clears s and paints f on it, sprites first, then labels.
func (r Rasterizer) Draw(f core.Frame, s *core.Screen) {
	s.Clear()
	if r.WorldW <= 0 || r.WorldH <= 0 || s.Width() == 0 || s.Height() == 0 {
		return
	}

	for _, sp := range f.Sprites {
		r.drawSprite(sp, s)
	}
	for _, l := range f.Labels {
		r.drawLabel(l, s)
	}
}

// cells maps a world rectangle to the half-open cell range it covers.
// Anything with a positive size covers at least one cell.
func (r Rasterizer) cells(rect core.Rect, s *core.Screen) (x0, y0, x1, y1 int) {
	sw, sh := s.Width(), s.Height()

	x0 = floorDiv(rect.X*sw, r.WorldW)
	x1 = ceilDiv(rect.Right()*sw, r.WorldW)
	y0 = sh - ceilDiv(rect.Top()*sh, r.WorldH)
	y1 = sh - floorDiv(rect.Y*sh, r.WorldH)

	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return x0, y0, x1, y1
}

func (r Rasterizer) drawSprite(sp core.Sprite, s *core.Screen) {
	x0, y0, x1, y1 := r.cells(sp.Rect, s)
	look := spriteLook(sp.Path)

	s.FillRect(x0, y0, x1-x0, y1-y0, core.Cell{Rune: look.fill, Color: look.color})

	if n, ok := dragonFrame(sp.Path); ok {
		// Wings flap along the top row, snout on the right
		for x := x0; x < x1; x++ {
			s.SetCell(x, y0, core.Cell{Rune: wingRunes[n%len(wingRunes)], Color: core.ColorBrightGreen})
		}
		mid := y0 + (y1-y0)/2
		s.SetCell(x1-1, mid, core.Cell{Rune: '>', Color: core.ColorBrightYellow})
		return
	}

	if look.center != 0 {
		s.SetCell(x0+(x1-x0-1)/2, y0+(y1-y0-1)/2, core.Cell{Rune: look.center, Color: core.ColorBrightWhite})
	}
}

func (r Rasterizer) drawLabel(l core.Label, s *core.Screen) {
	sw, sh := s.Width(), s.Height()
	width := utf8.RuneCountInString(l.Text)

	row := core.Clamp(floorDiv((r.WorldH-l.Y)*sh, r.WorldH), 0, sh-1)
	col := floorDiv(l.X*sw, r.WorldW)
	switch l.Align {
	case core.AlignRight:
		col -= width
	case core.AlignCenter:
		col -= width / 2
	}
	col = core.Clamp(col, 0, core.Max(sw-width, 0))

	s.DrawText(col, row, l.Text, labelColor(l.Size))
}

// look is how a sprite shows up in the terminal.
type look struct {
	fill   rune
	center rune // Optional marker in the middle cell
	color  core.Color
}

var spriteLooks = map[string]look{
	targetpractice.BackgroundPath: {fill: ' ', color: core.ColorDefault},
	targetpractice.CloudPath:      {fill: '░', color: core.ColorWhite},
	targetpractice.TargetPath:     {fill: '█', center: '◎', color: core.ColorRed},
	targetpractice.FireballPath:   {fill: '●', color: core.ColorOrange},
}

var wingRunes = []rune{'^', '^', '~', 'v', 'v', '~'}

func spriteLook(path string) look {
	if l, ok := spriteLooks[path]; ok {
		return l
	}
	if _, ok := dragonFrame(path); ok {
		return look{fill: '▓', color: core.ColorGreen}
	}
	return look{fill: '?', color: core.ColorGray}
}

// dragonFrame extracts the animation frame from a dragon sprite path.
func dragonFrame(path string) (int, bool) {
	var n int
	if _, err := fmt.Sscanf(path, "sprites/misc/dragon-%d.png", &n); err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

func labelColor(size int) core.Color {
	switch {
	case size >= targetpractice.SizeTitle:
		return core.ColorBrightYellow
	case size >= targetpractice.SizeLarge:
		return core.ColorBrightWhite
	case size >= targetpractice.SizeSmall:
		return core.ColorSkyBlue
	default:
		return core.ColorWhite
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}
