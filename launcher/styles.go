package launcher

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Color is a terminal foreground color.
type Color int

const (
	ColorNone Color = iota
	ColorRed
	ColorGreen
)

// ParseColor maps a color name to a Color. Unknown names map to ColorNone.
func ParseColor(name string) Color {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "red":
		return ColorRed
	case "green":
		return ColorGreen
	default:
		return ColorNone
	}
}

func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	default:
		return "none"
	}
}

// ansi returns the basic ANSI color index, or nil for ColorNone.
func (c Color) ansi() lipgloss.TerminalColor {
	switch c {
	case ColorRed:
		return lipgloss.Color("1")
	case ColorGreen:
		return lipgloss.Color("2")
	default:
		return nil
	}
}

// Palette renders colored text for one output.
type Palette struct {
	r *lipgloss.Renderer
}

// NewPalette returns a Palette writing for w with the given color profile.
// termenv.Ascii disables all escape sequences.
func NewPalette(w io.Writer, profile termenv.Profile) *Palette {
	r := lipgloss.NewRenderer(w, termenv.WithProfile(profile))
	r.SetColorProfile(profile)

	return &Palette{r: r}
}

// Paint wraps text in the escape sequence of c.
// ColorNone returns text unchanged.
func (p *Palette) Paint(c Color, text string) string {
	return p.render(c, false, text)
}

// PaintBold is Paint with bold text.
func (p *Palette) PaintBold(c Color, text string) string {
	return p.render(c, true, text)
}

func (p *Palette) render(c Color, bold bool, text string) string {
	fg := c.ansi()
	if fg == nil {
		return text
	}

	return p.r.NewStyle().Foreground(fg).Bold(bold).Render(text)
}
