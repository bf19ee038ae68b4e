package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/tartampluch/go-addressbook/internal/config"
)

// Tone tells the renderer how a reply should be colored.
type Tone int

const (
	TonePlain Tone = iota
	ToneAdd
	ToneChange
	ToneDelete
	ToneWarn
)

// Styles holds the lipgloss styles of a session.
type Styles struct {
	tones map[Tone]lipgloss.Style
	Name  lipgloss.Style
	Phone lipgloss.Style
	Date  lipgloss.Style
}

// NewStyles binds the palette to out. Color is dropped automatically when out
// is not a terminal, and always when noColor is set.
func NewStyles(out io.Writer, noColor bool) Styles {
	r := lipgloss.NewRenderer(out)
	color := func(c string) lipgloss.Style {
		if noColor {
			return r.NewStyle()
		}
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}

	return Styles{
		tones: map[Tone]lipgloss.Style{
			TonePlain:  color(config.ColorDefault),
			ToneAdd:    color(config.ColorAdd),
			ToneChange: color(config.ColorChange),
			ToneDelete: color(config.ColorDelete),
			ToneWarn:   color(config.ColorWarn),
		},
		Name:  color(config.ColorName),
		Phone: color(config.ColorPhone),
		Date:  color(config.ColorDate),
	}
}

// Render applies the style of tone to text.
func (s Styles) Render(tone Tone, text string) string {
	style, ok := s.tones[tone]
	if !ok {
		return text
	}
	return style.Render(text)
}
