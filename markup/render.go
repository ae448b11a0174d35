package markup

import (
	"io"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
)

//nolint:gochecknoglobals // fixed color table
var palette = map[rune]lipgloss.Color{
	'0': lipgloss.Color("#000000"),
	'1': lipgloss.Color("#0000AA"),
	'2': lipgloss.Color("#00AA00"),
	'3': lipgloss.Color("#00AAAA"),
	'4': lipgloss.Color("#AA0000"),
	'5': lipgloss.Color("#AA00AA"),
	'6': lipgloss.Color("#FFAA00"),
	'7': lipgloss.Color("#AAAAAA"),
	'8': lipgloss.Color("#555555"),
	'9': lipgloss.Color("#5555FF"),
	'a': lipgloss.Color("#55FF55"),
	'b': lipgloss.Color("#55FFFF"),
	'c': lipgloss.Color("#FF5555"),
	'd': lipgloss.Color("#FF55FF"),
	'e': lipgloss.Color("#FFFF55"),
	'f': lipgloss.Color("#FFFFFF"),
}

// Renderer turns marked-up text into terminal output for a specific writer.
// Colors are dropped automatically when the writer is not a terminal.
type Renderer struct {
	renderer *lipgloss.Renderer
}

// NewRenderer creates a Renderer that detects the color profile of w.
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{renderer: lipgloss.NewRenderer(w)}
}

// Render styles s according to its codes and removes the codes.
// A color code resets formatting, format codes accumulate, and "r" resets everything.
func (r *Renderer) Render(s string) string {
	runes := []rune(s)
	style := r.renderer.NewStyle()

	var (
		out strings.Builder
		run []rune
	)

	flush := func() {
		if len(run) == 0 {
			return
		}

		out.WriteString(style.Render(string(run)))

		run = run[:0]
	}

	for i := 0; i < len(runes); i++ {
		if isMarker(runes[i]) && i+1 < len(runes) && IsCode(runes[i+1]) {
			flush()

			style = r.apply(style, unicode.ToLower(runes[i+1]))
			i++

			continue
		}

		run = append(run, runes[i])
	}

	flush()

	return out.String()
}

func (r *Renderer) apply(style lipgloss.Style, code rune) lipgloss.Style {
	if color, ok := palette[code]; ok {
		return r.renderer.NewStyle().Foreground(color)
	}

	switch code {
	case 'l':
		return style.Bold(true)
	case 'm':
		return style.Strikethrough(true)
	case 'n':
		return style.Underline(true)
	case 'o':
		return style.Italic(true)
	case 'r':
		return r.renderer.NewStyle()
	default:
		// k (obfuscated) and x (hex color prefix) have no terminal form.
		return style
	}
}
