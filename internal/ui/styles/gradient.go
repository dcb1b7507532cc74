package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// neutral stands in for colors that are not #rrggbb (ANSI palette indexes).
var neutral = colorful.Color{R: 0.5, G: 0.5, B: 0.5}

// Ramp returns n colors blended in HCL space from the theme's primary to
// its secondary color. The end points are the theme colors themselves.
func Ramp(n int) []lipgloss.Color {
	t := T()
	return blend(n, t.Primary, t.Secondary)
}

func blend(n int, from, to lipgloss.Color) []lipgloss.Color {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []lipgloss.Color{from}
	}
	a, b := toColorful(from), toColorful(to)
	out := make([]lipgloss.Color, n)
	out[0], out[n-1] = from, to
	for i := 1; i < n-1; i++ {
		out[i] = lipgloss.Color(a.BlendHcl(b, float64(i)/float64(n-1)).Clamped().Hex())
	}
	return out
}

func toColorful(c lipgloss.Color) colorful.Color {
	col, err := colorful.Hex(string(c))
	if err != nil {
		return neutral
	}
	return col
}

// Title renders text in bold with the theme ramp spread over its grapheme
// clusters.
func Title(text string) string {
	var clusters []string
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		clusters = append(clusters, g.Str())
	}

	ramp := Ramp(len(clusters))
	var b strings.Builder
	for i, c := range clusters {
		b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(ramp[i]).Render(c))
	}
	return b.String()
}
