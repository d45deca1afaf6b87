package render

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"numclass/internal/classify"
)

// Label palette. Only category labels and the "Divisors:" tag are styled;
// values and divisor lists stay plain so the line layout is unchanged.
var (
	primeColor = lipgloss.Color("#8BC34A") // Lime Green
	oddColor   = lipgloss.Color("#2196F3") // Blue
	evenColor  = lipgloss.Color("#FFC107") // Yellow
	mutedColor = lipgloss.Color("#9E9E9E") // Grey
)

// Styles holds the label styles for colored text output.
type Styles struct {
	Prime    lipgloss.Style
	Odd      lipgloss.Style
	Even     lipgloss.Style
	Divisors lipgloss.Style
}

// NewStyles binds the palette to r so that color is only emitted when
// r's output supports it.
func NewStyles(r *lipgloss.Renderer) *Styles {
	return &Styles{
		Prime:    r.NewStyle().Foreground(primeColor).Bold(true),
		Odd:      r.NewStyle().Foreground(oddColor).Bold(true),
		Even:     r.NewStyle().Foreground(evenColor).Bold(true),
		Divisors: r.NewStyle().Foreground(mutedColor),
	}
}

// Line renders n in the plain text layout with styled labels.
func (s *Styles) Line(n classify.Number) string {
	switch v := n.(type) {
	case classify.Prime:
		return fmt.Sprintf("%s %d", s.Prime.Render("Prime Number:"), v.Value)
	case classify.Odd:
		return fmt.Sprintf("%s %d, %s %s", s.Odd.Render("Odd Number:"), v.Value,
			s.Divisors.Render("Divisors:"), classify.FormatDivisors(v.Divisors))
	case classify.Even:
		return fmt.Sprintf("%s %d, %s %s", s.Even.Render("Even Number:"), v.Value,
			s.Divisors.Render("Divisors:"), classify.FormatDivisors(v.Divisors))
	default:
		return n.String()
	}
}
