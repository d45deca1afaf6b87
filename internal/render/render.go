// Package render writes classification results to an output stream.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"numclass/internal/classify"
)

// Format names an output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned for an unsupported output format.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q (valid: text, json, yaml)", ErrUnknownFormat, s)
	}
}

// Options configures a Renderer.
type Options struct {
	Format Format
	Color  bool
	Logger *zap.Logger
}

// Renderer writes results to a single writer.
type Renderer struct {
	w      io.Writer
	format Format
	styles *Styles
	logger *zap.Logger
}

// New returns a Renderer for w.
func New(w io.Writer, opts Options) (*Renderer, error) {
	format := opts.Format
	if format == "" {
		format = FormatText
	}
	if _, err := ParseFormat(string(format)); err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := &Renderer{w: w, format: format, logger: logger}
	if opts.Color && format == FormatText {
		r.styles = NewStyles(lipgloss.NewRenderer(w))
	}
	return r, nil
}

// Result writes every entry of res: primes, then odds, then evens.
func (r *Renderer) Result(res classify.Result) error {
	r.logger.Debug("rendering result",
		zap.String("format", string(r.format)),
		zap.Int("entries", res.Counts().Total()),
	)

	switch r.format {
	case FormatJSON:
		enc := json.NewEncoder(r.w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	case FormatYAML:
		return r.encodeYAML(res)
	default:
		return r.lines(res.Numbers())
	}
}

// Numbers writes individually classified numbers in the given order.
func (r *Renderer) Numbers(nums []classify.Number) error {
	switch r.format {
	case FormatJSON:
		enc := json.NewEncoder(r.w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(entries(nums)); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	case FormatYAML:
		return r.encodeYAML(entries(nums))
	default:
		return r.lines(nums)
	}
}

func (r *Renderer) lines(nums []classify.Number) error {
	for _, n := range nums {
		line := n.String()
		if r.styles != nil {
			line = r.styles.Line(n)
		}
		if _, err := fmt.Fprintln(r.w, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func (r *Renderer) encodeYAML(v interface{}) error {
	enc := yaml.NewEncoder(r.w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return nil
}

// entry is the tagged wire form of a single classified number. Divisors
// is nil only for primes; odd and even entries always carry the list.
type entry struct {
	Kind     classify.Kind `json:"kind" yaml:"kind"`
	Value    int           `json:"value" yaml:"value"`
	Divisors *[]int        `json:"divisors,omitempty" yaml:"divisors,omitempty"`
}

func entries(nums []classify.Number) []entry {
	out := make([]entry, 0, len(nums))
	for _, n := range nums {
		e := entry{Kind: n.Kind(), Value: n.Int()}
		switch v := n.(type) {
		case classify.Odd:
			e.Divisors = divisorList(v.Divisors)
		case classify.Even:
			e.Divisors = divisorList(v.Divisors)
		}
		out = append(out, e)
	}
	return out
}

func divisorList(divisors []int) *[]int {
	if divisors == nil {
		divisors = []int{}
	}
	return &divisors
}
