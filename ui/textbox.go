package ui

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/OpticalFlyer/paneui/logger"
)

var _ Element = (*TextBox)(nil)

// TextBox renders a string wrapped into lines no wider than the box.
// Wrapping happens when the text or size is set, not while drawing.
type TextBox struct {
	element

	font    *Font
	measure Measurer
	lines   []string
}

// NewTextBox creates a text box and wraps text against m.
func NewTextBox(x, y, width, height float64, text string, style TextBoxStyle, m Measurer) (*TextBox, error) {
	if err := style.validate(); err != nil {
		return nil, err
	}
	if m == nil {
		return nil, errors.Wrap(ErrInvalidStyle, "text box: nil measurer")
	}
	tb := &TextBox{
		element: element{
			bounds: Rectangle{X: x, Y: y, Width: width, Height: height},
		},
		font:    style.Font,
		measure: m,
	}
	tb.SetText(text)
	return tb, nil
}

// SetText replaces the wrapped lines with a fresh wrap of text.
func (tb *TextBox) SetText(text string) {
	tb.text = text
	tb.lines = wrapText(tb.measure, tb.font, text, tb.bounds.Width)
}

// SetSize resizes the box and re-wraps its text at the new width.
func (tb *TextBox) SetSize(width, height float64) {
	tb.element.SetSize(width, height)
	tb.lines = wrapText(tb.measure, tb.font, tb.text, width)
}

// Lines returns the wrapped lines. Each keeps its trailing separator.
func (tb *TextBox) Lines() []string {
	out := make([]string, len(tb.lines))
	copy(out, tb.lines)
	return out
}

// Font returns the text font.
func (tb *TextBox) Font() *Font {
	return tb.font
}

// Draw renders lines top to bottom. Once the cumulative line height
// passes the box height the remaining lines are clipped.
func (tb *TextBox) Draw(s Surface, origin Point) {
	r := tb.bounds.Translate(origin.X, origin.Y)

	var offset float64
	for _, line := range tb.lines {
		w, h := s.MeasureText(tb.font, line)
		s.DrawText(tb.font, line, alignedX(tb.font.Align, r.X, r.Width, w, 0, 0), r.Y+offset)
		offset += h
		if offset > r.Height {
			break
		}
	}
}

// wrapText splits text on single spaces and greedily packs words into
// lines whose measured width, separator included, stays under width.
// A word that alone does not fit gets a line of its own.
func wrapText(m Measurer, f *Font, text string, width float64) []string {
	if text == "" {
		return nil
	}

	var lines []string
	var line string
	for _, word := range strings.Split(text, " ") {
		candidate := line + word + " "
		if w, _ := m.MeasureText(f, candidate); w < width {
			line = candidate
			continue
		}

		if line != "" {
			lines = append(lines, line)
		}
		line = word + " "
		if w, _ := m.MeasureText(f, line); w >= width {
			logger.GetLogger().Warn("text box word exceeds width",
				"word", word, "width", width, "measured", w)
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}
