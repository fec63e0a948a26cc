package render

import (
	"strings"

	"github.com/gubarz/mdview/internal/parser"
)

// KeyBoldItalic is the style key that replaces a bold+italic tag pair.
const KeyBoldItalic = "bold_italic"

// Run is a piece of one display line sharing the same style keys.
type Run struct {
	Text string
	Keys []string
}

// Line is one display line. It never contains "\n".
type Line struct {
	Runs []Run
}

// Plain returns the line text without styling.
func (l Line) Plain() string {
	var sb strings.Builder
	for _, r := range l.Runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// ResolveTags maps tags to style keys. When both bold and italic are present
// they collapse into a leading bold_italic key; other tags keep their order.
func ResolveTags(tags []parser.Tag) []string {
	hasBold, hasItalic := false, false
	for _, t := range tags {
		switch t {
		case parser.TagBold:
			hasBold = true
		case parser.TagItalic:
			hasItalic = true
		}
	}

	keys := make([]string, 0, len(tags))
	if hasBold && hasItalic {
		keys = append(keys, KeyBoldItalic)
	}
	for _, t := range tags {
		if hasBold && hasItalic && (t == parser.TagBold || t == parser.TagItalic) {
			continue
		}
		keys = append(keys, string(t))
	}
	return keys
}

// Lines splits segments into display lines. Tabs are expanded to tabWidth
// columns; the empty tail after a final "\n" is not a line.
func Lines(segments []parser.Segment, tabWidth int) []Line {
	var lines []Line
	current := Line{}
	column := 0

	for _, seg := range segments {
		keys := ResolveTags(seg.Tags)
		parts := strings.Split(seg.Text, "\n")
		for i, part := range parts {
			if i > 0 {
				lines = append(lines, current)
				current = Line{}
				column = 0
			}
			if part == "" {
				continue
			}
			var text string
			text, column = expandTabs(part, tabWidth, column)
			current.Runs = append(current.Runs, Run{Text: text, Keys: keys})
		}
	}
	if len(current.Runs) > 0 {
		lines = append(lines, current)
	}
	return lines
}

// PlainLines returns the unstyled text of each line.
func PlainLines(lines []Line) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Plain()
	}
	return out
}
