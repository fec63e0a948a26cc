package render

import (
	"sort"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/gubarz/mdview/internal/parser"
)

// Mark highlights the byte range [Start, End) of a line's plain text.
type Mark struct {
	Start, End int
	Current    bool
}

// Renderer turns parsed segments into styled terminal text.
type Renderer struct {
	Styles   *StyleManager
	TabWidth int
}

// NewRenderer returns a Renderer using styles, or the defaults when nil.
func NewRenderer(styles *StyleManager, tabWidth int) *Renderer {
	if styles == nil {
		styles = DefaultStyles()
	}
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}
	return &Renderer{Styles: styles, TabWidth: tabWidth}
}

// Lines splits segments into display lines using the renderer's tab width.
func (r *Renderer) Lines(segments []parser.Segment) []Line {
	return Lines(segments, r.TabWidth)
}

// RenderLine styles one line and overlays find marks on top of its runs.
func (r *Renderer) RenderLine(line Line, marks []Mark) string {
	marks = normalizeMarks(marks, len(line.Plain()))

	var sb strings.Builder
	offset := 0
	for _, run := range line.Runs {
		style := r.Styles.Style(run.Keys)
		runStart, runEnd := offset, offset+len(run.Text)
		pos := runStart
		for _, m := range marks {
			if m.End <= pos || m.Start >= runEnd {
				continue
			}
			start := max(m.Start, pos)
			end := min(m.End, runEnd)
			if start > pos {
				sb.WriteString(style.Render(run.Text[pos-runStart : start-runStart]))
			}
			sb.WriteString(r.Styles.WithFind(style, m.Current).Render(run.Text[start-runStart : end-runStart]))
			pos = end
		}
		if pos < runEnd {
			sb.WriteString(style.Render(run.Text[pos-runStart:]))
		}
		offset = runEnd
	}
	return sb.String()
}

// Render styles every line and joins them with "\n". A positive width wraps
// lines that are wider than the terminal.
func (r *Renderer) Render(lines []Line, width int) string {
	rendered := make([]string, len(lines))
	for i, l := range lines {
		rendered[i] = Wrap(r.RenderLine(l, nil), width)
	}
	return strings.Join(rendered, "\n")
}

// Wrap wraps an already styled line to width columns. Non-positive widths
// leave the line unchanged.
func Wrap(styled string, width int) string {
	if width <= 0 || ansi.StringWidth(styled) <= width {
		return styled
	}
	return ansi.Wrap(styled, width, "")
}

// Truncate cuts an already styled line to width columns.
func Truncate(styled string, width int) string {
	if width <= 0 {
		return styled
	}
	return ansi.Truncate(styled, width, "")
}

// normalizeMarks sorts marks, clips them to the line and drops empty or
// overlapping ones.
func normalizeMarks(marks []Mark, length int) []Mark {
	if len(marks) == 0 {
		return nil
	}
	out := make([]Mark, 0, len(marks))
	for _, m := range marks {
		m.Start = max(m.Start, 0)
		m.End = min(m.End, length)
		if m.Start < m.End {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start < out[j].Start })

	merged := out[:0]
	last := -1
	for _, m := range out {
		if m.Start < last {
			continue
		}
		merged = append(merged, m)
		last = m.End
	}
	return merged
}
