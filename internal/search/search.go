// Package search finds text in rendered document lines.
package search

import (
	"fmt"

	"golang.org/x/text/language"
	textsearch "golang.org/x/text/search"
)

// Match is a hit in one line, as byte offsets into that line's plain text.
type Match struct {
	Line       int
	Start, End int
}

// Finder holds the matches of the last query and a cursor over them.
type Finder struct {
	matcher *textsearch.Matcher
	query   string
	matches []Match
	current int
}

// New returns a case-insensitive Finder. Loose matching also ignores
// diacritics and character width.
func New(loose bool) *Finder {
	opts := []textsearch.Option{textsearch.IgnoreCase}
	if loose {
		opts = []textsearch.Option{textsearch.Loose}
	}
	return &Finder{
		matcher: textsearch.New(language.Und, opts...),
		current: -1,
	}
}

// Find collects every non-overlapping match of query in lines. The cursor
// is reset when the query changes and clamped otherwise, so re-running the
// same query after a reload keeps the position.
func (f *Finder) Find(lines []string, query string) int {
	if query != f.query {
		f.current = -1
	}
	f.query = query
	f.matches = f.matches[:0]

	if query == "" {
		f.current = -1
		return 0
	}

	pattern := f.matcher.CompileString(query)
	for i, line := range lines {
		offset := 0
		for offset < len(line) {
			start, end := pattern.IndexString(line[offset:])
			if start < 0 || end <= start {
				break
			}
			f.matches = append(f.matches, Match{Line: i, Start: offset + start, End: offset + end})
			offset += end
		}
	}

	if f.current >= len(f.matches) {
		f.current = len(f.matches) - 1
	}
	return len(f.matches)
}

// Query returns the last searched text.
func (f *Finder) Query() string {
	return f.query
}

// Matches returns all matches in document order.
func (f *Finder) Matches() []Match {
	return f.matches
}

// Current returns the selected match, if any.
func (f *Finder) Current() (Match, bool) {
	if f.current < 0 || f.current >= len(f.matches) {
		return Match{}, false
	}
	return f.matches[f.current], true
}

// Next moves to the following match, wrapping to the first.
func (f *Finder) Next() (Match, bool) {
	if len(f.matches) == 0 {
		return Match{}, false
	}
	f.current = (f.current + 1) % len(f.matches)
	return f.matches[f.current], true
}

// Prev moves to the preceding match, wrapping to the last.
func (f *Finder) Prev() (Match, bool) {
	if len(f.matches) == 0 {
		return Match{}, false
	}
	if f.current <= 0 {
		f.current = len(f.matches) - 1
	} else {
		f.current--
	}
	return f.matches[f.current], true
}

// InLine returns the matches on line and whether each is the current one.
func (f *Finder) InLine(line int) []LineMatch {
	var out []LineMatch
	for i, m := range f.matches {
		if m.Line == line {
			out = append(out, LineMatch{Match: m, Current: i == f.current})
		}
	}
	return out
}

// LineMatch is a match annotated with its selection state.
type LineMatch struct {
	Match
	Current bool
}

// Label is the count shown next to the find bar.
func (f *Finder) Label() string {
	switch {
	case f.query == "":
		return ""
	case len(f.matches) == 0:
		return "Not found"
	default:
		return fmt.Sprintf("%d found", len(f.matches))
	}
}

// Reset clears the query and all matches.
func (f *Finder) Reset() {
	f.query = ""
	f.matches = nil
	f.current = -1
}
