package parser

import "regexp"

// match is one located construct in the remaining inline text. start and end
// are byte offsets; groups holds the captured sub-texts (content, or
// text+destination for links and images).
type match struct {
	start  int
	end    int
	groups []string
}

// matcher finds the first occurrence of a construct anywhere in text.
type matcher interface {
	find(text string) (match, bool)
}

// regexpMatcher finds the leftmost regexp match, unanchored.
type regexpMatcher struct {
	re *regexp.Regexp
}

func (m regexpMatcher) find(text string) (match, bool) {
	loc := m.re.FindStringSubmatchIndex(text)
	if loc == nil {
		return match{}, false
	}
	groups := make([]string, 0, len(loc)/2-1)
	for i := 2; i+1 < len(loc); i += 2 {
		if loc[i] < 0 {
			groups = append(groups, "")
			continue
		}
		groups = append(groups, text[loc[i]:loc[i+1]])
	}
	return match{start: loc[0], end: loc[1], groups: groups}, true
}

// guardedDelimiter matches a single-character span such as *x* or _x_.
// A delimiter only counts when it is not adjacent to the same character,
// so the runs of ** and __ belonging to bold spans are never split. The
// content is non-empty, as short as possible and stays on one line.
type guardedDelimiter struct {
	delim byte
}

func (g guardedDelimiter) find(text string) (match, bool) {
	for start := 0; start < len(text); start++ {
		if !g.isolated(text, start) {
			continue
		}
		for end := start + 1; end < len(text); end++ {
			if text[end] == '\n' {
				break
			}
			if g.isolated(text, end) {
				return match{
					start:  start,
					end:    end + 1,
					groups: []string{text[start+1 : end]},
				}, true
			}
		}
	}
	return match{}, false
}

func (g guardedDelimiter) isolated(text string, i int) bool {
	if text[i] != g.delim {
		return false
	}
	if i > 0 && text[i-1] == g.delim {
		return false
	}
	if i+1 < len(text) && text[i+1] == g.delim {
		return false
	}
	return true
}

// inlinePattern pairs a matcher with the tags its content receives.
type inlinePattern struct {
	name   string
	finder matcher
	tags   []Tag
}

var (
	imageRegex = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+)\)`)
	linkRegex  = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
)

// defaultPatterns returns the inline formatting table. Order matters:
// combined bold+italic before bold, bold before italic, italic before
// code and strikethrough. A match found earlier in the text always wins;
// the order only decides between matches starting at the same offset.
func defaultPatterns() []inlinePattern {
	return []inlinePattern{
		{name: "bold-italic-star", finder: regexpMatcher{regexp.MustCompile(`\*\*\*(.+?)\*\*\*`)}, tags: []Tag{TagBold, TagItalic}},
		{name: "bold-italic-underscore", finder: regexpMatcher{regexp.MustCompile(`___(.+?)___`)}, tags: []Tag{TagBold, TagItalic}},
		{name: "bold-star", finder: regexpMatcher{regexp.MustCompile(`\*\*(.+?)\*\*`)}, tags: []Tag{TagBold}},
		{name: "bold-underscore", finder: regexpMatcher{regexp.MustCompile(`__(.+?)__`)}, tags: []Tag{TagBold}},
		{name: "italic-star", finder: guardedDelimiter{delim: '*'}, tags: []Tag{TagItalic}},
		{name: "italic-underscore", finder: guardedDelimiter{delim: '_'}, tags: []Tag{TagItalic}},
		{name: "code", finder: regexpMatcher{regexp.MustCompile("`(.+?)`")}, tags: []Tag{TagCodeInline}},
		{name: "strikethrough", finder: regexpMatcher{regexp.MustCompile(`~~(.+?)~~`)}, tags: []Tag{TagStrikethrough}},
	}
}

type constructKind int

const (
	constructImage constructKind = iota
	constructLink
	constructFormat
)

// candidate is a match of one construct in the remaining text. rank is the
// construct's declared priority: image, then link, then table entries in
// table order.
type candidate struct {
	kind  constructKind
	rank  int
	m     match
	tags  []Tag
	found bool
}

// earlier reports whether a beats b: the smaller start offset wins, and at
// equal offsets the lower rank wins. A candidate that was not found never
// beats anything.
func earlier(a, b candidate) bool {
	if !a.found {
		return false
	}
	if !b.found {
		return true
	}
	if a.m.start != b.m.start {
		return a.m.start < b.m.start
	}
	return a.rank < b.rank
}
