package parser

import "testing"

func TestEarlier(t *testing.T) {
	at := func(start, rank int) candidate {
		return candidate{rank: rank, m: match{start: start, end: start + 1}, found: true}
	}
	tests := []struct {
		name string
		a, b candidate
		want bool
	}{
		{"smaller start wins", at(1, 5), at(2, 0), true},
		{"larger start loses", at(3, 0), at(2, 5), false},
		{"tie goes to lower rank", at(2, 0), at(2, 1), true},
		{"tie with higher rank loses", at(2, 4), at(2, 3), false},
		{"same candidate does not beat itself", at(2, 2), at(2, 2), false},
		{"found beats missing", at(9, 9), candidate{}, true},
		{"missing never wins", candidate{}, at(0, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := earlier(tt.a, tt.b); got != tt.want {
				t.Errorf("earlier() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPickPrefersTableOrderAtSameOffset(t *testing.T) {
	p := New()
	best := pick(p.candidates("***x***"))
	if !best.found {
		t.Fatal("expected a match")
	}
	if best.kind != constructFormat || p.patterns[best.rank-2].name != "bold-italic-star" {
		t.Fatalf("expected bold-italic-star to win, got rank %d", best.rank)
	}
}

func TestCandidatesSuppressLinkInsideImage(t *testing.T) {
	p := New()
	for _, c := range p.candidates("![a](b)") {
		if c.kind == constructLink {
			t.Fatalf("link candidate should be suppressed when preceded by '!'")
		}
	}
	best := pick(p.candidates("![a](b)"))
	if best.kind != constructImage {
		t.Fatalf("expected image to win, got kind %d", best.kind)
	}
}

func TestGuardedDelimiter(t *testing.T) {
	star := guardedDelimiter{delim: '*'}
	tests := []struct {
		name      string
		text      string
		wantOK    bool
		wantStart int
		wantInner string
	}{
		{name: "simple", text: "*a*", wantOK: true, wantStart: 0, wantInner: "a"},
		{name: "bold run is not italic", text: "**bold**", wantOK: false},
		{name: "skips bold then finds italic", text: "x **y** *z*", wantOK: true, wantStart: 8, wantInner: "z"},
		{name: "shortest content", text: "*a* *b*", wantOK: true, wantStart: 0, wantInner: "a"},
		{name: "does not cross newline", text: "*a\nb*", wantOK: false},
		{name: "needs content", text: "* *", wantOK: true, wantStart: 0, wantInner: " "},
		{name: "empty content is no match", text: "a ** b", wantOK: false},
		{name: "closing next to a star is skipped", text: "*a**b*", wantOK: true, wantStart: 0, wantInner: "a**b"},
		{name: "single star", text: "a*b", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := star.find(tt.text)
			if ok != tt.wantOK {
				t.Fatalf("find(%q) ok = %v, want %v", tt.text, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if m.start != tt.wantStart || m.groups[0] != tt.wantInner {
				t.Errorf("find(%q) = start %d inner %q, want start %d inner %q",
					tt.text, m.start, m.groups[0], tt.wantStart, tt.wantInner)
			}
		})
	}
}

func TestRegexpMatcherGroups(t *testing.T) {
	m, ok := regexpMatcher{linkRegex}.find("see [a](b) here")
	if !ok {
		t.Fatal("expected link match")
	}
	if m.start != 4 || m.end != 10 {
		t.Errorf("link span = [%d,%d), want [4,10)", m.start, m.end)
	}
	if len(m.groups) != 2 || m.groups[0] != "a" || m.groups[1] != "b" {
		t.Errorf("link groups = %q", m.groups)
	}
}

func TestPatternTableOrder(t *testing.T) {
	want := []string{
		"bold-italic-star", "bold-italic-underscore",
		"bold-star", "bold-underscore",
		"italic-star", "italic-underscore",
		"code", "strikethrough",
	}
	got := defaultPatterns()
	if len(got) != len(want) {
		t.Fatalf("pattern table has %d entries, want %d", len(got), len(want))
	}
	for i, name := range want {
		if got[i].name != name {
			t.Errorf("pattern %d = %s, want %s", i, got[i].name, name)
		}
	}
}
