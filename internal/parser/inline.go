package parser

// imageMarker is the placeholder text shown in place of an image icon.
const imageMarker = "img"

// parseInline splits text into styled runs and appends them to out. Every
// run carries base; matched spans add their own tags and, except for code
// spans, are scanned again with the combined tags as their base.
func (p *Parser) parseInline(text string, out *[]Segment, base []Tag, depth int) {
	if depth > p.maxDepth {
		if text != "" {
			*out = append(*out, newSegment(text, base))
		}
		return
	}

	for text != "" {
		best := pick(p.candidates(text))
		if !best.found {
			*out = append(*out, newSegment(text, base))
			return
		}

		if best.m.start > 0 {
			*out = append(*out, newSegment(text[:best.m.start], base))
		}

		switch best.kind {
		case constructImage:
			appendImage(out, best.m.groups[0], best.m.groups[1], base)
		case constructLink:
			appendLink(out, best.m.groups[0], best.m.groups[1], base)
		default:
			inner := best.m.groups[0]
			combined := withTags(base, best.tags...)
			if hasTag(best.tags, TagCodeInline) {
				*out = append(*out, Segment{Text: inner, Tags: combined})
			} else {
				p.parseInline(inner, out, combined, depth+1)
			}
		}

		text = text[best.m.end:]
	}
}

// candidates collects the first match of every construct in text, in rank
// order. A link directly preceded by '!' belongs to an image and is skipped.
func (p *Parser) candidates(text string) []candidate {
	cands := make([]candidate, 0, len(p.patterns)+2)
	if m, ok := p.image.find(text); ok {
		cands = append(cands, candidate{kind: constructImage, rank: 0, m: m, found: true})
	}
	if m, ok := p.link.find(text); ok && !(m.start > 0 && text[m.start-1] == '!') {
		cands = append(cands, candidate{kind: constructLink, rank: 1, m: m, found: true})
	}
	for i, pat := range p.patterns {
		if m, ok := pat.finder.find(text); ok {
			cands = append(cands, candidate{kind: constructFormat, rank: 2 + i, m: m, tags: pat.tags, found: true})
		}
	}
	return cands
}

// pick returns the winning candidate according to earlier.
func pick(cands []candidate) candidate {
	var best candidate
	for _, c := range cands {
		if earlier(c, best) {
			best = c
		}
	}
	return best
}

func appendImage(out *[]Segment, alt, path string, base []Tag) {
	if alt == "" {
		alt = "image"
	}
	*out = append(*out,
		newSegment("[", base),
		Segment{Text: imageMarker, Tags: withTags(base, TagImageIcon)},
		newSegment(": ", base),
		Segment{Text: alt, Tags: withTags(base, TagBold)},
		newSegment(" → ", base),
		Segment{Text: path, Tags: withTags(base, TagLinkURL)},
		newSegment("]", base),
	)
}

func appendLink(out *[]Segment, text, url string, base []Tag) {
	*out = append(*out,
		Segment{Text: text, Tags: withTags(base, TagLinkText)},
		newSegment(" (", base),
		Segment{Text: url, Tags: withTags(base, TagLinkURL)},
		newSegment(")", base),
	)
}
