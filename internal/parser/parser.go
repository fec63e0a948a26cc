package parser

import (
	"regexp"
	"strings"
)

// DefaultMaxDepth bounds inline recursion. Past it, the remaining text of a
// span is emitted literally.
const DefaultMaxDepth = 64

// ruleWidth is the length of the dash string that replaces a thematic break.
const ruleWidth = 40

var (
	headingRegex = regexp.MustCompile(`^(#{1,6})\s+(.+?)(?:\s*#*\s*)?$`)
	ruleRegex    = regexp.MustCompile(`^(\*{3,}|-{3,}|_{3,})\s*$`)
	bulletRegex  = regexp.MustCompile(`^(\s*)[*\-+]\s+(.+)$`)
	orderedRegex = regexp.MustCompile(`^(\s*)(\d+)[.)]\s+(.+)$`)
	quoteRegex   = regexp.MustCompile(`^>\s?(.*)`)
)

// Parser converts Markdown text into styled segments. A Parser holds only
// its compiled pattern table and is safe for concurrent use.
type Parser struct {
	patterns []inlinePattern
	image    matcher
	link     matcher
	maxDepth int
}

// Option configures a Parser.
type Option func(*Parser)

// WithMaxDepth sets the inline nesting limit. Values below 1 keep the default.
func WithMaxDepth(depth int) Option {
	return func(p *Parser) {
		if depth > 0 {
			p.maxDepth = depth
		}
	}
}

// New creates a parser with the default inline pattern table.
func New(opts ...Option) *Parser {
	p := &Parser{
		patterns: defaultPatterns(),
		image:    regexpMatcher{imageRegex},
		link:     regexpMatcher{linkRegex},
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var defaultParser = New()

// Parse converts text with the default parser.
func Parse(text string) []Segment {
	return defaultParser.Parse(text)
}

// Parse scans text line by line and returns its segments in document order.
// It never fails: unterminated constructs degrade to literal text, and an
// unterminated fence is flushed as a code block at end of input.
func (p *Parser) Parse(text string) []Segment {
	var segments []Segment
	if text == "" {
		return segments
	}

	lines := splitLines(text)
	var inCodeBlock bool
	var codeLines []string

	for i := 0; i < len(lines); {
		line := lines[i]

		if isFence(line) {
			if inCodeBlock {
				segments = appendCodeBlock(segments, codeLines)
				codeLines = nil
			}
			inCodeBlock = !inCodeBlock
			i++
			continue
		}

		if inCodeBlock {
			codeLines = append(codeLines, line)
			i++
			continue
		}

		blk := classify(lines, i)
		segments = p.emitBlock(segments, blk)
		i += blk.lines
	}

	if inCodeBlock && len(codeLines) > 0 {
		segments = appendCodeBlock(segments, codeLines)
	}
	return segments
}

// splitLines splits on "\n". A trailing newline ends the last line rather
// than starting an empty one.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	if len(lines) > 1 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func isFence(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "```")
}

func appendCodeBlock(segments []Segment, lines []string) []Segment {
	code := strings.Join(lines, "\n")
	if code == "" {
		return segments
	}
	return append(segments, newSegment(code+"\n", []Tag{TagCodeBlock}))
}

func (p *Parser) emitBlock(segments []Segment, blk block) []Segment {
	switch blk.kind {
	case BlockBlank:
		segments = append(segments, newSegment("\n", []Tag{TagNormal}))
	case BlockATXHeading, BlockSetextHeading:
		segments = append(segments, newSegment(blk.content+"\n", []Tag{HeadingTag(blk.level)}))
	case BlockThematicBreak:
		segments = append(segments, newSegment(strings.Repeat("-", ruleWidth)+"\n", []Tag{TagHR}))
	case BlockUnorderedItem:
		prefix := strings.Repeat("  ", blk.level) + "* "
		segments = append(segments, newSegment(prefix, []Tag{TagListBullet}))
		p.parseInline(blk.content+"\n", &segments, []Tag{TagListItem}, 0)
	case BlockOrderedItem:
		prefix := strings.Repeat("  ", blk.level) + blk.number + ". "
		segments = append(segments, newSegment(prefix, []Tag{TagListBullet}))
		p.parseInline(blk.content+"\n", &segments, []Tag{TagListItem}, 0)
	case BlockQuote:
		segments = append(segments, newSegment("  | ", []Tag{TagBlockquoteBar}))
		p.parseInline(blk.content+"\n", &segments, []Tag{TagBlockquote}, 0)
	default:
		p.parseInline(blk.content+"\n", &segments, []Tag{TagNormal}, 0)
	}
	return segments
}
