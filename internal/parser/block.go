package parser

import "strings"

// BlockKind classifies one source line (two for setext headings) outside a
// fenced code block.
type BlockKind int

const (
	BlockParagraph BlockKind = iota
	BlockBlank
	BlockATXHeading
	BlockSetextHeading
	BlockThematicBreak
	BlockUnorderedItem
	BlockOrderedItem
	BlockQuote
)

var blockKindNames = map[BlockKind]string{
	BlockParagraph:     "paragraph",
	BlockBlank:         "blank",
	BlockATXHeading:    "atx-heading",
	BlockSetextHeading: "setext-heading",
	BlockThematicBreak: "thematic-break",
	BlockUnorderedItem: "unordered-item",
	BlockOrderedItem:   "ordered-item",
	BlockQuote:         "blockquote",
}

func (k BlockKind) String() string {
	if name, ok := blockKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// block is a classified line. level is the heading level for headings and
// the nesting level for list items.
type block struct {
	kind    BlockKind
	level   int
	number  string
	content string
	lines   int
}

// Classify reports the block kind of lines[i], looking at lines[i+1] for
// setext underlines. Fence state is not considered.
func Classify(lines []string, i int) BlockKind {
	return classify(lines, i).kind
}

func classify(lines []string, i int) block {
	line := lines[i]
	trimmed := strings.TrimSpace(line)

	if trimmed == "" {
		return block{kind: BlockBlank, lines: 1}
	}

	if matches := headingRegex.FindStringSubmatch(line); matches != nil {
		return block{kind: BlockATXHeading, level: len(matches[1]), content: matches[2], lines: 1}
	}

	if i+1 < len(lines) {
		next := strings.TrimSpace(lines[i+1])
		if isUnderline(next, '=') {
			return block{kind: BlockSetextHeading, level: 1, content: line, lines: 2}
		}
		if isUnderline(next, '-') {
			return block{kind: BlockSetextHeading, level: 2, content: line, lines: 2}
		}
	}

	if ruleRegex.MatchString(trimmed) {
		return block{kind: BlockThematicBreak, lines: 1}
	}

	if matches := bulletRegex.FindStringSubmatch(line); matches != nil {
		return block{kind: BlockUnorderedItem, level: len(matches[1]) / 2, content: matches[2], lines: 1}
	}

	if matches := orderedRegex.FindStringSubmatch(line); matches != nil {
		return block{
			kind:    BlockOrderedItem,
			level:   len(matches[1]) / 2,
			number:  matches[2],
			content: matches[3],
			lines:   1,
		}
	}

	if matches := quoteRegex.FindStringSubmatch(line); matches != nil {
		return block{kind: BlockQuote, content: matches[1], lines: 1}
	}

	return block{kind: BlockParagraph, content: line, lines: 1}
}

// isUnderline reports whether s is two or more repetitions of ch.
func isUnderline(s string, ch byte) bool {
	if len(s) < 2 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] != ch {
			return false
		}
	}
	return true
}
