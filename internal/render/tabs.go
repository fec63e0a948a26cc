package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const DefaultTabWidth = 4

// ExpandTabs replaces tab characters with spaces respecting terminal column width.
func ExpandTabs(text string, tabWidth int) string {
	out, _ := expandTabs(text, tabWidth, 0)
	return out
}

// expandTabs expands tabs in text that starts at the given column and
// returns the column after the last rune.
func expandTabs(text string, tabWidth, column int) (string, int) {
	if tabWidth <= 0 || !strings.ContainsRune(text, '\t') {
		return text, column + DisplayWidth(text)
	}

	var builder strings.Builder
	for _, ru := range text {
		if ru == '\t' {
			spaces := tabWidth - (column % tabWidth)
			builder.WriteString(strings.Repeat(" ", spaces))
			column += spaces
			continue
		}
		builder.WriteRune(ru)
		column += runeWidth(ru)
	}
	return builder.String(), column
}

// DisplayWidth reports the printable width of text accounting for wide runes.
func DisplayWidth(text string) int {
	width := 0
	for _, ru := range text {
		width += runeWidth(ru)
	}
	return width
}

func runeWidth(ru rune) int {
	if w := runewidth.RuneWidth(ru); w > 0 {
		return w
	}
	return 1
}
