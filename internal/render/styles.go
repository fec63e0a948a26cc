package render

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/gubarz/mdview/internal/config"
	"github.com/gubarz/mdview/internal/parser"
)

// StyleManager holds the document styles keyed by tag name plus the pager
// chrome styles.
type StyleManager struct {
	keys map[string]lipgloss.Style

	// Chrome styles
	Title   lipgloss.Style
	Status  lipgloss.Style
	Dim     lipgloss.Style
	Border  lipgloss.Style
	Divider lipgloss.Style
	Prompt  lipgloss.Style

	// Colors for direct access
	FindBg        lipgloss.Color
	FindCurrentBg lipgloss.Color
}

// DefaultStyles returns a StyleManager built from the built-in palette
func DefaultStyles() *StyleManager {
	s := &StyleManager{}
	s.apply(palette{
		heading: "6", code: "3", codeBg: "236", link: "4", url: "8", quote: "8",
		hr: "240", bullet: "5", image: "2", dim: "241", border: "240",
		find: "3", findCurrent: "9",
	})
	return s
}

// LoadFromConfig updates styles based on configuration
func (s *StyleManager) LoadFromConfig() {
	s.apply(palette{
		heading:     parseANSIColor(config.GetColorHeading()),
		code:        parseANSIColor(config.GetColorCode()),
		codeBg:      parseANSIColor(config.GetColorCodeBg()),
		link:        parseANSIColor(config.GetColorLink()),
		url:         parseANSIColor(config.GetColorURL()),
		quote:       parseANSIColor(config.GetColorQuote()),
		hr:          parseANSIColor(config.GetColorHR()),
		bullet:      parseANSIColor(config.GetColorBullet()),
		image:       parseANSIColor(config.GetColorImage()),
		dim:         parseANSIColor(config.GetColorDim()),
		border:      parseANSIColor(config.GetColorBorder()),
		find:        parseANSIColor(config.GetColorFind()),
		findCurrent: parseANSIColor(config.GetColorFindCurrent()),
	})
}

type palette struct {
	heading, code, codeBg, link, url, quote, hr, bullet, image lipgloss.Color
	dim, border, find, findCurrent                             lipgloss.Color
}

func (s *StyleManager) apply(p palette) {
	heading := lipgloss.NewStyle().Foreground(p.heading)

	s.keys = map[string]lipgloss.Style{
		string(parser.TagNormal):        lipgloss.NewStyle(),
		string(parser.TagBold):          lipgloss.NewStyle().Bold(true),
		string(parser.TagItalic):        lipgloss.NewStyle().Italic(true),
		KeyBoldItalic:                   lipgloss.NewStyle().Bold(true).Italic(true),
		string(parser.TagCodeInline):    lipgloss.NewStyle().Foreground(p.code).Background(p.codeBg),
		string(parser.TagStrikethrough): lipgloss.NewStyle().Strikethrough(true),
		string(parser.TagH1):            heading.Bold(true).Underline(true),
		string(parser.TagH2):            heading.Bold(true),
		string(parser.TagH3):            heading.Bold(true),
		string(parser.TagH4):            heading,
		string(parser.TagH5):            heading.Italic(true),
		string(parser.TagH6):            lipgloss.NewStyle().Foreground(p.dim).Bold(true),
		string(parser.TagCodeBlock):     lipgloss.NewStyle().Foreground(p.code).Background(p.codeBg),
		string(parser.TagListBullet):    lipgloss.NewStyle().Foreground(p.bullet).Bold(true),
		string(parser.TagListItem):      lipgloss.NewStyle(),
		string(parser.TagBlockquote):    lipgloss.NewStyle().Foreground(p.quote).Italic(true),
		string(parser.TagBlockquoteBar): lipgloss.NewStyle().Foreground(p.bullet),
		string(parser.TagHR):            lipgloss.NewStyle().Foreground(p.hr),
		string(parser.TagLinkText):      lipgloss.NewStyle().Foreground(p.link).Underline(true),
		string(parser.TagLinkURL):       lipgloss.NewStyle().Foreground(p.url),
		string(parser.TagImageIcon):     lipgloss.NewStyle().Foreground(p.image).Bold(true),
	}

	s.Title = lipgloss.NewStyle().Bold(true).Foreground(p.heading)
	s.Status = lipgloss.NewStyle().Foreground(p.dim)
	s.Dim = lipgloss.NewStyle().Foreground(p.dim)
	s.Border = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.border)
	s.Divider = lipgloss.NewStyle().Foreground(p.border)
	s.Prompt = lipgloss.NewStyle().Foreground(p.heading)
	s.FindBg = p.find
	s.FindCurrentBg = p.findCurrent
}

// Style layers the styles for keys in order; later keys override earlier
// ones. Unknown keys are ignored.
func (s *StyleManager) Style(keys []string) lipgloss.Style {
	style := lipgloss.NewStyle()
	for i := len(keys) - 1; i >= 0; i-- {
		if k, ok := s.keys[keys[i]]; ok {
			style = style.Inherit(k)
		}
	}
	return style
}

// Has reports whether a style is registered for key.
func (s *StyleManager) Has(key string) bool {
	_, ok := s.keys[key]
	return ok
}

// WithFind returns a copy of style with the find highlight background applied
func (s *StyleManager) WithFind(style lipgloss.Style, current bool) lipgloss.Style {
	if current {
		return style.Background(s.FindCurrentBg).Foreground(lipgloss.Color("0"))
	}
	return style.Background(s.FindBg).Foreground(lipgloss.Color("0"))
}

// parseANSIColor converts ANSI color codes to lipgloss colors
func parseANSIColor(code string) lipgloss.Color {
	ansiToLipgloss := map[string]string{
		"30": "0", "31": "1", "32": "2", "33": "3",
		"34": "4", "35": "5", "36": "6", "37": "7",
		"90": "8", "91": "9", "92": "10", "93": "11",
		"94": "12", "95": "13", "96": "14", "97": "15",
	}
	if mapped, ok := ansiToLipgloss[code]; ok {
		return lipgloss.Color(mapped)
	}
	return lipgloss.Color(code)
}
