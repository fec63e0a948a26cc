package parser

import (
	"strconv"
	"strings"
)

// Tag is a style identifier attached to a Segment. A renderer maps tag
// combinations to concrete visual styles.
type Tag string

const (
	TagNormal        Tag = "normal"
	TagBold          Tag = "bold"
	TagItalic        Tag = "italic"
	TagCodeInline    Tag = "code_inline"
	TagStrikethrough Tag = "strikethrough"
	TagH1            Tag = "h1"
	TagH2            Tag = "h2"
	TagH3            Tag = "h3"
	TagH4            Tag = "h4"
	TagH5            Tag = "h5"
	TagH6            Tag = "h6"
	TagCodeBlock     Tag = "code_block"
	TagListBullet    Tag = "list_bullet"
	TagListItem      Tag = "list_item"
	TagBlockquote    Tag = "blockquote"
	TagBlockquoteBar Tag = "blockquote_bar"
	TagHR            Tag = "hr"
	TagLinkText      Tag = "link_text"
	TagLinkURL       Tag = "link_url"
	TagImageIcon     Tag = "image_icon"
)

var headingTags = [...]Tag{TagH1, TagH2, TagH3, TagH4, TagH5, TagH6}

// HeadingTag returns the tag for an ATX/setext heading level (1-6).
func HeadingTag(level int) Tag {
	if level < 1 {
		level = 1
	}
	if level > len(headingTags) {
		level = len(headingTags)
	}
	return headingTags[level-1]
}

// AllTags lists the full tag vocabulary in a stable order.
func AllTags() []Tag {
	return []Tag{
		TagNormal, TagBold, TagItalic, TagCodeInline, TagStrikethrough,
		TagH1, TagH2, TagH3, TagH4, TagH5, TagH6,
		TagCodeBlock, TagListBullet, TagListItem, TagBlockquote, TagBlockquoteBar,
		TagHR, TagLinkText, TagLinkURL, TagImageIcon,
	}
}

// Segment is one contiguous run of text sharing an ordered tag set.
// Each Segment owns its Tags slice; the parser never touches it again
// after the segment has been appended to a result.
type Segment struct {
	Text string
	Tags []Tag
}

// Has reports whether the segment carries tag.
func (s Segment) Has(tag Tag) bool {
	return hasTag(s.Tags, tag)
}

// String renders the segment as `"text" [tag tag]`, used by the segment dump.
func (s Segment) String() string {
	names := make([]string, len(s.Tags))
	for i, t := range s.Tags {
		names[i] = string(t)
	}
	return strings.Join([]string{strconv.Quote(s.Text), "[" + strings.Join(names, " ") + "]"}, "\t")
}

// PlainText concatenates segment texts in order, ignoring tags.
func PlainText(segments []Segment) string {
	total := 0
	for _, seg := range segments {
		total += len(seg.Text)
	}
	var b strings.Builder
	b.Grow(total)
	for _, seg := range segments {
		b.WriteString(seg.Text)
	}
	return b.String()
}

func newSegment(text string, tags []Tag) Segment {
	return Segment{Text: text, Tags: withTags(tags)}
}

// withTags returns a fresh slice holding base followed by every extra tag
// not already present. The result never aliases base.
func withTags(base []Tag, extra ...Tag) []Tag {
	out := make([]Tag, 0, len(base)+len(extra))
	for _, t := range base {
		if !hasTag(out, t) {
			out = append(out, t)
		}
	}
	for _, t := range extra {
		if !hasTag(out, t) {
			out = append(out, t)
		}
	}
	return out
}

func hasTag(tags []Tag, tag Tag) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
