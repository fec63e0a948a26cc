package ui

import "github.com/gubarz/mdview/internal/source"

const welcomeText = `# Welcome to mdview

A terminal viewer for **Markdown** documents.

## Getting Started

- Run ` + "`mdview FILE.md`" + ` to open a document
- Press **r** to reload the current file
- Press **/** to search, then **n** and **N** to move between matches
- Press **y** to copy the document as plain text
- Press **w** to toggle line wrapping and **q** to quit

## Supported Markdown

- **Bold**, *italic*, and ***bold italic***
- Nested formatting like **bold with *italic* inside**
- ` + "`Inline code`" + ` and fenced code blocks
- Headings (H1 through H6)
- Ordered and unordered lists
  - with nesting
- Blockquotes
- Horizontal rules
- ~~Strikethrough~~
- [Links](https://example.com) with visible URLs
- ![Image references](path/to/image.png) displayed as paths

> Pipe a document through ` + "`mdview -o print`" + ` to render it without the pager.

---

*Open a file to get started.*
`

// Welcome returns the document shown when no file is given
func Welcome() *source.File {
	return source.FromString("Welcome", welcomeText)
}
