package ui

import (
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gubarz/mdview/internal/output"
	"github.com/gubarz/mdview/internal/parser"
	"github.com/gubarz/mdview/internal/render"
	"github.com/gubarz/mdview/internal/search"
	"github.com/gubarz/mdview/internal/source"
)

// ============================================================================
// Messages
// ============================================================================

// fileLoadedMsg carries a freshly read document
type fileLoadedMsg struct {
	file *source.File
}

// loadErrMsg reports a failed reload; the current document is kept
type loadErrMsg struct {
	err error
}

// copiedMsg reports the result of a clipboard copy
type copiedMsg struct {
	err error
}

// reloadFile reads the file off the UI loop
func reloadFile(f *source.File) tea.Cmd {
	return func() tea.Msg {
		next, err := f.Reload()
		if err != nil {
			return loadErrMsg{err: err}
		}
		return fileLoadedMsg{file: next}
	}
}

// copyText copies text off the UI loop
func copyText(c output.Clipboard, text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: c.Copy(text)}
	}
}

// ============================================================================
// Model
// ============================================================================

// uiMode represents which part of the pager has focus
type uiMode int

const (
	modeRead uiMode = iota // Scrolling the document
	modeFind               // Typing in the find bar
)

const (
	headerLines = 2 // title + divider
	footerLines = 2 // divider + status or find bar
)

// Options configures the pager
type Options struct {
	File      *source.File
	Parser    *parser.Parser
	Renderer  *render.Renderer
	Finder    *search.Finder
	Clipboard output.Clipboard
	Wrap      bool
	Query     string // Initial find query
}

// model is the Bubble Tea model for the document pager
type model struct {
	width    int
	height   int
	ready    bool
	quitting bool
	mode     uiMode

	viewport  viewport.Model
	findInput textinput.Model

	file      *source.File
	parser    *parser.Parser
	renderer  *render.Renderer
	finder    *search.Finder
	clipboard output.Clipboard
	wrap      bool

	segments []parser.Segment
	lines    []render.Line
	plain    []string
	rowOf    []int // first viewport row of each document line
	message  string
}

// newModel creates a pager model for opts.File
func newModel(opts Options) model {
	ti := textinput.New()
	ti.Prompt = "Find: "
	ti.Placeholder = "type to search..."
	ti.CharLimit = 256
	ti.Width = 40

	if opts.Parser == nil {
		opts.Parser = parser.New()
	}
	if opts.Renderer == nil {
		opts.Renderer = render.NewRenderer(nil, 0)
	}
	if opts.Finder == nil {
		opts.Finder = search.New(false)
	}
	if opts.Clipboard == nil {
		opts.Clipboard = output.SystemClipboard()
	}

	m := model{
		viewport:  viewport.New(0, 0),
		findInput: ti,
		parser:    opts.Parser,
		renderer:  opts.Renderer,
		finder:    opts.Finder,
		clipboard: opts.Clipboard,
		wrap:      opts.Wrap,
	}
	m.viewport.MouseWheelEnabled = true
	m.setDocument(opts.File)

	if opts.Query != "" {
		m.findInput.SetValue(opts.Query)
		m.finder.Find(m.plain, opts.Query)
		m.finder.Next()
	}
	return m
}

// setDocument parses f and refreshes the derived line and match state
func (m *model) setDocument(f *source.File) {
	m.file = f
	m.segments = m.parser.Parse(f.Text)
	m.lines = m.renderer.Lines(m.segments)
	m.plain = render.PlainLines(m.lines)
	if q := m.finder.Query(); q != "" {
		m.finder.Find(m.plain, q)
	}
	log.Printf("loaded %s: %d segments, %d lines", f.Name, len(m.segments), len(m.lines))
}

// Init implements tea.Model
func (m model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case fileLoadedMsg:
		offset := m.viewport.YOffset
		m.setDocument(msg.file)
		m.message = "Reloaded"
		m.refresh()
		m.viewport.SetYOffset(offset)
		return m, nil

	case loadErrMsg:
		log.Printf("reload failed: %v", msg.err)
		m.message = fmt.Sprintf("Reload failed: %v", msg.err)
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.message = fmt.Sprintf("Copy failed: %v", msg.err)
		} else {
			m.message = "Copied to clipboard"
		}
		return m, nil

	case tea.KeyMsg:
		if m.mode == modeFind {
			return m.updateFind(msg)
		}
		if cmd, handled := m.handleReadKey(msg); handled {
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// handleReadKey processes keyboard input while scrolling
func (m *model) handleReadKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return tea.Quit, true
	case "esc":
		if m.finder.Query() != "" {
			m.finder.Reset()
			m.findInput.SetValue("")
			m.refresh()
			return nil, true
		}
		m.quitting = true
		return tea.Quit, true
	case "/", "ctrl+f":
		m.mode = modeFind
		m.message = ""
		return m.findInput.Focus(), true
	case "n":
		m.jump(m.finder.Next())
		return nil, true
	case "N":
		m.jump(m.finder.Prev())
		return nil, true
	case "r":
		if m.file.Path == "" {
			m.message = "Nothing to reload"
			return nil, true
		}
		return reloadFile(m.file), true
	case "y":
		return copyText(m.clipboard, parser.PlainText(m.segments)), true
	case "w":
		m.wrap = !m.wrap
		m.refresh()
		return nil, true
	case "g", "home":
		m.viewport.GotoTop()
		return nil, true
	case "G", "end":
		m.viewport.GotoBottom()
		return nil, true
	}
	return nil, false
}

// updateFind handles input while the find bar has focus
func (m model) updateFind(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "esc":
		m.mode = modeRead
		m.findInput.Blur()
		return m, nil
	case "enter", "down", "ctrl+n":
		m.search()
		m.jump(m.finder.Next())
		return m, nil
	case "up", "ctrl+p":
		m.search()
		m.jump(m.finder.Prev())
		return m, nil
	}

	prev := m.findInput.Value()
	var cmd tea.Cmd
	m.findInput, cmd = m.findInput.Update(msg)
	if m.findInput.Value() != prev {
		m.search()
		m.refresh()
	}
	return m, cmd
}

// search runs the find bar query when it differs from the last one
func (m *model) search() {
	q := m.findInput.Value()
	if q == m.finder.Query() {
		return
	}
	n := m.finder.Find(m.plain, q)
	log.Printf("find %q: %d matches", q, n)
}

// jump scrolls so the match sits in the upper third of the viewport
func (m *model) jump(match search.Match, ok bool) {
	m.refresh()
	if !ok || match.Line >= len(m.rowOf) {
		return
	}
	m.viewport.SetYOffset(max(m.rowOf[match.Line]-m.viewport.Height/3, 0))
}

// resize lays out the viewport for a new terminal size
func (m *model) resize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = max(height-headerLines-footerLines, 1)
	m.findInput.Width = max(width-len(m.findInput.Prompt)-16, 10)

	first := !m.ready
	m.ready = true
	m.refresh()
	if cur, ok := m.finder.Current(); ok && first {
		m.jump(cur, ok)
	}
}

// refresh re-renders the document into the viewport, keeping the offset
func (m *model) refresh() {
	if !m.ready {
		return
	}
	offset := m.viewport.YOffset
	m.viewport.SetContent(m.renderBody())
	m.viewport.SetYOffset(offset)
}

// renderBody styles every line with its find marks and records where each
// document line starts in the viewport
func (m *model) renderBody() string {
	b := getBuilder()
	defer putBuilder(b)

	m.rowOf = make([]int, len(m.lines))
	row := 0
	for i, line := range m.lines {
		var marks []render.Mark
		for _, lm := range m.finder.InLine(i) {
			marks = append(marks, render.Mark{Start: lm.Start, End: lm.End, Current: lm.Current})
		}

		styled := m.renderer.RenderLine(line, marks)
		if m.wrap {
			styled = render.Wrap(styled, m.width)
		} else {
			styled = render.Truncate(styled, m.width)
		}

		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(styled)
		m.rowOf[i] = row
		row += strings.Count(styled, "\n") + 1
	}
	return b.String()
}
