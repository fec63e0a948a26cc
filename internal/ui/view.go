package ui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/x/ansi"

	"github.com/gubarz/mdview/internal/render"
)

// ============================================================================
// String Builder Pool - reduces GC pressure from rendering
// ============================================================================

var builderPool = sync.Pool{
	New: func() interface{} {
		return &strings.Builder{}
	},
}

func getBuilder() *strings.Builder {
	b := builderPool.Get().(*strings.Builder)
	b.Reset()
	return b
}

func putBuilder(b *strings.Builder) {
	if b.Cap() < 64*1024 { // Don't pool huge builders
		builderPool.Put(b)
	}
}

// ============================================================================
// View
// ============================================================================

// View implements tea.Model
func (m model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "\n  Loading..."
	}

	styles := m.renderer.Styles
	b := getBuilder()
	defer putBuilder(b)

	b.WriteString(m.renderHeader(styles))
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(styles.Divider.Render(strings.Repeat("─", m.width)))
	b.WriteString("\n")
	b.WriteString(m.renderFooter(styles))
	return b.String()
}

// renderHeader renders the title line and the divider below it
func (m model) renderHeader(styles *render.StyleManager) string {
	title := styles.Title.Render(m.file.Name)
	if m.file.Path != "" {
		title += "  " + styles.Dim.Render(m.file.Path)
	}
	return render.Truncate(title, m.width) + "\n" +
		styles.Divider.Render(strings.Repeat("─", m.width))
}

// renderFooter renders the find bar or the status line
func (m model) renderFooter(styles *render.StyleManager) string {
	if m.mode == modeFind {
		bar := m.findInput.View()
		if label := m.finder.Label(); label != "" {
			bar += "  " + styles.Dim.Render(label)
		}
		return render.Truncate(bar, m.width)
	}

	left := styles.Status.Render(m.file.Status())
	if m.message != "" {
		left = styles.Status.Render(m.message)
	} else if label := m.finder.Label(); label != "" {
		left += styles.Dim.Render("  |  " + fmt.Sprintf("%q %s", m.finder.Query(), label))
	}

	right := styles.Dim.Render(fmt.Sprintf("%3.f%%  /:find r:reload y:copy q:quit", m.viewport.ScrollPercent()*100))

	gap := m.width - ansi.StringWidth(left) - ansi.StringWidth(right)
	if gap < 1 {
		return render.Truncate(left, m.width)
	}
	return left + strings.Repeat(" ", gap) + right
}
