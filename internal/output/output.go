package output

import (
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/gubarz/mdview/internal/parser"
	"github.com/gubarz/mdview/internal/render"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// ============================================================================
// Clipboard Interface
// ============================================================================

// Clipboard defines the interface for clipboard operations
type Clipboard interface {
	Copy(text string) error
}

// systemClipboard implements Clipboard using the platform clipboard tools
type systemClipboard struct {
	fallback io.Writer
}

// Copy copies text to the system clipboard. Without a clipboard tool the
// text is written to the fallback writer instead.
func (c *systemClipboard) Copy(text string) error {
	if clipboard.Unsupported {
		_, err := fmt.Fprint(c.fallback, text)
		return err
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("clipboard error: %w", err)
	}
	return nil
}

// SystemClipboard returns the platform clipboard.
func SystemClipboard() Clipboard {
	return &systemClipboard{fallback: os.Stdout}
}

// ============================================================================
// Modes
// ============================================================================

// Mode represents how a parsed document is delivered
type Mode string

const (
	ModeAuto     Mode = "auto"
	ModeView     Mode = "view"
	ModePrint    Mode = "print"
	ModeCopy     Mode = "copy"
	ModeSegments Mode = "segments"
)

// ResolveMode validates mode and turns auto into view on a terminal and
// print otherwise.
func ResolveMode(mode string, terminal bool) (Mode, error) {
	switch m := Mode(mode); m {
	case "", ModeAuto:
		if terminal {
			return ModeView, nil
		}
		return ModePrint, nil
	case ModeView, ModePrint, ModeCopy, ModeSegments:
		return m, nil
	default:
		return "", fmt.Errorf("unknown output mode: %s (supported: auto, view, print, copy, segments)", mode)
	}
}

// StdoutIsTerminal reports whether stdout is attached to a terminal
func StdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// TerminalWidth returns the width of stdout, or 0 when it is not a terminal
func TerminalWidth() int {
	if !StdoutIsTerminal() {
		return 0
	}
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0
	}
	return width
}

// ============================================================================
// Writer
// ============================================================================

// Writer delivers parsed documents in the non-interactive modes
type Writer struct {
	out       io.Writer
	renderer  *render.Renderer
	clipboard Clipboard
	width     int
}

// NewWriter creates a Writer printing to out
func NewWriter(out io.Writer, renderer *render.Renderer) *Writer {
	if renderer == nil {
		renderer = render.NewRenderer(nil, 0)
	}
	return &Writer{
		out:       out,
		renderer:  renderer,
		clipboard: &systemClipboard{fallback: out},
	}
}

// WithClipboard sets a custom clipboard implementation (useful for testing)
func (w *Writer) WithClipboard(c Clipboard) *Writer {
	w.clipboard = c
	return w
}

// WithWidth wraps printed lines to width columns; 0 disables wrapping
func (w *Writer) WithWidth(width int) *Writer {
	w.width = width
	return w
}

// Write handles segments with an explicit mode
func (w *Writer) Write(mode Mode, segments []parser.Segment) error {
	switch mode {
	case ModeCopy:
		return w.clipboard.Copy(parser.PlainText(segments))
	case ModeSegments:
		for _, seg := range segments {
			if _, err := fmt.Fprintln(w.out, seg.String()); err != nil {
				return err
			}
		}
		return nil
	case ModePrint:
		lines := w.renderer.Lines(segments)
		if len(lines) == 0 {
			return nil
		}
		_, err := fmt.Fprintln(w.out, w.renderer.Render(lines, w.width))
		return err
	default:
		return fmt.Errorf("output mode %s cannot be written", mode)
	}
}
