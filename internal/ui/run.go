package ui

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DebugLogFile receives pager logs when debugging is enabled
const DebugLogFile = "mdview-debug.log"

// getTTY returns file handles for TUI input/output
// Uses /dev/tty to bypass shell pipes and command substitution
func getTTY() (in *os.File, out *os.File, cleanup func()) {
	var closers []func()

	// If stdout is not a terminal (e.g. `mdview -o view doc.md | less`), use /dev/tty
	if fileInfo, _ := os.Stdout.Stat(); (fileInfo.Mode() & os.ModeCharDevice) == 0 {
		out, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
		if err != nil {
			out = os.Stderr // Last resort fallback
		} else {
			closers = append(closers, func() { out.Close() })
		}

		in, err := os.OpenFile("/dev/tty", os.O_RDONLY, 0)
		if err != nil {
			in = os.Stdin
		} else {
			closers = append(closers, func() { in.Close() })
		}

		// Tell lipgloss to use the TTY for color detection
		lipgloss.SetDefaultRenderer(lipgloss.NewRenderer(out))

		return in, out, func() {
			for _, c := range closers {
				c()
			}
		}
	}

	return os.Stdin, os.Stdout, func() {}
}

// Run launches the pager for opts.File. With debug set, logs go to
// DebugLogFile; otherwise they are discarded so they never draw over the UI.
func Run(opts Options, debug bool) error {
	if debug {
		f, err := tea.LogToFile(DebugLogFile, "mdview")
		if err != nil {
			return fmt.Errorf("could not open debug log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	if opts.File == nil {
		opts.File = Welcome()
	}

	ttyIn, ttyOut, cleanup := getTTY()
	defer cleanup()

	// Styles are refreshed after getTTY sets up the renderer
	if opts.Renderer != nil {
		opts.Renderer.Styles.LoadFromConfig()
	}

	m := newModel(opts)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithOutput(ttyOut),
		tea.WithInput(ttyIn),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("pager error: %w", err)
	}
	return nil
}
