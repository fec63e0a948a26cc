package source

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotText is returned when a file looks binary.
var ErrNotText = errors.New("not a text file")

// File is a loaded Markdown document ready for parsing.
type File struct {
	Path string // Absolute path, empty for in-memory documents
	Name string // Base name shown in titles and the status line
	Text string // Decoded UTF-8 content with "\n" line endings
	Size int64  // Size on disk in bytes
}

// Load reads path, rejects directories and binary content, decodes BOM
// prefixed UTF-8/UTF-16 and normalizes line endings.
func Load(path string) (*File, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("error resolving path: %w", err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return nil, fmt.Errorf("could not open file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("could not open file: %s is a directory", absPath)
	}

	content, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("could not open file: %w", err)
	}

	if !IsText(absPath, content) {
		return nil, fmt.Errorf("error reading file %s: %w", filepath.Base(absPath), ErrNotText)
	}

	return &File{
		Path: absPath,
		Name: filepath.Base(absPath),
		Text: NormalizeNewlines(Decode(content)),
		Size: info.Size(),
	}, nil
}

// FromString wraps in-memory text, such as the welcome document.
func FromString(name, text string) *File {
	return &File{Name: name, Text: NormalizeNewlines(text), Size: int64(len(text))}
}

// Reload reads the file again from disk. In-memory documents are returned
// unchanged.
func (f *File) Reload() (*File, error) {
	if f.Path == "" {
		return f, nil
	}
	return Load(f.Path)
}

// LineCount counts lines the way the status line reports them: newlines + 1.
func (f *File) LineCount() int {
	return strings.Count(f.Text, "\n") + 1
}

// Status formats "name  |  N lines  |  size".
func (f *File) Status() string {
	return fmt.Sprintf("%s  |  %d lines  |  %s", f.Name, f.LineCount(), HumanSize(f.Size))
}

// HumanSize formats byte counts below 1 KiB as bytes and the rest as KB.
func HumanSize(size int64) string {
	if size < 1024 {
		return fmt.Sprintf("%d bytes", size)
	}
	return fmt.Sprintf("%.1f KB", float64(size)/1024.0)
}

// NormalizeNewlines converts CRLF and lone CR line endings to "\n".
func NormalizeNewlines(text string) string {
	if !strings.ContainsRune(text, '\r') {
		return text
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}
