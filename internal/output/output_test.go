package output

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/gubarz/mdview/internal/parser"
)

type fakeClipboard struct {
	copied string
	err    error
}

func (f *fakeClipboard) Copy(text string) error {
	f.copied = text
	return f.err
}

func TestResolveMode(t *testing.T) {
	tests := []struct {
		name     string
		mode     string
		terminal bool
		want     Mode
		wantErr  bool
	}{
		{"auto on terminal", "auto", true, ModeView, false},
		{"auto piped", "auto", false, ModePrint, false},
		{"empty is auto", "", true, ModeView, false},
		{"explicit print", "print", true, ModePrint, false},
		{"segments", "segments", false, ModeSegments, false},
		{"copy", "copy", false, ModeCopy, false},
		{"view piped stays view", "view", false, ModeView, false},
		{"unknown", "exec", true, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveMode(tt.mode, tt.terminal)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ResolveMode() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ResolveMode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWriteCopy(t *testing.T) {
	var buf bytes.Buffer
	clip := &fakeClipboard{}
	w := NewWriter(&buf, nil).WithClipboard(clip)

	if err := w.Write(ModeCopy, parser.Parse("# Hi\n**a** b\n")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if clip.copied != "Hi\na b\n" {
		t.Errorf("copied = %q", clip.copied)
	}
	if buf.Len() != 0 {
		t.Errorf("copy mode should not print, got %q", buf.String())
	}
}

func TestWriteCopyError(t *testing.T) {
	boom := errors.New("no display")
	w := NewWriter(&bytes.Buffer{}, nil).WithClipboard(&fakeClipboard{err: boom})
	if err := w.Write(ModeCopy, parser.Parse("x\n")); !errors.Is(err, boom) {
		t.Errorf("Write() error = %v, want %v", err, boom)
	}
}

func TestWriteSegments(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, nil)
	if err := w.Write(ModeSegments, parser.Parse("# T\n*i*\n")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	want := "\"T\\n\"\t[h1]\n" +
		"\"i\"\t[normal italic]\n" +
		"\"\\n\"\t[normal]\n"
	if buf.String() != want {
		t.Errorf("segments output = %q, want %q", buf.String(), want)
	}
}

func TestWritePrint(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, nil).WithWidth(0)
	if err := w.Write(ModePrint, parser.Parse("# Title\n- item\n\n---\n")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	want := "Title\n* item\n\n" + strings.Repeat("-", 40) + "\n"
	if got := ansi.Strip(buf.String()); got != want {
		t.Errorf("print output = %q, want %q", got, want)
	}
}

func TestWritePrintEmptyDocument(t *testing.T) {
	var buf bytes.Buffer
	if err := NewWriter(&buf, nil).Write(ModePrint, parser.Parse("")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("empty document printed %q", buf.String())
	}
}

func TestWriteRejectsView(t *testing.T) {
	if err := NewWriter(&bytes.Buffer{}, nil).Write(ModeView, nil); err == nil {
		t.Error("view mode should not be writable")
	}
}
