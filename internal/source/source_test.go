package source

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
		want    string
	}{
		{"plain utf8", []byte("# hi\n"), "# hi\n"},
		{"utf8 bom", []byte{0xEF, 0xBB, 0xBF, '#', ' ', 'x'}, "# x"},
		{"utf16 le", []byte{0xFF, 0xFE, 0x41, 0x00, 0x0D, 0x00, 0x0A, 0x00}, "A\r\n"},
		{"utf16 be", []byte{0xFE, 0xFF, 0x00, 0x2A, 0x00, 0x78, 0x00, 0x2A}, "*x*"},
		{"empty", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Decode(tt.content); got != tt.want {
				t.Errorf("Decode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsText(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		content []byte
		want    bool
	}{
		{"markdown", "a.md", []byte("# title"), true},
		{"empty", "a.md", nil, true},
		{"nul byte", "a.md", []byte{'a', 0x00, 'b'}, false},
		{"binary extension", "a.png", []byte("# title"), false},
		{"utf16 with nul bytes", "a.md", []byte{0xFF, 0xFE, 0x41, 0x00}, true},
		{"latin1 text", "a.md", []byte{'c', 'a', 'f', 0xE9}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsText(tt.path, tt.content); got != tt.want {
				t.Errorf("IsText(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestNormalizeNewlines(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"a\r\nb\r\n", "a\nb\n"},
		{"a\rb", "a\nb"},
		{"a\nb", "a\nb"},
	}
	for _, tt := range tests {
		if got := NormalizeNewlines(tt.in); got != tt.want {
			t.Errorf("NormalizeNewlines(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.md")
	if err := os.WriteFile(path, []byte("# Title\r\n\r\nbody\r\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if f.Text != "# Title\n\nbody\n" {
		t.Errorf("Text = %q", f.Text)
	}
	if f.Name != "doc.md" {
		t.Errorf("Name = %q", f.Name)
	}
	if f.Size != 17 {
		t.Errorf("Size = %d, want 17", f.Size)
	}
	if got, want := f.Status(), "doc.md  |  4 lines  |  17 bytes"; got != want {
		t.Errorf("Status() = %q, want %q", got, want)
	}

	if err := os.WriteFile(path, []byte("changed\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	reloaded, err := f.Reload()
	if err != nil {
		t.Fatalf("Reload() error = %v", err)
	}
	if reloaded.Text != "changed\n" {
		t.Errorf("reloaded Text = %q", reloaded.Text)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.md")); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := Load(dir); err == nil {
		t.Error("expected error for directory")
	}

	bin := filepath.Join(dir, "blob.md")
	if err := os.WriteFile(bin, []byte{0x00, 0x01, 0x02}, 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bin); !errors.Is(err, ErrNotText) {
		t.Errorf("Load(binary) error = %v, want ErrNotText", err)
	}
}

func TestHumanSize(t *testing.T) {
	tests := []struct {
		size int64
		want string
	}{
		{0, "0 bytes"},
		{1023, "1023 bytes"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
	}
	for _, tt := range tests {
		if got := HumanSize(tt.size); got != tt.want {
			t.Errorf("HumanSize(%d) = %q, want %q", tt.size, got, tt.want)
		}
	}
}

func TestFromStringReloadIsNoop(t *testing.T) {
	f := FromString("welcome", "# hi\r\n")
	if f.Text != "# hi\n" {
		t.Fatalf("Text = %q", f.Text)
	}
	same, err := f.Reload()
	if err != nil || same != f {
		t.Fatalf("Reload() = %v, %v; want same file", same, err)
	}
}
