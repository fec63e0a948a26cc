package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func withTempHome(t *testing.T) string {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	home := t.TempDir()
	t.Setenv("HOME", home)
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() error = %v", err)
	}
	if err := os.Chdir(home); err != nil {
		t.Fatalf("Chdir() error = %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return home
}

func TestInitDefaults(t *testing.T) {
	withTempHome(t)

	if err := Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if got := GetOutput(); got != "auto" {
		t.Errorf("GetOutput() = %q, want auto", got)
	}
	if !GetWrap() {
		t.Error("GetWrap() = false, want true")
	}
	if got := GetTabWidth(); got != 4 {
		t.Errorf("GetTabWidth() = %d, want 4", got)
	}
	if got := GetMaxInlineDepth(); got != 64 {
		t.Errorf("GetMaxInlineDepth() = %d, want 64", got)
	}
	if C.ColorHeading != "36" {
		t.Errorf("C.ColorHeading = %q, want 36", C.ColorHeading)
	}
	if ConfigFile() != "" {
		t.Errorf("ConfigFile() = %q, want empty", ConfigFile())
	}
}

func TestInitReadsConfigFile(t *testing.T) {
	home := withTempHome(t)
	dir := filepath.Join(home, ".config", "mdview")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	yaml := "tab_width: 8\nwrap: false\ncolor_heading: \"#ff00ff\"\n"
	if err := os.WriteFile(filepath.Join(dir, "mdview.yaml"), []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if got := GetTabWidth(); got != 8 {
		t.Errorf("GetTabWidth() = %d, want 8", got)
	}
	if GetWrap() {
		t.Error("GetWrap() = true, want false")
	}
	if got := GetColorHeading(); got != "#ff00ff" {
		t.Errorf("GetColorHeading() = %q", got)
	}
}

func TestInitEnvOverride(t *testing.T) {
	withTempHome(t)
	t.Setenv("MDVIEW_OUTPUT", "print")

	if err := Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if got := GetOutput(); got != "print" {
		t.Errorf("GetOutput() = %q, want print", got)
	}
}

func TestInitMalformedFileKeepsDefaults(t *testing.T) {
	home := withTempHome(t)
	if err := os.WriteFile(filepath.Join(home, "mdview.yaml"), []byte("tab_width: [\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := Init(); err == nil {
		t.Error("expected error for malformed config")
	}
	if got := GetTabWidth(); got != 4 {
		t.Errorf("GetTabWidth() = %d, want default 4", got)
	}
}

func TestSetters(t *testing.T) {
	withTempHome(t)
	_ = Init()

	SetOutput("segments")
	SetWrap(false)
	if GetOutput() != "segments" || C.Output != "segments" {
		t.Errorf("SetOutput not applied: %q / %q", GetOutput(), C.Output)
	}
	if GetWrap() || C.Wrap {
		t.Error("SetWrap(false) not applied")
	}
}
