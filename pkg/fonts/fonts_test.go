package fonts

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	lib := Default()
	if lib == nil {
		t.Fatal("Default() returned nil")
	}

	// The default library is a process-wide singleton.
	if Default() != lib {
		t.Error("Expected Default() to return the same instance")
	}
}

func TestFaces(t *testing.T) {
	lib := Default()

	if lib.WarningFace() == nil {
		t.Error("WarningFace() returned nil")
	}
	if lib.AnnotationFace() == nil {
		t.Error("AnnotationFace() returned nil")
	}
	if lib.LabelFace() == nil {
		t.Error("LabelFace() returned nil")
	}
}

func TestLoadMissingDir(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("Expected error for missing font directory")
	}
}

func TestLoadFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-a-font.ttf")
	if err := os.WriteFile(path, []byte("definitely not a truetype font"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFile(path); err == nil {
		t.Error("Expected error for invalid font data")
	}
}
