package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "present.txt")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if !FileExists(path) {
		t.Error("Expected FileExists true for existing file")
	}
	if FileExists(filepath.Join(dir, "absent.txt")) {
		t.Error("Expected FileExists false for missing file")
	}
	if FileExists(dir) {
		t.Error("Expected FileExists false for a directory")
	}
}

func TestDirExists(t *testing.T) {
	dir := t.TempDir()

	if !DirExists(dir) {
		t.Error("Expected DirExists true for existing directory")
	}
	if DirExists(filepath.Join(dir, "absent")) {
		t.Error("Expected DirExists false for missing directory")
	}
}

func TestExistsBadPathComponent(t *testing.T) {
	dir := t.TempDir()

	file := filepath.Join(dir, "plain.txt")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	// A file used as a directory component makes Stat fail with an error
	// that is not IsNotExist; both helpers must report false, not panic.
	bad := filepath.Join(file, "child")
	if FileExists(bad) {
		t.Error("Expected FileExists false for path through a file")
	}
	if DirExists(bad) {
		t.Error("Expected DirExists false for path through a file")
	}
}

func TestIsImageFile(t *testing.T) {
	for _, name := range []string{"a.jpg", "b.PNG", "c.webp"} {
		if !IsImageFile(name) {
			t.Errorf("Expected %s to be an image file", name)
		}
	}
	for _, name := range []string{"a.mp4", "b.txt", "noext"} {
		if IsImageFile(name) {
			t.Errorf("Expected %s not to be an image file", name)
		}
	}
}

func TestIsVideoFile(t *testing.T) {
	if !IsVideoFile("clip.mp4") {
		t.Error("Expected clip.mp4 to be a video file")
	}
	if IsVideoFile("photo.jpg") {
		t.Error("Expected photo.jpg not to be a video file")
	}
}

func TestGenerateOutputFilename(t *testing.T) {
	got := GenerateOutputFilename("in/photo.jpg", "out", "_annotated")
	want := filepath.Join("out", "photo_annotated.jpg")
	if got != want {
		t.Errorf("Expected %s, got %s", want, got)
	}
}
