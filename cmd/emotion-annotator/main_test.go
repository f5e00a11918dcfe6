package main

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"gocv.io/x/gocv"

	"github.com/ngv2003/emotion-ai/internal/utils"
	"github.com/ngv2003/emotion-ai/pkg/annotate"
	"github.com/ngv2003/emotion-ai/pkg/types"
)

func TestParseBBox(t *testing.T) {
	bbox, err := parseBBox("10, 20, 110, 220")
	if err != nil {
		t.Fatalf("parseBBox failed: %v", err)
	}

	want := types.NewBoundingBox(10, 20, 110, 220)
	if bbox != want {
		t.Errorf("Expected %v, got %v", want, bbox)
	}
}

func TestParseBBoxInvalid(t *testing.T) {
	invalid := []string{
		"10,20,110",
		"10,20,110,220,330",
		"a,b,c,d",
		"110,20,10,220",
		"",
	}

	for _, input := range invalid {
		if _, err := parseBBox(input); err == nil {
			t.Errorf("Expected error for %q, got none", input)
		}
	}
}

func TestAnnotateImageCreatesOutputDir(t *testing.T) {
	dir := t.TempDir()

	// Write a source image to annotate.
	in := filepath.Join(dir, "in.png")
	frame := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
	gocv.Rectangle(&frame, image.Rect(0, 0, 640, 480), color.RGBA{R: 96, G: 96, B: 96, A: 255}, -1)
	defer frame.Close()
	if ok := gocv.IMWrite(in, frame); !ok {
		t.Fatal("Failed to write source image")
	}

	// Both outputs land in a directory that does not exist yet.
	out := filepath.Join(dir, "nested", "annotated.png")
	opts := options{
		bbox:    types.NewBoundingBox(100, 100, 300, 300),
		hasBBox: true,
		crop:    true,
		cropOut: filepath.Join(filepath.Dir(out), "face.png"),
		emoji:   gocv.NewMat(),
	}
	defer opts.emoji.Close()

	if err := annotateImage(annotate.New(), in, out, opts); err != nil {
		t.Fatalf("annotateImage failed: %v", err)
	}

	if !utils.FileExists(out) {
		t.Error("Expected annotated image to be written")
	}
	if !utils.FileExists(opts.cropOut) {
		t.Error("Expected facial crop to be written")
	}
}
