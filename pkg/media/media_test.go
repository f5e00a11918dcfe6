package media

import (
	"errors"
	"testing"

	"gocv.io/x/gocv"

	"github.com/ngv2003/emotion-ai/pkg/types"
)

// createTestFrame creates a BGR test frame filled with a fixed color.
func createTestFrame(rows, cols int, b, g, r uint8) gocv.Mat {
	frame := gocv.NewMatWithSize(rows, cols, gocv.MatTypeCV8UC3)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			frame.SetUCharAt(y, x*3+0, b)
			frame.SetUCharAt(y, x*3+1, g)
			frame.SetUCharAt(y, x*3+2, r)
		}
	}
	return frame
}

func TestConvertToRGB(t *testing.T) {
	frame := createTestFrame(10, 10, 10, 20, 30)
	defer frame.Close()

	rgb, err := ConvertToRGB(frame)
	if err != nil {
		t.Fatalf("ConvertToRGB failed: %v", err)
	}
	defer rgb.Close()

	// Channel order must flip: BGR (10,20,30) becomes RGB (30,20,10).
	if got := rgb.GetUCharAt(5, 5*3+0); got != 30 {
		t.Errorf("Expected channel 0 = 30, got %d", got)
	}
	if got := rgb.GetUCharAt(5, 5*3+1); got != 20 {
		t.Errorf("Expected channel 1 = 20, got %d", got)
	}
	if got := rgb.GetUCharAt(5, 5*3+2); got != 10 {
		t.Errorf("Expected channel 2 = 10, got %d", got)
	}

	// Input must be untouched.
	if got := frame.GetUCharAt(5, 5*3+0); got != 10 {
		t.Errorf("Expected input unchanged, channel 0 = %d", got)
	}
}

func TestConvertRoundTrip(t *testing.T) {
	frame := createTestFrame(8, 8, 1, 2, 3)
	defer frame.Close()

	rgb, err := ConvertToRGB(frame)
	if err != nil {
		t.Fatalf("ConvertToRGB failed: %v", err)
	}
	defer rgb.Close()

	back, err := ConvertToBGR(rgb)
	if err != nil {
		t.Fatalf("ConvertToBGR failed: %v", err)
	}
	defer back.Close()

	for c := 0; c < 3; c++ {
		want := frame.GetUCharAt(3, 3*3+c)
		got := back.GetUCharAt(3, 3*3+c)
		if got != want {
			t.Errorf("Expected channel %d = %d after round trip, got %d", c, want, got)
		}
	}
}

func TestConvertToRGBEmpty(t *testing.T) {
	empty := gocv.NewMat()
	defer empty.Close()

	_, err := ConvertToRGB(empty)
	if !errors.Is(err, ErrInvalidImage) {
		t.Errorf("Expected ErrInvalidImage, got %v", err)
	}
}

func TestLoadImageMissingFile(t *testing.T) {
	_, err := LoadImage("testdata/does-not-exist.jpg", ModeBGR)
	if !errors.Is(err, ErrInvalidImage) {
		t.Errorf("Expected ErrInvalidImage for missing file, got %v", err)
	}
}

func TestFacialRegion(t *testing.T) {
	frame := createTestFrame(100, 200, 50, 60, 70)
	defer frame.Close()

	bbox := types.NewBoundingBox(20, 10, 80, 90)
	face, err := FacialRegion(frame, bbox)
	if err != nil {
		t.Fatalf("FacialRegion failed: %v", err)
	}
	defer face.Close()

	if face.Cols() != 60 {
		t.Errorf("Expected width 60, got %d", face.Cols())
	}
	if face.Rows() != 80 {
		t.Errorf("Expected height 80, got %d", face.Rows())
	}
	if face.Channels() != 3 {
		t.Errorf("Expected 3 channels, got %d", face.Channels())
	}

	if got := face.GetUCharAt(0, 0); got != 50 {
		t.Errorf("Expected region to share frame content, channel 0 = %d", got)
	}
}

func TestFacialRegionErrors(t *testing.T) {
	empty := gocv.NewMat()
	defer empty.Close()

	if _, err := FacialRegion(empty, types.NewBoundingBox(0, 0, 10, 10)); !errors.Is(err, ErrInvalidImage) {
		t.Errorf("Expected ErrInvalidImage for empty frame, got %v", err)
	}

	frame := createTestFrame(50, 50, 0, 0, 0)
	defer frame.Close()

	if _, err := FacialRegion(frame, types.BoundingBox{}); !errors.Is(err, ErrInvalidBoundingBox) {
		t.Errorf("Expected ErrInvalidBoundingBox for empty box, got %v", err)
	}
}

func TestNewVideoWriterNilStream(t *testing.T) {
	if _, err := NewVideoWriter(nil, ""); err == nil {
		t.Error("Expected error for nil input stream")
	}
}

func BenchmarkConvertToRGB(b *testing.B) {
	frame := createTestFrame(480, 640, 10, 20, 30)
	defer frame.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rgb, err := ConvertToRGB(frame)
		if err != nil {
			b.Fatal(err)
		}
		rgb.Close()
	}
}
