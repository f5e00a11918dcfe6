// Package media provides loading, conversion and extraction helpers for
// the image buffers flowing through an emotion analysis pipeline.
//
// Images are gocv.Mat buffers. Frames decoded from disk or a capture
// device are in OpenCV's native BGR channel order unless converted with
// ConvertToRGB. Every function documents whether it mutates its input
// or returns a new buffer.
package media

import (
	"fmt"

	"gocv.io/x/gocv"

	"github.com/ngv2003/emotion-ai/pkg/types"
)

// Mode selects the channel order an image is loaded in.
type Mode string

// Supported load modes.
const (
	ModeRGB Mode = "rgb"
	ModeBGR Mode = "bgr"
)

// ConvertToRGB converts a BGR image to RGB channel order.
// Returns a new buffer; the input is not modified.
func ConvertToRGB(img gocv.Mat) (gocv.Mat, error) {
	if img.Empty() {
		return gocv.NewMat(), fmt.Errorf("convert to rgb: %w", ErrInvalidImage)
	}

	out := gocv.NewMat()
	gocv.CvtColor(img, &out, gocv.ColorBGRToRGB)
	return out, nil
}

// ConvertToBGR converts an RGB image back to BGR channel order.
// Returns a new buffer; the input is not modified.
func ConvertToBGR(img gocv.Mat) (gocv.Mat, error) {
	if img.Empty() {
		return gocv.NewMat(), fmt.Errorf("convert to bgr: %w", ErrInvalidImage)
	}

	out := gocv.NewMat()
	// The R/B swap is its own inverse, so the BGR->RGB code applies.
	gocv.CvtColor(img, &out, gocv.ColorBGRToRGB)
	return out, nil
}

// LoadImage reads an image from disk. With ModeRGB the decoded BGR frame
// is converted to RGB before it is returned; ModeBGR returns the frame as
// decoded. The caller owns the returned Mat and must Close it.
func LoadImage(path string, mode Mode) (gocv.Mat, error) {
	img := gocv.IMRead(path, gocv.IMReadColor)
	if img.Empty() {
		return img, fmt.Errorf("failed to read image %q: %w", path, ErrInvalidImage)
	}

	if mode == ModeRGB {
		defer img.Close()
		return ConvertToRGB(img)
	}
	return img, nil
}

// FacialRegion extracts the facial sub-region described by bbox.
// The returned Mat is a view sharing the source buffer's backing store;
// Clone it if the source is closed or reused before the region is.
func FacialRegion(img gocv.Mat, bbox types.BoundingBox) (gocv.Mat, error) {
	if img.Empty() {
		return gocv.NewMat(), fmt.Errorf("facial region: %w", ErrInvalidImage)
	}
	if bbox.Empty() {
		return gocv.NewMat(), fmt.Errorf("facial region: %w", ErrInvalidBoundingBox)
	}

	return img.Region(bbox.Rect()), nil
}
