// Package emotionai provides media annotation and I/O helpers for
// emotion analysis pipelines: drawing bounding boxes, overlaying labels,
// warnings, emotion bar charts and emoji onto video frames, extracting
// facial regions, and writing annotated video.
//
// The package does not detect faces or classify emotions. Those are
// external collaborators that hand it plain data: bounding boxes as
// pixel coordinates and emotion confidences as label/percentage pairs.
//
// Basic usage:
//
//	package main
//
//	import (
//		"log"
//
//		emotionai "github.com/ngv2003/emotion-ai"
//		"github.com/ngv2003/emotion-ai/pkg/annotate"
//		"github.com/ngv2003/emotion-ai/pkg/media"
//		"github.com/ngv2003/emotion-ai/pkg/types"
//	)
//
//	func main() {
//		ai := emotionai.New()
//
//		// Load a frame in BGR order, as a detector would see it.
//		frame, err := ai.LoadImage("photo.jpg", media.ModeBGR)
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer frame.Close()
//
//		// Draw the face box reported by the detector.
//		face := types.NewBoundingBox(120, 80, 280, 260)
//		if err := ai.DrawBoundingBox(&frame, face, annotate.DefaultBoxColor); err != nil {
//			log.Fatal(err)
//		}
//
//		// Overlay the classifier's confidence chart.
//		stats := types.EmotionStats{{Label: "happy", Confidence: 80}, {Label: "sad", Confidence: 20}}
//		annotated, err := ai.DrawEmotionStats(frame, stats)
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer annotated.Close()
//	}
//
// The library is organized in three layers:
//
// 1. media (pkg/media): frame loading, color conversion, facial region
// extraction, emoji loading and video writing.
//
// 2. annotate (pkg/annotate): drawing primitives that render analysis
// results onto frames.
//
// 3. fonts (pkg/fonts): process-wide immutable truetype resources used
// by the text annotations.
package emotionai

import (
	"image/color"

	"gocv.io/x/gocv"

	"github.com/ngv2003/emotion-ai/pkg/annotate"
	"github.com/ngv2003/emotion-ai/pkg/fonts"
	"github.com/ngv2003/emotion-ai/pkg/media"
	"github.com/ngv2003/emotion-ai/pkg/types"
)

// Version of the emotion-ai media library
const Version = "1.0.0"

// EmotionAI provides a high-level interface over the media and
// annotation helpers.
type EmotionAI struct {
	annotator *annotate.Annotator
}

// New creates an EmotionAI with the embedded default font and palette.
func New() *EmotionAI {
	return &EmotionAI{annotator: annotate.New()}
}

// NewWithConfig creates an EmotionAI with a custom font library and
// annotation palette.
func NewWithConfig(lib *fonts.Library, config annotate.Config) *EmotionAI {
	return &EmotionAI{annotator: annotate.NewWithConfig(lib, config)}
}

// LoadImage reads an image from disk in the requested channel order.
func (e *EmotionAI) LoadImage(path string, mode media.Mode) (gocv.Mat, error) {
	return media.LoadImage(path, mode)
}

// ConvertToRGB converts a BGR frame to RGB channel order.
func (e *EmotionAI) ConvertToRGB(img gocv.Mat) (gocv.Mat, error) {
	return media.ConvertToRGB(img)
}

// FacialRegion extracts the facial sub-region described by bbox as a
// view over the source frame.
func (e *EmotionAI) FacialRegion(img gocv.Mat, bbox types.BoundingBox) (gocv.Mat, error) {
	return media.FacialRegion(img, bbox)
}

// LoadEmoji reads an emoji image and normalizes it for overlay use.
func (e *EmotionAI) LoadEmoji(path string) (gocv.Mat, error) {
	return media.LoadEmoji(path)
}

// NewVideoWriter opens an mp4 writer matched to the input stream's frame
// rate and dimensions.
func (e *EmotionAI) NewVideoWriter(src *gocv.VideoCapture, path string) (*gocv.VideoWriter, error) {
	return media.NewVideoWriter(src, path)
}

// DrawBoundingBox draws a rectangle outline onto the frame in place.
func (e *EmotionAI) DrawBoundingBox(img *gocv.Mat, bbox types.BoundingBox, c color.RGBA) error {
	return e.annotator.BoundingBox(img, bbox, c)
}

// DrawBoundingBoxWithLabel draws a labeled bounding box and returns a
// new frame.
func (e *EmotionAI) DrawBoundingBoxWithLabel(img gocv.Mat, label string, bbox types.BoundingBox, c color.RGBA) (gocv.Mat, error) {
	return e.annotator.BoundingBoxWithLabel(img, label, bbox, c)
}

// DrawWarning renders a warning banner and returns a new frame.
func (e *EmotionAI) DrawWarning(img gocv.Mat, text string) (gocv.Mat, error) {
	return e.annotator.Warning(img, text)
}

// DrawEmotionStats renders the emotion confidence bar chart and returns
// a new frame.
func (e *EmotionAI) DrawEmotionStats(img gocv.Mat, stats types.EmotionStats) (gocv.Mat, error) {
	return e.annotator.EmotionStats(img, stats)
}

// OverlayEmoji composites an emoji into the frame's fixed emoji region
// in place.
func (e *EmotionAI) OverlayEmoji(img *gocv.Mat, emoji gocv.Mat) error {
	return e.annotator.OverlayEmoji(img, emoji)
}

// GetVersion returns the library version.
func GetVersion() string {
	return Version
}
