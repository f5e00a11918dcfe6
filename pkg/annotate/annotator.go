// Package annotate renders emotion analysis results onto video frames:
// bounding boxes, name labels, warning banners, emotion bar charts and
// emoji overlays.
//
// Frames are 3-channel BGR gocv.Mat buffers as decoded by the media
// package. Colors are given as color.RGBA values; the conversion to the
// frame's channel order happens at draw time. BoundingBox and
// OverlayEmoji mutate the frame in place, every other method leaves its
// input untouched and returns a new buffer.
package annotate

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"github.com/ngv2003/emotion-ai/pkg/fonts"
	"github.com/ngv2003/emotion-ai/pkg/media"
	"github.com/ngv2003/emotion-ai/pkg/types"
)

// ErrRegionOutOfBounds indicates a fixed overlay region does not fit
// inside the target frame.
var ErrRegionOutOfBounds = errors.New("overlay region out of bounds")

// Default colors for the annotations that take an explicit color.
var (
	// DefaultBoxColor is the green used for plain bounding boxes.
	DefaultBoxColor = color.RGBA{G: 255, A: 255}
	// DefaultLabelBoxColor is the spring green used for labeled boxes.
	DefaultLabelBoxColor = color.RGBA{R: 131, G: 247, B: 84, A: 255}
)

// EmojiRect is the fixed frame region the emoji is composited into.
var EmojiRect = image.Rect(10, 350, 10+media.EmojiSize, 350+media.EmojiSize)

// MultiPersonNote is the second line rendered under every warning banner.
const MultiPersonNote = "Emotion chart will be shown for one person only!"

// Layout constants for the annotation overlays, in pixels.
const (
	boxThickness     = 2
	labelStripHeight = 20
	labelTextInset   = 20

	warningX            = 150
	warningBottomOffset = 100
	warningNoteOffset   = 31

	barX      = 100
	barHeight = 18
	rowHeight = 20
	rowTop    = 20

	statLabelX = 10
	percentGap = 5
)

// Config holds the colors used by the fixed-color annotations.
type Config struct {
	LabelTextColor   color.RGBA
	WarningColor     color.RGBA
	WarningNoteColor color.RGBA
	BarColor         color.RGBA
	StatLabelColor   color.RGBA
}

// DefaultConfig returns the stock annotation palette: black label text,
// red warnings with a white note line, blue bars and dark green stat
// labels.
func DefaultConfig() Config {
	return Config{
		LabelTextColor:   color.RGBA{A: 255},
		WarningColor:     color.RGBA{R: 242, G: 52, B: 12, A: 255},
		WarningNoteColor: color.RGBA{R: 255, G: 255, B: 255, A: 255},
		BarColor:         color.RGBA{B: 255, A: 255},
		StatLabelColor:   color.RGBA{R: 16, G: 109, B: 7, A: 255},
	}
}

// Annotator draws emotion annotations onto frames using a fixed font
// library and palette. It holds no mutable state and is safe for
// concurrent use on distinct frames.
type Annotator struct {
	fonts  *fonts.Library
	config Config
}

// New creates an Annotator with the embedded default font and palette.
func New() *Annotator {
	return NewWithConfig(fonts.Default(), DefaultConfig())
}

// NewWithConfig creates an Annotator with a custom font library and
// palette. A nil library falls back to the embedded default font.
func NewWithConfig(lib *fonts.Library, config Config) *Annotator {
	if lib == nil {
		lib = fonts.Default()
	}
	return &Annotator{fonts: lib, config: config}
}

// BoundingBox draws a 2-pixel rectangle outline at the box coordinates.
// The frame is mutated in place.
func (a *Annotator) BoundingBox(img *gocv.Mat, bbox types.BoundingBox, c color.RGBA) error {
	if img == nil || img.Empty() {
		return fmt.Errorf("bounding box: %w", media.ErrInvalidImage)
	}
	if bbox.Empty() {
		return fmt.Errorf("bounding box: %w", media.ErrInvalidBoundingBox)
	}

	gocv.Rectangle(img, bbox.Rect(), c, boxThickness)
	return nil
}

// OverlayEmoji alpha-composites a 120×120 4-channel emoji into the fixed
// EmojiRect region of the frame. The frame is mutated in place and must
// be large enough to contain EmojiRect.
func (a *Annotator) OverlayEmoji(img *gocv.Mat, emoji gocv.Mat) error {
	if img == nil || img.Empty() {
		return fmt.Errorf("overlay emoji: %w", media.ErrInvalidImage)
	}
	if emoji.Empty() || emoji.Rows() != media.EmojiSize || emoji.Cols() != media.EmojiSize || emoji.Channels() != 4 {
		return fmt.Errorf("overlay emoji: emoji must be %dx%d with alpha: %w",
			media.EmojiSize, media.EmojiSize, media.ErrInvalidImage)
	}
	if img.Cols() < EmojiRect.Max.X || img.Rows() < EmojiRect.Max.Y {
		return fmt.Errorf("overlay emoji: frame %dx%d cannot hold region %v: %w",
			img.Cols(), img.Rows(), EmojiRect, ErrRegionOutOfBounds)
	}

	channels := img.Channels()
	for y := 0; y < media.EmojiSize; y++ {
		ty := EmojiRect.Min.Y + y
		for x := 0; x < media.EmojiSize; x++ {
			tx := EmojiRect.Min.X + x
			alpha := float64(emoji.GetUCharAt(y, x*4+3)) / 255.0

			for c := 0; c < 3 && c < channels; c++ {
				fg := float64(emoji.GetUCharAt(y, x*4+c)) * alpha
				bg := float64(img.GetUCharAt(ty, tx*channels+c)) * (1.0 - alpha)
				img.SetUCharAt(ty, tx*channels+c, uint8(fg+bg))
			}
		}
	}

	return nil
}
