package types

import (
	"fmt"
	"image"
	"strconv"
	"strings"
)

// BoundingBox is an axis-aligned rectangle in pixel coordinates with
// (X1,Y1) the top-left and (X2,Y2) the bottom-right corner. Detectors
// are expected to produce X1 < X2 and Y1 < Y2; the box is not normalized.
type BoundingBox struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// NewBoundingBox creates a bounding box from the four corner coordinates.
func NewBoundingBox(x1, y1, x2, y2 int) BoundingBox {
	return BoundingBox{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// Rect converts the box to the image.Rectangle representation used by
// the drawing and face-geometry layers.
func (b BoundingBox) Rect() image.Rectangle {
	return image.Rect(b.X1, b.Y1, b.X2, b.Y2)
}

// Width returns the horizontal extent of the box.
func (b BoundingBox) Width() int {
	return b.X2 - b.X1
}

// Height returns the vertical extent of the box.
func (b BoundingBox) Height() int {
	return b.Y2 - b.Y1
}

// Empty reports whether the box encloses no pixels.
func (b BoundingBox) Empty() bool {
	return b.X2 <= b.X1 || b.Y2 <= b.Y1
}

// EmotionScore pairs an emotion label with its prediction confidence
// as an integer percentage in [0,100].
type EmotionScore struct {
	Label      string `json:"label"`
	Confidence int    `json:"confidence"`
}

// EmotionStats is an ordered list of emotion scores. The slice order is
// the display order: entry i is rendered in vertical slot i of the
// on-screen bar chart.
type EmotionStats []EmotionScore

// ParseEmotionStats parses a "label=confidence,label=confidence" string
// into ordered emotion stats, e.g. "happy=80,sad=20".
func ParseEmotionStats(s string) (EmotionStats, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	var stats EmotionStats
	for _, pair := range strings.Split(s, ",") {
		parts := strings.SplitN(pair, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid emotion entry %q (want label=confidence)", pair)
		}

		label := strings.TrimSpace(parts[0])
		if label == "" {
			return nil, fmt.Errorf("invalid emotion entry %q: empty label", pair)
		}

		confidence, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, fmt.Errorf("invalid confidence in %q: %w", pair, err)
		}
		if confidence < 0 || confidence > 100 {
			return nil, fmt.Errorf("confidence in %q out of range [0,100]", pair)
		}

		stats = append(stats, EmotionScore{Label: label, Confidence: confidence})
	}

	return stats, nil
}
