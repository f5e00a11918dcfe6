package annotate

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"gocv.io/x/gocv"
	"golang.org/x/image/font"

	"github.com/ngv2003/emotion-ai/pkg/media"
	"github.com/ngv2003/emotion-ai/pkg/types"
)

// BoundingBoxWithLabel draws a bounding box extended 20px at the bottom
// with a filled label strip below the face and the label text rendered
// into the strip. Returns a new buffer; the input frame is not modified.
func (a *Annotator) BoundingBoxWithLabel(img gocv.Mat, label string, bbox types.BoundingBox, c color.RGBA) (gocv.Mat, error) {
	if img.Empty() {
		return gocv.NewMat(), fmt.Errorf("bounding box label: %w", media.ErrInvalidImage)
	}
	if bbox.Empty() {
		return gocv.NewMat(), fmt.Errorf("bounding box label: %w", media.ErrInvalidBoundingBox)
	}

	out := img.Clone()
	defer out.Close()

	// Stretch the box over the label strip so it covers the face and the
	// name plate as one outline.
	box := image.Rect(bbox.X1, bbox.Y1, bbox.X2, bbox.Y2+labelStripHeight)
	gocv.Rectangle(&out, box, c, boxThickness)

	strip := image.Rect(bbox.X1, bbox.Y2, bbox.X2, bbox.Y2+labelStripHeight)
	gocv.Rectangle(&out, strip, c, -1)

	dc, err := newTextContext(out)
	if err != nil {
		return gocv.NewMat(), err
	}

	drawString(dc, a.fonts.LabelFace(), label,
		image.Pt(bbox.X1+labelTextInset, bbox.Y2+2), a.config.LabelTextColor)

	return renderTextContext(dc)
}

// Warning renders a warning banner near the bottom of the frame: the
// warning text with a 1px black drop shadow, and a fixed note line below
// explaining that the emotion chart covers a single person. Returns a
// new buffer; the input frame is not modified.
func (a *Annotator) Warning(img gocv.Mat, warningText string) (gocv.Mat, error) {
	if img.Empty() {
		return gocv.NewMat(), fmt.Errorf("warning: %w", media.ErrInvalidImage)
	}

	dc, err := newTextContext(img)
	if err != nil {
		return gocv.NewMat(), err
	}

	face := a.fonts.WarningFace()
	p := image.Pt(warningX, img.Rows()-warningBottomOffset)

	drawString(dc, face, warningText, p.Add(image.Pt(1, 1)), color.RGBA{A: 255})
	drawString(dc, face, warningText, p, a.config.WarningColor)
	drawString(dc, face, MultiPersonNote, p.Add(image.Pt(0, warningNoteOffset)), a.config.WarningNoteColor)

	return renderTextContext(dc)
}

// EmotionStats renders a horizontal bar chart of emotion confidences in
// the top-left corner of the frame. Entry i of stats occupies vertical
// slot i: a filled bar starting at x=100 whose width in pixels is the
// confidence, the label at x=10 and the percentage just right of the
// bar end. Returns a new buffer; the input frame is not modified.
func (a *Annotator) EmotionStats(img gocv.Mat, stats types.EmotionStats) (gocv.Mat, error) {
	if img.Empty() {
		return gocv.NewMat(), fmt.Errorf("emotion stats: %w", media.ErrInvalidImage)
	}

	out := img.Clone()
	defer out.Close()

	// Bars first, all text in a second pass so the chart renders through
	// a single text context.
	for i, s := range stats {
		bar := image.Rect(barX, i*rowHeight+rowTop, barX+s.Confidence, i*rowHeight+rowTop+barHeight)
		gocv.Rectangle(&out, bar, a.config.BarColor, -1)
	}

	dc, err := newTextContext(out)
	if err != nil {
		return gocv.NewMat(), err
	}

	face := a.fonts.AnnotationFace()
	for i, s := range stats {
		y := i*rowHeight + rowTop
		drawString(dc, face, s.Label, image.Pt(statLabelX, y), a.config.StatLabelColor)
		drawString(dc, face, fmt.Sprintf("%d%%", s.Confidence),
			image.Pt(barX+percentGap+s.Confidence, y), a.config.BarColor)
	}

	return renderTextContext(dc)
}

// newTextContext copies a BGR frame into a drawing context for text
// rendering.
func newTextContext(img gocv.Mat) (*gg.Context, error) {
	src, err := img.ToImage()
	if err != nil {
		return nil, fmt.Errorf("failed to convert frame for text rendering: %w", err)
	}
	return gg.NewContextForImage(src), nil
}

// renderTextContext converts a drawing context back into a BGR frame.
func renderTextContext(dc *gg.Context) (gocv.Mat, error) {
	out, err := gocv.ImageToMatRGB(dc.Image())
	if err != nil {
		return gocv.NewMat(), fmt.Errorf("failed to convert rendered frame: %w", err)
	}
	return out, nil
}

// drawString writes text top-left anchored at p.
func drawString(dc *gg.Context, face font.Face, text string, p image.Point, c color.Color) {
	dc.SetFontFace(face)
	dc.SetColor(c)
	dc.DrawStringWrapped(text, float64(p.X), float64(p.Y), 0, 0, float64(dc.Width()), 1, gg.AlignLeft)
}
