package media

import (
	"fmt"
	"image"
	"os"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"gocv.io/x/gocv"
	_ "golang.org/x/image/webp"
)

// EmojiSize is the square edge length every emoji is normalized to
// before compositing.
const EmojiSize = 120

// LoadEmoji reads an emoji image with an alpha channel from disk and
// normalizes it to an EmojiSize×EmojiSize 4-channel BGRA Mat ready for
// overlay compositing. PNG and WebP sources are supported; images
// without an alpha channel get a fully opaque one.
func LoadEmoji(path string) (gocv.Mat, error) {
	img, err := decodeWithAlpha(path)
	if err != nil {
		return gocv.NewMat(), fmt.Errorf("failed to load emoji %q: %w", path, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != EmojiSize || bounds.Dy() != EmojiSize {
		img = imaging.Resize(img, EmojiSize, EmojiSize, imaging.Lanczos)
	}

	rgba, err := gocv.ImageToMatRGBA(img)
	if err != nil {
		return gocv.NewMat(), fmt.Errorf("failed to convert emoji %q: %w", path, err)
	}

	// Match the BGR channel order of decoded video frames.
	defer rgba.Close()
	bgra := gocv.NewMat()
	gocv.CvtColor(rgba, &bgra, gocv.ColorBGRAToRGBA)
	return bgra, nil
}

// decodeWithAlpha decodes an image preserving transparency, trying the
// registered decoders first and falling back to an explicit WebP decode.
func decodeWithAlpha(path string) (image.Image, error) {
	if img, err := imaging.Open(path); err == nil {
		return img, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if strings.HasSuffix(strings.ToLower(path), ".webp") {
		if img, err := webp.Decode(f); err == nil {
			return img, nil
		}
		if _, err := f.Seek(0, 0); err != nil {
			return nil, err
		}
	}

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return img, nil
}
