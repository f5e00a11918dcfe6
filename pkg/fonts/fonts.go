// Package fonts manages the process-wide truetype resources used for
// image annotation. A Library is immutable once constructed and safe for
// concurrent use; faces are derived per drawing call because font faces
// carry per-use glyph caches.
package fonts

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultFontFile is the font file looked up inside a font directory.
const DefaultFontFile = "Ubuntu-R.ttf"

// Point sizes for the three annotation roles.
const (
	WarningSize    = 20
	AnnotationSize = 16
	LabelSize      = 16
)

// Library holds the parsed annotation font and the point sizes for each
// annotation role.
type Library struct {
	font *truetype.Font

	warningSize    float64
	annotationSize float64
	labelSize      float64
}

var (
	defaultOnce sync.Once
	defaultLib  *Library
)

// Default returns a Library backed by the embedded Go Regular font. It
// never fails and is initialized once on first use.
func Default() *Library {
	defaultOnce.Do(func() {
		f, err := truetype.Parse(goregular.TTF)
		if err != nil {
			// The embedded font is a compile-time constant; a parse
			// failure means a corrupted toolchain.
			panic(fmt.Sprintf("fonts: parsing embedded font: %v", err))
		}
		defaultLib = newLibrary(f)
	})
	return defaultLib
}

// Load reads the annotation font from dir (expects DefaultFontFile) and
// builds a Library from it. Call once during application startup.
func Load(dir string) (*Library, error) {
	return LoadFile(filepath.Join(dir, DefaultFontFile))
}

// LoadFile builds a Library from an explicit truetype font file.
func LoadFile(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font file: %w", err)
	}

	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %q: %w", path, err)
	}

	return newLibrary(f), nil
}

func newLibrary(f *truetype.Font) *Library {
	return &Library{
		font:           f,
		warningSize:    WarningSize,
		annotationSize: AnnotationSize,
		labelSize:      LabelSize,
	}
}

// WarningFace returns a face sized for warning banners.
func (l *Library) WarningFace() font.Face {
	return l.face(l.warningSize)
}

// AnnotationFace returns a face sized for emotion stat annotations.
func (l *Library) AnnotationFace() font.Face {
	return l.face(l.annotationSize)
}

// LabelFace returns a face sized for bounding box labels.
func (l *Library) LabelFace() font.Face {
	return l.face(l.labelSize)
}

func (l *Library) face(size float64) font.Face {
	return truetype.NewFace(l.font, &truetype.Options{Size: size})
}
