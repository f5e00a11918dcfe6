package media

import (
	"fmt"

	"gocv.io/x/gocv"
)

// DefaultVideoPath is where annotated video lands when no output path is
// given.
const DefaultVideoPath = "data/output.mp4"

// defaultCodec is the fourcc tag used for output video encoding.
const defaultCodec = "mp4v"

// NewVideoWriter opens a video writer that matches the frame rate and
// frame dimensions of the given input stream, encoding with the mp4v
// codec. An empty path selects DefaultVideoPath. The caller owns the
// returned writer and must Close it to flush the file.
func NewVideoWriter(src *gocv.VideoCapture, path string) (*gocv.VideoWriter, error) {
	return NewVideoWriterWithCodec(src, path, defaultCodec)
}

// NewVideoWriterWithCodec is NewVideoWriter with an explicit fourcc codec
// tag, e.g. "mp4v" or "avc1".
func NewVideoWriterWithCodec(src *gocv.VideoCapture, path, codec string) (*gocv.VideoWriter, error) {
	if src == nil {
		return nil, fmt.Errorf("video writer: nil input stream")
	}
	if path == "" {
		path = DefaultVideoPath
	}

	fps := src.Get(gocv.VideoCaptureFPS)
	width := int(src.Get(gocv.VideoCaptureFrameWidth))
	height := int(src.Get(gocv.VideoCaptureFrameHeight))

	writer, err := gocv.VideoWriterFile(path, codec, fps, width, height, true)
	if err != nil {
		return nil, fmt.Errorf("failed to open video writer %q: %w", path, err)
	}
	return writer, nil
}
