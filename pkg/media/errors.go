package media

import "errors"

// Sentinel errors returned (wrapped) by the media helpers. Callers should
// test for them with errors.Is; the wrapping error carries the context of
// the failing operation.
var (
	// ErrInvalidImage indicates an image argument was nil, empty or failed
	// a basic validity check.
	ErrInvalidImage = errors.New("invalid image")

	// ErrInvalidBoundingBox indicates a bounding box argument was missing
	// or encloses no pixels.
	ErrInvalidBoundingBox = errors.New("invalid bounding box")
)
