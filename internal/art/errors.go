package art

import "errors"

var (
	// ErrUnopenableSource marks a movie that cannot be opened or probed.
	// The build aborts and no image is produced.
	ErrUnopenableSource = errors.New("video source cannot be opened")

	// ErrInvalidStyle marks an unrecognized render style. Aborts the build
	// rather than silently producing wrong art.
	ErrInvalidStyle = errors.New("render style not set or unknown")

	// ErrLengthMismatch marks a strip whose length disagrees with the image
	// height. This is an internal algorithm defect, not an input problem.
	ErrLengthMismatch = errors.New("strip length does not match image height")

	// ErrEndOfStream signals that the source ran out of frames. It is normal
	// termination: sampling stops and the partially filled image is valid.
	ErrEndOfStream = errors.New("end of video stream")

	// ErrShortFrame marks a raw frame buffer of the wrong size.
	ErrShortFrame = errors.New("raw frame buffer does not match dimensions")
)
