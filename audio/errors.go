// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")

	// ErrNegativeSize is returned when a frame or channel count is below zero.
	ErrNegativeSize = errors.New("frame and channel counts must not be negative")

	// ErrFrameOverflow is returned when a call asks for more frames than the
	// buffers were allocated with.
	ErrFrameOverflow = errors.New("frame count exceeds allocated capacity")

	// ErrShortBuffer is returned when an interleaved buffer holds fewer
	// samples than length*channels.
	ErrShortBuffer = errors.New("interleaved buffer shorter than length*channels")

	// ErrSizeOverflow is returned when frames*channels does not fit in an int.
	ErrSizeOverflow = errors.New("frame and channel counts overflow buffer size")
)
