// SPDX-License-Identifier: EPL-2.0

package audbridge

import "errors"

var (
	// ErrNilProcessor is returned when no dsp.DSP is given.
	ErrNilProcessor = errors.New("nil processor")

	// ErrBlockSize is returned when a host buffer does not hold exactly one
	// block of frames.
	ErrBlockSize = errors.New("host buffer does not match the block size")

	// ErrInvalidChannels is returned when a source or sink reports no channels.
	ErrInvalidChannels = errors.New("source and sink need at least one channel")

	// ErrSampleRateMismatch is returned when the sink runs at a different
	// rate than the processing chain.
	ErrSampleRateMismatch = errors.New("sink sample rate differs from processing rate")
)
