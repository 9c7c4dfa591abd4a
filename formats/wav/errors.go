// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile          = errors.New("not a WAV file")
	ErrUnsupportedFormat   = errors.New("only integer PCM WAV is supported")
	ErrUnsupportedBitDepth = errors.New("only 16, 24 and 32-bit PCM is supported")
	ErrInvalidChannels     = errors.New("channel count must be at least 1")
	ErrInvalidSampleRate   = errors.New("sample rate must be positive")
	ErrPartialFrame        = errors.New("sample count must be a multiple of channels")
	ErrWriterClosed        = errors.New("write to closed WAV writer")
)
