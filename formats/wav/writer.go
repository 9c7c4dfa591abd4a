// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
	"github.com/ik5/audbridge/audio"
	"github.com/ik5/audbridge/utils"
)

// Writer encodes interleaved samples as integer PCM WAV. Sizes in the RIFF
// header are patched on Close, so the destination must be seekable.
type Writer struct {
	enc      *gowav.Encoder
	rate     int
	channels int
	bitDepth int
	ints     *goaudio.IntBuffer
	started  bool
	closed   bool
}

var _ audio.Sink = (*Writer)(nil)

// NewWriter returns a Writer producing a PCM WAV of the given shape on w.
func NewWriter(w io.WriteSeeker, sampleRate, channels, bitDepth int) (*Writer, error) {
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if channels < 1 {
		return nil, ErrInvalidChannels
	}
	if !supportedBitDepth(bitDepth) {
		return nil, ErrUnsupportedBitDepth
	}

	return &Writer{
		enc:      gowav.NewEncoder(w, sampleRate, bitDepth, channels, formatPCM),
		rate:     sampleRate,
		channels: channels,
		bitDepth: bitDepth,
		ints: &goaudio.IntBuffer{
			Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
			SourceBitDepth: bitDepth,
		},
	}, nil
}

func (w *Writer) SampleRate() int { return w.rate }
func (w *Writer) Channels() int   { return w.channels }

// WriteSamples encodes src, which must hold whole frames.
func (w *Writer) WriteSamples(src []audio.Sample) (int, error) {
	if w.closed {
		return 0, ErrWriterClosed
	}
	if len(src)%w.channels != 0 {
		return 0, ErrPartialFrame
	}

	if cap(w.ints.Data) < len(src) {
		w.ints.Data = make([]int, len(src))
	}
	w.ints.Data = w.ints.Data[:len(src)]
	for i, v := range src {
		w.ints.Data[i] = utils.SampleToInt(v, w.bitDepth)
	}

	if err := w.enc.Write(w.ints); err != nil {
		return 0, fmt.Errorf("encoding wav: %w", err)
	}
	w.started = true

	return len(src), nil
}

// Close writes the final header sizes. It does not close the underlying
// writer.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	if !w.started {
		// emit the headers of an empty file
		w.ints.Data = w.ints.Data[:0]
		if err := w.enc.Write(w.ints); err != nil {
			return fmt.Errorf("encoding wav: %w", err)
		}
	}
	if err := w.enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav: %w", err)
	}
	return nil
}
