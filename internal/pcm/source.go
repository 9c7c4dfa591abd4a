// SPDX-License-Identifier: EPL-2.0

// Package pcm adapts go-audio integer PCM decoders to audio.Source.
package pcm

import (
	"bytes"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/audbridge/audio"
	"github.com/ik5/audbridge/utils"
)

// Reader is the part of the go-audio wav and aiff decoders used here.
type Reader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Source streams a Reader as normalized samples.
type Source struct {
	dec      Reader
	format   *goaudio.Format
	bitDepth int
	ints     *goaudio.IntBuffer
	done     bool
}

var _ audio.Source = (*Source)(nil)

// NewSource wraps dec, whose integers are bitDepth-bit signed PCM.
func NewSource(dec Reader, bitDepth int) *Source {
	return &Source{
		dec:      dec,
		format:   dec.Format(),
		bitDepth: bitDepth,
	}
}

func (s *Source) SampleRate() int { return s.format.SampleRate }
func (s *Source) Channels() int   { return s.format.NumChannels }
func (s *Source) Close() error    { return nil }

// ReadSamples fills dst with whole frames. len(dst) must hold at least one
// frame; any trailing partial frame space is left unused. A partial frame at
// the end of the data is dropped.
func (s *Source) ReadSamples(dst []audio.Sample) (int, error) {
	if s.done {
		return 0, io.EOF
	}
	if len(dst) == 0 {
		return 0, nil
	}

	want := len(dst) - len(dst)%s.format.NumChannels
	if want == 0 {
		return 0, audio.ErrInvalidDstSize
	}

	if s.ints == nil || cap(s.ints.Data) < want {
		s.ints = &goaudio.IntBuffer{
			Data:           make([]int, want),
			Format:         s.format,
			SourceBitDepth: s.bitDepth,
		}
	}
	s.ints.Data = s.ints.Data[:want]

	// PCMBuffer may return short without an error; keep reading until the
	// buffer is full or the decoder has nothing left.
	var (
		n   int
		err error
	)
	window := *s.ints
	for n < want {
		window.Data = s.ints.Data[n:want]
		var got int
		got, err = s.dec.PCMBuffer(&window)
		n += got
		if err != nil || got == 0 {
			break
		}
	}
	n -= n % s.format.NumChannels

	for i, v := range s.ints.Data[:n] {
		dst[i] = utils.IntToSample(v, s.bitDepth)
	}

	if err != nil && err != io.EOF {
		return n, fmt.Errorf("reading pcm: %w", err)
	}
	if err == io.EOF || n < want {
		s.done = true
		if n == 0 {
			return 0, io.EOF
		}
		return n, io.EOF
	}

	return n, nil
}

// ReadSeeker returns r itself when it can seek, otherwise buffers it in
// memory. The go-audio decoders need to seek between chunks.
func ReadSeeker(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("buffering input: %w", err)
	}
	return bytes.NewReader(data), nil
}
