// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"sync"
)

// Source produces interleaved samples.
type Source interface {
	// SampleRate of the stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved samples in [-1,1] and returns the
	// number of values written (not frames). When n == 0 with err == io.EOF,
	// the stream is finished.
	ReadSamples(dst []Sample) (n int, err error)
	// Close releases any resources.
	Close() error
}

// Sink consumes interleaved samples.
type Sink interface {
	SampleRate() int
	Channels() int
	// WriteSamples writes src, which must hold whole frames, and returns the
	// number of values consumed.
	WriteSamples(src []Sample) (n int, err error)
	// Close flushes pending data. The sink must not be used afterwards.
	Close() error
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry maps a format key (e.g., "wav", "mp3", "ogg") to its Decoder.
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[format] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[format]
	return d, ok
}
