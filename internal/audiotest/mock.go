// SPDX-License-Identifier: EPL-2.0

// Package audiotest holds fixtures shared by the package tests.
package audiotest

import (
	"io"
	"math"

	"github.com/ik5/audbridge/audio"
)

// MockSource generates interleaved frames from a waveform function.
type MockSource struct {
	sampleRate  int
	channels    int
	totalFrames int
	generated   int
	waveform    func(frame, channel int) audio.Sample
}

var _ audio.Source = (*MockSource)(nil)

// NewMockSource creates a source of totalFrames frames.
func NewMockSource(sampleRate, channels, totalFrames int, waveform func(frame, channel int) audio.Sample) *MockSource {
	return &MockSource{
		sampleRate:  sampleRate,
		channels:    channels,
		totalFrames: totalFrames,
		waveform:    waveform,
	}
}

// NewSineSource creates a source of the same sine on every channel.
func NewSineSource(sampleRate, channels, totalFrames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame, _ int) audio.Sample {
		t := float64(frame) / float64(sampleRate)
		return audio.Sample(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewConstantSource creates a source with a constant value on every channel.
func NewConstantSource(sampleRate, channels, totalFrames int, value audio.Sample) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(int, int) audio.Sample { return value })
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) Close() error    { return nil }

// Reset rewinds the source to its first frame.
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []audio.Sample) (int, error) {
	if m.generated >= m.totalFrames {
		return 0, io.EOF
	}

	frames := min(len(dst)/m.channels, m.totalFrames-m.generated)
	for f := range frames {
		for c := range m.channels {
			dst[f*m.channels+c] = m.waveform(m.generated+f, c)
		}
	}
	m.generated += frames

	if m.generated >= m.totalFrames {
		return frames * m.channels, io.EOF
	}
	return frames * m.channels, nil
}

// MemorySink collects everything written to it.
type MemorySink struct {
	Rate     int
	Chans    int
	Samples  []audio.Sample
	Closed   bool
	WriteErr error
}

var _ audio.Sink = (*MemorySink)(nil)

func (s *MemorySink) SampleRate() int { return s.Rate }
func (s *MemorySink) Channels() int   { return s.Chans }

func (s *MemorySink) WriteSamples(src []audio.Sample) (int, error) {
	if s.WriteErr != nil {
		return 0, s.WriteErr
	}
	s.Samples = append(s.Samples, src...)
	return len(src), nil
}

func (s *MemorySink) Close() error {
	s.Closed = true
	return nil
}
