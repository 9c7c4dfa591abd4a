package audio

import (
	"errors"
	"io"
)

// mockSource generates totalFrames frames from waveform, interleaved.
type mockSource struct {
	sampleRate  int
	channels    int
	totalFrames int
	generated   int
	waveform    func(frame, channel int) Sample
	closed      bool
	closeErr    error
}

func newMockSource(sampleRate, channels, totalFrames int, waveform func(frame, channel int) Sample) *mockSource {
	return &mockSource{
		sampleRate:  sampleRate,
		channels:    channels,
		totalFrames: totalFrames,
		waveform:    waveform,
	}
}

func newConstantSource(sampleRate, channels, totalFrames int, value Sample) *mockSource {
	return newMockSource(sampleRate, channels, totalFrames, func(int, int) Sample { return value })
}

// newRampSource emits frame index + channel/10 so every sample is traceable.
func newRampSource(sampleRate, channels, totalFrames int) *mockSource {
	return newMockSource(sampleRate, channels, totalFrames, func(frame, channel int) Sample {
		return Sample(frame) + Sample(channel)/10
	})
}

func (m *mockSource) SampleRate() int { return m.sampleRate }
func (m *mockSource) Channels() int   { return m.channels }

func (m *mockSource) Close() error {
	m.closed = true
	return m.closeErr
}

func (m *mockSource) ReadSamples(dst []Sample) (int, error) {
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

var errBrokenSource = errors.New("broken source")

type brokenSource struct{ mockSource }

func (b *brokenSource) ReadSamples([]Sample) (int, error) { return 0, errBrokenSource }

type mockDecoder struct{ name string }

func (d *mockDecoder) Decode(io.Reader) (Source, error) {
	return newConstantSource(44100, 2, 100, 0), nil
}
