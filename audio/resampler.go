// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// Resampler streams src at a new sample rate using Catmull-Rom cubic
// interpolation over interleaved frames. The channel count is preserved.
// A one-pole low-pass runs on the input when downsampling.
type Resampler struct {
	src      Source
	dstRate  int
	step     float64 // source frames advanced per output frame
	channels int

	// window[0..3] hold frames t-1, t0, t+1, t+2 around the read position.
	// Missing neighbours at the stream edges are substituted by the nearest
	// valid frame.
	window [4][]Sample
	valid  [4]bool
	primed bool
	eof    bool
	pos    float64 // fractional position between window[1] and window[2]

	frame []Sample

	lowpass bool
	seeded  bool
	state   []Sample
}

const lowpassAlpha = 0.5

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	step := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		step:     step,
		channels: channels,
		frame:    make([]Sample, channels),
		lowpass:  step > 1,
		state:    make([]Sample, channels),
	}
	for i := range r.window {
		r.window[i] = make([]Sample, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("closing resampler source: %w", err)
	}
	return nil
}

// pull reads the next source frame into slot, applying the low-pass when
// enabled, and reports whether a whole frame was read.
func (r *Resampler) pull(slot []Sample) (bool, error) {
	if r.eof {
		return false, nil
	}

	n, err := r.src.ReadSamples(r.frame)
	if err == io.EOF {
		r.eof = true
	} else if err != nil {
		return false, fmt.Errorf("reading resampler source: %w", err)
	}
	if n < r.channels {
		r.eof = true
		return false, nil
	}

	if r.lowpass {
		if !r.seeded {
			// start from the first frame so the output does not fade in
			copy(r.state, r.frame)
			r.seeded = true
		}
		for c, v := range r.frame {
			r.state[c] = lowpassAlpha*v + (1-lowpassAlpha)*r.state[c]
		}
		copy(slot, r.state)
	} else {
		copy(slot, r.frame)
	}

	return true, nil
}

func (r *Resampler) prime() error {
	for i := 1; i < len(r.window); i++ {
		ok, err := r.pull(r.window[i])
		if err != nil {
			return err
		}
		r.valid[i] = ok
	}

	r.primed = true
	if !r.valid[1] {
		return io.EOF
	}
	return nil
}

func (r *Resampler) advance() error {
	head := r.window[0]
	copy(r.window[:], r.window[1:])
	r.window[3] = head
	copy(r.valid[:], r.valid[1:])

	ok, err := r.pull(r.window[3])
	if err != nil {
		return err
	}
	r.valid[3] = ok

	if !r.valid[1] {
		return io.EOF
	}
	return nil
}

// ReadSamples produces interleaved samples at the target rate.
// len(dst) must be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []Sample) (int, error) {
	if r.channels == 0 || len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}
	if !r.valid[1] {
		return 0, io.EOF
	}

	frames := len(dst) / r.channels
	written := 0
	for written < frames {
		for r.pos >= 1 {
			r.pos--
			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
		}

		x := Sample(r.pos)
		out := dst[written*r.channels : (written+1)*r.channels]
		for c := range out {
			y1 := r.window[1][c]
			y0, y2 := y1, y1
			if r.valid[0] {
				y0 = r.window[0][c]
			}
			if r.valid[2] {
				y2 = r.window[2][c]
			}
			y3 := y2
			if r.valid[3] {
				y3 = r.window[3][c]
			}
			out[c] = cubic(y0, y1, y2, y3, x)
		}

		written++
		r.pos += r.step
	}

	return written * r.channels, nil
}

// cubic is a Catmull-Rom spline through y1..y2 at fraction x in [0,1].
func cubic(y0, y1, y2, y3, x Sample) Sample {
	a0 := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	a1 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	a2 := -0.5*y0 + 0.5*y2

	return ((a0*x+a1)*x+a2)*x + y1
}
