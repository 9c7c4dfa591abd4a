// SPDX-License-Identifier: EPL-2.0

package audbridge

import (
	"fmt"

	"github.com/ik5/audbridge/audio"
	"github.com/ik5/audbridge/dsp"
)

// Callback drives a processor from a host that exchanges fixed-size
// interleaved buffers, such as a sound card callback.
//
// Host inputs beyond the processor's inputs are ignored and processor
// inputs beyond the host's are silent. The same holds for outputs.
type Callback struct {
	proc   dsp.DSP
	frames int
	in     *audio.Deinterleaver
	out    *audio.Interleaver
}

// NewCallback prepares buffers for blocks of frames frames with hostIn
// interleaved input channels and hostOut interleaved output channels.
// proc must already be initialized.
func NewCallback(proc dsp.DSP, frames, hostIn, hostOut int) (*Callback, error) {
	if proc == nil {
		return nil, ErrNilProcessor
	}

	in, err := audio.NewDeinterleaver(frames, hostIn, proc.NumInputs())
	if err != nil {
		return nil, err
	}
	out, err := audio.NewInterleaver(frames, proc.NumOutputs(), hostOut)
	if err != nil {
		return nil, err
	}

	return &Callback{proc: proc, frames: frames, in: in, out: out}, nil
}

func (c *Callback) Frames() int { return c.frames }

// Process runs one block: in holds frames*hostIn samples and out receives
// frames*hostOut samples.
func (c *Callback) Process(in, out []audio.Sample) error {
	if len(in) != len(c.in.Input()) {
		return fmt.Errorf("%w: %d input samples, want %d", ErrBlockSize, len(in), len(c.in.Input()))
	}
	if len(out) != len(c.out.Output()) {
		return fmt.Errorf("%w: %d output samples, want %d", ErrBlockSize, len(out), len(c.out.Output()))
	}

	copy(c.in.Input(), in)
	c.in.Deinterleave()
	c.proc.Compute(c.frames,
		c.in.Outputs()[:c.proc.NumInputs()],
		c.out.Inputs()[:c.proc.NumOutputs()])
	c.out.Interleave()
	copy(out, c.out.Output())

	return nil
}
