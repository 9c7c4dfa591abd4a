// SPDX-License-Identifier: EPL-2.0

package audio

// Deinterleaver owns one interleaved input buffer and a set of per-channel
// output buffers, and splits the former into the latter.
//
// The number of output buffers is max(inputs, outputs) so the same instance
// can feed a processor that declares more channels than the host delivers.
type Deinterleaver struct {
	frames  int
	inputs  int
	input   []Sample
	outputs [][]Sample
}

// NewDeinterleaver allocates an interleaved buffer of frames*inputs samples
// and max(inputs, outputs) planar buffers of frames samples.
func NewDeinterleaver(frames, inputs, outputs int) (*Deinterleaver, error) {
	if err := checkSizes(frames, inputs, outputs); err != nil {
		return nil, err
	}
	if err := checkProduct(frames, max(inputs, outputs)); err != nil {
		return nil, err
	}

	return &Deinterleaver{
		frames:  frames,
		inputs:  inputs,
		input:   make([]Sample, frames*inputs),
		outputs: newPlanar(max(inputs, outputs), frames),
	}, nil
}

// Input returns the interleaved buffer the caller fills before Deinterleave.
func (d *Deinterleaver) Input() []Sample { return d.input }

// Outputs returns the planar buffers written by Deinterleave.
func (d *Deinterleaver) Outputs() [][]Sample { return d.outputs }

func (d *Deinterleaver) Frames() int     { return d.frames }
func (d *Deinterleaver) NumInputs() int  { return d.inputs }
func (d *Deinterleaver) NumOutputs() int { return len(d.outputs) }

// Deinterleave copies input[c + f*inputs] into outputs[c][f] for every frame
// and every input channel. Output buffers past the input count are left as is.
func (d *Deinterleaver) Deinterleave() {
	channels := d.inputs
	switch channels {
	case 0:
		return
	case 1:
		copy(d.outputs[0], d.input)
		return
	}

	for c := range channels {
		out := d.outputs[c]
		for f := range d.frames {
			out[f] = d.input[c+f*channels]
		}
	}
}
