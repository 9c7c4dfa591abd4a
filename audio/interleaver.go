// SPDX-License-Identifier: EPL-2.0

package audio

// Interleaver is the inverse of Deinterleaver: it owns per-channel input
// buffers and one interleaved output buffer.
type Interleaver struct {
	frames  int
	outputs int
	inputs  [][]Sample
	output  []Sample
}

// NewInterleaver allocates max(inputs, outputs) planar buffers of frames
// samples and an interleaved buffer of frames*outputs samples.
func NewInterleaver(frames, inputs, outputs int) (*Interleaver, error) {
	if err := checkSizes(frames, inputs, outputs); err != nil {
		return nil, err
	}
	if err := checkProduct(frames, max(inputs, outputs)); err != nil {
		return nil, err
	}

	return &Interleaver{
		frames:  frames,
		outputs: outputs,
		inputs:  newPlanar(max(inputs, outputs), frames),
		output:  make([]Sample, frames*outputs),
	}, nil
}

// Inputs returns the planar buffers the caller fills before Interleave.
func (i *Interleaver) Inputs() [][]Sample { return i.inputs }

// Output returns the interleaved buffer written by Interleave.
func (i *Interleaver) Output() []Sample { return i.output }

func (i *Interleaver) Frames() int     { return i.frames }
func (i *Interleaver) NumInputs() int  { return len(i.inputs) }
func (i *Interleaver) NumOutputs() int { return i.outputs }

// Interleave writes inputs[c][f] to output[c + f*outputs] for every frame
// and every output channel.
func (i *Interleaver) Interleave() {
	channels := i.outputs
	switch channels {
	case 0:
		return
	case 1:
		copy(i.output, i.inputs[0])
		return
	}

	for c := range channels {
		in := i.inputs[c]
		for f := range i.frames {
			i.output[c+f*channels] = in[f]
		}
	}
}
