// SPDX-License-Identifier: EPL-2.0

package dsp

import "github.com/ik5/audbridge/audio"

// DefaultSampleRate is the nominal rate reported by Default.
const DefaultSampleRate = 44100

// Default is a placeholder processor: one input, one output, no controls,
// and a Compute that leaves the outputs untouched.
type Default struct{}

var _ DSP = (*Default)(nil)

func (*Default) NumInputs() int              { return 1 }
func (*Default) NumOutputs() int             { return 1 }
func (*Default) BuildUserInterface(UI)       {}
func (*Default) SampleRate() int             { return DefaultSampleRate }
func (*Default) Init(int)                    {}
func (*Default) InstanceInit(int)            {}
func (*Default) InstanceConstants(int)       {}
func (*Default) InstanceResetUserInterface() {}
func (*Default) InstanceClear()              {}
func (*Default) Clone() DSP                  { return &Default{} }
func (*Default) Metadata(Meta)               {}

func (*Default) Compute(int, [][]audio.Sample, [][]audio.Sample) {}
