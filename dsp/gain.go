// SPDX-License-Identifier: EPL-2.0

package dsp

import "github.com/ik5/audbridge/audio"

// Gain scales every channel by a Level slider and can be silenced with a
// mute check button. Channel i of the output is channel i of the input.
type Gain struct {
	channels   int
	sampleRate int

	level audio.Sample
	mute  audio.Sample
}

var _ DSP = (*Gain)(nil)

// NewGain returns a gain stage with the given number of inputs and outputs.
func NewGain(channels int) *Gain {
	g := &Gain{channels: max(channels, 0)}
	g.InstanceResetUserInterface()
	return g
}

func (g *Gain) NumInputs() int  { return g.channels }
func (g *Gain) NumOutputs() int { return g.channels }
func (g *Gain) SampleRate() int { return g.sampleRate }

func (g *Gain) BuildUserInterface(ui UI) {
	ui.OpenVerticalBox("Gain")
	ui.Declare(&g.level, "unit", "x")
	ui.AddHorizontalSlider("Level", &g.level, 1, 0, 2, 0.01)
	ui.AddCheckButton("mute", &g.mute)
	ui.CloseBox()
}

func (g *Gain) Init(sampleRate int) { g.InstanceInit(sampleRate) }

func (g *Gain) InstanceInit(sampleRate int) {
	g.InstanceConstants(sampleRate)
	g.InstanceResetUserInterface()
	g.InstanceClear()
}

func (g *Gain) InstanceConstants(sampleRate int) { g.sampleRate = sampleRate }

func (g *Gain) InstanceResetUserInterface() {
	g.level = 1
	g.mute = 0
}

// InstanceClear is a no-op: Gain keeps no signal state.
func (g *Gain) InstanceClear() {}

func (g *Gain) Clone() DSP { return NewGain(g.channels) }

func (g *Gain) Metadata(m Meta) {
	m.Declare("name", "gain")
	m.Declare("version", "1.0")
}

func (g *Gain) Compute(count int, inputs, outputs [][]audio.Sample) {
	k := g.level
	if g.mute > 0 {
		k = 0
	}

	for c := range g.channels {
		in, out := inputs[c][:count], outputs[c][:count]
		for i, v := range in {
			out[i] = v * k
		}
	}
}
