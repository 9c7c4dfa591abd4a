// SPDX-License-Identifier: EPL-2.0

package dsp

import "github.com/ik5/audbridge/audio"

// DSP is a block-based processing object. Compute reads count samples from
// each of NumInputs input buffers and writes count samples to each of
// NumOutputs output buffers.
type DSP interface {
	NumInputs() int
	NumOutputs() int

	// BuildUserInterface declares the processor's controls on ui.
	BuildUserInterface(ui UI)

	// SampleRate returns the rate given to the last Init.
	SampleRate() int

	// Init is InstanceInit plus any class-wide setup.
	Init(sampleRate int)
	// InstanceInit runs InstanceConstants, InstanceResetUserInterface and
	// InstanceClear.
	InstanceInit(sampleRate int)
	InstanceConstants(sampleRate int)
	InstanceResetUserInterface()
	InstanceClear()

	// Clone returns a new, uninitialized instance of the same processor.
	Clone() DSP

	Metadata(m Meta)

	Compute(count int, inputs, outputs [][]audio.Sample)
}

// UI receives the controls a processor declares. Zones point into the
// processor and are read on every Compute.
type UI interface {
	OpenTabBox(label string)
	OpenHorizontalBox(label string)
	OpenVerticalBox(label string)
	CloseBox()

	AddButton(label string, zone *audio.Sample)
	AddCheckButton(label string, zone *audio.Sample)
	AddVerticalSlider(label string, zone *audio.Sample, init, min, max, step audio.Sample)
	AddHorizontalSlider(label string, zone *audio.Sample, init, min, max, step audio.Sample)
	AddNumEntry(label string, zone *audio.Sample, init, min, max, step audio.Sample)

	AddHorizontalBargraph(label string, zone *audio.Sample, min, max audio.Sample)
	AddVerticalBargraph(label string, zone *audio.Sample, min, max audio.Sample)

	Declare(zone *audio.Sample, key, value string)
}

// Meta receives a processor's key/value metadata.
type Meta interface {
	Declare(key, value string)
}

// MetaMap collects metadata into a map.
type MetaMap map[string]string

func (m MetaMap) Declare(key, value string) { m[key] = value }
