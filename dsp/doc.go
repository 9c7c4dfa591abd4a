// SPDX-License-Identifier: EPL-2.0

// Package dsp defines the processing-object contract the bridge drives, and
// a few small implementations of it.
//
// A DSP declares its channel counts, its controls (through a UI) and its
// metadata (through a Meta), and computes blocks of deinterleaved samples:
//
//	g := dsp.NewGain(2)
//	g.Init(48000)
//
//	params := dsp.NewParams()
//	g.BuildUserInterface(params)
//	_ = params.Set("/Gain/Level", 0.5)
//
//	g.Compute(n, inputs, outputs)
//
// Default is a one-in, one-out placeholder whose Compute does nothing.
package dsp
