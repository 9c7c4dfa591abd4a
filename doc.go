// SPDX-License-Identifier: EPL-2.0

// Package audbridge connects block-based audio processors to hosts that
// deliver audio in a different layout.
//
// A processor implements dsp.DSP: it is initialized with a sample rate and
// then called with a frame count and one buffer per input and output
// channel. Hosts rarely hand audio over that way. Files and sound cards
// usually carry interleaved frames, and their channel counts seldom match
// the processor's. The audio package holds the layout adapters
// (Deinterleaver, Interleaver and Channels); this package wires them up for
// the two common hosts.
//
// # Streams
//
// Process pulls blocks from an audio.Source, runs them through the
// processor and pushes the result into an audio.Sink:
//
//	f, _ := os.Open("in.wav")
//	src, _ := wav.Decoder{}.Decode(f)
//	out, _ := os.Create("out.wav")
//	sink, _ := wav.NewWriter(out, 48000, 2, 24)
//
//	frames, err := audbridge.Process(src, dsp.NewGain(2), sink,
//		audbridge.WithSampleRate(48000),
//		audbridge.WithParam("/Gain/Level", 0.8))
//	_ = sink.Close()
//
// # Callbacks
//
// Callback serves hosts that exchange fixed-size interleaved buffers:
//
//	cb, _ := audbridge.NewCallback(proc, 256, 2, 2)
//	err := cb.Process(hostIn, hostOut)
//
// In both cases channels the processor does not have are dropped and
// channels the host does not provide are silent.
package audbridge
