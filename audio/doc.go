// SPDX-License-Identifier: EPL-2.0

// Package audio provides the buffer layout adapters and streaming primitives
// used to connect block-based processors to audio hosts.
//
// # Buffer Layouts
//
// Hosts hand audio around in one of two layouts:
//   - interleaved: one buffer, frame-major (L0 R0 L1 R1 ...)
//   - deinterleaved: one buffer per channel (L0 L1 ..., R0 R1 ...)
//
// Processors compute on deinterleaved buffers. Three adapters convert
// between the two:
//
//	d, _ := audio.NewDeinterleaver(512, 2, 2)
//	copy(d.Input(), hostBlock)
//	d.Deinterleave()
//	// d.Outputs()[0] is the left channel, d.Outputs()[1] the right
//
// Interleaver is the inverse. Channels owns a fixed set of per-channel
// buffers and reads or writes interleaved buffers of any channel count:
//
//	ch, _ := audio.NewChannels(512, 2)
//	err := ch.InterleavedRead(mono, 512, 1) // right channel is silenced
//
// A channel-count mismatch is never an error: missing channels are
// zero-filled and surplus channels are dropped. Asking for more frames than
// were allocated returns ErrFrameOverflow, and an interleaved buffer shorter
// than length*channels returns ErrShortBuffer. Nothing is written when a call
// fails.
//
// # Sample Type
//
// Every buffer holds Sample values, float32 by default. Build with
//
//	go build -tags audbridge_double
//
// to make Sample a float64.
//
// # Streams
//
// Source and Sink model interleaved streams. Decoders in the formats
// subpackages produce Sources; formats/wav also provides a Sink. Resampler
// changes the rate of a Source using cubic interpolation:
//
//	r := audio.NewResampler(src, 48000)
//	buf := make([]audio.Sample, 4096)
//	n, err := r.ReadSamples(buf)
//
// Sources return io.EOF once drained. Registry maps format names to
// Decoders.
//
// # Concurrency
//
// Adapters, Sources and Sinks are not safe for concurrent use. Registry is.
package audio
