// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"fmt"

	"github.com/ik5/audbridge/audio"
	"github.com/ik5/audbridge/internal/audiotest"
)

func ExampleDeinterleaver() {
	d, _ := audio.NewDeinterleaver(4, 2, 2)
	copy(d.Input(), []audio.Sample{1, 2, 3, 4, 5, 6, 7, 8})

	d.Deinterleave()

	fmt.Println(d.Outputs()[0])
	fmt.Println(d.Outputs()[1])
	// Output:
	// [1 3 5 7]
	// [2 4 6 8]
}

func ExampleInterleaver() {
	i, _ := audio.NewInterleaver(3, 2, 2)
	copy(i.Inputs()[0], []audio.Sample{1, 2, 3})
	copy(i.Inputs()[1], []audio.Sample{-1, -2, -3})

	i.Interleave()

	fmt.Println(i.Output())
	// Output: [1 -1 2 -2 3 -3]
}

func ExampleChannels() {
	ch, _ := audio.NewChannels(2, 3)

	// one frame of stereo into three channels
	_ = ch.InterleavedRead([]audio.Sample{1, 2}, 1, 2)
	fmt.Println(ch.Buffers())

	// back out as four channels
	out := make([]audio.Sample, 8)
	_ = ch.InterleavedWrite(out, 2, 4)
	fmt.Println(out)
	// Output:
	// [[1 0] [2 0] [0 0]]
	// [1 2 0 0 0 0 0 0]
}

func ExampleResampler() {
	src := audiotest.NewSineSource(44100, 1, 44100, 440)
	r := audio.NewResampler(src, 16000)

	fmt.Printf("rate %d Hz, %d channel(s)\n", r.SampleRate(), r.Channels())
	// Output: rate 16000 Hz, 1 channel(s)
}
