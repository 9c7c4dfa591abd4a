// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes integer PCM WAV files through
// github.com/go-audio/wav.
//
// Decoder accepts 16, 24 and 32-bit PCM (plain or WAVE_FORMAT_EXTENSIBLE)
// with any channel count and returns an audio.Source of samples in [-1,1):
//
//	src, err := wav.Decoder{}.Decode(file)
//
// Writer is an audio.Sink. It needs an io.WriteSeeker because the RIFF sizes
// are patched when it is closed:
//
//	out, _ := os.Create("out.wav")
//	w, err := wav.NewWriter(out, 48000, 2, 24)
//	_, err = w.WriteSamples(block)
//	err = w.Close()
//
// Samples outside [-1,1] are clipped on write.
package wav
