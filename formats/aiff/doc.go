// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF files through github.com/go-audio/aiff.
//
// AIFF is the big-endian cousin of WAV. The decoder accepts 16, 24 and
// 32-bit integer PCM with any channel count and yields interleaved
// audio.Sample values in [-1,1):
//
//	f, _ := os.Open("take.aif")
//	src, err := aiff.Decoder{}.Decode(f)
//	if errors.Is(err, aiff.ErrUnsupportedBitDepth) {
//	    // 8-bit or compressed AIFF-C
//	}
//
// Compressed AIFF-C files are not supported.
package aiff
