// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"

	"github.com/ik5/audbridge/audio"
)

// FullScale returns 2^(bitDepth-1), the magnitude that maps to 1.0.
// Unsupported depths fall back to 16-bit.
func FullScale(bitDepth int) int {
	switch bitDepth {
	case 8, 16, 24, 32:
		return 1 << (bitDepth - 1)
	default:
		return 1 << 15
	}
}

// SampleToInt converts x in [-1,1] to a signed integer of bitDepth bits.
// Values outside the range are clamped; 1.0 maps to the largest positive
// code.
func SampleToInt(x audio.Sample, bitDepth int) int {
	full := FullScale(bitDepth)

	v := math.Round(float64(x) * float64(full))
	if v >= float64(full) {
		return full - 1
	}
	if v < -float64(full) {
		return -full
	}
	return int(v)
}

// IntToSample converts a signed integer of bitDepth bits to [-1,1).
func IntToSample(v, bitDepth int) audio.Sample {
	return audio.Sample(float64(v) / float64(FullScale(bitDepth)))
}
