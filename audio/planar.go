// SPDX-License-Identifier: EPL-2.0

package audio

import "math"

// newPlanar allocates channels buffers of frames samples each over a single
// backing array. Every channel is capacity-limited to its own window.
func newPlanar(channels, frames int) [][]Sample {
	backing := make([]Sample, channels*frames)
	bufs := make([][]Sample, channels)
	for c := range channels {
		start := c * frames
		bufs[c] = backing[start : start+frames : start+frames]
	}
	return bufs
}

func checkSizes(values ...int) error {
	for _, v := range values {
		if v < 0 {
			return ErrNegativeSize
		}
	}
	return nil
}

// checkProduct reports whether frames*channels fits in an int. Both must be
// non-negative.
func checkProduct(frames, channels int) error {
	if channels > 0 && frames > math.MaxInt/channels {
		return ErrSizeOverflow
	}
	return nil
}
