// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1/2 Layer III streams through
// github.com/hajimehoshi/go-mp3.
//
// go-mp3 always produces 16-bit stereo, so the Source reports two channels
// even for mono files; mono material simply carries the same signal on both
// sides. Sample values are in [-1,1).
//
//	src, err := mp3.Decoder{}.Decode(f)
//	if errors.Is(err, mp3.ErrNotMP3File) {
//	    // not an MP3 stream
//	}
//
// ReadSamples only ever returns whole frames; a trailing half frame at the
// end of a truncated stream is dropped.
package mp3
