// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams through
// github.com/jfreymuth/oggvorbis.
//
// The decoder keeps the stream's channel count and rate. oggvorbis already
// produces float32 in [-1,1], so the samples are passed through unchanged
// (widened when audio.Sample is float64).
//
//	src, err := vorbis.Decoder{}.Decode(f)
package vorbis
