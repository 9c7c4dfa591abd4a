// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"io"

	gowav "github.com/go-audio/wav"
	"github.com/ik5/audbridge/audio"
	"github.com/ik5/audbridge/internal/pcm"
)

const (
	formatPCM        = 1
	formatExtensible = 0xFFFE
)

func supportedBitDepth(bits int) bool {
	return bits == 16 || bits == 24 || bits == 32
}

type Decoder struct{}

// Decode parses the RIFF headers of r and returns a Source over its data
// chunk. Inputs that cannot seek are buffered in memory first.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := pcm.ReadSeeker(r)
	if err != nil {
		return nil, err
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}
	if dec.WavAudioFormat != formatPCM && dec.WavAudioFormat != formatExtensible {
		return nil, ErrUnsupportedFormat
	}
	if !supportedBitDepth(int(dec.BitDepth)) {
		return nil, ErrUnsupportedBitDepth
	}
	if dec.NumChans == 0 {
		return nil, ErrInvalidChannels
	}

	return pcm.NewSource(dec, int(dec.BitDepth)), nil
}
