// SPDX-License-Identifier: EPL-2.0

package audio

// Channels is a group of non-interleaved buffers that can read from and write
// to an interleaved buffer whose channel count differs from its own.
//
// When the interleaved side has fewer channels, the extra internal channels
// are silenced on read and left unread on write. When it has more, the extra
// source channels are skipped on read and the extra destination channels are
// zero-filled on write.
type Channels struct {
	frames  int
	buffers [][]Sample
}

// NewChannels allocates channels zeroed buffers of frames samples each.
func NewChannels(frames, channels int) (*Channels, error) {
	if err := checkSizes(frames, channels); err != nil {
		return nil, err
	}
	if err := checkProduct(frames, channels); err != nil {
		return nil, err
	}

	return &Channels{
		frames:  frames,
		buffers: newPlanar(channels, frames),
	}, nil
}

// Buffers returns the internal buffers, ready to hand to a processor's
// Compute between InterleavedRead and InterleavedWrite.
func (c *Channels) Buffers() [][]Sample { return c.buffers }

func (c *Channels) Frames() int      { return c.frames }
func (c *Channels) NumChannels() int { return len(c.buffers) }

// Clear zeroes every internal buffer.
func (c *Channels) Clear() {
	for _, buf := range c.buffers {
		clear(buf)
	}
}

// InterleavedRead reads length frames of inChannels interleaved channels from
// src into the internal buffers.
func (c *Channels) InterleavedRead(src []Sample, length, inChannels int) error {
	if err := c.check(len(src), length, inChannels); err != nil {
		return err
	}

	shared := min(inChannels, len(c.buffers))
	for f := range length {
		p := f * inChannels
		for ch := range shared {
			c.buffers[ch][f] = src[p+ch]
		}
		for ch := shared; ch < len(c.buffers); ch++ {
			c.buffers[ch][f] = 0
		}
	}

	return nil
}

// InterleavedWrite writes length frames of outChannels interleaved channels
// into dst from the internal buffers.
func (c *Channels) InterleavedWrite(dst []Sample, length, outChannels int) error {
	if err := c.check(len(dst), length, outChannels); err != nil {
		return err
	}

	shared := min(outChannels, len(c.buffers))
	for f := range length {
		frame := dst[f*outChannels : (f+1)*outChannels]
		for ch := range shared {
			frame[ch] = c.buffers[ch][f]
		}
		clear(frame[shared:])
	}

	return nil
}

func (c *Channels) check(bufLen, length, channels int) error {
	if err := checkSizes(length, channels); err != nil {
		return err
	}
	if length > c.frames {
		return ErrFrameOverflow
	}
	if channels > 0 && length > bufLen/channels {
		return ErrShortBuffer
	}
	return nil
}
