// SPDX-License-Identifier: EPL-2.0

package audbridge

import (
	"fmt"
	"io"

	"github.com/ik5/audbridge/audio"
	"github.com/ik5/audbridge/dsp"
)

// maxEmptyReads bounds consecutive (0, nil) reads from a source before
// Process gives up with io.ErrNoProgress.
const maxEmptyReads = 100

// Process streams src through proc into sink and returns the number of
// frames processed.
//
// The source's channels are mapped onto the processor's inputs and the
// processor's outputs onto the sink's channels with audio.Channels: extra
// channels are dropped and missing ones read as silence. proc is initialized
// at the processing rate before any WithParam value is applied.
//
// A source that keeps returning no samples and no error fails with
// io.ErrNoProgress. Neither src nor sink is closed.
func Process(src audio.Source, proc dsp.DSP, sink audio.Sink, opts ...Option) (int, error) {
	if proc == nil {
		return 0, ErrNilProcessor
	}
	cfg := applyOptions(opts...)

	if cfg.sampleRate > 0 && cfg.sampleRate != src.SampleRate() {
		src = audio.NewResampler(src, cfg.sampleRate)
	}
	rate := src.SampleRate()

	inCh, outCh := src.Channels(), sink.Channels()
	if inCh < 1 || outCh < 1 {
		return 0, fmt.Errorf("%w: source %d, sink %d", ErrInvalidChannels, inCh, outCh)
	}
	if sink.SampleRate() != rate {
		return 0, fmt.Errorf("%w: sink %d Hz, processing %d Hz", ErrSampleRateMismatch, sink.SampleRate(), rate)
	}

	proc.Init(rate)
	if len(cfg.params) > 0 {
		params := dsp.NewParams()
		proc.BuildUserInterface(params)
		for _, p := range cfg.params {
			if err := params.Set(p.path, p.value); err != nil {
				return 0, err
			}
		}
	}

	block := cfg.blockSize
	ins, err := audio.NewChannels(block, proc.NumInputs())
	if err != nil {
		return 0, fmt.Errorf("allocating inputs: %w", err)
	}
	outs, err := audio.NewChannels(block, proc.NumOutputs())
	if err != nil {
		return 0, fmt.Errorf("allocating outputs: %w", err)
	}

	inBuf := make([]audio.Sample, block*inCh)
	outBuf := make([]audio.Sample, block*outCh)

	var total, empty int
	for {
		n, readErr := src.ReadSamples(inBuf)
		if readErr != nil && readErr != io.EOF {
			return total, fmt.Errorf("reading source: %w", readErr)
		}
		if n == 0 && readErr == nil {
			empty++
			if empty >= maxEmptyReads {
				return total, fmt.Errorf("reading source: %w", io.ErrNoProgress)
			}
			continue
		}
		empty = 0

		if frames := n / inCh; frames > 0 {
			if err := ins.InterleavedRead(inBuf, frames, inCh); err != nil {
				return total, err
			}
			proc.Compute(frames, ins.Buffers(), outs.Buffers())
			if err := outs.InterleavedWrite(outBuf, frames, outCh); err != nil {
				return total, err
			}
			if err := writeAll(sink, outBuf[:frames*outCh]); err != nil {
				return total, err
			}
			total += frames
		}

		if readErr == io.EOF {
			return total, nil
		}
	}
}

func writeAll(sink audio.Sink, buf []audio.Sample) error {
	n, err := sink.WriteSamples(buf)
	if err != nil {
		return fmt.Errorf("writing sink: %w", err)
	}
	if n < len(buf) {
		return fmt.Errorf("writing sink: %w", io.ErrShortWrite)
	}
	return nil
}
