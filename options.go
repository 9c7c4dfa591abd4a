// SPDX-License-Identifier: EPL-2.0

package audbridge

import "github.com/ik5/audbridge/audio"

// DefaultBlockSize is the number of frames handed to Compute per call.
const DefaultBlockSize = 512

type param struct {
	path  string
	value audio.Sample
}

type config struct {
	blockSize  int
	sampleRate int
	params     []param
}

// Option configures Process.
type Option func(*config)

func defaultConfig() config {
	return config{blockSize: DefaultBlockSize}
}

// WithBlockSize sets the frames per Compute call. Values below one are ignored.
func WithBlockSize(frames int) Option {
	return func(cfg *config) {
		if frames > 0 {
			cfg.blockSize = frames
		}
	}
}

// WithSampleRate resamples the source to rate before processing.
// Values below one are ignored.
func WithSampleRate(rate int) Option {
	return func(cfg *config) {
		if rate > 0 {
			cfg.sampleRate = rate
		}
	}
}

// WithParam sets the control at path once the processor is initialized.
// Paths are those reported by dsp.Params, e.g. "/Gain/Level".
func WithParam(path string, value audio.Sample) Option {
	return func(cfg *config) {
		cfg.params = append(cfg.params, param{path: path, value: value})
	}
}

func applyOptions(opts ...Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
