// SPDX-License-Identifier: EPL-2.0

package dsp

import "errors"

var (
	// ErrUnknownParam indicates no control was declared at the given path.
	ErrUnknownParam = errors.New("unknown parameter")

	// ErrPassiveControl indicates an attempt to set a bargraph, which only
	// the processor writes.
	ErrPassiveControl = errors.New("parameter is an output-only control")
)
