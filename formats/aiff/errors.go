// SPDX-License-Identifier: EPL-2.0

package aiff

import "errors"

var (
	// ErrNotAiffFile indicates the input has no valid FORM/AIFF header.
	ErrNotAiffFile = errors.New("not an AIFF file")

	// ErrUnsupportedBitDepth indicates a sample size other than 16, 24 or 32 bits.
	ErrUnsupportedBitDepth = errors.New("only 16, 24 and 32-bit PCM AIFF is supported")

	// ErrUnsupportedAiffLayout indicates a COMM chunk without a usable format.
	ErrUnsupportedAiffLayout = errors.New("unsupported AIFF layout")
)
