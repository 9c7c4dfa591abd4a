// SPDX-License-Identifier: EPL-2.0

//go:build audbridge_double

package audio

// Sample is the floating-point type carried by every buffer in this module.
type Sample = float64
