// SPDX-License-Identifier: EPL-2.0

//go:build !audbridge_double

package audio

// Sample is the floating-point type carried by every buffer in this module.
// Build with the audbridge_double tag to switch it to float64.
type Sample = float32
