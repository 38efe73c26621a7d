// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes tape recordings stored as AIFF.
//
// This package uses github.com/go-audio/aiff to decode AIFF files, which
// is what many Mac recording tools save by default.
//
// # Supported Formats
//
//   - PCM 8-bit and 16-bit (AIFF samples are signed and big-endian)
//   - Any channel count and sample rate on input
//
// AIFF-C (compressed) files are rejected.
//
// # Decoding
//
//	decoder := aiff.Decoder{}
//	file, _ := os.Open("side-a.aiff")
//	source, err := decoder.Decode(file)
//
// The returned audio.Source yields float32 samples in [-1.0, 1.0].
//
// # Error Handling
//
//   - ErrNotAiffFile: the input is not a valid AIFF file
//   - ErrUnsupportedBitDepth: anything other than 8 or 16 bits
//   - ErrUnsupportedAiffLayout: the COMM chunk could not be interpreted
package aiff
