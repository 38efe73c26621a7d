// SPDX-License-Identifier: EPL-2.0

// Package cas converts tape images to and from the raw cassette byte
// stream, the bytes the ROM routines write before they are modulated.
//
//	0x80 x 128, 0xFE x 5, type, name, 0x00,
//	start (LE), end (LE), payload, checksum (LE)
//
// The stream carries no gap, lead-out or silence; those only exist in the
// audio rendering done by package tape.
package cas
