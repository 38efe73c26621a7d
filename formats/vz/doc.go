// SPDX-License-Identifier: EPL-2.0

// Package vz reads and writes the .vz snapshot container used by VZ200
// emulators.
//
// A .vz file is a 24-byte header followed by the payload, which runs to the
// end of the file:
//
//	offset size
//	0      4    magic, "VZF0" for BASIC or "VZF1" for machine code
//	4      17   filename, NUL padded
//	21     1    file type (tape.TypeBasic, tape.TypeMachine)
//	22     2    start address, little-endian
//	24     n    payload
//
// The end address is not stored; it is the start address plus the payload
// length. Filenames are cut at the first NUL and at 16 characters, the same
// rule the tape encoder applies.
package vz
