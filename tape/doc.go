// SPDX-License-Identifier: EPL-2.0

// Package tape implements the VZ200/VZ300 cassette modem.
//
// Bytes go to tape most significant bit first. Every bit lasts six
// half-cycle slots (36 samples at 22050 Hz) and always starts high and
// ends low, so the decoder sees it as a run of cycles:
//
//	bit 0: SHORT LONG          (HIGH LOW | HIGH HIGH LOW LOW)
//	bit 1: SHORT SHORT SHORT   (HIGH LOW | HIGH LOW | HIGH LOW)
//
// # Frame
//
// A tape image is written as:
//
//	silence (1 s)
//	255 x 0x80          leader
//	5 x 0xFE            preamble
//	file type
//	filename, 0x00
//	gap (silence, then a short run of zero samples)
//	start lo, start hi, end lo, end hi
//	payload
//	checksum lo, checksum hi
//	20 x 0x00           lead-out
//	silence (1 s)
//
// The checksum is the 16-bit sum of the four address bytes and every
// payload byte.
//
// # Encoding
//
//	enc := tape.NewEncoder()
//	samples, err := enc.Encode(&tape.Image{Header: hdr, Payload: data})
//
// # Decoding
//
// The decoder pulls cycles from a Cursor, groups them into bits and bytes,
// syncs on the leader and reads the header, payload and checksum:
//
//	dec := tape.NewDecoder()
//	res, err := dec.Decode(samples)
//	if err != nil {
//	    // stream exhausted, sync lost, or payload too large
//	}
//	if err := res.Verify(); err != nil {
//	    // checksum mismatch; res.Payload is still filled in
//	}
//
// Bit decisions that fail are absorbed by the byte decoder: they use up one
// of the eight slots of the byte without shifting a bit in. Running out of
// samples is always fatal.
package tape
