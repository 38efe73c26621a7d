// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes tape recordings archived as Ogg Vorbis.
//
// This package uses github.com/jfreymuth/oggvorbis. Vorbis is lossy, but at
// reasonable bitrates the edges of the tape's square wave stay where they
// were, which is all the cycle classifier looks at.
//
// # Decoding
//
//	decoder := vorbis.Decoder{}
//	file, _ := os.Open("side-a.ogg")
//	source, err := decoder.Decode(file)
//
// The returned audio.Source yields interleaved float32 samples in
// [-1.0, 1.0]. Reads are always a whole number of frames.
//
// # Error Handling
//
// Decode wraps ErrNotVorbisFile around the underlying oggvorbis error.
// ReadSamples returns io.EOF once the stream is finished.
package vorbis
