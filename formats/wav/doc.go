// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes the WAV files tape images travel in.
//
// It uses github.com/go-audio/wav for the RIFF handling.
//
// # Supported Formats
//
//   - PCM 8-bit (unsigned), the format tapes are played back from
//   - PCM 16-bit, for recordings made with ordinary sound cards
//   - Any channel count and sample rate on input; the tape decoder then
//     insists on mono at its own rate
//
// # Decoding
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("game.wav")
//	source, err := decoder.Decode(file)
//
// The decoder returns an audio.Source with float32 samples in [-1.0, 1.0].
// 8-bit levels map to (v-128)/128 and convert back exactly.
//
// # Writing
//
// WriteWAV8 and WriteWAV16 write mono files. The encoder patches its
// header sizes once all data is written, so they need an io.WriteSeeker:
//
//	file, _ := os.Create("game.wav")
//	err := wav.WriteWAV8(file, 22050, samples)
//
// # Error Handling
//
//   - ErrNotWavFile: the input is not a RIFF/WAVE file
//   - ErrOnlyPCMSupported: compressed or float WAV
//   - ErrUnsupportedBitDepth: anything other than 8 or 16 bits
//   - ErrUnsupportedWavLayout: no data chunk could be found
package wav
