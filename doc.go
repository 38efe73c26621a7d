// SPDX-License-Identifier: EPL-2.0

// Package vztape is a software modem for VZ200/VZ300 cassette tapes.
//
// It turns .vz tape images into the FSK waveform the machine writes to
// cassette, and recovers images from recordings of that waveform. The
// modem itself lives in package tape and works on unsigned 8-bit samples;
// this package connects it to audio files.
//
// # Supported Formats
//
// Encoding writes mono 8-bit PCM WAV. Decoding reads:
//   - WAV (PCM 8 or 16-bit) via formats/wav
//   - AIFF (PCM 8 or 16-bit) via formats/aiff
//   - Ogg Vorbis via formats/vorbis
//
// Recordings must be mono and at the modem's sample rate (22050 Hz by
// default). Convert other recordings with an external tool first.
//
// # Quick Start
//
//	img, _ := vz.ReadFile("game.vz")
//	_ = vztape.EncodeFile("game.wav", img, tape.NewEncoder())
//
//	res, err := vztape.DecodeFile("game.wav", vztape.NewRegistry(), tape.NewDecoder())
//	if err != nil {
//	    // no image could be recovered
//	}
//	if err := res.Verify(); err != nil {
//	    // the image is there but its checksum does not match
//	}
//	_ = vz.WriteFile("game.vz", &res.Image)
//
// # Other Containers
//
// Package formats/vz reads and writes .vz files. Package formats/cas writes
// the raw cassette byte stream without audio framing.
package vztape
