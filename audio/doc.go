// SPDX-License-Identifier: EPL-2.0

// Package audio provides the recording input plumbing for the tape decoder.
//
// # Source Interface
//
// Every recording decoder returns a Source:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Samples are float32 in the range [-1.0, 1.0], 0.0 being silence. An
// unsigned 8-bit sample v maps to (v-128)/128, so the tape levels survive
// the trip through float32 unchanged.
//
// # Format Registry
//
// Decoders are registered by file extension:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, err := registry.ForPath("game.wav")
//
// # Recording Format
//
// The tape decoder measures cycle lengths in samples, so recordings must be
// mono and at the rate the decoder is configured for. CheckFormat reports
// ErrUnsupportedChannels or ErrUnsupportedSampleRate otherwise; there is no
// resampling or channel mixing.
//
// # Error Handling
//
// ReadSamples returns io.EOF when no more data is available:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    // use buf[:n] first
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
package audio
