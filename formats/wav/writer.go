// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	formatPCM = 1

	// chunkSize is the number of samples handed to the encoder per write.
	chunkSize = 8192
)

// WriteWAV8 writes a mono unsigned 8-bit PCM WAV at sampleRate. This is the
// format tape images are played back from.
func WriteWAV8(w io.WriteSeeker, sampleRate int, samples []uint8) error {
	return write(w, sampleRate, 8, len(samples), func(i int) int { return int(samples[i]) })
}

// WriteWAV16 writes a mono 16-bit PCM WAV at sampleRate. Tapes are never
// written this way; it produces 16-bit recordings for exercising the
// decoder's 16-bit path.
func WriteWAV16(w io.WriteSeeker, sampleRate int, samples []int16) error {
	return write(w, sampleRate, 16, len(samples), func(i int) int { return int(samples[i]) })
}

func write(w io.WriteSeeker, sampleRate, bitDepth, n int, sample func(i int) int) error {
	enc := wav.NewEncoder(w, sampleRate, bitDepth, 1, formatPCM)

	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: 1,
			SampleRate:  sampleRate,
		},
		Data:           make([]int, 0, min(n, chunkSize)),
		SourceBitDepth: bitDepth,
	}

	// At least one Write is needed for the encoder to emit its headers.
	for i := 0; ; {
		end := min(i+chunkSize, n)

		buf.Data = buf.Data[:0]
		for j := i; j < end; j++ {
			buf.Data = append(buf.Data, sample(j))
		}
		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("writing samples: %w", err)
		}

		i = end
		if i >= n {
			break
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finishing wav: %w", err)
	}

	return nil
}
