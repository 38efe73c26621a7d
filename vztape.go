// SPDX-License-Identifier: EPL-2.0

package vztape

import (
	"fmt"
	"io"
	"os"

	"github.com/ik5/vztape/audio"
	"github.com/ik5/vztape/formats/aiff"
	"github.com/ik5/vztape/formats/vorbis"
	"github.com/ik5/vztape/formats/wav"
	"github.com/ik5/vztape/tape"
	"github.com/ik5/vztape/utils"
)

// NewRegistry returns a registry with every recording format this module
// can decode: wav, aif, aiff and ogg.
func NewRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})

	return reg
}

// LoadSamples reads src to the end and quantises it to the unsigned 8-bit
// levels the tape decoder works on.
//
// The source must be mono and recorded at p.SampleRate; there is no
// resampling or channel mixing.
func LoadSamples(src audio.Source, p tape.Params) ([]uint8, error) {
	if err := audio.CheckFormat(src, p.SampleRate); err != nil {
		return nil, err
	}

	bufferSize := src.BufSize()
	if bufferSize <= 0 {
		bufferSize = 4096
	}

	// Start with room for a few seconds and let append grow from there.
	samples := make([]uint8, 0, p.SampleRate*4)
	buf := make([]float32, bufferSize)

	for {
		n, err := src.ReadSamples(buf)
		for _, x := range buf[:n] {
			samples = append(samples, utils.Float32ToUint8(x))
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("reading samples: %w", err)
		}
	}

	return samples, nil
}

// DecodeRecording loads src and decodes one tape image from it.
func DecodeRecording(src audio.Source, dec *tape.Decoder) (*tape.Result, error) {
	samples, err := LoadSamples(src, dec.Params)
	if err != nil {
		return nil, err
	}

	return dec.Decode(samples)
}

// DecodeFile opens the recording at path, picks a decoder from reg by file
// extension and decodes one tape image from it.
func DecodeFile(path string, reg *audio.Registry, dec *tape.Decoder) (*tape.Result, error) {
	codec, err := reg.ForPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, err := codec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	defer src.Close()

	res, err := DecodeRecording(src, dec)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return res, nil
}

// EncodeWAV renders img with enc and writes it as an 8-bit mono WAV.
func EncodeWAV(w io.WriteSeeker, img *tape.Image, enc *tape.Encoder) error {
	samples, err := enc.Encode(img)
	if err != nil {
		return err
	}

	return wav.WriteWAV8(w, enc.Params.SampleRate, samples)
}

// EncodeFile renders img to a WAV file at path.
func EncodeFile(path string, img *tape.Image, enc *tape.Encoder) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := EncodeWAV(f, img, enc); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}

	return f.Close()
}
