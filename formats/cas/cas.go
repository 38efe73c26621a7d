// SPDX-License-Identifier: EPL-2.0

package cas

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/ik5/vztape/tape"
)

// Framing written by Marshal. The leader is shorter than the one on audio
// tapes; the ROM loader only needs a few 0x80 bytes to lock on.
const (
	LeaderCount   = 128
	PreambleCount = 5
)

// Size is the exact length of Marshal's output for img.
func Size(img *tape.Image) int {
	return LeaderCount + PreambleCount +
		1 + len(img.WireName()) + 1 +
		4 + len(img.Payload) + 2
}

// Marshal renders img as the raw byte sequence the machine writes to tape.
func Marshal(img *tape.Image) ([]byte, error) {
	if len(img.Payload) > tape.MaxPayload {
		return nil, fmt.Errorf("%w: %d bytes", tape.ErrPayloadTooLarge, len(img.Payload))
	}

	out := make([]byte, 0, Size(img))
	out = append(out, bytes.Repeat([]byte{tape.LeaderByte}, LeaderCount)...)
	out = append(out, bytes.Repeat([]byte{tape.PreambleByte}, PreambleCount)...)
	out = append(out, img.FileType)
	out = append(out, img.WireName()...)
	out = append(out, 0)
	out = binary.LittleEndian.AppendUint16(out, img.StartAddress)
	out = binary.LittleEndian.AppendUint16(out, img.EndAddress())
	out = append(out, img.Payload...)
	out = binary.LittleEndian.AppendUint16(out, img.Checksum())

	return out, nil
}

// Unmarshal parses a byte stream produced by Marshal or captured from a
// machine. Any number of leader bytes is accepted. A checksum mismatch
// returns the image together with a *tape.ChecksumError.
func Unmarshal(data []byte) (*tape.Image, error) {
	r := reader{data: data}

	leader := 0
	for r.peek() == int(tape.LeaderByte) {
		r.pos++
		leader++
	}
	if leader == 0 {
		return nil, fmt.Errorf("%w: no leader", ErrFraming)
	}

	for i := range PreambleCount {
		b, err := r.byte()
		if err != nil {
			return nil, fmt.Errorf("preamble: %w", err)
		}
		if b != tape.PreambleByte {
			return nil, fmt.Errorf("%w: preamble byte %d is 0x%02X", ErrFraming, i, b)
		}
	}

	img := &tape.Image{}
	var err error
	if img.FileType, err = r.byte(); err != nil {
		return nil, fmt.Errorf("file type: %w", err)
	}

	name := make([]byte, 0, tape.FilenameField)
	for range tape.FilenameField {
		c, err := r.byte()
		if err != nil {
			return nil, fmt.Errorf("filename: %w", err)
		}
		if c == 0 {
			break
		}
		name = append(name, c)
	}
	if len(name) > tape.MaxFilename {
		name = name[:tape.MaxFilename]
	}
	img.Filename = string(name)

	addr, err := r.next(4)
	if err != nil {
		return nil, fmt.Errorf("addresses: %w", err)
	}
	img.StartAddress = binary.LittleEndian.Uint16(addr)
	end := binary.LittleEndian.Uint16(addr[2:])

	payload, err := r.next(int(end - img.StartAddress))
	if err != nil {
		return nil, fmt.Errorf("payload: %w", err)
	}
	img.Payload = append([]byte(nil), payload...)
	img.Magic = tape.MagicFor(img.FileType)

	sum, err := r.next(2)
	if err != nil {
		return nil, fmt.Errorf("checksum: %w", err)
	}
	if want, got := binary.LittleEndian.Uint16(sum), img.Checksum(); want != got {
		return img, &tape.ChecksumError{Want: want, Got: got}
	}

	return img, nil
}

// WriteFile renders img to path, creating or truncating it.
func WriteFile(path string, img *tape.Image) error {
	data, err := Marshal(img)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

type reader struct {
	data []byte
	pos  int
}

func (r *reader) peek() int {
	if r.pos >= len(r.data) {
		return -1
	}

	return int(r.data[r.pos])
}

func (r *reader) byte() (byte, error) {
	b, err := r.next(1)
	if err != nil {
		return 0, err
	}

	return b[0], nil
}

func (r *reader) next(n int) ([]byte, error) {
	if len(r.data)-r.pos < n {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d",
			ErrTruncated, n, r.pos, len(r.data)-r.pos)
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n

	return b, nil
}
