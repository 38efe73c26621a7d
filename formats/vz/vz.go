// SPDX-License-Identifier: EPL-2.0

package vz

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/ik5/vztape/tape"
)

// HeaderSize is the length of the fixed .vz header.
const HeaderSize = 24

// Field offsets within the header.
const (
	offMagic = 0
	offName  = 4
	offType  = offName + tape.FilenameField
	offStart = offType + 1
)

// Unmarshal parses a complete .vz file. The payload is copied.
func Unmarshal(data []byte) (*tape.Image, error) {
	if len(data) < HeaderSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrShortHeader, len(data))
	}

	payload := data[HeaderSize:]
	if len(payload) > tape.MaxPayload {
		return nil, fmt.Errorf("%w: %d bytes", tape.ErrPayloadTooLarge, len(payload))
	}

	img := &tape.Image{Payload: append([]byte(nil), payload...)}
	copy(img.Magic[:], data[offMagic:offName])
	img.Filename = string(parseName(data[offName:offType]))
	img.FileType = data[offType]
	img.StartAddress = binary.LittleEndian.Uint16(data[offStart:HeaderSize])

	return img, nil
}

// parseName cuts the field at its first NUL and at tape.MaxFilename bytes.
func parseName(field []byte) []byte {
	n := 0
	for n < len(field) && n < tape.MaxFilename && field[n] != 0 {
		n++
	}

	return field[:n]
}

// Marshal renders img as a .vz file. A zero magic is replaced with
// tape.MagicFor(img.FileType).
func Marshal(img *tape.Image) ([]byte, error) {
	if len(img.Payload) > tape.MaxPayload {
		return nil, fmt.Errorf("%w: %d bytes", tape.ErrPayloadTooLarge, len(img.Payload))
	}

	out := make([]byte, HeaderSize, HeaderSize+len(img.Payload))

	magic := img.Magic
	if magic == [4]byte{} {
		magic = tape.MagicFor(img.FileType)
	}
	copy(out[offMagic:], magic[:])
	copy(out[offName:offType], img.WireName())
	out[offType] = img.FileType
	binary.LittleEndian.PutUint16(out[offStart:], img.StartAddress)

	return append(out, img.Payload...), nil
}

// Read parses a .vz file from r.
func Read(r io.Reader) (*tape.Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading vz: %w", err)
	}

	return Unmarshal(data)
}

// Write renders img to w.
func Write(w io.Writer, img *tape.Image) error {
	data, err := Marshal(img)
	if err != nil {
		return err
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing vz: %w", err)
	}

	return nil
}

// ReadFile parses the .vz file at path.
func ReadFile(path string) (*tape.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	img, err := Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
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
