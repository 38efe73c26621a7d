// SPDX-License-Identifier: EPL-2.0

package tape

import "strings"

// File types carried in Header.FileType.
const (
	TypeBasic   byte = 0xF0
	TypeMachine byte = 0xF1
)

// Header is the part of a tape image that precedes the payload.
type Header struct {
	Magic        [4]byte
	Filename     string
	FileType     byte
	StartAddress uint16
}

// Image is a complete tape image.
type Image struct {
	Header
	Payload []byte
}

// EndAddress is the first address past the payload, with 16-bit wraparound.
func (img *Image) EndAddress() uint16 {
	return img.StartAddress + uint16(len(img.Payload))
}

// Checksum of the image as it goes on tape.
func (img *Image) Checksum() uint16 {
	return Checksum(img.StartAddress, img.EndAddress(), img.Payload)
}

// WireName returns the filename bytes as written to tape, without the
// terminator: cut at the first NUL and at MaxFilename bytes.
func (h *Header) WireName() []byte {
	name := h.Filename
	if i := strings.IndexByte(name, 0); i >= 0 {
		name = name[:i]
	}
	if len(name) > MaxFilename {
		name = name[:MaxFilename]
	}

	return []byte(name)
}

// Checksum is the 16-bit additive sum the tape carries after the payload.
func Checksum(start, end uint16, payload []byte) uint16 {
	sum := uint16(start&0xFF) + start>>8 + uint16(end&0xFF) + end>>8
	for _, b := range payload {
		sum += uint16(b)
	}

	return sum
}
