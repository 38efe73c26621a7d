// SPDX-License-Identifier: EPL-2.0

package tape

import (
	"fmt"
	"log/slog"
)

// Decoder recovers tape images from 8-bit unsigned samples. A Decoder holds
// configuration only and can be shared; per-pass state lives in Cursor.
type Decoder struct {
	Params Params
	Logger *slog.Logger

	// Magic is stored in the decoded header since the audio does not carry
	// it. When zero, MagicFor picks one from the file type.
	Magic [4]byte
}

// NewDecoder returns a Decoder using DefaultParams.
func NewDecoder() *Decoder {
	return &Decoder{Params: DefaultParams()}
}

// Result is a decoded tape. It is returned even when the checksum does not
// match; call Verify to find out.
type Result struct {
	Image

	EndAddress uint16
	// Checksum is the value read from tape, Computed the one recomputed
	// from the decoded address bytes and payload.
	Checksum uint16
	Computed uint16

	Sync SyncInfo
	// BitErrors counts bit decisions absorbed after sync.
	BitErrors int
	// Terminated is false when the filename filled all 17 bytes of its
	// field without a terminating zero. Filename then keeps only the first
	// 16 of them, the longest name Encode can write back.
	Terminated bool
}

// Verify returns a *ChecksumError when the checksums differ.
func (r *Result) Verify() error {
	if r.Checksum != r.Computed {
		return &ChecksumError{Want: r.Checksum, Got: r.Computed}
	}

	return nil
}

// MagicFor returns the container magic for a file type.
func MagicFor(fileType byte) [4]byte {
	if fileType == TypeMachine {
		return [4]byte{'V', 'Z', 'F', '1'}
	}

	return [4]byte{'V', 'Z', 'F', '0'}
}

// Decode decodes a complete sample buffer.
func (d *Decoder) Decode(samples []uint8) (*Result, error) {
	return d.DecodeFrom(NewCursor(samples))
}

// DecodeFrom syncs on c and reads one tape image from it.
func (d *Decoder) DecodeFrom(c *Cursor) (*Result, error) {
	if err := d.Params.Validate(); err != nil {
		return nil, err
	}
	log := discardLogger(d.Logger)

	info, err := d.Sync(c)
	if err != nil {
		return nil, err
	}

	res := &Result{Sync: info}
	errsBefore := c.BitErrors()

	if res.FileType, err = d.NextByte(c); err != nil {
		return nil, fmt.Errorf("file type: %w", err)
	}

	name := make([]byte, 0, FilenameField)
	for range FilenameField {
		ch, err := d.NextByte(c)
		if err != nil {
			return nil, fmt.Errorf("filename: %w", err)
		}
		if ch == 0 {
			res.Terminated = true
			break
		}
		name = append(name, ch)
	}
	if len(name) > MaxFilename {
		name = name[:MaxFilename]
	}
	res.Filename = string(name)

	addr, err := d.readBytes(c, 4)
	if err != nil {
		return nil, fmt.Errorf("addresses: %w", err)
	}
	res.StartAddress = uint16(addr[0]) | uint16(addr[1])<<8
	res.EndAddress = uint16(addr[2]) | uint16(addr[3])<<8

	n := int(res.EndAddress - res.StartAddress)
	if n > d.Params.MaxPayload {
		return nil, fmt.Errorf("%w: header declares %d bytes (0x%04X-0x%04X)",
			ErrPayloadTooLarge, n, res.StartAddress, res.EndAddress)
	}
	log.Debug("header",
		"filename", res.Filename,
		"type", fmt.Sprintf("0x%02X", res.FileType),
		"start", fmt.Sprintf("0x%04X", res.StartAddress),
		"end", fmt.Sprintf("0x%04X", res.EndAddress),
		"length", n,
	)

	if res.Payload, err = d.readBytes(c, n); err != nil {
		return nil, fmt.Errorf("payload: %w", err)
	}

	sum, err := d.readBytes(c, 2)
	if err != nil {
		return nil, fmt.Errorf("checksum: %w", err)
	}
	res.Checksum = uint16(sum[0]) | uint16(sum[1])<<8
	res.Computed = Checksum(res.StartAddress, res.EndAddress, res.Payload)
	res.BitErrors = c.BitErrors() - errsBefore

	res.Magic = d.Magic
	if res.Magic == [4]byte{} {
		res.Magic = MagicFor(res.FileType)
	}

	if err := res.Verify(); err != nil {
		log.Warn("checksum mismatch",
			"tape", fmt.Sprintf("0x%04X", res.Checksum),
			"computed", fmt.Sprintf("0x%04X", res.Computed),
			"bit_errors", res.BitErrors,
		)
	}

	return res, nil
}

func (d *Decoder) readBytes(c *Cursor, n int) ([]byte, error) {
	out := make([]byte, n)
	for i := range out {
		b, err := d.NextByte(c)
		if err != nil {
			return nil, fmt.Errorf("byte %d of %d: %w", i, n, err)
		}
		out[i] = b
	}

	return out, nil
}
