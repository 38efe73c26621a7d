// SPDX-License-Identifier: EPL-2.0

package tape

import (
	"bytes"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"
)

func TestDecoder_Decode_Hello(t *testing.T) {
	t.Parallel()

	img := helloImage()
	samples, err := NewEncoder().Encode(img)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	res, err := NewDecoder().Decode(samples)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if err := res.Verify(); err != nil {
		t.Errorf("Verify() error = %v", err)
	}

	if res.Filename != "HELLO" {
		t.Errorf("Filename = %q, want %q", res.Filename, "HELLO")
	}
	if res.FileType != TypeBasic {
		t.Errorf("FileType = 0x%02X, want 0x%02X", res.FileType, TypeBasic)
	}
	if res.StartAddress != 0x7AE9 || res.EndAddress != 0x7AEC {
		t.Errorf("addresses = 0x%04X-0x%04X, want 0x7AE9-0x7AEC", res.StartAddress, res.EndAddress)
	}
	if !bytes.Equal(res.Payload, img.Payload) {
		t.Errorf("Payload = %v, want %v", res.Payload, img.Payload)
	}
	if res.Checksum != 0x02CF || res.Computed != 0x02CF {
		t.Errorf("checksum = 0x%04X/0x%04X, want 0x02CF", res.Checksum, res.Computed)
	}
	if res.Magic != [4]byte{'V', 'Z', 'F', '0'} {
		t.Errorf("Magic = %q, want VZF0", res.Magic[:])
	}
	if !res.Terminated {
		t.Error("Terminated = false, want true")
	}
	if res.Sync.LeaderBytes != 255 {
		t.Errorf("Sync.LeaderBytes = %d, want 255", res.Sync.LeaderBytes)
	}
	// The gap stretches the last cycle of the filename terminator.
	if res.BitErrors != 1 {
		t.Errorf("BitErrors = %d, want 1", res.BitErrors)
	}
}

func TestDecoder_RoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		ftype byte
		fname string
		start uint16
		size  int
	}{
		{"empty", TypeBasic, "EMPTY", 0x7AE9, 0},
		{"one byte", TypeMachine, "X", 0x8000, 1},
		{"no filename", TypeBasic, "", 0x7AE9, 16},
		{"full filename", TypeMachine, "ABCDEFGHIJKLMNOP", 0x9000, 255},
		{"wraps address space", TypeMachine, "WRAP", 0xFFF0, 0x20},
		{"kilobyte", TypeBasic, "PROGRAM", 0x7AE9, 1000},
		{"maximum", TypeMachine, "BIG", 0x0000, MaxPayload},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if tt.size > 4096 && testing.Short() {
				t.Skip("large payload in short mode")
			}

			rng := rand.New(rand.NewPCG(1, uint64(tt.size)))
			payload := make([]byte, tt.size)
			for i := range payload {
				payload[i] = byte(rng.UintN(256))
			}

			img := &Image{
				Header: Header{
					Magic:        MagicFor(tt.ftype),
					Filename:     tt.fname,
					FileType:     tt.ftype,
					StartAddress: tt.start,
				},
				Payload: payload,
			}

			samples, err := NewEncoder().Encode(img)
			if err != nil {
				t.Fatalf("Encode() error = %v", err)
			}

			res, err := NewDecoder().Decode(samples)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if err := res.Verify(); err != nil {
				t.Errorf("Verify() error = %v", err)
			}
			if res.Header != img.Header {
				t.Errorf("Header = %+v, want %+v", res.Header, img.Header)
			}
			if res.EndAddress != img.EndAddress() {
				t.Errorf("EndAddress = 0x%04X, want 0x%04X", res.EndAddress, img.EndAddress())
			}
			if !bytes.Equal(res.Payload, payload) {
				t.Errorf("Payload differs (len %d, want %d)", len(res.Payload), len(payload))
			}
		})
	}
}

func TestChecksum(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(7, 7))
	for range 100 {
		start := uint16(rng.UintN(0x10000))
		payload := make([]byte, rng.IntN(600))
		for i := range payload {
			payload[i] = byte(rng.UintN(256))
		}
		end := start + uint16(len(payload))

		want := int(start&0xFF) + int(start>>8) + int(end&0xFF) + int(end>>8)
		for _, b := range payload {
			want += int(b)
		}

		if got := Checksum(start, end, payload); got != uint16(want) {
			t.Fatalf("Checksum(0x%04X, 0x%04X, %d bytes) = 0x%04X, want 0x%04X",
				start, end, len(payload), got, uint16(want))
		}
	}
}

func TestChecksum_SingleByteChange(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(11, 3))
	for n := range 1000 {
		start := uint16(rng.UintN(0x10000))
		payload := make([]byte, 1+rng.IntN(300))
		for i := range payload {
			payload[i] = byte(rng.UintN(256))
		}
		end := start + uint16(len(payload))

		sum := Checksum(start, end, payload)
		if again := Checksum(start, end, append([]byte(nil), payload...)); again != sum {
			t.Fatalf("#%d: Checksum() = 0x%04X, then 0x%04X for the same input", n, sum, again)
		}

		// One byte moves the sum by less than 256 but never by zero.
		delta := 1 + rng.UintN(255)
		mStart, mEnd := start, end
		mutated := append([]byte(nil), payload...)
		var what string
		switch rng.IntN(3) {
		case 0:
			i := rng.IntN(len(mutated))
			mutated[i] += byte(delta)
			what = fmt.Sprintf("payload[%d]", i)
		case 1:
			mStart = start&0xFF00 | uint16(byte(start)+byte(delta))
			what = "start address low byte"
		default:
			mEnd = end&0x00FF | uint16(byte(end>>8)+byte(delta))<<8
			what = "end address high byte"
		}

		if got := Checksum(mStart, mEnd, mutated); got == sum {
			t.Fatalf("#%d: changing the %s left the checksum at 0x%04X", n, what, sum)
		}
	}
}

func TestDecoder_ChecksumMismatch(t *testing.T) {
	t.Parallel()

	e := NewEncoder()
	img := helloImage()
	samples, err := e.Encode(img)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	// Replace the first payload byte on tape but keep the old checksum.
	copy(samples[payloadOffset(e, img):], e.EncodeByte(nil, 0x11))

	res, err := NewDecoder().Decode(samples)
	if err != nil {
		t.Fatalf("Decode() error = %v, want a result", err)
	}
	if res.Payload[0] != 0x11 {
		t.Errorf("Payload[0] = 0x%02X, want 0x11", res.Payload[0])
	}

	err = res.Verify()
	if !errors.Is(err, ErrChecksum) {
		t.Fatalf("Verify() error = %v, want ErrChecksum", err)
	}

	var ce *ChecksumError
	if !errors.As(err, &ce) {
		t.Fatalf("Verify() error type = %T, want *ChecksumError", err)
	}
	if ce.Want != 0x02CF || ce.Got != 0x02CF-1+0x11 {
		t.Errorf("ChecksumError = %+v, want tape 0x02CF, computed 0x%04X", ce, 0x02CF-1+0x11)
	}
	if want := "checksum mismatch: tape 0x02CF, computed 0x02DF"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestDecoder_MaxPayload(t *testing.T) {
	t.Parallel()

	samples, err := NewEncoder().Encode(helloImage())
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	d := NewDecoder()
	d.Params.MaxPayload = 2

	res, err := d.Decode(samples)
	if !errors.Is(err, ErrPayloadTooLarge) {
		t.Errorf("Decode() error = %v, want ErrPayloadTooLarge", err)
	}
	if res != nil {
		t.Errorf("Decode() result = %+v, want nil", res)
	}
}

func TestDecoder_LongFilename(t *testing.T) {
	t.Parallel()

	img := helloImage()
	img.Filename = "ABCDEFGHIJKLMNOPQRST"

	samples, err := NewEncoder().Encode(img)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	res, err := NewDecoder().Decode(samples)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if res.Filename != "ABCDEFGHIJKLMNOP" {
		t.Errorf("Filename = %q, want %q", res.Filename, "ABCDEFGHIJKLMNOP")
	}
	if !res.Terminated {
		t.Error("Terminated = false, want true")
	}
}

func TestDecoder_UnterminatedFilename(t *testing.T) {
	t.Parallel()

	e := NewEncoder()
	body := []byte{TypeBasic}
	body = append(body, bytes.Repeat([]byte{'A'}, FilenameField)...)
	body = append(body, 0x00, 0x80, 0x02, 0x80) // 0x8000-0x8002
	body = append(body, 9, 8)
	body = append(body, 0x13, 0x01)

	res, err := NewDecoder().Decode(frame(e, body...))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if res.Terminated {
		t.Error("Terminated = true, want false")
	}
	if want := strings.Repeat("A", MaxFilename); res.Filename != want {
		t.Errorf("Filename = %q, want %q", res.Filename, want)
	}
	if !bytes.Equal(res.Payload, []byte{9, 8}) {
		t.Errorf("Payload = %v, want [9 8]", res.Payload)
	}
	if err := res.Verify(); err != nil {
		t.Errorf("Verify() error = %v", err)
	}
}

func TestDecoder_Magic(t *testing.T) {
	t.Parallel()

	img := helloImage()
	img.FileType = TypeMachine
	samples, err := NewEncoder().Encode(img)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	d := NewDecoder()
	res, err := d.Decode(samples)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if res.Magic != [4]byte{'V', 'Z', 'F', '1'} {
		t.Errorf("Magic = %q, want VZF1", res.Magic[:])
	}

	d.Magic = [4]byte{'V', 'Z', 'F', 'X'}
	res, err = d.Decode(samples)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if res.Magic != d.Magic {
		t.Errorf("Magic = %q, want %q", res.Magic[:], d.Magic[:])
	}
}

func TestDecoder_Truncated(t *testing.T) {
	t.Parallel()

	e := NewEncoder()
	img := helloImage()
	samples, err := e.Encode(img)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	tests := []struct {
		name string
		cut  int
		want string
	}{
		{"in payload", payloadOffset(e, img) + e.Params.SamplesPerByte() + 40, "payload"},
		{"in addresses", payloadOffset(e, img) - 2*e.Params.SamplesPerByte(), "addresses"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res, err := NewDecoder().Decode(samples[:tt.cut])
			if !errors.Is(err, ErrStreamExhausted) {
				t.Fatalf("Decode() error = %v, want ErrStreamExhausted", err)
			}
			if !strings.HasPrefix(err.Error(), tt.want) {
				t.Errorf("Decode() error = %q, want prefix %q", err, tt.want)
			}
			if res != nil {
				t.Error("Decode() returned a result with an error")
			}
		})
	}
}

// A flip next to a level change only moves a run edge and decodes to the
// original. A flip inside a run splits a cycle; the extra ERROR decisions
// each take a bit slot, so the byte decoder can fall out of step and every
// later byte of the frame, checksum included, may be damaged. Bytes before
// the flip and the header are never touched, and damage is never silent.
func TestDecoder_SingleSampleFlip(t *testing.T) {
	t.Parallel()

	e := NewEncoder()
	e.Params.LeadSilence = 100

	img := helloImage()
	img.Payload = []byte{0x5A, 0x33, 0x77, 0x11, 0x22, 0x44}
	clean, err := e.Encode(img)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	d := NewDecoder()
	base, err := d.Decode(clean)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	spb := e.Params.SamplesPerByte()
	off := payloadOffset(e, img)
	end := off + len(img.Payload)*spb

	var inRun, changed, spread, extraErrors int
	samples := make([]uint8, len(clean))
	for i := off; i < end; i++ {
		copy(samples, clean)
		if samples[i] == LevelHigh {
			samples[i] = LevelLow
		} else {
			samples[i] = LevelHigh
		}
		k := (i - off) / spb
		edge := clean[i] != clean[i-1] || clean[i] != clean[i+1]

		res, err := d.Decode(samples)
		if err != nil {
			t.Fatalf("flip at %d: Decode() error = %v", i-off, err)
		}

		same := bytes.Equal(res.Payload, img.Payload)
		if edge {
			if !same || res.Verify() != nil || res.BitErrors != base.BitErrors {
				t.Errorf("flip at run edge %d: payload %X, verify %v, bit errors %d, want clean decode",
					i-off, res.Payload, res.Verify(), res.BitErrors)
			}
			continue
		}

		inRun++
		if res.Filename != img.Filename || res.StartAddress != img.StartAddress || res.EndAddress != img.EndAddress() {
			t.Errorf("flip at %d: header changed to %q 0x%04X-0x%04X", i-off, res.Filename, res.StartAddress, res.EndAddress)
		}
		if !bytes.Equal(res.Payload[:k], img.Payload[:k]) {
			t.Errorf("flip in byte %d: earlier bytes changed to %X", k, res.Payload[:k])
		}
		if !same && res.Verify() == nil {
			t.Errorf("flip at %d: payload %X changed without a checksum mismatch", i-off, res.Payload)
		}

		if !same {
			changed++
		}
		if !bytes.Equal(res.Payload[k+1:], img.Payload[k+1:]) {
			spread++
		}
		if res.BitErrors-base.BitErrors > 1 {
			extraErrors++
		}
	}

	t.Logf("%d flips inside runs: %d changed the payload, %d damaged later bytes, %d cost more than one ERROR bit",
		inRun, changed, spread, extraErrors)
	if spread == 0 {
		t.Error("no flip inside a run damaged a later byte, want the byte decoder to lose step")
	}
}

func BenchmarkDecoder_Decode(b *testing.B) {
	img := helloImage()
	img.Payload = make([]byte, 4096)
	samples, err := NewEncoder().Encode(img)
	if err != nil {
		b.Fatal(err)
	}
	d := NewDecoder()

	b.ResetTimer()
	for b.Loop() {
		if _, err := d.Decode(samples); err != nil {
			b.Fatal(err)
		}
	}
}
