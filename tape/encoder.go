// SPDX-License-Identifier: EPL-2.0

package tape

import (
	"fmt"
	"log/slog"
)

// SampleFor returns the amplitude of a bit at offset samples into its bit
// period. Offsets past the sixth slot stay in the last slot.
//
//	slot: 0    1    2    3         4         5
//	      HIGH LOW  HIGH 1?LOW:HIGH 1?HIGH:LOW LOW
func (p Params) SampleFor(bit int, offset int) uint8 {
	switch offset / p.halfCycle() {
	case 0, 2:
		return p.High
	case 1:
		return p.Low
	case 3:
		if bit == 1 {
			return p.Low
		}
		return p.High
	case 4:
		if bit == 1 {
			return p.High
		}
		return p.Low
	default:
		return p.Low
	}
}

// Encoder turns tape images into 8-bit unsigned samples.
type Encoder struct {
	Params Params
	Logger *slog.Logger
}

// NewEncoder returns an Encoder using DefaultParams.
func NewEncoder() *Encoder {
	return &Encoder{Params: DefaultParams()}
}

// EncodeByte appends the waveform of b, most significant bit first, to dst.
func (e *Encoder) EncodeByte(dst []uint8, b byte) []uint8 {
	spb := e.Params.SamplesPerBit()
	for i := 7; i >= 0; i-- {
		bit := int(b>>uint(i)) & 1
		for s := range spb {
			dst = append(dst, e.Params.SampleFor(bit, s))
		}
	}

	return dst
}

// SampleCount is the exact number of samples Encode produces for img.
func (e *Encoder) SampleCount(img *Image) int {
	p := e.Params
	nbytes := p.LeaderCount + p.PreambleCount +
		1 + len(img.WireName()) + 1 + // type, name, terminator
		4 + len(img.Payload) + 2 + // addresses, payload, checksum
		p.LeadOutCount

	return 2*p.LeadSilence + p.GapSilenceSamples + p.GapNullSamples + nbytes*p.SamplesPerByte()
}

// Encode renders the whole tape: silence, leader, preamble, header, gap,
// addresses, payload, checksum, lead-out and trailing silence.
func (e *Encoder) Encode(img *Image) ([]uint8, error) {
	if err := e.Params.Validate(); err != nil {
		return nil, err
	}
	if len(img.Payload) > MaxPayload {
		return nil, fmt.Errorf("%w: %d bytes", ErrPayloadTooLarge, len(img.Payload))
	}

	log := discardLogger(e.Logger)
	p := e.Params
	start, end := img.StartAddress, img.EndAddress()
	sum := img.Checksum()

	log.Debug("encoding tape",
		"filename", string(img.WireName()),
		"type", fmt.Sprintf("0x%02X", img.FileType),
		"start", fmt.Sprintf("0x%04X", start),
		"end", fmt.Sprintf("0x%04X", end),
		"checksum", fmt.Sprintf("0x%04X", sum),
		"samples", e.SampleCount(img),
	)

	out := make([]uint8, 0, e.SampleCount(img))
	out = fill(out, p.Silence, p.LeadSilence)
	out = e.repeat(out, LeaderByte, p.LeaderCount)
	out = e.repeat(out, PreambleByte, p.PreambleCount)

	out = e.EncodeByte(out, img.FileType)
	for _, c := range img.WireName() {
		out = e.EncodeByte(out, c)
	}
	out = e.EncodeByte(out, 0)

	out = fill(out, p.Silence, p.GapSilenceSamples)
	out = fill(out, p.Null, p.GapNullSamples)

	for _, b := range []byte{byte(start), byte(start >> 8), byte(end), byte(end >> 8)} {
		out = e.EncodeByte(out, b)
	}
	for _, b := range img.Payload {
		out = e.EncodeByte(out, b)
	}
	out = e.EncodeByte(out, byte(sum))
	out = e.EncodeByte(out, byte(sum>>8))

	out = e.repeat(out, LeadOutByte, p.LeadOutCount)
	out = fill(out, p.Silence, p.LeadSilence)

	return out, nil
}

func (e *Encoder) repeat(dst []uint8, b byte, n int) []uint8 {
	for range n {
		dst = e.EncodeByte(dst, b)
	}

	return dst
}

func fill(dst []uint8, level uint8, n int) []uint8 {
	for range n {
		dst = append(dst, level)
	}

	return dst
}
