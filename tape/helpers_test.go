// SPDX-License-Identifier: EPL-2.0

package tape

// cycleSamples renders cycles of the given total lengths, half high and
// half low, followed by one high sample so the last low run is terminated.
func cycleSamples(totals ...int) []uint8 {
	var out []uint8
	for _, t := range totals {
		hi := t / 2
		for range hi {
			out = append(out, LevelHigh)
		}
		for range t - hi {
			out = append(out, LevelLow)
		}
	}

	return append(out, LevelHigh)
}

// frame renders lead silence, leader and preamble followed by raw bytes and
// the lead-out, with no gap.
func frame(e *Encoder, body ...byte) []uint8 {
	p := e.Params
	out := fill(nil, p.Silence, p.LeadSilence)
	out = e.repeat(out, LeaderByte, p.LeaderCount)
	out = e.repeat(out, PreambleByte, p.PreambleCount)
	for _, b := range body {
		out = e.EncodeByte(out, b)
	}
	out = e.repeat(out, LeadOutByte, p.LeadOutCount)

	return fill(out, p.Silence, p.LeadSilence)
}

// payloadOffset is the index of the first payload sample Encode writes.
func payloadOffset(e *Encoder, img *Image) int {
	p := e.Params
	header := p.LeaderCount + p.PreambleCount + 1 + len(img.WireName()) + 1

	return p.LeadSilence + header*p.SamplesPerByte() +
		p.GapSilenceSamples + p.GapNullSamples + 4*p.SamplesPerByte()
}

func helloImage() *Image {
	return &Image{
		Header: Header{
			Magic:        [4]byte{'V', 'Z', 'F', '0'},
			Filename:     "HELLO",
			FileType:     TypeBasic,
			StartAddress: 0x7AE9,
		},
		Payload: []byte{0x01, 0x02, 0x03},
	}
}
