// SPDX-License-Identifier: EPL-2.0

package tape

import (
	"fmt"
	"log/slog"
)

// Amplitude levels of the 8-bit unsigned waveform.
const (
	LevelHigh    uint8 = 195
	LevelLow     uint8 = 61
	LevelSilence uint8 = 127
	LevelNull    uint8 = 0
)

// Framing bytes.
const (
	LeaderByte   byte = 0x80
	PreambleByte byte = 0xFE
	LeadOutByte  byte = 0x00
)

const (
	// DefaultSampleRate is the only rate the VZ hardware recordings are
	// reproduced at.
	DefaultSampleRate = 22050

	// HalfShortCycleNS is the duration of one half-cycle of the short tone.
	HalfShortCycleNS = 287103

	// GapNS is the pause between the filename and the address words.
	GapNS = 3065000

	// DefaultGapNullSamples is the tail of the gap written at LevelNull.
	DefaultGapNullSamples = 10

	// HalfCyclesPerBit is fixed by the waveform alphabet.
	HalfCyclesPerBit = 6

	// FilenameField is the width of the filename field including its
	// terminator.
	FilenameField = 17

	// MaxFilename is the longest filename that survives the round trip.
	MaxFilename = FilenameField - 1

	// MaxPayload is the largest payload whose length is still expressible
	// as an end-start address difference.
	MaxPayload = 0xFFFF
)

// Params holds every protocol constant of the modem. The zero value is not
// usable; start from DefaultParams and override fields.
type Params struct {
	SampleRate int

	// HalfCycleSamples is the length of one waveform slot. When zero it is
	// derived from SampleRate and HalfShortCycleNS.
	HalfCycleSamples int

	LeaderCount   int
	PreambleCount int
	LeadOutCount  int

	// LeadSilence is written before the leader and after the lead-out.
	LeadSilence       int
	GapSilenceSamples int
	GapNullSamples    int

	High    uint8
	Low     uint8
	Silence uint8
	Null    uint8

	// Threshold splits high from low samples in the cycle classifier; a
	// sample is high when strictly greater.
	Threshold uint8
	// LeaderThreshold is the coarser level the carrier search waits for.
	LeaderThreshold uint8

	// Cycle bounds; each class is the half-open range (Min, Max].
	ShortMin, ShortMax int
	LongMin, LongMax   int

	// SyncBudget bounds the byte alignment phase, in byte reads.
	SyncBudget int
	// MaxPayload bounds the payload length a decoder will accept.
	MaxPayload int
}

// DefaultParams returns the VZ200 protocol constants at 22050 Hz.
func DefaultParams() Params {
	return ParamsForRate(DefaultSampleRate)
}

// ParamsForRate returns the protocol constants for recordings made at
// sampleRate. Timings are derived from their durations; the cycle bounds
// are scaled from the 22050 Hz ones.
func ParamsForRate(sampleRate int) Params {
	gap := int(int64(sampleRate) * GapNS / 1_000_000_000)
	scale := func(n int) int { return n * sampleRate / DefaultSampleRate }

	return Params{
		SampleRate:        sampleRate,
		HalfCycleSamples:  int(int64(sampleRate) * HalfShortCycleNS / 1_000_000_000),
		LeaderCount:       255,
		PreambleCount:     5,
		LeadOutCount:      20,
		LeadSilence:       sampleRate,
		GapSilenceSamples: max(gap-DefaultGapNullSamples, 0),
		GapNullSamples:    DefaultGapNullSamples,
		High:              LevelHigh,
		Low:               LevelLow,
		Silence:           LevelSilence,
		Null:              LevelNull,
		Threshold:         128,
		LeaderThreshold:   160,
		ShortMin:          scale(9),
		ShortMax:          scale(14),
		LongMin:           scale(17),
		LongMax:           scale(29),
		SyncBudget:        400,
		MaxPayload:        MaxPayload,
	}
}

// Validate reports the first inconsistent field.
func (p Params) Validate() error {
	switch {
	case p.SampleRate <= 0:
		return fmt.Errorf("%w: sample rate %d", ErrInvalidParams, p.SampleRate)
	case p.halfCycle() <= 0:
		return fmt.Errorf("%w: half-cycle of %d samples", ErrInvalidParams, p.halfCycle())
	case p.LeaderCount < 1 || p.PreambleCount < 1:
		return fmt.Errorf("%w: leader %d, preamble %d", ErrInvalidParams, p.LeaderCount, p.PreambleCount)
	case p.LeadOutCount < 0 || p.LeadSilence < 0 || p.GapSilenceSamples < 0 || p.GapNullSamples < 0:
		return fmt.Errorf("%w: negative segment length", ErrInvalidParams)
	case p.ShortMin >= p.ShortMax || p.LongMin >= p.LongMax || p.ShortMax > p.LongMin:
		return fmt.Errorf("%w: cycle bounds (%d,%d] (%d,%d]", ErrInvalidParams,
			p.ShortMin, p.ShortMax, p.LongMin, p.LongMax)
	case p.High <= p.Threshold || p.Low > p.Threshold:
		return fmt.Errorf("%w: levels %d/%d do not straddle threshold %d", ErrInvalidParams,
			p.High, p.Low, p.Threshold)
	case p.LeaderThreshold <= p.Threshold || p.LeaderThreshold >= p.High:
		return fmt.Errorf("%w: leader threshold %d", ErrInvalidParams, p.LeaderThreshold)
	case p.Silence > p.Threshold || p.Null > p.Threshold:
		return fmt.Errorf("%w: silence level above threshold", ErrInvalidParams)
	case p.SyncBudget < 1:
		return fmt.Errorf("%w: sync budget %d", ErrInvalidParams, p.SyncBudget)
	case p.MaxPayload < 0 || p.MaxPayload > MaxPayload:
		return fmt.Errorf("%w: max payload %d", ErrInvalidParams, p.MaxPayload)
	}

	return nil
}

func (p Params) halfCycle() int {
	if p.HalfCycleSamples > 0 {
		return p.HalfCycleSamples
	}

	return int(int64(p.SampleRate) * HalfShortCycleNS / 1_000_000_000)
}

// SamplesPerBit is the length of one encoded bit.
func (p Params) SamplesPerBit() int { return HalfCyclesPerBit * p.halfCycle() }

// SamplesPerByte is the length of one encoded byte.
func (p Params) SamplesPerByte() int { return 8 * p.SamplesPerBit() }

func discardLogger(l *slog.Logger) *slog.Logger {
	if l != nil {
		return l
	}

	return slog.New(slog.DiscardHandler)
}
