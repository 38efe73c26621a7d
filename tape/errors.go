// SPDX-License-Identifier: EPL-2.0

package tape

import (
	"errors"
	"fmt"
)

var (
	// ErrStreamExhausted is returned when the samples run out in the middle
	// of a measurement. It is always fatal.
	ErrStreamExhausted = errors.New("sample stream exhausted")

	// ErrPayloadTooLarge is returned for payloads whose length cannot be
	// carried by the 16-bit address pair, or that exceed Params.MaxPayload.
	ErrPayloadTooLarge = errors.New("payload too large")

	// ErrInvalidParams is wrapped by Params.Validate.
	ErrInvalidParams = errors.New("invalid tape parameters")

	// ErrSync is matched by every *SyncError.
	ErrSync = errors.New("tape sync failed")

	// ErrChecksum is matched by every *ChecksumError.
	ErrChecksum = errors.New("checksum mismatch")
)

// SyncPhase names the step of the sync engine that failed.
type SyncPhase int

const (
	PhaseCarrier SyncPhase = iota + 1
	PhaseAlign
	PhaseLeader
	PhasePreamble
)

func (p SyncPhase) String() string {
	switch p {
	case PhaseCarrier:
		return "carrier search"
	case PhaseAlign:
		return "byte alignment"
	case PhaseLeader:
		return "leader"
	case PhasePreamble:
		return "preamble"
	default:
		return fmt.Sprintf("SyncPhase(%d)", int(p))
	}
}

// SyncError reports where the sync engine lost the signal.
type SyncError struct {
	Phase SyncPhase
	// LeaderBytes is how many leader bytes matched before the failure.
	LeaderBytes int
	// PreambleBytes is how many preamble bytes matched before the failure.
	PreambleBytes int
	// Got is the offending byte, when one was decoded.
	Got byte
	// Err is the underlying cause, typically ErrStreamExhausted.
	Err error
}

func (e *SyncError) Error() string {
	msg := fmt.Sprintf("tape sync failed in %s after %d leader bytes", e.Phase, e.LeaderBytes)
	if e.Phase == PhasePreamble && e.Err == nil {
		msg += fmt.Sprintf(", %d preamble bytes, got 0x%02X", e.PreambleBytes, e.Got)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

func (e *SyncError) Unwrap() error { return e.Err }

func (e *SyncError) Is(target error) bool { return target == ErrSync }

// ChecksumError carries both sides of a failed checksum comparison.
type ChecksumError struct {
	Want uint16 // transmitted
	Got  uint16 // recomputed
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("checksum mismatch: tape 0x%04X, computed 0x%04X", e.Want, e.Got)
}

func (e *ChecksumError) Is(target error) bool { return target == ErrChecksum }
