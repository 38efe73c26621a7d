// SPDX-License-Identifier: EPL-2.0

package tape

// SyncInfo describes how the decoder locked onto the signal.
type SyncInfo struct {
	// CarrierOffset is the sample index of the first leader-level sample.
	CarrierOffset int
	// LeaderBytes counts the leader bytes seen, including the one used for
	// alignment.
	LeaderBytes int
}

// Sync finds the leader, aligns to its byte boundaries, consumes it and
// verifies the preamble. On success the cursor sits on the first header
// byte.
func (d *Decoder) Sync(c *Cursor) (SyncInfo, error) {
	p := d.Params
	log := discardLogger(d.Logger)

	var info SyncInfo

	for {
		s, ok := c.Next()
		if !ok {
			return info, &SyncError{Phase: PhaseCarrier, Err: ErrStreamExhausted}
		}
		if s > p.LeaderThreshold {
			c.Unread(s)
			break
		}
	}
	info.CarrierOffset = c.Offset()
	log.Debug("carrier found", "offset", info.CarrierOffset)

	// The carrier only marks a high sample, not a byte edge, so bit
	// decisions slide through an 8-bit window until it reads a leader byte.
	// Whole-byte reads from a misaligned start would never see 0x80.
	var window byte
	valid := 0
	aligned := false
	for range p.SyncBudget * 8 {
		bit, err := d.NextBit(c)
		if err != nil {
			return info, &SyncError{Phase: PhaseAlign, Err: err}
		}
		if bit == BitError {
			continue
		}
		window = window<<1 | byte(bit)
		valid++
		if valid >= 8 && window == LeaderByte {
			aligned = true
			break
		}
	}
	if !aligned {
		log.Debug("leader not found", "budget", p.SyncBudget)
		return info, &SyncError{Phase: PhaseAlign}
	}
	info.LeaderBytes = 1

	var b byte
	for {
		var err error
		b, err = d.NextByte(c)
		if err != nil {
			return info, &SyncError{Phase: PhaseLeader, LeaderBytes: info.LeaderBytes, Err: err}
		}
		if b != LeaderByte {
			break
		}
		info.LeaderBytes++
		if info.LeaderBytes%50 == 0 {
			log.Debug("leader progress", "bytes", info.LeaderBytes)
		}
	}

	for n := 0; n < p.PreambleCount; n++ {
		if n > 0 {
			var err error
			b, err = d.NextByte(c)
			if err != nil {
				return info, &SyncError{
					Phase:         PhasePreamble,
					LeaderBytes:   info.LeaderBytes,
					PreambleBytes: n,
					Err:           err,
				}
			}
		}
		if b != PreambleByte {
			log.Debug("lost sync", "leader", info.LeaderBytes, "preamble", n, "got", b)
			return info, &SyncError{
				Phase:         PhasePreamble,
				LeaderBytes:   info.LeaderBytes,
				PreambleBytes: n,
				Got:           b,
			}
		}
	}
	log.Debug("preamble ok", "leader", info.LeaderBytes)

	return info, nil
}
