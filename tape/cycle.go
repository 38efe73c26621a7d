// SPDX-License-Identifier: EPL-2.0

package tape

// Cycle is one high run plus the following low run, classified by length.
type Cycle int

const (
	CycleError Cycle = iota
	CycleShort
	CycleLong
)

func (c Cycle) String() string {
	switch c {
	case CycleShort:
		return "SHORT"
	case CycleLong:
		return "LONG"
	default:
		return "ERROR"
	}
}

// Bit is a bit decision; BitError means the cycles did not form a bit.
type Bit int

const (
	Bit0 Bit = iota
	Bit1
	BitError
)

func (b Bit) String() string {
	switch b {
	case Bit0:
		return "0"
	case Bit1:
		return "1"
	default:
		return "ERROR"
	}
}

// Classify maps a cycle length in samples to its class.
func (p Params) Classify(total int) Cycle {
	switch {
	case total > p.ShortMin && total <= p.ShortMax:
		return CycleShort
	case total > p.LongMin && total <= p.LongMax:
		return CycleLong
	default:
		return CycleError
	}
}

// NextCycle measures one high run and the low run after it. The sample that
// ends the low run is left in the cursor's lookahead slot.
func (d *Decoder) NextCycle(c *Cursor) (Cycle, error) {
	th := d.Params.Threshold

	var s uint8
	var ok bool
	for {
		if s, ok = c.Next(); !ok {
			return CycleError, ErrStreamExhausted
		}
		if s > th {
			break
		}
	}

	hi := 1
	for {
		if s, ok = c.Next(); !ok {
			return CycleError, ErrStreamExhausted
		}
		if s <= th {
			break
		}
		hi++
	}

	lo := 1
	for {
		if s, ok = c.Next(); !ok {
			return CycleError, ErrStreamExhausted
		}
		if s > th {
			c.Unread(s)
			break
		}
		lo++
	}

	return d.Params.Classify(hi + lo), nil
}

// NextBit reads one bit: SHORT,LONG is 0 and SHORT,SHORT,SHORT is 1.
// Decoding stops at the first cycle that rules both out.
func (d *Decoder) NextBit(c *Cursor) (Bit, error) {
	c1, err := d.NextCycle(c)
	if err != nil {
		return BitError, err
	}
	if c1 != CycleShort {
		return BitError, nil
	}

	c2, err := d.NextCycle(c)
	if err != nil {
		return BitError, err
	}
	switch c2 {
	case CycleLong:
		return Bit0, nil
	case CycleError:
		return BitError, nil
	}

	c3, err := d.NextCycle(c)
	if err != nil {
		return BitError, err
	}
	if c3 == CycleShort {
		return Bit1, nil
	}

	return BitError, nil
}

// NextByte makes eight bit decisions, most significant first. An error
// decision uses up its slot without shifting the accumulator.
func (d *Decoder) NextByte(c *Cursor) (byte, error) {
	var v byte
	for range 8 {
		bit, err := d.NextBit(c)
		if err != nil {
			return v, err
		}
		if bit == BitError {
			c.bitErrors++
			continue
		}
		v = v<<1 | byte(bit)
	}

	return v, nil
}
