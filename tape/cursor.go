// SPDX-License-Identifier: EPL-2.0

package tape

// Cursor reads a sample buffer forward. The only backwards movement is the
// one-sample lookahead slot filled by Unread. A Cursor belongs to a single
// decode pass and is not safe for concurrent use.
type Cursor struct {
	samples []uint8
	pos     int

	peek    uint8
	hasPeek bool

	bitErrors int
}

// NewCursor positions a cursor at the first sample.
func NewCursor(samples []uint8) *Cursor {
	return &Cursor{samples: samples}
}

// Next returns the next sample, or ok=false at end of stream.
func (c *Cursor) Next() (s uint8, ok bool) {
	if c.hasPeek {
		c.hasPeek = false
		return c.peek, true
	}
	if c.pos >= len(c.samples) {
		return 0, false
	}
	s = c.samples[c.pos]
	c.pos++

	return s, true
}

// Unread puts s in the lookahead slot; the next call to Next returns it.
// The slot holds one sample, a second Unread replaces it.
func (c *Cursor) Unread(s uint8) {
	c.peek = s
	c.hasPeek = true
}

// Offset is the index of the sample Next would return.
func (c *Cursor) Offset() int {
	if c.hasPeek {
		return c.pos - 1
	}

	return c.pos
}

// Remaining is the number of samples Next can still return.
func (c *Cursor) Remaining() int {
	n := len(c.samples) - c.pos
	if c.hasPeek {
		n++
	}

	return n
}

// BitErrors counts the bit decisions NextByte absorbed so far.
func (c *Cursor) BitErrors() int { return c.bitErrors }
