// SPDX-License-Identifier: EPL-2.0

package cas

import "errors"

var (
	// ErrFraming is returned when the leader or preamble is missing.
	ErrFraming = errors.New("bad cassette framing")

	// ErrTruncated is returned when the stream ends inside a field.
	ErrTruncated = errors.New("cassette stream truncated")
)
