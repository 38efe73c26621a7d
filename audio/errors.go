// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrUnknownFormat         = errors.New("no decoder registered for format")
	ErrUnsupportedChannels   = errors.New("only mono recordings are supported")
	ErrUnsupportedSampleRate = errors.New("recording sample rate does not match")
)
