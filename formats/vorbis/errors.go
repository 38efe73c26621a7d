// SPDX-License-Identifier: EPL-2.0

package vorbis

import "errors"

// ErrNotVorbisFile wraps the error oggvorbis reports for unreadable input.
var ErrNotVorbisFile = errors.New("not an Ogg Vorbis file")
