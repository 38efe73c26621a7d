// SPDX-License-Identifier: EPL-2.0

package vz

import "errors"

// ErrShortHeader is returned for input shorter than HeaderSize.
var ErrShortHeader = errors.New("vz file shorter than its header")
