// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Uint8ToFloat32 maps an unsigned 8-bit sample to [-1, 1), 128 being 0.
func Uint8ToFloat32(v uint8) float32 {
	return (float32(v) - 128) / 128
}

// Float32ToUint8 is the inverse of Uint8ToFloat32. Values are rounded to the
// nearest level and clamped to [0, 255].
func Float32ToUint8(x float32) uint8 {
	v := math.Round(float64(x)*128 + 128)
	if v < 0 {
		return 0
	}
	if v > math.MaxUint8 {
		return math.MaxUint8
	}

	return uint8(v)
}

// IntToFloat32 scales a signed integer sample of the given bit depth to
// [-1, 1). Unknown depths are treated as 16-bit.
func IntToFloat32(v int, bitDepth int) float32 {
	switch bitDepth {
	case 8:
		return float32(v) / 128.0
	case 24:
		return float32(v) / 8388608.0
	case 32:
		return float32(v) / 2147483648.0
	default:
		return float32(v) / 32768.0
	}
}
