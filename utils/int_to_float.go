// SPDX-License-Identifier: EPL-2.0

package utils

// IntToFloat64 scales a signed integer sample of the given bit depth into
// [-1, 1). Bit depths outside 1..32 return 0.
func IntToFloat64(v, bitDepth int) float64 {
	if bitDepth < 1 || bitDepth > 32 {
		return 0
	}

	return float64(v) / float64(int64(1)<<(bitDepth-1))
}

// Uint8ToFloat64 scales an unsigned 8-bit sample (silence at 128) into [-1, 1).
func Uint8ToFloat64(v int) float64 {
	return float64(v-128) / 128.0
}
