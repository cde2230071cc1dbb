// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package uses github.com/go-audio/aiff to read the COMM and SSND
// chunks. Format implements audio.Format:
//
//	registry.Register(aiff.Format{}, "aif", "aifc")
//
// # Supported Formats
//
//   - signed big-endian PCM at 8, 16, 24 or 32 bits
//   - any channel count and sample rate
//
// The total frame count is the numSampleFrames field of the COMM chunk.
//
// # AIFF vs. WAV
//
// AIFF is similar to WAV but:
//   - Uses big-endian byte order (WAV uses little-endian)
//   - Stores sample rate as 80-bit float (WAV uses 32-bit int)
//   - 8-bit samples are signed (unsigned in WAV)
//
// # File Extensions
//
// AIFF files typically use .aif or .aiff; .aifc marks AIFF-C, of which only
// the uncompressed variants decode.
package aiff
