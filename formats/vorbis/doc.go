// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis decoding.
//
// This package uses github.com/jfreymuth/oggvorbis, which reads the Ogg pages
// and decodes the Vorbis packets in one step. Format implements audio.Format:
//
//	registry.Register(vorbis.Format{}, "oga", "vorbis")
//
// Samples come out of the decoder as float32 and are widened to float64
// without scaling.
//
// # Frame Count
//
// The total frame count is the granule position of the last page, which
// oggvorbis finds by seeking to the end of the stream during Probe. A stream
// whose length cannot be determined reports audio.UnknownFrames.
package vorbis
