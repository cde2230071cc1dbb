// SPDX-License-Identifier: EPL-2.0

// Package flac provides FLAC decoding on top of github.com/mewkiz/flac.
//
// Each packet is one FLAC frame. mewkiz/flac decodes the subframes and undoes
// stereo decorrelation while it parses, so the Decoder here only interleaves
// the planar channels and scales them by the frame's bit depth.
//
//	registry.Register(flac.Format{})
//
// The total frame count comes from the STREAMINFO block. Encoders that
// stream FLAC may leave it at zero, in which case the track reports
// audio.UnknownFrames.
package flac
