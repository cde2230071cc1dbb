// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 files.
// Format implements audio.Format:
//
//	registry.Register(mp3.Format{})
//
// # Output Format
//
// go-mp3 always produces 16-bit stereo, so every track reports two channels
// even when the file is mono. Each packet is one 1152-frame MPEG frame.
//
// # Frame Count
//
// The total frame count is derived from go-mp3's decoded length, which
// requires a seekable source and a scan of all frame headers at probe time.
// Without a seekable source the count is audio.UnknownFrames and windowed
// reads fail with audio.ErrMissingMetadata.
//
// go-mp3 decodes while it demuxes, so corrupt frames are reported by
// NextPacket as audio.ErrDecodeFault rather than by the Decoder.
package mp3
