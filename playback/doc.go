// SPDX-License-Identifier: EPL-2.0

// Package playback plays a sample matrix through an audio output.
//
// The matrix is interleaved once, up front, and handed to a Cursor. From then
// on only the device thread touches it: the Cursor either fills a callback
// buffer (Fill) or encodes float32 little-endian bytes for devices that pull
// from an io.Reader (Read). Neither path allocates or blocks.
//
//	err := playback.Play(ctx, &playback.OtoDevice{}, m, 44100)
//
// Play keeps the stream open until the device has drained the cursor, the
// nominal length plus a tail (WithTail, DefaultTail) has passed, or ctx ends.
//
// OtoDevice uses github.com/ebitengine/oto/v3. oto permits one context per
// process, so the first Open fixes the output format; opening a different
// channel count or sample rate later fails with ErrFormatChanged.
package playback
