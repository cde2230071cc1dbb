// SPDX-License-Identifier: EPL-2.0

// Package audio provides the format-independent core of audmatrix.
//
// This package contains:
//   - Matrix, the dense (channels, frames) float64 sample block
//   - Format, Demuxer and Decoder, the narrow contract each container package implements
//   - Registry for format registration and probing
//   - Window and Collector, which decode an exact frame range
//   - ToMono for channel mixing
//   - duration helpers for sample buffers and spectrogram shapes
//
// # Decoding Contract
//
// A container package implements three small interfaces:
//
//	type Format interface {
//	    Name() string
//	    Probe(rs io.ReadSeeker) (Demuxer, error)
//	}
//
//	type Demuxer interface {
//	    DefaultTrack() (Track, error)
//	    NewDecoder(t Track) (Decoder, error)
//	    NextPacket() (Packet, error) // io.EOF at end of stream
//	    Close() error
//	}
//
//	type Decoder interface {
//	    Decode(p Packet) (SampleRun, error)
//	}
//
// The Collector only sees these interfaces, so a codec library can be
// swapped without touching the windowing logic.
//
// # Windows
//
// NewWindow turns seconds into frames (rounding down) and clamps the
// duration to what is left of the track:
//
//	w, err := audio.NewWindow(meta, 2.0, &duration)
//	m, err := (&audio.Collector{}).Collect(ctx, dmx, dec, track, w)
//
// The matrix returned by Collect has exactly w.LengthFrames frames. A stream
// that ends early is an error (ErrShortStream), never a shorter matrix.
//
// # Format Registry
//
//	registry := audio.NewRegistry()
//	registry.Register(wav.Format{}, "wave")
//	dmx, err := registry.Probe(file, "wav")
//
// Probe tries the hinted format first and falls back to the format named
// by the file's magic bytes.
//
// # Sample Format
//
// Samples are float64 in the range [-1.0, 1.0]. A Matrix is stored row-major
// by channel: channel c occupies Data[c*Frames : (c+1)*Frames].
//
// # Error Handling
//
// Failures wrap one of the package sentinels (ErrIO, ErrUnsupportedFormat,
// ErrMissingMetadata, ErrInvalidWindow, ErrDecodeFault, ErrShortStream,
// ErrConversionOverflow, ErrInvalidArgument); test them with errors.Is.
package audio
