// SPDX-License-Identifier: EPL-2.0

package audio

import "io"

// UnknownFrames marks a TrackMeta whose container does not carry a total
// frame count.
const UnknownFrames int64 = -1

// TrackMeta holds the header fields of a track. Zero Channels or SampleRate
// and UnknownFrames mean the container did not provide the value.
type TrackMeta struct {
	Codec       string
	Channels    int
	SampleRate  int
	TotalFrames int64
	BitDepth    int
}

// Validate reports ErrMissingMetadata when a field required for decoding is absent.
func (m TrackMeta) Validate() error {
	switch {
	case m.Channels <= 0:
		return &missingField{"channel count"}
	case m.SampleRate <= 0:
		return &missingField{"sample rate"}
	case m.TotalFrames < 0:
		return &missingField{"total frame count"}
	}

	return nil
}

// Seconds returns the track length in seconds. The metadata must be valid.
func (m TrackMeta) Seconds() float64 {
	return float64(m.TotalFrames) / float64(m.SampleRate)
}

type missingField struct{ name string }

func (e *missingField) Error() string { return ErrMissingMetadata.Error() + ": " + e.name }
func (e *missingField) Is(target error) bool { return target == ErrMissingMetadata }

// Track is a demuxed track: its identifier and the codec parameters used to
// build a Decoder for it.
type Track struct {
	ID   int
	Meta TrackMeta
}

// Packet is one encoded unit pulled from a Demuxer. Payload is private to the
// format that produced it; only a Decoder made by the same Demuxer reads it.
type Packet struct {
	TrackID int
	Payload any
}

// SampleRun is the interleaved output of one decoded packet. Samples is owned
// by the Decoder and is only valid until its next Decode call.
type SampleRun struct {
	Channels int
	Samples  []float64
}

// Frames returns the number of whole frames in the run.
func (r SampleRun) Frames() int {
	if r.Channels <= 0 {
		return 0
	}

	return len(r.Samples) / r.Channels
}

// Decoder turns packets into interleaved float64 samples in [-1,1].
type Decoder interface {
	Decode(p Packet) (SampleRun, error)
}

// Demuxer is a probed container positioned at its default track.
type Demuxer interface {
	// DefaultTrack returns the track that Load decodes.
	DefaultTrack() (Track, error)
	// NewDecoder builds a decoder for the codec parameters of t.
	NewDecoder(t Track) (Decoder, error)
	// NextPacket returns the next packet in stream order, or io.EOF once the
	// stream is exhausted.
	NextPacket() (Packet, error)
	// Close releases any resources.
	Close() error
}

// Format recognises a container and opens a Demuxer over it.
type Format interface {
	// Name is the canonical hint for the format (e.g. "wav", "flac").
	Name() string
	// Probe reads the container headers from rs. rs is positioned at its start.
	Probe(rs io.ReadSeeker) (Demuxer, error)
}
