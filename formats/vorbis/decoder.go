// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"errors"
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/audmatrix/audio"
	"github.com/ik5/audmatrix/internal/pcm"
)

var ErrNotVorbisFile = errors.New("not an Ogg Vorbis file")

const (
	packetFrames = 1024

	// reads returning nothing without an error before the stream is
	// considered stuck
	maxEmptyReads = 64
)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Length() int64
	Read([]float32) (int, error)
}

// Format opens Ogg Vorbis streams.
type Format struct{}

func (Format) Name() string { return "ogg" }

func (Format) Probe(rs io.ReadSeeker) (audio.Demuxer, error) {
	dec, err := oggvorbis.NewReader(rs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotVorbisFile, err)
	}

	return newDemuxer(dec), nil
}

type demuxer struct {
	r     oggReader
	track audio.Track
	buf   []float32
	err   error
}

func newDemuxer(r oggReader) *demuxer {
	meta := audio.TrackMeta{
		Codec:       "vorbis",
		Channels:    r.Channels(),
		SampleRate:  r.SampleRate(),
		TotalFrames: audio.UnknownFrames,
	}

	// oggvorbis reports 0 when the length is unknown
	if n := r.Length(); n > 0 {
		meta.TotalFrames = n
	}

	return &demuxer{
		r:     r,
		track: audio.Track{Meta: meta},
		buf:   make([]float32, packetFrames*max(meta.Channels, 1)),
	}
}

func (d *demuxer) DefaultTrack() (audio.Track, error) { return d.track, nil }

func (d *demuxer) NewDecoder(t audio.Track) (audio.Decoder, error) {
	if t.ID != d.track.ID {
		return nil, fmt.Errorf("%w: no track %d", audio.ErrInvalidArgument, t.ID)
	}

	return pcm.NewDecoder(t.Meta.Channels, 0), nil
}

// NextPacket decodes the next block of interleaved samples. The Vorbis
// decoder runs inside oggvorbis.Reader, so its failures surface here as
// audio.ErrDecodeFault.
func (d *demuxer) NextPacket() (audio.Packet, error) {
	if d.err != nil {
		return audio.Packet{}, d.err
	}

	channels := max(d.track.Meta.Channels, 1)

	var (
		n   int
		err error
	)

	for empty := 0; n == 0 && err == nil; empty++ {
		if empty == maxEmptyReads {
			err = fmt.Errorf("%w: no samples after %d reads", audio.ErrDecodeFault, empty)
			break
		}

		n, err = d.r.Read(d.buf)
	}

	switch {
	case err == nil:
	case err == io.EOF || err == io.ErrUnexpectedEOF || errors.Is(err, audio.ErrDecodeFault):
		d.err = err
	default:
		d.err = fmt.Errorf("%w: %w", audio.ErrDecodeFault, err)
	}

	n -= n % channels
	if n == 0 {
		if d.err == nil {
			d.err = fmt.Errorf("%w: partial frame", audio.ErrDecodeFault)
		}

		return audio.Packet{}, d.err
	}

	return audio.Packet{TrackID: d.track.ID, Payload: pcm.Float32(d.buf[:n])}, nil
}

func (d *demuxer) Close() error { return nil }
