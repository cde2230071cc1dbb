// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"errors"
	"fmt"
	"io"

	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"

	"github.com/ik5/audmatrix/audio"
	"github.com/ik5/audmatrix/utils"
)

var ErrNotFlacFile = errors.New("not a FLAC file")

// frameParser is an interface for flac.Stream to allow testing
type frameParser interface {
	ParseNext() (*frame.Frame, error)
}

// Format opens native FLAC streams.
type Format struct{}

func (Format) Name() string { return "flac" }

func (Format) Probe(rs io.ReadSeeker) (audio.Demuxer, error) {
	stream, err := flac.New(rs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFlacFile, err)
	}

	info := stream.Info
	meta := audio.TrackMeta{
		Codec:       "flac",
		Channels:    int(info.NChannels),
		SampleRate:  int(info.SampleRate),
		TotalFrames: audio.UnknownFrames,
		BitDepth:    int(info.BitsPerSample),
	}

	// zero in STREAMINFO means the encoder did not know the length
	if info.NSamples > 0 && info.NSamples <= 1<<62 {
		meta.TotalFrames = int64(info.NSamples)
	}

	return newDemuxer(stream, meta), nil
}

type demuxer struct {
	p     frameParser
	track audio.Track
	err   error
}

func newDemuxer(p frameParser, meta audio.TrackMeta) *demuxer {
	return &demuxer{p: p, track: audio.Track{Meta: meta}}
}

func (d *demuxer) DefaultTrack() (audio.Track, error) { return d.track, nil }

func (d *demuxer) NewDecoder(t audio.Track) (audio.Decoder, error) {
	if t.ID != d.track.ID {
		return nil, fmt.Errorf("%w: no track %d", audio.ErrInvalidArgument, t.ID)
	}

	return &decoder{channels: t.Meta.Channels, bitDepth: t.Meta.BitDepth}, nil
}

// NextPacket parses the next FLAC frame. Subframe decoding happens while
// parsing, so corrupt frames fail here with audio.ErrDecodeFault.
func (d *demuxer) NextPacket() (audio.Packet, error) {
	if d.err != nil {
		return audio.Packet{}, d.err
	}

	f, err := d.p.ParseNext()
	if err != nil {
		switch {
		case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
			d.err = err
		default:
			d.err = fmt.Errorf("%w: %w", audio.ErrDecodeFault, err)
		}

		return audio.Packet{}, d.err
	}

	return audio.Packet{TrackID: d.track.ID, Payload: f}, nil
}

func (d *demuxer) Close() error { return nil }

// decoder interleaves the planar subframes of a parsed frame.
type decoder struct {
	channels int
	bitDepth int
	buf      []float64
}

func (d *decoder) Decode(p audio.Packet) (audio.SampleRun, error) {
	f, ok := p.Payload.(*frame.Frame)
	if !ok || f == nil {
		return audio.SampleRun{}, fmt.Errorf("%w: unexpected payload %T", audio.ErrDecodeFault, p.Payload)
	}

	if len(f.Subframes) != d.channels {
		return audio.SampleRun{}, fmt.Errorf("%w: frame has %d channels, stream has %d",
			audio.ErrDecodeFault, len(f.Subframes), d.channels)
	}

	bitDepth := int(f.BitsPerSample)
	if bitDepth == 0 {
		bitDepth = d.bitDepth
	}

	frames := int(f.BlockSize)
	for ch, sub := range f.Subframes {
		if sub == nil || len(sub.Samples) < frames {
			return audio.SampleRun{}, fmt.Errorf("%w: subframe %d is short", audio.ErrDecodeFault, ch)
		}
	}

	n := frames * d.channels
	if cap(d.buf) < n {
		d.buf = make([]float64, n)
	}
	out := d.buf[:n]

	for ch, sub := range f.Subframes {
		for i := range frames {
			out[i*d.channels+ch] = utils.IntToFloat64(int(sub.Samples[i]), bitDepth)
		}
	}

	return audio.SampleRun{Channels: d.channels, Samples: out}, nil
}
