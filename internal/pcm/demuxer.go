// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audmatrix/audio"
)

// BlockFrames is the number of frames carried by one packet.
const BlockFrames = 1024

// IntReader is the block reader shared by go-audio's WAV and AIFF decoders.
type IntReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Demuxer serves a single integer PCM track as fixed size packets.
type Demuxer struct {
	r        IntReader
	track    audio.Track
	buf      *goaudio.IntBuffer
	unsigned bool
	err      error
}

// NewDemuxer wraps r. unsigned marks 8-bit data stored with silence at 128.
func NewDemuxer(r IntReader, meta audio.TrackMeta, format *goaudio.Format, unsigned bool) *Demuxer {
	channels := max(meta.Channels, 1)

	return &Demuxer{
		r:        r,
		track:    audio.Track{Meta: meta},
		unsigned: unsigned && meta.BitDepth == 8,
		buf: &goaudio.IntBuffer{
			Format:         format,
			Data:           make([]int, BlockFrames*channels),
			SourceBitDepth: meta.BitDepth,
		},
	}
}

func (d *Demuxer) DefaultTrack() (audio.Track, error) { return d.track, nil }

func (d *Demuxer) NewDecoder(t audio.Track) (audio.Decoder, error) {
	if t.ID != d.track.ID {
		return nil, fmt.Errorf("%w: no track %d", audio.ErrInvalidArgument, t.ID)
	}

	return NewDecoder(t.Meta.Channels, t.Meta.BitDepth), nil
}

// NextPacket returns the next block of interleaved samples. The payload
// shares the demuxer's buffer and is valid until the next call.
func (d *Demuxer) NextPacket() (audio.Packet, error) {
	if d.err != nil {
		return audio.Packet{}, d.err
	}

	n, err := d.r.PCMBuffer(d.buf)
	switch {
	case err == nil:
	case err == io.EOF || err == io.ErrUnexpectedEOF:
		d.err = err
	default:
		d.err = fmt.Errorf("%w: %w", audio.ErrIO, err)
	}

	channels := max(d.track.Meta.Channels, 1)
	n -= n % channels

	if n == 0 {
		if d.err == nil {
			d.err = io.EOF
		}

		return audio.Packet{}, d.err
	}

	data := d.buf.Data[:n]
	if d.unsigned {
		return audio.Packet{TrackID: d.track.ID, Payload: Uint8(data)}, nil
	}

	return audio.Packet{TrackID: d.track.ID, Payload: Ints(data)}, nil
}

func (d *Demuxer) Close() error { return nil }
