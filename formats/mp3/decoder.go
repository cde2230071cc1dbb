// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"errors"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/audmatrix/audio"
	"github.com/ik5/audmatrix/internal/pcm"
)

var ErrNotMp3File = errors.New("not an MP3 file")

const (
	// go-mp3 always produces stereo 16-bit little-endian PCM
	channels      = 2
	bytesPerFrame = channels * 2

	// one MPEG-1 Layer III frame
	packetFrames = 1152
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
	Length() int64
}

// Format opens MPEG-1/2 Layer III streams.
type Format struct{}

func (Format) Name() string { return "mp3" }

func (Format) Probe(rs io.ReadSeeker) (audio.Demuxer, error) {
	dec, err := gomp3.NewDecoder(rs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotMp3File, err)
	}

	return newDemuxer(dec), nil
}

type demuxer struct {
	r     mp3Reader
	track audio.Track
	buf   []byte
	err   error
}

func newDemuxer(r mp3Reader) *demuxer {
	meta := audio.TrackMeta{
		Codec:       "mp3",
		Channels:    channels,
		SampleRate:  r.SampleRate(),
		TotalFrames: audio.UnknownFrames,
		BitDepth:    16,
	}

	// Length is in bytes of decoded PCM, or -1 when the source cannot seek
	if n := r.Length(); n >= 0 {
		meta.TotalFrames = n / bytesPerFrame
	}

	return &demuxer{
		r:     r,
		track: audio.Track{Meta: meta},
		buf:   make([]byte, packetFrames*bytesPerFrame),
	}
}

func (d *demuxer) DefaultTrack() (audio.Track, error) { return d.track, nil }

func (d *demuxer) NewDecoder(t audio.Track) (audio.Decoder, error) {
	if t.ID != d.track.ID {
		return nil, fmt.Errorf("%w: no track %d", audio.ErrInvalidArgument, t.ID)
	}

	return pcm.NewDecoder(channels, 16), nil
}

// NextPacket decodes the next 1152 frames. go-mp3 couples demuxing and
// decoding, so decoder failures surface here as audio.ErrDecodeFault.
func (d *demuxer) NextPacket() (audio.Packet, error) {
	if d.err != nil {
		return audio.Packet{}, d.err
	}

	n, err := io.ReadFull(d.r, d.buf)
	switch {
	case err == nil:
	case err == io.EOF || err == io.ErrUnexpectedEOF:
		d.err = io.EOF
	default:
		d.err = fmt.Errorf("%w: %w", audio.ErrDecodeFault, err)
	}

	n -= n % bytesPerFrame
	if n == 0 {
		if d.err == nil {
			d.err = io.EOF
		}

		return audio.Packet{}, d.err
	}

	return audio.Packet{TrackID: d.track.ID, Payload: pcm.S16LE(d.buf[:n])}, nil
}

func (d *demuxer) Close() error { return nil }
