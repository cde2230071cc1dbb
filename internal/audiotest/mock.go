// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides scripted demuxers and decoders for tests.
package audiotest

import (
	"errors"
	"io"
	"math"

	"github.com/ik5/audmatrix/audio"
)

// Waveform returns the sample of channel at frame.
type Waveform func(frame int, channel int) float64

// IndexWave encodes the position of every sample in its value
// (frame*10 + channel) so tests can check exactly which frames were kept.
func IndexWave(frame, channel int) float64 { return float64(frame*10 + channel) }

// SineWave returns a sine of frequency Hz at sampleRate, shifted by a quarter
// period per channel.
func SineWave(sampleRate int, frequency float64) Waveform {
	return func(frame, channel int) float64 {
		t := float64(frame) / float64(sampleRate)
		return math.Sin(2*math.Pi*frequency*t + float64(channel)*math.Pi/2)
	}
}

// Step is one scripted NextPacket result.
type Step struct {
	// TrackID of the packet.
	TrackID int
	// Frames carried by the packet.
	Frames int
	// Err, when set, is returned by NextPacket instead of a packet.
	Err error
	// DecodeErr, when set, is returned by Decode for this packet.
	DecodeErr error
}

// block is the Payload of scripted packets.
type block struct {
	start     int
	frames    int
	decodeErr error
}

// Demuxer replays a script of packets. Frames of packets on Track.ID are
// numbered consecutively from zero; foreign packets do not advance the count.
type Demuxer struct {
	Track    audio.Track
	TrackErr error
	Steps    []Step
	Wave     Waveform
	// EndErr is returned once Steps is exhausted; io.EOF when nil.
	EndErr error

	Pulled int
	Closed bool

	pos   int
	frame int
}

// NewDemuxer scripts a single-track stream of packets of the given sizes.
func NewDemuxer(meta audio.TrackMeta, blockSizes []int, wave Waveform) *Demuxer {
	steps := make([]Step, len(blockSizes))
	for i, n := range blockSizes {
		steps[i] = Step{Frames: n}
	}

	return &Demuxer{
		Track: audio.Track{ID: 0, Meta: meta},
		Steps: steps,
		Wave:  wave,
	}
}

// UniformBlocks splits total frames into packets of size n (the last one shorter).
func UniformBlocks(total, n int) []int {
	var sizes []int
	for total > 0 {
		b := min(n, total)
		sizes = append(sizes, b)
		total -= b
	}

	return sizes
}

func (d *Demuxer) DefaultTrack() (audio.Track, error) {
	if d.TrackErr != nil {
		return audio.Track{}, d.TrackErr
	}

	return d.Track, nil
}

func (d *Demuxer) NewDecoder(t audio.Track) (audio.Decoder, error) {
	return &Decoder{Channels: t.Meta.Channels, Wave: d.Wave}, nil
}

func (d *Demuxer) NextPacket() (audio.Packet, error) {
	if d.pos >= len(d.Steps) {
		if d.EndErr != nil {
			return audio.Packet{}, d.EndErr
		}
		return audio.Packet{}, io.EOF
	}

	s := d.Steps[d.pos]
	d.pos++
	d.Pulled++

	if s.Err != nil {
		return audio.Packet{}, s.Err
	}

	b := block{frames: s.Frames, decodeErr: s.DecodeErr}
	if s.TrackID == d.Track.ID {
		b.start = d.frame
		d.frame += s.Frames
	} else {
		b.start = -1
	}

	return audio.Packet{TrackID: s.TrackID, Payload: b}, nil
}

func (d *Demuxer) Close() error {
	d.Closed = true
	return nil
}

// Decoder synthesises the samples of scripted packets.
type Decoder struct {
	Channels int
	Wave     Waveform

	// Decoded counts Decode calls; Allocs counts sample buffer allocations.
	Decoded int
	Allocs  int
	// ForeignDecoded counts packets decoded that did not belong to the track.
	ForeignDecoded int

	buf []float64
}

var errNotScripted = errors.New("audiotest: packet was not produced by audiotest.Demuxer")

func (d *Decoder) Decode(p audio.Packet) (audio.SampleRun, error) {
	b, ok := p.Payload.(block)
	if !ok {
		return audio.SampleRun{}, errNotScripted
	}

	d.Decoded++
	if b.start < 0 {
		d.ForeignDecoded++
	}

	if b.decodeErr != nil {
		return audio.SampleRun{}, b.decodeErr
	}

	n := b.frames * d.Channels
	if cap(d.buf) < n {
		d.buf = make([]float64, n)
		d.Allocs++
	}
	d.buf = d.buf[:n]

	for f := range b.frames {
		for c := range d.Channels {
			v := 0.0
			if d.Wave != nil {
				v = d.Wave(b.start+f, c)
			}
			d.buf[f*d.Channels+c] = v
		}
	}

	return audio.SampleRun{Channels: d.Channels, Samples: d.buf}, nil
}

// Format is a registry entry that hands out a prepared demuxer.
type Format struct {
	FormatName string
	Demuxer    audio.Demuxer
	ProbeErr   error

	Probes int
}

func (f *Format) Name() string { return f.FormatName }

func (f *Format) Probe(rs io.ReadSeeker) (audio.Demuxer, error) {
	f.Probes++
	if f.ProbeErr != nil {
		return nil, f.ProbeErr
	}

	return f.Demuxer, nil
}
