// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/ik5/audmatrix/audio"
	"github.com/ik5/audmatrix/internal/pcm"
)

// mockOggVorbisReader simulates the oggvorbis.Reader for testing
type mockOggVorbisReader struct {
	sampleRate int
	channels   int
	length     int64
	samples    []float32
	offset     int
	chunk      int // values handed out per Read, 0 for as many as fit
	emptyReads int // leading reads that return nothing
	err        error
	reads      int
}

func (m *mockOggVorbisReader) SampleRate() int { return m.sampleRate }
func (m *mockOggVorbisReader) Channels() int   { return m.channels }
func (m *mockOggVorbisReader) Length() int64   { return m.length }

func (m *mockOggVorbisReader) Read(buf []float32) (int, error) {
	m.reads++

	if m.emptyReads > 0 {
		m.emptyReads--
		return 0, nil
	}

	if m.offset >= len(m.samples) {
		if m.err != nil {
			return 0, m.err
		}
		return 0, io.EOF
	}

	n := min(len(buf), len(m.samples)-m.offset)
	if m.chunk > 0 {
		n = min(n, m.chunk)
	}

	copy(buf, m.samples[m.offset:m.offset+n])
	m.offset += n

	return n, nil
}

// ramp returns interleaved samples where channel c of frame f is f/1000 - c.
func ramp(channels, frames int) []float32 {
	out := make([]float32, channels*frames)
	for f := range frames {
		for c := range channels {
			out[f*channels+c] = float32(f)/1000 - float32(c)
		}
	}

	return out
}

func TestFormat_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{"not ogg", []byte("This is not Ogg Vorbis data")},
		{"empty", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := (Format{}).Probe(bytes.NewReader(tt.data)); !errors.Is(err, ErrNotVorbisFile) {
				t.Errorf("Probe() error = %v, want ErrNotVorbisFile", err)
			}
		})
	}
}

func TestDemuxer_Metadata(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		length int64
		want   int64
	}{
		{"known length", 48000, 48000},
		{"unknown length", 0, audio.UnknownFrames},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := newDemuxer(&mockOggVorbisReader{sampleRate: 48000, channels: 2, length: tt.length})
			track, _ := d.DefaultTrack()

			want := audio.TrackMeta{Codec: "vorbis", Channels: 2, SampleRate: 48000, TotalFrames: tt.want}
			if track.Meta != want {
				t.Errorf("Meta = %+v, want %+v", track.Meta, want)
			}
		})
	}
}

func TestDemuxer_Collect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		channels int
		chunk    int
	}{
		{"mono", 1, 0},
		{"stereo", 2, 0},
		{"5.1 in small reads", 6, 6 * 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := &mockOggVorbisReader{
				sampleRate: 44100,
				channels:   tt.channels,
				length:     4000,
				samples:    ramp(tt.channels, 4000),
				chunk:      tt.chunk,
			}

			d := newDemuxer(r)
			track, _ := d.DefaultTrack()
			dec, _ := d.NewDecoder(track)

			m, err := (&audio.Collector{}).Collect(context.Background(), d, dec, track,
				audio.Window{OffsetFrames: 1500, LengthFrames: 2000})
			if err != nil {
				t.Fatalf("Collect() error = %v", err)
			}

			for c := range tt.channels {
				for _, f := range []int{0, 999, 1999} {
					want := float64(float32(f+1500)/1000 - float32(c))
					if m.At(c, f) != want {
						t.Errorf("At(%d, %d) = %v, want %v", c, f, m.At(c, f), want)
					}
				}
			}
		})
	}
}

func TestDemuxer_SkipsEmptyReads(t *testing.T) {
	t.Parallel()

	r := &mockOggVorbisReader{sampleRate: 8000, channels: 1, samples: ramp(1, 10), emptyReads: 3}
	d := newDemuxer(r)

	pkt, err := d.NextPacket()
	if err != nil {
		t.Fatalf("NextPacket() error = %v", err)
	}

	if got := len(pkt.Payload.(pcm.Float32)); got != 10 {
		t.Errorf("packet holds %d samples, want 10", got)
	}
}

func TestDemuxer_StuckStream(t *testing.T) {
	t.Parallel()

	r := &mockOggVorbisReader{sampleRate: 8000, channels: 1, samples: ramp(1, 10), emptyReads: maxEmptyReads + 1}
	d := newDemuxer(r)

	if _, err := d.NextPacket(); !errors.Is(err, audio.ErrDecodeFault) {
		t.Errorf("NextPacket() error = %v, want ErrDecodeFault", err)
	}

	if r.reads != maxEmptyReads {
		t.Errorf("Read called %d times, want %d", r.reads, maxEmptyReads)
	}
}

func TestDemuxer_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{"end of stream", io.EOF, io.EOF},
		{"truncated page", io.ErrUnexpectedEOF, io.ErrUnexpectedEOF},
		{"corrupt packet", errors.New("vorbis: invalid packet"), audio.ErrDecodeFault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := &mockOggVorbisReader{sampleRate: 8000, channels: 2, err: tt.err}
			d := newDemuxer(r)

			for range 2 {
				if _, err := d.NextPacket(); !errors.Is(err, tt.wantErr) {
					t.Errorf("NextPacket() error = %v, want %v", err, tt.wantErr)
				}
			}

			if r.reads != 1 {
				t.Errorf("Read called %d times, want 1", r.reads)
			}
		})
	}
}
