// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/mewkiz/flac/frame"

	"github.com/ik5/audmatrix/audio"
)

// mockParser replays prepared frames, then err (io.EOF when nil).
type mockParser struct {
	frames []*frame.Frame
	err    error
	parsed int
}

func (m *mockParser) ParseNext() (*frame.Frame, error) {
	if m.parsed >= len(m.frames) {
		if m.err != nil {
			return nil, m.err
		}
		return nil, io.EOF
	}

	f := m.frames[m.parsed]
	m.parsed++

	return f, nil
}

// block builds a frame whose channel c holds first+i+c*100 at position i.
func block(channels, size, first int) *frame.Frame {
	f := &frame.Frame{Header: frame.Header{BlockSize: uint16(size), BitsPerSample: 16}}

	for c := range channels {
		sub := &frame.Subframe{Samples: make([]int32, size), NSamples: size}
		for i := range size {
			sub.Samples[i] = int32(first + i + c*100)
		}
		f.Subframes = append(f.Subframes, sub)
	}

	return f
}

func stereoMeta(total int64) audio.TrackMeta {
	return audio.TrackMeta{Codec: "flac", Channels: 2, SampleRate: 44100, TotalFrames: total, BitDepth: 16}
}

func TestFormat_InvalidInput(t *testing.T) {
	t.Parallel()

	if _, err := (Format{}).Probe(bytes.NewReader([]byte("RIFF not a flac"))); !errors.Is(err, ErrNotFlacFile) {
		t.Errorf("Probe() error = %v, want ErrNotFlacFile", err)
	}
}

func TestDecoder_Interleaves(t *testing.T) {
	t.Parallel()

	dec := &decoder{channels: 2, bitDepth: 16}

	run, err := dec.Decode(audio.Packet{Payload: block(2, 3, 16384)})
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	want := []float64{
		16384.0 / 32768, 16484.0 / 32768,
		16385.0 / 32768, 16485.0 / 32768,
		16386.0 / 32768, 16486.0 / 32768,
	}

	if run.Channels != 2 || len(run.Samples) != len(want) {
		t.Fatalf("run = %d channels, %d samples, want 2, %d", run.Channels, len(run.Samples), len(want))
	}

	for i, w := range want {
		if run.Samples[i] != w {
			t.Errorf("Samples[%d] = %v, want %v", i, run.Samples[i], w)
		}
	}
}

func TestDecoder_BitDepthFromStream(t *testing.T) {
	t.Parallel()

	f := block(1, 1, 1<<22)
	f.BitsPerSample = 0

	run, err := (&decoder{channels: 1, bitDepth: 24}).Decode(audio.Packet{Payload: f})
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if run.Samples[0] != 0.5 {
		t.Errorf("Samples[0] = %v, want 0.5", run.Samples[0])
	}
}

func TestDecoder_Faults(t *testing.T) {
	t.Parallel()

	short := block(2, 4, 0)
	short.Subframes[1].Samples = short.Subframes[1].Samples[:2]

	tests := []struct {
		name    string
		payload any
	}{
		{"wrong payload", []int{1, 2}},
		{"nil frame", (*frame.Frame)(nil)},
		{"channel mismatch", block(1, 4, 0)},
		{"short subframe", short},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := (&decoder{channels: 2, bitDepth: 16}).Decode(audio.Packet{Payload: tt.payload})
			if !errors.Is(err, audio.ErrDecodeFault) {
				t.Errorf("Decode() error = %v, want ErrDecodeFault", err)
			}
		})
	}
}

func TestDemuxer_Collect(t *testing.T) {
	t.Parallel()

	// 4 frames of 4096 with a short last frame, as a FLAC encoder writes them
	p := &mockParser{frames: []*frame.Frame{
		block(2, 4096, 0),
		block(2, 4096, 4096),
		block(2, 4096, 8192),
		block(2, 1000, 12288),
	}}

	d := newDemuxer(p, stereoMeta(13288))
	track, _ := d.DefaultTrack()
	dec, _ := d.NewDecoder(track)

	m, err := (&audio.Collector{}).Collect(context.Background(), d, dec, track,
		audio.Window{OffsetFrames: 5000, LengthFrames: 4000})
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	for _, f := range []int{0, 3191, 3192, 3999} {
		want := float64(5000+f) / 32768
		if m.At(0, f) != want {
			t.Errorf("At(0, %d) = %v, want %v", f, m.At(0, f), want)
		}
		if m.At(1, f) != want+100.0/32768 {
			t.Errorf("At(1, %d) = %v, want %v", f, m.At(1, f), want+100.0/32768)
		}
	}

	if p.parsed != 3 {
		t.Errorf("parsed %d frames, want 3", p.parsed)
	}
}

func TestDemuxer_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{"end of stream", nil, audio.ErrShortStream},
		{"truncated frame", io.ErrUnexpectedEOF, audio.ErrShortStream},
		{"crc mismatch", errors.New("frame.Frame.Parse: CRC-16 checksum mismatch"), audio.ErrDecodeFault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := &mockParser{frames: []*frame.Frame{block(2, 4096, 0)}, err: tt.err}
			d := newDemuxer(p, stereoMeta(8192))
			track, _ := d.DefaultTrack()
			dec, _ := d.NewDecoder(track)

			_, err := (&audio.Collector{}).Collect(context.Background(), d, dec, track,
				audio.Window{LengthFrames: 8192})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Collect() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
