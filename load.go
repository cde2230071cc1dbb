// SPDX-License-Identifier: EPL-2.0

package audmatrix

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/ik5/audmatrix/audio"
)

// Load decodes the file at path into a (channels, frames) matrix and returns
// it with the track's native sample rate. By default the whole track is read
// and mixed down to mono.
//
// Example:
//
//	m, sr, err := audmatrix.Load("speech.wav", audmatrix.WithOffset(2), audmatrix.WithDuration(3))
//	if err != nil {
//	    return err
//	}
//	fmt.Println(m.Shape(), sr)
func Load(path string, opts ...Option) (*audio.Matrix, int, error) {
	return LoadContext(context.Background(), path, opts...)
}

// LoadContext is Load with a context checked between packets.
func LoadContext(ctx context.Context, path string, opts ...Option) (*audio.Matrix, int, error) {
	o := newOptions(opts)

	f, err := openFile(path, o)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	return load(ctx, f, path, o)
}

// LoadReader decodes from rs. With no WithHint option the format is found by
// its magic bytes alone.
func LoadReader(ctx context.Context, rs io.ReadSeeker, opts ...Option) (*audio.Matrix, int, error) {
	return load(ctx, rs, "", newOptions(opts))
}

func openFile(path string, o *loadOptions) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &audio.StepError{Step: "open", Path: path, Err: fmt.Errorf("%w: %w", audio.ErrIO, err)}
	}

	if o.hint == "" {
		o.hint = audio.HintFromPath(path)
	}

	return f, nil
}

// openTrack probes rs and returns the demuxer with its default track. The
// caller closes the demuxer.
func openTrack(rs io.ReadSeeker, path string, o *loadOptions) (audio.Demuxer, audio.Track, error) {
	dmx, err := o.registry.Probe(rs, o.hint)
	if err != nil {
		return nil, audio.Track{}, &audio.StepError{Step: "probe", Path: path, Err: err}
	}

	track, err := dmx.DefaultTrack()
	if err != nil {
		dmx.Close()
		return nil, audio.Track{}, &audio.StepError{Step: "track", Path: path, Err: err}
	}

	o.logger.Debug("probed",
		"path", path,
		"hint", o.hint,
		"codec", track.Meta.Codec,
		"channels", track.Meta.Channels,
		"sample_rate", track.Meta.SampleRate,
		"total_frames", track.Meta.TotalFrames,
	)

	return dmx, track, nil
}

func load(ctx context.Context, rs io.ReadSeeker, path string, o *loadOptions) (*audio.Matrix, int, error) {
	dmx, track, err := openTrack(rs, path, o)
	if err != nil {
		return nil, 0, err
	}
	defer dmx.Close()

	w, err := audio.NewWindow(track.Meta, o.offset, o.duration)
	if err != nil {
		return nil, 0, &audio.StepError{Step: "window", Path: path, Err: err}
	}

	o.logger.Debug("window", "path", path, "offset_frames", w.OffsetFrames, "length_frames", w.LengthFrames)

	dec, err := dmx.NewDecoder(track)
	if err != nil {
		return nil, 0, &audio.StepError{Step: "decoder", Path: path, Err: err}
	}

	c := &audio.Collector{MaxPackets: o.maxPackets, Logger: o.logger}

	m, err := c.Collect(ctx, dmx, dec, track, w)
	if err != nil {
		return nil, 0, &audio.StepError{Step: "decode", Path: path, Err: err}
	}

	if o.mono && m.Channels > 1 {
		m = audio.ToMono(m)
	}

	return m, track.Meta.SampleRate, nil
}
