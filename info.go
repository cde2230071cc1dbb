// SPDX-License-Identifier: EPL-2.0

package audmatrix

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/ik5/audmatrix/audio"
)

// Info probes the file at path and returns its track header. No decoder is
// built and no samples are read. Fields the container does not carry are
// left at zero or audio.UnknownFrames.
func Info(path string, opts ...Option) (audio.TrackMeta, error) {
	o := newOptions(opts)

	f, err := openFile(path, o)
	if err != nil {
		return audio.TrackMeta{}, err
	}
	defer f.Close()

	dmx, track, err := openTrack(f, path, o)
	if err != nil {
		return audio.TrackMeta{}, err
	}
	defer dmx.Close()

	return track.Meta, nil
}

// SampleRate returns the native sample rate of the file at path.
func SampleRate(path string, opts ...Option) (int, error) {
	meta, err := Info(path, opts...)
	if err != nil {
		return 0, err
	}

	if meta.SampleRate <= 0 {
		return 0, &audio.StepError{Step: "sample rate", Path: path, Err: fmt.Errorf("%w: sample rate", audio.ErrMissingMetadata)}
	}

	return meta.SampleRate, nil
}

// FileDuration returns the length in seconds of the file at path, computed
// from the header's frame count and sample rate.
func FileDuration(path string, opts ...Option) (float64, error) {
	meta, err := Info(path, opts...)
	if err != nil {
		return 0, err
	}

	if err := meta.Validate(); err != nil {
		return 0, &audio.StepError{Step: "duration", Path: path, Err: err}
	}

	return meta.Seconds(), nil
}

// InfoMany probes several files concurrently.
//
// Files are probed using up to runtime.NumCPU() goroutines. Results are
// returned in the same order as the input paths. The first failure cancels
// the probes that have not started yet and is returned alone.
//
// Example:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
//	defer cancel()
//
//	metas, err := audmatrix.InfoMany(ctx, paths...)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	for i, m := range metas {
//		fmt.Printf("%s: %d Hz, %d ch\n", paths[i], m.SampleRate, m.Channels)
//	}
func InfoMany(ctx context.Context, paths ...string) ([]audio.TrackMeta, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]audio.TrackMeta, len(paths))

	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			meta, err := Info(path)
			if err != nil {
				return err
			}

			results[i] = meta
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
