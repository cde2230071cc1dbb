// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"context"
	"fmt"

	"github.com/ik5/audmatrix/audio"
	"github.com/ik5/audmatrix/internal/audiotest"
)

// Example_collector decodes a two second window out of a scripted stream
// whose packets do not line up with the window.
func Example_collector() {
	meta := audio.TrackMeta{Channels: 2, SampleRate: 8000, TotalFrames: 8000 * 5}
	dmx := audiotest.NewDemuxer(meta, audiotest.UniformBlocks(40000, 1152), audiotest.SineWave(8000, 440))

	track, _ := dmx.DefaultTrack()
	dec, _ := dmx.NewDecoder(track)

	duration := 2.0
	w, err := audio.NewWindow(track.Meta, 1.25, &duration)
	if err != nil {
		fmt.Printf("Window error: %v\n", err)
		return
	}

	m, err := (&audio.Collector{}).Collect(context.Background(), dmx, dec, track, w)
	if err != nil {
		fmt.Printf("Collect error: %v\n", err)
		return
	}

	fmt.Printf("Window: offset %d, length %d frames\n", w.OffsetFrames, w.LengthFrames)
	fmt.Printf("Shape: (%d, %d)\n", m.Channels, m.Frames)
	// Output:
	// Window: offset 10000, length 16000 frames
	// Shape: (2, 16000)
}

// Example_toMono demonstrates converting stereo to mono.
func Example_toMono() {
	stereo, _ := audio.NewMatrixFromRows(
		[]float64{0.5, 1.0, -0.5},
		[]float64{0.0, 0.5, -0.5},
	)

	mono := audio.ToMono(stereo)

	fmt.Printf("Input shape: (%d, %d)\n", stereo.Channels, stereo.Frames)
	fmt.Printf("Output shape: (%d, %d)\n", mono.Channels, mono.Frames)
	fmt.Printf("Samples: %v\n", mono.Row(0))
	// Output:
	// Input shape: (2, 3)
	// Output shape: (1, 3)
	// Samples: [0.25 0.75 -0.5]
}

// Example_durationFromShape recovers the signal length behind a spectrogram.
func Example_durationFromShape() {
	shape := audio.NewSpectrogramShape(431)

	seconds, err := audio.DurationFromShape(shape, audio.DefaultSampleRate)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("Samples: %d\n", shape.Samples())
	fmt.Printf("Duration: %.3f seconds\n", seconds)
	// Output:
	// Samples: 220160
	// Duration: 9.985 seconds
}

// Example_registry demonstrates the format registry.
func Example_registry() {
	registry := audio.NewRegistry()

	registry.Register(&audiotest.Format{FormatName: "mock"}, "fake")

	f, ok := registry.Get("FAKE")
	if !ok {
		fmt.Println("Format not found")
		return
	}

	fmt.Printf("Retrieved format: %s\n", f.Name())

	_, ok = registry.Get("unknown")
	if !ok {
		fmt.Println("Unknown format not found in registry")
	}
	// Output:
	// Retrieved format: mock
	// Unknown format not found in registry
}
