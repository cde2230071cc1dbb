// SPDX-License-Identifier: EPL-2.0

// Package audmatrix decodes audio files into float64 sample matrices.
//
// A call names a file and, optionally, a window of it. The result is a
// (channels, frames) matrix holding exactly the requested frames and the
// track's native sample rate. Nothing is resampled.
//
// # Supported Formats
//
//   - WAV (8, 16, 24 and 32-bit integer PCM) via formats/wav
//   - AIFF (8, 16, 24 and 32-bit) via formats/aiff
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - FLAC via formats/flac
//
// The format is taken from WithHint, else from the file extension. When the
// hinted format rejects the file, the leading magic bytes decide.
//
// # Quick Start
//
//	// Seconds 2 to 5, mixed down to mono
//	m, sr, err := audmatrix.Load("speech.wav",
//	    audmatrix.WithOffset(2),
//	    audmatrix.WithDuration(3),
//	)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(m.Shape()) // 1 132300 at 44100 Hz
//
//	// Every channel, whole file
//	m, sr, err = audmatrix.Load("song.flac", audmatrix.WithMono(false))
//
// Offsets are rounded down to a whole frame. A duration running past the end
// of the track is clamped; an offset at or past the end is an error
// (audio.ErrInvalidWindow).
//
// # Metadata
//
// SampleRate, FileDuration and Info read only the container header:
//
//	sr, err := audmatrix.SampleRate("song.mp3")
//	secs, err := audmatrix.FileDuration("song.mp3")
//	metas, err := audmatrix.InfoMany(ctx, paths...)
//
// Duration also converts spectrogram shapes and sample matrices to seconds:
//
//	shape := audio.NewSpectrogramShape(431) // n_fft 2048, hop 512, centred
//	secs, err := audmatrix.Duration(audmatrix.DurationSource{Shape: &shape})
//
// # Playback
//
// The playback package plays a matrix on the default output device:
//
//	err := playback.Play(ctx, &playback.OtoDevice{}, m, sr)
//
// # Writing WAV Files
//
//	f, _ := os.Create("out.wav")
//	err := wav.WriteWAV16(f, sr, m)
//
// # Error Handling
//
// Every failure is an *audio.StepError naming the step (open, probe, track,
// window, decoder, decode) and the path. It wraps one of the audio package
// sentinels, so callers test the kind with errors.Is:
//
//	if errors.Is(err, audio.ErrInvalidWindow) {
//	    // ask for a shorter offset
//	}
package audmatrix
