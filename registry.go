// SPDX-License-Identifier: EPL-2.0

package audmatrix

import (
	"github.com/ik5/audmatrix/audio"
	"github.com/ik5/audmatrix/formats/aiff"
	"github.com/ik5/audmatrix/formats/flac"
	"github.com/ik5/audmatrix/formats/mp3"
	"github.com/ik5/audmatrix/formats/vorbis"
	"github.com/ik5/audmatrix/formats/wav"
)

// DefaultRegistry holds every built-in format. It is used unless WithRegistry
// is given.
var DefaultRegistry = NewRegistry()

// NewRegistry returns a registry with every built-in format and its usual
// file extensions.
func NewRegistry() *audio.Registry {
	r := audio.NewRegistry()

	r.Register(wav.Format{}, "wave")
	r.Register(aiff.Format{}, "aif", "aifc")
	r.Register(mp3.Format{})
	r.Register(vorbis.Format{}, "oga", "vorbis")
	r.Register(flac.Format{})

	return r
}
