package fx

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/wav"
)

// DefaultSampleRate is used by NewSynth when no rate is given.
const DefaultSampleRate = beep.SampleRate(22050)

// ErrUnknownCue is returned by Render for a cue with no tones.
var ErrUnknownCue = errors.New("unknown cue")

// note is one tone of a cue. A zero frequency is a rest.
type note struct {
	freq float64
	dur  time.Duration
}

var cueNotes = map[string][]note{
	CueHit:     {{440, 60 * time.Millisecond}, {330, 60 * time.Millisecond}},
	CueCrit:    {{660, 50 * time.Millisecond}, {880, 50 * time.Millisecond}, {1320, 120 * time.Millisecond}},
	CueHurt:    {{220, 80 * time.Millisecond}, {147, 140 * time.Millisecond}},
	CueWin:     {{523, 100 * time.Millisecond}, {659, 100 * time.Millisecond}, {784, 100 * time.Millisecond}, {1047, 250 * time.Millisecond}},
	CueFail:    {{392, 180 * time.Millisecond}, {0, 40 * time.Millisecond}, {330, 180 * time.Millisecond}, {262, 350 * time.Millisecond}},
	CueFlee:    {{587, 60 * time.Millisecond}, {494, 60 * time.Millisecond}, {392, 60 * time.Millisecond}},
	CuePotion:  {{784, 70 * time.Millisecond}, {988, 70 * time.Millisecond}, {1175, 110 * time.Millisecond}},
	CueLevelUp: {{523, 80 * time.Millisecond}, {784, 80 * time.Millisecond}, {1047, 80 * time.Millisecond}, {0, 30 * time.Millisecond}, {1568, 200 * time.Millisecond}},
}

// Cues lists every cue the synth can render, sorted.
func Cues() []string {
	out := make([]string, 0, len(cueNotes))
	for name := range cueNotes {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Synth renders cues to mono 16-bit WAV and caches the result.
type Synth struct {
	rate beep.SampleRate

	mu    sync.Mutex
	cache map[string][]byte
}

// NewSynth returns a synth at rate samples per second.
func NewSynth(rate beep.SampleRate) *Synth {
	if rate <= 0 {
		rate = DefaultSampleRate
	}
	return &Synth{rate: rate, cache: make(map[string][]byte)}
}

// Render returns the WAV bytes for cue.
func (s *Synth) Render(cue string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if b, ok := s.cache[cue]; ok {
		return b, nil
	}
	notes, ok := cueNotes[cue]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCue, cue)
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		st, err := s.tone(n)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", cue, err)
		}
		parts = append(parts, st)
	}

	var out seekBuffer
	format := beep.Format{SampleRate: s.rate, NumChannels: 1, Precision: 2}
	if err := wav.Encode(&out, beep.Seq(parts...), format); err != nil {
		return nil, fmt.Errorf("encode %s: %w", cue, err)
	}
	s.cache[cue] = out.buf
	return out.buf, nil
}

func (s *Synth) tone(n note) (beep.Streamer, error) {
	samples := s.rate.N(n.dur)
	if n.freq <= 0 {
		return beep.Silence(samples), nil
	}
	sine, err := generators.SineTone(s.rate, n.freq)
	if err != nil {
		return nil, err
	}
	// Half amplitude leaves headroom for the 16-bit encoder.
	quiet := &effects.Volume{Streamer: sine, Base: 2, Volume: -1}
	return beep.Take(samples, quiet), nil
}

// seekBuffer is an in-memory io.WriteSeeker; the WAV encoder seeks back to
// patch its header sizes.
type seekBuffer struct {
	buf []byte
	pos int
}

func (b *seekBuffer) Write(p []byte) (int, error) {
	end := b.pos + len(p)
	if end > len(b.buf) {
		b.buf = append(b.buf, make([]byte, end-len(b.buf))...)
	}
	copy(b.buf[b.pos:], p)
	b.pos = end
	return len(p), nil
}

func (b *seekBuffer) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = int64(b.pos) + offset
	case io.SeekEnd:
		abs = int64(len(b.buf)) + offset
	default:
		return 0, errors.New("seek: invalid whence")
	}
	if abs < 0 {
		return 0, errors.New("seek: negative position")
	}
	b.pos = int(abs)
	return abs, nil
}
