package web

import (
	"bytes"
	"errors"
	"net/http"
	"os"
	"path"
	"strings"
	"time"

	"arena/internal/fx"
)

const contentTypeWAV = "audio/wav"

// handleAudio serves battle cues at /audio/<cue>.wav: a drop-in file from
// static/audio/ when present, otherwise the synthesized tone.
func (s *Server) handleAudio(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	base := path.Base(r.URL.Path)
	if path.Ext(base) != ".wav" {
		http.NotFound(w, r)
		return
	}
	cue := strings.TrimSuffix(base, ".wav")

	if p, ok := s.dropInAsset("audio", cue, ".wav"); ok {
		f, err := os.Open(p) // #nosec G304 -- p is under validated static/audio
		if err == nil {
			defer f.Close()
			if info, err := f.Stat(); err == nil {
				w.Header().Set("Content-Type", contentTypeWAV)
				w.Header().Set("Cache-Control", assetCacheControl)
				http.ServeContent(w, r, base, info.ModTime(), f)
				return
			}
		}
	}

	if s.Synth == nil {
		http.NotFound(w, r)
		return
	}
	b, err := s.Synth.Render(cue)
	if errors.Is(err, fx.ErrUnknownCue) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", contentTypeWAV)
	w.Header().Set("Cache-Control", assetCacheControl)
	http.ServeContent(w, r, base, time.Time{}, bytes.NewReader(b))
}
