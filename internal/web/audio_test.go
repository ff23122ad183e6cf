package web

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"
)

func TestHandleAudio_SynthesizedCue(t *testing.T) {
	h := testServer(t)
	rec := h.do(t, http.MethodGet, "/audio/crit.wav", nil, "")

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != contentTypeWAV {
		t.Errorf("Content-Type: expected %s, got %q", contentTypeWAV, ct)
	}
	if b := rec.Body.Bytes(); len(b) < 44 || string(b[:4]) != "RIFF" {
		t.Error("Expected a WAV body")
	}
}

func TestHandleAudio_DropInFile(t *testing.T) {
	h := testServer(t)
	dir := filepath.Join(h.srv.StaticDir, "audio")
	if err := os.MkdirAll(dir, 0o750); err != nil {
		t.Fatalf("mkdir audio: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "win.wav"), []byte("RIFFcustom"), 0o600); err != nil {
		t.Fatalf("write win.wav: %v", err)
	}

	rec := h.do(t, http.MethodGet, "/audio/win.wav", nil, "")
	if rec.Code != http.StatusOK || rec.Body.String() != "RIFFcustom" {
		t.Errorf("Expected the drop-in file, got %d %q", rec.Code, rec.Body.String())
	}
}

func TestHandleAudio_NotFound(t *testing.T) {
	h := testServer(t)
	for _, p := range []string{"/audio/trumpet.wav", "/audio/hit.mp3", "/audio/"} {
		if rec := h.do(t, http.MethodGet, p, nil, ""); rec.Code != http.StatusNotFound {
			t.Errorf("GET %s: expected 404, got %d", p, rec.Code)
		}
	}
}

func TestHandleAudio_MethodNotAllowed(t *testing.T) {
	h := testServer(t)
	if rec := h.do(t, http.MethodPost, "/audio/hit.wav", nil, ""); rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected 405, got %d", rec.Code)
	}
}
