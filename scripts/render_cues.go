// render_cues writes every synthesized battle cue as a WAV file so the
// sounds can be edited and dropped back in as static/audio/<cue>.wav.
// Usage: go run scripts/render_cues.go [outdir]
// Output: hit.wav, crit.wav, hurt.wav, ... (default outdir static/audio)
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"arena/internal/fx"
)

func main() {
	code := run()
	if code != 0 {
		os.Exit(code)
	}
}

func run() int {
	outDir := filepath.Join("static", "audio")
	switch len(os.Args) {
	case 1:
	case 2:
		outDir = filepath.Clean(os.Args[1])
	default:
		fmt.Fprintf(os.Stderr, "usage: go run scripts/render_cues.go [outdir]\n")
		return 1
	}
	if strings.Contains(outDir, "..") {
		fmt.Fprintf(os.Stderr, "path must not escape current directory\n")
		return 1
	}
	if err := os.MkdirAll(outDir, 0o750); err != nil {
		fmt.Fprintf(os.Stderr, "mkdir %s: %v\n", outDir, err)
		return 1
	}

	synth := fx.NewSynth(fx.DefaultSampleRate)
	for _, cue := range fx.Cues() {
		b, err := synth.Render(cue)
		if err != nil {
			fmt.Fprintf(os.Stderr, "render %s: %v\n", cue, err)
			return 1
		}
		path := filepath.Join(outDir, cue+".wav")
		if err := os.WriteFile(path, b, 0o600); err != nil {
			fmt.Fprintf(os.Stderr, "write %s: %v\n", path, err)
			return 1
		}
		fmt.Printf("wrote %s (%d bytes)\n", path, len(b))
	}
	return 0
}
