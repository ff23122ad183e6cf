package web

import (
	"os"
	"path/filepath"
	"strings"
)

const assetCacheControl = "public, max-age=3600"

// dropInAsset looks for static/<subdir>/<name><ext> so deployments can
// replace generated portraits and cues with their own files. name must be
// a bare file name.
func (s *Server) dropInAsset(subdir, name, ext string) (string, bool) {
	if name == "" || name == "." || strings.Contains(name, "..") ||
		strings.ContainsAny(name, `/\`) || filepath.IsAbs(name) {
		return "", false
	}

	baseDir := filepath.Join(s.staticBase(), subdir)
	resolved := filepath.Join(baseDir, name+ext)
	rel, err := filepath.Rel(baseDir, resolved)
	if err != nil || strings.Contains(rel, "..") {
		return "", false
	}
	info, err := os.Stat(resolved)
	if err != nil || info.IsDir() {
		return "", false
	}
	return resolved, true
}
