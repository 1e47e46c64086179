package main

import (
	"os"
	"path/filepath"

	"github.com/milk9111/speedgame/levels"
)

// openLevel reads name from disk, trying levelDir for relative names, and
// falls back to the levels bundled into the binary.
func openLevel(name, levelDir string) (*levels.Level, error) {
	file := name
	if filepath.Ext(file) == "" {
		file += levels.FileExt
	}
	candidates := []string{file}
	if levelDir != "" && !filepath.IsAbs(file) {
		candidates = append(candidates, filepath.Join(levelDir, file))
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return levels.ReadFile(path)
		}
	}
	return levels.LoadLevelFromFS(name)
}
