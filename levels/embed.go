package levels

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

//go:embed *.sgld
var LevelsFS embed.FS

// LoadLevelFromFS loads one of the levels bundled with the editor. The
// extension is optional.
func LoadLevelFromFS(name string) (*Level, error) {
	if filepath.Ext(name) == "" {
		name += FileExt
	}
	data, err := fs.ReadFile(LevelsFS, name)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	lvl, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode level %s: %w", name, err)
	}
	return lvl, nil
}

// Bundled lists the names of the embedded levels without extension.
func Bundled() []string {
	entries, err := fs.ReadDir(LevelsFS, ".")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != FileExt {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), FileExt))
	}
	return names
}
