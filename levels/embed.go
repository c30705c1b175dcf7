package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
)

//go:embed *.json
var LevelsFS embed.FS

// LoadLevelFromFS loads and validates an embedded level.
func LoadLevelFromFS(name string) (*Level, error) {
	data, err := fs.ReadFile(LevelsFS, name)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", name, err)
	}
	return Parse(name, data)
}

// Load reads a level from disk when path exists there, falling back to the
// embedded levels.
func Load(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return LoadLevelFromFS(path)
	}
	return Parse(path, data)
}
