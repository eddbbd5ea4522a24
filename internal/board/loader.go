package board

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/magnate-game/magnate/internal/models"
)

// boardFile is the YAML document shape for external board catalogs
type boardFile struct {
	Spaces []*models.SpaceDefinition `yaml:"spaces"`
}

// Load reads a board catalog from a YAML file. A game cannot start
// without a valid catalog, so callers should treat any error as fatal.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read board file: %w", err)
	}

	var file boardFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse board file: %w", err)
	}

	catalog, err := NewCatalog(file.Spaces)
	if err != nil {
		return nil, fmt.Errorf("invalid board file %s: %w", path, err)
	}
	return catalog, nil
}
