package admin

import (
	"fmt"
	"os"

	"github.com/dmitrijs2005/dilbilim/internal/server/models"
	"gopkg.in/yaml.v3"
)

// SeedFile is the YAML document read by seed-languages:
//
//	languages:
//	  - name: Türkçe
//	    code: tr
type SeedFile struct {
	Languages []models.Language `yaml:"languages"`
}

// LoadSeedFile reads and decodes path. A file without languages is an error.
func LoadSeedFile(path string) (*SeedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f SeedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(f.Languages) == 0 {
		return nil, fmt.Errorf("%s: no languages listed", path)
	}
	return &f, nil
}
