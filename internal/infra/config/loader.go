package config

import (
	"os"

	"github.com/aalvaropc/svgsym/internal/domain"
	"gopkg.in/yaml.v3"
)

// LoadConfig reads and maps one svgsym.yaml file.
func LoadConfig(path string) (domain.Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var dto YAMLFile
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return MapConfig(path, dto)
}
