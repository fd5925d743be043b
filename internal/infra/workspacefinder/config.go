package workspacefinder

import (
	"path/filepath"

	"github.com/aalvaropc/svgsym/internal/domain"
	"github.com/aalvaropc/svgsym/internal/infra/config"
)

// LoadConfig loads svgsym.yaml from the workspace root and applies defaults.
func LoadConfig(root string) (domain.Config, error) {
	return config.LoadConfig(filepath.Join(root, ConfigFileName))
}

// LoadConfigOrDefault is LoadConfig for commands that also work outside a
// workspace: a missing file yields defaults, any other failure is returned.
func LoadConfigOrDefault(root string) (domain.Config, error) {
	if root == "" {
		return domain.DefaultConfig(), nil
	}
	cfg, err := LoadConfig(root)
	if err != nil && domain.IsKind(err, domain.KindNotFound) {
		return domain.DefaultConfig(), nil
	}
	return cfg, err
}
