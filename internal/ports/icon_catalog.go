package ports

import "github.com/aalvaropc/svgsym/internal/domain"

// IconCatalog lists and reads source SVG files.
type IconCatalog interface {
	ListIcons(dir string) ([]domain.IconRef, error)
	ReadIcon(path string) (string, error)
}
