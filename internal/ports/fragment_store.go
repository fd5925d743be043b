package ports

import "github.com/aalvaropc/svgsym/internal/domain"

// FragmentStore persists treated fragments produced by a batch.
type FragmentStore interface {
	SaveFragment(id, fragment string, item domain.BatchItem) (path string, err error)
	SaveSprite(fragments []string) (path string, err error)
}
