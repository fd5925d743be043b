package fsicons

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aalvaropc/svgsym/internal/domain"
	"github.com/aalvaropc/svgsym/internal/ports"
)

// Catalog lists *.svg files of one directory (non-recursive).
type Catalog struct{}

func NewCatalog() *Catalog {
	return &Catalog{}
}

var _ ports.IconCatalog = (*Catalog)(nil)

func (c *Catalog) ListIcons(dir string) ([]domain.IconRef, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		kind := domain.KindExecution
		if os.IsNotExist(err) {
			kind = domain.KindNotFound
		}
		return nil, &domain.OpError{
			Op:   "fsicons.list",
			Kind: kind,
			Path: dir,
			Err:  err,
		}
	}

	out := make([]domain.IconRef, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".svg") {
			continue
		}
		out = append(out, domain.IconRef{
			Name: strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())),
			Path: filepath.Join(dir, e.Name()),
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out, nil
}

func (c *Catalog) ReadIcon(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		kind := domain.KindExecution
		if os.IsNotExist(err) {
			kind = domain.KindNotFound
		}
		return "", &domain.OpError{
			Op:   "fsicons.read",
			Kind: kind,
			Path: path,
			Err:  err,
		}
	}
	return string(b), nil
}
