package ports

import "github.com/aalvaropc/svgsym/internal/domain"

type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}
