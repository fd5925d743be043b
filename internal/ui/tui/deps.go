package tui

import (
	"context"
	"log/slog"

	"github.com/aalvaropc/svgsym/internal/domain"
	"github.com/aalvaropc/svgsym/internal/ports"
)

// Treater runs one treatment. *usecase.TreatSVG satisfies it.
type Treater interface {
	Execute(ctx context.Context, req domain.TreatmentRequest) (domain.TreatmentResult, error)
}

type Deps struct {
	WorkspaceLocator     ports.WorkspaceLocator
	WorkspaceInitializer ports.WorkspaceInitializer
	Icons                ports.IconCatalog
	Treat                Treater

	// IconsDir is listed on start; empty means the working directory.
	IconsDir string

	Logger *slog.Logger
	Debug  bool
}
