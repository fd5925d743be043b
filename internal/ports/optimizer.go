package ports

import (
	"context"

	"github.com/aalvaropc/svgsym/internal/domain"
)

// Optimizer normalizes raw SVG markup. It is the authoritative parser: input
// it cannot parse yields a domain.KindMalformedMarkup error.
type Optimizer interface {
	Optimize(ctx context.Context, raw string, cfg domain.OptimizationConfig) (string, error)
}
