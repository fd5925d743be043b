package usecase

import (
	"context"
	"io"
	"log/slog"

	"github.com/aalvaropc/svgsym/internal/domain"
	"github.com/aalvaropc/svgsym/internal/ports"
)

// TreatSVG turns one raw SVG document into a symbol fragment.
type TreatSVG struct {
	optimizer ports.Optimizer
	retagger  ports.RootRetagger
	ids       *domain.IdentifierResolver

	preset   domain.OptimizationConfig
	idPrefix string
	log      *slog.Logger
}

type TreatOption func(*TreatSVG)

// WithRetagger swaps the root rewrite strategy.
func WithRetagger(r ports.RootRetagger) TreatOption {
	return func(uc *TreatSVG) {
		if r != nil {
			uc.retagger = r
		}
	}
}

// WithPreset replaces the default optimization preset.
func WithPreset(cfg domain.OptimizationConfig) TreatOption {
	return func(uc *TreatSVG) { uc.preset = cfg }
}

// WithIDPrefix is prepended to every identifier, supplied or generated.
func WithIDPrefix(prefix string) TreatOption {
	return func(uc *TreatSVG) { uc.idPrefix = prefix }
}

func WithLogger(l *slog.Logger) TreatOption {
	return func(uc *TreatSVG) {
		if l != nil {
			uc.log = l
		}
	}
}

func NewTreatSVG(opt ports.Optimizer, tokens domain.TokenSource, opts ...TreatOption) *TreatSVG {
	uc := &TreatSVG{
		optimizer: opt,
		retagger:  domain.StringRetagger{},
		ids:       domain.NewIdentifierResolver(tokens),
		preset:    domain.DefaultOptimizationConfig(),
		log:       slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, o := range opts {
		o(uc)
	}
	return uc
}

// Execute runs validate, optimize, retag and the optional color and
// container steps. No partial result is returned on error.
func (uc *TreatSVG) Execute(ctx context.Context, req domain.TreatmentRequest) (domain.TreatmentResult, error) {
	if req.RawSVG == "" {
		return domain.TreatmentResult{}, &domain.OpError{
			Op:   "treat.validate",
			Kind: domain.KindMissingInput,
			Err:  domain.ErrMissingInput,
		}
	}
	if !domain.LooksLikeSVG(req.RawSVG) {
		uc.log.Debug("treat.rejected", "bytes", len(req.RawSVG))
		return domain.TreatmentResult{}, &domain.OpError{
			Op:   "treat.validate",
			Kind: domain.KindInvalidMarkup,
			Err:  domain.ErrInvalidMarkup,
		}
	}

	id, generated, err := uc.ids.Resolve(req.Identifier)
	if err != nil {
		return domain.TreatmentResult{}, err
	}
	id = uc.idPrefix + id

	cfg := uc.preset
	if req.Optimization != nil {
		cfg = *req.Optimization
	}

	if err := ctx.Err(); err != nil {
		return domain.TreatmentResult{}, err
	}

	optimized, err := uc.optimizer.Optimize(ctx, req.RawSVG, cfg)
	if err != nil {
		uc.log.Warn("treat.optimize_failed", "id", id, "err", err)
		return domain.TreatmentResult{}, err
	}

	out := uc.retagger.Retag(optimized, id)
	if req.ReplaceColors {
		out = domain.NormalizeColors(out)
	}
	if req.IncludeContainer {
		out = domain.WrapInContainer(out)
	}

	uc.log.Info("treat.completed",
		"id", id,
		"generated", generated,
		"in_bytes", len(req.RawSVG),
		"out_bytes", len(out),
		"container", req.IncludeContainer,
		"replace_colors", req.ReplaceColors,
	)

	return domain.TreatmentResult{
		Output:     out,
		Identifier: id,
		Generated:  generated,
	}, nil
}
