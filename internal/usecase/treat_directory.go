package usecase

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/aalvaropc/svgsym/internal/domain"
	"github.com/aalvaropc/svgsym/internal/ports"
	"github.com/iancoleman/strcase"
)

// TreatDirectory treats every SVG file of a directory and stores the fragments.
type TreatDirectory struct {
	icons ports.IconCatalog
	treat *TreatSVG
	store ports.FragmentStore
	log   *slog.Logger
	now   func() time.Time
}

type BatchOption func(*TreatDirectory)

func WithBatchLogger(l *slog.Logger) BatchOption {
	return func(uc *TreatDirectory) {
		if l != nil {
			uc.log = l
		}
	}
}

// WithClock is useful for tests.
func WithClock(now func() time.Time) BatchOption {
	return func(uc *TreatDirectory) {
		if now != nil {
			uc.now = now
		}
	}
}

func NewTreatDirectory(icons ports.IconCatalog, treat *TreatSVG, store ports.FragmentStore, opts ...BatchOption) *TreatDirectory {
	uc := &TreatDirectory{
		icons: icons,
		treat: treat,
		store: store,
		log:   slog.New(slog.NewJSONHandler(io.Discard, nil)),
		now:   time.Now,
	}
	for _, o := range opts {
		o(uc)
	}
	return uc
}

// Execute processes files in name order. A file that fails is recorded in
// the report and does not stop the batch; only invalid options, listing
// errors, store errors on the sprite, and cancellation abort it.
func (uc *TreatDirectory) Execute(ctx context.Context, srcDir string, opts domain.BatchOptions) (domain.BatchReport, error) {
	report := domain.BatchReport{
		SourceDir: srcDir,
		OutputDir: opts.OutputDir,
		StartedAt: uc.now(),
	}

	if err := opts.Validate(); err != nil {
		report.EndedAt = uc.now()
		return report, err
	}

	icons, err := uc.icons.ListIcons(srcDir)
	if err != nil {
		report.EndedAt = uc.now()
		return report, err
	}

	report.Items = make([]domain.BatchItem, 0, len(icons))
	fragments := make([]string, 0, len(icons))

	for _, icon := range icons {
		if err := ctx.Err(); err != nil {
			report.EndedAt = uc.now()
			return report, err
		}

		item := domain.BatchItem{
			Source:     icon.Path,
			Identifier: SymbolIDFromName(icon.Name),
		}

		out, err := uc.treatOne(ctx, icon, item.Identifier, opts)
		if err != nil {
			item.Error = domain.UserMessage(err)
			uc.log.Warn("batch.item_failed", "source", icon.Path, "err", err)
			report.Items = append(report.Items, item)
			continue
		}
		item.Identifier = out.Identifier

		path, err := uc.store.SaveFragment(out.Identifier, out.Output, item)
		if err != nil {
			item.Error = domain.UserMessage(err)
			uc.log.Warn("batch.save_failed", "source", icon.Path, "err", err)
			report.Items = append(report.Items, item)
			continue
		}
		item.OutputPath = path

		report.Items = append(report.Items, item)
		fragments = append(fragments, out.Output)
	}

	if opts.Sprite && len(fragments) > 0 {
		path, err := uc.store.SaveSprite(fragments)
		if err != nil {
			report.EndedAt = uc.now()
			return report, err
		}
		report.SpritePath = path
	}

	ok, failed := report.Counts()
	uc.log.Info("batch.completed", "src", srcDir, "ok", ok, "failed", failed, "sprite", report.SpritePath)

	report.EndedAt = uc.now()
	return report, nil
}

func (uc *TreatDirectory) treatOne(ctx context.Context, icon domain.IconRef, id string, opts domain.BatchOptions) (domain.TreatmentResult, error) {
	raw, err := uc.icons.ReadIcon(icon.Path)
	if err != nil {
		return domain.TreatmentResult{}, err
	}
	return uc.treat.Execute(ctx, domain.TreatmentRequest{
		RawSVG:           raw,
		Identifier:       id,
		IncludeContainer: opts.IncludeContainer,
		ReplaceColors:    opts.ReplaceColors,
	})
}

// SymbolIDFromName derives a kebab-case symbol id from a file base name,
// e.g. "ArrowLeft" and "arrow_left" both give "arrow-left".
func SymbolIDFromName(name string) string {
	return strcase.ToKebab(name)
}
