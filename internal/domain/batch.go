package domain

import (
	"errors"
	"fmt"
	"time"
)

// BatchItem is the outcome of treating one file in a batch.
type BatchItem struct {
	Source     string
	Identifier string
	OutputPath string
	Error      string
}

// Failed reports whether the item carries an error.
func (i BatchItem) Failed() bool { return i.Error != "" }

// BatchReport summarizes a directory treatment.
type BatchReport struct {
	SourceDir  string
	OutputDir  string
	SpritePath string

	StartedAt time.Time
	EndedAt   time.Time

	Items []BatchItem
}

// Counts returns the number of treated and failed items.
func (r BatchReport) Counts() (ok int, failed int) {
	for _, it := range r.Items {
		if it.Failed() {
			failed++
		} else {
			ok++
		}
	}
	return ok, failed
}

// BatchOptions applies to every file of a directory treatment.
type BatchOptions struct {
	// OutputDir is informational; the fragment store decides where files go.
	OutputDir string

	IncludeContainer bool
	ReplaceColors    bool
	// Sprite also writes every fragment into one hidden sprite sheet.
	Sprite bool
}

var errSpriteContainer = errors.New("sprite and container cannot be combined: a sprite holds bare symbols")

// Validate rejects option combinations that would produce a broken sprite.
func (o BatchOptions) Validate() error {
	if o.Sprite && o.IncludeContainer {
		return &OpError{
			Op:   "batch.options",
			Kind: KindInvalidConfig,
			Err:  fmt.Errorf("%w: %w", errSpriteContainer, ErrInvalidConfig),
		}
	}
	return nil
}
