// Package randid draws short base-36 tokens for generated symbol ids.
//
// Tokens come from math/rand/v2: they are meant to avoid accidental
// collisions inside one sprite sheet, not to be unguessable.
package randid

import (
	"math/rand/v2"
	"sync"

	"github.com/aalvaropc/svgsym/internal/domain"
)

const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

type Source struct {
	mu  sync.Mutex
	rng *rand.Rand // nil uses the auto-seeded global generator
	n   int
}

type Option func(*Source)

// WithSeed makes the token sequence reproducible (useful for tests).
func WithSeed(seed uint64) Option {
	return func(s *Source) { s.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) }
}

// WithLength overrides the token length.
func WithLength(n int) Option {
	return func(s *Source) {
		if n > 0 {
			s.n = n
		}
	}
}

func New(opts ...Option) *Source {
	s := &Source{n: domain.TokenLength}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ domain.TokenSource = (*Source)(nil)

func (s *Source) Token() string {
	b := make([]byte, s.n)

	if s.rng == nil {
		for i := range b {
			b[i] = alphabet[rand.IntN(len(alphabet))]
		}
		return string(b)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range b {
		b[i] = alphabet[s.rng.IntN(len(alphabet))]
	}
	return string(b)
}
