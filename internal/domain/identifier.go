package domain

import (
	"errors"
	"strings"
)

// TokenLength is the size of one generated base-36 token.
const TokenLength = 13

// TokenSource produces short, probably-unique base-36 tokens.
type TokenSource interface {
	Token() string
}

// TokenFunc adapts a plain function to TokenSource.
type TokenFunc func() string

func (f TokenFunc) Token() string { return f() }

// IdentifierResolver picks the symbol id: the caller's slug when given,
// otherwise two tokens drawn from the source.
type IdentifierResolver struct {
	tokens TokenSource
}

func NewIdentifierResolver(src TokenSource) *IdentifierResolver {
	return &IdentifierResolver{tokens: src}
}

// Resolve returns supplied unchanged when it is non-empty. Generated ids carry
// no collision check.
func (r *IdentifierResolver) Resolve(supplied string) (id string, generated bool, err error) {
	if supplied != "" {
		return supplied, false, nil
	}
	if r == nil || r.tokens == nil {
		return "", false, &OpError{
			Op:   "identifier.resolve",
			Kind: KindExecution,
			Err:  errors.New("token source is nil"),
		}
	}

	var b strings.Builder
	b.Grow(2 * TokenLength)
	b.WriteString(r.tokens.Token())
	b.WriteString(r.tokens.Token())
	if b.Len() == 0 {
		return "", false, &OpError{
			Op:   "identifier.resolve",
			Kind: KindExecution,
			Err:  errors.New("token source returned empty tokens"),
		}
	}
	return b.String(), true, nil
}
