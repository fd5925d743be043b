// Package domain contains the core model of svgsym: the treatment request and
// result, the optimization toggles, and the string-level markup passes that
// turn an optimized SVG into a symbol fragment.
//
// The domain is transport- and persistence-agnostic: it does not depend on the
// optimizer engine, net/http, YAML, or the filesystem. Infra/adapters map into
// and from these types.
package domain
