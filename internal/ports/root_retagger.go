package ports

// RootRetagger turns an optimized <svg> document into a <symbol> fragment.
type RootRetagger interface {
	Retag(optimized, id string) string
}
