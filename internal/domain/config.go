package domain

// Config represents the svgsym workspace configuration loaded from svgsym.yaml.
type Config struct {
	Paths    PathsConfig
	Symbol   SymbolConfig
	Optimize OptimizationConfig
	Server   ServerConfig
}

type PathsConfig struct {
	IconsDir   string
	SymbolsDir string
}

type SymbolConfig struct {
	// IDPrefix is prepended to every resolved identifier (e.g. "icon-").
	IDPrefix string
}

type ServerConfig struct {
	Addr         string
	MaxBodyBytes int64
}

// DefaultConfig provides sane defaults if svgsym.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Paths: PathsConfig{
			IconsDir:   "icons",
			SymbolsDir: "symbols",
		},
		Optimize: DefaultOptimizationConfig(),
		Server: ServerConfig{
			Addr:         ":8080",
			MaxBodyBytes: 1 << 20,
		},
	}
}
