package config

import (
	"fmt"
	"strings"

	"github.com/aalvaropc/svgsym/internal/domain"
)

// MapConfig applies the parsed file on top of domain.DefaultConfig.
func MapConfig(path string, yf YAMLFile) (domain.Config, error) {
	cfg := domain.DefaultConfig()
	y := yf.Svgsym

	if s := strings.TrimSpace(y.Paths.IconsDir); s != "" {
		cfg.Paths.IconsDir = s
	}
	if s := strings.TrimSpace(y.Paths.SymbolsDir); s != "" {
		cfg.Paths.SymbolsDir = s
	}

	if y.Symbol.IDPrefix != nil {
		p := *y.Symbol.IDPrefix
		if strings.ContainsAny(p, "\"<> \t\r\n") {
			return cfg, invalidField(path, "symbol.id_prefix", "must not contain quotes, angle brackets or whitespace")
		}
		cfg.Symbol.IDPrefix = p
	}

	mapOptimize(&cfg.Optimize, y.Optimize)
	if err := cfg.Optimize.Validate(); err != nil {
		p := cfg.Optimize.ConvertPathData.Precision
		return cfg, invalidField(path, "optimize.convert_path_data.precision",
			fmt.Sprintf("%d out of range [%d, %d]", p, domain.MinPrecision, domain.MaxPrecision))
	}

	if s := strings.TrimSpace(y.Server.Addr); s != "" {
		cfg.Server.Addr = s
	}
	if y.Server.MaxBodyBytes != nil {
		if *y.Server.MaxBodyBytes <= 0 {
			return cfg, invalidField(path, "server.max_body_bytes", "must be positive")
		}
		cfg.Server.MaxBodyBytes = *y.Server.MaxBodyBytes
	}

	return cfg, nil
}

func mapOptimize(dst *domain.OptimizationConfig, y YAMLOptimize) {
	setBool := func(dst *bool, v *bool) {
		if v != nil {
			*dst = *v
		}
	}

	setBool(&dst.MergePaths, y.MergePaths)
	setBool(&dst.RemoveUselessStrokeAndFill, y.RemoveUselessStrokeAndFill)
	setBool(&dst.RemoveViewBox, y.RemoveViewBox)
	setBool(&dst.RemoveHiddenElems, y.RemoveHiddenElems)
	setBool(&dst.CollapseGroups, y.CollapseGroups)
	setBool(&dst.RemoveNonInheritableGroupAttrs, y.RemoveNonInheritableGroupAttrs)
	setBool(&dst.CleanupIDs.Remove, y.CleanupIDs.Remove)
	setBool(&dst.CleanupAttrs, y.CleanupAttrs)
	setBool(&dst.ConvertPathData.RemoveUseless, y.ConvertPathData.RemoveUseless)
	setBool(&dst.ConvertPathData.LineShorthands, y.ConvertPathData.LineShorthands)
	setBool(&dst.ConvertPathData.ApplyTransforms, y.ConvertPathData.ApplyTransforms)
	setBool(&dst.KeepComments, y.KeepComments)
	if y.ConvertPathData.Precision != nil {
		dst.ConvertPathData.Precision = *y.ConvertPathData.Precision
	}
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
