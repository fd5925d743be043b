package config

// YAMLFile is the on-disk shape of svgsym.yaml.
type YAMLFile struct {
	Svgsym YAMLConfig `yaml:"svgsym"`
}

type YAMLConfig struct {
	Paths    YAMLPaths    `yaml:"paths"`
	Symbol   YAMLSymbol   `yaml:"symbol"`
	Optimize YAMLOptimize `yaml:"optimize"`
	Server   YAMLServer   `yaml:"server"`
}

type YAMLPaths struct {
	IconsDir   string `yaml:"icons_dir"`
	SymbolsDir string `yaml:"symbols_dir"`
}

type YAMLSymbol struct {
	IDPrefix *string `yaml:"id_prefix"`
}

// YAMLOptimize uses pointers so absent keys keep the preset value.
type YAMLOptimize struct {
	MergePaths                     *bool `yaml:"merge_paths"`
	RemoveUselessStrokeAndFill     *bool `yaml:"remove_useless_stroke_and_fill"`
	RemoveViewBox                  *bool `yaml:"remove_view_box"`
	RemoveHiddenElems              *bool `yaml:"remove_hidden_elems"`
	CollapseGroups                 *bool `yaml:"collapse_groups"`
	RemoveNonInheritableGroupAttrs *bool `yaml:"remove_non_inheritable_group_attrs"`

	CleanupIDs YAMLCleanupIDs `yaml:"cleanup_ids"`

	CleanupAttrs    *bool               `yaml:"cleanup_attrs"`
	ConvertPathData YAMLConvertPathData `yaml:"convert_path_data"`

	KeepComments *bool `yaml:"keep_comments"`
}

type YAMLCleanupIDs struct {
	Remove *bool `yaml:"remove"`
}

type YAMLConvertPathData struct {
	RemoveUseless   *bool `yaml:"remove_useless"`
	LineShorthands  *bool `yaml:"line_shorthands"`
	ApplyTransforms *bool `yaml:"apply_transforms"`
	Precision       *int  `yaml:"precision"`
}

type YAMLServer struct {
	Addr         string `yaml:"addr"`
	MaxBodyBytes *int64 `yaml:"max_body_bytes"`
}
