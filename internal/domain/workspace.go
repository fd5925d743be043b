package domain

// WorkspaceSpec describes where a workspace should be created.
type WorkspaceSpec struct {
	Root string
}

// IconRef points at one source SVG on disk.
type IconRef struct {
	Name string
	Path string
}
