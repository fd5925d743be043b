package tui

import "github.com/aalvaropc/svgsym/internal/domain"

type iconsLoadedMsg struct {
	dir  string
	refs []domain.IconRef
	err  error
}

type iconTreatedMsg struct {
	icon domain.IconRef
	res  domain.TreatmentResult
	err  error
}

type initWorkspaceDoneMsg struct {
	root string
	err  error
}
