package usecase

import (
	"testing"

	"github.com/aalvaropc/svgsym/internal/domain"
)

type recordingInitializer struct {
	spec  domain.WorkspaceSpec
	force bool
}

func (r *recordingInitializer) Init(spec domain.WorkspaceSpec, force bool) error {
	r.spec = spec
	r.force = force
	return nil
}

func TestInitWorkspace_DelegatesToInitializer(t *testing.T) {
	rec := &recordingInitializer{}
	if err := NewInitWorkspace(rec).Execute("/tmp/ws", true); err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if rec.spec.Root != "/tmp/ws" || !rec.force {
		t.Fatalf("unexpected delegation: %+v force=%v", rec.spec, rec.force)
	}
}
