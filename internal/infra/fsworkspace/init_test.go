package fsworkspace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aalvaropc/svgsym/internal/domain"
)

func TestInitializer_Init_CreatesWorkspaceFiles(t *testing.T) {
	tmp := t.TempDir()

	i := NewInitializer()
	if err := i.Init(domain.WorkspaceSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}

	assertFileExists(t, filepath.Join(tmp, "svgsym.yaml"))
	assertFileExists(t, filepath.Join(tmp, "icons", "arrow.svg"))
	assertDirExists(t, filepath.Join(tmp, "symbols"))
	assertDirExists(t, filepath.Join(tmp, ".svgsym", "logs"))
	assertFileExists(t, filepath.Join(tmp, ".gitignore"))
}

func TestInitializer_Init_SkipsExistingFilesUnlessForce(t *testing.T) {
	tmp := t.TempDir()

	cfgPath := filepath.Join(tmp, "svgsym.yaml")
	if err := os.WriteFile(cfgPath, []byte("custom\n"), 0o644); err != nil {
		t.Fatalf("write existing svgsym.yaml: %v", err)
	}

	i := NewInitializer()

	if err := i.Init(domain.WorkspaceSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init (force=false) error: %v", err)
	}

	b, err := os.ReadFile(cfgPath)
	if err != nil {
		t.Fatalf("read svgsym.yaml: %v", err)
	}
	if string(b) != "custom\n" {
		t.Fatalf("expected svgsym.yaml preserved, got %q", string(b))
	}

	if err := i.Init(domain.WorkspaceSpec{Root: tmp}, true); err != nil {
		t.Fatalf("Init (force=true) error: %v", err)
	}

	b, err = os.ReadFile(cfgPath)
	if err != nil {
		t.Fatalf("read svgsym.yaml after force: %v", err)
	}
	if !strings.Contains(string(b), "svgsym:") {
		t.Fatalf("expected svgsym.yaml overwritten with template, got %q", string(b))
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected file %s, stat err=%v", path, err)
	}
	if info.IsDir() {
		t.Fatalf("expected file, got dir: %s", path)
	}
}

func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		t.Fatalf("expected dir %s, err=%v", path, err)
	}
}
