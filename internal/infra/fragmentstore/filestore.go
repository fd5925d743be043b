package fragmentstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aalvaropc/svgsym/internal/domain"
	"github.com/aalvaropc/svgsym/internal/ports"
)

const (
	indexFile  = "index.jsonl"
	spriteFile = "sprite.svg"

	spriteOpen  = `<svg xmlns="http://www.w3.org/2000/svg" style="display: none;">`
	spriteClose = `</svg>`
)

// FileStore writes one <id>.svg per fragment into a single directory.
type FileStore struct {
	dir        string
	writeIndex bool
	now        func() time.Time
}

type Option func(*FileStore)

// WithIndex enables a JSONL index: <dir>/index.jsonl
func WithIndex(enabled bool) Option {
	return func(s *FileStore) { s.writeIndex = enabled }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *FileStore) { s.now = now }
}

func NewFileStore(dir string, opts ...Option) *FileStore {
	s := &FileStore{
		dir: dir,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.FragmentStore = (*FileStore)(nil)

func (s *FileStore) SaveFragment(id, fragment string, item domain.BatchItem) (string, error) {
	name := strings.TrimSpace(id)
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", &domain.OpError{
			Op:   "fragmentstore.save",
			Kind: domain.KindInvalidConfig,
			Path: id,
			Err:  domain.ErrInvalidConfig,
		}
	}

	if err := s.ensureDir(); err != nil {
		return "", err
	}

	path := filepath.Join(s.dir, name+".svg")
	if err := writeAtomic(path, []byte(fragment+"\n")); err != nil {
		return "", err
	}

	if s.writeIndex {
		_ = s.appendIndex(name, filepath.Base(path), item)
	}
	return path, nil
}

// SaveSprite concatenates fragments into a hidden sprite sheet.
func (s *FileStore) SaveSprite(fragments []string) (string, error) {
	if err := s.ensureDir(); err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(spriteOpen)
	b.WriteByte('\n')
	for _, f := range fragments {
		b.WriteString(f)
		b.WriteByte('\n')
	}
	b.WriteString(spriteClose)
	b.WriteByte('\n')

	path := filepath.Join(s.dir, spriteFile)
	if err := writeAtomic(path, []byte(b.String())); err != nil {
		return "", err
	}
	return path, nil
}

func (s *FileStore) ensureDir() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return &domain.OpError{
			Op:   "fragmentstore.mkdir",
			Kind: domain.KindExecution,
			Path: s.dir,
			Err:  err,
		}
	}
	return nil
}

// Atomic-ish write: tmp then rename.
func writeAtomic(path string, b []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return &domain.OpError{
			Op:   "fragmentstore.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return &domain.OpError{
			Op:   "fragmentstore.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}
	return nil
}

func (s *FileStore) appendIndex(id, filename string, item domain.BatchItem) error {
	type idx struct {
		ID        string    `json:"id"`
		File      string    `json:"file"`
		Source    string    `json:"source"`
		TreatedAt time.Time `json:"treated_at"`
	}
	line, err := json.Marshal(idx{
		ID:        id,
		File:      filename,
		Source:    item.Source,
		TreatedAt: s.now().UTC(),
	})
	if err != nil {
		return err
	}

	f, err := os.OpenFile(filepath.Join(s.dir, indexFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(append(line, '\n'))
	return err
}
