package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/joshuarp/image-derivative-api/internal/shared/uid"
)

var _ Backend = (*LocalBackend)(nil)

// LocalBackend keeps objects as files below root.
type LocalBackend struct {
	root string
	ids  uid.UIDGenerator
}

func NewLocalBackend(root string, ids uid.UIDGenerator) (*LocalBackend, error) {
	if root == "" {
		return nil, errors.New("storage: local root is required")
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("storage: resolve root %q: %w", root, err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create root %q: %w", abs, err)
	}
	return &LocalBackend{root: abs, ids: ids}, nil
}

func (b *LocalBackend) Exists(_ context.Context, target string) (bool, error) {
	p, err := b.path(target)
	if err != nil {
		return false, err
	}
	info, err := os.Stat(p)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("storage: stat %q: %w", target, err)
	}
	return info.Mode().IsRegular(), nil
}

func (b *LocalBackend) Open(_ context.Context, target string) (io.ReadCloser, int64, error) {
	p, err := b.path(target)
	if err != nil {
		return nil, 0, err
	}
	f, err := os.Open(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, 0, fmt.Errorf("%w: %q", ErrNotFound, target)
	}
	if err != nil {
		return nil, 0, fmt.Errorf("storage: open %q: %w", target, err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, 0, fmt.Errorf("storage: stat %q: %w", target, err)
	}
	return f, info.Size(), nil
}

// Write stages data next to the destination and renames it into place.
func (b *LocalBackend) Write(ctx context.Context, target string, data []byte) error {
	p, err := b.path(target)
	if err != nil {
		return err
	}
	dir := filepath.Dir(p)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: create dir for %q: %w", target, err)
	}

	id, err := b.ids.Generate(ctx)
	if err != nil {
		return fmt.Errorf("storage: temp name for %q: %w", target, err)
	}
	tmp := filepath.Join(dir, "."+filepath.Base(p)+"."+id+".tmp")

	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("storage: write %q: %w", target, err)
	}
	if err := os.Rename(tmp, p); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("storage: rename into %q: %w", target, err)
	}
	return nil
}

func (b *LocalBackend) Delete(_ context.Context, target string) error {
	p, err := b.path(target)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("storage: delete %q: %w", target, err)
	}
	return nil
}

func (b *LocalBackend) DeletePrefix(_ context.Context, prefix string) (int, error) {
	p, err := b.path(prefix)
	if err != nil {
		return 0, err
	}

	removed := 0
	err = filepath.WalkDir(p, func(_ string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.Type().IsRegular() {
			removed++
		}
		return nil
	})
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: walk %q: %w", prefix, err)
	}
	if err := os.RemoveAll(p); err != nil {
		return 0, fmt.Errorf("storage: delete %q: %w", prefix, err)
	}
	return removed, nil
}

// path maps target below root, refusing anything that would escape it.
func (b *LocalBackend) path(target string) (string, error) {
	clean := path.Clean("/" + target)[1:]
	if clean == "" || clean != target || !filepath.IsLocal(filepath.FromSlash(clean)) {
		return "", fmt.Errorf("%w: %q", ErrInvalidTarget, target)
	}
	return filepath.Join(b.root, filepath.FromSlash(clean)), nil
}
