package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

var ErrInvalidRef = errors.New("attachment ref escapes the upload root")

// DiskStore writes attachments under a single upload root with timestamped
// filenames. Refs are paths relative to the root.
type DiskStore struct {
	root string
}

func NewDiskStore(root string) (*DiskStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &DiskStore{root: root}, nil
}

func (s *DiskStore) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	ext := filepath.Ext(filename)
	name := fmt.Sprintf("%d%s", time.Now().UnixNano(), ext)
	path := filepath.Join(s.root, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		os.Remove(path)
		return "", err
	}

	return name, nil
}

func (s *DiskStore) Remove(ctx context.Context, ref string) error {
	clean := filepath.Clean(ref)
	if clean == "." || strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return ErrInvalidRef
	}
	return os.Remove(filepath.Join(s.root, clean))
}
