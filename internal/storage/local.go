package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalStore 本地磁盘存储，文件落在 Root 之下
type LocalStore struct {
	Root string
}

func NewLocalStore(root string) *LocalStore { return &LocalStore{Root: root} }

func (s *LocalStore) Save(_ context.Context, relPath string, r io.Reader, size int64, _ string) error {
	if err := CheckSize(size); err != nil {
		return err
	}
	dst := filepath.Join(s.Root, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("mkdir media dir: %w", err)
	}
	f, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create media file: %w", err)
	}
	defer f.Close()
	if _, err := io.Copy(f, io.LimitReader(r, maxUploadSize+1)); err != nil {
		return fmt.Errorf("write media file: %w", err)
	}
	return nil
}
