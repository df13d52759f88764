// internal/service/storage.go
package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go_5_goalverse/internal/middleware"
)

//go:generate mockery --name FileStore --output ./mocks --outpkg mocks --case=underscore

// FileStore はアップロードされたファイルの保存先です。
// 保存失敗は必ずエラーとして返す (サイレントに握りつぶさない)。
type FileStore interface {
	Save(ctx context.Context, name string, r io.Reader) error
}

// LocalFileStore はローカルディスクに保存する実装です。
type LocalFileStore struct {
	dir string
}

func NewLocalFileStore(dir string) (*LocalFileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}
	return &LocalFileStore{dir: dir}, nil
}

func (s *LocalFileStore) Save(ctx context.Context, name string, r io.Reader) error {
	logger := middleware.GetLogger(ctx)

	// nameは呼び出し側が生成したUUIDベースの名前のみ受け付ける前提だが、
	// パストラバーサルは念のためここでも遮断する
	if filepath.Base(name) != name {
		return fmt.Errorf("invalid file name: %s", name)
	}

	path := filepath.Join(s.dir, name)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", path, err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close file %s: %w", path, err)
	}

	logger.Debug("File saved", "path", path)
	return nil
}
