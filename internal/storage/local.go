package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrObjectNotFound is returned by Get when the key has no stored bytes.
var ErrObjectNotFound = errors.New("object not found")

// localStorage implements Storage on a server-controlled directory. Keys
// are slash-separated relative paths; anything escaping the base directory
// is rejected.
type localStorage struct {
	baseDir string
}

// NewLocal creates a local-disk storage rooted at baseDir, creating the
// directory if needed.
func NewLocal(baseDir string) (Storage, error) {
	if baseDir == "" {
		return nil, fmt.Errorf("local storage base directory is required")
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage directory: %w", err)
	}
	return &localStorage{baseDir: baseDir}, nil
}

// resolve maps a key to an on-disk path, refusing traversal outside the
// base directory.
func (l *localStorage) resolve(key string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(key))
	if clean == "." || strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return "", fmt.Errorf("invalid storage key %q", key)
	}
	return filepath.Join(l.baseDir, clean), nil
}

func (l *localStorage) Put(_ context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error) {
	path, err := l.resolve(key)
	if err != nil {
		return ObjectInfo{}, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return ObjectInfo{}, fmt.Errorf("create object directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return ObjectInfo{}, fmt.Errorf("create object file: %w", err)
	}
	n, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		// Leave no partial file behind.
		_ = os.Remove(path)
		return ObjectInfo{}, fmt.Errorf("write object: %w", err)
	}

	return ObjectInfo{
		Key:          key,
		Size:         n,
		ContentType:  opt.ContentType,
		LastModified: time.Now(),
		Metadata:     opt.Metadata,
	}, nil
}

func (l *localStorage) Get(_ context.Context, key string) (io.ReadCloser, ObjectInfo, error) {
	path, err := l.resolve(key)
	if err != nil {
		return nil, ObjectInfo{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ObjectInfo{}, ErrObjectNotFound
		}
		return nil, ObjectInfo{}, fmt.Errorf("open object: %w", err)
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, ObjectInfo{}, fmt.Errorf("stat object: %w", err)
	}
	info := ObjectInfo{
		Key:          key,
		Size:         st.Size(),
		LastModified: st.ModTime(),
	}
	return f, info, nil
}

func (l *localStorage) Delete(_ context.Context, key string) error {
	path, err := l.resolve(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove object: %w", err)
	}
	return nil
}
