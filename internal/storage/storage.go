package storage

import (
	"context"
	"io"
	"time"
)

// Package storage contains the file storage abstraction behind the document
// upload pipeline. Two implementations exist: a server-local directory (the
// default) and an S3-compatible object store. Every download is streamed
// back through the API's ownership gate, so the interface deliberately has
// no presigned-URL escape hatch.

// PutObjectOptions define optional parameters for storing objects.
// Size should be the exact number of bytes if known; if unknown, set to -1
// and the implementation will buffer/chunk as supported by the backend.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo contains basic information about a stored object.
type ObjectInfo struct {
	Key          string
	Size         int64
	ContentType  string
	LastModified time.Time
	Metadata     map[string]string
}

// Storage stores and retrieves document bytes by key using streaming I/O.
type Storage interface {
	// Put stores an object under the given key from the provided reader.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Get retrieves an object's content as a streaming reader alongside its info.
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
	// Delete removes an object by key. Deleting a missing object is not an error.
	Delete(ctx context.Context, key string) error
}
