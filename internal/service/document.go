package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/slava-del/RTAF/internal/model"
	"github.com/slava-del/RTAF/internal/repository"
	"github.com/slava-del/RTAF/internal/storage"
)

// allowedTypes maps the permitted file extensions to the content type each
// one must be uploaded with. The extension and the declared type have to
// agree; a .docx sent as a spreadsheet is rejected.
var allowedTypes = map[string]string{
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// UploadInput describes one incoming file.
type UploadInput struct {
	Reader      io.Reader
	Filename    string
	ContentType string
	Size        int64
}

type DocumentService interface {
	Upload(ctx context.Context, userID int64, in UploadInput) (*model.Document, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Document, error)
	// Download returns the object stream along with its metadata. The
	// caller owns the returned ReadCloser.
	Download(ctx context.Context, id, requesterID int64) (io.ReadCloser, *model.Document, error)
	Delete(ctx context.Context, id, requesterID int64) error
}

type documentService struct {
	docs    repository.DocumentRepository
	store   storage.Storage
	events  EventSink
	maxSize int64
}

func NewDocumentService(docs repository.DocumentRepository, store storage.Storage, events EventSink, maxSize int64) DocumentService {
	return &documentService{docs: docs, store: store, events: events, maxSize: maxSize}
}

func (s *documentService) Upload(ctx context.Context, userID int64, in UploadInput) (*model.Document, error) {
	if in.Reader == nil {
		return nil, ErrReaderNil
	}
	if in.Size <= 0 || in.Size > s.maxSize {
		return nil, ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(in.Filename))
	wantType, ok := allowedTypes[ext]
	if !ok || !strings.EqualFold(in.ContentType, wantType) {
		return nil, ErrInvalidFileType
	}

	key := fmt.Sprintf("documents/%d-%s%s", time.Now().UnixMilli(), uuid.NewString(), ext)

	_, err := s.store.Put(ctx, key, in.Reader, storage.PutObjectOptions{Size: in.Size, ContentType: in.ContentType})
	if err != nil {
		return nil, fmt.Errorf("store object: %w", err)
	}

	doc := &model.Document{
		UserID: userID,
		Name:   in.Filename,
		Type:   ext[1:],
		Path:   key,
		Size:   in.Size,
	}
	created, err := s.docs.Create(ctx, doc)
	if err != nil {
		// Keep metadata and storage consistent: a failed insert must not
		// leave an orphan object behind.
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("create document: %w (object cleanup also failed: %v)", err, delErr)
		}
		return nil, fmt.Errorf("create document: %w", err)
	}

	s.events.Record(ctx, userID, "Document Upload", fmt.Sprintf("Uploaded %s", created.Name))

	return created, nil
}

func (s *documentService) ListByUser(ctx context.Context, userID int64) ([]model.Document, error) {
	docs, err := s.docs.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return docs, nil
}

func (s *documentService) Download(ctx context.Context, id, requesterID int64) (io.ReadCloser, *model.Document, error) {
	doc, err := s.findOwned(ctx, id, requesterID)
	if err != nil {
		return nil, nil, err
	}

	rc, _, err := s.store.Get(ctx, doc.Path)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, fmt.Errorf("get object: %w", err)
	}

	s.events.Record(ctx, requesterID, "Document Download", fmt.Sprintf("Downloaded %s", doc.Name))

	return rc, doc, nil
}

func (s *documentService) Delete(ctx context.Context, id, requesterID int64) error {
	doc, err := s.findOwned(ctx, id, requesterID)
	if err != nil {
		return err
	}

	// Object removal is best effort: a stray object is recoverable, stale
	// metadata pointing at nothing is not.
	if err := s.store.Delete(ctx, doc.Path); err != nil {
		log.Printf("document: object delete failed for %s: %v", doc.Path, err)
	}

	if err := s.docs.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete document: %w", err)
	}

	s.events.Record(ctx, requesterID, "Document Delete", fmt.Sprintf("Deleted %s", doc.Name))

	return nil
}

// findOwned fetches a document and enforces ownership. Missing documents win
// over ownership so callers cannot probe for ids they do not own.
func (s *documentService) findOwned(ctx context.Context, id, requesterID int64) (*model.Document, error) {
	doc, err := s.docs.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find document: %w", err)
	}
	if doc.UserID != requesterID {
		return nil, ErrForbidden
	}
	return doc, nil
}
