package handler

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/slava-del/RTAF/internal/http/middleware"
	"github.com/slava-del/RTAF/internal/service"
)

// parseID parses a numeric path parameter.
func parseID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id")
	}
	return id, nil
}

// UploadDocument accepts a multipart upload (field name: document).
func UploadDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, _ := middleware.UserID(c)

		fh, err := c.FormFile("document")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "document file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		doc, err := svc.Upload(c.UserContext(), userID, service.UploadInput{
			Reader:      f,
			Filename:    fh.Filename,
			ContentType: ct,
			Size:        fh.Size,
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(doc)
	}
}

// ListDocuments returns the caller's documents.
func ListDocuments(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, _ := middleware.UserID(c)

		docs, err := svc.ListByUser(c.UserContext(), userID)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(docs)
	}
}

// DownloadDocument streams a document back to its owner.
func DownloadDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, _ := middleware.UserID(c)

		id, err := parseID(c, "id")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		rc, doc, err := svc.Download(c.UserContext(), id, userID)
		if err != nil {
			return writeServiceError(c, err)
		}

		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", doc.Name))
		if ct, ok := mimeForType(doc.Type); ok {
			c.Set(fiber.HeaderContentType, ct)
		}
		return c.SendStream(rc, int(doc.Size))
	}
}

// mimeForType resolves the stored document type back to its content type.
func mimeForType(docType string) (string, bool) {
	switch docType {
	case "xlsx":
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", true
	case "docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document", true
	default:
		return "", false
	}
}

// DeleteDocument removes a document and its stored object.
func DeleteDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, _ := middleware.UserID(c)

		id, err := parseID(c, "id")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		if err := svc.Delete(c.UserContext(), id, userID); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusOK)
	}
}
