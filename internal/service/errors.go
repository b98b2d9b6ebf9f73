package service

import "errors"

// Sentinel errors shared by the services. Handlers translate them into the
// HTTP error taxonomy; anything not listed here surfaces as a generic 500.
var (
	// ErrNotFound: the requested resource id does not exist. Takes
	// precedence over ownership checks.
	ErrNotFound = errors.New("resource not found")

	// ErrForbidden: the resource exists but the requester does not own it.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidCredentials: unknown username or password mismatch.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrCredentialsRequired: registration or login without username or
	// password.
	ErrCredentialsRequired = errors.New("username and password are required")

	// ErrUsernameTaken: registration with an already-registered username.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrOrderIDRequired / ErrOrderIDTaken: the human-readable order code
	// is mandatory and globally unique.
	ErrOrderIDRequired = errors.New("order id is required")
	ErrOrderIDTaken    = errors.New("order id already exists")

	// ErrStatusRequired / ErrInvalidStatus / ErrInvalidTransition: order
	// state machine violations.
	ErrStatusRequired    = errors.New("status is required")
	ErrInvalidStatus     = errors.New("unknown order status")
	ErrInvalidTransition = errors.New("status transition not allowed")

	// ErrFileTooLarge / ErrInvalidFileType: upload pipeline rejections.
	ErrFileTooLarge    = errors.New("file exceeds the maximum allowed size")
	ErrInvalidFileType = errors.New("only .xlsx and .docx files are allowed")

	// ErrReaderNil: upload called without content.
	ErrReaderNil = errors.New("reader is nil")
)
