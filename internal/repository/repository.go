package repository

import "errors"

// Package repository contains data access layer abstractions.
// Implementations live in subpackages (memory, postgres).
//
// Create operations assign the next monotonically increasing identifier for
// their entity kind (never reused, even after deletes), stamp creation
// timestamps, and return the full record. Updates are narrow and explicit;
// there is no generic update.

// ErrNotFound is returned when the requested row does not exist.
// The Postgres implementations map sql.ErrNoRows to it.
var ErrNotFound = errors.New("record not found")
