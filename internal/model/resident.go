package model

import "time"

// Resident is a registry entry. Residents are seeded at startup and
// immutable afterwards; Data is an opaque attribute bag (contact details
// and similar) carried through untouched.
type Resident struct {
	ID               int64          `json:"id"`
	Name             string         `json:"name"`
	ResidentID       string         `json:"residentId"`
	Address          string         `json:"address"`
	RegistrationDate time.Time      `json:"registrationDate"`
	Source           string         `json:"source"`
	Data             map[string]any `json:"data,omitempty"`
}

// Resident sources.
const (
	SourceInternal = "internal"
	SourceExternal = "external"
)
