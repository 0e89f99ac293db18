// Package store is the persistence gateway: generic document operations
// against named collections, keyed by an opaque identifier assigned at
// insert time. Domain-level integer ids travel inside the document and are
// never used as the storage key.
package store

import (
	"context"
	"errors"
)

// Canonical collection names. The seed, index creation and every CRUD path
// use these constants, one per entity.
const (
	ColPatient     = "paciente"
	ColSpecialty   = "especialidad"
	ColDoctor      = "doctor"
	ColHistory     = "historial"
	ColAppointment = "cita"
)

// Collections lists every collection the gateway manages.
var Collections = []string{ColPatient, ColSpecialty, ColDoctor, ColHistory, ColAppointment}

// Document is a flat record as stored and returned. Returned documents
// carry the opaque identifier under "id" plus "created_at"/"updated_at"
// in printable form.
type Document map[string]any

var (
	// ErrNotFound signals an absent or malformed identifier.
	ErrNotFound = errors.New("documento no encontrado")
	// ErrPersistence stands in for any unexpected store failure. The raw
	// cause is logged at the gateway, never returned to callers.
	ErrPersistence = errors.New("error de almacenamiento")
)

// Store is the persistence-access contract the entity services depend on.
// Implementations must not leak raw driver errors: failures are logged and
// mapped to the sentinel errors above, or to a false/absent result.
type Store interface {
	// Insert writes doc with a fresh creation timestamp and returns the new
	// opaque identifier.
	Insert(ctx context.Context, collection string, doc Document) (string, error)

	// FindAll returns every document matching filter (field-equality
	// predicates; nil or empty matches all).
	FindAll(ctx context.Context, collection string, filter Document) ([]Document, error)

	// FindByID returns the document with the given opaque id, or
	// ErrNotFound when the id is malformed or matches nothing.
	FindByID(ctx context.Context, collection, id string) (Document, error)

	// Update merges the named fields into the document and refreshes the
	// update timestamp. It reports false when the id is unknown, malformed,
	// or the merge would change nothing.
	Update(ctx context.Context, collection, id string, fields Document) (bool, error)

	// Delete removes the document and reports whether one existed.
	Delete(ctx context.Context, collection, id string) (bool, error)
}
