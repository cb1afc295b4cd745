// Package store provides persistent archives for exported flow documents.
package store

import (
	"errors"
	"time"
)

// Store archives exported flow documents keyed by graph id.
// Implementations must be safe for concurrent use.
type Store interface {
	// Save stores an exported flow document.
	// Overwrites if a document for graphID already exists.
	Save(graphID string, data []byte) error

	// Load retrieves a flow document.
	// Returns ErrNotFound if no document exists for graphID.
	Load(graphID string) ([]byte, error)

	// List returns metadata for all archived flows, oldest first.
	// Returns empty slice (not error) when the archive is empty.
	List() ([]Info, error)

	// Delete removes a flow document.
	// Returns nil if the document doesn't exist.
	Delete(graphID string) error

	// Close releases any resources (connections, files).
	Close() error
}

// Info provides flow metadata without loading the full document.
type Info struct {
	GraphID   string
	CreatedAt time.Time
	Size      int64
}

// Sentinel errors for archive operations.
var (
	// ErrNotFound indicates no document exists for the graph id.
	ErrNotFound = errors.New("flow not found")

	// ErrStoreClosed indicates the store has been closed.
	ErrStoreClosed = errors.New("flow store closed")
)
