// Package store persists saved pattern documents.
//
// This package defines the Store interface with implementations for
// different backends:
//   - memory: In-memory storage for development/testing
//   - mongo: MongoDB-backed storage for server deployments
//
// A document wraps a compiled pattern with identity and timestamps so it can
// be listed and fetched through the HTTP API.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sunnyyao/crocheo-blog/pkg/errors"
	"github.com/sunnyyao/crocheo-blog/pkg/pattern"
)

// Document is a saved pattern with identity and timestamps.
type Document struct {
	ID        string          `json:"id" bson:"_id"`
	Name      string          `json:"name" bson:"name"`
	Pattern   pattern.Pattern `json:"pattern" bson:"pattern"`
	CreatedAt time.Time       `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time       `json:"updated_at" bson:"updated_at"`
}

// NewDocument creates a document for the given pattern with a fresh id.
func NewDocument(name string, p pattern.Pattern) *Document {
	now := time.Now().UTC()
	return &Document{
		ID:        uuid.NewString(),
		Name:      name,
		Pattern:   p,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Store is the interface for pattern storage backends.
type Store interface {
	// Get retrieves a document by id.
	// Returns an ErrCodePatternNotFound error if it does not exist.
	Get(ctx context.Context, id string) (*Document, error)

	// List returns all documents, newest first.
	List(ctx context.Context) ([]*Document, error)

	// Save inserts or replaces a document and bumps UpdatedAt.
	Save(ctx context.Context, doc *Document) error

	// Delete removes a document.
	// Returns an ErrCodePatternNotFound error if it does not exist.
	Delete(ctx context.Context, id string) error

	// Close releases backend resources.
	Close(ctx context.Context) error
}

// NotFound builds the canonical not-found error for a pattern id.
func NotFound(id string) error {
	return errors.New(errors.ErrCodePatternNotFound, "pattern %q not found", id)
}
