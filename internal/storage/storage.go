package storage

import (
	"context"
	"encoding/json"
	"errors"
)

// Collection names used by the admin backend. The store itself is
// schema-less: a collection is just a namespace of JSON documents.
const (
	CollectionUsers      = "users"
	CollectionInterviews = "interviews"
	CollectionCandidates = "candidates"
)

var ErrNotFound = errors.New("document not found")

// Doc is a raw document as stored, identity plus JSON payload.
type Doc struct {
	ID   string
	Data json.RawMessage
}

// Where is an equality predicate on a top-level document field.
type Where struct {
	Field string
	Value string
}

// ListOptions controls ordering of a collection listing.
type ListOptions struct {
	OrderBy string
	Desc    bool
}

// Store is the data-access gateway the admin features run against.
// Implementations exist for Redis and Postgres.
type Store interface {
	// List returns every document of a collection, ordered by opts.
	List(ctx context.Context, collection string, opts ListOptions) ([]Doc, error)
	// Get returns a single document or ErrNotFound.
	Get(ctx context.Context, collection, id string) (*Doc, error)
	// Put creates or replaces a document.
	Put(ctx context.Context, collection, id string, doc interface{}) error
	// Update merges the given top-level fields into an existing document.
	// Returns ErrNotFound when the document does not exist.
	Update(ctx context.Context, collection, id string, fields map[string]interface{}) error
	// Count returns the number of documents matching the predicate.
	Count(ctx context.Context, collection string, where Where) (int64, error)
	// Delete removes a single document. Returns ErrNotFound when absent.
	Delete(ctx context.Context, collection, id string) error
	// DeleteWhere removes every document matching the predicate and
	// returns how many were removed. An empty match is not an error.
	DeleteWhere(ctx context.Context, collection string, where Where) (int64, error)
	// Ping verifies the backing connection, used by readiness probes.
	Ping(ctx context.Context) error
}
