// Package store persists the single check-in document.
//
// Every mutation is a whole-document read-modify-write. Stores do not
// serialize callers against each other; two writers racing on one store lose
// one update (last writer wins). service.CheckinService holds a mutex around
// its read-modify-write for that reason, and a multi-user version would need
// per-document locking or a transactional store.
package store

import (
	"context"

	"mindtree/internal/model"
)

type DocumentStore interface {
	// Load returns the current document. A missing or unreadable document
	// yields model.NewDocument(); read failures are never returned.
	Load(ctx context.Context) model.Document
	// Save replaces the stored document with doc.
	Save(ctx context.Context, doc model.Document) error
}

func normalize(doc model.Document) model.Document {
	if doc.Entries == nil {
		doc.Entries = []model.CheckinEntry{}
	}
	return doc
}
