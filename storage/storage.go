// Package storage holds binary assets (CV PDF, gallery and cover images)
// in an external object store. The relational layer persists only the
// public URL and the storage key returned from Upload.
package storage

import "context"

type ObjectStorage interface {
	// Upload ships raw bytes to the store and returns the public URL the
	// object is reachable at. The caller-chosen key doubles as the
	// deletion identifier.
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)

	// Delete removes the object behind key. Callers treat failures as
	// non-fatal when deleting alongside a local row.
	Delete(ctx context.Context, key string) error
}
