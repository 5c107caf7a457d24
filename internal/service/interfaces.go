package service

import "context"

// ObjectStore abstracts the external file store used for certificate
// uploads. Implemented by storage.S3Store.
type ObjectStore interface {
	// Upload stores data under key and returns its public URL.
	Upload(ctx context.Context, key, contentType string, data []byte) (string, error)
	// Remove deletes the object a previously returned URL points at.
	Remove(ctx context.Context, fileURL string) error
}
