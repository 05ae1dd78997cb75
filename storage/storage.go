// Package storage provides the flat string-keyed namespace cache entries live in.
package storage

import "errors"

var (
	// ErrQuotaExceeded is returned when a write does not fit in a bounded store.
	ErrQuotaExceeded = errors.New("storage quota exceeded")

	// ErrUnavailable is returned when the underlying store cannot be reached.
	ErrUnavailable = errors.New("storage unavailable")
)

/*
Storage is a flat table of string keys to string values, the same shape as a
browser's localStorage. Implementations decide durability; callers decide key layout.
*/
type Storage interface {

	// GetItem returns the value under key and whether it exists.
	GetItem(key string) (string, bool, error)

	// SetItem replaces the value under key.
	SetItem(key, value string) error

	// RemoveItem deletes key. Removing an absent key is not an error.
	RemoveItem(key string) error

	// Keys lists every key currently stored, sorted.
	Keys() ([]string, error)

	// Clear deletes every key the store holds.
	Clear() error
}
