package storage

import "errors"

// ErrNotFound is returned by Get when no value exists for the key.
var ErrNotFound = errors.New("key not found")

// Provider is the key-value persistence substrate. Values are opaque
// serialized JSON blobs keyed by string. The journal store keeps the
// authoritative in-memory copy of every collection; a Provider is a
// passive mirror overwritten after each mutation, never a second owner.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Remove(key string) error

	// Utils
	GetDataPath() string
}
