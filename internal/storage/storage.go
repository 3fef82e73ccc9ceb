// Package storage is the persistent key-value store the containers write
// session state to.
package storage

import "errors"

// Keys the application uses.
const (
	KeyUser = "user"
	KeyJWT  = "jwt"
)

// ErrNotFound is returned by Get for keys that were never set.
var ErrNotFound = errors.New("storage: key not found")

// Store persists string pairs across page views.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
}
