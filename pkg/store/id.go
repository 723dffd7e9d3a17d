package store

import "github.com/google/uuid"

// NewID returns a fresh opaque id for a newly created entity.
func NewID() string {
	return uuid.NewString()
}
