package store

import "github.com/pkg/errors"

var (
	// ErrConversationNotFound is returned by update/delete-style operations
	// that reference a conversation id that does not exist. Read operations
	// signal a miss with a nil result instead.
	ErrConversationNotFound = errors.New("conversation not found")

	// ErrEmailTaken is returned when a write would violate the
	// case-insensitive email uniqueness constraint.
	ErrEmailTaken = errors.New("email already registered")
)
