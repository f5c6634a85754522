package store

import (
	"context"
	"database/sql"
)

// Driver is an interface for store driver.
// It contains all methods that a storage backend must implement. Every
// backend must honor identical external behavior for every operation; only
// the persistence medium differs.
type Driver interface {
	// GetDB returns the underlying *sql.DB for relational drivers.
	// Non-relational drivers return nil; the migrator skips schema setup
	// for them.
	GetDB() *sql.DB
	Close() error

	IsInitialized(ctx context.Context) (bool, error)

	// User model related methods.
	GetUser(ctx context.Context, find *FindUser) (*User, error)
	// UpsertUser performs the insert-or-merge conditional write using the
	// medium's native atomic primitive. Field merge semantics are owned by
	// the Store; drivers only guarantee no duplicate records under
	// concurrent calls for the same id.
	UpsertUser(ctx context.Context, upsert *UpsertUser) (*User, error)

	// Search model related methods.
	CreateSearch(ctx context.Context, create *Search) (*Search, error)
	GetSearch(ctx context.Context, find *FindSearch) (*Search, error)

	// TrendingTopic model related methods.
	CreateTrendingTopic(ctx context.Context, create *TrendingTopic) (*TrendingTopic, error)
	// ListTrendingTopics orders by view_count descending with a fixed
	// tie-break of created_ts ascending then id ascending.
	ListTrendingTopics(ctx context.Context, find *FindTrendingTopic) ([]*TrendingTopic, error)
	// IncrementTopicViews atomically adds one view. Missing ids are a
	// silent no-op, never an error.
	IncrementTopicViews(ctx context.Context, id string) error

	// Space model related methods.
	CreateSpace(ctx context.Context, create *Space) (*Space, error)
	ListSpaces(ctx context.Context, find *FindSpace) ([]*Space, error)

	// Conversation model related methods.
	CreateConversation(ctx context.Context, create *Conversation) (*Conversation, error)
	GetConversation(ctx context.Context, id string) (*Conversation, error)
	// UpdateConversation fails with ErrConversationNotFound when the id
	// does not exist. It never upserts.
	UpdateConversation(ctx context.Context, update *UpdateConversation) (*Conversation, error)
	ListConversations(ctx context.Context, find *FindConversation) ([]*Conversation, error)
	// DeleteConversation removes the conversation record only. Message
	// cascade is sequenced by the chat service.
	DeleteConversation(ctx context.Context, id string) error

	// Message model related methods.
	CreateMessage(ctx context.Context, create *Message) (*Message, error)
	// ListMessages orders ascending by created_ts, falling back to
	// insertion order for equal timestamps. This ordering is load-bearing
	// for transcript reconstruction.
	ListMessages(ctx context.Context, find *FindMessage) ([]*Message, error)
	DeleteMessages(ctx context.Context, delete *DeleteMessage) error
}
